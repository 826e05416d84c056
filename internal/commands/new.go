package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tillbook-dev/tillbook/internal/invoice"
	"github.com/tillbook-dev/tillbook/internal/model"
	"github.com/tillbook-dev/tillbook/internal/pdfgen"
)

func newNewCommand(opts *rootOptions) *cobra.Command {
	var customer string
	var items []string
	var noPDF bool

	cmd := &cobra.Command{
		Use:   "new --item \"name,qty,price\" [--item ...]",
		Short: "Create and save an invoice",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runNew(opts, customer, items, noPDF)
		},
	}

	cmd.Flags().StringVar(&customer, "customer", "", "customer name (defaults to walk-in)")
	cmd.Flags().StringArrayVar(&items, "item", nil, "line item as \"name,qty,price\" (repeatable)")
	cmd.Flags().BoolVar(&noPDF, "no-pdf", false, "skip rendering the invoice PDF")

	return cmd
}

func runNew(opts *rootOptions, customer string, items []string, noPDF bool) error {
	e, err := openEnv(opts)
	if err != nil {
		return err
	}
	defer e.close()

	svc := invoice.NewService(e.store, e.log)
	for _, raw := range items {
		name, qty, price, err := splitItem(raw)
		if err != nil {
			return err
		}
		item, err := svc.AddItem(name, qty, price)
		if err != nil {
			return fmt.Errorf("item %q: %w", raw, err)
		}
		fmt.Printf("  %-30s %4d x %10s = %12s\n", item.Name, item.Qty, item.Price.StringFixed(2), item.Total.StringFixed(2))
	}

	totals := svc.Totals()
	cur := e.cfg.Business.Currency
	fmt.Printf("Subtotal:    %s %s\n", cur, totals.Subtotal.StringFixed(2))
	fmt.Printf("GST (18%%):   %s %s\n", cur, totals.GST.StringFixed(2))
	fmt.Printf("Grand Total: %s %s\n", cur, totals.GrandTotal.StringFixed(2))

	inv, err := svc.SaveInvoice(customer)
	if err != nil {
		return err
	}
	fmt.Printf("Invoice #%d saved for %s.\n", inv.ID, inv.Customer)

	if !noPDF {
		path := filepath.Join(e.exportDir, fmt.Sprintf("Invoice_%d.pdf", inv.ID))
		if err := writePDF(path, inv, e); err != nil {
			// The invoice is already saved; rendering can be retried with
			// the pdf command.
			return fmt.Errorf("invoice #%d saved but not rendered: %w", inv.ID, err)
		}
		fmt.Printf("Wrote %s\n", path)
	}

	svc.ClearWorkingState()
	return nil
}

// splitItem parses "name,qty,price". The last two fields are qty and price,
// so item names may themselves contain commas.
func splitItem(raw string) (name, qty, price string, err error) {
	parts := strings.Split(raw, ",")
	if len(parts) < 3 {
		return "", "", "", fmt.Errorf("item %q: want \"name,qty,price\"", raw)
	}
	name = strings.Join(parts[:len(parts)-2], ",")
	qty = parts[len(parts)-2]
	price = parts[len(parts)-1]
	return name, qty, price, nil
}

func writePDF(path string, inv model.Invoice, e *env) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating exports dir: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	if err := pdfgen.Render(f, inv, e.cfg.Business); err != nil {
		return err
	}
	return f.Close()
}
