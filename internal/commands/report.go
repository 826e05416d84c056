package commands

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/tillbook-dev/tillbook/internal/model"
	"github.com/tillbook-dev/tillbook/internal/report"
)

func newReportCommand(opts *rootOptions) *cobra.Command {
	var dateStr string
	var export bool

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Show daily and monthly sales totals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			asOf := time.Now()
			if dateStr != "" {
				var err error
				asOf, err = time.Parse(model.DateFormat, dateStr)
				if err != nil {
					return fmt.Errorf("parsing --date %q: want YYYY-MM-DD: %w", dateStr, err)
				}
			}
			return runReport(opts, asOf, export)
		},
	}

	cmd.Flags().StringVar(&dateStr, "date", "", "report date as YYYY-MM-DD (default today)")
	cmd.Flags().BoolVar(&export, "export", false, "write all invoices to Sales_Report.xlsx")

	return cmd
}

func runReport(opts *rootOptions, asOf time.Time, export bool) error {
	e, err := openEnv(opts)
	if err != nil {
		return err
	}
	defer e.close()

	sum, err := report.Summarize(e.store, asOf)
	if errors.Is(err, report.ErrNoInvoices) {
		fmt.Println("No invoices found.")
		return nil
	}
	if err != nil {
		return err
	}

	cur := e.cfg.Business.Currency
	fmt.Printf("Daily Sales (%s):   %s %s\n", sum.Date, cur, sum.Daily.StringFixed(2))
	fmt.Printf("Monthly Sales (%s):  %s %s\n", sum.Month, cur, sum.Monthly.StringFixed(2))

	if export {
		if err := os.MkdirAll(e.exportDir, 0o755); err != nil {
			return fmt.Errorf("creating exports dir: %w", err)
		}
		path := filepath.Join(e.exportDir, "Sales_Report.xlsx")
		if err := report.ExportXLSX(path, sum.Invoices); err != nil {
			return err
		}
		e.log.Infow("sales report exported", "path", path, "invoices", len(sum.Invoices))
		fmt.Printf("Wrote %s\n", path)
	}
	return nil
}
