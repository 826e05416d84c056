package commands

import (
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"
)

func newPDFCommand(opts *rootOptions) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "pdf <invoice-id>",
		Short: "Render a saved invoice as a PDF",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invoice id %q is not an integer", args[0])
			}
			return runPDF(opts, id, out)
		},
	}

	cmd.Flags().StringVar(&out, "out", "", "output file (default exports/Invoice_<id>.pdf)")

	return cmd
}

func runPDF(opts *rootOptions, id int, out string) error {
	e, err := openEnv(opts)
	if err != nil {
		return err
	}
	defer e.close()

	inv, err := e.store.LoadInvoice(id)
	if err != nil {
		return err
	}

	if out == "" {
		out = filepath.Join(e.exportDir, fmt.Sprintf("Invoice_%d.pdf", id))
	}
	if err := writePDF(out, inv, e); err != nil {
		return err
	}
	fmt.Printf("Wrote %s\n", out)
	return nil
}
