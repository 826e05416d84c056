package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/tillbook-dev/tillbook/internal/model"
)

// ExportXLSX writes every invoice header to a spreadsheet at path, one row
// per invoice, matching the persisted column layout.
func ExportXLSX(path string, invoices []model.Invoice) error {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Sheet1"
	header := []interface{}{"invoice_id", "customer_name", "date", "total", "gst", "grand_total"}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("writing header row: %w", err)
	}

	for i, inv := range invoices {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("row %d: %w", i+2, err)
		}
		row := []interface{}{
			inv.ID,
			inv.Customer,
			inv.DateString(),
			inv.Subtotal.StringFixed(2),
			inv.GST.StringFixed(2),
			inv.GrandTotal.StringFixed(2),
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("writing invoice %d: %w", inv.ID, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("saving %s: %w", path, err)
	}
	return nil
}
