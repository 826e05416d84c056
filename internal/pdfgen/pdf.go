// Package pdfgen renders a finalized invoice as a printable A4 document.
// It is purely a formatter: every amount on the page comes from the invoice
// snapshot, nothing is recomputed here.
package pdfgen

import (
	"fmt"
	"io"

	"github.com/jung-kurt/gofpdf"

	"github.com/tillbook-dev/tillbook/internal/config"
	"github.com/tillbook-dev/tillbook/internal/model"
)

// Render writes the invoice as a PDF. A draft (ID 0) is labeled DRAFT in
// place of an invoice number.
func Render(w io.Writer, inv model.Invoice, biz config.Business) error {
	number := "DRAFT"
	if !inv.Draft() {
		number = fmt.Sprintf("%d", inv.ID)
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pageWidth, _ := pdf.GetPageSize()
	left, _, right, _ := pdf.GetMargins()
	usable := pageWidth - left - right

	// Title.
	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(usable, 12, "INVOICE", "", 1, "C", false, 0, "")
	pdf.Ln(4)

	// Business identity block, with invoice number and date on the right.
	pdf.SetFont("Helvetica", "", 10)
	half := usable / 2
	pdf.CellFormat(half, 5, biz.Name, "", 0, "L", false, 0, "")
	pdf.CellFormat(half, 5, "Invoice No: "+number, "", 1, "R", false, 0, "")
	pdf.CellFormat(half, 5, biz.Address, "", 0, "L", false, 0, "")
	pdf.CellFormat(half, 5, "Date: "+inv.DateString(), "", 1, "R", false, 0, "")
	contact := biz.Phone
	if biz.Email != "" {
		if contact != "" {
			contact += " | "
		}
		contact += biz.Email
	}
	pdf.CellFormat(half, 5, contact, "", 0, "L", false, 0, "")
	pdf.CellFormat(half, 5, "Customer: "+inv.Customer, "", 1, "R", false, 0, "")
	pdf.Ln(8)

	// Item table.
	nameW := usable * 0.46
	qtyW := usable * 0.14
	amtW := usable * 0.20

	pdf.SetFont("Helvetica", "B", 11)
	pdf.SetFillColor(211, 211, 211)
	pdf.CellFormat(nameW, 8, "Item", "1", 0, "L", true, 0, "")
	pdf.CellFormat(qtyW, 8, "Qty", "1", 0, "R", true, 0, "")
	pdf.CellFormat(amtW, 8, "Price", "1", 0, "R", true, 0, "")
	pdf.CellFormat(amtW, 8, "Total", "1", 1, "R", true, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	for _, it := range inv.Items {
		pdf.CellFormat(nameW, 7, it.Name, "1", 0, "L", false, 0, "")
		pdf.CellFormat(qtyW, 7, fmt.Sprintf("%d", it.Qty), "1", 0, "R", false, 0, "")
		pdf.CellFormat(amtW, 7, it.Price.StringFixed(2), "1", 0, "R", false, 0, "")
		pdf.CellFormat(amtW, 7, it.Total.StringFixed(2), "1", 1, "R", false, 0, "")
	}
	pdf.Ln(6)

	// Totals, right-aligned under the table.
	labelW := usable - amtW
	pdf.CellFormat(labelW, 6, "Subtotal:", "", 0, "R", false, 0, "")
	pdf.CellFormat(amtW, 6, inv.Subtotal.StringFixed(2), "", 1, "R", false, 0, "")
	pdf.CellFormat(labelW, 6, "GST (18%):", "", 0, "R", false, 0, "")
	pdf.CellFormat(amtW, 6, inv.GST.StringFixed(2), "", 1, "R", false, 0, "")
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(labelW, 7, "Grand Total:", "", 0, "R", false, 0, "")
	pdf.CellFormat(amtW, 7, biz.Currency+" "+inv.GrandTotal.StringFixed(2), "", 1, "R", false, 0, "")

	// Footer.
	pdf.SetY(-30)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.CellFormat(usable, 6, "Thank you for your business!", "", 1, "C", false, 0, "")

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("rendering invoice %s: %w", number, err)
	}
	return nil
}
