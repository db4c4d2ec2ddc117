package pdfgen

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"yogastudio/internal/domain"
	"yogastudio/internal/pkg/dateutil"
)

// InvoiceData bundles everything the invoice PDF needs; the caller
// resolves entities, this package only renders.
type InvoiceData struct {
	Invoice    *domain.Invoice
	MemberName string
	Settings   *domain.Settings
}

// RenderInvoice produces the printable invoice as PDF bytes.
func RenderInvoice(data InvoiceData) ([]byte, error) {
	inv := data.Invoice
	st := data.Settings

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(fmt.Sprintf("Invoice %s", inv.Number), false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, st.StudioName)
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 10)
	if st.Address != "" {
		pdf.Cell(0, 6, st.Address)
		pdf.Ln(5)
	}
	if st.Phone != "" {
		pdf.Cell(0, 6, st.Phone)
		pdf.Ln(5)
	}
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 13)
	pdf.Cell(0, 8, fmt.Sprintf("Invoice %s", inv.Number))
	pdf.Ln(7)

	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", dateutil.FormatDate(inv.IssueDate)))
	pdf.Ln(5)
	if data.MemberName != "" {
		pdf.Cell(0, 6, fmt.Sprintf("Billed to: %s", data.MemberName))
		pdf.Ln(5)
	}
	pdf.Ln(4)

	// Line items table
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(90, 7, "Description", "1", 0, "L", false, 0, "")
	pdf.CellFormat(20, 7, "Qty", "1", 0, "R", false, 0, "")
	pdf.CellFormat(35, 7, "Unit price", "1", 0, "R", false, 0, "")
	pdf.CellFormat(35, 7, "Total", "1", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	for _, item := range inv.Items {
		pdf.CellFormat(90, 7, item.Description, "1", 0, "L", false, 0, "")
		pdf.CellFormat(20, 7, fmt.Sprintf("%d", item.Quantity), "1", 0, "R", false, 0, "")
		pdf.CellFormat(35, 7, dateutil.FormatAmount(st.CurrencySymbol, item.UnitPrice), "1", 0, "R", false, 0, "")
		pdf.CellFormat(35, 7, dateutil.FormatAmount(st.CurrencySymbol, item.LineTotal), "1", 1, "R", false, 0, "")
	}
	pdf.Ln(3)

	writeTotal := func(label string, amount float64, bold bool) {
		style := ""
		if bold {
			style = "B"
		}
		pdf.SetFont("Helvetica", style, 10)
		pdf.CellFormat(145, 6, label, "", 0, "R", false, 0, "")
		pdf.CellFormat(35, 6, dateutil.FormatAmount(st.CurrencySymbol, amount), "", 1, "R", false, 0, "")
	}

	writeTotal("Subtotal", inv.Amount, false)
	if inv.Discount > 0 {
		writeTotal("Discount", -inv.Discount, false)
	}
	writeTotal("Total", inv.TotalAmount, true)
	writeTotal("Paid", inv.AmountPaid, false)
	writeTotal("Balance due", inv.Outstanding(), true)

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 9)
	pdf.Cell(0, 6, fmt.Sprintf("Status: %s", inv.Status))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render invoice pdf: %w", err)
	}
	return buf.Bytes(), nil
}
