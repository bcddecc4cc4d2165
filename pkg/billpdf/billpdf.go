// Package billpdf renders a finalized bill into a printable PDF
// document: cafe header, customer and visit metadata, itemized table,
// discount/tax/total summary, footer. Presentation only; every number on
// the page comes pre-computed from the bill.
package billpdf

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"

	"github.com/dillkhus/cafe-pos/internal/domain/entity"
)

// Header is the cafe identity block at the top of the document.
type Header struct {
	CafeName string
	Address  string
	Phone    string
}

// Render produces the PDF bytes for a bill.
func Render(bill *entity.Bill, header Header) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(fmt.Sprintf("Bill %s", bill.BillNo), false)
	pdf.AddPage()

	// Cafe header
	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 10, header.CafeName, "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	if header.Address != "" {
		pdf.CellFormat(0, 5, header.Address, "", 1, "C", false, 0, "")
	}
	if header.Phone != "" {
		pdf.CellFormat(0, 5, header.Phone, "", 1, "C", false, 0, "")
	}
	pdf.Ln(4)
	pdf.SetDrawColor(120, 120, 120)
	pdf.Line(10, pdf.GetY(), 200, pdf.GetY())
	pdf.Ln(4)

	// Customer and visit metadata
	pdf.SetFont("Helvetica", "", 11)
	meta := [][2]string{
		{"Bill No", bill.BillNo},
		{"Customer", bill.CustomerName},
		{"Phone", bill.Phone},
		{"Visit", bill.Window.String()},
		{"Date", fmt.Sprintf("%s (%s)", bill.Date, bill.Day)},
		{"Time", bill.BillTime},
	}
	for _, row := range meta {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(35, 6, row[0], "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 11)
		pdf.CellFormat(0, 6, row[1], "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)

	// Itemized table
	pdf.SetFont("Helvetica", "B", 11)
	pdf.SetFillColor(235, 235, 235)
	pdf.CellFormat(80, 8, "Item", "1", 0, "L", true, 0, "")
	pdf.CellFormat(25, 8, "Qty", "1", 0, "C", true, 0, "")
	pdf.CellFormat(40, 8, "Unit Price", "1", 0, "R", true, 0, "")
	pdf.CellFormat(45, 8, "Line Total", "1", 1, "R", true, 0, "")

	pdf.SetFont("Helvetica", "", 11)
	for _, item := range bill.Items {
		pdf.CellFormat(80, 8, item.Name, "1", 0, "L", false, 0, "")
		pdf.CellFormat(25, 8, fmt.Sprintf("%d", item.Quantity), "1", 0, "C", false, 0, "")
		pdf.CellFormat(40, 8, money(item.UnitPrice), "1", 0, "R", false, 0, "")
		pdf.CellFormat(45, 8, money(item.LineTotal), "1", 1, "R", false, 0, "")
	}
	pdf.Ln(4)

	// Summary
	summary := [][2]string{
		{"Items", fmt.Sprintf("%d", bill.ItemCount)},
		{"Subtotal", money(bill.Subtotal)},
		{fmt.Sprintf("Discount (%.0f%%)", bill.DiscountRate*100), money(bill.DiscountAmount)},
		{"Net Subtotal", money(bill.NetSubtotal)},
		{"GST (18%)", money(bill.Tax)},
	}
	for _, row := range summary {
		pdf.CellFormat(145, 7, row[0], "", 0, "R", false, 0, "")
		pdf.CellFormat(45, 7, row[1], "", 1, "R", false, 0, "")
	}
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(145, 8, "Total Payable", "T", 0, "R", false, 0, "")
	pdf.CellFormat(45, 8, money(bill.Total), "T", 1, "R", false, 0, "")

	// Footer
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.CellFormat(0, 6, "Thank you for visiting! See you again.", "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("billpdf: failed to render: %w", err)
	}
	return buf.Bytes(), nil
}

func money(amount float64) string {
	return fmt.Sprintf("Rs.%.2f", amount)
}
