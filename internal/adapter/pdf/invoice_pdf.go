// Package pdf renders billing documents for download.
package pdf

import (
	"bytes"
	"fmt"

	"fieldserve_crm/internal/domain/entities"

	"github.com/jung-kurt/gofpdf"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// RenderInvoice renders an invoice and its line items as an A4 PDF.
func RenderInvoice(inv entities.Invoice, items []entities.InvoiceLineItem) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)

	pdf.Cell(40, 10, fmt.Sprintf("Invoice %s", inv.ID))
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 11)
	if inv.ClientID != nil {
		pdf.Cell(95, 6, fmt.Sprintf("Client: %s", *inv.ClientID))
		pdf.Ln(6)
	}
	pdf.Cell(95, 6, fmt.Sprintf("Status: %s", inv.Status))
	pdf.Ln(6)
	pdf.Cell(95, 6, fmt.Sprintf("Issued: %s", inv.CreatedAt.Format("2006-01-02")))
	pdf.Ln(6)
	if inv.DueDate != nil {
		pdf.Cell(95, 6, fmt.Sprintf("Due: %s", inv.DueDate.Format("2006-01-02")))
		pdf.Ln(6)
	}
	pdf.Ln(6)

	// Table headers
	pdf.SetFont("Arial", "B", 9)
	pdf.CellFormat(80, 8, "Item", "1", 0, "C", false, 0, "")
	pdf.CellFormat(25, 8, "Type", "1", 0, "C", false, 0, "")
	pdf.CellFormat(25, 8, "Qty", "1", 0, "C", false, 0, "")
	pdf.CellFormat(30, 8, "Unit Price", "1", 0, "C", false, 0, "")
	pdf.CellFormat(30, 8, "Amount", "1", 1, "C", false, 0, "")

	pdf.SetFont("Arial", "", 9)
	for _, li := range items {
		pdf.CellFormat(80, 7, li.Name, "1", 0, "L", false, 0, "")
		pdf.CellFormat(25, 7, string(li.Type), "1", 0, "C", false, 0, "")
		pdf.CellFormat(25, 7, li.Quantity.String(), "1", 0, "C", false, 0, "")
		pdf.CellFormat(30, 7, li.UnitPrice.StringFixed(2), "1", 0, "R", false, 0, "")
		pdf.CellFormat(30, 7, li.LineTotal().StringFixed(2), "1", 1, "R", false, 0, "")
	}

	pdf.Ln(5)
	pdf.SetFont("Arial", "B", 11)

	pdf.Cell(160, 8, "Subtotal:")
	pdf.CellFormat(30, 8, inv.Subtotal.StringFixed(2), "", 1, "R", false, 0, "")

	pdf.Cell(160, 8, fmt.Sprintf("Tax (%s%%):", inv.TaxRate.Mul(hundred).StringFixed(2)))
	pdf.CellFormat(30, 8, inv.TaxAmount.StringFixed(2), "", 1, "R", false, 0, "")

	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(160, 10, "Total:")
	pdf.CellFormat(30, 10, inv.Total.StringFixed(2), "", 1, "R", false, 0, "")

	if inv.AmountPaid.IsPositive() {
		pdf.SetFont("Arial", "B", 11)
		pdf.Cell(160, 8, "Paid:")
		pdf.CellFormat(30, 8, inv.AmountPaid.StringFixed(2), "", 1, "R", false, 0, "")
		pdf.Cell(160, 8, "Balance Due:")
		pdf.CellFormat(30, 8, inv.BalanceDue.StringFixed(2), "", 1, "R", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
