package services

import (
	"bytes"
	"fmt"

	"github.com/dogtorvet/dogtorvet-api/internal/db"
	"github.com/dogtorvet/dogtorvet-api/internal/helpers"
	"github.com/jung-kurt/gofpdf"
)

// PDFService renders printable invoices. Figures come from the already
// derived ledger, never recomputed here.
type PDFService struct{}

// NewPDFService creates a new PDF service
func NewPDFService() *PDFService {
	return &PDFService{}
}

// RenderInvoice produces a printable A4 invoice for the given invoice,
// client and optional pet.
func (s *PDFService) RenderInvoice(inv *InvoiceWithLedger, client *db.Client, pet *db.Pet) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 20)
	pdf.Cell(120, 10, "DogTorVet Clinic")
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 10, fmt.Sprintf("Invoice %s", inv.Invoice.InvoiceNumber), "", 1, "R", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, fmt.Sprintf("Date: %s", inv.Invoice.InvoiceDate.Format("2006-01-02")), "", 1, "L", false, 0, "")
	if inv.Invoice.DueDate.Valid {
		pdf.CellFormat(0, 6, fmt.Sprintf("Due: %s", inv.Invoice.DueDate.Time.Format("2006-01-02")), "", 1, "L", false, 0, "")
	}
	pdf.CellFormat(0, 6, fmt.Sprintf("Billed to: %s (%s)", client.Name, client.PhoneNumber), "", 1, "L", false, 0, "")
	if pet != nil {
		pdf.CellFormat(0, 6, fmt.Sprintf("Patient: %s", pet.Name), "", 1, "L", false, 0, "")
	}
	pdf.Ln(6)

	// Line item table
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(230, 230, 230)
	pdf.CellFormat(75, 8, "Item", "1", 0, "L", true, 0, "")
	pdf.CellFormat(25, 8, "Unit Price", "1", 0, "R", true, 0, "")
	pdf.CellFormat(15, 8, "Qty", "1", 0, "R", true, 0, "")
	pdf.CellFormat(25, 8, "Discount", "1", 0, "R", true, 0, "")
	pdf.CellFormat(40, 8, "Line Total", "1", 1, "R", true, 0, "")

	calc := NewLedgerCalculator()
	pdf.SetFont("Helvetica", "", 10)
	for _, item := range inv.Items {
		lineTotal, err := calc.LineTotal(LedgerItem{
			UnitPrice:       helpers.NumericToDecimal(item.UnitPrice),
			Quantity:        item.Quantity,
			DiscountPercent: helpers.NumericToDecimal(item.DiscountPercent),
		})
		if err != nil {
			return nil, fmt.Errorf("item %s: %w", item.ItemName, err)
		}

		pdf.CellFormat(75, 8, item.ItemName, "1", 0, "L", false, 0, "")
		pdf.CellFormat(25, 8, helpers.FormatCurrency(helpers.NumericToDecimal(item.UnitPrice)), "1", 0, "R", false, 0, "")
		pdf.CellFormat(15, 8, fmt.Sprintf("%d", item.Quantity), "1", 0, "R", false, 0, "")
		pdf.CellFormat(25, 8, fmt.Sprintf("%s%%", helpers.NumericToDecimal(item.DiscountPercent)), "1", 0, "R", false, 0, "")
		pdf.CellFormat(40, 8, helpers.FormatCurrency(lineTotal.Round(2)), "1", 1, "R", false, 0, "")
	}
	pdf.Ln(4)

	writeTotal := func(label, value string, bold bool) {
		style := ""
		if bold {
			style = "B"
		}
		pdf.SetFont("Helvetica", style, 10)
		pdf.CellFormat(140, 7, label, "", 0, "R", false, 0, "")
		pdf.CellFormat(40, 7, value, "", 1, "R", false, 0, "")
	}

	ledger := inv.Ledger
	writeTotal("Subtotal", helpers.FormatCurrency(ledger.Subtotal), false)
	if !ledger.DiscountAmount.IsZero() {
		writeTotal(fmt.Sprintf("Discount (%s%%)", ledger.DiscountPercent), "-"+helpers.FormatCurrency(ledger.DiscountAmount), false)
	}
	writeTotal("Total", helpers.FormatCurrency(ledger.Total), true)
	writeTotal("Deposit", helpers.FormatCurrency(ledger.Deposit), false)
	writeTotal("Balance Due", helpers.FormatCurrency(ledger.BalanceDue), true)

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.CellFormat(0, 6, fmt.Sprintf("Status: %s", ledger.Status), "", 1, "L", false, 0, "")

	if inv.Invoice.Notes.Valid && inv.Invoice.Notes.String != "" {
		pdf.Ln(2)
		pdf.SetFont("Helvetica", "", 9)
		pdf.MultiCell(0, 5, "Notes: "+inv.Invoice.Notes.String, "", "L", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render invoice pdf: %w", err)
	}
	return buf.Bytes(), nil
}
