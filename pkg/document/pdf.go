package document

import (
	"bytes"
	"fmt"

	"github.com/invoiceapp/invoice-api/internal/domain/entity"
	"github.com/jung-kurt/gofpdf"
)

// RenderPDF produces the invoice document as a PDF. Layout mirrors the
// HTML renderer section for section so both outputs carry the same
// visible content.
func RenderPDF(inv *entity.Invoice, profile *entity.BusinessProfile) ([]byte, error) {
	view := BuildView(inv, profile, ModePrint)

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 20)
	pdf.AddPage()

	left, _, right, _ := pdf.GetMargins()
	pageW, _ := pdf.GetPageSize()
	contentW := pageW - left - right

	// Header: business identity on the left, invoice metadata on the right
	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(contentW/2, 7, view.Business.CompanyName, "", 0, "L", false, 0, "")
	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(contentW/2, 7, view.Title, "", 1, "R", false, 0, "")

	pdf.SetFont("Arial", "", 9)
	headerLeft := []string{
		view.Business.Address,
		fmt.Sprintf("%s %s %s", view.Business.City, view.Business.State, view.Business.Pincode),
		"GSTIN: " + view.Business.GSTNumber,
		"PAN: " + view.Business.PANNumber,
		view.Business.Phone,
		view.Business.Email,
	}
	headerRight := []string{
		"Invoice No: " + view.InvoiceNumber,
		"Date: " + view.InvoiceDate,
	}
	if view.DueDate != "" {
		headerRight = append(headerRight, "Due Date: "+view.DueDate)
	}
	headerRight = append(headerRight, "State Code: "+view.Business.StateCode)

	lines := len(headerLeft)
	if len(headerRight) > lines {
		lines = len(headerRight)
	}
	for i := 0; i < lines; i++ {
		l, r := "", ""
		if i < len(headerLeft) {
			l = headerLeft[i]
		}
		if i < len(headerRight) {
			r = headerRight[i]
		}
		pdf.CellFormat(contentW/2, 5, l, "", 0, "L", false, 0, "")
		pdf.CellFormat(contentW/2, 5, r, "", 1, "R", false, 0, "")
	}
	pdf.Ln(4)

	// Bill-to and ship-to blocks side by side
	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(contentW/2, 6, "Bill To", "B", 0, "L", false, 0, "")
	pdf.CellFormat(contentW/2, 6, "Ship To", "B", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 9)
	billLines := []string{
		view.BillTo.Name,
		view.BillTo.Address,
		fmt.Sprintf("%s %s %s", view.BillTo.City, view.BillTo.State, view.BillTo.Pincode),
		view.BillTo.Phone,
		view.BillTo.Email,
	}
	shipLines := []string{
		view.ShipTo.Name,
		view.ShipTo.Address,
		fmt.Sprintf("%s %s %s", view.ShipTo.City, view.ShipTo.State, view.ShipTo.Pincode),
		"",
		"",
	}
	for i := range billLines {
		pdf.CellFormat(contentW/2, 5, billLines[i], "", 0, "L", false, 0, "")
		pdf.CellFormat(contentW/2, 5, shipLines[i], "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)

	// Line-item table
	colW := []float64{14, contentW - 14 - 20 - 28 - 30, 20, 28, 30}
	pdf.SetFont("Arial", "B", 9)
	pdf.SetFillColor(240, 240, 240)
	pdf.CellFormat(colW[0], 7, "S.No", "1", 0, "L", true, 0, "")
	pdf.CellFormat(colW[1], 7, "Description", "1", 0, "L", true, 0, "")
	pdf.CellFormat(colW[2], 7, "Qty", "1", 0, "R", true, 0, "")
	pdf.CellFormat(colW[3], 7, "Rate", "1", 0, "R", true, 0, "")
	pdf.CellFormat(colW[4], 7, "Amount", "1", 1, "R", true, 0, "")

	pdf.SetFont("Arial", "", 9)
	for _, row := range view.Rows {
		desc := row.Name
		if row.Description != "" {
			desc = row.Name + " - " + row.Description
		}
		pdf.CellFormat(colW[0], 6, fmt.Sprintf("%d", row.SNo), "1", 0, "L", false, 0, "")
		pdf.CellFormat(colW[1], 6, desc, "1", 0, "L", false, 0, "")
		pdf.CellFormat(colW[2], 6, row.Quantity, "1", 0, "R", false, 0, "")
		pdf.CellFormat(colW[3], 6, row.Rate, "1", 0, "R", false, 0, "")
		pdf.CellFormat(colW[4], 6, row.Amount, "1", 1, "R", false, 0, "")
	}
	pdf.Ln(2)

	// Totals block, right aligned
	labelW, valueW := 50.0, 30.0
	indent := contentW - labelW - valueW
	writeTotal := func(label, value string, bold bool) {
		style := ""
		if bold {
			style = "B"
		}
		pdf.SetFont("Arial", style, 9)
		pdf.CellFormat(indent, 6, "", "", 0, "L", false, 0, "")
		pdf.CellFormat(labelW, 6, label, "", 0, "L", false, 0, "")
		pdf.CellFormat(valueW, 6, value, "", 1, "R", false, 0, "")
	}
	writeTotal("Subtotal", view.Totals.Subtotal, false)
	writeTotal(fmt.Sprintf("CGST (%s%%)", view.Totals.CGSTRate), view.Totals.CGST, false)
	writeTotal(fmt.Sprintf("SGST (%s%%)", view.Totals.SGSTRate), view.Totals.SGST, false)
	writeTotal("Total", view.Totals.Total, true)
	pdf.Ln(4)

	// Notes, only when present
	if view.HasNotes() {
		pdf.SetFont("Arial", "B", 10)
		pdf.CellFormat(contentW, 6, "Notes", "B", 1, "L", false, 0, "")
		pdf.SetFont("Arial", "", 9)
		pdf.MultiCell(contentW, 5, view.Notes, "", "L", false)
		pdf.Ln(2)
	}

	// Bank details, only when present
	if view.HasBank() {
		pdf.SetFont("Arial", "B", 10)
		pdf.CellFormat(contentW, 6, "Bank Details", "B", 1, "L", false, 0, "")
		pdf.SetFont("Arial", "", 9)
		pdf.CellFormat(contentW, 5, "Bank: "+view.Bank.BankName, "", 1, "L", false, 0, "")
		pdf.CellFormat(contentW, 5, "Account No: "+view.Bank.AccountNumber, "", 1, "L", false, 0, "")
		pdf.CellFormat(contentW, 5, "IFSC: "+view.Bank.IFSCCode, "", 1, "L", false, 0, "")
		pdf.CellFormat(contentW, 5, "Account Holder: "+view.Bank.AccountHolder, "", 1, "L", false, 0, "")
		pdf.Ln(2)
	}

	// Footer disclaimer
	pdf.Ln(6)
	pdf.SetFont("Arial", "I", 8)
	pdf.CellFormat(contentW, 5, view.Footer, "T", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
