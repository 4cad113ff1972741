package document

import (
	"bytes"
	"html/template"

	"github.com/invoiceapp/invoice-api/internal/domain/entity"
)

// invoiceTemplate lays out the seven document sections in fixed order:
// header, bill-to/ship-to, line-item table, totals, notes, bank
// details, footer. Print mode strips the status bar; the visible
// document content is identical in both modes.
const invoiceTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}} {{.InvoiceNumber}}</title>
<style>
body { font-family: Arial, Helvetica, sans-serif; font-size: 13px; color: #111; margin: 0; }
.page { max-width: 800px; margin: 0 auto; padding: 24px; }
.header { display: flex; justify-content: space-between; border-bottom: 2px solid #111; padding-bottom: 12px; }
.company h1 { font-size: 18px; margin: 0 0 4px 0; }
.meta { text-align: right; }
.meta .title { font-size: 20px; font-weight: bold; letter-spacing: 2px; }
.parties { display: flex; justify-content: space-between; margin-top: 16px; }
.party { width: 48%; }
.party h3 { font-size: 12px; text-transform: uppercase; border-bottom: 1px solid #ccc; padding-bottom: 4px; }
table.items { width: 100%; border-collapse: collapse; margin-top: 16px; }
table.items th, table.items td { border: 1px solid #444; padding: 6px 8px; }
table.items th { background: #f0f0f0; text-align: left; }
td.num, th.num { text-align: right; }
.totals { width: 280px; margin-left: auto; margin-top: 12px; }
.totals table { width: 100%; border-collapse: collapse; }
.totals td { padding: 4px 8px; }
.totals tr.grand td { border-top: 2px solid #111; font-weight: bold; }
.section { margin-top: 16px; }
.section h3 { font-size: 12px; text-transform: uppercase; border-bottom: 1px solid #ccc; padding-bottom: 4px; }
.footer { margin-top: 32px; text-align: center; font-size: 11px; color: #555; border-top: 1px solid #ccc; padding-top: 8px; }
.statusbar { background: #f5f5f5; padding: 8px 24px; font-size: 12px; }
</style>
</head>
<body>
{{- if eq .Mode "screen"}}
<div class="statusbar">Status: {{.Status}}</div>
{{- end}}
<div class="page">
<div class="header">
<div class="company">
<h1>{{.Business.CompanyName}}</h1>
<div>{{.Business.Address}}</div>
<div>{{.Business.City}} {{.Business.State}} {{.Business.Pincode}}</div>
<div>GSTIN: {{.Business.GSTNumber}}</div>
<div>PAN: {{.Business.PANNumber}}</div>
<div>{{.Business.Phone}}</div>
<div>{{.Business.Email}}</div>
</div>
<div class="meta">
<div class="title">{{.Title}}</div>
<div>Invoice No: {{.InvoiceNumber}}</div>
<div>Date: {{.InvoiceDate}}</div>
{{- if .DueDate}}
<div>Due Date: {{.DueDate}}</div>
{{- end}}
<div>State Code: {{.Business.StateCode}}</div>
</div>
</div>
<div class="parties">
<div class="party">
<h3>Bill To</h3>
<div>{{.BillTo.Name}}</div>
<div>{{.BillTo.Address}}</div>
<div>{{.BillTo.City}} {{.BillTo.State}} {{.BillTo.Pincode}}</div>
<div>{{.BillTo.Phone}}</div>
<div>{{.BillTo.Email}}</div>
</div>
<div class="party">
<h3>Ship To</h3>
<div>{{.ShipTo.Name}}</div>
<div>{{.ShipTo.Address}}</div>
<div>{{.ShipTo.City}} {{.ShipTo.State}} {{.ShipTo.Pincode}}</div>
</div>
</div>
<table class="items">
<tr><th>S.No</th><th>Description</th><th class="num">Qty</th><th class="num">Rate</th><th class="num">Amount</th></tr>
{{- range .Rows}}
<tr>
<td>{{.SNo}}</td>
<td>{{.Name}}{{if .Description}}<br><small>{{.Description}}</small>{{end}}</td>
<td class="num">{{.Quantity}}</td>
<td class="num">{{.Rate}}</td>
<td class="num">{{.Amount}}</td>
</tr>
{{- end}}
</table>
<div class="totals">
<table>
<tr><td>Subtotal</td><td class="num">{{.Totals.Subtotal}}</td></tr>
<tr><td>CGST ({{.Totals.CGSTRate}}%)</td><td class="num">{{.Totals.CGST}}</td></tr>
<tr><td>SGST ({{.Totals.SGSTRate}}%)</td><td class="num">{{.Totals.SGST}}</td></tr>
<tr class="grand"><td>Total</td><td class="num">{{.Totals.Total}}</td></tr>
</table>
</div>
{{- if .HasNotes}}
<div class="section notes">
<h3>Notes</h3>
<div>{{.Notes}}</div>
</div>
{{- end}}
{{- if .HasBank}}
<div class="section bank">
<h3>Bank Details</h3>
<div>Bank: {{.Bank.BankName}}</div>
<div>Account No: {{.Bank.AccountNumber}}</div>
<div>IFSC: {{.Bank.IFSCCode}}</div>
<div>Account Holder: {{.Bank.AccountHolder}}</div>
</div>
{{- end}}
<div class="footer">{{.Footer}}</div>
</div>
</body>
</html>
`

var htmlTmpl = template.Must(template.New("invoice").Parse(invoiceTemplate))

// RenderHTML produces the invoice document as HTML. It is deterministic:
// the same invoice and profile values always yield identical bytes.
func RenderHTML(inv *entity.Invoice, profile *entity.BusinessProfile, mode Mode) ([]byte, error) {
	view := BuildView(inv, profile, mode)
	var buf bytes.Buffer
	if err := htmlTmpl.Execute(&buf, view); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
