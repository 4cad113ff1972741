package document

import (
	"time"

	"github.com/invoiceapp/invoice-api/internal/domain/entity"
	"github.com/invoiceapp/invoice-api/internal/domain/enum"
	"github.com/shopspring/decimal"
)

// Mode selects the presentation chrome. Both modes carry identical
// document content; screen mode additionally shows the status controls.
type Mode string

const (
	ModeScreen Mode = "screen"
	ModePrint  Mode = "print"
)

// Title is the fixed document heading.
const Title = "TAX INVOICE"

// FooterText is the fixed disclaimer printed at the bottom of every invoice.
const FooterText = "This is a computer generated invoice and does not require a signature."

const dateLayout = "02 Jan 2006"

// BusinessView is the issuing business block in the document header.
// Missing fields stay blank; the renderer never substitutes placeholder
// labels for absent values.
type BusinessView struct {
	CompanyName string
	Address     string
	City        string
	State       string
	Pincode     string
	GSTNumber   string
	PANNumber   string
	StateCode   string
	Phone       string
	Email       string
}

// PartyView is a bill-to or ship-to block
type PartyView struct {
	Name    string
	Address string
	City    string
	State   string
	Pincode string
	Phone   string
	Email   string
}

// RowView is one rendered line-item table row
type RowView struct {
	SNo         int
	Name        string
	Description string
	Quantity    string
	Rate        string
	Amount      string
}

// TotalsView is the rendered totals block. CGST and SGST are each half
// of the invoice tax amount and half of the tax rate.
type TotalsView struct {
	Subtotal string
	CGSTRate string
	CGST     string
	SGSTRate string
	SGST     string
	Total    string
}

// BankView is the rendered bank-details block
type BankView struct {
	BankName      string
	AccountNumber string
	IFSCCode      string
	AccountHolder string
}

// View is the fully resolved, render-ready form of an invoice. It is a
// pure function of the invoice and business profile values: no
// wall-clock time, no I/O, so the same inputs always yield the same view.
type View struct {
	Mode Mode

	Title         string
	Business      BusinessView
	InvoiceNumber string
	InvoiceDate   string
	DueDate       string
	Status        enum.InvoiceStatus

	BillTo PartyView
	ShipTo PartyView

	Rows   []RowView
	Totals TotalsView

	Notes  string
	Bank   *BankView
	Footer string
}

// HasNotes reports whether the notes section should be rendered.
func (v View) HasNotes() bool {
	return v.Notes != ""
}

// HasBank reports whether the bank-details section should be rendered.
func (v View) HasBank() bool {
	return v.Bank != nil
}

// Money formats an amount with exactly two decimal places, half-up.
func Money(d decimal.Decimal) string {
	return d.Round(2).StringFixed(2)
}

// Percent formats a tax percentage without trailing zeros.
func Percent(d decimal.Decimal) string {
	return d.String()
}

func strOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func formatDate(t time.Time) string {
	return t.Format(dateLayout)
}

// BuildView resolves an invoice and the business profile into a View.
// The profile may be nil; its fields then render blank. Bank details
// come from the invoice when present, falling back to the profile's
// bank fields.
func BuildView(inv *entity.Invoice, profile *entity.BusinessProfile, mode Mode) View {
	v := View{
		Mode:          mode,
		Title:         Title,
		InvoiceNumber: inv.InvoiceNumber,
		InvoiceDate:   formatDate(inv.InvoiceDate),
		Status:        inv.Status,
		Footer:        FooterText,
	}

	if inv.DueDate != nil {
		v.DueDate = formatDate(*inv.DueDate)
	}

	if profile != nil {
		v.Business = BusinessView{
			CompanyName: profile.CompanyName,
			Address:     profile.Address,
			City:        profile.City,
			State:       profile.State,
			Pincode:     profile.Pincode,
			GSTNumber:   profile.GSTNumber,
			PANNumber:   profile.PANNumber,
			StateCode:   profile.StateCode,
			Phone:       profile.Phone,
			Email:       profile.Email,
		}
	}

	billTo := PartyView{
		Name:    inv.Customer.Name,
		Address: strOrEmpty(inv.Customer.Address),
		City:    strOrEmpty(inv.Customer.City),
		State:   strOrEmpty(inv.Customer.State),
		Pincode: strOrEmpty(inv.Customer.Pincode),
		Phone:   strOrEmpty(inv.Customer.Phone),
		Email:   strOrEmpty(inv.Customer.Email),
	}
	v.BillTo = billTo
	// Ship-to duplicates the billing name and address; no separate
	// shipping address is modeled.
	v.ShipTo = PartyView{
		Name:    billTo.Name,
		Address: billTo.Address,
		City:    billTo.City,
		State:   billTo.State,
		Pincode: billTo.Pincode,
	}

	v.Rows = make([]RowView, 0, len(inv.Items))
	for i, it := range inv.Items {
		v.Rows = append(v.Rows, RowView{
			SNo:         i + 1,
			Name:        it.ProductName,
			Description: strOrEmpty(it.Description),
			Quantity:    it.Quantity.StringFixed(2),
			Rate:        Money(it.Rate),
			Amount:      Money(it.Amount),
		})
	}

	two := decimal.NewFromInt(2)
	halfRate := inv.TaxRate.Div(two)
	halfTax := inv.TaxAmount.Div(two)
	v.Totals = TotalsView{
		Subtotal: Money(inv.Subtotal),
		CGSTRate: Percent(halfRate),
		CGST:     Money(halfTax),
		SGSTRate: Percent(halfRate),
		SGST:     Money(halfTax),
		Total:    Money(inv.TotalAmount),
	}

	if inv.Notes != nil {
		v.Notes = *inv.Notes
	}

	if inv.BankDetails.Present() {
		v.Bank = &BankView{
			BankName:      inv.BankDetails.BankName,
			AccountNumber: inv.BankDetails.AccountNumber,
			IFSCCode:      inv.BankDetails.IFSCCode,
			AccountHolder: inv.BankDetails.AccountHolder,
		}
	} else if profile != nil && profile.BankName != "" {
		v.Bank = &BankView{
			BankName:      profile.BankName,
			AccountNumber: profile.AccountNumber,
			IFSCCode:      profile.IFSCCode,
			AccountHolder: profile.AccountHolder,
		}
	}

	return v
}
