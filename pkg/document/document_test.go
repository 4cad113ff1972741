package document

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/invoiceapp/invoice-api/internal/domain/entity"
	"github.com/invoiceapp/invoice-api/internal/domain/enum"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func sampleInvoice() *entity.Invoice {
	addr := "12 Market Road"
	city := "Pune"
	desc := "Premium quality"
	return &entity.Invoice{
		ID:            uuid.New(),
		InvoiceNumber: "INV-0042",
		InvoiceDate:   time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC),
		Customer: entity.Customer{
			Name:    "Acme Traders",
			Address: &addr,
			City:    &city,
		},
		Items: []entity.InvoiceItem{
			{Position: 1, ProductName: "Apples", Description: &desc, Quantity: dec("2"), Rate: dec("100"), Amount: dec("200")},
			{Position: 2, ProductName: "Oranges", Quantity: dec("1"), Rate: dec("50"), Amount: dec("50")},
		},
		TaxRate:     dec("18"),
		Subtotal:    dec("250"),
		TaxAmount:   dec("45"),
		TotalAmount: dec("295"),
		Status:      enum.InvoiceStatusSent,
	}
}

func sampleProfile() *entity.BusinessProfile {
	return &entity.BusinessProfile{
		CompanyName:   "Sunrise Supplies",
		GSTNumber:     "27AAAAA0000A1Z5",
		PANNumber:     "AAAAA0000A",
		Address:       "4 Industrial Estate",
		City:          "Mumbai",
		State:         "Maharashtra",
		Pincode:       "400001",
		StateCode:     "27",
		BankName:      "State Bank",
		AccountNumber: "1234567890",
		IFSCCode:      "SBIN0000123",
		AccountHolder: "Sunrise Supplies",
	}
}

func TestRenderHTMLIsDeterministic(t *testing.T) {
	inv := sampleInvoice()
	profile := sampleProfile()

	first, err := RenderHTML(inv, profile, ModePrint)
	require.NoError(t, err)
	second, err := RenderHTML(inv, profile, ModePrint)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestRenderHTMLSections(t *testing.T) {
	out, err := RenderHTML(sampleInvoice(), sampleProfile(), ModePrint)
	require.NoError(t, err)
	html := string(out)

	assert.Contains(t, html, "TAX INVOICE")
	assert.Contains(t, html, "INV-0042")
	assert.Contains(t, html, "15 Mar 2025")
	assert.Contains(t, html, "Sunrise Supplies")
	assert.Contains(t, html, "Bill To")
	assert.Contains(t, html, "Ship To")
	assert.Contains(t, html, "Apples")
	assert.Contains(t, html, "Premium quality")
	assert.Contains(t, html, FooterText)

	// tax split: both halves of 45.00 at half the 18% rate
	assert.Contains(t, html, "CGST (9%)")
	assert.Contains(t, html, "SGST (9%)")
	assert.Contains(t, html, "22.50")
	assert.Contains(t, html, "295.00")

	// items numbered in order
	require.Less(t, strings.Index(html, "Apples"), strings.Index(html, "Oranges"))
}

func TestRenderHTMLNotesSection(t *testing.T) {
	t.Run("empty notes renders no block", func(t *testing.T) {
		inv := sampleInvoice()
		empty := ""
		inv.Notes = &empty

		out, err := RenderHTML(inv, sampleProfile(), ModePrint)
		require.NoError(t, err)

		assert.NotContains(t, string(out), ">Notes<")
	})

	t.Run("non-empty notes renders one block", func(t *testing.T) {
		inv := sampleInvoice()
		notes := "Thank you"
		inv.Notes = &notes

		out, err := RenderHTML(inv, sampleProfile(), ModePrint)
		require.NoError(t, err)

		assert.Equal(t, 1, strings.Count(string(out), ">Notes<"))
		assert.Contains(t, string(out), "Thank you")
	})
}

func TestBankDetailsPreference(t *testing.T) {
	t.Run("invoice bank wins over profile bank", func(t *testing.T) {
		inv := sampleInvoice()
		inv.BankDetails = entity.BankDetails{
			BankName:      "Union Bank",
			AccountNumber: "999",
			IFSCCode:      "UBIN0000999",
			AccountHolder: "Acme Traders",
		}

		view := BuildView(inv, sampleProfile(), ModePrint)

		require.True(t, view.HasBank())
		assert.Equal(t, "Union Bank", view.Bank.BankName)
	})

	t.Run("falls back to profile bank", func(t *testing.T) {
		view := BuildView(sampleInvoice(), sampleProfile(), ModePrint)

		require.True(t, view.HasBank())
		assert.Equal(t, "State Bank", view.Bank.BankName)
	})

	t.Run("no bank anywhere hides the section", func(t *testing.T) {
		profile := sampleProfile()
		profile.BankName = ""

		view := BuildView(sampleInvoice(), profile, ModePrint)

		assert.False(t, view.HasBank())

		out, err := RenderHTML(sampleInvoice(), profile, ModePrint)
		require.NoError(t, err)
		assert.NotContains(t, string(out), "Bank Details")
	})
}

func TestMissingFieldsRenderBlank(t *testing.T) {
	inv := sampleInvoice()
	inv.Customer = entity.Customer{Name: "Acme Traders"}

	out, err := RenderHTML(inv, nil, ModePrint)
	require.NoError(t, err)
	html := string(out)

	assert.NotContains(t, html, "undefined")
	assert.NotContains(t, html, "Your Company Name")
	assert.Contains(t, html, "Acme Traders")
}

func TestScreenModeCarriesSameContent(t *testing.T) {
	inv := sampleInvoice()
	profile := sampleProfile()

	screen, err := RenderHTML(inv, profile, ModeScreen)
	require.NoError(t, err)
	print, err := RenderHTML(inv, profile, ModePrint)
	require.NoError(t, err)

	// screen mode adds the status bar and nothing else
	assert.Contains(t, string(screen), "Status: sent")
	assert.NotContains(t, string(print), "Status: sent")
	for _, fragment := range []string{"INV-0042", "295.00", "CGST (9%)", FooterText} {
		assert.Contains(t, string(screen), fragment)
		assert.Contains(t, string(print), fragment)
	}
}

func TestRenderPDF(t *testing.T) {
	out, err := RenderPDF(sampleInvoice(), sampleProfile())
	require.NoError(t, err)

	require.NotEmpty(t, out)
	assert.True(t, strings.HasPrefix(string(out), "%PDF"), "output must be a PDF stream")
}

func TestMoneyFormatting(t *testing.T) {
	assert.Equal(t, "22.50", Money(dec("22.5")))
	assert.Equal(t, "83.33", Money(dec("83.325")))
	assert.Equal(t, "0.00", Money(decimal.Zero))
	assert.Equal(t, "9", Percent(dec("18").Div(dec("2"))))
	assert.Equal(t, "2.5", Percent(dec("5").Div(dec("2"))))
}
