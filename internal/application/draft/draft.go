package draft

import (
	"errors"

	"github.com/google/uuid"
	"github.com/invoiceapp/invoice-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

var (
	// ErrQuantityNotPositive is returned when a quantity edit is zero or negative.
	// Zero-quantity rows are never accepted into a draft.
	ErrQuantityNotPositive = errors.New("quantity must be greater than zero")
	// ErrQuantityPrecision is returned when a quantity carries more than
	// two decimal places. Quantities are stored at two decimals, so finer
	// values would desync the stored amount from quantity times rate.
	ErrQuantityPrecision = errors.New("quantity cannot have more than two decimal places")
	// ErrNegativeRate is returned when a rate edit is below zero
	ErrNegativeRate = errors.New("rate cannot be negative")
	// ErrItemIndexOutOfRange is returned when an edit targets a missing item
	ErrItemIndexOutOfRange = errors.New("item index out of range")
)

var hundred = decimal.NewFromInt(100)

// DefaultTaxRate is the GST percentage applied to new drafts.
func DefaultTaxRate() decimal.Decimal {
	return decimal.NewFromInt(18)
}

// Item is one line of an in-progress invoice. Amount is always derived
// from quantity and rate; it is never set directly.
type Item struct {
	ProductID   *uuid.UUID
	ProductName string
	Description string
	Quantity    decimal.Decimal
	Rate        decimal.Decimal
	Amount      decimal.Decimal
}

func (it *Item) recompute() {
	it.Amount = it.Quantity.Mul(it.Rate).Round(2)
}

// Draft is an unpersisted invoice under construction. All mutations go
// through its methods so line amounts and totals never go stale.
type Draft struct {
	Customer    entity.Customer
	Items       []Item
	TaxRate     decimal.Decimal
	BankDetails entity.BankDetails
	Notes       string
}

// New creates a draft with the default tax rate and a single empty item.
func New() *Draft {
	return NewWithTaxRate(DefaultTaxRate())
}

// NewWithTaxRate creates a draft with a single empty item and the given
// tax percentage. A draft always holds at least one item.
func NewWithTaxRate(taxRate decimal.Decimal) *Draft {
	d := &Draft{TaxRate: taxRate}
	d.AddItem()
	return d
}

// AddItem appends an empty line with quantity 1 and rate 0.
func (d *Draft) AddItem() {
	d.Items = append(d.Items, Item{
		Quantity: decimal.NewFromInt(1),
		Rate:     decimal.Zero,
		Amount:   decimal.Zero,
	})
}

// RemoveItem deletes the item at index. Removing the last remaining
// item is a silent no-op: a draft may never have zero items. An
// out-of-range index is likewise ignored.
func (d *Draft) RemoveItem(index int) {
	if len(d.Items) <= 1 {
		return
	}
	if index < 0 || index >= len(d.Items) {
		return
	}
	d.Items = append(d.Items[:index], d.Items[index+1:]...)
}

// SetQuantity updates the quantity at index and recomputes the amount.
func (d *Draft) SetQuantity(index int, quantity decimal.Decimal) error {
	if index < 0 || index >= len(d.Items) {
		return ErrItemIndexOutOfRange
	}
	if quantity.LessThanOrEqual(decimal.Zero) {
		return ErrQuantityNotPositive
	}
	if !quantity.Equal(quantity.Round(2)) {
		return ErrQuantityPrecision
	}
	it := &d.Items[index]
	it.Quantity = quantity
	it.recompute()
	return nil
}

// SetRate updates the unit price at index and recomputes the amount.
func (d *Draft) SetRate(index int, rate decimal.Decimal) error {
	if index < 0 || index >= len(d.Items) {
		return ErrItemIndexOutOfRange
	}
	if rate.IsNegative() {
		return ErrNegativeRate
	}
	it := &d.Items[index]
	it.Rate = rate
	it.recompute()
	return nil
}

// SetProductName updates the typed product name at index. Any matched
// product reference is dropped since the name no longer came from it.
func (d *Draft) SetProductName(index int, name string) error {
	if index < 0 || index >= len(d.Items) {
		return ErrItemIndexOutOfRange
	}
	it := &d.Items[index]
	it.ProductName = name
	it.ProductID = nil
	return nil
}

// SetDescription updates the optional sub-line description at index.
func (d *Draft) SetDescription(index int, description string) error {
	if index < 0 || index >= len(d.Items) {
		return ErrItemIndexOutOfRange
	}
	d.Items[index].Description = description
	return nil
}

// SelectProduct fills the item at index from a chosen catalog product:
// product reference, name, description and rate are overwritten, the
// quantity is kept, and the amount is recomputed from the new rate.
func (d *Draft) SelectProduct(index int, product *entity.Product) error {
	if index < 0 || index >= len(d.Items) {
		return ErrItemIndexOutOfRange
	}
	it := &d.Items[index]
	id := product.ID
	it.ProductID = &id
	it.ProductName = product.Name
	if product.Description != nil {
		it.Description = *product.Description
	} else {
		it.Description = ""
	}
	it.Rate = product.CurrentPrice
	it.recompute()
	return nil
}

// Totals is the derived money summary of a draft. CGST and SGST are
// each exactly half of the tax amount and half of the tax rate.
type Totals struct {
	Subtotal  decimal.Decimal
	TaxRate   decimal.Decimal
	TaxAmount decimal.Decimal
	CGSTRate  decimal.Decimal
	SGSTRate  decimal.Decimal
	CGST      decimal.Decimal
	SGST      decimal.Decimal
	Total     decimal.Decimal
}

// Totals computes the invoice-level summary from the current items and
// tax rate. Line amounts are already rounded; the tax split is kept
// unrounded here and rounded only at display time.
func (d *Draft) Totals() Totals {
	subtotal := decimal.Zero
	for _, it := range d.Items {
		subtotal = subtotal.Add(it.Amount)
	}

	taxAmount := subtotal.Mul(d.TaxRate).Div(hundred)
	two := decimal.NewFromInt(2)
	half := taxAmount.Div(two)
	halfRate := d.TaxRate.Div(two)

	return Totals{
		Subtotal:  subtotal,
		TaxRate:   d.TaxRate,
		TaxAmount: taxAmount,
		CGSTRate:  halfRate,
		SGSTRate:  halfRate,
		CGST:      half,
		SGST:      half,
		Total:     subtotal.Add(taxAmount),
	}
}
