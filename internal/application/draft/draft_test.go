package draft

import (
	"testing"

	"github.com/google/uuid"
	"github.com/invoiceapp/invoice-api/internal/domain/entity"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestNewDraftStartsWithOneEmptyItem(t *testing.T) {
	d := New()

	require.Len(t, d.Items, 1)
	assert.True(t, d.Items[0].Quantity.Equal(dec("1")))
	assert.True(t, d.Items[0].Rate.IsZero())
	assert.True(t, d.Items[0].Amount.IsZero())
	assert.True(t, d.TaxRate.Equal(dec("18")))
}

func TestAddItemAppendsEmptyLine(t *testing.T) {
	d := New()
	d.AddItem()
	d.AddItem()

	require.Len(t, d.Items, 3)
	for _, it := range d.Items {
		assert.True(t, it.Amount.IsZero())
	}
}

func TestRemoveItem(t *testing.T) {
	t.Run("removes the item at index", func(t *testing.T) {
		d := New()
		d.AddItem()
		require.NoError(t, d.SetProductName(0, "first"))
		require.NoError(t, d.SetProductName(1, "second"))

		d.RemoveItem(0)

		require.Len(t, d.Items, 1)
		assert.Equal(t, "second", d.Items[0].ProductName)
	})

	t.Run("last item cannot be removed", func(t *testing.T) {
		d := New()

		d.RemoveItem(0)

		assert.Len(t, d.Items, 1)
	})

	t.Run("out of range index is a no-op", func(t *testing.T) {
		d := New()
		d.AddItem()

		d.RemoveItem(5)
		d.RemoveItem(-1)

		assert.Len(t, d.Items, 2)
	})
}

func TestAmountFollowsQuantityAndRate(t *testing.T) {
	d := New()

	require.NoError(t, d.SetRate(0, dec("100")))
	assert.True(t, d.Items[0].Amount.Equal(dec("100")))

	require.NoError(t, d.SetQuantity(0, dec("2.5")))
	assert.True(t, d.Items[0].Amount.Equal(dec("250")))

	require.NoError(t, d.SetRate(0, dec("33.33")))
	// 2.5 * 33.33 = 83.325, rounds half-up to 83.33
	assert.True(t, d.Items[0].Amount.Equal(dec("83.33")), "got %s", d.Items[0].Amount)
}

func TestQuantityMustBePositive(t *testing.T) {
	d := New()

	assert.ErrorIs(t, d.SetQuantity(0, decimal.Zero), ErrQuantityNotPositive)
	assert.ErrorIs(t, d.SetQuantity(0, dec("-1")), ErrQuantityNotPositive)

	// rejected edits leave the item untouched
	assert.True(t, d.Items[0].Quantity.Equal(dec("1")))
}

func TestQuantityLimitedToTwoDecimals(t *testing.T) {
	d := New()

	assert.ErrorIs(t, d.SetQuantity(0, dec("1.234")), ErrQuantityPrecision)
	assert.True(t, d.Items[0].Quantity.Equal(dec("1")), "rejected edit must leave the item untouched")

	// two decimals and trailing zeros are fine
	require.NoError(t, d.SetQuantity(0, dec("1.25")))
	require.NoError(t, d.SetQuantity(0, dec("1.230")))
	assert.True(t, d.Items[0].Quantity.Equal(dec("1.23")))
}

func TestRateMustBeNonNegative(t *testing.T) {
	d := New()

	assert.ErrorIs(t, d.SetRate(0, dec("-0.01")), ErrNegativeRate)
	assert.True(t, d.Items[0].Rate.IsZero())
}

func TestEditsOnMissingIndexFail(t *testing.T) {
	d := New()

	assert.ErrorIs(t, d.SetQuantity(3, dec("1")), ErrItemIndexOutOfRange)
	assert.ErrorIs(t, d.SetRate(3, dec("1")), ErrItemIndexOutOfRange)
	assert.ErrorIs(t, d.SetProductName(3, "x"), ErrItemIndexOutOfRange)
	assert.ErrorIs(t, d.SetDescription(3, "x"), ErrItemIndexOutOfRange)
}

func TestSetProductNameDropsMatchedProduct(t *testing.T) {
	d := New()
	p := &entity.Product{ID: uuid.New(), Name: "Widget", CurrentPrice: dec("10")}
	require.NoError(t, d.SelectProduct(0, p))
	require.NotNil(t, d.Items[0].ProductID)

	require.NoError(t, d.SetProductName(0, "Widget Pro"))

	assert.Nil(t, d.Items[0].ProductID)
	assert.Equal(t, "Widget Pro", d.Items[0].ProductName)
}

func TestSelectProduct(t *testing.T) {
	desc := "Premium apples, per kg"
	p := &entity.Product{
		ID:           uuid.New(),
		Name:         "Apples",
		Description:  &desc,
		CurrentPrice: dec("75"),
	}

	d := New()
	require.NoError(t, d.SetQuantity(0, dec("3")))
	require.NoError(t, d.SelectProduct(0, p))

	it := d.Items[0]
	require.NotNil(t, it.ProductID)
	assert.Equal(t, p.ID, *it.ProductID)
	assert.Equal(t, "Apples", it.ProductName)
	assert.Equal(t, desc, it.Description)
	assert.True(t, it.Rate.Equal(dec("75")))
	assert.True(t, it.Quantity.Equal(dec("3")), "quantity must be kept")
	assert.True(t, it.Amount.Equal(dec("225")), "got %s", it.Amount)
}

func TestTotals(t *testing.T) {
	d := New()
	require.NoError(t, d.SetQuantity(0, dec("2")))
	require.NoError(t, d.SetRate(0, dec("100")))
	d.AddItem()
	require.NoError(t, d.SetRate(1, dec("50")))

	totals := d.Totals()

	assert.True(t, totals.Subtotal.Equal(dec("250")), "subtotal %s", totals.Subtotal)
	assert.True(t, totals.TaxAmount.Equal(dec("45")), "tax %s", totals.TaxAmount)
	assert.True(t, totals.Total.Equal(dec("295")), "total %s", totals.Total)
	assert.True(t, totals.CGST.Equal(dec("22.5")), "cgst %s", totals.CGST)
	assert.True(t, totals.SGST.Equal(dec("22.5")), "sgst %s", totals.SGST)
	assert.True(t, totals.CGSTRate.Equal(dec("9")))
	assert.True(t, totals.SGSTRate.Equal(dec("9")))
}

func TestTotalsIdentities(t *testing.T) {
	rates := []string{"0", "5", "12", "18", "28", "100"}
	for _, r := range rates {
		d := NewWithTaxRate(dec(r))
		require.NoError(t, d.SetQuantity(0, dec("3")))
		require.NoError(t, d.SetRate(0, dec("19.99")))
		d.AddItem()
		require.NoError(t, d.SetQuantity(1, dec("0.5")))
		require.NoError(t, d.SetRate(1, dec("120")))

		totals := d.Totals()

		sum := decimal.Zero
		for _, it := range d.Items {
			sum = sum.Add(it.Amount)
		}
		assert.True(t, totals.Subtotal.Equal(sum), "rate %s: subtotal must equal item sum", r)
		assert.True(t, totals.TaxAmount.Equal(sum.Mul(dec(r)).Div(dec("100"))), "rate %s", r)
		assert.True(t, totals.Total.Equal(totals.Subtotal.Add(totals.TaxAmount)), "rate %s", r)
		assert.True(t, totals.CGST.Add(totals.SGST).Equal(totals.TaxAmount), "rate %s: halves must sum to tax", r)
	}
}

func TestTotalsRecomputedAfterEveryEdit(t *testing.T) {
	d := New()
	require.NoError(t, d.SetQuantity(0, dec("2")))
	require.NoError(t, d.SetRate(0, dec("100")))
	before := d.Totals()
	require.True(t, before.Total.Equal(dec("236")))

	require.NoError(t, d.SetRate(0, dec("200")))
	after := d.Totals()

	assert.True(t, after.Subtotal.Equal(dec("400")))
	assert.True(t, after.Total.Equal(dec("472")))
}
