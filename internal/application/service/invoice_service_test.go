package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/invoiceapp/invoice-api/internal/domain/entity"
	"github.com/invoiceapp/invoice-api/internal/domain/enum"
	"github.com/invoiceapp/invoice-api/internal/domain/repository"
	"github.com/invoiceapp/invoice-api/pkg/apperror"
	"github.com/invoiceapp/invoice-api/pkg/utils"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// fakeInvoiceRepo is an in-memory InvoiceRepository
type fakeInvoiceRepo struct {
	invoices map[uuid.UUID]*entity.Invoice
	seq      int64
}

func newFakeInvoiceRepo() *fakeInvoiceRepo {
	return &fakeInvoiceRepo{invoices: make(map[uuid.UUID]*entity.Invoice)}
}

func (f *fakeInvoiceRepo) Create(_ context.Context, inv *entity.Invoice) error {
	f.seq++
	inv.InvoiceNumber = utils.FormatInvoiceNumber(f.seq)
	if inv.ID == uuid.Nil {
		inv.ID = uuid.New()
	}
	f.invoices[inv.ID] = inv
	return nil
}

func (f *fakeInvoiceRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Invoice, error) {
	return f.invoices[id], nil
}

func (f *fakeInvoiceRepo) GetByNumber(_ context.Context, number string) (*entity.Invoice, error) {
	for _, inv := range f.invoices {
		if inv.InvoiceNumber == number {
			return inv, nil
		}
	}
	return nil, nil
}

func (f *fakeInvoiceRepo) UpdateStatus(_ context.Context, id uuid.UUID, status enum.InvoiceStatus) error {
	f.invoices[id].Status = status
	return nil
}

func (f *fakeInvoiceRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.invoices, id)
	return nil
}

func (f *fakeInvoiceRepo) List(_ context.Context, _ *repository.InvoiceFilterParams) ([]entity.Invoice, int64, error) {
	out := make([]entity.Invoice, 0, len(f.invoices))
	for _, inv := range f.invoices {
		out = append(out, *inv)
	}
	return out, int64(len(out)), nil
}

func (f *fakeInvoiceRepo) ListAll(_ context.Context, _ *enum.InvoiceStatus) ([]entity.Invoice, error) {
	out := make([]entity.Invoice, 0, len(f.invoices))
	for _, inv := range f.invoices {
		out = append(out, *inv)
	}
	return out, nil
}

func (f *fakeInvoiceRepo) Count(_ context.Context) (int64, error) {
	return int64(len(f.invoices)), nil
}

func (f *fakeInvoiceRepo) CountByStatus(_ context.Context) ([]repository.StatusCountResult, error) {
	counts := make(map[enum.InvoiceStatus]int64)
	for _, inv := range f.invoices {
		counts[inv.Status]++
	}
	out := make([]repository.StatusCountResult, 0, len(counts))
	for s, n := range counts {
		out = append(out, repository.StatusCountResult{Status: s, Count: n})
	}
	return out, nil
}

func (f *fakeInvoiceRepo) GetRevenue(_ context.Context) (*repository.RevenueResult, error) {
	result := &repository.RevenueResult{TotalRevenue: decimal.Zero, PendingAmount: decimal.Zero}
	for _, inv := range f.invoices {
		switch inv.Status {
		case enum.InvoiceStatusPaid:
			result.TotalRevenue = result.TotalRevenue.Add(inv.TotalAmount)
		case enum.InvoiceStatusSent, enum.InvoiceStatusOverdue:
			result.PendingAmount = result.PendingAmount.Add(inv.TotalAmount)
		}
	}
	return result, nil
}

func (f *fakeInvoiceRepo) GetTopProducts(_ context.Context, limit int) ([]repository.TopProductResult, error) {
	totals := make(map[string]*repository.TopProductResult)
	for _, inv := range f.invoices {
		for _, item := range inv.Items {
			t, ok := totals[item.ProductName]
			if !ok {
				t = &repository.TopProductResult{ProductName: item.ProductName}
				totals[item.ProductName] = t
			}
			t.TotalQuantity = t.TotalQuantity.Add(item.Quantity)
			t.TotalAmount = t.TotalAmount.Add(item.Amount)
		}
	}
	out := make([]repository.TopProductResult, 0, limit)
	for _, t := range totals {
		if len(out) == limit {
			break
		}
		out = append(out, *t)
	}
	return out, nil
}

func (f *fakeInvoiceRepo) GetRecent(_ context.Context, limit int) ([]entity.Invoice, error) {
	out := make([]entity.Invoice, 0, limit)
	for _, inv := range f.invoices {
		if len(out) == limit {
			break
		}
		out = append(out, *inv)
	}
	return out, nil
}

func validInput() *CreateInvoiceInput {
	return &CreateInvoiceInput{
		Customer: entity.Customer{Name: "Acme Traders"},
		Items: []InvoiceItemInput{
			{ProductName: "Apples", Quantity: dec("2"), Rate: dec("100")},
			{ProductName: "Oranges", Quantity: dec("1"), Rate: dec("50")},
		},
		CreatedByID: uuid.New(),
	}
}

func newInvoiceService() (*InvoiceService, *fakeInvoiceRepo) {
	repo := newFakeInvoiceRepo()
	return NewInvoiceService(repo), repo
}

func TestCreateInvoiceComputesTotalsServerSide(t *testing.T) {
	svc, _ := newInvoiceService()

	inv, err := svc.CreateInvoice(context.Background(), validInput())
	require.NoError(t, err)

	assert.Equal(t, "INV-0001", inv.InvoiceNumber)
	assert.Equal(t, enum.InvoiceStatusDraft, inv.Status)
	assert.True(t, inv.TaxRate.Equal(dec("18")), "default tax rate")
	assert.True(t, inv.Subtotal.Equal(dec("250")), "subtotal %s", inv.Subtotal)
	assert.True(t, inv.TaxAmount.Equal(dec("45")), "tax %s", inv.TaxAmount)
	assert.True(t, inv.TotalAmount.Equal(dec("295")), "total %s", inv.TotalAmount)

	require.Len(t, inv.Items, 2)
	assert.Equal(t, 1, inv.Items[0].Position)
	assert.True(t, inv.Items[0].Amount.Equal(dec("200")))
	assert.True(t, inv.Items[1].Amount.Equal(dec("50")))
}

func TestCreateInvoiceNumbersAreSequential(t *testing.T) {
	svc, _ := newInvoiceService()

	first, err := svc.CreateInvoice(context.Background(), validInput())
	require.NoError(t, err)
	second, err := svc.CreateInvoice(context.Background(), validInput())
	require.NoError(t, err)

	assert.Equal(t, "INV-0001", first.InvoiceNumber)
	assert.Equal(t, "INV-0002", second.InvoiceNumber)
}

func TestCreateInvoiceValidation(t *testing.T) {
	svc, _ := newInvoiceService()
	ctx := context.Background()

	t.Run("customer name required", func(t *testing.T) {
		in := validInput()
		in.Customer.Name = "  "
		_, err := svc.CreateInvoice(ctx, in)
		require.Error(t, err)
		assert.Equal(t, 400, apperror.GetAppError(err).Code)
	})

	t.Run("at least one item", func(t *testing.T) {
		in := validInput()
		in.Items = nil
		_, err := svc.CreateInvoice(ctx, in)
		require.Error(t, err)
		assert.Equal(t, 400, apperror.GetAppError(err).Code)
	})

	t.Run("zero quantity rejected", func(t *testing.T) {
		in := validInput()
		in.Items[0].Quantity = decimal.Zero
		_, err := svc.CreateInvoice(ctx, in)
		require.Error(t, err)
		assert.Equal(t, 400, apperror.GetAppError(err).Code)
	})

	t.Run("quantity limited to two decimals", func(t *testing.T) {
		in := validInput()
		in.Items[0].Quantity = dec("1.234")
		in.Items[0].Rate = dec("100")
		_, err := svc.CreateInvoice(ctx, in)
		require.Error(t, err)
		assert.Equal(t, 400, apperror.GetAppError(err).Code)
	})

	t.Run("two decimal quantity accepted", func(t *testing.T) {
		in := validInput()
		in.Items = []InvoiceItemInput{{ProductName: "Apples", Quantity: dec("1.23"), Rate: dec("100")}}
		inv, err := svc.CreateInvoice(ctx, in)
		require.NoError(t, err)
		assert.True(t, inv.Items[0].Amount.Equal(dec("123")), "amount %s", inv.Items[0].Amount)
		assert.True(t, inv.Items[0].Quantity.Mul(inv.Items[0].Rate).Round(2).Equal(inv.Items[0].Amount))
	})

	t.Run("item name required", func(t *testing.T) {
		in := validInput()
		in.Items[1].ProductName = ""
		_, err := svc.CreateInvoice(ctx, in)
		require.Error(t, err)
	})

	t.Run("tax rate bounded", func(t *testing.T) {
		in := validInput()
		rate := dec("101")
		in.TaxRate = &rate
		_, err := svc.CreateInvoice(ctx, in)
		require.Error(t, err)
		assert.Equal(t, 400, apperror.GetAppError(err).Code)
	})
}

func TestCreateInvoiceIgnoresEmptyBankDetails(t *testing.T) {
	svc, _ := newInvoiceService()
	in := validInput()
	in.BankDetails = &entity.BankDetails{AccountNumber: "123"} // no bank name

	inv, err := svc.CreateInvoice(context.Background(), in)
	require.NoError(t, err)

	assert.False(t, inv.BankDetails.Present())
}

func TestUpdateStatusFollowsWorkflow(t *testing.T) {
	svc, _ := newInvoiceService()
	ctx := context.Background()
	inv, err := svc.CreateInvoice(ctx, validInput())
	require.NoError(t, err)

	inv, err = svc.UpdateStatus(ctx, inv.ID, enum.InvoiceStatusSent)
	require.NoError(t, err)
	assert.Equal(t, enum.InvoiceStatusSent, inv.Status)

	inv, err = svc.UpdateStatus(ctx, inv.ID, enum.InvoiceStatusOverdue)
	require.NoError(t, err)

	inv, err = svc.UpdateStatus(ctx, inv.ID, enum.InvoiceStatusPaid)
	require.NoError(t, err)
	assert.Equal(t, enum.InvoiceStatusPaid, inv.Status)
}

func TestUpdateStatusRejectsIllegalTransition(t *testing.T) {
	svc, repo := newInvoiceService()
	ctx := context.Background()
	inv, err := svc.CreateInvoice(ctx, validInput())
	require.NoError(t, err)

	// draft cannot jump straight to paid
	_, err = svc.UpdateStatus(ctx, inv.ID, enum.InvoiceStatusPaid)
	require.Error(t, err)
	assert.Equal(t, 422, apperror.GetAppError(err).Code)
	assert.Equal(t, enum.InvoiceStatusDraft, repo.invoices[inv.ID].Status)

	// paid is terminal
	repo.invoices[inv.ID].Status = enum.InvoiceStatusPaid
	_, err = svc.UpdateStatus(ctx, inv.ID, enum.InvoiceStatusDraft)
	require.Error(t, err)
	assert.Equal(t, 422, apperror.GetAppError(err).Code)
}

func TestUpdateStatusUnknownInvoice(t *testing.T) {
	svc, _ := newInvoiceService()

	_, err := svc.UpdateStatus(context.Background(), uuid.New(), enum.InvoiceStatusSent)
	require.Error(t, err)
	assert.Equal(t, 404, apperror.GetAppError(err).Code)
}

func TestDeleteInvoiceOnlyDrafts(t *testing.T) {
	svc, repo := newInvoiceService()
	ctx := context.Background()
	inv, err := svc.CreateInvoice(ctx, validInput())
	require.NoError(t, err)

	repo.invoices[inv.ID].Status = enum.InvoiceStatusSent
	err = svc.DeleteInvoice(ctx, inv.ID)
	require.Error(t, err)
	assert.Equal(t, 422, apperror.GetAppError(err).Code)

	repo.invoices[inv.ID].Status = enum.InvoiceStatusDraft
	require.NoError(t, svc.DeleteInvoice(ctx, inv.ID))
	assert.Nil(t, repo.invoices[inv.ID])
}

func TestEmailInvoiceIsStubbed(t *testing.T) {
	svc, _ := newInvoiceService()
	inv, err := svc.CreateInvoice(context.Background(), validInput())
	require.NoError(t, err)

	msg, err := svc.EmailInvoice(context.Background(), inv.ID)
	require.NoError(t, err)
	assert.Equal(t, "Email functionality coming soon", msg)
}

func TestCreateInvoiceKeepsProvidedDates(t *testing.T) {
	svc, _ := newInvoiceService()
	in := validInput()
	invDate := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)
	dueDate := time.Date(2025, 4, 15, 0, 0, 0, 0, time.UTC)
	in.InvoiceDate = &invDate
	in.DueDate = &dueDate

	inv, err := svc.CreateInvoice(context.Background(), in)
	require.NoError(t, err)

	assert.True(t, inv.InvoiceDate.Equal(invDate))
	require.NotNil(t, inv.DueDate)
	assert.True(t, inv.DueDate.Equal(dueDate))
}
