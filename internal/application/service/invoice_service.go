package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/invoiceapp/invoice-api/internal/application/draft"
	"github.com/invoiceapp/invoice-api/internal/domain/entity"
	"github.com/invoiceapp/invoice-api/internal/domain/enum"
	"github.com/invoiceapp/invoice-api/internal/domain/repository"
	"github.com/invoiceapp/invoice-api/pkg/apperror"
	"github.com/invoiceapp/invoice-api/pkg/pagination"
	"github.com/shopspring/decimal"
)

// InvoiceService handles invoice lifecycle operations
type InvoiceService struct {
	invoiceRepo repository.InvoiceRepository
}

// NewInvoiceService creates a new invoice service
func NewInvoiceService(invoiceRepo repository.InvoiceRepository) *InvoiceService {
	return &InvoiceService{invoiceRepo: invoiceRepo}
}

// InvoiceItemInput represents one submitted line item
type InvoiceItemInput struct {
	ProductID   *uuid.UUID
	ProductName string
	Description *string
	Quantity    decimal.Decimal
	Rate        decimal.Decimal
}

// CreateInvoiceInput represents the create invoice input
type CreateInvoiceInput struct {
	Customer    entity.Customer
	Items       []InvoiceItemInput
	TaxRate     *decimal.Decimal
	BankDetails *entity.BankDetails
	Notes       *string
	InvoiceDate *time.Time
	DueDate     *time.Time
	CreatedByID uuid.UUID
}

// CreateInvoice validates the submission, recomputes all amounts and
// totals server-side, and persists the invoice with the next
// sequential number. Client-supplied totals are never trusted.
func (s *InvoiceService) CreateInvoice(ctx context.Context, input *CreateInvoiceInput) (*entity.Invoice, error) {
	if strings.TrimSpace(input.Customer.Name) == "" {
		return nil, apperror.NewBadRequestError("Customer name is required")
	}
	if len(input.Items) == 0 {
		return nil, apperror.NewBadRequestError("Invoice must have at least one item")
	}

	taxRate := draft.DefaultTaxRate()
	if input.TaxRate != nil {
		taxRate = *input.TaxRate
	}
	if taxRate.IsNegative() || taxRate.GreaterThan(decimal.NewFromInt(100)) {
		return nil, apperror.NewBadRequestError("Tax rate must be between 0 and 100")
	}

	// Rebuild the submission through the calculator so every stored
	// amount satisfies amount = quantity * rate.
	d := &draft.Draft{TaxRate: taxRate}
	items := make([]entity.InvoiceItem, 0, len(input.Items))
	for i, in := range input.Items {
		if strings.TrimSpace(in.ProductName) == "" {
			return nil, apperror.NewBadRequestError(fmt.Sprintf("Item %d: product name is required", i+1))
		}
		if in.Quantity.LessThanOrEqual(decimal.Zero) {
			return nil, apperror.NewBadRequestError(fmt.Sprintf("Item %d: quantity must be greater than zero", i+1))
		}
		if !in.Quantity.Equal(in.Quantity.Round(2)) {
			return nil, apperror.NewBadRequestError(fmt.Sprintf("Item %d: quantity cannot have more than two decimal places", i+1))
		}
		if in.Rate.IsNegative() {
			return nil, apperror.NewBadRequestError(fmt.Sprintf("Item %d: rate cannot be negative", i+1))
		}

		line := draft.Item{
			ProductID:   in.ProductID,
			ProductName: in.ProductName,
			Quantity:    in.Quantity,
			Rate:        in.Rate,
			Amount:      in.Quantity.Mul(in.Rate).Round(2),
		}
		d.Items = append(d.Items, line)

		items = append(items, entity.InvoiceItem{
			Position:    i + 1,
			ProductID:   in.ProductID,
			ProductName: strings.TrimSpace(in.ProductName),
			Description: in.Description,
			Quantity:    in.Quantity,
			Rate:        in.Rate,
			Amount:      line.Amount,
		})
	}

	totals := d.Totals()

	invoiceDate := time.Now().Truncate(24 * time.Hour)
	if input.InvoiceDate != nil {
		invoiceDate = *input.InvoiceDate
	}

	invoice := &entity.Invoice{
		InvoiceDate: invoiceDate,
		DueDate:     input.DueDate,
		Customer:    input.Customer,
		Items:       items,
		TaxRate:     taxRate,
		Subtotal:    totals.Subtotal.Round(2),
		TaxAmount:   totals.TaxAmount.Round(2),
		TotalAmount: totals.Total.Round(2),
		Notes:       input.Notes,
		Status:      enum.InvoiceStatusDraft,
		CreatedByID: input.CreatedByID,
	}
	if input.BankDetails != nil && input.BankDetails.Present() {
		invoice.BankDetails = *input.BankDetails
	}

	if err := s.invoiceRepo.Create(ctx, invoice); err != nil {
		return nil, err
	}

	return s.invoiceRepo.GetByID(ctx, invoice.ID)
}

// GetInvoice retrieves an invoice by ID
func (s *InvoiceService) GetInvoice(ctx context.Context, id uuid.UUID) (*entity.Invoice, error) {
	invoice, err := s.invoiceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, apperror.NewNotFoundError("Invoice")
	}
	return invoice, nil
}

// ListInvoices returns invoices with pagination and optional status filter
func (s *InvoiceService) ListInvoices(ctx context.Context, params *repository.InvoiceFilterParams) ([]entity.Invoice, *pagination.Pagination, error) {
	if params.Status != nil && !params.Status.IsValid() {
		return nil, nil, apperror.NewBadRequestError("Invalid status filter")
	}
	invoices, total, err := s.invoiceRepo.List(ctx, params)
	if err != nil {
		return nil, nil, err
	}
	return invoices, pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total), nil
}

// UpdateStatus applies a status transition. Only the forward workflow
// is allowed: draft to sent, sent to paid or overdue, overdue to paid.
// Anything else is rejected as unprocessable.
func (s *InvoiceService) UpdateStatus(ctx context.Context, id uuid.UUID, status enum.InvoiceStatus) (*entity.Invoice, error) {
	if !status.IsValid() {
		return nil, apperror.NewBadRequestError("Invalid status")
	}

	invoice, err := s.invoiceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, apperror.NewNotFoundError("Invoice")
	}

	if !invoice.Status.CanTransitionTo(status) {
		return nil, apperror.NewUnprocessableError(
			fmt.Sprintf("Cannot change status from %s to %s", invoice.Status, status))
	}

	if err := s.invoiceRepo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}

	invoice.Status = status
	return invoice, nil
}

// DeleteInvoice removes an invoice. Only drafts can be deleted; issued
// invoices stay on record.
func (s *InvoiceService) DeleteInvoice(ctx context.Context, id uuid.UUID) error {
	invoice, err := s.invoiceRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if invoice == nil {
		return apperror.NewNotFoundError("Invoice")
	}
	if invoice.Status != enum.InvoiceStatusDraft {
		return apperror.NewUnprocessableError("Only draft invoices can be deleted")
	}
	return s.invoiceRepo.Delete(ctx, id)
}

// EmailInvoice is a placeholder for the delivery feature.
func (s *InvoiceService) EmailInvoice(ctx context.Context, id uuid.UUID) (string, error) {
	invoice, err := s.invoiceRepo.GetByID(ctx, id)
	if err != nil {
		return "", err
	}
	if invoice == nil {
		return "", apperror.NewNotFoundError("Invoice")
	}
	// TODO: wire an SMTP sender once delivery is in scope
	return "Email functionality coming soon", nil
}
