package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/invoiceapp/invoice-api/internal/domain/entity"
	"github.com/invoiceapp/invoice-api/internal/domain/enum"
	"github.com/invoiceapp/invoice-api/pkg/pagination"
	"github.com/shopspring/decimal"
)

// InvoiceFilterParams holds filtering options for listing invoices
type InvoiceFilterParams struct {
	Pagination *pagination.PaginationParams
	Status     *enum.InvoiceStatus
	Search     string
}

// StatusCountResult represents the number of invoices in one status
type StatusCountResult struct {
	Status enum.InvoiceStatus
	Count  int64
}

// RevenueResult represents aggregated invoice amounts
type RevenueResult struct {
	TotalRevenue   decimal.Decimal
	MonthlyRevenue decimal.Decimal
	PendingAmount  decimal.Decimal
}

// TopProductResult represents one product's billed totals across invoices
type TopProductResult struct {
	ProductName   string          `json:"product_name"`
	TotalQuantity decimal.Decimal `json:"total_quantity"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
}

// InvoiceRepository defines the interface for invoice data operations
type InvoiceRepository interface {
	// Create persists the invoice and its items, assigning the next
	// sequential invoice number inside a single transaction.
	Create(ctx context.Context, invoice *entity.Invoice) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Invoice, error)
	GetByNumber(ctx context.Context, number string) (*entity.Invoice, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status enum.InvoiceStatus) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *InvoiceFilterParams) ([]entity.Invoice, int64, error)
	ListAll(ctx context.Context, status *enum.InvoiceStatus) ([]entity.Invoice, error)

	Count(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context) ([]StatusCountResult, error)
	// GetRevenue returns the paid total (all time and current month) and
	// the outstanding (sent + overdue) total.
	GetRevenue(ctx context.Context) (*RevenueResult, error)
	GetRecent(ctx context.Context, limit int) ([]entity.Invoice, error)
	// GetTopProducts ranks billed line items by total amount.
	GetTopProducts(ctx context.Context, limit int) ([]TopProductResult, error)
}
