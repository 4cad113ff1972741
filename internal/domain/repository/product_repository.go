package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/invoiceapp/invoice-api/internal/domain/entity"
	"github.com/invoiceapp/invoice-api/pkg/pagination"
)

// ProductFilterParams holds filtering options for listing products
type ProductFilterParams struct {
	Pagination *pagination.PaginationParams
	Search     string
	SortBy     string
	SortOrder  string
}

// ProductRepository defines the interface for product data operations
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	GetByName(ctx context.Context, name string) (*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *ProductFilterParams) ([]entity.Product, int64, error)
	// Search returns products whose name matches the query prefix-insensitively,
	// capped at limit, ordered by name.
	Search(ctx context.Context, query string, limit int) ([]entity.Product, error)
	Count(ctx context.Context) (int64, error)

	RecordPriceChange(ctx context.Context, history *entity.PriceHistory) error
	GetPriceHistory(ctx context.Context, productID uuid.UUID) ([]entity.PriceHistory, error)
}
