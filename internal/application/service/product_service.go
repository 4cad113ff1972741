package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/invoiceapp/invoice-api/internal/application/draft"
	"github.com/invoiceapp/invoice-api/internal/domain/entity"
	"github.com/invoiceapp/invoice-api/internal/domain/repository"
	"github.com/invoiceapp/invoice-api/pkg/apperror"
	"github.com/invoiceapp/invoice-api/pkg/pagination"
	"github.com/shopspring/decimal"
)

// ProductService handles product catalog operations
type ProductService struct {
	productRepo repository.ProductRepository
}

// NewProductService creates a new product service
func NewProductService(productRepo repository.ProductRepository) *ProductService {
	return &ProductService{productRepo: productRepo}
}

// CreateProductInput represents the create product input
type CreateProductInput struct {
	Name         string
	Description  *string
	CurrentPrice decimal.Decimal
	Unit         string
}

// CreateProduct creates a new product
func (s *ProductService) CreateProduct(ctx context.Context, input *CreateProductInput) (*entity.Product, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, apperror.NewBadRequestError("Product name is required")
	}
	if input.CurrentPrice.IsNegative() {
		return nil, apperror.NewBadRequestError("Price cannot be negative")
	}

	existing, err := s.productRepo.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("Product name already exists")
	}

	unit := input.Unit
	if unit == "" {
		unit = "pcs"
	}

	product := &entity.Product{
		Name:         name,
		Description:  input.Description,
		CurrentPrice: input.CurrentPrice,
		Unit:         unit,
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}

// GetProduct retrieves a product by ID
func (s *ProductService) GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}
	return product, nil
}

// UpdateProductInput represents the update product input
type UpdateProductInput struct {
	Name         *string
	Description  *string
	CurrentPrice *decimal.Decimal
	Unit         *string
	ChangedBy    string
}

// UpdateProduct updates a product. A price change is recorded in the
// product's price history with the acting username.
func (s *ProductService) UpdateProduct(ctx context.Context, id uuid.UUID, input *UpdateProductInput) (*entity.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, apperror.NewBadRequestError("Product name is required")
		}
		if name != product.Name {
			existing, err := s.productRepo.GetByName(ctx, name)
			if err != nil {
				return nil, err
			}
			if existing != nil && existing.ID != product.ID {
				return nil, apperror.NewConflictError("Product name already exists")
			}
			product.Name = name
		}
	}
	if input.Description != nil {
		product.Description = input.Description
	}
	if input.Unit != nil && *input.Unit != "" {
		product.Unit = *input.Unit
	}

	var priceChange *entity.PriceHistory
	if input.CurrentPrice != nil && !input.CurrentPrice.Equal(product.CurrentPrice) {
		if input.CurrentPrice.IsNegative() {
			return nil, apperror.NewBadRequestError("Price cannot be negative")
		}
		priceChange = &entity.PriceHistory{
			ProductID: product.ID,
			OldPrice:  product.CurrentPrice,
			NewPrice:  *input.CurrentPrice,
			ChangedBy: input.ChangedBy,
		}
		product.CurrentPrice = *input.CurrentPrice
	}

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}

	if priceChange != nil {
		if err := s.productRepo.RecordPriceChange(ctx, priceChange); err != nil {
			return nil, err
		}
	}

	return product, nil
}

// DeleteProduct removes a product
func (s *ProductService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if product == nil {
		return apperror.NewNotFoundError("Product")
	}
	return s.productRepo.Delete(ctx, id)
}

// ListProducts returns products with pagination
func (s *ProductService) ListProducts(ctx context.Context, params *repository.ProductFilterParams) ([]entity.Product, *pagination.Pagination, error) {
	products, total, err := s.productRepo.List(ctx, params)
	if err != nil {
		return nil, nil, err
	}
	return products, pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total), nil
}

// SearchProducts returns autocomplete matches for a typed name
// fragment. Fragments shorter than the minimum query length return an
// empty list without hitting the database.
func (s *ProductService) SearchProducts(ctx context.Context, query string) ([]entity.Product, error) {
	query = strings.TrimSpace(query)
	if len(query) < draft.MinQueryLength {
		return []entity.Product{}, nil
	}
	return s.productRepo.Search(ctx, query, draft.SuggestionLimit)
}

// Search implements draft.ProductSearcher so suggestion sessions can be
// backed directly by the catalog.
func (s *ProductService) Search(ctx context.Context, query string, limit int) ([]entity.Product, error) {
	return s.productRepo.Search(ctx, query, limit)
}

// GetPriceHistory returns a product's recorded price changes
func (s *ProductService) GetPriceHistory(ctx context.Context, productID uuid.UUID) ([]entity.PriceHistory, error) {
	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}
	return s.productRepo.GetPriceHistory(ctx, productID)
}
