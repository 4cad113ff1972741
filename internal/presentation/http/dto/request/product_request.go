package request

import "github.com/shopspring/decimal"

// CreateProductRequest represents a product creation request
type CreateProductRequest struct {
	Name         string          `json:"name" binding:"required,min=2,max=255"`
	Description  *string         `json:"description"`
	CurrentPrice decimal.Decimal `json:"current_price"`
	Unit         string          `json:"unit" binding:"omitempty,max=50"`
}

// UpdateProductRequest represents a product update request
type UpdateProductRequest struct {
	Name         *string          `json:"name" binding:"omitempty,min=2,max=255"`
	Description  *string          `json:"description"`
	CurrentPrice *decimal.Decimal `json:"current_price"`
	Unit         *string          `json:"unit" binding:"omitempty,max=50"`
}

// ProductFilterRequest represents product filter parameters
type ProductFilterRequest struct {
	Search    string `form:"search"`
	SortBy    string `form:"sort_by"`
	SortOrder string `form:"sort_order"`
	Page      int    `form:"page"`
	PerPage   int    `form:"per_page"`
}
