package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Product represents a sellable product or service
type Product struct {
	ID           uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	Name         string          `gorm:"size:255;not null;index" json:"name"`
	Description  *string         `gorm:"type:text" json:"description,omitempty"`
	CurrentPrice decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"current_price"`
	Unit         string          `gorm:"size:50;default:'pcs'" json:"unit"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
	DeletedAt    gorm.DeletedAt  `gorm:"index" json:"-"`

	// Relationships
	PriceHistory []PriceHistory `gorm:"foreignKey:ProductID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new product
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Product model
func (Product) TableName() string {
	return "products"
}

// PriceHistory records a change to a product's current price
type PriceHistory struct {
	ID        uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	ProductID uuid.UUID       `gorm:"type:uuid;not null;index" json:"product_id"`
	OldPrice  decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"old_price"`
	NewPrice  decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"new_price"`
	ChangedBy string          `gorm:"size:255" json:"changed_by"`
	ChangedAt time.Time       `gorm:"autoCreateTime" json:"changed_at"`

	// Relationships
	Product Product `gorm:"foreignKey:ProductID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new price history record
func (h *PriceHistory) BeforeCreate(tx *gorm.DB) error {
	if h.ID == uuid.Nil {
		h.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the PriceHistory model
func (PriceHistory) TableName() string {
	return "price_history"
}
