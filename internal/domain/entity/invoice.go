package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/invoiceapp/invoice-api/internal/domain/enum"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Customer is the billing-party snapshot embedded in an invoice.
// It is copied at creation time, not referenced, so later edits to a
// customer record never change an issued invoice.
type Customer struct {
	Name    string  `gorm:"size:255;not null" json:"name"`
	Email   *string `gorm:"size:255" json:"email,omitempty"`
	Phone   *string `gorm:"size:50" json:"phone,omitempty"`
	Address *string `gorm:"type:text" json:"address,omitempty"`
	City    *string `gorm:"size:100" json:"city,omitempty"`
	State   *string `gorm:"size:100" json:"state,omitempty"`
	Pincode *string `gorm:"size:20" json:"pincode,omitempty"`
}

// BankDetails holds the payment account printed on an invoice.
type BankDetails struct {
	BankName      string `gorm:"size:255" json:"bank_name"`
	AccountNumber string `gorm:"size:100" json:"account_number"`
	IFSCCode      string `gorm:"size:50" json:"ifsc_code"`
	AccountHolder string `gorm:"size:255" json:"account_holder"`
}

// Present reports whether bank details were actually provided.
// An empty bank name means the whole block is treated as absent.
func (b BankDetails) Present() bool {
	return b.BankName != ""
}

// Invoice represents a persisted tax invoice
type Invoice struct {
	ID            uuid.UUID          `gorm:"type:uuid;primary_key"`
	InvoiceNumber string             `gorm:"size:50;unique;not null"`
	InvoiceDate   time.Time          `gorm:"type:date;not null"`
	DueDate       *time.Time         `gorm:"type:date"`
	Customer      Customer           `gorm:"embedded;embeddedPrefix:customer_"`
	TaxRate       decimal.Decimal    `gorm:"type:decimal(5,2);not null"`
	Subtotal      decimal.Decimal    `gorm:"type:decimal(15,2);not null"`
	TaxAmount     decimal.Decimal    `gorm:"type:decimal(15,2);not null"`
	TotalAmount   decimal.Decimal    `gorm:"type:decimal(15,2);not null"`
	BankDetails   BankDetails        `gorm:"embedded;embeddedPrefix:bank_"`
	Notes         *string            `gorm:"type:text"`
	Status        enum.InvoiceStatus `gorm:"size:20;default:'draft';index"`
	CreatedByID   uuid.UUID          `gorm:"type:uuid;not null;index"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
	DeletedAt     gorm.DeletedAt `gorm:"index"`

	// Relationships
	CreatedBy User          `gorm:"foreignKey:CreatedByID"`
	Items     []InvoiceItem `gorm:"foreignKey:InvoiceID"`
}

// BeforeCreate generates a UUID before creating a new invoice
func (i *Invoice) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Invoice model
func (Invoice) TableName() string {
	return "invoices"
}

// invoiceJSON is a helper struct so bank_details serializes as null when absent
type invoiceJSON struct {
	ID            uuid.UUID          `json:"id"`
	InvoiceNumber string             `json:"invoice_number"`
	InvoiceDate   time.Time          `json:"invoice_date"`
	DueDate       *time.Time         `json:"due_date,omitempty"`
	Customer      Customer           `json:"customer"`
	Items         []InvoiceItem      `json:"items"`
	TaxRate       decimal.Decimal    `json:"tax_rate"`
	Subtotal      decimal.Decimal    `json:"subtotal"`
	TaxAmount     decimal.Decimal    `json:"tax_amount"`
	TotalAmount   decimal.Decimal    `json:"total_amount"`
	BankDetails   *BankDetails       `json:"bank_details"`
	Notes         *string            `json:"notes,omitempty"`
	Status        enum.InvoiceStatus `json:"status"`
	CreatedByID   uuid.UUID          `json:"created_by"`
	CreatedAt     time.Time          `json:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at"`
}

// MarshalJSON serializes the invoice with bank_details as null when absent
func (i Invoice) MarshalJSON() ([]byte, error) {
	out := invoiceJSON{
		ID:            i.ID,
		InvoiceNumber: i.InvoiceNumber,
		InvoiceDate:   i.InvoiceDate,
		DueDate:       i.DueDate,
		Customer:      i.Customer,
		Items:         i.Items,
		TaxRate:       i.TaxRate,
		Subtotal:      i.Subtotal,
		TaxAmount:     i.TaxAmount,
		TotalAmount:   i.TotalAmount,
		Notes:         i.Notes,
		Status:        i.Status,
		CreatedByID:   i.CreatedByID,
		CreatedAt:     i.CreatedAt,
		UpdatedAt:     i.UpdatedAt,
	}
	if i.BankDetails.Present() {
		bd := i.BankDetails
		out.BankDetails = &bd
	}
	if out.Items == nil {
		out.Items = []InvoiceItem{}
	}
	return json.Marshal(out)
}

// InvoiceItem represents a line item on an invoice
type InvoiceItem struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	InvoiceID   uuid.UUID       `gorm:"type:uuid;not null;index" json:"invoice_id"`
	Position    int             `gorm:"not null" json:"position"`
	ProductID   *uuid.UUID      `gorm:"type:uuid;index" json:"product_id,omitempty"`
	ProductName string          `gorm:"size:255;not null" json:"product_name"`
	Description *string         `gorm:"type:text" json:"description,omitempty"`
	Quantity    decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"quantity"`
	Rate        decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"rate"`
	Amount      decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`

	// Relationships
	Invoice Invoice `gorm:"foreignKey:InvoiceID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new invoice item
func (it *InvoiceItem) BeforeCreate(tx *gorm.DB) error {
	if it.ID == uuid.Nil {
		it.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the InvoiceItem model
func (InvoiceItem) TableName() string {
	return "invoice_items"
}
