package request

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CustomerRequest is the billing-party block of an invoice submission
type CustomerRequest struct {
	Name    string  `json:"name" binding:"required,min=1,max=255"`
	Email   *string `json:"email" binding:"omitempty,email"`
	Phone   *string `json:"phone" binding:"omitempty,max=50"`
	Address *string `json:"address"`
	City    *string `json:"city" binding:"omitempty,max=100"`
	State   *string `json:"state" binding:"omitempty,max=100"`
	Pincode *string `json:"pincode" binding:"omitempty,max=20"`
}

// InvoiceItemRequest is one submitted line item
type InvoiceItemRequest struct {
	ProductID   *uuid.UUID      `json:"product_id"`
	ProductName string          `json:"product_name" binding:"required,min=1,max=255"`
	Description *string         `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	Rate        decimal.Decimal `json:"rate"`
}

// BankDetailsRequest is the optional payment account block. It is
// treated as absent when bank_name is empty.
type BankDetailsRequest struct {
	BankName      string `json:"bank_name" binding:"omitempty,max=255"`
	AccountNumber string `json:"account_number" binding:"omitempty,max=100"`
	IFSCCode      string `json:"ifsc_code" binding:"omitempty,max=50"`
	AccountHolder string `json:"account_holder" binding:"omitempty,max=255"`
}

// CreateInvoiceRequest represents an invoice creation request
type CreateInvoiceRequest struct {
	Customer    CustomerRequest      `json:"customer" binding:"required"`
	Items       []InvoiceItemRequest `json:"items" binding:"required,min=1,dive"`
	TaxRate     *decimal.Decimal     `json:"tax_rate"`
	BankDetails *BankDetailsRequest  `json:"bank_details"`
	Notes       *string              `json:"notes"`
	InvoiceDate *time.Time           `json:"invoice_date"`
	DueDate     *time.Time           `json:"due_date"`
}

// InvoiceFilterRequest represents invoice list filter parameters
type InvoiceFilterRequest struct {
	Status  string `form:"status"`
	Search  string `form:"search"`
	Page    int    `form:"page"`
	PerPage int    `form:"per_page"`
}

// UpdateProfileRequest represents a business profile update request
type UpdateProfileRequest struct {
	CompanyName string `json:"company_name" binding:"omitempty,max=255"`
	GSTNumber   string `json:"gst_number" binding:"omitempty,max=50"`
	PANNumber   string `json:"pan_number" binding:"omitempty,max=50"`
	Address     string `json:"address"`
	City        string `json:"city" binding:"omitempty,max=100"`
	State       string `json:"state" binding:"omitempty,max=100"`
	Pincode     string `json:"pincode" binding:"omitempty,max=20"`
	StateCode   string `json:"state_code" binding:"omitempty,max=10"`
	Phone       string `json:"phone" binding:"omitempty,max=50"`
	Email       string `json:"email" binding:"omitempty,email"`

	BankName      string `json:"bank_name" binding:"omitempty,max=255"`
	AccountNumber string `json:"account_number" binding:"omitempty,max=100"`
	IFSCCode      string `json:"ifsc_code" binding:"omitempty,max=50"`
	AccountHolder string `json:"account_holder" binding:"omitempty,max=255"`
}
