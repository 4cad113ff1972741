package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BusinessProfile holds the issuing business's identity and bank details.
// A deployment has a single profile row; it populates invoice document
// headers and serves as the bank-details fallback.
type BusinessProfile struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	CompanyName string    `gorm:"size:255" json:"company_name"`
	GSTNumber   string    `gorm:"size:50" json:"gst_number"`
	PANNumber   string    `gorm:"size:50" json:"pan_number"`
	Address     string    `gorm:"type:text" json:"address"`
	City        string    `gorm:"size:100" json:"city"`
	State       string    `gorm:"size:100" json:"state"`
	Pincode     string    `gorm:"size:20" json:"pincode"`
	StateCode   string    `gorm:"size:10" json:"state_code"`
	Phone       string    `gorm:"size:50" json:"phone"`
	Email       string    `gorm:"size:255" json:"email"`

	BankName      string `gorm:"size:255" json:"bank_name"`
	AccountNumber string `gorm:"size:100" json:"account_number"`
	IFSCCode      string `gorm:"size:50" json:"ifsc_code"`
	AccountHolder string `gorm:"size:255" json:"account_holder"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BeforeCreate generates a UUID before creating a new profile
func (p *BusinessProfile) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the BusinessProfile model
func (BusinessProfile) TableName() string {
	return "business_profiles"
}

// Bank returns the profile's bank fields as a BankDetails value.
func (p *BusinessProfile) Bank() BankDetails {
	return BankDetails{
		BankName:      p.BankName,
		AccountNumber: p.AccountNumber,
		IFSCCode:      p.IFSCCode,
		AccountHolder: p.AccountHolder,
	}
}
