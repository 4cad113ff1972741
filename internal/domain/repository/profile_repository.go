package repository

import (
	"context"

	"github.com/invoiceapp/invoice-api/internal/domain/entity"
)

// BusinessProfileRepository defines the interface for the business profile singleton
type BusinessProfileRepository interface {
	// Get returns the profile row, or nil if none has been created yet.
	Get(ctx context.Context) (*entity.BusinessProfile, error)
	// Upsert creates the profile on first save and updates it afterwards.
	Upsert(ctx context.Context, profile *entity.BusinessProfile) error
}
