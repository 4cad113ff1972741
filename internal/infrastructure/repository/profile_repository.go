package repository

import (
	"context"
	"errors"

	"github.com/invoiceapp/invoice-api/internal/domain/entity"
	domainRepo "github.com/invoiceapp/invoice-api/internal/domain/repository"
	"gorm.io/gorm"
)

type businessProfileRepository struct {
	db *gorm.DB
}

// NewBusinessProfileRepository creates a new business profile repository
func NewBusinessProfileRepository(db *gorm.DB) domainRepo.BusinessProfileRepository {
	return &businessProfileRepository{db: db}
}

func (r *businessProfileRepository) Get(ctx context.Context) (*entity.BusinessProfile, error) {
	var profile entity.BusinessProfile
	err := r.db.WithContext(ctx).Order("created_at ASC").First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &profile, err
}

func (r *businessProfileRepository) Upsert(ctx context.Context, profile *entity.BusinessProfile) error {
	existing, err := r.Get(ctx)
	if err != nil {
		return err
	}
	if existing == nil {
		return r.db.WithContext(ctx).Create(profile).Error
	}
	profile.ID = existing.ID
	profile.CreatedAt = existing.CreatedAt
	return r.db.WithContext(ctx).Save(profile).Error
}
