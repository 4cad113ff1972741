package service

import (
	"context"

	"github.com/invoiceapp/invoice-api/internal/domain/entity"
	"github.com/invoiceapp/invoice-api/internal/domain/repository"
)

// ProfileService manages the business profile singleton
type ProfileService struct {
	profileRepo repository.BusinessProfileRepository
}

// NewProfileService creates a new profile service
func NewProfileService(profileRepo repository.BusinessProfileRepository) *ProfileService {
	return &ProfileService{profileRepo: profileRepo}
}

// GetProfile returns the business profile. A missing row comes back as
// an empty profile rather than an error so the settings form always
// has something to show.
func (s *ProfileService) GetProfile(ctx context.Context) (*entity.BusinessProfile, error) {
	profile, err := s.profileRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return &entity.BusinessProfile{}, nil
	}
	return profile, nil
}

// UpdateProfileInput represents the business profile update input
type UpdateProfileInput struct {
	CompanyName string
	GSTNumber   string
	PANNumber   string
	Address     string
	City        string
	State       string
	Pincode     string
	StateCode   string
	Phone       string
	Email       string

	BankName      string
	AccountNumber string
	IFSCCode      string
	AccountHolder string
}

// UpdateProfile saves the business profile, creating it on first use
func (s *ProfileService) UpdateProfile(ctx context.Context, input *UpdateProfileInput) (*entity.BusinessProfile, error) {
	profile := &entity.BusinessProfile{
		CompanyName:   input.CompanyName,
		GSTNumber:     input.GSTNumber,
		PANNumber:     input.PANNumber,
		Address:       input.Address,
		City:          input.City,
		State:         input.State,
		Pincode:       input.Pincode,
		StateCode:     input.StateCode,
		Phone:         input.Phone,
		Email:         input.Email,
		BankName:      input.BankName,
		AccountNumber: input.AccountNumber,
		IFSCCode:      input.IFSCCode,
		AccountHolder: input.AccountHolder,
	}

	if err := s.profileRepo.Upsert(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}
