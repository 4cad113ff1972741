package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/invoiceapp/invoice-api/internal/domain/entity"
)

// IdempotencyRepository defines the interface for idempotency key operations
type IdempotencyRepository interface {
	// GetByKey retrieves an idempotency key record by key and user ID
	GetByKey(ctx context.Context, key string, userID uuid.UUID) (*entity.IdempotencyKey, error)

	// Create stores a new idempotency key with response data
	Create(ctx context.Context, ikey *entity.IdempotencyKey) error

	// DeleteExpired removes expired idempotency keys (cleanup)
	DeleteExpired(ctx context.Context) error
}
