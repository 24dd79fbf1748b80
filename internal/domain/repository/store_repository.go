package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/mhdalhzau/warungpos/internal/domain/entity"
)

// StoreRepository defines the interface for store data operations
type StoreRepository interface {
	Create(ctx context.Context, store *entity.Store) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Store, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]entity.Store, error)
	Update(ctx context.Context, store *entity.Store) error
	Delete(ctx context.Context, id uuid.UUID) error
}
