package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/mhdalhzau/warungpos/internal/domain/entity"
	"github.com/mhdalhzau/warungpos/pkg/pagination"
)

// ErrInsufficientStock is returned by DecrementStockBatch when subtracting
// the sold quantities would drive any product's stock negative.
var ErrInsufficientStock = errors.New("insufficient stock")

// ProductRepository defines the interface for product data operations
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	// GetBatch resolves many products at once so a sale can validate its
	// whole cart with a single query.
	GetBatch(ctx context.Context, storeID uuid.UUID, ids []uuid.UUID) ([]entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, storeID uuid.UUID, params *pagination.PaginationParams, search string) ([]entity.Product, int64, error)
	// DecrementStockBatch atomically subtracts the sold quantities. It fails
	// the whole batch if any product would go negative.
	DecrementStockBatch(ctx context.Context, storeID uuid.UUID, quantities map[uuid.UUID]int) error
	// CountBelowAlert returns how many products are under their own
	// per-product stock alert threshold.
	CountBelowAlert(ctx context.Context, storeID uuid.UUID) (int64, error)
	ListBelowAlert(ctx context.Context, storeID uuid.UUID) ([]entity.Product, error)
}
