package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/mhdalhzau/warungpos/internal/domain/entity"
	"github.com/mhdalhzau/warungpos/pkg/money"
	"github.com/mhdalhzau/warungpos/pkg/pagination"
)

// CustomerRepository defines the interface for customer data operations
type CustomerRepository interface {
	Create(ctx context.Context, customer *entity.Customer) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error)
	Update(ctx context.Context, customer *entity.Customer) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, storeID uuid.UUID, params *pagination.PaginationParams, search string) ([]entity.Customer, int64, error)
	// AddDebt adjusts the running balance by delta, which may be negative
	// for a repayment. The balance never goes below zero.
	AddDebt(ctx context.Context, id uuid.UUID, delta money.Money) error
	// TotalOutstandingDebt sums the debt balances across the whole store.
	TotalOutstandingDebt(ctx context.Context, storeID uuid.UUID) (money.Money, error)
}
