package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/mhdalhzau/warungpos/internal/domain/entity"
	"github.com/mhdalhzau/warungpos/pkg/money"
	"github.com/mhdalhzau/warungpos/pkg/pagination"
)

// TransactionRepository defines the interface for transaction data operations
type TransactionRepository interface {
	// Create persists the transaction together with its line items in one
	// database transaction.
	Create(ctx context.Context, txn *entity.Transaction) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error)
	// GetWithItems loads the transaction with its items ordered by position.
	GetWithItems(ctx context.Context, id uuid.UUID) (*entity.Transaction, error)
	List(ctx context.Context, storeID uuid.UUID, params *TransactionFilterParams) ([]entity.Transaction, int64, error)
	// SumPaidTotals sums the total of paid transactions created inside
	// [start, end).
	SumPaidTotals(ctx context.Context, storeID uuid.UUID, start, end time.Time) (money.Money, error)
	// CountInWindow counts transactions of any payment status created
	// inside [start, end).
	CountInWindow(ctx context.Context, storeID uuid.UUID, start, end time.Time) (int64, error)
	// Recent returns the newest transactions ordered by created_at
	// descending, ties broken by id descending.
	Recent(ctx context.Context, storeID uuid.UUID, limit int) ([]entity.Transaction, error)
	// CountOnDay counts transactions created inside [dayStart, dayEnd),
	// used to derive the next invoice sequence number for that day.
	CountOnDay(ctx context.Context, storeID uuid.UUID, dayStart, dayEnd time.Time) (int64, error)
}

// TransactionFilterParams contains filtering parameters for transaction queries
type TransactionFilterParams struct {
	Pagination *pagination.PaginationParams
	Search     string
	StartDate  *time.Time
	EndDate    *time.Time
}
