package service

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/mhdalhzau/warungpos/internal/domain/repository"
	"github.com/mhdalhzau/warungpos/pkg/apperror"
	"github.com/mhdalhzau/warungpos/pkg/datefmt"
	"github.com/mhdalhzau/warungpos/pkg/money"
)

// RecentTransactionLimit caps the dashboard's recent activity list.
const RecentTransactionLimit = 3

// DefaultSourceTimeout bounds each dashboard source fetch. A slow source
// degrades its own field without delaying the others.
const DefaultSourceTimeout = 3 * time.Second

// DashboardService aggregates the merchant's at-a-glance snapshot from
// independent sources fetched concurrently.
type DashboardService struct {
	transactionRepo repository.TransactionRepository
	productRepo     repository.ProductRepository
	customerRepo    repository.CustomerRepository
	storeRepo       repository.StoreRepository
	sourceTimeout   time.Duration
	now             func() time.Time
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(
	transactionRepo repository.TransactionRepository,
	productRepo repository.ProductRepository,
	customerRepo repository.CustomerRepository,
	storeRepo repository.StoreRepository,
) *DashboardService {
	return &DashboardService{
		transactionRepo: transactionRepo,
		productRepo:     productRepo,
		customerRepo:    customerRepo,
		storeRepo:       storeRepo,
		sourceTimeout:   DefaultSourceTimeout,
		now:             time.Now,
	}
}

// SetSourceTimeout overrides the per-source fetch deadline.
func (s *DashboardService) SetSourceTimeout(d time.Duration) {
	if d > 0 {
		s.sourceTimeout = d
	}
}

// DashboardSnapshot is the aggregated dashboard payload. A nil field means
// that source was unavailable when the snapshot was taken; the JSON null lets
// the client distinguish "no sales today" from "sales figure unknown".
type DashboardSnapshot struct {
	DailySales        *money.Money        `json:"daily_sales"`
	DailySalesDisplay *string             `json:"daily_sales_display"`
	TransactionCount  *int64              `json:"transaction_count"`
	TotalDebt         *money.Money        `json:"total_debt"`
	TotalDebtDisplay  *string             `json:"total_debt_display"`
	LowStockCount     *int64              `json:"low_stock_count"`
	Recent            []RecentTransaction `json:"recent_transactions"`
	RecentAvailable   bool                `json:"recent_available"`
	WindowStart       time.Time           `json:"window_start"`
	WindowEnd         time.Time           `json:"window_end"`
}

// RecentTransaction is a dashboard row for the recent activity list
type RecentTransaction struct {
	ID            uuid.UUID   `json:"id"`
	InvoiceNumber string      `json:"invoice_number"`
	CustomerName  string      `json:"customer_name,omitempty"`
	Total         money.Money `json:"total"`
	TotalDisplay  string      `json:"total_display"`
	PaymentStatus string      `json:"payment_status"`
	CreatedAt     time.Time   `json:"created_at"`
	TimeDisplay   string      `json:"time_display"`
}

// GetSnapshot assembles the dashboard for the store's local day containing
// asOf. A zero asOf means the current instant.
//
// The five sources (daily sales, transaction count, outstanding debt, low
// stock count, recent transactions) are independent and fetched concurrently.
// A failed or slow source logs and leaves its field unavailable; the snapshot
// itself only fails if the store cannot be resolved.
func (s *DashboardService) GetSnapshot(ctx context.Context, storeID uuid.UUID, asOf time.Time) (*DashboardSnapshot, error) {
	store, err := s.storeRepo.GetByID(ctx, storeID)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, apperror.NewNotFoundError("Store")
	}

	loc, err := store.Location()
	if err != nil {
		return nil, apperror.NewInvalidInputError("Unknown store timezone: " + store.Timezone)
	}

	if asOf.IsZero() {
		asOf = s.now()
	}
	local := asOf.In(loc)
	windowStart := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
	windowEnd := windowStart.AddDate(0, 0, 1)

	snapshot := &DashboardSnapshot{
		WindowStart: windowStart,
		WindowEnd:   windowEnd,
	}

	var wg sync.WaitGroup
	var mu sync.Mutex

	// fetch runs one source with its own deadline and records the result
	// under the mutex. Failures log and leave the field nil.
	fetch := func(name string, fn func(ctx context.Context) error) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			srcCtx, cancel := context.WithTimeout(ctx, s.sourceTimeout)
			defer cancel()
			if err := fn(srcCtx); err != nil {
				log.Printf("dashboard: source %s unavailable for store %s: %v", name, storeID, err)
			}
		}()
	}

	fetch("daily_sales", func(srcCtx context.Context) error {
		total, err := s.transactionRepo.SumPaidTotals(srcCtx, storeID, windowStart, windowEnd)
		if err != nil {
			return err
		}
		display, err := money.FormatCurrency(total, store.Locale)
		if err != nil {
			return err
		}
		mu.Lock()
		snapshot.DailySales = &total
		snapshot.DailySalesDisplay = &display
		mu.Unlock()
		return nil
	})

	fetch("transaction_count", func(srcCtx context.Context) error {
		count, err := s.transactionRepo.CountInWindow(srcCtx, storeID, windowStart, windowEnd)
		if err != nil {
			return err
		}
		mu.Lock()
		snapshot.TransactionCount = &count
		mu.Unlock()
		return nil
	})

	fetch("total_debt", func(srcCtx context.Context) error {
		total, err := s.customerRepo.TotalOutstandingDebt(srcCtx, storeID)
		if err != nil {
			return err
		}
		display, err := money.FormatCurrency(total, store.Locale)
		if err != nil {
			return err
		}
		mu.Lock()
		snapshot.TotalDebt = &total
		snapshot.TotalDebtDisplay = &display
		mu.Unlock()
		return nil
	})

	fetch("low_stock_count", func(srcCtx context.Context) error {
		count, err := s.productRepo.CountBelowAlert(srcCtx, storeID)
		if err != nil {
			return err
		}
		mu.Lock()
		snapshot.LowStockCount = &count
		mu.Unlock()
		return nil
	})

	fetch("recent_transactions", func(srcCtx context.Context) error {
		txns, err := s.transactionRepo.Recent(srcCtx, storeID, RecentTransactionLimit)
		if err != nil {
			return err
		}
		rows := make([]RecentTransaction, 0, len(txns))
		for _, txn := range txns {
			row := RecentTransaction{
				ID:            txn.ID,
				InvoiceNumber: txn.InvoiceNumber,
				Total:         txn.Total,
				PaymentStatus: txn.PaymentStatus.String(),
				CreatedAt:     txn.CreatedAt,
				TimeDisplay:   datefmt.Format(txn.CreatedAt.In(loc), store.Locale, datefmt.PrecisionTimeOnly),
			}
			if txn.CustomerName != nil {
				row.CustomerName = *txn.CustomerName
			}
			if display, err := money.FormatCurrency(txn.Total, store.Locale); err == nil {
				row.TotalDisplay = display
			}
			rows = append(rows, row)
		}
		mu.Lock()
		snapshot.Recent = rows
		snapshot.RecentAvailable = true
		mu.Unlock()
		return nil
	})

	wg.Wait()
	return snapshot, nil
}
