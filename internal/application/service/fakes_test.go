package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/mhdalhzau/warungpos/internal/domain/entity"
	"github.com/mhdalhzau/warungpos/internal/domain/repository"
	"github.com/mhdalhzau/warungpos/pkg/money"
	"github.com/mhdalhzau/warungpos/pkg/pagination"
)

var errNotStubbed = errors.New("not stubbed")

// Function-backed fakes: each test stubs only the methods it exercises.

type fakeTransactionRepo struct {
	createFn        func(ctx context.Context, txn *entity.Transaction) error
	getWithItemsFn  func(ctx context.Context, id uuid.UUID) (*entity.Transaction, error)
	sumPaidTotalsFn func(ctx context.Context, storeID uuid.UUID, start, end time.Time) (money.Money, error)
	countInWindowFn func(ctx context.Context, storeID uuid.UUID, start, end time.Time) (int64, error)
	recentFn        func(ctx context.Context, storeID uuid.UUID, limit int) ([]entity.Transaction, error)
	countOnDayFn    func(ctx context.Context, storeID uuid.UUID, dayStart, dayEnd time.Time) (int64, error)
}

func (f *fakeTransactionRepo) Create(ctx context.Context, txn *entity.Transaction) error {
	if f.createFn == nil {
		return errNotStubbed
	}
	return f.createFn(ctx, txn)
}

func (f *fakeTransactionRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error) {
	return nil, errNotStubbed
}

func (f *fakeTransactionRepo) GetWithItems(ctx context.Context, id uuid.UUID) (*entity.Transaction, error) {
	if f.getWithItemsFn == nil {
		return nil, errNotStubbed
	}
	return f.getWithItemsFn(ctx, id)
}

func (f *fakeTransactionRepo) List(ctx context.Context, storeID uuid.UUID, params *repository.TransactionFilterParams) ([]entity.Transaction, int64, error) {
	return nil, 0, errNotStubbed
}

func (f *fakeTransactionRepo) SumPaidTotals(ctx context.Context, storeID uuid.UUID, start, end time.Time) (money.Money, error) {
	if f.sumPaidTotalsFn == nil {
		return 0, errNotStubbed
	}
	return f.sumPaidTotalsFn(ctx, storeID, start, end)
}

func (f *fakeTransactionRepo) CountInWindow(ctx context.Context, storeID uuid.UUID, start, end time.Time) (int64, error) {
	if f.countInWindowFn == nil {
		return 0, errNotStubbed
	}
	return f.countInWindowFn(ctx, storeID, start, end)
}

func (f *fakeTransactionRepo) Recent(ctx context.Context, storeID uuid.UUID, limit int) ([]entity.Transaction, error) {
	if f.recentFn == nil {
		return nil, errNotStubbed
	}
	return f.recentFn(ctx, storeID, limit)
}

func (f *fakeTransactionRepo) CountOnDay(ctx context.Context, storeID uuid.UUID, dayStart, dayEnd time.Time) (int64, error) {
	if f.countOnDayFn == nil {
		return 0, errNotStubbed
	}
	return f.countOnDayFn(ctx, storeID, dayStart, dayEnd)
}

type fakeProductRepo struct {
	getBatchFn            func(ctx context.Context, storeID uuid.UUID, ids []uuid.UUID) ([]entity.Product, error)
	decrementStockBatchFn func(ctx context.Context, storeID uuid.UUID, quantities map[uuid.UUID]int) error
	countBelowAlertFn     func(ctx context.Context, storeID uuid.UUID) (int64, error)
}

func (f *fakeProductRepo) Create(ctx context.Context, product *entity.Product) error {
	return errNotStubbed
}

func (f *fakeProductRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	return nil, errNotStubbed
}

func (f *fakeProductRepo) GetBatch(ctx context.Context, storeID uuid.UUID, ids []uuid.UUID) ([]entity.Product, error) {
	if f.getBatchFn == nil {
		return nil, errNotStubbed
	}
	return f.getBatchFn(ctx, storeID, ids)
}

func (f *fakeProductRepo) Update(ctx context.Context, product *entity.Product) error {
	return errNotStubbed
}

func (f *fakeProductRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return errNotStubbed
}

func (f *fakeProductRepo) List(ctx context.Context, storeID uuid.UUID, params *pagination.PaginationParams, search string) ([]entity.Product, int64, error) {
	return nil, 0, errNotStubbed
}

func (f *fakeProductRepo) DecrementStockBatch(ctx context.Context, storeID uuid.UUID, quantities map[uuid.UUID]int) error {
	if f.decrementStockBatchFn == nil {
		return errNotStubbed
	}
	return f.decrementStockBatchFn(ctx, storeID, quantities)
}

func (f *fakeProductRepo) CountBelowAlert(ctx context.Context, storeID uuid.UUID) (int64, error) {
	if f.countBelowAlertFn == nil {
		return 0, errNotStubbed
	}
	return f.countBelowAlertFn(ctx, storeID)
}

func (f *fakeProductRepo) ListBelowAlert(ctx context.Context, storeID uuid.UUID) ([]entity.Product, error) {
	return nil, errNotStubbed
}

type fakeCustomerRepo struct {
	getByIDFn              func(ctx context.Context, id uuid.UUID) (*entity.Customer, error)
	addDebtFn              func(ctx context.Context, id uuid.UUID, delta money.Money) error
	totalOutstandingDebtFn func(ctx context.Context, storeID uuid.UUID) (money.Money, error)
}

func (f *fakeCustomerRepo) Create(ctx context.Context, customer *entity.Customer) error {
	return errNotStubbed
}

func (f *fakeCustomerRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	if f.getByIDFn == nil {
		return nil, errNotStubbed
	}
	return f.getByIDFn(ctx, id)
}

func (f *fakeCustomerRepo) Update(ctx context.Context, customer *entity.Customer) error {
	return errNotStubbed
}

func (f *fakeCustomerRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return errNotStubbed
}

func (f *fakeCustomerRepo) List(ctx context.Context, storeID uuid.UUID, params *pagination.PaginationParams, search string) ([]entity.Customer, int64, error) {
	return nil, 0, errNotStubbed
}

func (f *fakeCustomerRepo) AddDebt(ctx context.Context, id uuid.UUID, delta money.Money) error {
	if f.addDebtFn == nil {
		return errNotStubbed
	}
	return f.addDebtFn(ctx, id, delta)
}

func (f *fakeCustomerRepo) TotalOutstandingDebt(ctx context.Context, storeID uuid.UUID) (money.Money, error) {
	if f.totalOutstandingDebtFn == nil {
		return 0, errNotStubbed
	}
	return f.totalOutstandingDebtFn(ctx, storeID)
}

type fakeStoreRepo struct {
	getByIDFn func(ctx context.Context, id uuid.UUID) (*entity.Store, error)
}

func (f *fakeStoreRepo) Create(ctx context.Context, store *entity.Store) error {
	return errNotStubbed
}

func (f *fakeStoreRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Store, error) {
	if f.getByIDFn == nil {
		return nil, errNotStubbed
	}
	return f.getByIDFn(ctx, id)
}

func (f *fakeStoreRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]entity.Store, error) {
	return nil, errNotStubbed
}

func (f *fakeStoreRepo) Update(ctx context.Context, store *entity.Store) error {
	return errNotStubbed
}

func (f *fakeStoreRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return errNotStubbed
}

// recordingPrinter captures printed payloads for assertions.
type recordingPrinter struct {
	printed  [][]byte
	printErr error
}

func (p *recordingPrinter) Print(data []byte) error {
	if p.printErr != nil {
		return p.printErr
	}
	p.printed = append(p.printed, data)
	return nil
}

func (p *recordingPrinter) Close() error { return nil }

func (p *recordingPrinter) IsConnected() bool { return true }

func storeFixture(id uuid.UUID) *entity.Store {
	return &entity.Store{
		ID:       id,
		UserID:   uuid.New(),
		Name:     "Warung Bu Siti",
		Phone:    "0812-3456-7890",
		Address:  "Jl. Melati No. 5, Bandung",
		Timezone: "Asia/Jakarta",
		Currency: "IDR",
		Locale:   "id-ID",
	}
}
