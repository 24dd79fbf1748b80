package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/mhdalhzau/warungpos/internal/domain/entity"
	"github.com/mhdalhzau/warungpos/internal/domain/enum"
	"github.com/mhdalhzau/warungpos/pkg/money"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDashboardFixture(storeID uuid.UUID) (*DashboardService, *fakeTransactionRepo, *fakeProductRepo, *fakeCustomerRepo) {
	txnRepo := &fakeTransactionRepo{
		sumPaidTotalsFn: func(ctx context.Context, _ uuid.UUID, _, _ time.Time) (money.Money, error) {
			return 17000, nil
		},
		countInWindowFn: func(ctx context.Context, _ uuid.UUID, _, _ time.Time) (int64, error) {
			return 3, nil
		},
		recentFn: func(ctx context.Context, _ uuid.UUID, limit int) ([]entity.Transaction, error) {
			return nil, nil
		},
	}
	productRepo := &fakeProductRepo{
		countBelowAlertFn: func(ctx context.Context, _ uuid.UUID) (int64, error) {
			return 2, nil
		},
	}
	customerRepo := &fakeCustomerRepo{
		totalOutstandingDebtFn: func(ctx context.Context, _ uuid.UUID) (money.Money, error) {
			return 45000, nil
		},
	}
	storeRepo := &fakeStoreRepo{
		getByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.Store, error) {
			if id == storeID {
				return storeFixture(storeID), nil
			}
			return nil, nil
		},
	}

	svc := NewDashboardService(txnRepo, productRepo, customerRepo, storeRepo)
	return svc, txnRepo, productRepo, customerRepo
}

func TestDashboardSnapshotAllSourcesHealthy(t *testing.T) {
	storeID := uuid.New()
	svc, _, _, _ := newDashboardFixture(storeID)

	snapshot, err := svc.GetSnapshot(context.Background(), storeID, time.Time{})
	require.NoError(t, err)

	require.NotNil(t, snapshot.DailySales)
	assert.Equal(t, money.Money(17000), *snapshot.DailySales)
	require.NotNil(t, snapshot.DailySalesDisplay)
	assert.Equal(t, "Rp17.000", *snapshot.DailySalesDisplay)

	require.NotNil(t, snapshot.TransactionCount)
	assert.Equal(t, int64(3), *snapshot.TransactionCount)

	require.NotNil(t, snapshot.TotalDebt)
	assert.Equal(t, money.Money(45000), *snapshot.TotalDebt)

	require.NotNil(t, snapshot.LowStockCount)
	assert.Equal(t, int64(2), *snapshot.LowStockCount)

	assert.True(t, snapshot.RecentAvailable)
	assert.Empty(t, snapshot.Recent)
}

func TestDashboardSnapshotWindowIsMerchantLocalDay(t *testing.T) {
	storeID := uuid.New()
	svc, txnRepo, _, _ := newDashboardFixture(storeID)

	// 01:00 UTC is 08:00 in Asia/Jakarta, so "today" began at 17:00 UTC
	// the previous calendar day.
	asOf := time.Date(2026, time.August, 31, 1, 0, 0, 0, time.UTC)

	var gotStart, gotEnd time.Time
	txnRepo.sumPaidTotalsFn = func(ctx context.Context, _ uuid.UUID, start, end time.Time) (money.Money, error) {
		gotStart, gotEnd = start, end
		return 0, nil
	}

	snapshot, err := svc.GetSnapshot(context.Background(), storeID, asOf)
	require.NoError(t, err)

	assert.True(t, gotStart.Equal(time.Date(2026, time.August, 30, 17, 0, 0, 0, time.UTC)))
	assert.True(t, gotEnd.Equal(time.Date(2026, time.August, 31, 17, 0, 0, 0, time.UTC)))
	assert.Equal(t, 24*time.Hour, snapshot.WindowEnd.Sub(snapshot.WindowStart))
}

func TestDashboardSnapshotZeroAsOfUsesClock(t *testing.T) {
	storeID := uuid.New()
	svc, txnRepo, _, _ := newDashboardFixture(storeID)

	svc.now = func() time.Time {
		return time.Date(2026, time.September, 2, 1, 0, 0, 0, time.UTC)
	}

	var gotStart time.Time
	txnRepo.sumPaidTotalsFn = func(ctx context.Context, _ uuid.UUID, start, _ time.Time) (money.Money, error) {
		gotStart = start
		return 0, nil
	}

	_, err := svc.GetSnapshot(context.Background(), storeID, time.Time{})
	require.NoError(t, err)

	assert.True(t, gotStart.Equal(time.Date(2026, time.September, 1, 17, 0, 0, 0, time.UTC)))
}

func TestDashboardSnapshotDegradesPerField(t *testing.T) {
	storeID := uuid.New()
	svc, txnRepo, _, _ := newDashboardFixture(storeID)

	txnRepo.sumPaidTotalsFn = func(ctx context.Context, _ uuid.UUID, _, _ time.Time) (money.Money, error) {
		return 0, context.DeadlineExceeded
	}

	snapshot, err := svc.GetSnapshot(context.Background(), storeID, time.Time{})
	require.NoError(t, err)

	// The failed source is null; every other field still arrived.
	assert.Nil(t, snapshot.DailySales)
	assert.Nil(t, snapshot.DailySalesDisplay)
	require.NotNil(t, snapshot.TransactionCount)
	require.NotNil(t, snapshot.TotalDebt)
	require.NotNil(t, snapshot.LowStockCount)
	assert.True(t, snapshot.RecentAvailable)
}

func TestDashboardSnapshotSlowSourceTimesOut(t *testing.T) {
	storeID := uuid.New()
	svc, txnRepo, _, _ := newDashboardFixture(storeID)
	svc.SetSourceTimeout(20 * time.Millisecond)

	txnRepo.countInWindowFn = func(ctx context.Context, _ uuid.UUID, _, _ time.Time) (int64, error) {
		select {
		case <-ctx.Done():
			return 0, ctx.Err()
		case <-time.After(2 * time.Second):
			return 99, nil
		}
	}

	start := time.Now()
	snapshot, err := svc.GetSnapshot(context.Background(), storeID, time.Time{})
	require.NoError(t, err)

	assert.Nil(t, snapshot.TransactionCount)
	require.NotNil(t, snapshot.DailySales)
	assert.Less(t, time.Since(start), time.Second)
}

func TestDashboardSnapshotRecentTransactions(t *testing.T) {
	storeID := uuid.New()
	svc, txnRepo, _, _ := newDashboardFixture(storeID)

	name := "Pak Budi"
	base := time.Date(2026, time.August, 31, 3, 0, 0, 0, time.UTC)
	txnRepo.recentFn = func(ctx context.Context, _ uuid.UUID, limit int) ([]entity.Transaction, error) {
		assert.Equal(t, RecentTransactionLimit, limit)
		return []entity.Transaction{
			{ID: uuid.New(), InvoiceNumber: "INV-20260831-0003", CustomerName: &name, Total: 5000, PaymentStatus: enum.PaymentStatusPaid, CreatedAt: base.Add(2 * time.Minute)},
			{ID: uuid.New(), InvoiceNumber: "INV-20260831-0002", Total: 12000, PaymentStatus: enum.PaymentStatusPending, CreatedAt: base.Add(time.Minute)},
			{ID: uuid.New(), InvoiceNumber: "INV-20260831-0001", Total: 7000, PaymentStatus: enum.PaymentStatusPaid, CreatedAt: base},
		}, nil
	}

	snapshot, err := svc.GetSnapshot(context.Background(), storeID, time.Time{})
	require.NoError(t, err)

	require.Len(t, snapshot.Recent, 3)
	assert.Equal(t, "INV-20260831-0003", snapshot.Recent[0].InvoiceNumber)
	assert.Equal(t, "Pak Budi", snapshot.Recent[0].CustomerName)
	assert.Equal(t, "Rp5.000", snapshot.Recent[0].TotalDisplay)
	// 03:02 UTC renders as 10:02 in the store's timezone
	assert.Equal(t, "10:02", snapshot.Recent[0].TimeDisplay)
	assert.Equal(t, "pending", snapshot.Recent[1].PaymentStatus)
}

func TestDashboardSnapshotStoreNotFound(t *testing.T) {
	svc, _, _, _ := newDashboardFixture(uuid.New())

	_, err := svc.GetSnapshot(context.Background(), uuid.New(), time.Time{})
	assert.Error(t, err)
}
