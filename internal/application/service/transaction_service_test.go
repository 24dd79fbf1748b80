package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/mhdalhzau/warungpos/internal/domain/entity"
	"github.com/mhdalhzau/warungpos/internal/domain/enum"
	"github.com/mhdalhzau/warungpos/internal/domain/repository"
	"github.com/mhdalhzau/warungpos/pkg/money"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type saleFixture struct {
	svc          *TransactionService
	txnRepo      *fakeTransactionRepo
	productRepo  *fakeProductRepo
	customerRepo *fakeCustomerRepo
	storeID      uuid.UUID
	kopi         entity.Product
	indomie      entity.Product

	created     *entity.Transaction
	decremented map[uuid.UUID]int
	debtBooked  money.Money
}

func newSaleFixture(t *testing.T) *saleFixture {
	t.Helper()
	storeID := uuid.New()

	f := &saleFixture{
		storeID: storeID,
		kopi:    entity.Product{ID: uuid.New(), StoreID: storeID, Name: "Kopi Sachet", SellingPrice: 1500, Stock: 10},
		indomie: entity.Product{ID: uuid.New(), StoreID: storeID, Name: "Indomie Goreng", SellingPrice: 3500, Stock: 20},
	}

	f.txnRepo = &fakeTransactionRepo{
		createFn: func(ctx context.Context, txn *entity.Transaction) error {
			f.created = txn
			return nil
		},
		countOnDayFn: func(ctx context.Context, _ uuid.UUID, _, _ time.Time) (int64, error) {
			return 6, nil
		},
	}
	f.productRepo = &fakeProductRepo{
		getBatchFn: func(ctx context.Context, _ uuid.UUID, ids []uuid.UUID) ([]entity.Product, error) {
			var out []entity.Product
			for _, id := range ids {
				if id == f.kopi.ID {
					out = append(out, f.kopi)
				}
				if id == f.indomie.ID {
					out = append(out, f.indomie)
				}
			}
			return out, nil
		},
		decrementStockBatchFn: func(ctx context.Context, _ uuid.UUID, quantities map[uuid.UUID]int) error {
			f.decremented = quantities
			return nil
		},
	}
	f.customerRepo = &fakeCustomerRepo{
		addDebtFn: func(ctx context.Context, _ uuid.UUID, delta money.Money) error {
			f.debtBooked += delta
			return nil
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

	f.svc = NewTransactionService(f.txnRepo, f.productRepo, f.customerRepo, storeRepo)
	// 05:30 UTC on Aug 31 is still Aug 31 in Asia/Jakarta.
	f.svc.now = func() time.Time {
		return time.Date(2026, time.August, 31, 5, 30, 0, 0, time.UTC)
	}
	return f
}

func (f *saleFixture) input() *CreateSaleInput {
	return &CreateSaleInput{
		StoreID: f.storeID,
		Items: []SaleItemInput{
			{ProductID: f.kopi.ID, Quantity: 2},
			{ProductID: f.indomie.ID, Quantity: 4},
		},
		Discount:      2000,
		TaxRate:       0.11,
		PaymentMethod: "cash",
	}
}

func TestCreateSale(t *testing.T) {
	f := newSaleFixture(t)

	txn, err := f.svc.CreateSale(context.Background(), f.input())
	require.NoError(t, err)
	require.NotNil(t, f.created)

	// Rollup frozen in: 17000 - 2000 + 11% of 15000.
	assert.Equal(t, money.Money(17000), txn.Subtotal)
	assert.Equal(t, money.Money(2000), txn.Discount)
	assert.Equal(t, money.Money(1650), txn.Tax)
	assert.Equal(t, money.Money(16650), txn.Total)
	assert.Equal(t, enum.PaymentStatusPaid, txn.PaymentStatus)

	// Six prior sales today, so this is number seven.
	assert.Equal(t, "INV-20260831-0007", txn.InvoiceNumber)

	// Branding snapshot taken from the store at sale time.
	assert.Equal(t, "Warung Bu Siti", txn.StoreName)
	assert.Equal(t, "Jl. Melati No. 5, Bandung", txn.StoreAddress)

	// Line items frozen with name and price; position preserves cart order.
	require.Len(t, txn.Items, 2)
	assert.Equal(t, 0, txn.Items[0].Position)
	assert.Equal(t, "Kopi Sachet", txn.Items[0].ProductName)
	assert.Equal(t, money.Money(1500), txn.Items[0].UnitPrice)
	assert.Equal(t, money.Money(3000), txn.Items[0].Total)
	assert.Equal(t, "Indomie Goreng", txn.Items[1].ProductName)

	assert.Equal(t, map[uuid.UUID]int{f.kopi.ID: 2, f.indomie.ID: 4}, f.decremented)
	assert.Equal(t, money.Money(0), f.debtBooked)
}

func TestCreateSalePendingWithCustomerBooksDebt(t *testing.T) {
	f := newSaleFixture(t)

	customerID := uuid.New()
	f.customerRepo.getByIDFn = func(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
		if id == customerID {
			return &entity.Customer{ID: customerID, StoreID: f.storeID, Name: "Pak Budi"}, nil
		}
		return nil, nil
	}

	input := f.input()
	input.CustomerID = &customerID
	input.PaymentStatus = enum.PaymentStatusPending

	txn, err := f.svc.CreateSale(context.Background(), input)
	require.NoError(t, err)

	require.NotNil(t, txn.CustomerName)
	assert.Equal(t, "Pak Budi", *txn.CustomerName)
	assert.Equal(t, money.Money(16650), f.debtBooked)
}

func TestCreateSaleInsufficientStock(t *testing.T) {
	f := newSaleFixture(t)
	f.productRepo.decrementStockBatchFn = func(ctx context.Context, _ uuid.UUID, _ map[uuid.UUID]int) error {
		return repository.ErrInsufficientStock
	}

	_, err := f.svc.CreateSale(context.Background(), f.input())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Insufficient stock")
	assert.Nil(t, f.created)
}

func TestCreateSaleExcessiveDiscountRejectedBeforeStockChanges(t *testing.T) {
	f := newSaleFixture(t)

	input := f.input()
	input.Discount = 100000 // more than the 17000 subtotal

	_, err := f.svc.CreateSale(context.Background(), input)
	require.Error(t, err)
	assert.Nil(t, f.decremented)
	assert.Nil(t, f.created)
}

func TestCreateSaleUnknownProduct(t *testing.T) {
	f := newSaleFixture(t)

	input := f.input()
	input.Items = append(input.Items, SaleItemInput{ProductID: uuid.New(), Quantity: 1})

	_, err := f.svc.CreateSale(context.Background(), input)
	assert.Error(t, err)
	assert.Nil(t, f.created)
}

func TestCreateSaleRejectsBadCart(t *testing.T) {
	f := newSaleFixture(t)

	empty := f.input()
	empty.Items = nil
	_, err := f.svc.CreateSale(context.Background(), empty)
	assert.Error(t, err)

	dup := f.input()
	dup.Items = append(dup.Items, SaleItemInput{ProductID: f.kopi.ID, Quantity: 1})
	_, err = f.svc.CreateSale(context.Background(), dup)
	assert.Error(t, err)

	zeroQty := f.input()
	zeroQty.Items[0].Quantity = 0
	_, err = f.svc.CreateSale(context.Background(), zeroQty)
	assert.Error(t, err)

	badStatus := f.input()
	badStatus.PaymentStatus = enum.PaymentStatus("installment")
	_, err = f.svc.CreateSale(context.Background(), badStatus)
	assert.Error(t, err)
}
