package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/mhdalhzau/warungpos/internal/domain/entity"
	"github.com/mhdalhzau/warungpos/internal/domain/enum"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func transactionFixture(storeID uuid.UUID) *entity.Transaction {
	name := "Ibu Ani"
	return &entity.Transaction{
		ID:            uuid.New(),
		StoreID:       storeID,
		InvoiceNumber: "INV-20260831-0007",
		CustomerName:  &name,
		Subtotal:      17000,
		Discount:      2000,
		Tax:           1650,
		Total:         16650,
		PaymentMethod: "cash",
		PaymentStatus: enum.PaymentStatusPaid,
		StoreName:     "Warung Bu Siti (lama)",
		StorePhone:    "0800-0000-0000",
		StoreAddress:  "Alamat lama",
		// 05:30 UTC is 12:30 in Asia/Jakarta
		CreatedAt: time.Date(2026, time.August, 31, 5, 30, 0, 0, time.UTC),
		Items: []entity.TransactionItem{
			{Position: 0, ProductName: "Kopi Sachet", Quantity: 2, UnitPrice: 1500, Total: 3000},
			{Position: 1, ProductName: "Indomie Goreng", Quantity: 4, UnitPrice: 3500, Total: 14000},
		},
	}
}

func newReceiptFixture(storeID uuid.UUID, store *entity.Store, txn *entity.Transaction) (*ReceiptService, *recordingPrinter) {
	txnRepo := &fakeTransactionRepo{
		getWithItemsFn: func(ctx context.Context, id uuid.UUID) (*entity.Transaction, error) {
			if txn != nil && id == txn.ID {
				return txn, nil
			}
			return nil, nil
		},
	}
	storeRepo := &fakeStoreRepo{
		getByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.Store, error) {
			if store != nil && id == storeID {
				return store, nil
			}
			return nil, nil
		},
	}
	p := &recordingPrinter{}
	return NewReceiptService(txnRepo, storeRepo, p), p
}

func TestComposeUsesCurrentBrandingOverFrozen(t *testing.T) {
	storeID := uuid.New()
	store := storeFixture(storeID)
	txn := transactionFixture(storeID)
	svc, _ := newReceiptFixture(storeID, store, txn)

	doc, err := svc.Compose(context.Background(), storeID, txn.ID, nil)
	require.NoError(t, err)

	assert.Equal(t, "Warung Bu Siti", doc.StoreName)
	assert.Equal(t, "Jl. Melati No. 5, Bandung", doc.StoreAddress)
	assert.Equal(t, "0812-3456-7890", doc.StorePhone)
	assert.Equal(t, "INV-20260831-0007", doc.InvoiceNumber)
	assert.Equal(t, "Ibu Ani", doc.CustomerName)
	assert.Equal(t, "31 Agu 2026 12:30", doc.IssuedAtDisplay)

	require.Len(t, doc.Items, 2)
	assert.Equal(t, "Kopi Sachet", doc.Items[0].ProductName)
	assert.Equal(t, "Rp1.500", doc.Items[0].UnitPriceDisplay)
	assert.Equal(t, "Rp14.000", doc.Items[1].TotalDisplay)

	assert.Equal(t, "Rp17.000", doc.SubtotalDisplay)
	assert.Equal(t, "Rp2.000", doc.DiscountDisplay)
	assert.Equal(t, "Rp1.650", doc.TaxDisplay)
	assert.Equal(t, "Rp16.650", doc.TotalDisplay)
}

func TestComposeOverridesWinOverBranding(t *testing.T) {
	storeID := uuid.New()
	store := storeFixture(storeID)
	txn := transactionFixture(storeID)
	svc, _ := newReceiptFixture(storeID, store, txn)

	addr := "Cabang Pasar Baru"
	phone := "0899-1111-2222"
	content := "Buka setiap hari 06.00-21.00"
	doc, err := svc.Compose(context.Background(), storeID, txn.ID, &entity.ReceiptOverrides{
		CustomAddress: &addr,
		CustomPhone:   &phone,
		CustomContent: &content,
	})
	require.NoError(t, err)

	assert.Equal(t, "Cabang Pasar Baru", doc.StoreAddress)
	assert.Equal(t, "0899-1111-2222", doc.StorePhone)
	assert.Equal(t, "Buka setiap hari 06.00-21.00", doc.CustomContent)
	// The store name has no override tier and stays on branding.
	assert.Equal(t, "Warung Bu Siti", doc.StoreName)
}

func TestComposeEmptyOverrideBlanksField(t *testing.T) {
	storeID := uuid.New()
	store := storeFixture(storeID)
	txn := transactionFixture(storeID)
	svc, _ := newReceiptFixture(storeID, store, txn)

	empty := ""
	doc, err := svc.Compose(context.Background(), storeID, txn.ID, &entity.ReceiptOverrides{
		CustomAddress: &empty,
	})
	require.NoError(t, err)

	assert.Equal(t, "", doc.StoreAddress)
	assert.Equal(t, "0812-3456-7890", doc.StorePhone)
}

func TestComposeFallsBackToFrozenValues(t *testing.T) {
	storeID := uuid.New()
	store := storeFixture(storeID)
	store.Address = ""
	store.Phone = ""
	txn := transactionFixture(storeID)
	svc, _ := newReceiptFixture(storeID, store, txn)

	doc, err := svc.Compose(context.Background(), storeID, txn.ID, nil)
	require.NoError(t, err)

	assert.Equal(t, "Alamat lama", doc.StoreAddress)
	assert.Equal(t, "0800-0000-0000", doc.StorePhone)
}

func TestComposeMissingStoreNameAborts(t *testing.T) {
	storeID := uuid.New()
	store := storeFixture(storeID)
	store.Name = ""
	txn := transactionFixture(storeID)
	txn.StoreName = ""
	svc, _ := newReceiptFixture(storeID, store, txn)

	doc, err := svc.Compose(context.Background(), storeID, txn.ID, nil)
	assert.Nil(t, doc)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing required field")
}

func TestComposeWrongStoreIsNotFound(t *testing.T) {
	storeID := uuid.New()
	store := storeFixture(storeID)
	txn := transactionFixture(uuid.New()) // belongs to another store
	svc, _ := newReceiptFixture(storeID, store, txn)

	_, err := svc.Compose(context.Background(), storeID, txn.ID, nil)
	assert.Error(t, err)
}

func TestPrintSendsEscPosPayload(t *testing.T) {
	storeID := uuid.New()
	store := storeFixture(storeID)
	txn := transactionFixture(storeID)
	svc, p := newReceiptFixture(storeID, store, txn)

	doc, err := svc.Print(context.Background(), storeID, txn.ID, nil)
	require.NoError(t, err)
	require.NotNil(t, doc)

	require.Len(t, p.printed, 1)
	payload := string(p.printed[0])
	assert.Contains(t, payload, "Warung Bu Siti")
	assert.Contains(t, payload, "INV-20260831-0007")
	assert.Contains(t, payload, "2x @Rp1.500")
	assert.Contains(t, payload, "Rp16.650")
	assert.Contains(t, payload, "Terima kasih")
}

func TestFormatReceiptOmitsZeroDiscountAndTax(t *testing.T) {
	doc := &entity.ReceiptDocument{
		StoreName:       "Toko",
		InvoiceNumber:   "INV-1",
		IssuedAtDisplay: "31 Agu 2026 12:30",
		SubtotalDisplay: "Rp5.000",
		DiscountDisplay: "Rp0",
		TaxDisplay:      "Rp0",
		TotalDisplay:    "Rp5.000",
	}

	payload := string(FormatReceipt(doc))
	assert.NotContains(t, payload, "Diskon")
	assert.NotContains(t, payload, "Pajak")
	assert.Contains(t, payload, "TOTAL")
}
