package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/mhdalhzau/warungpos/internal/domain/entity"
	"github.com/mhdalhzau/warungpos/internal/domain/enum"
	"github.com/mhdalhzau/warungpos/internal/domain/repository"
	"github.com/mhdalhzau/warungpos/pkg/apperror"
	"github.com/mhdalhzau/warungpos/pkg/invoice"
	"github.com/mhdalhzau/warungpos/pkg/money"
	"github.com/mhdalhzau/warungpos/pkg/pagination"
)

// TransactionService finalizes sales: it validates the cart, freezes prices
// and branding, reserves stock and persists the immutable transaction record.
type TransactionService struct {
	transactionRepo repository.TransactionRepository
	productRepo     repository.ProductRepository
	customerRepo    repository.CustomerRepository
	storeRepo       repository.StoreRepository
	now             func() time.Time
}

// NewTransactionService creates a new transaction service
func NewTransactionService(
	transactionRepo repository.TransactionRepository,
	productRepo repository.ProductRepository,
	customerRepo repository.CustomerRepository,
	storeRepo repository.StoreRepository,
) *TransactionService {
	return &TransactionService{
		transactionRepo: transactionRepo,
		productRepo:     productRepo,
		customerRepo:    customerRepo,
		storeRepo:       storeRepo,
		now:             time.Now,
	}
}

// SaleItemInput is one cart line referencing a live product
type SaleItemInput struct {
	ProductID uuid.UUID
	Quantity  int
}

// CreateSaleInput represents the finalize-sale input
type CreateSaleInput struct {
	StoreID       uuid.UUID
	CustomerID    *uuid.UUID
	CustomerName  *string
	Items         []SaleItemInput
	Discount      money.Money
	TaxRate       float64
	PaymentMethod string
	PaymentStatus enum.PaymentStatus
}

// CreateSale finalizes a sale. Product names and unit prices are frozen into
// the line items, the rollup is computed once, stock is reserved atomically,
// and the store branding current right now is snapshotted for receipts.
//
// A pending sale with a known customer also books the total onto that
// customer's debt balance.
func (s *TransactionService) CreateSale(ctx context.Context, input *CreateSaleInput) (*entity.Transaction, error) {
	if len(input.Items) == 0 {
		return nil, apperror.NewInvalidInputError("Sale must contain at least one item")
	}
	if input.PaymentStatus == "" {
		input.PaymentStatus = enum.PaymentStatusPaid
	}
	if !input.PaymentStatus.IsValid() {
		return nil, apperror.NewInvalidInputError("Unknown payment status: " + input.PaymentStatus.String())
	}

	store, err := s.storeRepo.GetByID(ctx, input.StoreID)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, apperror.NewNotFoundError("Store")
	}

	// Resolve the whole cart in one query, then freeze names and prices.
	ids := make([]uuid.UUID, 0, len(input.Items))
	quantities := make(map[uuid.UUID]int, len(input.Items))
	for _, item := range input.Items {
		if item.Quantity < 1 {
			return nil, apperror.NewInvalidInputError("Item quantity must be at least 1")
		}
		if _, dup := quantities[item.ProductID]; dup {
			return nil, apperror.NewInvalidInputError("Duplicate product in cart")
		}
		ids = append(ids, item.ProductID)
		quantities[item.ProductID] = item.Quantity
	}

	products, err := s.productRepo.GetBatch(ctx, input.StoreID, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[uuid.UUID]entity.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	lineItems := make([]money.LineItem, 0, len(input.Items))
	txnItems := make([]entity.TransactionItem, 0, len(input.Items))
	for i, item := range input.Items {
		product, ok := byID[item.ProductID]
		if !ok {
			return nil, apperror.NewNotFoundError("Product")
		}
		line := money.LineItem{
			ProductName: product.Name,
			Quantity:    item.Quantity,
			UnitPrice:   product.SellingPrice,
		}
		lineItems = append(lineItems, line)
		txnItems = append(txnItems, entity.TransactionItem{
			Position:    i,
			ProductName: line.ProductName,
			Quantity:    line.Quantity,
			UnitPrice:   line.UnitPrice,
			Total:       line.Total(),
		})
	}

	rollup, err := money.ComputeRollup(lineItems, input.Discount, input.TaxRate)
	if err != nil {
		return nil, mapRollupError(err)
	}

	var customer *entity.Customer
	if input.CustomerID != nil {
		customer, err = s.customerRepo.GetByID(ctx, *input.CustomerID)
		if err != nil {
			return nil, err
		}
		if customer == nil || customer.StoreID != input.StoreID {
			return nil, apperror.NewNotFoundError("Customer")
		}
	}

	invoiceNumber, issuedAt, err := s.nextInvoiceNumber(ctx, store)
	if err != nil {
		return nil, err
	}

	// Reserve stock before writing the transaction. On insufficient stock
	// nothing has been persisted yet.
	if err := s.productRepo.DecrementStockBatch(ctx, input.StoreID, quantities); err != nil {
		if errors.Is(err, repository.ErrInsufficientStock) {
			return nil, apperror.NewConflictError("Insufficient stock for one or more items")
		}
		return nil, err
	}

	txn := &entity.Transaction{
		StoreID:       input.StoreID,
		InvoiceNumber: invoiceNumber,
		Subtotal:      rollup.Subtotal,
		Discount:      rollup.Discount,
		Tax:           rollup.Tax,
		Total:         rollup.Total,
		PaymentMethod: input.PaymentMethod,
		PaymentStatus: input.PaymentStatus,
		StoreName:     store.Name,
		StorePhone:    store.Phone,
		StoreAddress:  store.Address,
		CreatedAt:     issuedAt,
		Items:         txnItems,
	}
	if customer != nil {
		txn.CustomerName = &customer.Name
	} else if input.CustomerName != nil && *input.CustomerName != "" {
		txn.CustomerName = input.CustomerName
	}

	if err := s.transactionRepo.Create(ctx, txn); err != nil {
		return nil, err
	}

	if customer != nil && input.PaymentStatus == enum.PaymentStatusPending {
		if err := s.customerRepo.AddDebt(ctx, customer.ID, rollup.Total); err != nil {
			return nil, err
		}
	}

	return txn, nil
}

// nextInvoiceNumber derives the next per-store daily sequence and renders it
// through the invoice template. The composite unique index on
// (store_id, invoice_number) backstops concurrent finalizations.
func (s *TransactionService) nextInvoiceNumber(ctx context.Context, store *entity.Store) (string, time.Time, error) {
	loc, err := store.Location()
	if err != nil {
		return "", time.Time{}, apperror.NewInvalidInputError("Unknown store timezone: " + store.Timezone)
	}

	issuedAt := s.now()
	local := issuedAt.In(loc)
	dayStart := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
	dayEnd := dayStart.AddDate(0, 0, 1)

	count, err := s.transactionRepo.CountOnDay(ctx, store.ID, dayStart, dayEnd)
	if err != nil {
		return "", time.Time{}, err
	}

	number, err := invoice.FormatNumber(invoice.DefaultTemplate, local, count+1)
	if err != nil {
		return "", time.Time{}, err
	}
	return number, issuedAt, nil
}

// GetTransaction retrieves a transaction with its items, enforcing the store
// boundary
func (s *TransactionService) GetTransaction(ctx context.Context, id, storeID uuid.UUID) (*entity.Transaction, error) {
	txn, err := s.transactionRepo.GetWithItems(ctx, id)
	if err != nil {
		return nil, err
	}
	if txn == nil || txn.StoreID != storeID {
		return nil, apperror.NewNotFoundError("Transaction")
	}
	return txn, nil
}

// ListTransactions lists transactions newest first
func (s *TransactionService) ListTransactions(ctx context.Context, storeID uuid.UUID, params *repository.TransactionFilterParams) (*pagination.PaginatedResult[entity.Transaction], error) {
	if params.Pagination == nil {
		params.Pagination = pagination.DefaultPagination()
	}
	txns, total, err := s.transactionRepo.List(ctx, storeID, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(txns, pag), nil
}

// mapRollupError translates money sentinels into transport-facing errors
func mapRollupError(err error) error {
	switch {
	case errors.Is(err, money.ErrInvalidDiscount):
		return apperror.NewInvalidInputError("Discount cannot be negative or exceed the subtotal")
	case errors.Is(err, money.ErrInvalidInput):
		return apperror.NewInvalidInputError("Sale contains invalid line items or tax rate")
	default:
		return err
	}
}
