package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/mhdalhzau/warungpos/internal/domain/entity"
	"github.com/mhdalhzau/warungpos/internal/domain/repository"
	"github.com/mhdalhzau/warungpos/pkg/apperror"
	"github.com/mhdalhzau/warungpos/pkg/datefmt"
	"github.com/mhdalhzau/warungpos/pkg/money"
	"github.com/mhdalhzau/warungpos/pkg/printer"
)

// ReceiptService composes render-ready receipt documents and drives the
// thermal printer.
type ReceiptService struct {
	transactionRepo repository.TransactionRepository
	storeRepo       repository.StoreRepository
	printer         printer.Printer
}

// NewReceiptService creates a new receipt service
func NewReceiptService(
	transactionRepo repository.TransactionRepository,
	storeRepo repository.StoreRepository,
	p printer.Printer,
) *ReceiptService {
	return &ReceiptService{
		transactionRepo: transactionRepo,
		storeRepo:       storeRepo,
		printer:         p,
	}
}

// Compose builds the receipt document for a transaction.
//
// Field resolution runs highest precedence first: per-print overrides, then
// the store's current branding, then the values frozen into the transaction
// at sale time. Optional fields resolve to empty and render as omitted; a
// missing store name aborts the whole document since a receipt without an
// issuer is not a valid receipt.
func (s *ReceiptService) Compose(ctx context.Context, storeID, transactionID uuid.UUID, overrides *entity.ReceiptOverrides) (*entity.ReceiptDocument, error) {
	txn, err := s.transactionRepo.GetWithItems(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	if txn == nil || txn.StoreID != storeID {
		return nil, apperror.NewNotFoundError("Transaction")
	}

	store, err := s.storeRepo.GetByID(ctx, storeID)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, apperror.NewNotFoundError("Store")
	}

	locale := store.Locale
	loc, err := store.Location()
	if err != nil {
		return nil, apperror.NewInvalidInputError("Unknown store timezone: " + store.Timezone)
	}

	doc := &entity.ReceiptDocument{
		InvoiceNumber: txn.InvoiceNumber,
		PaymentMethod: txn.PaymentMethod,
		PaymentStatus: txn.PaymentStatus.String(),
		IssuedAt:      txn.CreatedAt,
		Subtotal:      txn.Subtotal,
		Discount:      txn.Discount,
		Tax:           txn.Tax,
		Total:         txn.Total,
	}

	doc.StoreName = firstNonEmpty(store.Name, txn.StoreName)
	if doc.StoreName == "" {
		return nil, apperror.NewMissingFieldError("store name")
	}
	if txn.InvoiceNumber == "" {
		return nil, apperror.NewMissingFieldError("invoice number")
	}

	doc.StoreAddress = resolveOverride(overrideAddress(overrides), store.Address, txn.StoreAddress)
	doc.StorePhone = resolveOverride(overridePhone(overrides), store.Phone, txn.StorePhone)
	if overrides != nil && overrides.CustomContent != nil {
		doc.CustomContent = *overrides.CustomContent
	}
	if store.LogoURL != nil {
		doc.LogoURL = *store.LogoURL
	}
	if txn.CustomerName != nil {
		doc.CustomerName = *txn.CustomerName
	}

	doc.IssuedAtDisplay = datefmt.Format(txn.CreatedAt.In(loc), locale, datefmt.PrecisionDateTime)

	doc.Items = make([]entity.ReceiptLine, 0, len(txn.Items))
	for _, item := range txn.Items {
		line := entity.ReceiptLine{
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			Total:       item.Total,
		}
		if line.UnitPriceDisplay, err = money.FormatCurrency(item.UnitPrice, locale); err != nil {
			return nil, apperror.NewInvalidInputError("Transaction contains a negative unit price")
		}
		if line.TotalDisplay, err = money.FormatCurrency(item.Total, locale); err != nil {
			return nil, apperror.NewInvalidInputError("Transaction contains a negative line total")
		}
		doc.Items = append(doc.Items, line)
	}

	if doc.SubtotalDisplay, err = money.FormatCurrency(txn.Subtotal, locale); err != nil {
		return nil, apperror.NewInvalidInputError("Transaction subtotal is negative")
	}
	if doc.DiscountDisplay, err = money.FormatCurrency(txn.Discount, locale); err != nil {
		return nil, apperror.NewInvalidInputError("Transaction discount is negative")
	}
	if doc.TaxDisplay, err = money.FormatCurrency(txn.Tax, locale); err != nil {
		return nil, apperror.NewInvalidInputError("Transaction tax is negative")
	}
	if doc.TotalDisplay, err = money.FormatCurrency(txn.Total, locale); err != nil {
		return nil, apperror.NewInvalidInputError("Transaction total is negative")
	}

	return doc, nil
}

// Print composes the receipt and sends it to the configured printer
func (s *ReceiptService) Print(ctx context.Context, storeID, transactionID uuid.UUID, overrides *entity.ReceiptOverrides) (*entity.ReceiptDocument, error) {
	doc, err := s.Compose(ctx, storeID, transactionID, overrides)
	if err != nil {
		return nil, err
	}

	data := FormatReceipt(doc)
	if err := s.printer.Print(data); err != nil {
		log.Printf("receipt: printer error (transaction %s): %v", transactionID, err)
		return doc, fmt.Errorf("failed to print receipt: %w", err)
	}
	return doc, nil
}

// TestPrint prints a fixed sample so the merchant can verify the hardware
func (s *ReceiptService) TestPrint(ctx context.Context, storeID uuid.UUID) (*entity.ReceiptDocument, error) {
	store, err := s.storeRepo.GetByID(ctx, storeID)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, apperror.NewNotFoundError("Store")
	}
	if store.Name == "" {
		return nil, apperror.NewMissingFieldError("store name")
	}

	now := time.Now()
	loc, _ := store.Location()
	if loc != nil {
		now = now.In(loc)
	}

	doc := &entity.ReceiptDocument{
		StoreName:       store.Name,
		StoreAddress:    store.Address,
		StorePhone:      store.Phone,
		InvoiceNumber:   "TEST-PRINT",
		IssuedAt:        now,
		IssuedAtDisplay: datefmt.Format(now, store.Locale, datefmt.PrecisionDateTime),
		CustomContent:   "Printer OK",
	}

	data := FormatReceipt(doc)
	if err := s.printer.Print(data); err != nil {
		return doc, fmt.Errorf("test print failed: %w", err)
	}
	return doc, nil
}

// Status reports whether the configured printer is reachable
func (s *ReceiptService) Status() bool {
	return s.printer.IsConnected()
}

// FormatReceipt converts a ReceiptDocument into ESC/POS bytes.
func FormatReceipt(doc *entity.ReceiptDocument) []byte {
	d := printer.NewDocument(printer.Width58mm)

	// Header
	d.SetAlign(printer.AlignCenter).
		SetBold(true).
		SetFontSize(printer.FontDouble).
		Text(doc.StoreName).
		SetFontSize(printer.FontNormal).
		SetBold(false)

	if doc.StoreAddress != "" {
		d.Text(doc.StoreAddress)
	}
	if doc.StorePhone != "" {
		d.Text(doc.StorePhone)
	}

	d.SetAlign(printer.AlignLeft).Separator('-')
	d.Row("No", doc.InvoiceNumber)
	d.Row("Waktu", doc.IssuedAtDisplay)
	if doc.CustomerName != "" {
		d.Row("Pelanggan", doc.CustomerName)
	}
	d.Separator('-')

	for _, item := range doc.Items {
		d.Text(item.ProductName)
		d.ItemRow(item.Quantity, "@"+item.UnitPriceDisplay, item.TotalDisplay)
	}

	d.Separator('-')
	d.Row("Subtotal", doc.SubtotalDisplay)
	if doc.Discount > 0 {
		d.Row("Diskon", "-"+doc.DiscountDisplay)
	}
	if doc.Tax > 0 {
		d.Row("Pajak", doc.TaxDisplay)
	}
	d.SetBold(true)
	d.Row("TOTAL", doc.TotalDisplay)
	d.SetBold(false)

	if doc.PaymentMethod != "" {
		d.Row("Bayar", doc.PaymentMethod)
	}

	if doc.CustomContent != "" {
		d.LineFeed().SetAlign(printer.AlignCenter).Text(doc.CustomContent)
	}

	d.LineFeed().
		SetAlign(printer.AlignCenter).
		Text("Terima kasih").
		FeedLines(3).
		PartialCut()

	return d.Bytes()
}

func overrideAddress(o *entity.ReceiptOverrides) *string {
	if o == nil {
		return nil
	}
	return o.CustomAddress
}

func overridePhone(o *entity.ReceiptOverrides) *string {
	if o == nil {
		return nil
	}
	return o.CustomPhone
}

// resolveOverride picks the highest-precedence non-empty value. An override
// set to the empty string deliberately blanks the field.
func resolveOverride(override *string, branding, frozen string) string {
	if override != nil {
		return *override
	}
	return firstNonEmpty(branding, frozen)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
