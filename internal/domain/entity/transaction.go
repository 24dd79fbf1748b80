package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/mhdalhzau/warungpos/internal/domain/enum"
	"github.com/mhdalhzau/warungpos/pkg/money"
	"gorm.io/gorm"
)

// Transaction is a finalized sale. It is immutable once created: a
// correction creates a new transaction, never mutates history. The rollup
// (subtotal/discount/tax/total) and the store branding current at sale time
// are frozen in so receipts can be regenerated even after the store profile
// changes.
type Transaction struct {
	ID            uuid.UUID          `gorm:"type:uuid;primary_key" json:"id"`
	StoreID       uuid.UUID          `gorm:"type:uuid;not null;uniqueIndex:idx_store_invoice" json:"store_id"`
	InvoiceNumber string             `gorm:"size:100;not null;uniqueIndex:idx_store_invoice" json:"invoice_number"`
	CustomerName  *string            `gorm:"size:255" json:"customer_name,omitempty"`
	Subtotal      money.Money        `gorm:"not null;default:0" json:"subtotal"`
	Discount      money.Money        `gorm:"not null;default:0" json:"discount"`
	Tax           money.Money        `gorm:"not null;default:0" json:"tax"`
	Total         money.Money        `gorm:"not null;default:0" json:"total"`
	PaymentMethod string             `gorm:"size:50" json:"payment_method"`
	PaymentStatus enum.PaymentStatus `gorm:"size:20;not null;default:'paid'" json:"payment_status"`

	// Branding snapshot taken at sale time; the lowest-precedence tier
	// when composing a receipt.
	StoreName    string `gorm:"size:255" json:"store_name"`
	StorePhone   string `gorm:"size:50" json:"store_phone"`
	StoreAddress string `gorm:"type:text" json:"store_address"`

	CreatedAt time.Time      `json:"created_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Store Store             `gorm:"foreignKey:StoreID" json:"-"`
	Items []TransactionItem `gorm:"foreignKey:TransactionID" json:"items,omitempty"`
}

// BeforeCreate generates a UUID before creating a new transaction
func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Transaction model
func (Transaction) TableName() string {
	return "transactions"
}

// Rollup returns the financial tuple frozen into the transaction.
func (t *Transaction) Rollup() money.Rollup {
	return money.Rollup{
		Subtotal: t.Subtotal,
		Discount: t.Discount,
		Tax:      t.Tax,
		Total:    t.Total,
	}
}

// TransactionItem is a line item of a transaction. Position preserves the
// insertion order, which is also the receipt display order. The product name
// and unit price are frozen at sale time.
type TransactionItem struct {
	ID            uuid.UUID   `gorm:"type:uuid;primary_key" json:"id"`
	TransactionID uuid.UUID   `gorm:"type:uuid;not null;index" json:"transaction_id"`
	Position      int         `gorm:"not null" json:"position"`
	ProductName   string      `gorm:"size:255;not null" json:"product_name"`
	Quantity      int         `gorm:"not null" json:"quantity"`
	UnitPrice     money.Money `gorm:"not null" json:"unit_price"`
	Total         money.Money `gorm:"not null" json:"total"`

	// Relationships
	Transaction Transaction `gorm:"foreignKey:TransactionID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new transaction item
func (ti *TransactionItem) BeforeCreate(tx *gorm.DB) error {
	if ti.ID == uuid.Nil {
		ti.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the TransactionItem model
func (TransactionItem) TableName() string {
	return "transaction_items"
}
