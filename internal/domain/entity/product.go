package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/mhdalhzau/warungpos/pkg/money"
	"gorm.io/gorm"
)

// Product represents a product in a store's inventory. Prices are stored in
// the currency's smallest unit.
type Product struct {
	ID           uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	StoreID      uuid.UUID      `gorm:"type:uuid;not null;index" json:"store_id"`
	Name         string         `gorm:"size:255;not null" json:"name"`
	SKU          string         `gorm:"size:100;index" json:"sku"`
	SellingPrice money.Money    `gorm:"not null;default:0" json:"selling_price"`
	Stock        int            `gorm:"default:0" json:"stock"`
	StockAlert   int            `gorm:"default:0" json:"stock_alert"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Store Store `gorm:"foreignKey:StoreID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new product
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Product model
func (Product) TableName() string {
	return "products"
}

// IsLowStock reports whether on-hand stock has fallen below this product's
// own configured threshold. The threshold is per-product data, not a global
// constant.
func (p *Product) IsLowStock() bool {
	return p.Stock < p.StockAlert
}
