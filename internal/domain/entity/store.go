package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Store is a merchant's shop. It carries the standing receipt branding
// (name, phone, address, logo) plus the timezone/currency/locale that drive
// dashboard windowing and display formatting. Branding changes only through
// explicit merchant edits, independent of any single transaction.
type Store struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	UserID    uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	Name      string         `gorm:"size:255;not null" json:"name"`
	Phone     string         `gorm:"size:50" json:"phone"`
	Address   string         `gorm:"type:text" json:"address"`
	LogoURL   *string        `gorm:"size:255" json:"logo_url,omitempty"`
	Timezone  string         `gorm:"size:50;default:'Asia/Jakarta'" json:"timezone"`
	Currency  string         `gorm:"size:10;default:'IDR'" json:"currency"`
	Locale    string         `gorm:"size:10;default:'id-ID'" json:"locale"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	User         User          `gorm:"foreignKey:UserID" json:"-"`
	Products     []Product     `gorm:"foreignKey:StoreID" json:"-"`
	Customers    []Customer    `gorm:"foreignKey:StoreID" json:"-"`
	Transactions []Transaction `gorm:"foreignKey:StoreID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new store
func (s *Store) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Store model
func (Store) TableName() string {
	return "stores"
}

// Location resolves the store's configured timezone. "Today" on the
// dashboard is the merchant-local calendar day, not the UTC day.
func (s *Store) Location() (*time.Location, error) {
	if s.Timezone == "" {
		return time.UTC, nil
	}
	return time.LoadLocation(s.Timezone)
}
