package repository

import (
	"time"

	"github.com/google/uuid"
	"github.com/mhdalhzau/warungpos/internal/domain/enum"
	"gorm.io/gorm"
)

// ByStore returns a GORM scope that filters by store
// This should be applied to all queries for store-scoped entities
func ByStore(storeID uuid.UUID) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if storeID == uuid.Nil {
			// Fail-safe: return no results if store context missing
			// This prevents accidental cross-store data access
			return db.Where("1 = 0")
		}
		return db.Where("store_id = ?", storeID)
	}
}

// CreatedWithin returns a GORM scope that filters rows created inside
// the half-open interval [start, end)
func CreatedWithin(start, end time.Time) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("created_at >= ? AND created_at < ?", start, end)
	}
}

// Paid returns a GORM scope that keeps only settled transactions
func Paid() func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("payment_status = ?", enum.PaymentStatusPaid)
	}
}
