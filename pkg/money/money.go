package money

import (
	"errors"
	"math"
)

// Money is an amount in the currency's smallest unit (e.g. whole rupiah for
// IDR, cents for USD). Amounts are never stored as floating point.
type Money int64

// Sentinel errors for rollup computation and formatting. Callers are expected
// to surface these immediately; a wrong total must never be displayed.
var (
	ErrInvalidInput    = errors.New("money: invalid input")
	ErrInvalidDiscount = errors.New("money: discount exceeds subtotal")
)

// LineItem is a single sale line. Quantity must be >= 1 and UnitPrice >= 0.
type LineItem struct {
	ProductName string `json:"product_name"`
	Quantity    int    `json:"quantity"`
	UnitPrice   Money  `json:"unit_price"`
}

// Total returns quantity x unit price for the line.
func (li LineItem) Total() Money {
	return Money(int64(li.Quantity)) * li.UnitPrice
}

// Rollup is the derived subtotal/discount/tax/total tuple for a transaction.
// Invariant: Total == Subtotal - Discount + Tax, with 0 <= Discount <= Subtotal.
// It is computed once at finalize time and frozen into the transaction.
type Rollup struct {
	Subtotal Money `json:"subtotal"`
	Discount Money `json:"discount"`
	Tax      Money `json:"tax"`
	Total    Money `json:"total"`
}

// ComputeRollup computes subtotal, tax and total for a set of line items.
//
// The tax base is (subtotal - discount); tax = base * taxRate rounded
// HALF-UP to the minor currency unit. The rounding rule is fixed here because
// it participates in the total invariant exactly.
//
// Pure and deterministic: identical inputs always produce identical rollups.
func ComputeRollup(items []LineItem, discount Money, taxRate float64) (Rollup, error) {
	if len(items) == 0 {
		return Rollup{}, ErrInvalidInput
	}
	if math.IsNaN(taxRate) || math.IsInf(taxRate, 0) || taxRate < 0 {
		return Rollup{}, ErrInvalidInput
	}

	var subtotal Money
	for _, item := range items {
		if item.ProductName == "" || item.Quantity < 1 || item.UnitPrice < 0 {
			return Rollup{}, ErrInvalidInput
		}
		subtotal += item.Total()
	}

	if discount < 0 || discount > subtotal {
		return Rollup{}, ErrInvalidDiscount
	}

	base := subtotal - discount
	tax := Money(math.Floor(float64(base)*taxRate + 0.5))

	return Rollup{
		Subtotal: subtotal,
		Discount: discount,
		Tax:      tax,
		Total:    base + tax,
	}, nil
}
