package entity

import (
	"time"

	"github.com/mhdalhzau/warungpos/pkg/money"
)

// ReceiptOverrides holds ephemeral, per-print-session values the operator may
// type before printing. They take precedence field-by-field over the store's
// standing branding, and are never persisted back into the store profile.
type ReceiptOverrides struct {
	CustomAddress *string `json:"custom_address,omitempty"`
	CustomPhone   *string `json:"custom_phone,omitempty"`
	CustomContent *string `json:"custom_content,omitempty"`
}

// ReceiptLine is a single rendered line item: the semantic values plus the
// display strings derived from the store's locale at compose time.
type ReceiptLine struct {
	ProductName      string      `json:"product_name"`
	Quantity         int         `json:"quantity"`
	UnitPrice        money.Money `json:"unit_price"`
	Total            money.Money `json:"total"`
	UnitPriceDisplay string      `json:"unit_price_display"`
	TotalDisplay     string      `json:"total_display"`
}

// ReceiptDocument is the fully resolved, render-ready merge of a transaction,
// the store's branding config and any per-print overrides.
//
// It is NOT a database entity: build-once, read-only, never persisted, and
// regenerated on every print request so that a later change of locale or
// branding affects future prints without mutating history.
type ReceiptDocument struct {
	StoreName    string `json:"store_name"`
	StoreAddress string `json:"store_address,omitempty"`
	StorePhone   string `json:"store_phone,omitempty"`
	LogoURL      string `json:"logo_url,omitempty"`

	InvoiceNumber string `json:"invoice_number"`
	CustomerName  string `json:"customer_name,omitempty"`
	PaymentMethod string `json:"payment_method,omitempty"`
	PaymentStatus string `json:"payment_status"`

	IssuedAt        time.Time `json:"issued_at"`
	IssuedAtDisplay string    `json:"issued_at_display"`

	Items []ReceiptLine `json:"items"`

	Subtotal money.Money `json:"subtotal"`
	Discount money.Money `json:"discount"`
	Tax      money.Money `json:"tax"`
	Total    money.Money `json:"total"`

	SubtotalDisplay string `json:"subtotal_display"`
	DiscountDisplay string `json:"discount_display"`
	TaxDisplay      string `json:"tax_display"`
	TotalDisplay    string `json:"total_display"`

	CustomContent string `json:"custom_content,omitempty"`
}
