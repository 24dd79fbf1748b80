package request

// SaleItemRequest is one cart line of a sale
type SaleItemRequest struct {
	ProductID string `json:"product_id" binding:"required,uuid"`
	Quantity  int    `json:"quantity" binding:"required,min=1"`
}

// CreateSaleRequest represents the finalize-sale payload. Discount is in the
// currency's smallest unit; tax rate is a fraction, e.g. 0.11 for 11% PPN.
type CreateSaleRequest struct {
	CustomerID    *string           `json:"customer_id" binding:"omitempty,uuid"`
	CustomerName  *string           `json:"customer_name"`
	Items         []SaleItemRequest `json:"items" binding:"required,min=1,dive"`
	Discount      int64             `json:"discount" binding:"min=0"`
	TaxRate       float64           `json:"tax_rate" binding:"min=0"`
	PaymentMethod string            `json:"payment_method"`
	PaymentStatus string            `json:"payment_status"`
}
