package request

// CreateProductRequest represents the create product payload. Prices are in
// the currency's smallest unit.
type CreateProductRequest struct {
	Name         string `json:"name" binding:"required"`
	SKU          string `json:"sku"`
	SellingPrice int64  `json:"selling_price" binding:"min=0"`
	Stock        int    `json:"stock" binding:"min=0"`
	StockAlert   int    `json:"stock_alert" binding:"min=0"`
}

// UpdateProductRequest represents the update product payload
type UpdateProductRequest struct {
	Name         *string `json:"name"`
	SKU          *string `json:"sku"`
	SellingPrice *int64  `json:"selling_price"`
	Stock        *int    `json:"stock"`
	StockAlert   *int    `json:"stock_alert"`
}
