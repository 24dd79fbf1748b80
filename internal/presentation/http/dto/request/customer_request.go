package request

// CreateCustomerRequest represents the create customer payload
type CreateCustomerRequest struct {
	Name    string  `json:"name" binding:"required"`
	Phone   *string `json:"phone"`
	Address *string `json:"address"`
}

// UpdateCustomerRequest represents the update customer payload
type UpdateCustomerRequest struct {
	Name    *string `json:"name"`
	Phone   *string `json:"phone"`
	Address *string `json:"address"`
}

// DebtRequest represents a debt booking or repayment payload, in the
// currency's smallest unit
type DebtRequest struct {
	Amount int64 `json:"amount" binding:"required,gt=0"`
}
