package request

// CreateStoreRequest represents the create store payload
type CreateStoreRequest struct {
	Name     string  `json:"name" binding:"required"`
	Phone    string  `json:"phone"`
	Address  string  `json:"address"`
	LogoURL  *string `json:"logo_url"`
	Timezone string  `json:"timezone"`
	Currency string  `json:"currency"`
	Locale   string  `json:"locale"`
}

// UpdateStoreRequest represents the update store payload. Absent fields are
// left unchanged.
type UpdateStoreRequest struct {
	Name     *string `json:"name"`
	Phone    *string `json:"phone"`
	Address  *string `json:"address"`
	LogoURL  *string `json:"logo_url"`
	Timezone *string `json:"timezone"`
	Currency *string `json:"currency"`
	Locale   *string `json:"locale"`
}
