package request

// ReceiptOverridesRequest carries optional per-print-session overrides.
// A field present with an empty string deliberately blanks that line.
type ReceiptOverridesRequest struct {
	CustomAddress *string `json:"custom_address"`
	CustomPhone   *string `json:"custom_phone"`
	CustomContent *string `json:"custom_content"`
}
