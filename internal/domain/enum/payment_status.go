package enum

// PaymentStatus represents the settlement state of a transaction.
// Only paid transactions count toward realized revenue; pending ones still
// count toward activity volume.
type PaymentStatus string

const (
	PaymentStatusPaid    PaymentStatus = "paid"
	PaymentStatusPending PaymentStatus = "pending"
)

// IsValid reports whether the value is a known payment status
func (s PaymentStatus) IsValid() bool {
	return s == PaymentStatusPaid || s == PaymentStatusPending
}

// String returns the string representation
func (s PaymentStatus) String() string {
	return string(s)
}
