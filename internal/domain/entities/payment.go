package entities

import "strings"

// PaymentRequest is the processor-agnostic payment model produced by the
// request normalizer. Adapters translate it into their processor's native
// shape; nothing downstream of the normalizer re-validates these fields.

type PaymentRequest struct {
	Account  string
	ExpDate  string // MMYY
	CVV2     string
	Amount   float64
	Currency CurrencyCode
	UserID   int

	// Optional billing fields.
	Name    string
	Street  string
	City    string
	State   string
	Zip     string
	Country string
	Comment string

	UserName string
}

// MaskedAccount returns the card number with all but the last four digits
// replaced, the only representation that may appear in logs.
func (p PaymentRequest) MaskedAccount() string {
	return MaskCardNumber(p.Account)
}

// RefundRequest references a prior gateway-assigned transaction. A nil Amount
// means "refund the full original amount"; only the adapter knows whether its
// processor needs a different endpoint for that, so the default is resolved
// inside the adapter.

type RefundRequest struct {
	PaymentTransactionID string
	Amount               *float64
	Comment              string
	MaskedCardNumber     string
	Currency             CurrencyCode // zero when the caller omitted it
	UserID               int
}

// MaskCardNumber replaces every digit but the last four with 'x'. Inputs
// shorter than four characters are returned fully masked.
func MaskCardNumber(account string) string {
	if len(account) <= 4 {
		return strings.Repeat("x", len(account))
	}
	return strings.Repeat("x", len(account)-4) + account[len(account)-4:]
}
