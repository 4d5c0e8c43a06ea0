package usecase

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strings"

	"payment-gateway-service/internal/domain/entities"
)

// ErrValidation is the base of every normalization failure. Validation errors
// are resolved locally and never reach the network layer of a processor.
var ErrValidation = errors.New("invalid request field")

var (
	accountPattern = regexp.MustCompile(`^[0-9]{15,16}$`)
	expDatePattern = regexp.MustCompile(`^[0-9]{4}$`)
	cvv2Pattern    = regexp.MustCompile(`^[0-9]{3,4}$`)
)

// RawPayment is the inbound payment payload before normalization, already
// structurally bound but not yet validated against domain rules.

type RawPayment struct {
	Account      string
	ExpDate      string
	CVV2         string
	Amount       float64
	CurrencyType int
	UserID       int

	Name    string
	Street  string
	City    string
	State   string
	Zip     string
	Country string
	Comment string

	UserName string
}

// RawRefund mirrors RawPayment for refunds. Amount and CurrencyType are
// optional; nil means the caller omitted them.

type RawRefund struct {
	PaymentTransactionID string
	Amount               *float64
	Comment              string
	MaskedCardNumber     string
	CurrencyType         *int
	UserID               int
}

// NormalizePayment validates and coerces a raw payment payload into the
// processor-agnostic request model. It fails closed: any malformed field
// rejects the whole request before an adapter is involved.
func NormalizePayment(raw RawPayment) (entities.PaymentRequest, error) {
	if !accountPattern.MatchString(raw.Account) {
		return entities.PaymentRequest{}, fmt.Errorf("%w: account must be 15-16 digits", ErrValidation)
	}
	if !expDatePattern.MatchString(raw.ExpDate) {
		return entities.PaymentRequest{}, fmt.Errorf("%w: expDate must be 4 digits (MMYY)", ErrValidation)
	}
	if !cvv2Pattern.MatchString(raw.CVV2) {
		return entities.PaymentRequest{}, fmt.Errorf("%w: cvv2 must be 3-4 digits", ErrValidation)
	}
	if err := validateAmount(raw.Amount); err != nil {
		return entities.PaymentRequest{}, err
	}
	currency := entities.CurrencyCode(raw.CurrencyType)
	if !currency.Known() {
		return entities.PaymentRequest{}, fmt.Errorf("%w: unsupported currencyType %d", ErrValidation, raw.CurrencyType)
	}

	return entities.PaymentRequest{
		Account:  raw.Account,
		ExpDate:  raw.ExpDate,
		CVV2:     raw.CVV2,
		Amount:   raw.Amount,
		Currency: currency,
		UserID:   raw.UserID,
		Name:     strings.TrimSpace(raw.Name),
		Street:   strings.TrimSpace(raw.Street),
		City:     strings.TrimSpace(raw.City),
		State:    strings.TrimSpace(raw.State),
		Zip:      strings.TrimSpace(raw.Zip),
		Country:  strings.TrimSpace(raw.Country),
		Comment:  raw.Comment,
		UserName: strings.TrimSpace(raw.UserName),
	}, nil
}

// NormalizeRefund validates a raw refund payload. A nil amount is legal and
// passes through untouched; the adapter resolves it to the full original
// amount.
func NormalizeRefund(raw RawRefund) (entities.RefundRequest, error) {
	if strings.TrimSpace(raw.PaymentTransactionID) == "" {
		return entities.RefundRequest{}, fmt.Errorf("%w: paymentTransactionId is required", ErrValidation)
	}
	if raw.Amount != nil {
		if err := validateAmount(*raw.Amount); err != nil {
			return entities.RefundRequest{}, err
		}
	}
	var currency entities.CurrencyCode
	if raw.CurrencyType != nil {
		currency = entities.CurrencyCode(*raw.CurrencyType)
		if !currency.Known() {
			return entities.RefundRequest{}, fmt.Errorf("%w: unsupported currencyType %d", ErrValidation, *raw.CurrencyType)
		}
	}

	return entities.RefundRequest{
		PaymentTransactionID: strings.TrimSpace(raw.PaymentTransactionID),
		Amount:               raw.Amount,
		Comment:              raw.Comment,
		MaskedCardNumber:     strings.TrimSpace(raw.MaskedCardNumber),
		Currency:             currency,
		UserID:               raw.UserID,
	}, nil
}

func validateAmount(amount float64) error {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return fmt.Errorf("%w: amount must be a finite number", ErrValidation)
	}
	if amount <= 0 {
		return fmt.Errorf("%w: amount must be positive", ErrValidation)
	}
	return nil
}
