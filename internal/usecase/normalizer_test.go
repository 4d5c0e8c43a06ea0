package usecase

import (
	"errors"
	"math"
	"testing"

	"payment-gateway-service/internal/domain/entities"
)

func validRawPayment() RawPayment {
	return RawPayment{
		Account:      "4111111111111111",
		ExpDate:      "1227",
		CVV2:         "123",
		Amount:       50.00,
		CurrencyType: int(entities.CurrencyUSD),
		UserID:       42,
		Name:         "Jane Learner",
		Comment:      "Course enrollment",
	}
}

func TestNormalizePayment(t *testing.T) {
	t.Run("accepts sixteen digit account", func(t *testing.T) {
		payment, err := NormalizePayment(validRawPayment())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if payment.Account != "4111111111111111" {
			t.Fatalf("unexpected account: %q", payment.Account)
		}
		if payment.Currency != entities.CurrencyUSD {
			t.Fatalf("unexpected currency: %d", payment.Currency)
		}
	})

	t.Run("accepts fifteen digit account", func(t *testing.T) {
		raw := validRawPayment()
		raw.Account = "378282246310005"
		if _, err := NormalizePayment(raw); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("rejects short account", func(t *testing.T) {
		raw := validRawPayment()
		raw.Account = "123"
		_, err := NormalizePayment(raw)
		if !errors.Is(err, ErrValidation) {
			t.Fatalf("expected validation error, got %v", err)
		}
	})

	t.Run("rejects fourteen digit account", func(t *testing.T) {
		raw := validRawPayment()
		raw.Account = "41111111111111"
		if _, err := NormalizePayment(raw); !errors.Is(err, ErrValidation) {
			t.Fatalf("expected validation error, got %v", err)
		}
	})

	t.Run("rejects seventeen digit account", func(t *testing.T) {
		raw := validRawPayment()
		raw.Account = "41111111111111112"
		if _, err := NormalizePayment(raw); !errors.Is(err, ErrValidation) {
			t.Fatalf("expected validation error, got %v", err)
		}
	})

	t.Run("rejects non numeric account", func(t *testing.T) {
		raw := validRawPayment()
		raw.Account = "4111-1111-1111-11"
		if _, err := NormalizePayment(raw); !errors.Is(err, ErrValidation) {
			t.Fatalf("expected validation error, got %v", err)
		}
	})

	t.Run("rejects malformed expiry", func(t *testing.T) {
		for _, expDate := range []string{"", "12", "12/27", "122", "12270", "ab12"} {
			raw := validRawPayment()
			raw.ExpDate = expDate
			if _, err := NormalizePayment(raw); !errors.Is(err, ErrValidation) {
				t.Fatalf("expDate %q: expected validation error, got %v", expDate, err)
			}
		}
	})

	t.Run("rejects malformed cvv2", func(t *testing.T) {
		for _, cvv2 := range []string{"", "12", "12345", "12a"} {
			raw := validRawPayment()
			raw.CVV2 = cvv2
			if _, err := NormalizePayment(raw); !errors.Is(err, ErrValidation) {
				t.Fatalf("cvv2 %q: expected validation error, got %v", cvv2, err)
			}
		}
	})

	t.Run("accepts four digit cvv2", func(t *testing.T) {
		raw := validRawPayment()
		raw.CVV2 = "1234"
		if _, err := NormalizePayment(raw); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("rejects non positive amount", func(t *testing.T) {
		for _, amount := range []float64{0, -1, -0.01} {
			raw := validRawPayment()
			raw.Amount = amount
			if _, err := NormalizePayment(raw); !errors.Is(err, ErrValidation) {
				t.Fatalf("amount %v: expected validation error, got %v", amount, err)
			}
		}
	})

	t.Run("rejects non finite amount", func(t *testing.T) {
		for _, amount := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
			raw := validRawPayment()
			raw.Amount = amount
			if _, err := NormalizePayment(raw); !errors.Is(err, ErrValidation) {
				t.Fatalf("amount %v: expected validation error, got %v", amount, err)
			}
		}
	})

	t.Run("rejects unknown currency", func(t *testing.T) {
		raw := validRawPayment()
		raw.CurrencyType = 392
		if _, err := NormalizePayment(raw); !errors.Is(err, ErrValidation) {
			t.Fatalf("expected validation error, got %v", err)
		}
	})

	t.Run("trims billing fields", func(t *testing.T) {
		raw := validRawPayment()
		raw.Name = "  Jane Learner  "
		raw.Zip = " 30301 "
		payment, err := NormalizePayment(raw)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if payment.Name != "Jane Learner" || payment.Zip != "30301" {
			t.Fatalf("expected trimmed fields, got %q / %q", payment.Name, payment.Zip)
		}
	})
}

func TestNormalizeRefund(t *testing.T) {
	t.Run("accepts minimal refund", func(t *testing.T) {
		refund, err := NormalizeRefund(RawRefund{PaymentTransactionID: "ret-123"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if refund.Amount != nil {
			t.Fatal("expected nil amount to pass through")
		}
	})

	t.Run("rejects missing payment transaction id", func(t *testing.T) {
		for _, id := range []string{"", "   "} {
			if _, err := NormalizeRefund(RawRefund{PaymentTransactionID: id}); !errors.Is(err, ErrValidation) {
				t.Fatalf("id %q: expected validation error, got %v", id, err)
			}
		}
	})

	t.Run("rejects non positive amount", func(t *testing.T) {
		amount := -5.0
		_, err := NormalizeRefund(RawRefund{PaymentTransactionID: "ret-123", Amount: &amount})
		if !errors.Is(err, ErrValidation) {
			t.Fatalf("expected validation error, got %v", err)
		}
	})

	t.Run("accepts positive amount", func(t *testing.T) {
		amount := 25.50
		refund, err := NormalizeRefund(RawRefund{PaymentTransactionID: "ret-123", Amount: &amount})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if refund.Amount == nil || *refund.Amount != 25.50 {
			t.Fatalf("unexpected amount: %v", refund.Amount)
		}
	})

	t.Run("rejects unknown currency", func(t *testing.T) {
		currency := 999
		_, err := NormalizeRefund(RawRefund{PaymentTransactionID: "ret-123", CurrencyType: &currency})
		if !errors.Is(err, ErrValidation) {
			t.Fatalf("expected validation error, got %v", err)
		}
	})

	t.Run("keeps known currency", func(t *testing.T) {
		currency := int(entities.CurrencyEUR)
		refund, err := NormalizeRefund(RawRefund{PaymentTransactionID: "ret-123", CurrencyType: &currency})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if refund.Currency != entities.CurrencyEUR {
			t.Fatalf("unexpected currency: %d", refund.Currency)
		}
	})
}
