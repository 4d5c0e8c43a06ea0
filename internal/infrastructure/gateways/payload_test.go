package gateways

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"payment-gateway-service/internal/domain/entities"
	"payment-gateway-service/internal/infrastructure/config"
)

func payloadTestIdentity() entities.GatewayIdentity {
	return entities.GatewayIdentity{
		GatewayTypeID:     entities.GatewayTypePayload,
		GatewayTypeName:   "Payload",
		MerchantAccountID: 34,
		Credentials: map[string]string{
			"apiKey":       "secret_key_abc",
			"processingId": "acct_proc_1",
		},
	}
}

func payloadTestPayment() entities.PaymentRequest {
	return entities.PaymentRequest{
		Account: "4111111111111111",
		ExpDate: "1227",
		CVV2:    "123",
		Amount:  100.00,
		Name:    "Jane Learner",
		Comment: "Course enrollment",
	}
}

func newPayloadAdapterFor(srv *httptest.Server) *PayloadAdapter {
	return NewPayloadAdapter(&config.Config{PayloadBaseURL: srv.URL})
}

func TestPayloadAdapter_ProcessPayment(t *testing.T) {
	t.Run("processed payment", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodPost || r.URL.Path != "/transactions" {
				t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
			}
			user, _, ok := r.BasicAuth()
			if !ok || user != "secret_key_abc" {
				t.Errorf("expected api key as basic auth user, got %q ok=%v", user, ok)
			}
			var body map[string]any
			_ = json.NewDecoder(r.Body).Decode(&body)
			if body["processing_id"] != "acct_proc_1" {
				t.Errorf("unexpected processing_id: %v", body["processing_id"])
			}
			pm := body["payment_method"].(map[string]any)
			card := pm["card"].(map[string]any)
			if card["expiry"] != "12/27" {
				t.Errorf("expected MM/YY expiry, got %v", card["expiry"])
			}
			w.WriteHeader(http.StatusCreated)
			_ = json.NewEncoder(w).Encode(map[string]any{
				"id":             "txn_3bW9JM",
				"status":         "processed",
				"status_code":    "approved",
				"status_message": "Approved",
				"amount":         100.00,
			})
		}))
		defer srv.Close()

		result, err := newPayloadAdapterFor(srv).ProcessPayment(context.Background(), payloadTestIdentity(), payloadTestPayment())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !result.Success {
			t.Fatalf("expected success, got %+v", result)
		}
		if result.PaymentTransactionID != "txn_3bW9JM" {
			t.Fatalf("unexpected transaction id: %q", result.PaymentTransactionID)
		}
		if result.StatusCode != "approved" {
			t.Fatalf("unexpected status code: %q", result.StatusCode)
		}
	})

	t.Run("declined payment carries processor detail", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(map[string]any{
				"error_type":        "TransactionDeclined",
				"error_description": "This transaction was declined.",
				"details": map[string]any{
					"transaction": map[string]any{
						"id":             "txn_failed1",
						"status_code":    "insufficient_funds",
						"status_message": "Card has insufficient funds",
					},
				},
			})
		}))
		defer srv.Close()

		result, err := newPayloadAdapterFor(srv).ProcessPayment(context.Background(), payloadTestIdentity(), payloadTestPayment())
		if err != nil {
			t.Fatalf("a decline is not a transport failure: %v", err)
		}
		if result.Success {
			t.Fatal("expected declined result")
		}
		if result.StatusCode != "insufficient_funds" {
			t.Fatalf("unexpected status code: %q", result.StatusCode)
		}
		if result.ResponseMessage != "Card has insufficient funds" {
			t.Fatalf("unexpected message: %q", result.ResponseMessage)
		}
		if result.PaymentTransactionID != "txn_failed1" {
			t.Fatalf("unexpected transaction id: %q", result.PaymentTransactionID)
		}
	})

	t.Run("invalid card number detail surfaced verbatim", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(map[string]any{
				"error_type":        "InvalidAttributes",
				"error_description": "One or more attributes are invalid.",
				"details": map[string]any{
					"payment_method": map[string]any{
						"card": map[string]any{
							"card_number": "Invalid card number",
						},
					},
				},
			})
		}))
		defer srv.Close()

		result, err := newPayloadAdapterFor(srv).ProcessPayment(context.Background(), payloadTestIdentity(), payloadTestPayment())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.ResponseMessage != "Invalid card number" {
			t.Fatalf("unexpected message: %q", result.ResponseMessage)
		}
	})

	t.Run("long description truncated", func(t *testing.T) {
		var sent string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var body map[string]any
			_ = json.NewDecoder(r.Body).Decode(&body)
			sent, _ = body["description"].(string)
			_ = json.NewEncoder(w).Encode(map[string]any{"id": "txn_x", "status": "processed"})
		}))
		defer srv.Close()

		payment := payloadTestPayment()
		payment.Comment = strings.Repeat("a", 300)
		if _, err := newPayloadAdapterFor(srv).ProcessPayment(context.Background(), payloadTestIdentity(), payment); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(sent) != payloadDescriptionLimit {
			t.Fatalf("expected description capped at %d, got %d", payloadDescriptionLimit, len(sent))
		}
	})
}

func TestPayloadAdapter_ProcessRefund(t *testing.T) {
	refund := entities.RefundRequest{PaymentTransactionID: "txn_3bW9JM", Comment: "Enrollment cancelled"}

	t.Run("unknown transaction id", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			_ = json.NewEncoder(w).Encode(map[string]any{"error_type": "NotFound"})
		}))
		defer srv.Close()

		result, err := newPayloadAdapterFor(srv).ProcessRefund(context.Background(), payloadTestIdentity(), refund)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Success {
			t.Fatal("expected failed result")
		}
		if result.ResponseMessage != "The provided payment transaction id does not exist" {
			t.Fatalf("unexpected message: %q", result.ResponseMessage)
		}
	})

	t.Run("already voided is a no-op success", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodGet {
				t.Errorf("no write should follow an already voided transaction: %s %s", r.Method, r.URL.Path)
			}
			_ = json.NewEncoder(w).Encode(map[string]any{
				"id":     "txn_3bW9JM",
				"status": "voided",
			})
		}))
		defer srv.Close()

		result, err := newPayloadAdapterFor(srv).ProcessRefund(context.Background(), payloadTestIdentity(), refund)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !result.Success {
			t.Fatalf("expected no-op success, got %+v", result)
		}
		if !strings.Contains(result.ResponseMessage, "already been voided") {
			t.Fatalf("unexpected message: %q", result.ResponseMessage)
		}
	})

	t.Run("pending payment is voided", func(t *testing.T) {
		var patched bool
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.Method {
			case http.MethodGet:
				_ = json.NewEncoder(w).Encode(map[string]any{
					"id":             "txn_3bW9JM",
					"status":         "processed",
					"funding_status": "pending",
					"amount":         100.00,
				})
			case http.MethodPatch:
				patched = true
				var body map[string]any
				_ = json.NewDecoder(r.Body).Decode(&body)
				if body["status"] != "voided" {
					t.Errorf("expected void status patch, got %v", body["status"])
				}
				_ = json.NewEncoder(w).Encode(map[string]any{
					"id":             "txn_3bW9JM",
					"status":         "voided",
					"status_code":    "voided",
					"status_message": "Voided",
				})
			default:
				t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
			}
		}))
		defer srv.Close()

		result, err := newPayloadAdapterFor(srv).ProcessRefund(context.Background(), payloadTestIdentity(), refund)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !result.Success || !patched {
			t.Fatalf("expected voided result via PATCH, got %+v patched=%v", result, patched)
		}
	})

	t.Run("settled payment refunded for full original amount", func(t *testing.T) {
		var refundBody map[string]any
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.Method {
			case http.MethodGet:
				_ = json.NewEncoder(w).Encode(map[string]any{
					"id":             "txn_3bW9JM",
					"status":         "processed",
					"funding_status": "batched",
					"amount":         100.00,
				})
			case http.MethodPost:
				_ = json.NewDecoder(r.Body).Decode(&refundBody)
				w.WriteHeader(http.StatusCreated)
				_ = json.NewEncoder(w).Encode(map[string]any{
					"id":             "txn_refund1",
					"status":         "processed",
					"status_code":    "approved",
					"status_message": "Refunded",
				})
			default:
				t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
			}
		}))
		defer srv.Close()

		result, err := newPayloadAdapterFor(srv).ProcessRefund(context.Background(), payloadTestIdentity(), refund)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !result.Success {
			t.Fatalf("expected refund success, got %+v", result)
		}
		if refundBody["amount"] != 100.00 {
			t.Fatalf("omitted amount must default to the original amount, got %v", refundBody["amount"])
		}
		if result.PaymentTransactionID != "txn_refund1" {
			t.Fatalf("unexpected transaction id: %q", result.PaymentTransactionID)
		}
	})

	t.Run("settled payment partial refund", func(t *testing.T) {
		var refundBody map[string]any
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodGet {
				_ = json.NewEncoder(w).Encode(map[string]any{
					"id":             "txn_3bW9JM",
					"status":         "processed",
					"funding_status": "batched",
					"amount":         100.00,
				})
				return
			}
			_ = json.NewDecoder(r.Body).Decode(&refundBody)
			_ = json.NewEncoder(w).Encode(map[string]any{"id": "txn_refund2", "status": "processed"})
		}))
		defer srv.Close()

		amount := 40.00
		partial := entities.RefundRequest{PaymentTransactionID: "txn_3bW9JM", Amount: &amount}
		if _, err := newPayloadAdapterFor(srv).ProcessRefund(context.Background(), payloadTestIdentity(), partial); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if refundBody["amount"] != 40.00 {
			t.Fatalf("expected caller amount on the wire, got %v", refundBody["amount"])
		}
	})

	t.Run("unknown funding status fails closed", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_ = json.NewEncoder(w).Encode(map[string]any{
				"id":             "txn_3bW9JM",
				"status":         "processed",
				"funding_status": "settling",
			})
		}))
		defer srv.Close()

		result, err := newPayloadAdapterFor(srv).ProcessRefund(context.Background(), payloadTestIdentity(), refund)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Success || result.GatewayHTTPStatusCode != http.StatusBadRequest {
			t.Fatalf("unexpected result: %+v", result)
		}
		if !strings.Contains(result.ResponseMessage, "settling") {
			t.Fatalf("unexpected message: %q", result.ResponseMessage)
		}
	})
}
