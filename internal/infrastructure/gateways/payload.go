package gateways

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"

	"payment-gateway-service/internal/domain/entities"
	"payment-gateway-service/internal/infrastructure/config"
	"payment-gateway-service/internal/usecase/interfaces"
)

// Payload transaction lifecycle values.
const (
	payloadStatusVoided   = "voided"
	payloadFundingPending = "pending"
	payloadFundingBatched = "batched"
)

// Payload caps transaction descriptions at 128 characters.
const payloadDescriptionLimit = 128

// PayloadAdapter speaks the Payload (payload.co) REST API. A refund first
// fetches the original transaction: a still-pending payment is voided, a
// settled (batched) one gets a real refund transaction, and an already
// voided one is a no-op success.

type PayloadAdapter struct {
	client  *http.Client
	baseURL string
}

var _ interfaces.IGatewayAdapter = (*PayloadAdapter)(nil)

func NewPayloadAdapter(cfg *config.Config) *PayloadAdapter {
	return &PayloadAdapter{
		client:  &http.Client{},
		baseURL: strings.TrimSuffix(cfg.PayloadBaseURL, "/"),
	}
}

type payloadTransaction struct {
	ID            string  `json:"id"`
	Status        string  `json:"status"`
	StatusCode    string  `json:"status_code"`
	StatusMessage string  `json:"status_message"`
	FundingStatus string  `json:"funding_status"`
	Amount        float64 `json:"amount"`
}

type payloadError struct {
	ErrorType        string         `json:"error_type"`
	ErrorDescription string         `json:"error_description"`
	Details          map[string]any `json:"details"`
}

func (a *PayloadAdapter) ProcessPayment(ctx context.Context, identity entities.GatewayIdentity, payment entities.PaymentRequest) (entities.GatewayResult, error) {
	// Payload expects MM/YY; the normalizer guarantees MMYY.
	expiry := payment.ExpDate[0:2] + "/" + payment.ExpDate[2:]

	body := map[string]any{
		"type":          "payment",
		"amount":        payment.Amount,
		"processing_id": identity.Credentials["processingId"],
		"description":   truncateDescription(payment.Comment),
		"payment_method": map[string]any{
			"type": "card",
			"card": map[string]any{
				"account_holder": payment.Name,
				"card_number":    payment.Account,
				"expiry":         expiry,
				"card_code":      payment.CVV2,
			},
		},
	}

	httpStatus, raw, err := a.do(ctx, http.MethodPost, a.baseURL+"/transactions", identity, body)
	if err != nil {
		return entities.GatewayResult{}, err
	}

	result := entities.GatewayResult{
		GatewayHTTPStatusCode: httpStatus,
		MerchantAccountID:     identity.MerchantAccountID,
		GatewayResponseData:   appendRawResponse(nil, raw),
	}

	if httpStatus == http.StatusOK || httpStatus == http.StatusCreated {
		var txn payloadTransaction
		if err := json.Unmarshal(raw, &txn); err != nil {
			return entities.GatewayResult{}, fmt.Errorf("payload transaction response: %w", err)
		}
		result.Success = true
		result.GatewayHTTPStatusCode = http.StatusOK
		result.StatusCode = txn.StatusCode
		result.ResponseMessage = txn.StatusMessage
		result.PaymentTransactionID = txn.ID
		return result, nil
	}

	a.applyErrorResponse(&result, httpStatus, raw)
	return result, nil
}

func (a *PayloadAdapter) ProcessRefund(ctx context.Context, identity entities.GatewayIdentity, refund entities.RefundRequest) (entities.GatewayResult, error) {
	httpStatus, raw, err := a.do(ctx, http.MethodGet, a.baseURL+"/transactions/"+refund.PaymentTransactionID, identity, nil)
	if err != nil {
		return entities.GatewayResult{}, err
	}

	result := entities.GatewayResult{
		GatewayHTTPStatusCode: httpStatus,
		MerchantAccountID:     identity.MerchantAccountID,
		GatewayResponseData:   appendRawResponse(nil, raw),
	}

	if httpStatus != http.StatusOK {
		if httpStatus == http.StatusNotFound {
			// The one lookup failure worth a precise message: the referenced
			// payment transaction id does not exist at Payload.
			result.ResponseMessage = "The provided payment transaction id does not exist"
			return result, nil
		}
		a.applyErrorResponse(&result, httpStatus, raw)
		return result, nil
	}

	var original payloadTransaction
	if err := json.Unmarshal(raw, &original); err != nil {
		return entities.GatewayResult{}, fmt.Errorf("payload transaction response: %w", err)
	}

	if original.Status == payloadStatusVoided {
		result.Success = true
		result.StatusCode = original.StatusCode
		result.ResponseMessage = "Payment transaction has already been voided.  No further action has been taken."
		result.PaymentTransactionID = original.ID
		return result, nil
	}

	switch original.FundingStatus {
	case payloadFundingPending:
		return a.voidTransaction(ctx, identity, refund, result)
	case payloadFundingBatched:
		return a.refundTransaction(ctx, identity, refund, original, result)
	default:
		result.Success = false
		result.GatewayHTTPStatusCode = http.StatusBadRequest
		result.ResponseMessage = fmt.Sprintf("Unknown funding status '%s' encountered during refund process.  Payment was not refunded.", original.FundingStatus)
		return result, nil
	}
}

// voidTransaction cancels a payment that has not settled yet.
func (a *PayloadAdapter) voidTransaction(ctx context.Context, identity entities.GatewayIdentity, refund entities.RefundRequest, result entities.GatewayResult) (entities.GatewayResult, error) {
	body := map[string]any{
		"status":      payloadStatusVoided,
		"description": truncateDescription(refund.Comment),
	}
	httpStatus, raw, err := a.do(ctx, http.MethodPatch, a.baseURL+"/transactions/"+refund.PaymentTransactionID, identity, body)
	if err != nil {
		return entities.GatewayResult{}, err
	}
	result.GatewayResponseData = appendRawResponse(result.GatewayResponseData, raw)
	result.GatewayHTTPStatusCode = httpStatus

	if httpStatus != http.StatusOK {
		a.applyErrorResponse(&result, httpStatus, raw)
		return result, nil
	}

	var txn payloadTransaction
	if err := json.Unmarshal(raw, &txn); err != nil {
		return entities.GatewayResult{}, fmt.Errorf("payload void response: %w", err)
	}
	result.Success = true
	result.StatusCode = txn.StatusCode
	result.ResponseMessage = txn.StatusMessage
	result.PaymentTransactionID = txn.ID
	return result, nil
}

// refundTransaction credits a settled payment. An omitted amount falls back
// to the original transaction's full amount; only the adapter can make that
// call because it already holds the original.
func (a *PayloadAdapter) refundTransaction(ctx context.Context, identity entities.GatewayIdentity, refund entities.RefundRequest, original payloadTransaction, result entities.GatewayResult) (entities.GatewayResult, error) {
	amount := original.Amount
	if refund.Amount != nil {
		amount = *refund.Amount
	}
	body := map[string]any{
		"type":        "refund",
		"amount":      amount,
		"ledger":      []map[string]any{{"assoc_transaction_id": refund.PaymentTransactionID}},
		"description": truncateDescription(refund.Comment),
	}
	httpStatus, raw, err := a.do(ctx, http.MethodPost, a.baseURL+"/transactions", identity, body)
	if err != nil {
		return entities.GatewayResult{}, err
	}
	result.GatewayResponseData = appendRawResponse(result.GatewayResponseData, raw)
	result.GatewayHTTPStatusCode = httpStatus

	if httpStatus != http.StatusOK && httpStatus != http.StatusCreated {
		a.applyErrorResponse(&result, httpStatus, raw)
		return result, nil
	}

	var txn payloadTransaction
	if err := json.Unmarshal(raw, &txn); err != nil {
		return entities.GatewayResult{}, fmt.Errorf("payload refund response: %w", err)
	}
	result.Success = true
	result.GatewayHTTPStatusCode = http.StatusOK
	result.StatusCode = txn.StatusCode
	result.ResponseMessage = txn.StatusMessage
	result.PaymentTransactionID = txn.ID
	return result, nil
}

// applyErrorResponse maps a Payload error body onto the canonical result.
// Declined transactions carry the processor's own status code and message;
// for invalid card numbers the card-level detail is surfaced verbatim, which
// the front end relies on.
func (a *PayloadAdapter) applyErrorResponse(result *entities.GatewayResult, httpStatus int, raw []byte) {
	result.Success = false
	result.GatewayHTTPStatusCode = httpStatus

	var errResp payloadError
	if err := json.Unmarshal(raw, &errResp); err != nil {
		result.ResponseMessage = "Unrecognized Payload error response"
		return
	}

	if msg := cardNumberDetail(errResp.Details); msg != "" {
		result.ResponseMessage = msg
		return
	}
	if txn, ok := errResp.Details["transaction"].(map[string]any); ok {
		if code, ok := txn["status_code"].(string); ok {
			result.StatusCode = code
		}
		if msg, ok := txn["status_message"].(string); ok {
			result.ResponseMessage = msg
		}
		if id, ok := txn["id"].(string); ok {
			result.PaymentTransactionID = id
		}
		if result.ResponseMessage != "" {
			return
		}
	}
	if errResp.ErrorDescription != "" {
		result.ResponseMessage = errResp.ErrorDescription
		return
	}
	result.ResponseMessage = "Unrecognized Payload error response"
}

func cardNumberDetail(details map[string]any) string {
	pm, ok := details["payment_method"].(map[string]any)
	if !ok {
		return ""
	}
	card, ok := pm["card"].(map[string]any)
	if !ok {
		return ""
	}
	msg, _ := card["card_number"].(string)
	return msg
}

func (a *PayloadAdapter) do(ctx context.Context, method, url string, identity entities.GatewayIdentity, payload any) (int, []byte, error) {
	var reqBody io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return 0, nil, fmt.Errorf("payload request encode: %w", err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return 0, nil, err
	}
	// Payload authenticates with the API key as the basic-auth user.
	req.SetBasicAuth(identity.Credentials["apiKey"], "")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := a.client.Do(req)
	if err != nil {
		log.Printf("[gateways][payload] request failed method=%s err=%v", method, err)
		return 0, nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, err
	}
	return resp.StatusCode, raw, nil
}

func truncateDescription(s string) string {
	if len(s) > payloadDescriptionLimit {
		return s[:payloadDescriptionLimit]
	}
	return s
}
