package gateways

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"
	"strings"

	"payment-gateway-service/internal/domain/entities"
	"payment-gateway-service/internal/infrastructure/config"
	"payment-gateway-service/internal/usecase/interfaces"
)

// CardConnect authorization statuses (respstat).
const (
	cardConnectApproved = "A"
	cardConnectRetry    = "B"
	cardConnectDeclined = "C"
)

const (
	cardConnectFlagYes     = "Y"
	cardConnectVoidSuccess = "REVERS"
)

// CardConnectAdapter speaks the CardPointe Gateway REST API
// (https://developer.cardpointe.com/cardconnect-api). Payments are a single
// "all in one" auth request with capture=Y; refunds first inquire on the
// original transaction and then either void it (not yet settled) or refund it
// (settled), because CardConnect exposes different endpoints for the two.

type CardConnectAdapter struct {
	client  *http.Client
	baseURL string
}

var _ interfaces.IGatewayAdapter = (*CardConnectAdapter)(nil)

func NewCardConnectAdapter(cfg *config.Config) *CardConnectAdapter {
	hostname := strings.TrimSpace(cfg.CardConnectHostname)
	baseURL := hostname
	if !strings.HasPrefix(baseURL, "http://") && !strings.HasPrefix(baseURL, "https://") {
		baseURL = "https://" + hostname
	}
	return &CardConnectAdapter{
		client:  &http.Client{},
		baseURL: strings.TrimSuffix(baseURL, "/"),
	}
}

type cardConnectResponse struct {
	RespStat   string `json:"respstat"`
	RespText   string `json:"resptext"`
	RetRef     string `json:"retref"`
	AuthCode   string `json:"authcode"`
	Voidable   string `json:"voidable"`
	Refundable string `json:"refundable"`
}

func (a *CardConnectAdapter) ProcessPayment(ctx context.Context, identity entities.GatewayIdentity, payment entities.PaymentRequest) (entities.GatewayResult, error) {
	merchantID := identity.Credentials["merchantId"]

	// The auth endpoint has no comment/free-text field of its own; the
	// account's Description userfield is the only place to carry it.
	body := map[string]any{
		"merchid":    merchantID,
		"account":    payment.Account,
		"expiry":     payment.ExpDate,
		"amount":     payment.Amount,
		"capture":    cardConnectFlagYes,
		"cvv2":       payment.CVV2,
		"currency":   payment.Currency.Alpha(),
		"ecomind":    "E",
		"userfields": []map[string]string{{"Description": payment.Comment}},
	}
	if payment.Zip != "" {
		body["postal"] = payment.Zip
	}
	if payment.Name != "" {
		body["name"] = payment.Name
	}

	httpStatus, raw, err := a.do(ctx, http.MethodPost, a.baseURL+"/cardconnect/rest/auth", identity, body)
	if err != nil {
		return entities.GatewayResult{}, err
	}

	result := entities.GatewayResult{
		GatewayHTTPStatusCode: httpStatus,
		MerchantAccountID:     identity.MerchantAccountID,
		GatewayResponseData:   appendRawResponse(nil, raw),
	}

	switch httpStatus {
	case http.StatusOK:
		var resp cardConnectResponse
		if err := json.Unmarshal(raw, &resp); err != nil {
			return entities.GatewayResult{}, fmt.Errorf("cardconnect auth response: %w", err)
		}
		if resp.RespStat == cardConnectApproved {
			result.Success = true
			result.ResponseMessage = "Success."
		} else {
			// B and C both count as declines; B just invites a retry.
			result.GatewayHTTPStatusCode = http.StatusBadRequest
			if resp.RespStat == cardConnectRetry {
				result.ResponseMessage = "Please retry the request."
			} else {
				result.ResponseMessage = "Authorization failed."
			}
			if resp.RespText != "" {
				result.ResponseMessage += fmt.Sprintf(" %s.", resp.RespText)
			}
		}
		result.PaymentTransactionID = resp.RetRef
	case http.StatusUnauthorized:
		result.ResponseMessage = "There was an authorization error with your request."
	default:
		result.ResponseMessage = "There was a network error with your request."
	}

	result.StatusCode = strconv.Itoa(result.GatewayHTTPStatusCode)
	return result, nil
}

func (a *CardConnectAdapter) ProcessRefund(ctx context.Context, identity entities.GatewayIdentity, refund entities.RefundRequest) (entities.GatewayResult, error) {
	merchantID := identity.Credentials["merchantId"]

	inquireURL := fmt.Sprintf("%s/cardconnect/rest/inquire/%s/%s", a.baseURL, refund.PaymentTransactionID, merchantID)
	httpStatus, raw, err := a.do(ctx, http.MethodGet, inquireURL, identity, nil)
	if err != nil {
		return entities.GatewayResult{}, err
	}

	result := entities.GatewayResult{
		GatewayHTTPStatusCode: httpStatus,
		MerchantAccountID:     identity.MerchantAccountID,
		PaymentTransactionID:  refund.PaymentTransactionID,
		GatewayResponseData:   appendRawResponse(nil, raw),
	}

	switch httpStatus {
	case http.StatusOK:
		var inquire cardConnectResponse
		if err := json.Unmarshal(raw, &inquire); err != nil {
			return entities.GatewayResult{}, fmt.Errorf("cardconnect inquire response: %w", err)
		}
		switch {
		case inquire.RespStat != cardConnectApproved:
			result.GatewayHTTPStatusCode = http.StatusConflict
			result.ResponseMessage = "The payment requested was not authorized or does not exist."
		case inquire.Voidable == cardConnectFlagYes:
			if err := a.void(ctx, identity, refund, merchantID, &result); err != nil {
				return entities.GatewayResult{}, err
			}
		case inquire.Refundable == cardConnectFlagYes:
			if err := a.refund(ctx, identity, refund, merchantID, &result); err != nil {
				return entities.GatewayResult{}, err
			}
		default:
			result.GatewayHTTPStatusCode = http.StatusConflict
			result.ResponseMessage = "The refund cannot be processed at this time."
		}
	case http.StatusUnauthorized:
		result.ResponseMessage = "There was an authorization error while accessing your previous payment status."
	default:
		result.ResponseMessage = "Unable to complete request for payment status."
	}

	result.StatusCode = strconv.Itoa(result.GatewayHTTPStatusCode)
	return result, nil
}

// void reverses an unsettled authorization. CardConnect voids are always for
// the full transaction amount.
func (a *CardConnectAdapter) void(ctx context.Context, identity entities.GatewayIdentity, refund entities.RefundRequest, merchantID string, result *entities.GatewayResult) error {
	body := map[string]any{
		"retref":  refund.PaymentTransactionID,
		"merchid": merchantID,
	}
	httpStatus, raw, err := a.do(ctx, http.MethodPost, a.baseURL+"/cardconnect/rest/void", identity, body)
	if err != nil {
		return err
	}
	result.GatewayResponseData = appendRawResponse(result.GatewayResponseData, raw)
	result.GatewayHTTPStatusCode = httpStatus

	switch httpStatus {
	case http.StatusOK:
		var resp cardConnectResponse
		if err := json.Unmarshal(raw, &resp); err != nil {
			return fmt.Errorf("cardconnect void response: %w", err)
		}
		if resp.RetRef != "" {
			result.PaymentTransactionID = resp.RetRef
		}
		switch {
		case resp.RespStat == cardConnectApproved && resp.AuthCode == cardConnectVoidSuccess:
			result.Success = true
			result.GatewayHTTPStatusCode = http.StatusOK
			result.ResponseMessage = "Successfully voided transaction."
		case resp.RespStat == cardConnectApproved && resp.AuthCode == "":
			// The void endpoint omits authcode on some approvals; with no
			// further signal the void is taken as successful.
			result.Success = true
			result.GatewayHTTPStatusCode = http.StatusOK
			result.ResponseMessage = "Successfully voided transaction."
		case resp.RespStat == cardConnectApproved:
			result.GatewayHTTPStatusCode = http.StatusBadRequest
			result.ResponseMessage = strings.TrimSpace("Void transaction was unsuccessful. " + resp.RespText)
		case resp.RespStat == cardConnectRetry:
			result.GatewayHTTPStatusCode = http.StatusConflict
			result.ResponseMessage = strings.TrimSpace("Unable to complete void transaction. " + resp.RespText)
		default:
			result.GatewayHTTPStatusCode = http.StatusConflict
			result.ResponseMessage = strings.TrimSpace("Void transaction was declined. " + resp.RespText)
		}
	case http.StatusUnauthorized:
		result.ResponseMessage = "There was an authorization error while processing a void request."
	default:
		result.ResponseMessage = "Unable to complete void transaction."
	}
	return nil
}

// refund credits a settled transaction. An absent amount is simply omitted
// from the request, which CardConnect interprets as a full refund.
func (a *CardConnectAdapter) refund(ctx context.Context, identity entities.GatewayIdentity, refund entities.RefundRequest, merchantID string, result *entities.GatewayResult) error {
	body := map[string]any{
		"retref":  refund.PaymentTransactionID,
		"merchid": merchantID,
	}
	if refund.Amount != nil {
		body["amount"] = *refund.Amount
	}
	httpStatus, raw, err := a.do(ctx, http.MethodPost, a.baseURL+"/cardconnect/rest/refund", identity, body)
	if err != nil {
		return err
	}
	result.GatewayResponseData = appendRawResponse(result.GatewayResponseData, raw)
	result.GatewayHTTPStatusCode = httpStatus

	switch httpStatus {
	case http.StatusOK:
		var resp cardConnectResponse
		if err := json.Unmarshal(raw, &resp); err != nil {
			return fmt.Errorf("cardconnect refund response: %w", err)
		}
		if resp.RetRef != "" {
			result.PaymentTransactionID = resp.RetRef
		}
		if resp.RespStat == cardConnectApproved {
			result.Success = true
			result.ResponseMessage = "Successful refund transaction."
		} else {
			result.GatewayHTTPStatusCode = http.StatusBadRequest
			if resp.RespStat == cardConnectRetry {
				result.ResponseMessage = "Please retry the request."
			} else {
				result.ResponseMessage = "Refund failed."
			}
			if resp.RespText != "" {
				result.ResponseMessage += fmt.Sprintf(" %s", resp.RespText)
			}
		}
	case http.StatusUnauthorized:
		result.ResponseMessage = "There was an authorization error while processing the refund request."
	default:
		result.ResponseMessage = "Unable to complete refund transaction"
	}
	return nil
}

// do performs one authenticated call against the gateway. Credentials come
// from the request identity on every call and are never stored on the
// adapter.
func (a *CardConnectAdapter) do(ctx context.Context, method, url string, identity entities.GatewayIdentity, payload any) (int, []byte, error) {
	var reqBody io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return 0, nil, fmt.Errorf("cardconnect request encode: %w", err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return 0, nil, err
	}
	req.SetBasicAuth(identity.Credentials["username"], identity.Credentials["password"])
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := a.client.Do(req)
	if err != nil {
		log.Printf("[gateways][cardconnect] request failed method=%s err=%v", method, err)
		return 0, nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, err
	}
	return resp.StatusCode, raw, nil
}

// appendRawResponse keeps the processor payload for the audit trail,
// decoding it when it is JSON and falling back to the raw text otherwise.
func appendRawResponse(data []any, raw []byte) []any {
	var decoded map[string]any
	if err := json.Unmarshal(raw, &decoded); err == nil {
		return append(data, decoded)
	}
	return append(data, string(raw))
}
