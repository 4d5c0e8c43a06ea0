package response

import (
	"payment-gateway-service/internal/domain/entities"
)

// GatewayResultResponse is the wire form of the canonical gateway result.
// GatewayResponseData is intentionally absent: raw processor payloads are
// audit-logged, never returned.

type GatewayResultResponse struct {
	Success               bool   `json:"success"`
	StatusCode            string `json:"statusCode"`
	GatewayHTTPStatusCode int    `json:"gatewayHttpStatusCode"`
	ResponseMessage       string `json:"responseMessage"`
	ResponseDetail        string `json:"responseDetail"`
	PaymentTransactionID  string `json:"paymentTransactionId"`
	MerchantAccountID     int    `json:"merchantAccountId"`
}

// GatewayResultEnvelope wraps the result under "detail", the shape the
// legacy back end consumes on success and failure alike.

type GatewayResultEnvelope struct {
	Detail GatewayResultResponse `json:"detail"`
}

func FromGatewayResult(r entities.GatewayResult) GatewayResultEnvelope {
	return GatewayResultEnvelope{
		Detail: GatewayResultResponse{
			Success:               r.Success,
			StatusCode:            r.StatusCode,
			GatewayHTTPStatusCode: r.GatewayHTTPStatusCode,
			ResponseMessage:       r.ResponseMessage,
			ResponseDetail:        r.ResponseDetail,
			PaymentTransactionID:  r.PaymentTransactionID,
			MerchantAccountID:     r.MerchantAccountID,
		},
	}
}
