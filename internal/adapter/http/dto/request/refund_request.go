package request

import (
	"payment-gateway-service/internal/domain/entities"
)

// RefundSubmission is the processRefund payload. Amount and CurrencyType are
// optional: an absent amount means "refund the full original amount", which
// the resolved adapter honors against its processor.

type RefundSubmission struct {
	GatewayTypeID     int               `json:"gatewayTypeId" binding:"required"`
	GatewayTypeName   string            `json:"gatewayTypeName" binding:"required"`
	MerchantAccountID int               `json:"merchantAccountId" binding:"required"`
	Credentials       map[string]string `json:"credentials" binding:"required"`

	PaymentTransactionID string `json:"paymentTransactionId" binding:"required"`
	UserID               int    `json:"userId" binding:"required"`

	Comment          string   `json:"comment"`
	Amount           *float64 `json:"amount"`
	MaskedCardNumber string   `json:"maskedCardNumber"`
	CurrencyType     *int     `json:"currencyType"`
}

func (r RefundSubmission) Identity() entities.GatewayIdentity {
	return entities.GatewayIdentity{
		GatewayTypeID:     entities.GatewayType(r.GatewayTypeID),
		GatewayTypeName:   r.GatewayTypeName,
		MerchantAccountID: r.MerchantAccountID,
		Credentials:       r.Credentials,
	}
}
