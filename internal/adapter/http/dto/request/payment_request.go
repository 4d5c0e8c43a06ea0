package request

import (
	"payment-gateway-service/internal/domain/entities"
)

// PaymentSubmission is the processPayment payload sent by the legacy back
// end. Binding tags cover structure and presence; the domain-level rules
// (card/expiry/cvv patterns, currency enum, positive amount) are enforced by
// the dispatcher's normalizer so that every rejection, structural or not,
// happens before a processor is contacted.

type PaymentSubmission struct {
	GatewayTypeID     int               `json:"gatewayTypeId" binding:"required"`
	GatewayTypeName   string            `json:"gatewayTypeName" binding:"required"`
	MerchantAccountID int               `json:"merchantAccountId" binding:"required"`
	Credentials       map[string]string `json:"credentials" binding:"required"`

	Account      string  `json:"account" binding:"required"`
	ExpDate      string  `json:"expDate" binding:"required"`
	CVV2         string  `json:"cvv2" binding:"required"`
	Amount       float64 `json:"amount" binding:"required"`
	UserID       int     `json:"userId" binding:"required"`
	CurrencyType int     `json:"currencyType" binding:"required"`

	Name    string `json:"name"`
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	Zip     string `json:"zip"`
	Country string `json:"country"`
	Comment string `json:"comment"`

	UserName string `json:"userName"`
}

func (r PaymentSubmission) Identity() entities.GatewayIdentity {
	return entities.GatewayIdentity{
		GatewayTypeID:     entities.GatewayType(r.GatewayTypeID),
		GatewayTypeName:   r.GatewayTypeName,
		MerchantAccountID: r.MerchantAccountID,
		Credentials:       r.Credentials,
	}
}
