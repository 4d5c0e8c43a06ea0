package gateways

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/mercadopago/sdk-go/pkg/cardtoken"
	sdkconfig "github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/mercadopago/sdk-go/pkg/refund"

	"payment-gateway-service/internal/domain/entities"
	"payment-gateway-service/internal/infrastructure/config"
	"payment-gateway-service/internal/usecase/interfaces"
)

const mercadoPagoStatusApproved = "approved"

// mercadoPagoClients bundles the SDK clients one request needs. They are
// built per call from the request's access token because credentials are
// request-scoped and must not outlive it.
type mercadoPagoClients struct {
	cardTokens cardtoken.Client
	payments   payment.Client
	refunds    refund.Client
}

// MercadoPagoAdapter runs card payments through the Mercado Pago SDK: the
// raw card is exchanged for a single-use token, then charged with an
// immediate capture. Refunds use the SDK's full or partial refund call
// depending on whether the caller supplied an amount.
//
// In mock mode every attempt is answered locally with a canned approval so
// environments without sandbox credentials can run the whole path end to end.
type MercadoPagoAdapter struct {
	newClients func(accessToken string) (mercadoPagoClients, error)
	mockMode   bool
}

var _ interfaces.IGatewayAdapter = (*MercadoPagoAdapter)(nil)

func NewMercadoPagoAdapter(cfg *config.Config) *MercadoPagoAdapter {
	if cfg.MercadoPagoMock {
		log.Printf("[gateways][mercadopago] mock mode enabled")
		return &MercadoPagoAdapter{mockMode: true}
	}
	return &MercadoPagoAdapter{newClients: newMercadoPagoClients}
}

func newMercadoPagoClients(accessToken string) (mercadoPagoClients, error) {
	cfg, err := sdkconfig.New(accessToken)
	if err != nil {
		log.Printf("[gateways][mercadopago] failed creating sdk config err=%v", err)
		return mercadoPagoClients{}, err
	}
	return mercadoPagoClients{
		cardTokens: cardtoken.NewClient(cfg),
		payments:   payment.NewClient(cfg),
		refunds:    refund.NewClient(cfg),
	}, nil
}

func (a *MercadoPagoAdapter) ProcessPayment(ctx context.Context, identity entities.GatewayIdentity, pay entities.PaymentRequest) (entities.GatewayResult, error) {
	if a.mockMode {
		id := strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
		log.Printf("[gateways][mercadopago] mock payment approved provider_payment_id=%s", id)
		return entities.GatewayResult{
			Success:               true,
			GatewayHTTPStatusCode: http.StatusOK,
			StatusCode:            mercadoPagoStatusApproved,
			ResponseMessage:       "Success.",
			PaymentTransactionID:  id,
			MerchantAccountID:     identity.MerchantAccountID,
			GatewayResponseData: []any{map[string]any{
				"id":            id,
				"status":        mercadoPagoStatusApproved,
				"status_detail": "accredited",
			}},
		}, nil
	}

	clients, err := a.newClients(identity.Credentials["accessToken"])
	if err != nil {
		return entities.GatewayResult{}, err
	}

	token, err := clients.cardTokens.Create(ctx, cardtoken.Request{
		CardNumber:      pay.Account,
		ExpirationMonth: pay.ExpDate[0:2],
		ExpirationYear:  "20" + pay.ExpDate[2:],
		SecurityCode:    pay.CVV2,
		Cardholder: &cardtoken.CardholderRequest{
			Name: pay.Name,
		},
	})
	if err != nil {
		return entities.GatewayResult{}, fmt.Errorf("mercadopago card token: %w", err)
	}

	resp, err := clients.payments.Create(ctx, payment.Request{
		TransactionAmount: pay.Amount,
		Token:             token.ID,
		Description:       pay.Comment,
		Installments:      1,
		Capture:           true,
	})
	if err != nil {
		return entities.GatewayResult{}, fmt.Errorf("mercadopago payment: %w", err)
	}

	result := entities.GatewayResult{
		GatewayHTTPStatusCode: http.StatusOK,
		MerchantAccountID:     identity.MerchantAccountID,
		StatusCode:            resp.Status,
		PaymentTransactionID:  strconv.Itoa(resp.ID),
		GatewayResponseData: []any{map[string]any{
			"id":            resp.ID,
			"status":        resp.Status,
			"status_detail": resp.StatusDetail,
		}},
	}

	if resp.Status == mercadoPagoStatusApproved {
		result.Success = true
		result.ResponseMessage = "Success."
		return result, nil
	}

	result.GatewayHTTPStatusCode = http.StatusBadRequest
	result.ResponseMessage = fmt.Sprintf("Authorization failed. %s.", resp.StatusDetail)
	return result, nil
}

func (a *MercadoPagoAdapter) ProcessRefund(ctx context.Context, identity entities.GatewayIdentity, ref entities.RefundRequest) (entities.GatewayResult, error) {
	if a.mockMode {
		log.Printf("[gateways][mercadopago] mock refund approved payment_txn_id=%s", ref.PaymentTransactionID)
		return entities.GatewayResult{
			Success:               true,
			GatewayHTTPStatusCode: http.StatusOK,
			StatusCode:            mercadoPagoStatusApproved,
			ResponseMessage:       "Successful refund transaction.",
			PaymentTransactionID:  ref.PaymentTransactionID,
			MerchantAccountID:     identity.MerchantAccountID,
		}, nil
	}

	clients, err := a.newClients(identity.Credentials["accessToken"])
	if err != nil {
		return entities.GatewayResult{}, err
	}

	paymentID, err := strconv.Atoi(ref.PaymentTransactionID)
	if err != nil {
		return entities.GatewayResult{
			Success:               false,
			GatewayHTTPStatusCode: http.StatusBadRequest,
			StatusCode:            strconv.Itoa(http.StatusBadRequest),
			ResponseMessage:       "The provided payment transaction id does not exist",
			MerchantAccountID:     identity.MerchantAccountID,
		}, nil
	}

	// Absent amount means a full refund; Mercado Pago exposes the two as
	// separate calls, which is exactly why the default lives here.
	var resp *refund.Response
	if ref.Amount != nil {
		resp, err = clients.refunds.CreatePartialRefund(ctx, paymentID, *ref.Amount)
	} else {
		resp, err = clients.refunds.Create(ctx, paymentID)
	}
	if err != nil {
		return entities.GatewayResult{}, fmt.Errorf("mercadopago refund: %w", err)
	}

	return entities.GatewayResult{
		Success:               true,
		GatewayHTTPStatusCode: http.StatusOK,
		StatusCode:            resp.Status,
		ResponseMessage:       "Successful refund transaction.",
		PaymentTransactionID:  strconv.Itoa(resp.ID),
		MerchantAccountID:     identity.MerchantAccountID,
		GatewayResponseData: []any{map[string]any{
			"id":     resp.ID,
			"status": resp.Status,
		}},
	}, nil
}
