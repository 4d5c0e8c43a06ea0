package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	request "payment-gateway-service/internal/adapter/http/dto/request"
	response "payment-gateway-service/internal/adapter/http/dto/response"
	"payment-gateway-service/internal/domain/entities"
	"payment-gateway-service/internal/usecase"
	"payment-gateway-service/internal/usecase/interfaces"
	"payment-gateway-service/pkg"
)

var (
	errIncompleteRequest  = pkg.NewDomainErrorSimple("INCOMPLETE_REQUEST", "Incomplete request", http.StatusBadRequest)
	errInvalidPaymentBody = pkg.NewDomainErrorSimple("INVALID_PAYMENT_INPUT", "Invalid payment payload", http.StatusBadRequest)
	errInvalidRefundBody  = pkg.NewDomainErrorSimple("INVALID_REFUND_INPUT", "Invalid refund payload", http.StatusBadRequest)
)

// PaymentGatewayHandler exposes the two gateway operations over HTTP. It
// owns nothing beyond translation: correlation header and body in, canonical
// result envelope out; the dispatcher does the rest.

type PaymentGatewayHandler struct {
	usecase usecase.IDispatchUseCase
}

func NewPaymentGatewayHandler(uc usecase.IDispatchUseCase) *PaymentGatewayHandler {
	return &PaymentGatewayHandler{usecase: uc}
}

// ProcessPayment handles POST /paymentGateway/processPayment.
func (h *PaymentGatewayHandler) ProcessPayment(c *gin.Context) {
	txn, err := request.ParseTxnMeta(c.GetHeader(request.TxnMetaHeader))
	if err != nil {
		log.Printf("[gateway][handler] payment rejected: bad correlation header err=%v", err)
		c.JSON(errIncompleteRequest.HTTPStatus, errIncompleteRequest.ToHTTPError())
		return
	}

	var payload request.PaymentSubmission
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[gateway][handler] payment rejected: bad body txn_id=%s err=%v", txn.TransactionID, err)
		c.JSON(errInvalidPaymentBody.HTTPStatus, errInvalidPaymentBody.ToHTTPError())
		return
	}

	raw := usecase.RawPayment{
		Account:      payload.Account,
		ExpDate:      payload.ExpDate,
		CVV2:         payload.CVV2,
		Amount:       payload.Amount,
		CurrencyType: payload.CurrencyType,
		UserID:       payload.UserID,
		Name:         payload.Name,
		Street:       payload.Street,
		City:         payload.City,
		State:        payload.State,
		Zip:          payload.Zip,
		Country:      payload.Country,
		Comment:      payload.Comment,
		UserName:     payload.UserName,
	}

	result, err := h.usecase.SubmitPayment(c.Request.Context(), txn, payload.Identity(), raw)
	c.JSON(resolveHTTPStatus(result, err), response.FromGatewayResult(result))
}

// ProcessRefund handles PATCH /paymentGateway/processRefund.
func (h *PaymentGatewayHandler) ProcessRefund(c *gin.Context) {
	txn, err := request.ParseTxnMeta(c.GetHeader(request.TxnMetaHeader))
	if err != nil {
		log.Printf("[gateway][handler] refund rejected: bad correlation header err=%v", err)
		c.JSON(errIncompleteRequest.HTTPStatus, errIncompleteRequest.ToHTTPError())
		return
	}

	var payload request.RefundSubmission
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[gateway][handler] refund rejected: bad body txn_id=%s err=%v", txn.TransactionID, err)
		c.JSON(errInvalidRefundBody.HTTPStatus, errInvalidRefundBody.ToHTTPError())
		return
	}

	raw := usecase.RawRefund{
		PaymentTransactionID: payload.PaymentTransactionID,
		Amount:               payload.Amount,
		Comment:              payload.Comment,
		MaskedCardNumber:     payload.MaskedCardNumber,
		CurrencyType:         payload.CurrencyType,
		UserID:               payload.UserID,
	}

	result, err := h.usecase.SubmitRefund(c.Request.Context(), txn, payload.Identity(), raw)
	c.JSON(resolveHTTPStatus(result, err), response.FromGatewayResult(result))
}

// Test handles GET /paymentGateway/test, an internal health probe.
func (h *PaymentGatewayHandler) Test(c *gin.Context) {
	c.String(http.StatusOK, "Test endpoint successfully reached.  Client IP: "+c.ClientIP())
}

// resolveHTTPStatus chooses the outer HTTP status. Completed attempts carry
// the processor's own status through, except that a processor 5xx is
// downgraded to 400: a 5xx from this service must mean this service is
// broken, not that some processor had a bad day.
func resolveHTTPStatus(result entities.GatewayResult, err error) int {
	if err == nil {
		status := result.GatewayHTTPStatusCode
		if status == 0 {
			status = http.StatusOK
		}
		if status >= http.StatusInternalServerError {
			status = http.StatusBadRequest
		}
		return status
	}

	switch {
	case errors.Is(err, usecase.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, interfaces.ErrUnknownGatewayType):
		return http.StatusBadRequest
	case errors.Is(err, usecase.ErrTransport):
		return http.StatusGatewayTimeout
	default:
		return http.StatusMisdirectedRequest
	}
}
