package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"payment-gateway-service/internal/domain/entities"
	"payment-gateway-service/internal/usecase/interfaces"
)

var (
	// ErrMissingCredentialKeys wraps ErrValidation: the request omitted one
	// or more credential keys the resolved gateway type declares as required.
	ErrMissingCredentialKeys = fmt.Errorf("%w: required gateway credentials are not present", ErrValidation)

	// ErrTransport marks a network or timeout failure talking to a
	// processor. The outcome is ambiguous: a charge may have been accepted
	// even though no response was received. Never retried here.
	ErrTransport = errors.New("payment processor transport failure")

	// ErrAdapterPanic marks an adapter implementation defect. Fatal for the
	// request; internal detail is logged, never returned to the caller.
	ErrAdapterPanic = errors.New("unhandled payment adapter failure")
)

// Dispatcher states. Each request walks Received -> Validated -> Resolved ->
// Invoking and terminates in Completed or Failed; the terminal state is what
// the audit record carries.
const (
	stateReceived  = "Received"
	stateValidated = "Validated"
	stateResolved  = "Resolved"
	stateInvoking  = "Invoking"
	stateCompleted = "Completed"
	stateFailed    = "Failed"
)

// Outcome kinds carried on the audit record.
const (
	kindCompleted     = "completed"
	kindValidation    = "validation"
	kindConfiguration = "configuration"
	kindTransport     = "transport"
	kindUnhandled     = "unhandled"
)

const (
	operationPayment = "processPayment"
	operationRefund  = "processRefund"
)

// IDispatchUseCase routes one validated request to the correct adapter and
// maps whatever comes back into the canonical GatewayResult.
//
// The returned error is nil for every completed attempt, declines included; a
// non-nil error is one of the taxonomy sentinels (ErrValidation,
// interfaces.ErrUnknownGatewayType, ErrMissingCredentialKeys, ErrTransport,
// ErrAdapterPanic) and the accompanying GatewayResult is the failed envelope
// to return to the caller.

type IDispatchUseCase interface {
	SubmitPayment(ctx context.Context, txn entities.TransactionContext, identity entities.GatewayIdentity, raw RawPayment) (entities.GatewayResult, error)
	SubmitRefund(ctx context.Context, txn entities.TransactionContext, identity entities.GatewayIdentity, raw RawRefund) (entities.GatewayResult, error)
}

// DispatchUseCase is terminal per request: it holds no cross-request state
// beyond the read-only registry and the audit emitter, so concurrent use
// needs no locking.

type DispatchUseCase struct {
	registry interfaces.IAdapterRegistry
	audit    interfaces.IAuditEmitter
	timeout  time.Duration
}

var _ IDispatchUseCase = (*DispatchUseCase)(nil)

func NewDispatchUseCase(registry interfaces.IAdapterRegistry, audit interfaces.IAuditEmitter, timeout time.Duration) *DispatchUseCase {
	return &DispatchUseCase{registry: registry, audit: audit, timeout: timeout}
}

func (u *DispatchUseCase) SubmitPayment(ctx context.Context, txn entities.TransactionContext, identity entities.GatewayIdentity, raw RawPayment) (entities.GatewayResult, error) {
	rec := entities.AuditRecord{
		Operation:         operationPayment,
		Transaction:       txn,
		GatewayTypeID:     identity.GatewayTypeID,
		GatewayTypeName:   identity.GatewayTypeName,
		MerchantAccountID: identity.MerchantAccountID,
		Comment:           raw.Comment,
		MaskedCardNumber:  entities.MaskCardNumber(raw.Account),
		CurrencyType:      entities.CurrencyCode(raw.CurrencyType),
	}
	amount := raw.Amount
	rec.Amount = &amount

	log.Printf("[dispatch][usecase] payment received txn_id=%s gateway_type=%d merchant=%d", txn.TransactionID, identity.GatewayTypeID, identity.MerchantAccountID)

	payment, err := NormalizePayment(raw)
	if err != nil {
		return u.fail(rec, identity, kindValidation, http.StatusBadRequest, err.Error(), err)
	}

	descriptor, err := u.resolve(identity)
	if err != nil {
		kind, status, message := classifyResolveFailure(identity, err)
		return u.fail(rec, identity, kind, status, message, err)
	}

	result, err := u.invoke(ctx, func(cctx context.Context) (entities.GatewayResult, error) {
		return descriptor.Adapter.ProcessPayment(cctx, identity, payment)
	})
	if err != nil {
		return u.failInvocation(rec, identity, operationPayment, err)
	}

	result.MerchantAccountID = identity.MerchantAccountID
	u.complete(&rec, &result, paymentStatusText(result, identity))
	return result, nil
}

func (u *DispatchUseCase) SubmitRefund(ctx context.Context, txn entities.TransactionContext, identity entities.GatewayIdentity, raw RawRefund) (entities.GatewayResult, error) {
	rec := entities.AuditRecord{
		Operation:         operationRefund,
		Transaction:       txn,
		GatewayTypeID:     identity.GatewayTypeID,
		GatewayTypeName:   identity.GatewayTypeName,
		MerchantAccountID: identity.MerchantAccountID,
		Comment:           raw.Comment,
		MaskedCardNumber:  raw.MaskedCardNumber,
		Amount:            raw.Amount,
	}
	if raw.CurrencyType != nil {
		rec.CurrencyType = entities.CurrencyCode(*raw.CurrencyType)
	}

	log.Printf("[dispatch][usecase] refund received txn_id=%s gateway_type=%d payment_txn_id=%s", txn.TransactionID, identity.GatewayTypeID, raw.PaymentTransactionID)

	refund, err := NormalizeRefund(raw)
	if err != nil {
		return u.fail(rec, identity, kindValidation, http.StatusBadRequest, err.Error(), err)
	}
	rec.PaymentTransactionID = refund.PaymentTransactionID

	descriptor, err := u.resolve(identity)
	if err != nil {
		kind, status, message := classifyResolveFailure(identity, err)
		return u.fail(rec, identity, kind, status, message, err)
	}

	result, err := u.invoke(ctx, func(cctx context.Context) (entities.GatewayResult, error) {
		return descriptor.Adapter.ProcessRefund(cctx, identity, refund)
	})
	if err != nil {
		return u.failInvocation(rec, identity, operationRefund, err)
	}

	result.MerchantAccountID = identity.MerchantAccountID
	u.complete(&rec, &result, refundStatusText(result, identity))
	return result, nil
}

// resolve maps the gateway type to its adapter and enforces the declared
// credential key set, so neither failure ever reaches a processor.
func (u *DispatchUseCase) resolve(identity entities.GatewayIdentity) (interfaces.AdapterDescriptor, error) {
	descriptor, err := u.registry.Resolve(identity.GatewayTypeID)
	if err != nil {
		return interfaces.AdapterDescriptor{}, err
	}
	if !identity.HasCredentialKeys(descriptor.RequiredCredentialKeys) {
		return interfaces.AdapterDescriptor{}, fmt.Errorf("%w for %s", ErrMissingCredentialKeys, identity.GatewayTypeID)
	}
	return descriptor, nil
}

// invoke runs the adapter call under the dispatch timeout. The adapter runs
// on its own goroutine so a hung implementation cannot stall the request past
// the deadline; when the deadline fires first the call is abandoned and the
// ambiguity is surfaced to the caller, never resolved locally. At most one
// external attempt is ever made: a blind retry of a financial operation risks
// a double charge.
func (u *DispatchUseCase) invoke(ctx context.Context, call func(context.Context) (entities.GatewayResult, error)) (entities.GatewayResult, error) {
	cctx, cancel := context.WithTimeout(ctx, u.timeout)
	defer cancel()

	type outcome struct {
		result entities.GatewayResult
		err    error
	}
	done := make(chan outcome, 1)

	go func() {
		defer func() {
			if r := recover(); r != nil {
				done <- outcome{err: fmt.Errorf("%w: %v", ErrAdapterPanic, r)}
			}
		}()
		result, err := call(cctx)
		if err != nil && !errors.Is(err, ErrAdapterPanic) {
			err = fmt.Errorf("%w: %v", ErrTransport, err)
		}
		done <- outcome{result: result, err: err}
	}()

	select {
	case o := <-done:
		return o.result, o.err
	case <-cctx.Done():
		return entities.GatewayResult{}, fmt.Errorf("%w: %v", ErrTransport, cctx.Err())
	}
}

func (u *DispatchUseCase) failInvocation(rec entities.AuditRecord, identity entities.GatewayIdentity, operation string, err error) (entities.GatewayResult, error) {
	if errors.Is(err, ErrAdapterPanic) {
		log.Printf("[dispatch][usecase] adapter defect txn_id=%s gateway_type=%d err=%v", rec.Transaction.TransactionID, identity.GatewayTypeID, err)
		message := fmt.Sprintf("Unexpected error encountered processing %s %s request", identity.GatewayTypeID, operationNoun(operation))
		return u.fail(rec, identity, kindUnhandled, http.StatusMisdirectedRequest, message, err)
	}

	rec.Ambiguous = true
	log.Printf("[dispatch][usecase] transport failure txn_id=%s gateway_type=%d err=%v", rec.Transaction.TransactionID, identity.GatewayTypeID, err)
	message := fmt.Sprintf("There was a network error with your %s %s request", identity.GatewayTypeID, operationNoun(operation))
	return u.fail(rec, identity, kindTransport, 0, message, err)
}

// fail builds the failed envelope and emits the audit record for a Failed
// terminal state. The original error is passed back for the handler's
// errors.Is mapping; its message never reaches an unhandled-kind response.
func (u *DispatchUseCase) fail(rec entities.AuditRecord, identity entities.GatewayIdentity, kind string, gatewayStatus int, message string, err error) (entities.GatewayResult, error) {
	result := entities.GatewayResult{
		Success:               false,
		GatewayHTTPStatusCode: gatewayStatus,
		ResponseMessage:       message,
		ResponseDetail:        message,
		MerchantAccountID:     identity.MerchantAccountID,
	}
	if gatewayStatus != 0 {
		result.StatusCode = strconv.Itoa(gatewayStatus)
	}

	rec.Level = entities.AuditLevelError
	rec.State = stateFailed
	rec.Kind = kind
	rec.Status = message
	rec.Success = false
	rec.StatusCode = result.StatusCode
	rec.GatewayHTTPStatusCode = gatewayStatus
	u.audit.Emit(rec)

	return result, err
}

// complete finalizes a Completed attempt. Declines complete too: the attempt
// ran end to end, so they audit at ERROR but return no error to the handler.
func (u *DispatchUseCase) complete(rec *entities.AuditRecord, result *entities.GatewayResult, statusText string) {
	if result.ResponseDetail == "" {
		if result.ResponseMessage != "" {
			result.ResponseDetail = result.ResponseMessage
		} else {
			result.ResponseDetail = statusText
		}
	}

	rec.Level = entities.AuditLevelAudit
	if !result.Success {
		rec.Level = entities.AuditLevelError
	}
	rec.State = stateCompleted
	rec.Kind = kindCompleted
	rec.Status = statusText
	rec.Success = result.Success
	rec.StatusCode = result.StatusCode
	rec.GatewayHTTPStatusCode = result.GatewayHTTPStatusCode
	if result.PaymentTransactionID != "" {
		rec.PaymentTransactionID = result.PaymentTransactionID
	}
	rec.GatewayResponseData = result.GatewayResponseData
	u.audit.Emit(*rec)
}

func classifyResolveFailure(identity entities.GatewayIdentity, err error) (kind string, status int, message string) {
	if errors.Is(err, interfaces.ErrUnknownGatewayType) {
		return kindConfiguration, http.StatusBadRequest, "Unknown payment gateway type"
	}
	return kindValidation, http.StatusBadRequest, fmt.Sprintf("Required credentials for %s are not present", identity.GatewayTypeID)
}

func paymentStatusText(result entities.GatewayResult, identity entities.GatewayIdentity) string {
	if result.Success {
		return "Transaction approved"
	}
	return fmt.Sprintf("Error encountered during payment attempt to %s payment processing endpoint", identity.GatewayTypeID)
}

func refundStatusText(result entities.GatewayResult, identity entities.GatewayIdentity) string {
	if result.Success {
		return "Refund successfully processed"
	}
	return fmt.Sprintf("Error encountered during refund request to %s refund processing endpoint", identity.GatewayTypeID)
}

func operationNoun(operation string) string {
	if operation == operationRefund {
		return "refund"
	}
	return "payment"
}
