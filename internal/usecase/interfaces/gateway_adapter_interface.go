package interfaces

import (
	"context"
	"errors"

	"payment-gateway-service/internal/domain/entities"
)

// ErrUnknownGatewayType is returned by registry resolution for gateway type
// identifiers no adapter is registered under. It is distinguishable from
// downstream processor failures so the dispatcher can short-circuit before
// making any external call.
var ErrUnknownGatewayType = errors.New("unknown payment gateway type")

// IGatewayAdapter is the two-operation contract every payment processor
// implementation satisfies. Each adapter encapsulates the wire protocol or
// SDK calls of one specific processor and owns the translation of that
// processor's native response shape into the canonical GatewayResult.
//
// Adapters use only the credentials supplied on the identity and never cache
// them. A processor-reported decline is a returned GatewayResult with
// Success=false; a non-nil error is reserved for transport failures
// (network, timeout, unparseable connection-level breakage) where the
// outcome at the processor is unknown.
type IGatewayAdapter interface {
	ProcessPayment(ctx context.Context, identity entities.GatewayIdentity, payment entities.PaymentRequest) (entities.GatewayResult, error)
	ProcessRefund(ctx context.Context, identity entities.GatewayIdentity, refund entities.RefundRequest) (entities.GatewayResult, error)
}

// AdapterDescriptor is one registry entry: the adapter plus the credential
// keys its processor requires on every call. Read-only after startup.
type AdapterDescriptor struct {
	Adapter                IGatewayAdapter
	RequiredCredentialKeys []string
}

// IAdapterRegistry resolves a gateway type identifier to its descriptor.
// Populated once at process start from static configuration; safe for
// unsynchronized concurrent reads afterwards.
type IAdapterRegistry interface {
	Resolve(gatewayTypeID entities.GatewayType) (AdapterDescriptor, error)
}

// IAuditEmitter emits the single structured record per transaction attempt.
type IAuditEmitter interface {
	Emit(record entities.AuditRecord)
}
