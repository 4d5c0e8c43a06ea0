package gateways

import (
	"fmt"
	"log"

	"payment-gateway-service/internal/domain/entities"
	"payment-gateway-service/internal/infrastructure/config"
	"payment-gateway-service/internal/usecase/interfaces"
)

// Registry maps gateway type identifiers to adapter descriptors. It is built
// once at startup from the injected configuration and read-only afterwards,
// so concurrent resolution needs no synchronization. Adding a gateway type is
// a deploy-time change: register the adapter here under a new identifier.

type Registry struct {
	descriptors map[entities.GatewayType]interfaces.AdapterDescriptor
}

var _ interfaces.IAdapterRegistry = (*Registry)(nil)

func NewRegistry(cfg *config.Config) *Registry {
	r := &Registry{descriptors: map[entities.GatewayType]interfaces.AdapterDescriptor{}}

	r.register(entities.GatewayTypePayload, NewPayloadAdapter(cfg), []string{"apiKey", "processingId"})
	// Note: merchantId is NOT the same as merchantAccountId. It is a
	// CardConnect specific keyword.
	r.register(entities.GatewayTypeCardConnect, NewCardConnectAdapter(cfg), []string{"username", "password", "merchantId"})
	r.register(entities.GatewayTypeMercadoPago, NewMercadoPagoAdapter(cfg), []string{"accessToken"})

	return r
}

func (r *Registry) register(id entities.GatewayType, adapter interfaces.IGatewayAdapter, requiredCredentialKeys []string) {
	log.Printf("[gateways][registry] registered gateway_type=%d name=%s", id, id)
	r.descriptors[id] = interfaces.AdapterDescriptor{
		Adapter:                adapter,
		RequiredCredentialKeys: requiredCredentialKeys,
	}
}

// Resolve returns the descriptor for a gateway type identifier. Unknown
// identifiers fail with interfaces.ErrUnknownGatewayType so the dispatcher
// short-circuits without any external call; there is deliberately no default
// adapter.
func (r *Registry) Resolve(gatewayTypeID entities.GatewayType) (interfaces.AdapterDescriptor, error) {
	descriptor, ok := r.descriptors[gatewayTypeID]
	if !ok {
		return interfaces.AdapterDescriptor{}, fmt.Errorf("%w: %d", interfaces.ErrUnknownGatewayType, gatewayTypeID)
	}
	return descriptor, nil
}
