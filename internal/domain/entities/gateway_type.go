package entities

// GatewayType identifies one supported payment processor.
//
// The numeric values are shared with the legacy back end and must never be
// reused or renumbered. Adding a gateway type means adding a constant here,
// an adapter under internal/infrastructure/gateways and a registry entry --
// a deploy-time operation, never a runtime one.

type GatewayType int

const (
	GatewayTypePayload     GatewayType = 1
	GatewayTypeCardConnect GatewayType = 2
	GatewayTypeMercadoPago GatewayType = 3
)

func (t GatewayType) String() string {
	switch t {
	case GatewayTypePayload:
		return "Payload"
	case GatewayTypeCardConnect:
		return "CardConnect"
	case GatewayTypeMercadoPago:
		return "MercadoPago"
	default:
		return "Unknown"
	}
}

// GatewayIdentity carries everything needed to act on behalf of one merchant
// against one processor. It is supplied by the caller on every request; the
// credentials live for the duration of that request and are never cached,
// persisted or logged.

type GatewayIdentity struct {
	GatewayTypeID     GatewayType
	GatewayTypeName   string
	MerchantAccountID int
	Credentials       map[string]string
}

// HasCredentialKeys reports whether every required key is present and
// non-empty in the supplied credential map.
func (g GatewayIdentity) HasCredentialKeys(required []string) bool {
	for _, key := range required {
		if g.Credentials[key] == "" {
			return false
		}
	}
	return true
}
