package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Default processor endpoints. Overridable per environment so the UAT hosts
// and httptest servers can be targeted without touching adapter code.
const (
	defaultCardConnectHostname = "fts.cardconnect.com"
	defaultPayloadBaseURL      = "https://api.payload.co"
)

// Config is the environment-level configuration resolved once at startup and
// injected where needed. Adapters never read the environment themselves.
//
// Supported env vars:
//   - HTTP_PORT (default: 8082)
//   - CARDCONNECT_HOSTNAME (default: production host)
//   - PAYLOAD_BASE_URL (default: https://api.payload.co)
//   - DISPATCH_TIMEOUT_SECONDS (default: 30)
//   - PAYMENT_GATEWAY_MOCK / MERCADOPAGO_MOCK (default: off)

type Config struct {
	HTTPPort            int
	CardConnectHostname string
	PayloadBaseURL      string
	DispatchTimeout     time.Duration

	// MercadoPagoMock swaps the Mercado Pago adapter for canned approvals so
	// environments without sandbox credentials can exercise the full path.
	MercadoPagoMock bool
}

func Load() *Config {
	return &Config{
		HTTPPort:            getenvInt("HTTP_PORT", 8082),
		CardConnectHostname: getenvDefault("CARDCONNECT_HOSTNAME", defaultCardConnectHostname),
		PayloadBaseURL:      getenvDefault("PAYLOAD_BASE_URL", defaultPayloadBaseURL),
		DispatchTimeout:     time.Duration(getenvInt("DISPATCH_TIMEOUT_SECONDS", 30)) * time.Second,
		MercadoPagoMock:     getenvFlag("PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"),
	}
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return def
	}
	return n
}

func getenvFlag(keys ...string) bool {
	for _, key := range keys {
		switch strings.ToLower(strings.TrimSpace(os.Getenv(key))) {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}
