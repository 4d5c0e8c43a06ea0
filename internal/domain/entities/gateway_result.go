package entities

// GatewayResult is the canonical response envelope returned to the caller
// regardless of which adapter handled the request. The dispatcher produces
// exactly one per inbound request and never mutates it afterwards.
//
// A processor decline is a GatewayResult with Success=false, not an error:
// the transaction attempt completed, the processor just said no.

type GatewayResult struct {
	Success               bool
	StatusCode            string
	GatewayHTTPStatusCode int
	ResponseMessage       string
	ResponseDetail        string
	PaymentTransactionID  string
	MerchantAccountID     int

	// GatewayResponseData collects the raw processor payloads observed while
	// producing this result. It is audit-logged for traceability and stripped
	// from the HTTP response.
	GatewayResponseData []any
}

// Audit levels of the per-attempt structured record.
const (
	AuditLevelAudit = "AUDIT"
	AuditLevelError = "ERROR"
)

// AuditRecord is the single structured record emitted per transaction
// attempt. It never carries a raw card number, cvv or credential secret.

type AuditRecord struct {
	Level     string // AuditLevelAudit | AuditLevelError
	Operation string // processPayment | processRefund
	State     string // terminal dispatcher state
	Kind      string // completed | validation | configuration | transport | unhandled

	Transaction TransactionContext

	GatewayTypeID     GatewayType
	GatewayTypeName   string
	MerchantAccountID int

	Status                string
	Success               bool
	StatusCode            string
	GatewayHTTPStatusCode int

	// Ambiguous marks an attempt whose outcome is unknown: the external call
	// was abandoned after it may have reached the processor. Never resolved
	// to success or failure here; the back end reconciles it.
	Ambiguous bool

	// Optional fields, present when the request carried them.
	PaymentTransactionID string
	Comment              string
	Amount               *float64
	MaskedCardNumber     string
	CurrencyType         CurrencyCode

	GatewayResponseData []any
}
