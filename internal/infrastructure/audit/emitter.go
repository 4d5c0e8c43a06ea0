package audit

import (
	"go.uber.org/zap"

	"payment-gateway-service/internal/domain/entities"
	"payment-gateway-service/internal/usecase/interfaces"
)

// Emitter writes the per-attempt structured audit record. Records carry only
// masked or derived identifiers; raw card numbers, cvv values and credential
// secrets never enter a record by construction (the dispatcher builds records
// from the already-masked fields).

type Emitter struct {
	logger *zap.Logger
}

var _ interfaces.IAuditEmitter = (*Emitter)(nil)

func NewEmitter(logger *zap.Logger) *Emitter {
	return &Emitter{logger: logger.Named("payment_gateway")}
}

func (e *Emitter) Emit(record entities.AuditRecord) {
	fields := []zap.Field{
		zap.String("service", "payment_gateway"),
		zap.String("level", record.Level),
		zap.String("requestType", record.Operation),
		zap.String("state", record.State),
		zap.String("kind", record.Kind),
		zap.String("transactionId", record.Transaction.TransactionID),
		zap.Int("universityId", record.Transaction.UniversityID),
		zap.Int("userId", record.Transaction.UserID),
		zap.Int("gatewayTypeId", int(record.GatewayTypeID)),
		zap.String("gatewayTypeName", record.GatewayTypeName),
		zap.Int("merchantAccountId", record.MerchantAccountID),
		zap.String("status", record.Status),
		zap.Bool("success", record.Success),
		zap.Bool("ambiguous", record.Ambiguous),
	}

	if record.StatusCode != "" {
		fields = append(fields, zap.String("statusCode", record.StatusCode))
	}
	if record.GatewayHTTPStatusCode != 0 {
		fields = append(fields, zap.Int("gatewayHttpStatusCode", record.GatewayHTTPStatusCode))
	}
	if record.PaymentTransactionID != "" {
		fields = append(fields, zap.String("paymentTransactionId", record.PaymentTransactionID))
	}
	if record.Comment != "" {
		fields = append(fields, zap.String("comment", record.Comment))
	}
	if record.Amount != nil {
		fields = append(fields, zap.Float64("amount", *record.Amount))
	}
	if record.MaskedCardNumber != "" {
		fields = append(fields, zap.String("maskedCardNumber", record.MaskedCardNumber))
	}
	if record.CurrencyType != 0 {
		fields = append(fields, zap.Int("currencyType", int(record.CurrencyType)))
	}
	if len(record.GatewayResponseData) > 0 {
		fields = append(fields, zap.Any("gatewayResponseData", record.GatewayResponseData))
	}

	if record.Level == entities.AuditLevelError {
		e.logger.Error("payment gateway transaction attempt", fields...)
		return
	}
	e.logger.Info("payment gateway transaction attempt", fields...)
}
