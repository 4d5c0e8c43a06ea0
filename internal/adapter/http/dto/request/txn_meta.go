package request

import (
	"encoding/json"
	"errors"

	"github.com/google/uuid"

	"payment-gateway-service/internal/domain/entities"
)

// TxnMetaHeader is the correlation header the legacy back end sends on every
// call. Its value is a JSON object with the three required keys below; the
// back end resends identical values when it retries a request, which is how
// attempts stay correlated across the two systems.
const TxnMetaHeader = "TxnMeta"

var ErrIncompleteTxnMeta = errors.New("incomplete transaction metadata header")

type txnMetaPayload struct {
	TransactionID string `json:"transactionId"`
	UniversityID  *int   `json:"universityId"`
	UserID        *int   `json:"userId"`
}

// ParseTxnMeta validates the correlation header and produces the immutable
// TransactionContext threaded through dispatch and audit logging. A missing
// or malformed header fails the request before any dispatch work happens.
func ParseTxnMeta(headerValue string) (entities.TransactionContext, error) {
	if headerValue == "" {
		return entities.TransactionContext{}, ErrIncompleteTxnMeta
	}

	var payload txnMetaPayload
	if err := json.Unmarshal([]byte(headerValue), &payload); err != nil {
		return entities.TransactionContext{}, ErrIncompleteTxnMeta
	}
	if payload.TransactionID == "" || payload.UniversityID == nil || payload.UserID == nil {
		return entities.TransactionContext{}, ErrIncompleteTxnMeta
	}
	if _, err := uuid.Parse(payload.TransactionID); err != nil {
		return entities.TransactionContext{}, ErrIncompleteTxnMeta
	}

	return entities.TransactionContext{
		TransactionID: payload.TransactionID,
		UniversityID:  *payload.UniversityID,
		UserID:        *payload.UserID,
	}, nil
}
