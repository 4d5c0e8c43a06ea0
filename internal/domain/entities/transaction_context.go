package entities

// TransactionContext is the correlation metadata the legacy back end attaches
// to every call. It is created once per inbound request, threaded unchanged
// through validation, dispatch and audit logging, and never persisted here.
//
// The back end resends identical identifiers on any retry it initiates, which
// is what ties a retried attempt back to the original transaction.

type TransactionContext struct {
	TransactionID string
	UniversityID  int
	UserID        int
}
