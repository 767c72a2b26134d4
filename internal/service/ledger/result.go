package ledger

import "github.com/sahakar/accounts-backend/internal/domain"

// ReversalResult is the outcome of a reversal. Warning is set when the
// reversal was posted but its audit record could not be written.
type ReversalResult struct {
	Reversal domain.Transaction
	Warning  string
}

// LockResult is the outcome of a lock or unlock.
type LockResult struct {
	Success bool
	Lock    domain.DayLock
	Warning string
}

// CreateTransactionResult is the outcome of posting an entry. Replayed is
// true when an entry with the same idempotency key already existed.
type CreateTransactionResult struct {
	Transaction domain.Transaction
	Replayed    bool
	Warning     string
}
