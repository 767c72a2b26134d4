package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// HashAlgorithm names the digest used to seal a closure snapshot.
type HashAlgorithm string

const (
	HashMD5        HashAlgorithm = "md5"
	HashBlake2b256 HashAlgorithm = "blake2b-256"
)

func (h HashAlgorithm) IsValid() bool {
	return h == HashMD5 || h == HashBlake2b256
}

// ClosureSnapshot is a sealed month summary. Snapshot is kept as raw JSON so
// verification hashes exactly what is stored.
type ClosureSnapshot struct {
	ID            uuid.UUID
	OutletID      uuid.UUID
	Month         Month
	Snapshot      json.RawMessage
	SnapshotHash  string
	HashAlgorithm HashAlgorithm
	CreatedBy     uuid.UUID
	CreatedAt     time.Time

	// Set when the month was reopened after this seal. They sit outside the
	// hashed payload.
	ReopenedAt   *time.Time
	ReopenedBy   *uuid.UUID
	ReopenReason *string
}

// IsReopened reports whether the month was reopened after this seal.
func (s ClosureSnapshot) IsReopened() bool {
	return s.ReopenedAt != nil
}

// Status is "open" once reopened, "closed" otherwise.
func (s ClosureSnapshot) Status() string {
	if s.IsReopened() {
		return "open"
	}
	return "closed"
}
