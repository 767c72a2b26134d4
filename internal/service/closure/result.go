package closure

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Verification failure reasons.
const (
	ReasonNoSnapshot       = "no_snapshot"
	ReasonUnreadable       = "unreadable_snapshot"
	ReasonUnknownAlgorithm = "unknown_algorithm"
)

// VerifyResult is the outcome of checking the newest snapshot of an
// outlet-month against its stored hash.
type VerifyResult struct {
	Valid        bool       `json:"valid"`
	Reason       string     `json:"reason,omitempty"`
	SnapshotID   *uuid.UUID `json:"snapshot_id,omitempty"`
	ComputedHash string     `json:"computed,omitempty"`
	StoredHash   string     `json:"stored,omitempty"`
	Reopened     bool       `json:"reopened,omitempty"`
}

// Summary is the sealed payload of a monthly closure.
type Summary struct {
	TotalIncome  decimal.Decimal `json:"total_income"`
	TotalExpense decimal.Decimal `json:"total_expense"`
	OpeningCash  decimal.Decimal `json:"opening_cash"`
	ClosingCash  decimal.Decimal `json:"closing_cash"`
	ClosedAt     time.Time       `json:"closed_at"`
	ClosedBy     uuid.UUID       `json:"closed_by"`
	DaysCount    int             `json:"days_count"`
}
