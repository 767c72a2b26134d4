package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Transaction is a ledger entry. Posted entries are never updated; a
// correction is a new entry with IsReversal set that points back through
// ParentTransactionID.
type Transaction struct {
	ID                  uuid.UUID
	OutletID            uuid.UUID
	DailyRecordID       *uuid.UUID
	LedgerDate          time.Time // civil date, UTC midnight
	Type                TransactionType
	Category            string
	PaymentMode         PaymentMode
	Amount              decimal.Decimal
	Description         string
	CreatedBy           uuid.UUID
	IsReversal          bool
	ParentTransactionID *uuid.UUID
	IdempotencyKey      *string
	CreatedAt           time.Time
}

// PostingDate is the date the edit window is measured from: the ledger date
// when set, otherwise the creation time.
func (t Transaction) PostingDate() time.Time {
	if !t.LedgerDate.IsZero() {
		return t.LedgerDate
	}
	return t.CreatedAt
}

// DailyRecord is the per-outlet, per-date cash/UPI book.
type DailyRecord struct {
	ID           uuid.UUID
	OutletID     uuid.UUID
	Date         time.Time // civil date, UTC midnight
	OpeningCash  decimal.Decimal
	OpeningUPI   decimal.Decimal
	ClosingCash  decimal.Decimal
	ClosingUPI   decimal.Decimal
	TotalIncome  decimal.Decimal
	TotalExpense decimal.Decimal
	Status       DayStatus
	SubmittedAt  *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Key is the (outlet, date) composite identifier of the record.
func (r DailyRecord) Key() string {
	return DayLockKey(r.OutletID, r.Date)
}

// Net is income minus expense for the day.
func (r DailyRecord) Net() decimal.Decimal {
	return r.TotalIncome.Sub(r.TotalExpense)
}

// DayLock blocks ledger mutation for one (outlet, date). It is the source of
// truth for mutation blocking; DailyRecord.Status only mirrors it.
type DayLock struct {
	OutletID uuid.UUID
	Date     time.Time
	IsLocked bool
	LockedAt *time.Time
	LockedBy *uuid.UUID
}

// Key is the composite identifier used in audit records.
func (l DayLock) Key() string {
	return DayLockKey(l.OutletID, l.Date)
}

// DayLockKey formats the (outlet, date) composite key.
func DayLockKey(outletID uuid.UUID, date time.Time) string {
	return outletID.String() + "_" + date.Format(DateLayout)
}
