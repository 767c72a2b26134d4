package rest

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sahakar/accounts-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Requests
// ---------------------------------------------------------------------------

type createTransactionRequest struct {
	LedgerDate     string          `json:"ledger_date"`
	Type           string          `json:"type"            validate:"required"`
	Category       string          `json:"category"        validate:"required,max=100"`
	PaymentMode    string          `json:"payment_mode"    validate:"required"`
	Amount         decimal.Decimal `json:"amount"`
	Description    string          `json:"description"     validate:"max=500"`
	IdempotencyKey string          `json:"idempotency_key" validate:"max=200"`
}

type reversalRequest struct {
	Reason string `json:"reason" validate:"max=500"`
}

type dayLockRequest struct {
	Reason string `json:"reason" validate:"required,max=500"`
}

type reopenRequest struct {
	Reason string `json:"reason" validate:"required,max=500"`
}

type scanDayRequest struct {
	Date         string           `json:"date"          validate:"required,datetime=2006-01-02"`
	TotalIncome  *decimal.Decimal `json:"total_income"`
	TotalExpense *decimal.Decimal `json:"total_expense"`
	ClosingCash  *decimal.Decimal `json:"closing_cash"`
	ClosingUPI   *decimal.Decimal `json:"closing_upi"`
	Status       string           `json:"status"        validate:"omitempty,oneof=draft submitted locked"`
}

type scanRequest struct {
	Days []scanDayRequest `json:"days" validate:"dive"`
}

// ---------------------------------------------------------------------------
// Responses
// ---------------------------------------------------------------------------

type transactionResponse struct {
	ID                  uuid.UUID       `json:"id"`
	OutletID            uuid.UUID       `json:"outlet_id"`
	DailyRecordID       *uuid.UUID      `json:"daily_record_id,omitempty"`
	LedgerDate          string          `json:"ledger_date"`
	Type                string          `json:"type"`
	Category            string          `json:"category"`
	PaymentMode         string          `json:"payment_mode"`
	Amount              decimal.Decimal `json:"amount"`
	Description         string          `json:"description,omitempty"`
	CreatedBy           uuid.UUID       `json:"created_by"`
	IsReversal          bool            `json:"is_reversal"`
	ParentTransactionID *uuid.UUID      `json:"parent_transaction_id,omitempty"`
	IdempotencyKey      *string         `json:"idempotency_key,omitempty"`
	CreatedAt           time.Time       `json:"created_at"`
}

func toTransactionResponse(t domain.Transaction) transactionResponse {
	return transactionResponse{
		ID:                  t.ID,
		OutletID:            t.OutletID,
		DailyRecordID:       t.DailyRecordID,
		LedgerDate:          t.LedgerDate.Format(domain.DateLayout),
		Type:                t.Type.String(),
		Category:            t.Category,
		PaymentMode:         t.PaymentMode.String(),
		Amount:              t.Amount,
		Description:         t.Description,
		CreatedBy:           t.CreatedBy,
		IsReversal:          t.IsReversal,
		ParentTransactionID: t.ParentTransactionID,
		IdempotencyKey:      t.IdempotencyKey,
		CreatedAt:           t.CreatedAt,
	}
}

type dailyRecordResponse struct {
	ID           uuid.UUID       `json:"id"`
	OutletID     uuid.UUID       `json:"outlet_id"`
	Date         string          `json:"date"`
	OpeningCash  decimal.Decimal `json:"opening_cash"`
	OpeningUPI   decimal.Decimal `json:"opening_upi"`
	ClosingCash  decimal.Decimal `json:"closing_cash"`
	ClosingUPI   decimal.Decimal `json:"closing_upi"`
	TotalIncome  decimal.Decimal `json:"total_income"`
	TotalExpense decimal.Decimal `json:"total_expense"`
	Net          decimal.Decimal `json:"net"`
	Status       string          `json:"status"`
	SubmittedAt  *time.Time      `json:"submitted_at,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

func toDailyRecordResponse(r domain.DailyRecord) dailyRecordResponse {
	return dailyRecordResponse{
		ID:           r.ID,
		OutletID:     r.OutletID,
		Date:         r.Date.Format(domain.DateLayout),
		OpeningCash:  r.OpeningCash,
		OpeningUPI:   r.OpeningUPI,
		ClosingCash:  r.ClosingCash,
		ClosingUPI:   r.ClosingUPI,
		TotalIncome:  r.TotalIncome,
		TotalExpense: r.TotalExpense,
		Net:          r.Net(),
		Status:       r.Status.String(),
		SubmittedAt:  r.SubmittedAt,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

type dayLockResponse struct {
	OutletID uuid.UUID  `json:"outlet_id"`
	Date     string     `json:"date"`
	IsLocked bool       `json:"is_locked"`
	LockedAt *time.Time `json:"locked_at,omitempty"`
	LockedBy *uuid.UUID `json:"locked_by,omitempty"`
}

type lockResultResponse struct {
	Success bool            `json:"success"`
	Lock    dayLockResponse `json:"lock"`
	Warning string          `json:"warning,omitempty"`
}

type snapshotResponse struct {
	ID            uuid.UUID       `json:"id"`
	OutletID      uuid.UUID       `json:"outlet_id"`
	Month         string          `json:"month"`
	Snapshot      json.RawMessage `json:"snapshot"`
	SnapshotHash  string          `json:"snapshot_hash"`
	HashAlgorithm string          `json:"hash_algorithm"`
	CreatedBy     uuid.UUID       `json:"created_by"`
	CreatedAt     time.Time       `json:"created_at"`
	Status        string          `json:"status"`
	ReopenedAt    *time.Time      `json:"reopened_at,omitempty"`
	ReopenedBy    *uuid.UUID      `json:"reopened_by,omitempty"`
	ReopenReason  *string         `json:"reopen_reason,omitempty"`
}

func toSnapshotResponse(s domain.ClosureSnapshot) snapshotResponse {
	return snapshotResponse{
		ID:            s.ID,
		OutletID:      s.OutletID,
		Month:         s.Month.Key(),
		Snapshot:      s.Snapshot,
		SnapshotHash:  s.SnapshotHash,
		HashAlgorithm: string(s.HashAlgorithm),
		CreatedBy:     s.CreatedBy,
		CreatedAt:     s.CreatedAt,
		Status:        s.Status(),
		ReopenedAt:    s.ReopenedAt,
		ReopenedBy:    s.ReopenedBy,
		ReopenReason:  s.ReopenReason,
	}
}

type auditRecordResponse struct {
	ID         uuid.UUID      `json:"id"`
	UserID     uuid.UUID      `json:"user_id"`
	Action     string         `json:"action"`
	EntityType string         `json:"entity_type"`
	EntityID   string         `json:"entity_id"`
	OldData    map[string]any `json:"old_data,omitempty"`
	NewData    map[string]any `json:"new_data,omitempty"`
	Severity   string         `json:"severity"`
	Reason     *string        `json:"reason,omitempty"`
	IPAddress  string         `json:"ip_address,omitempty"`
	UserAgent  string         `json:"user_agent,omitempty"`
	CreatedAt  time.Time      `json:"created_at"`
}

func toAuditRecordResponse(a domain.AuditRecord) auditRecordResponse {
	return auditRecordResponse{
		ID:         a.ID,
		UserID:     a.UserID,
		Action:     a.Action.String(),
		EntityType: a.EntityType.String(),
		EntityID:   a.EntityID,
		OldData:    a.OldData,
		NewData:    a.NewData,
		Severity:   a.Severity.String(),
		Reason:     a.Reason,
		IPAddress:  a.IPAddress,
		UserAgent:  a.UserAgent,
		CreatedAt:  a.CreatedAt,
	}
}
