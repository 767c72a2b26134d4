package ledger

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sahakar/accounts-backend/internal/domain"
)

const (
	maxCategoryLength    = 100
	maxDescriptionLength = 500
	maxIdempotencyKey    = 200
)

// CanEditInput holds the parameters of an edit-window query.
type CanEditInput struct {
	TransactionDate string
	Role            string
}

// ReverseTransactionInput holds the parameters for reversing an entry.
type ReverseTransactionInput struct {
	TransactionID uuid.UUID
	Reason        string
}

// Validate checks all fields and collects all errors.
func (i ReverseTransactionInput) Validate() error {
	if i.TransactionID == uuid.Nil {
		return domain.NewValidationError("transaction_id", "required")
	}
	return nil
}

// LockDayInput holds the parameters for locking a business day.
type LockDayInput struct {
	OutletID uuid.UUID
	Date     time.Time
	Reason   string
}

// Validate checks all fields and collects all errors.
func (i LockDayInput) Validate() error {
	var errs []domain.FieldError

	if i.OutletID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "outlet_id", Message: "required"})
	}
	if i.Date.IsZero() {
		errs = append(errs, domain.FieldError{Field: "date", Message: "required"})
	}
	if strings.TrimSpace(i.Reason) == "" {
		errs = append(errs, domain.FieldError{Field: "reason", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UnlockDayInput holds the parameters for unlocking a business day.
type UnlockDayInput struct {
	OutletID uuid.UUID
	Date     time.Time
	Reason   string
}

// Validate checks all fields and collects all errors.
func (i UnlockDayInput) Validate() error {
	var errs []domain.FieldError

	if i.OutletID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "outlet_id", Message: "required"})
	}
	if i.Date.IsZero() {
		errs = append(errs, domain.FieldError{Field: "date", Message: "required"})
	}
	if strings.TrimSpace(i.Reason) == "" {
		errs = append(errs, domain.FieldError{Field: "reason", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// CreateTransactionInput holds the parameters for posting a new entry.
type CreateTransactionInput struct {
	OutletID       uuid.UUID
	LedgerDate     *time.Time // nil = current business date
	Type           domain.TransactionType
	Category       string
	PaymentMode    domain.PaymentMode
	Amount         decimal.Decimal
	Description    string
	IdempotencyKey string
}

// Validate checks all fields and collects all errors.
func (i CreateTransactionInput) Validate() error {
	var errs []domain.FieldError

	if i.OutletID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "outlet_id", Message: "required"})
	}
	if !i.Type.IsValid() {
		errs = append(errs, domain.FieldError{Field: "type", Message: "must be income or expense"})
	}
	if !i.PaymentMode.IsValid() {
		errs = append(errs, domain.FieldError{Field: "payment_mode", Message: "invalid"})
	}
	if !i.Amount.IsPositive() {
		errs = append(errs, domain.FieldError{Field: "amount", Message: "must be > 0"})
	} else if !i.Amount.Equal(i.Amount.Round(2)) {
		errs = append(errs, domain.FieldError{Field: "amount", Message: "max 2 decimal places"})
	}

	category := strings.TrimSpace(i.Category)
	if category == "" {
		errs = append(errs, domain.FieldError{Field: "category", Message: "required"})
	}
	if len(category) > maxCategoryLength {
		errs = append(errs, domain.FieldError{Field: "category", Message: "max 100 characters"})
	}
	if len(i.Description) > maxDescriptionLength {
		errs = append(errs, domain.FieldError{Field: "description", Message: "max 500 characters"})
	}
	if len(i.IdempotencyKey) > maxIdempotencyKey {
		errs = append(errs, domain.FieldError{Field: "idempotency_key", Message: "max 200 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
