package closure

import (
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/sahakar/accounts-backend/internal/domain"
)

// SealInput holds the parameters for closing a month.
type SealInput struct {
	OutletID uuid.UUID
	Month    domain.Month
}

// Validate checks all fields and collects all errors.
func (i SealInput) Validate() error {
	var errs []domain.FieldError

	if i.OutletID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "outlet_id", Message: "required"})
	}
	if i.Month.IsZero() {
		errs = append(errs, domain.FieldError{Field: "month", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// minReopenReason is the shortest reason accepted for reopening a month.
const minReopenReason = 10

// ReopenInput holds the parameters for reopening a closed month.
type ReopenInput struct {
	OutletID uuid.UUID
	Month    domain.Month
	Reason   string
}

// Validate checks all fields and collects all errors.
func (i ReopenInput) Validate() error {
	var errs []domain.FieldError

	if i.OutletID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "outlet_id", Message: "required"})
	}
	if i.Month.IsZero() {
		errs = append(errs, domain.FieldError{Field: "month", Message: "required"})
	}
	if utf8.RuneCountInString(strings.TrimSpace(i.Reason)) < minReopenReason {
		errs = append(errs, domain.FieldError{Field: "reason", Message: "Reason (min 10 chars) is required to reopen a month"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
