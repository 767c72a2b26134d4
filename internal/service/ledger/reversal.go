package ledger

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/sahakar/accounts-backend/internal/domain"
)

const (
	minReasonLength = 5
	reasonMessage   = "Valid reason (min 5 chars) is required for audit trail."
	shortIDLength   = 6
)

// ReversalRequest is everything AuthorizeReversal needs to decide.
type ReversalRequest struct {
	Original     domain.Transaction
	Reason       string
	Role         domain.Role
	ActorID      uuid.UUID
	DayLocked    bool
	BusinessDate time.Time
	Now          time.Time
}

// AuthorizeReversal checks the lock, the edit window and the reason, in that
// order, and builds the compensating entry. The original is not modified.
func AuthorizeReversal(req ReversalRequest) (domain.Transaction, error) {
	decision := CheckEntryPermission(req.Original.PostingDate(), req.Role, req.DayLocked, req.Now)
	if !decision.Allowed {
		return domain.Transaction{}, domain.NewPermissionError(decision.Reason)
	}

	reason := strings.TrimSpace(req.Reason)
	if utf8.RuneCountInString(reason) < minReasonLength {
		return domain.Transaction{}, domain.NewValidationError("reason", reasonMessage)
	}

	orig := req.Original
	parentID := orig.ID
	key := fmt.Sprintf("rev_%s_%d", orig.ID, req.Now.UnixMilli())

	return domain.Transaction{
		OutletID:            orig.OutletID,
		DailyRecordID:       orig.DailyRecordID,
		LedgerDate:          req.BusinessDate,
		Type:                orig.Type.Opposite(),
		Category:            orig.Category,
		PaymentMode:         orig.PaymentMode,
		Amount:              orig.Amount,
		Description:         fmt.Sprintf("REVERSAL: %s (Ref: %s)", reason, shortID(orig.ID)),
		CreatedBy:           req.ActorID,
		IsReversal:          true,
		ParentTransactionID: &parentID,
		IdempotencyKey:      &key,
	}, nil
}

func shortID(id uuid.UUID) string {
	return id.String()[:shortIDLength]
}
