package ledger

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/sahakar/accounts-backend/internal/domain"
)

// ReverseTransaction posts a compensating entry for an existing one. The
// original entry stays untouched.
func (s *Service) ReverseTransaction(ctx context.Context, input ReverseTransactionInput) (ReversalResult, error) {
	p, err := principal(ctx)
	if err != nil {
		return ReversalResult{}, err
	}
	if err := input.Validate(); err != nil {
		return ReversalResult{}, err
	}

	orig, err := s.txs.GetByID(ctx, input.TransactionID)
	if err != nil {
		return ReversalResult{}, fmt.Errorf("get transaction: %w", err)
	}
	if !p.CanAccessOutlet(orig.OutletID) {
		return ReversalResult{}, domain.NewPermissionError(domain.ReasonOutletAccess)
	}

	lock, err := s.locks.Get(ctx, orig.OutletID, domain.CivilDate(orig.PostingDate()))
	if err != nil {
		return ReversalResult{}, fmt.Errorf("get day lock: %w", err)
	}

	now := s.now()
	reversal, err := AuthorizeReversal(ReversalRequest{
		Original:     orig,
		Reason:       input.Reason,
		Role:         p.Role,
		ActorID:      p.UserID,
		DayLocked:    lock.IsLocked,
		BusinessDate: s.day.Date(now),
		Now:          now,
	})
	s.decide("reverse", err)
	if err != nil {
		s.log.InfoContext(ctx, "reversal denied",
			slog.String("user_id", p.UserID.String()),
			slog.String("transaction_id", orig.ID.String()),
			slog.String("error", err.Error()),
		)
		return ReversalResult{}, err
	}

	created, replayed, err := s.postEntry(ctx, reversal)
	if err != nil {
		return ReversalResult{}, err
	}
	if replayed {
		return ReversalResult{Reversal: created}, nil
	}

	reason := strings.TrimSpace(input.Reason)
	warning := s.writeAudit(ctx, domain.AuditRecord{
		UserID:     p.UserID,
		Action:     domain.AuditActionTransactionReverse,
		EntityType: domain.EntityTypeTransaction,
		EntityID:   created.ID.String(),
		OldData:    entrySnapshot(orig),
		NewData:    entrySnapshot(created),
		Severity:   domain.AuditSeverityWarning,
		Reason:     &reason,
	})

	s.log.InfoContext(ctx, "transaction reversed",
		slog.String("user_id", p.UserID.String()),
		slog.String("original_id", orig.ID.String()),
		slog.String("reversal_id", created.ID.String()),
	)

	return ReversalResult{Reversal: created, Warning: warning}, nil
}

// entrySnapshot is the audit representation of a ledger entry.
func entrySnapshot(t domain.Transaction) map[string]any {
	m := map[string]any{
		"id":           t.ID.String(),
		"outlet_id":    t.OutletID.String(),
		"ledger_date":  t.LedgerDate.Format(domain.DateLayout),
		"type":         t.Type.String(),
		"category":     t.Category,
		"payment_mode": t.PaymentMode.String(),
		"amount":       t.Amount.StringFixed(2),
		"is_reversal":  t.IsReversal,
	}
	if t.ParentTransactionID != nil {
		m["parent_transaction_id"] = t.ParentTransactionID.String()
	}
	return m
}
