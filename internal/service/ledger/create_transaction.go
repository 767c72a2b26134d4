package ledger

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/sahakar/accounts-backend/internal/domain"
)

// CreateTransaction posts a new ledger entry. Entries carrying an idempotency
// key that was already used return the stored entry instead of a duplicate.
func (s *Service) CreateTransaction(ctx context.Context, input CreateTransactionInput) (CreateTransactionResult, error) {
	p, err := principal(ctx)
	if err != nil {
		return CreateTransactionResult{}, err
	}
	if err := input.Validate(); err != nil {
		return CreateTransactionResult{}, err
	}
	if p.Role.IsReadOnly() {
		s.decide("create", domain.ErrForbidden)
		return CreateTransactionResult{}, domain.NewPermissionError(ReasonAuditor)
	}
	if !p.CanAccessOutlet(input.OutletID) {
		s.decide("create", domain.ErrForbidden)
		return CreateTransactionResult{}, domain.NewPermissionError(domain.ReasonOutletAccess)
	}

	var key *string
	if k := strings.TrimSpace(input.IdempotencyKey); k != "" {
		key = &k
		existing, getErr := s.txs.GetByIdempotencyKey(ctx, k)
		switch {
		case getErr == nil:
			return CreateTransactionResult{Transaction: existing, Replayed: true}, nil
		case !errors.Is(getErr, domain.ErrNotFound):
			return CreateTransactionResult{}, fmt.Errorf("get by idempotency key: %w", getErr)
		}
	}

	ledgerDate := s.day.Date(s.now())
	if input.LedgerDate != nil {
		ledgerDate = domain.CivilDate(*input.LedgerDate)
	}

	lock, err := s.locks.Get(ctx, input.OutletID, ledgerDate)
	if err != nil {
		return CreateTransactionResult{}, fmt.Errorf("get day lock: %w", err)
	}
	if lock.IsLocked {
		s.decide("create", domain.ErrForbidden)
		return CreateTransactionResult{}, domain.NewPermissionError(ReasonDayLocked)
	}
	s.decide("create", nil)

	entry := domain.Transaction{
		OutletID:       input.OutletID,
		LedgerDate:     ledgerDate,
		Type:           input.Type,
		Category:       strings.TrimSpace(input.Category),
		PaymentMode:    input.PaymentMode,
		Amount:         input.Amount,
		Description:    strings.TrimSpace(input.Description),
		CreatedBy:      p.UserID,
		IdempotencyKey: key,
	}

	rec, err := s.records.GetByOutletDate(ctx, input.OutletID, ledgerDate)
	switch {
	case err == nil:
		entry.DailyRecordID = &rec.ID
	case !errors.Is(err, domain.ErrNotFound):
		return CreateTransactionResult{}, fmt.Errorf("get daily record: %w", err)
	}

	created, replayed, err := s.postEntry(ctx, entry)
	if err != nil {
		return CreateTransactionResult{}, err
	}
	if replayed {
		return CreateTransactionResult{Transaction: created, Replayed: true}, nil
	}

	warning := s.writeAudit(ctx, domain.AuditRecord{
		UserID:     p.UserID,
		Action:     domain.AuditActionTransactionCreate,
		EntityType: domain.EntityTypeTransaction,
		EntityID:   created.ID.String(),
		NewData:    entrySnapshot(created),
		Severity:   domain.AuditSeverityNormal,
	})

	s.log.InfoContext(ctx, "transaction created",
		slog.String("user_id", p.UserID.String()),
		slog.String("transaction_id", created.ID.String()),
		slog.String("type", created.Type.String()),
	)

	return CreateTransactionResult{Transaction: created, Warning: warning}, nil
}
