package ledger

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/sahakar/accounts-backend/internal/domain"
)

// TransactionPermission reports what the caller may do with an existing
// entry, taking the day lock into account.
func (s *Service) TransactionPermission(ctx context.Context, transactionID uuid.UUID) (EditDecision, error) {
	p, err := principal(ctx)
	if err != nil {
		return EditDecision{}, err
	}

	t, err := s.txs.GetByID(ctx, transactionID)
	if err != nil {
		return EditDecision{}, fmt.Errorf("get transaction: %w", err)
	}
	if !p.CanAccessOutlet(t.OutletID) {
		return deny(domain.ReasonOutletAccess), nil
	}

	lock, err := s.locks.Get(ctx, t.OutletID, domain.CivilDate(t.PostingDate()))
	if err != nil {
		return EditDecision{}, fmt.Errorf("get day lock: %w", err)
	}

	decision := CheckEntryPermission(t.PostingDate(), p.Role, lock.IsLocked, s.now())
	s.metrics.LedgerDecision("permission", decision.Allowed)
	return decision, nil
}
