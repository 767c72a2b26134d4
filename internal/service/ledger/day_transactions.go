package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/sahakar/accounts-backend/internal/domain"
)

// DayTransactions returns the outlet's entries for one ledger date in the
// order they were posted, reversals included.
func (s *Service) DayTransactions(ctx context.Context, outletID uuid.UUID, date time.Time) ([]domain.Transaction, error) {
	p, err := principal(ctx)
	if err != nil {
		return nil, err
	}
	if !p.CanAccessOutlet(outletID) {
		return nil, domain.NewPermissionError(domain.ReasonOutletAccess)
	}

	txs, err := s.txs.ListByOutletDate(ctx, outletID, domain.CivilDate(date))
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	if txs == nil {
		txs = []domain.Transaction{}
	}
	return txs, nil
}
