package ledger

import (
	"context"
	"errors"
	"fmt"

	"github.com/sahakar/accounts-backend/internal/domain"
)

// postEntry inserts t and folds it into its daily record in one database
// transaction. When the idempotency key is already taken the stored entry is
// returned with replayed set.
func (s *Service) postEntry(ctx context.Context, t domain.Transaction) (created domain.Transaction, replayed bool, err error) {
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		c, createErr := s.txs.Create(txCtx, t)
		if createErr != nil {
			return fmt.Errorf("create transaction: %w", createErr)
		}
		if c.DailyRecordID != nil {
			if applyErr := s.records.ApplyTransaction(txCtx, *c.DailyRecordID, c); applyErr != nil {
				return fmt.Errorf("apply to daily record: %w", applyErr)
			}
		}
		created = c
		return nil
	})

	if errors.Is(err, domain.ErrAlreadyExists) && t.IdempotencyKey != nil {
		existing, getErr := s.txs.GetByIdempotencyKey(ctx, *t.IdempotencyKey)
		if getErr != nil {
			return domain.Transaction{}, false, fmt.Errorf("get by idempotency key: %w", getErr)
		}
		return existing, true, nil
	}
	if err != nil {
		return domain.Transaction{}, false, err
	}
	return created, false, nil
}
