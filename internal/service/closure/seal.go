package closure

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sahakar/accounts-backend/internal/domain"
	"github.com/sahakar/accounts-backend/pkg/ctxutil"
)

// ReasonCloseRole is returned when the caller may not close months.
const ReasonCloseRole = "Only head office accountants and superadmins can close months"

// Seal aggregates the month's daily records into a snapshot, hashes it and
// stores it as a new row. Earlier snapshots are kept; Verify always checks
// the newest.
func (s *Service) Seal(ctx context.Context, input SealInput) (domain.ClosureSnapshot, error) {
	p, ok := ctxutil.PrincipalFromCtx(ctx)
	if !ok {
		return domain.ClosureSnapshot{}, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return domain.ClosureSnapshot{}, err
	}
	if !p.Role.CanCloseMonths() {
		return domain.ClosureSnapshot{}, domain.NewPermissionError(ReasonCloseRole)
	}

	var snap domain.ClosureSnapshot
	seal := func(ctx context.Context) error {
		recs, err := s.records.ListByOutletRange(ctx, input.OutletID, input.Month.Start(), input.Month.End())
		if err != nil {
			return fmt.Errorf("list daily records: %w", err)
		}

		summary := Summarize(recs)
		summary.ClosedAt = s.now().UTC()
		summary.ClosedBy = p.UserID

		raw, err := json.Marshal(summary)
		if err != nil {
			return fmt.Errorf("marshal snapshot: %w", err)
		}
		canonical, err := Canonicalize(raw)
		if err != nil {
			return err
		}
		hash, err := Digest(s.algorithm, canonical, input.Month.Key(), input.OutletID.String())
		if err != nil {
			return err
		}

		snap, err = s.closures.Create(ctx, domain.ClosureSnapshot{
			OutletID:      input.OutletID,
			Month:         input.Month,
			Snapshot:      canonical,
			SnapshotHash:  hash,
			HashAlgorithm: s.algorithm,
			CreatedBy:     p.UserID,
		})
		if err != nil {
			return fmt.Errorf("create snapshot: %w", err)
		}
		return nil
	}

	var err error
	if s.locks != nil {
		err = s.locks.WithLock(ctx, lockKey(input.OutletID, input.Month), seal)
	} else {
		err = seal(ctx)
	}
	if err != nil {
		return domain.ClosureSnapshot{}, err
	}

	info := ctxutil.ClientInfoFromCtx(ctx)
	if auditErr := s.audit.Log(ctx, domain.AuditRecord{
		UserID:     p.UserID,
		Action:     domain.AuditActionMonthClose,
		EntityType: domain.EntityTypeMonthlyClosure,
		EntityID:   snap.ID.String(),
		NewData: map[string]any{
			"outlet_id":      input.OutletID.String(),
			"month":          input.Month.Key(),
			"snapshot_hash":  snap.SnapshotHash,
			"hash_algorithm": string(snap.HashAlgorithm),
		},
		Severity:  domain.AuditSeverityCritical,
		IPAddress: info.IP,
		UserAgent: info.UserAgent,
	}); auditErr != nil {
		s.log.WarnContext(ctx, "audit write failed",
			slog.String("action", domain.AuditActionMonthClose.String()),
			slog.String("error", auditErr.Error()),
		)
	}

	s.log.InfoContext(ctx, "month closed",
		slog.String("user_id", p.UserID.String()),
		slog.String("outlet_id", input.OutletID.String()),
		slog.String("month", input.Month.String()),
		slog.String("snapshot_id", snap.ID.String()),
	)

	return snap, nil
}

// lockKey serializes seal and reopen of one outlet-month across instances.
func lockKey(outletID uuid.UUID, month domain.Month) string {
	return "closure:" + outletID.String() + ":" + month.Key()
}

// Summarize totals the records of a month. recs must be ordered by date:
// opening cash comes from the first record and closing cash from the last.
func Summarize(recs []domain.DailyRecord) Summary {
	sum := Summary{
		TotalIncome:  decimal.Zero,
		TotalExpense: decimal.Zero,
		OpeningCash:  decimal.Zero,
		ClosingCash:  decimal.Zero,
		DaysCount:    len(recs),
	}
	for _, r := range recs {
		sum.TotalIncome = sum.TotalIncome.Add(r.TotalIncome)
		sum.TotalExpense = sum.TotalExpense.Add(r.TotalExpense)
	}
	if len(recs) > 0 {
		sum.OpeningCash = recs[0].OpeningCash
		sum.ClosingCash = recs[len(recs)-1].ClosingCash
	}
	return sum
}
