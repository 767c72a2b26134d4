package ledger

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/sahakar/accounts-backend/internal/domain"
)

// Denial reasons for lock management.
const (
	ReasonLockRole   = "Only head office accountants and admins can lock days"
	ReasonUnlockRole = "Only a superadmin can unlock days"
)

// LockDay closes a business day for mutation. Locking an already locked day
// succeeds and keeps the original locker.
func (s *Service) LockDay(ctx context.Context, input LockDayInput) (LockResult, error) {
	p, err := principal(ctx)
	if err != nil {
		return LockResult{}, err
	}
	if err := input.Validate(); err != nil {
		return LockResult{}, err
	}
	if !p.Role.CanLockDays() {
		s.decide("lock", domain.ErrForbidden)
		return LockResult{}, domain.NewPermissionError(ReasonLockRole)
	}

	date := domain.CivilDate(input.Date)
	now := s.now().UTC()
	actor := p.UserID

	var (
		lock      domain.DayLock
		wasLocked bool
	)
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		l, was, upsertErr := s.locks.Upsert(txCtx, domain.DayLock{
			OutletID: input.OutletID,
			Date:     date,
			IsLocked: true,
			LockedAt: &now,
			LockedBy: &actor,
		})
		if upsertErr != nil {
			return fmt.Errorf("upsert day lock: %w", upsertErr)
		}
		if _, statusErr := s.records.SetStatus(txCtx, input.OutletID, date, domain.DayStatusLocked); statusErr != nil {
			return fmt.Errorf("sync daily record status: %w", statusErr)
		}
		lock, wasLocked = l, was
		return nil
	})
	if err != nil {
		return LockResult{}, err
	}
	s.decide("lock", nil)

	reason := strings.TrimSpace(input.Reason)
	warning := s.writeAudit(ctx, domain.AuditRecord{
		UserID:     actor,
		Action:     domain.AuditActionDayLock,
		EntityType: domain.EntityTypeDayLock,
		EntityID:   lock.Key(),
		OldData:    map[string]any{"is_locked": wasLocked},
		NewData:    lockSnapshot(lock),
		Severity:   domain.AuditSeverityCritical,
		Reason:     &reason,
	})

	s.log.InfoContext(ctx, "day locked",
		slog.String("user_id", actor.String()),
		slog.String("day", lock.Key()),
		slog.Bool("was_locked", wasLocked),
	)

	return LockResult{Success: true, Lock: lock, Warning: warning}, nil
}

// UnlockDay reopens a locked business day. Unlocking a day that was not
// locked succeeds with a warning.
func (s *Service) UnlockDay(ctx context.Context, input UnlockDayInput) (LockResult, error) {
	p, err := principal(ctx)
	if err != nil {
		return LockResult{}, err
	}
	if err := input.Validate(); err != nil {
		return LockResult{}, err
	}
	if !p.Role.CanUnlockDays() {
		s.decide("unlock", domain.ErrForbidden)
		return LockResult{}, domain.NewPermissionError(ReasonUnlockRole)
	}

	date := domain.CivilDate(input.Date)

	var (
		lock      domain.DayLock
		wasLocked bool
	)
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		l, was, upsertErr := s.locks.Upsert(txCtx, domain.DayLock{
			OutletID: input.OutletID,
			Date:     date,
			IsLocked: false,
		})
		if upsertErr != nil {
			return fmt.Errorf("upsert day lock: %w", upsertErr)
		}
		if _, statusErr := s.records.SetStatus(txCtx, input.OutletID, date,
			domain.DayStatusSubmitted, domain.DayStatusLocked); statusErr != nil {
			return fmt.Errorf("sync daily record status: %w", statusErr)
		}
		lock, wasLocked = l, was
		return nil
	})
	if err != nil {
		return LockResult{}, err
	}
	s.decide("unlock", nil)

	var warnings []string
	if !wasLocked {
		warnings = append(warnings, "day was not locked")
	}

	reason := strings.TrimSpace(input.Reason)
	if w := s.writeAudit(ctx, domain.AuditRecord{
		UserID:     p.UserID,
		Action:     domain.AuditActionDayUnlock,
		EntityType: domain.EntityTypeDayLock,
		EntityID:   lock.Key(),
		OldData:    map[string]any{"is_locked": wasLocked},
		NewData:    lockSnapshot(lock),
		Severity:   domain.AuditSeverityCritical,
		Reason:     &reason,
	}); w != "" {
		warnings = append(warnings, w)
	}

	s.log.WarnContext(ctx, "day unlocked",
		slog.String("user_id", p.UserID.String()),
		slog.String("day", lock.Key()),
		slog.String("reason", reason),
	)

	return LockResult{Success: true, Lock: lock, Warning: strings.Join(warnings, "; ")}, nil
}

func lockSnapshot(l domain.DayLock) map[string]any {
	m := map[string]any{
		"outlet_id": l.OutletID.String(),
		"date":      l.Date.Format(domain.DateLayout),
		"is_locked": l.IsLocked,
	}
	if l.LockedBy != nil {
		m["locked_by"] = l.LockedBy.String()
	}
	return m
}
