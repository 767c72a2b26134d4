package closure

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/sahakar/accounts-backend/internal/domain"
	"github.com/sahakar/accounts-backend/pkg/ctxutil"
)

// ReasonReopenRole is returned when the caller may not reopen months.
const ReasonReopenRole = "Only head office accountants and superadmins can reopen months"

// Reopen marks the newest sealed snapshot of a month as reopened. The
// snapshot itself is kept so Verify keeps checking it; sealing again adds a
// newer row.
func (s *Service) Reopen(ctx context.Context, input ReopenInput) (domain.ClosureSnapshot, error) {
	p, ok := ctxutil.PrincipalFromCtx(ctx)
	if !ok {
		return domain.ClosureSnapshot{}, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return domain.ClosureSnapshot{}, err
	}
	if !p.Role.CanCloseMonths() {
		return domain.ClosureSnapshot{}, domain.NewPermissionError(ReasonReopenRole)
	}

	reason := strings.TrimSpace(input.Reason)

	var snap domain.ClosureSnapshot
	reopen := func(ctx context.Context) error {
		latest, err := s.closures.Latest(ctx, input.OutletID, input.Month)
		if errors.Is(err, domain.ErrNotFound) {
			return domain.NewValidationError("month", "Month is not closed")
		}
		if err != nil {
			return fmt.Errorf("latest snapshot: %w", err)
		}
		if latest.IsReopened() {
			return domain.NewValidationError("month", "Month is already open")
		}

		snap, err = s.closures.MarkReopened(ctx, latest.ID, p.UserID, s.now().UTC(), reason)
		if err != nil {
			return fmt.Errorf("mark reopened: %w", err)
		}
		return nil
	}

	var err error
	if s.locks != nil {
		err = s.locks.WithLock(ctx, lockKey(input.OutletID, input.Month), reopen)
	} else {
		err = reopen(ctx)
	}
	if err != nil {
		return domain.ClosureSnapshot{}, err
	}

	info := ctxutil.ClientInfoFromCtx(ctx)
	if auditErr := s.audit.Log(ctx, domain.AuditRecord{
		UserID:     p.UserID,
		Action:     domain.AuditActionMonthReopen,
		EntityType: domain.EntityTypeMonthlyClosure,
		EntityID:   snap.ID.String(),
		OldData:    map[string]any{"status": "closed"},
		NewData: map[string]any{
			"status":    snap.Status(),
			"outlet_id": input.OutletID.String(),
			"month":     input.Month.Key(),
		},
		Severity:  domain.AuditSeverityCritical,
		Reason:    &reason,
		IPAddress: info.IP,
		UserAgent: info.UserAgent,
	}); auditErr != nil {
		s.log.WarnContext(ctx, "audit write failed",
			slog.String("action", domain.AuditActionMonthReopen.String()),
			slog.String("error", auditErr.Error()),
		)
	}

	s.log.InfoContext(ctx, "month reopened",
		slog.String("user_id", p.UserID.String()),
		slog.String("outlet_id", input.OutletID.String()),
		slog.String("month", input.Month.String()),
		slog.String("snapshot_id", snap.ID.String()),
	)

	return snap, nil
}
