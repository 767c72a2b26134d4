package dailyrecord

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/sahakar/accounts-backend/internal/domain"
	"github.com/sahakar/accounts-backend/pkg/ctxutil"
)

// Denial reasons returned inside domain.PermissionError.
const (
	ReasonDayLocked = "Day is Locked (Daily Close Completed)"
	ReasonAuditor   = "Auditor: View Only Access"
)

// SubmitResult is the submitted record. Warning is set when the submission
// succeeded but its audit entry could not be written.
type SubmitResult struct {
	Record  domain.DailyRecord
	Warning string
}

// Submit moves a draft record to submitted. Locked days and read-only
// callers are denied; a record that is no longer a draft is a validation
// error.
func (s *Service) Submit(ctx context.Context, recordID uuid.UUID) (SubmitResult, error) {
	p, err := principal(ctx)
	if err != nil {
		return SubmitResult{}, err
	}
	if p.Role.IsReadOnly() {
		return SubmitResult{}, domain.NewPermissionError(ReasonAuditor)
	}

	rec, err := s.records.GetByID(ctx, recordID)
	if err != nil {
		return SubmitResult{}, fmt.Errorf("get daily record: %w", err)
	}
	if !p.CanAccessOutlet(rec.OutletID) {
		return SubmitResult{}, domain.NewPermissionError(domain.ReasonOutletAccess)
	}

	lock, err := s.locks.Get(ctx, rec.OutletID, rec.Date)
	if err != nil {
		return SubmitResult{}, fmt.Errorf("get day lock: %w", err)
	}
	if lock.IsLocked {
		return SubmitResult{}, domain.NewPermissionError(ReasonDayLocked)
	}
	if rec.Status != domain.DayStatusDraft {
		return SubmitResult{}, alreadySubmitted()
	}

	submitted, err := s.records.Submit(ctx, recordID, s.now().UTC())
	if errors.Is(err, domain.ErrConflict) {
		return SubmitResult{}, alreadySubmitted()
	}
	if err != nil {
		return SubmitResult{}, fmt.Errorf("submit daily record: %w", err)
	}

	warning := s.writeAudit(ctx, domain.AuditRecord{
		UserID:     p.UserID,
		Action:     domain.AuditActionDaySubmit,
		EntityType: domain.EntityTypeDailyRecord,
		EntityID:   submitted.ID.String(),
		OldData:    map[string]any{"status": rec.Status.String()},
		NewData: map[string]any{
			"status":        submitted.Status.String(),
			"total_income":  submitted.TotalIncome.StringFixed(2),
			"total_expense": submitted.TotalExpense.StringFixed(2),
			"closing_cash":  submitted.ClosingCash.StringFixed(2),
			"closing_upi":   submitted.ClosingUPI.StringFixed(2),
		},
		Severity: domain.AuditSeverityNormal,
	})

	s.log.InfoContext(ctx, "daily record submitted",
		slog.String("user_id", p.UserID.String()),
		slog.String("record", submitted.Key()),
	)

	return SubmitResult{Record: submitted, Warning: warning}, nil
}

func alreadySubmitted() error {
	return domain.NewValidationError("status", "Record already submitted")
}

func (s *Service) writeAudit(ctx context.Context, record domain.AuditRecord) string {
	info := ctxutil.ClientInfoFromCtx(ctx)
	record.IPAddress = info.IP
	record.UserAgent = info.UserAgent

	if err := s.audit.Log(ctx, record); err != nil {
		s.log.WarnContext(ctx, "audit write failed",
			slog.String("action", record.Action.String()),
			slog.String("entity_id", record.EntityID),
			slog.String("error", err.Error()),
		)
		return "audit log write failed"
	}
	return ""
}
