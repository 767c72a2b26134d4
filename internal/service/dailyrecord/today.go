package dailyrecord

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sahakar/accounts-backend/internal/domain"
)

// Today returns the outlet's record for the current business date. A
// missing record is created as a draft whose opening and closing balances
// carry over the previous day's closing cash and UPI. Read-only callers never
// create records and get domain.ErrNotFound instead.
func (s *Service) Today(ctx context.Context, outletID uuid.UUID) (domain.DailyRecord, error) {
	p, err := principal(ctx)
	if err != nil {
		return domain.DailyRecord{}, err
	}
	if !p.CanAccessOutlet(outletID) {
		return domain.DailyRecord{}, domain.NewPermissionError(domain.ReasonOutletAccess)
	}

	date := s.calendar.Date(s.now())

	rec, err := s.records.GetByOutletDate(ctx, outletID, date)
	switch {
	case err == nil:
		return rec, nil
	case !errors.Is(err, domain.ErrNotFound):
		return domain.DailyRecord{}, fmt.Errorf("get daily record: %w", err)
	}
	if p.Role.IsReadOnly() {
		return domain.DailyRecord{}, err
	}

	cash, upi := decimal.Zero, decimal.Zero
	prev, err := s.records.GetByOutletDate(ctx, outletID, date.AddDate(0, 0, -1))
	switch {
	case err == nil:
		cash, upi = prev.ClosingCash, prev.ClosingUPI
	case !errors.Is(err, domain.ErrNotFound):
		return domain.DailyRecord{}, fmt.Errorf("get previous daily record: %w", err)
	}

	created, err := s.records.Create(ctx, domain.DailyRecord{
		OutletID:     outletID,
		Date:         date,
		OpeningCash:  cash,
		OpeningUPI:   upi,
		ClosingCash:  cash,
		ClosingUPI:   upi,
		TotalIncome:  decimal.Zero,
		TotalExpense: decimal.Zero,
		Status:       domain.DayStatusDraft,
	})
	if errors.Is(err, domain.ErrAlreadyExists) {
		// Lost the race against a concurrent request for the same day.
		s.log.DebugContext(ctx, "daily record created concurrently",
			slog.String("outlet_id", outletID.String()),
			slog.String("date", date.Format(domain.DateLayout)),
		)
		return s.records.GetByOutletDate(ctx, outletID, date)
	}
	if err != nil {
		return domain.DailyRecord{}, fmt.Errorf("create daily record: %w", err)
	}

	s.log.InfoContext(ctx, "daily record opened",
		slog.String("outlet_id", outletID.String()),
		slog.String("date", date.Format(domain.DateLayout)),
		slog.String("opening_cash", cash.StringFixed(2)),
	)
	return created, nil
}
