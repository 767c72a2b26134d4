package dailyrecord

import (
	"context"
	"fmt"
	"slices"

	"github.com/google/uuid"

	"github.com/sahakar/accounts-backend/internal/domain"
)

// List returns the outlet's records for month, newest first.
func (s *Service) List(ctx context.Context, outletID uuid.UUID, month domain.Month) ([]domain.DailyRecord, error) {
	p, err := principal(ctx)
	if err != nil {
		return nil, err
	}
	if !p.CanAccessOutlet(outletID) {
		return nil, domain.NewPermissionError(domain.ReasonOutletAccess)
	}

	recs, err := s.records.ListByOutletRange(ctx, outletID, month.Start(), month.End())
	if err != nil {
		return nil, fmt.Errorf("list daily records: %w", err)
	}
	if recs == nil {
		recs = []domain.DailyRecord{}
	}
	slices.Reverse(recs)
	return recs, nil
}
