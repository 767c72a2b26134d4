package anomaly

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/sahakar/accounts-backend/internal/domain"
)

type dailyRecordRepo interface {
	ListByOutletRange(ctx context.Context, outletID uuid.UUID, from, to time.Time) ([]domain.DailyRecord, error)
}

type findingRecorder interface {
	AnomalyFinding(kind string)
}

// Service runs the anomaly scanner over stored daily records.
type Service struct {
	records dailyRecordRepo
	metrics findingRecorder
	log     *slog.Logger
}

// NewService creates a new Anomaly service.
func NewService(log *slog.Logger, records dailyRecordRepo, metrics findingRecorder) *Service {
	return &Service{
		records: records,
		metrics: metrics,
		log:     log.With("service", "anomaly"),
	}
}

// ScanMonth scans the stored records of one outlet-month. Outlet access is
// enforced by the caller.
func (s *Service) ScanMonth(ctx context.Context, outletID uuid.UUID, month domain.Month) (domain.ScanResult, error) {
	recs, err := s.records.ListByOutletRange(ctx, outletID, month.Start(), month.End())
	if err != nil {
		return domain.ScanResult{}, fmt.Errorf("list daily records: %w", err)
	}

	days := make([]DayFigures, len(recs))
	for i, r := range recs {
		days[i] = FromRecord(r)
	}

	return s.ScanFigures(ctx, outletID, month, days), nil
}

// ScanFigures scans caller-supplied figures and records metrics.
func (s *Service) ScanFigures(ctx context.Context, outletID uuid.UUID, month domain.Month, days []DayFigures) domain.ScanResult {
	result := Scan(month, days)
	for _, f := range result.Anomalies {
		s.metrics.AnomalyFinding(f.Type.String())
	}

	s.log.DebugContext(ctx, "anomaly scan",
		slog.String("outlet_id", outletID.String()),
		slog.String("month", month.String()),
		slog.Int("days", len(days)),
		slog.Int("findings", len(result.Anomalies)),
	)
	return result
}
