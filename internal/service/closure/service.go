package closure

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/sahakar/accounts-backend/internal/domain"
)

type closureRepo interface {
	Create(ctx context.Context, s domain.ClosureSnapshot) (domain.ClosureSnapshot, error)
	Latest(ctx context.Context, outletID uuid.UUID, month domain.Month) (domain.ClosureSnapshot, error)
	MarkReopened(ctx context.Context, id, by uuid.UUID, at time.Time, reason string) (domain.ClosureSnapshot, error)
}

type dailyRecordRepo interface {
	ListByOutletRange(ctx context.Context, outletID uuid.UUID, from, to time.Time) ([]domain.DailyRecord, error)
}

type auditLogger interface {
	Log(ctx context.Context, record domain.AuditRecord) error
}

type locker interface {
	WithLock(ctx context.Context, key string, fn func(ctx context.Context) error) error
}

type verificationRecorder interface {
	ClosureVerification(valid bool, reason string)
}

// Service seals, reopens and verifies monthly closure snapshots.
type Service struct {
	closures  closureRepo
	records   dailyRecordRepo
	audit     auditLogger
	locks     locker
	metrics   verificationRecorder
	algorithm domain.HashAlgorithm
	log       *slog.Logger
	now       func() time.Time
}

// NewService creates a new Closure service. algorithm is used for new seals;
// verification always uses the algorithm stored with the snapshot. locks may
// be nil on single-instance deployments.
func NewService(
	log *slog.Logger,
	closures closureRepo,
	records dailyRecordRepo,
	audit auditLogger,
	locks locker,
	metrics verificationRecorder,
	algorithm domain.HashAlgorithm,
) *Service {
	if algorithm == "" {
		algorithm = domain.HashMD5
	}
	return &Service{
		closures:  closures,
		records:   records,
		audit:     audit,
		locks:     locks,
		metrics:   metrics,
		algorithm: algorithm,
		log:       log.With("service", "closure"),
		now:       time.Now,
	}
}
