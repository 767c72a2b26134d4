package dailyrecord

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/sahakar/accounts-backend/internal/domain"
	"github.com/sahakar/accounts-backend/pkg/ctxutil"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type dailyRecordRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (domain.DailyRecord, error)
	GetByOutletDate(ctx context.Context, outletID uuid.UUID, date time.Time) (domain.DailyRecord, error)
	ListByOutletRange(ctx context.Context, outletID uuid.UUID, from, to time.Time) ([]domain.DailyRecord, error)
	Create(ctx context.Context, rec domain.DailyRecord) (domain.DailyRecord, error)
	Submit(ctx context.Context, id uuid.UUID, at time.Time) (domain.DailyRecord, error)
}

type dayLockRepo interface {
	Get(ctx context.Context, outletID uuid.UUID, date time.Time) (domain.DayLock, error)
}

type auditLogger interface {
	Log(ctx context.Context, record domain.AuditRecord) error
}

type businessCalendar interface {
	Date(now time.Time) time.Time
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service manages the per-outlet daily books.
type Service struct {
	records  dailyRecordRepo
	locks    dayLockRepo
	audit    auditLogger
	calendar businessCalendar
	log      *slog.Logger
	now      func() time.Time
}

// NewService creates a new daily record service.
func NewService(
	log *slog.Logger,
	calendar businessCalendar,
	records dailyRecordRepo,
	locks dayLockRepo,
	audit auditLogger,
) *Service {
	return &Service{
		records:  records,
		locks:    locks,
		audit:    audit,
		calendar: calendar,
		log:      log.With("service", "dailyrecord"),
		now:      time.Now,
	}
}

func principal(ctx context.Context) (ctxutil.Principal, error) {
	p, ok := ctxutil.PrincipalFromCtx(ctx)
	if !ok {
		return ctxutil.Principal{}, domain.ErrUnauthorized
	}
	return p, nil
}
