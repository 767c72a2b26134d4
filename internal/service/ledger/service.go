package ledger

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

type transactionRepo interface {
	Create(ctx context.Context, t domain.Transaction) (domain.Transaction, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Transaction, error)
	GetByIdempotencyKey(ctx context.Context, key string) (domain.Transaction, error)
	ListByOutletDate(ctx context.Context, outletID uuid.UUID, date time.Time) ([]domain.Transaction, error)
}

type dailyRecordRepo interface {
	GetByOutletDate(ctx context.Context, outletID uuid.UUID, date time.Time) (domain.DailyRecord, error)
	SetStatus(ctx context.Context, outletID uuid.UUID, date time.Time, to domain.DayStatus, from ...domain.DayStatus) (bool, error)
	ApplyTransaction(ctx context.Context, recordID uuid.UUID, t domain.Transaction) error
}

type dayLockRepo interface {
	Get(ctx context.Context, outletID uuid.UUID, date time.Time) (domain.DayLock, error)
	Upsert(ctx context.Context, lock domain.DayLock) (domain.DayLock, bool, error)
}

type auditLogger interface {
	Log(ctx context.Context, record domain.AuditRecord) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type decisionRecorder interface {
	LedgerDecision(operation string, allowed bool)
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service guards every ledger mutation: corrections, day locks and new
// entries.
type Service struct {
	txs     transactionRepo
	records dailyRecordRepo
	locks   dayLockRepo
	audit   auditLogger
	tx      txManager
	metrics decisionRecorder
	day     BusinessDay
	log     *slog.Logger
	now     func() time.Time
}

// NewService creates a new Ledger service.
func NewService(
	log *slog.Logger,
	day BusinessDay,
	txs transactionRepo,
	records dailyRecordRepo,
	locks dayLockRepo,
	audit auditLogger,
	tx txManager,
	metrics decisionRecorder,
) *Service {
	return &Service{
		txs:     txs,
		records: records,
		locks:   locks,
		audit:   audit,
		tx:      tx,
		metrics: metrics,
		day:     day,
		log:     log.With("service", "ledger"),
		now:     time.Now,
	}
}

// BusinessDay returns the calculator the service uses.
func (s *Service) BusinessDay() BusinessDay {
	return s.day
}

// principal returns the caller or domain.ErrUnauthorized.
func principal(ctx context.Context) (ctxutil.Principal, error) {
	p, ok := ctxutil.PrincipalFromCtx(ctx)
	if !ok {
		return ctxutil.Principal{}, domain.ErrUnauthorized
	}
	return p, nil
}

func (s *Service) decide(operation string, err error) {
	s.metrics.LedgerDecision(operation, err == nil)
}

// writeAudit appends an audit record. The primary change has already been
// committed, so a failure is logged and returned as a warning string.
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
