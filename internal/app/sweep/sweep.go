// Package sweep runs the scheduled integrity pass over every active outlet:
// an anomaly scan of the current business month and a verification of the
// previous month's closure snapshot.
package sweep

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/sahakar/accounts-backend/internal/domain"
	"github.com/sahakar/accounts-backend/internal/service/closure"
)

type outletLister interface {
	ListOutletIDs(ctx context.Context, since time.Time) ([]uuid.UUID, error)
}

type monthScanner interface {
	ScanMonth(ctx context.Context, outletID uuid.UUID, month domain.Month) (domain.ScanResult, error)
}

type closureVerifier interface {
	Verify(ctx context.Context, outletID uuid.UUID, month domain.Month) (closure.VerifyResult, error)
}

type businessMonth interface {
	Month(now time.Time) domain.Month
}

// Report summarizes one sweep.
type Report struct {
	Outlets  int
	Findings int
	Invalid  int // snapshots whose hash no longer matches
	Unsealed int // outlets without a snapshot for the previous month
	Errors   int
	Duration time.Duration
}

// Sweeper runs integrity sweeps.
type Sweeper struct {
	outlets  outletLister
	scanner  monthScanner
	verifier closureVerifier
	calendar businessMonth
	log      *slog.Logger
	now      func() time.Time
}

// New creates a Sweeper.
func New(log *slog.Logger, calendar businessMonth, outlets outletLister, scanner monthScanner, verifier closureVerifier) *Sweeper {
	return &Sweeper{
		outlets:  outlets,
		scanner:  scanner,
		verifier: verifier,
		calendar: calendar,
		log:      log.With("job", "integrity_sweep"),
		now:      time.Now,
	}
}

// Run sweeps every outlet with records since the start of the previous
// business month. A failure on one outlet is logged and counted; the sweep
// moves on. Only listing failures and cancellation abort the run.
func (s *Sweeper) Run(ctx context.Context) (Report, error) {
	start := s.now()
	current := s.calendar.Month(start)
	previous := current.Prev()

	ids, err := s.outlets.ListOutletIDs(ctx, previous.Start())
	if err != nil {
		return Report{}, fmt.Errorf("list outlets: %w", err)
	}

	rep := Report{Outlets: len(ids)}
	for _, id := range ids {
		if err := ctx.Err(); err != nil {
			rep.Duration = s.now().Sub(start)
			return rep, err
		}
		s.scanOutlet(ctx, id, current, &rep)
		s.verifyOutlet(ctx, id, previous, &rep)
	}

	rep.Duration = s.now().Sub(start)
	s.log.InfoContext(ctx, "integrity sweep completed",
		slog.String("month", current.String()),
		slog.Int("outlets", rep.Outlets),
		slog.Int("findings", rep.Findings),
		slog.Int("invalid_closures", rep.Invalid),
		slog.Int("unsealed", rep.Unsealed),
		slog.Int("errors", rep.Errors),
		slog.Duration("duration", rep.Duration),
	)
	return rep, nil
}

func (s *Sweeper) scanOutlet(ctx context.Context, id uuid.UUID, month domain.Month, rep *Report) {
	res, err := s.scanner.ScanMonth(ctx, id, month)
	if err != nil {
		rep.Errors++
		s.log.ErrorContext(ctx, "anomaly scan failed",
			slog.String("outlet_id", id.String()),
			slog.String("error", err.Error()),
		)
		return
	}
	if len(res.Anomalies) == 0 {
		return
	}

	rep.Findings += len(res.Anomalies)
	kinds := make([]string, len(res.Anomalies))
	for i, f := range res.Anomalies {
		kinds[i] = f.Type.String()
	}
	s.log.WarnContext(ctx, "anomalies found",
		slog.String("outlet_id", id.String()),
		slog.String("month", month.String()),
		slog.Any("types", kinds),
	)
}

func (s *Sweeper) verifyOutlet(ctx context.Context, id uuid.UUID, month domain.Month, rep *Report) {
	res, err := s.verifier.Verify(ctx, id, month)
	switch {
	case err != nil:
		rep.Errors++
		s.log.ErrorContext(ctx, "closure verification failed",
			slog.String("outlet_id", id.String()),
			slog.String("error", err.Error()),
		)
	case res.Valid:
	case res.Reason == closure.ReasonNoSnapshot:
		rep.Unsealed++
		s.log.InfoContext(ctx, "month not sealed",
			slog.String("outlet_id", id.String()),
			slog.String("month", month.String()),
		)
	default:
		rep.Invalid++
		s.log.ErrorContext(ctx, "closure snapshot tampered or unreadable",
			slog.String("outlet_id", id.String()),
			slog.String("month", month.String()),
			slog.String("reason", res.Reason),
		)
	}
}
