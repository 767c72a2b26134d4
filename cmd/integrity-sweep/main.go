// Command integrity-sweep scans every active outlet for anomalies and
// verifies last month's closure snapshots on a cron schedule in the
// organization's timezone. With -once it runs a single sweep and exits.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/robfig/cron/v3"

	"github.com/sahakar/accounts-backend/internal/adapter/postgres"
	auditrepo "github.com/sahakar/accounts-backend/internal/adapter/postgres/audit"
	closurerepo "github.com/sahakar/accounts-backend/internal/adapter/postgres/closure"
	"github.com/sahakar/accounts-backend/internal/adapter/postgres/dailyrecord"
	"github.com/sahakar/accounts-backend/internal/app"
	"github.com/sahakar/accounts-backend/internal/app/sweep"
	"github.com/sahakar/accounts-backend/internal/config"
	"github.com/sahakar/accounts-backend/internal/domain"
	"github.com/sahakar/accounts-backend/internal/metrics"
	"github.com/sahakar/accounts-backend/internal/service/anomaly"
	"github.com/sahakar/accounts-backend/internal/service/closure"
	"github.com/sahakar/accounts-backend/internal/service/ledger"
)

func main() {
	once := flag.Bool("once", false, "run a single sweep and exit")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	m := metrics.New()
	records := dailyrecord.New(pool)
	day := ledger.NewBusinessDay(cfg.Ledger.Location, cfg.Ledger.DayStartHour, cfg.Ledger.DutyEndHour)

	sweeper := sweep.New(logger, day, records,
		anomaly.NewService(logger, records, m),
		closure.NewService(logger, closurerepo.New(pool), records, auditrepo.New(pool), nil, m,
			domain.HashAlgorithm(cfg.Closure.HashAlgorithm)),
	)

	run := func() error {
		runCtx, cancel := context.WithTimeout(ctx, cfg.Scheduler.SweepTimeout)
		defer cancel()
		_, err := sweeper.Run(runCtx)
		return err
	}

	if *once {
		if err := run(); err != nil {
			logger.Error("integrity sweep failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
		return
	}

	c := cron.New(cron.WithLocation(cfg.Ledger.Location), cron.WithSeconds())
	if _, err := c.AddFunc(cfg.Scheduler.SweepSpec, func() {
		if err := run(); err != nil {
			logger.Error("integrity sweep failed", slog.String("error", err.Error()))
		}
	}); err != nil {
		logger.Error("schedule integrity sweep",
			slog.String("spec", cfg.Scheduler.SweepSpec),
			slog.String("error", err.Error()),
		)
		os.Exit(1)
	}

	c.Start()
	logger.Info("integrity sweep scheduled",
		slog.String("spec", cfg.Scheduler.SweepSpec),
		slog.String("timezone", cfg.Ledger.Timezone),
	)

	<-ctx.Done()
	logger.Info("stopping scheduler")
	<-c.Stop().Done()
}
