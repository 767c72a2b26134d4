package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/sahakar/accounts-backend/internal/adapter/postgres"
	auditrepo "github.com/sahakar/accounts-backend/internal/adapter/postgres/audit"
	closurerepo "github.com/sahakar/accounts-backend/internal/adapter/postgres/closure"
	dailyrecordrepo "github.com/sahakar/accounts-backend/internal/adapter/postgres/dailyrecord"
	"github.com/sahakar/accounts-backend/internal/adapter/postgres/daylock"
	"github.com/sahakar/accounts-backend/internal/adapter/postgres/transaction"
	"github.com/sahakar/accounts-backend/internal/adapter/redis"
	"github.com/sahakar/accounts-backend/internal/auth"
	"github.com/sahakar/accounts-backend/internal/config"
	"github.com/sahakar/accounts-backend/internal/domain"
	"github.com/sahakar/accounts-backend/internal/metrics"
	"github.com/sahakar/accounts-backend/internal/service/anomaly"
	"github.com/sahakar/accounts-backend/internal/service/closure"
	"github.com/sahakar/accounts-backend/internal/service/dailyrecord"
	"github.com/sahakar/accounts-backend/internal/service/ledger"
	"github.com/sahakar/accounts-backend/internal/transport/middleware"
	"github.com/sahakar/accounts-backend/internal/transport/rest"
)

const (
	rateLimitKeyPrefix = "accounts:rl:"
	sealLockKeyPrefix  = "accounts:seal:"
)

// Run is the application entry point. It loads configuration, connects to
// PostgreSQL (and Redis when configured), wires the services and serves HTTP
// until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("timezone", cfg.Ledger.Timezone),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	var rdb *goredis.Client
	if cfg.Redis.Enabled() {
		rdb, err = redis.NewClient(ctx, cfg.Redis)
		if err != nil {
			return err
		}
		defer rdb.Close()
		logger.Info("redis connected", slog.String("addr", cfg.Redis.Addr))
	}

	m := metrics.New()

	// Repositories
	txRepo := transaction.New(pool)
	recordRepo := dailyrecordrepo.New(pool)
	lockRepo := daylock.New(pool)
	auditRepo := auditrepo.New(pool)
	closureRepo := closurerepo.New(pool)
	txm := postgres.NewTxManager(pool)

	// Services
	day := ledger.NewBusinessDay(cfg.Ledger.Location, cfg.Ledger.DayStartHour, cfg.Ledger.DutyEndHour)

	var sealLocks *redis.Locker
	if rdb != nil {
		sealLocks = redis.NewLocker(rdb, sealLockKeyPrefix, cfg.Closure.SealLockTTL)
	}

	ledgerSvc := ledger.NewService(logger, day, txRepo, recordRepo, lockRepo, auditRepo, txm, m)
	recordSvc := dailyrecord.NewService(logger, day, recordRepo, lockRepo, auditRepo)
	anomalySvc := anomaly.NewService(logger, recordRepo, m)
	closureSvc := closure.NewService(logger, closureRepo, recordRepo, auditRepo, sealLocks, m,
		domain.HashAlgorithm(cfg.Closure.HashAlgorithm))

	// Transport
	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	rateLimit, stopLimiter := newRateLimit(cfg.RateLimit, rdb, m, logger)
	defer stopLimiter()

	components := []rest.Component{{Name: "database", Pinger: pool}}
	if rdb != nil {
		components = append(components, rest.Component{
			Name:   "redis",
			Pinger: rest.PingFunc(func(ctx context.Context) error { return rdb.Ping(ctx).Err() }),
		})
	}

	handler := rest.NewRouter(rest.Handlers{
		Health:      rest.NewHealthHandler(BuildVersion(), components...),
		Ledger:      rest.NewLedgerHandler(ledgerSvc, logger),
		DailyRecord: rest.NewDailyRecordHandler(recordSvc, day, logger),
		Anomaly:     rest.NewAnomalyHandler(anomalySvc, day, logger),
		Closure:     rest.NewClosureHandler(closureSvc, logger),
		Audit:       rest.NewAuditHandler(auditRepo, logger),
		Metrics:     m.Handler(),
	}, rest.RouterDeps{
		Logger:    logger,
		CORS:      cfg.CORS,
		Auth:      middleware.Auth(jwtManager),
		RateLimit: rateLimit,
		Metrics:   middleware.Metrics(m),
	})

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	return serve(ctx, srv, cfg.Server.ShutdownTimeout, logger)
}

// newRateLimit builds the rate limiting middleware for the configured
// backend. The returned stop func releases background resources.
func newRateLimit(cfg config.RateLimitConfig, rdb *goredis.Client, m *metrics.Metrics, logger *slog.Logger) (middleware.Middleware, func()) {
	if !cfg.Enabled {
		logger.Warn("rate limiting disabled")
		return nil, func() {}
	}

	policy := middleware.RateLimitPolicy{
		Reads:  cfg.ReadsPerWindow,
		Writes: cfg.WritesPerWindow,
		Window: cfg.Window,
	}

	if cfg.Backend == "redis" && rdb != nil {
		limiter := redis.NewLimiter(rdb, rateLimitKeyPrefix)
		return middleware.RateLimit(limiter, policy, m, logger), func() {}
	}

	limiter := middleware.NewMemoryLimiter(cfg.SweepInterval)
	return middleware.RateLimit(limiter, policy, m, logger), limiter.Stop
}

func serve(ctx context.Context, srv *http.Server, shutdownTimeout time.Duration, logger *slog.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down", slog.Duration("timeout", shutdownTimeout))

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	logger.Info("server stopped")
	return nil
}
