package rest

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/sahakar/accounts-backend/internal/config"
	"github.com/sahakar/accounts-backend/internal/transport/middleware"
)

// Handlers groups every endpoint handler mounted by NewRouter.
type Handlers struct {
	Health      *HealthHandler
	Ledger      *LedgerHandler
	DailyRecord *DailyRecordHandler
	Anomaly     *AnomalyHandler
	Closure     *ClosureHandler
	Audit       *AuditHandler
	Metrics     http.Handler
}

// RouterDeps carries the cross-cutting pieces the middleware stack needs.
// RateLimit is skipped when nil.
type RouterDeps struct {
	Logger    *slog.Logger
	CORS      config.CORSConfig
	Auth      middleware.Middleware
	RateLimit middleware.Middleware
	Metrics   middleware.Middleware
}

// NewRouter builds the chi router. Health checks and /metrics sit outside
// authentication and rate limiting; everything else is behind both.
func NewRouter(h Handlers, deps RouterDeps) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.RequestID(),
		middleware.Recovery(deps.Logger),
		middleware.ClientInfo,
		cors.Handler(corsOptions(deps.CORS)),
	)
	r.Use(middleware.Chain(deps.Metrics))

	r.Get("/live", h.Health.Live)
	r.Get("/ready", h.Health.Ready)
	r.Get("/health", h.Health.Health)
	if h.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", h.Metrics)
	}

	r.Group(func(r chi.Router) {
		r.Use(middleware.Chain(deps.Auth, middleware.Logger(deps.Logger), deps.RateLimit))

		r.Get("/ledger/can-edit", h.Ledger.CanEdit)
		r.Get("/transactions/{id}/permission", h.Ledger.Permission)
		r.Post("/transactions/{id}/reversal", h.Ledger.Reverse)
		r.Post("/daily-records/{id}/submit", h.DailyRecord.Submit)
		r.Get("/audit-logs", h.Audit.List)

		r.Route("/outlets/{oid}", func(r chi.Router) {
			r.Use(middleware.OutletScope("oid"))

			r.Get("/daily-records", h.DailyRecord.List)
			r.Get("/daily-records/today", h.DailyRecord.Today)
			r.Post("/transactions", h.Ledger.CreateTransaction)
			r.Get("/days/{date}/transactions", h.Ledger.DayTransactions)
			r.Post("/days/{date}/lock", h.Ledger.LockDay)
			r.Post("/days/{date}/unlock", h.Ledger.UnlockDay)
			r.Get("/anomalies", h.Anomaly.ScanMonth)
			r.Post("/anomalies/scan", h.Anomaly.ScanFigures)
			r.Post("/closures", h.Closure.Seal)
			r.Get("/closures/verify", h.Closure.Verify)
			r.Post("/closures/reopen", h.Closure.Reopen)
		})
	})

	return r
}

func corsOptions(c config.CORSConfig) cors.Options {
	return cors.Options{
		AllowedOrigins:   splitList(c.AllowedOrigins),
		AllowedMethods:   splitList(c.AllowedMethods),
		AllowedHeaders:   splitList(c.AllowedHeaders),
		ExposedHeaders:   []string{middleware.RequestIDHeader, "Retry-After"},
		AllowCredentials: c.AllowCredentials,
		MaxAge:           c.MaxAge,
	}
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
