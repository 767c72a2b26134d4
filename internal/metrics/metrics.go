// Package metrics holds the Prometheus collectors of the service. Each
// process owns a private registry so tests can build as many as they like.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "accounts"

// Metrics groups HTTP and ledger integrity collectors.
type Metrics struct {
	registry *prometheus.Registry

	HTTPRequestsTotal    *prometheus.CounterVec
	HTTPRequestDuration  *prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.Gauge

	LedgerDecisions      *prometheus.CounterVec
	AnomalyFindings      *prometheus.CounterVec
	ClosureVerifications *prometheus.CounterVec
	RateLimited          *prometheus.CounterVec
}

// New creates a Metrics instance with Go and process collectors registered.
func New() *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	m := &Metrics{registry: registry}

	m.HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)
	m.HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
		},
		[]string{"method", "route"},
	)
	m.HTTPRequestsInFlight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "http_requests_in_flight",
			Help:      "Number of HTTP requests currently being processed",
		},
	)
	m.LedgerDecisions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "ledger",
			Name:      "decisions_total",
			Help:      "Ledger mutation guard decisions by operation and outcome",
		},
		[]string{"operation", "outcome"},
	)
	m.AnomalyFindings = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "anomaly",
			Name:      "findings_total",
			Help:      "Anomaly scanner findings by type",
		},
		[]string{"type"},
	)
	m.ClosureVerifications = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "closure",
			Name:      "verifications_total",
			Help:      "Closure snapshot verifications by result",
		},
		[]string{"result"},
	)
	m.RateLimited = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rate_limited_total",
			Help:      "Requests rejected by the rate limiter",
		},
		[]string{"class"},
	)

	registry.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.HTTPRequestsInFlight,
		m.LedgerDecisions,
		m.AnomalyFindings,
		m.ClosureVerifications,
		m.RateLimited,
	)

	return m
}

// Registry exposes the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// RecordHTTPRequest records one completed request.
func (m *Metrics) RecordHTTPRequest(method, route string, status int, duration time.Duration) {
	m.HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// LedgerDecision records an allow/deny outcome of a guarded operation.
func (m *Metrics) LedgerDecision(operation string, allowed bool) {
	outcome := "denied"
	if allowed {
		outcome = "allowed"
	}
	m.LedgerDecisions.WithLabelValues(operation, outcome).Inc()
}

// AnomalyFinding records one scanner finding.
func (m *Metrics) AnomalyFinding(kind string) {
	m.AnomalyFindings.WithLabelValues(kind).Inc()
}

// ClosureVerification records the result of a snapshot check.
func (m *Metrics) ClosureVerification(valid bool, reason string) {
	result := "valid"
	switch {
	case reason != "":
		result = reason
	case !valid:
		result = "invalid"
	}
	m.ClosureVerifications.WithLabelValues(result).Inc()
}

// RateLimitRejected records a request turned away by the limiter.
func (m *Metrics) RateLimitRejected(class string) {
	m.RateLimited.WithLabelValues(class).Inc()
}
