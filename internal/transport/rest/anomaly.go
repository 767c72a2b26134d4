package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/sahakar/accounts-backend/internal/domain"
	"github.com/sahakar/accounts-backend/internal/service/anomaly"
)

type anomalyService interface {
	ScanMonth(ctx context.Context, outletID uuid.UUID, month domain.Month) (domain.ScanResult, error)
	ScanFigures(ctx context.Context, outletID uuid.UUID, month domain.Month, days []anomaly.DayFigures) domain.ScanResult
}

// businessMonth resolves the current business month of the organization.
type businessMonth interface {
	Month(now time.Time) domain.Month
}

// AnomalyHandler serves the anomaly scanner endpoints.
type AnomalyHandler struct {
	svc      anomalyService
	calendar businessMonth
	log      *slog.Logger
}

// NewAnomalyHandler creates an AnomalyHandler.
func NewAnomalyHandler(svc anomalyService, calendar businessMonth, logger *slog.Logger) *AnomalyHandler {
	return &AnomalyHandler{svc: svc, calendar: calendar, log: logger.With("handler", "anomaly")}
}

// ScanMonth handles GET /outlets/{oid}/anomalies?month=YYYY-MM.
func (h *AnomalyHandler) ScanMonth(w http.ResponseWriter, r *http.Request) {
	outletID, month, ok := h.target(w, r)
	if !ok {
		return
	}
	res, err := h.svc.ScanMonth(r.Context(), outletID, month)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// ScanFigures handles POST /outlets/{oid}/anomalies/scan?month=YYYY-MM. It
// scans figures supplied in the body instead of the stored records.
func (h *AnomalyHandler) ScanFigures(w http.ResponseWriter, r *http.Request) {
	outletID, month, ok := h.target(w, r)
	if !ok {
		return
	}
	var req scanRequest
	if err := decodeBody(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	days := make([]anomaly.DayFigures, len(req.Days))
	for i, d := range req.Days {
		date, _ := time.Parse(domain.DateLayout, d.Date)
		days[i] = anomaly.DayFigures{
			Date:         date,
			TotalIncome:  d.TotalIncome,
			TotalExpense: d.TotalExpense,
			ClosingCash:  d.ClosingCash,
			ClosingUPI:   d.ClosingUPI,
			Status:       domain.DayStatus(d.Status),
		}
	}

	writeJSON(w, http.StatusOK, h.svc.ScanFigures(r.Context(), outletID, month, days))
}

func (h *AnomalyHandler) target(w http.ResponseWriter, r *http.Request) (uuid.UUID, domain.Month, bool) {
	outletID, err := uuidParam(r, "oid")
	if err != nil {
		handleError(h.log, w, r, err)
		return uuid.Nil, domain.Month{}, false
	}
	month, err := monthQuery(r, h.calendar.Month(time.Now()))
	if err != nil {
		handleError(h.log, w, r, err)
		return uuid.Nil, domain.Month{}, false
	}
	return outletID, month, true
}
