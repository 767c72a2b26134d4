package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/sahakar/accounts-backend/internal/domain"
	"github.com/sahakar/accounts-backend/internal/service/dailyrecord"
)

type dailyRecordService interface {
	Today(ctx context.Context, outletID uuid.UUID) (domain.DailyRecord, error)
	Submit(ctx context.Context, recordID uuid.UUID) (dailyrecord.SubmitResult, error)
	List(ctx context.Context, outletID uuid.UUID, month domain.Month) ([]domain.DailyRecord, error)
}

// DailyRecordHandler serves the daily book endpoints.
type DailyRecordHandler struct {
	svc      dailyRecordService
	calendar businessMonth
	log      *slog.Logger
}

// NewDailyRecordHandler creates a DailyRecordHandler.
func NewDailyRecordHandler(svc dailyRecordService, calendar businessMonth, logger *slog.Logger) *DailyRecordHandler {
	return &DailyRecordHandler{svc: svc, calendar: calendar, log: logger.With("handler", "daily_record")}
}

type submitResponse struct {
	Record  dailyRecordResponse `json:"record"`
	Warning string              `json:"warning,omitempty"`
}

// Today handles GET /outlets/{oid}/daily-records/today.
func (h *DailyRecordHandler) Today(w http.ResponseWriter, r *http.Request) {
	outletID, err := uuidParam(r, "oid")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	rec, err := h.svc.Today(r.Context(), outletID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toDailyRecordResponse(rec))
}

// List handles GET /outlets/{oid}/daily-records?month=YYYY-MM. The month
// defaults to the current business month.
func (h *DailyRecordHandler) List(w http.ResponseWriter, r *http.Request) {
	outletID, err := uuidParam(r, "oid")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	month, err := monthQuery(r, h.calendar.Month(time.Now()))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	recs, err := h.svc.List(r.Context(), outletID, month)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	out := make([]dailyRecordResponse, len(recs))
	for i, rec := range recs {
		out[i] = toDailyRecordResponse(rec)
	}
	writeJSON(w, http.StatusOK, out)
}

// Submit handles POST /daily-records/{id}/submit.
func (h *DailyRecordHandler) Submit(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	res, err := h.svc.Submit(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, submitResponse{Record: toDailyRecordResponse(res.Record), Warning: res.Warning})
}
