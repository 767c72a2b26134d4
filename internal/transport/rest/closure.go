package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/sahakar/accounts-backend/internal/domain"
	"github.com/sahakar/accounts-backend/internal/service/closure"
)

type closureService interface {
	Seal(ctx context.Context, input closure.SealInput) (domain.ClosureSnapshot, error)
	Verify(ctx context.Context, outletID uuid.UUID, month domain.Month) (closure.VerifyResult, error)
	Reopen(ctx context.Context, input closure.ReopenInput) (domain.ClosureSnapshot, error)
}

// ClosureHandler serves monthly closure endpoints. All of them require an
// explicit month.
type ClosureHandler struct {
	svc closureService
	log *slog.Logger
}

// NewClosureHandler creates a ClosureHandler.
func NewClosureHandler(svc closureService, logger *slog.Logger) *ClosureHandler {
	return &ClosureHandler{svc: svc, log: logger.With("handler", "closure")}
}

// Seal handles POST /outlets/{oid}/closures?month=YYYY-MM.
func (h *ClosureHandler) Seal(w http.ResponseWriter, r *http.Request) {
	outletID, month, ok := h.target(w, r)
	if !ok {
		return
	}
	snap, err := h.svc.Seal(r.Context(), closure.SealInput{OutletID: outletID, Month: month})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toSnapshotResponse(snap))
}

// Verify handles GET /outlets/{oid}/closures/verify?month=YYYY-MM.
func (h *ClosureHandler) Verify(w http.ResponseWriter, r *http.Request) {
	outletID, month, ok := h.target(w, r)
	if !ok {
		return
	}
	res, err := h.svc.Verify(r.Context(), outletID, month)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// Reopen handles POST /outlets/{oid}/closures/reopen?month=YYYY-MM.
func (h *ClosureHandler) Reopen(w http.ResponseWriter, r *http.Request) {
	outletID, month, ok := h.target(w, r)
	if !ok {
		return
	}
	var req reopenRequest
	if err := decodeBody(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	snap, err := h.svc.Reopen(r.Context(), closure.ReopenInput{OutletID: outletID, Month: month, Reason: req.Reason})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toSnapshotResponse(snap))
}

func (h *ClosureHandler) target(w http.ResponseWriter, r *http.Request) (uuid.UUID, domain.Month, bool) {
	outletID, err := uuidParam(r, "oid")
	if err != nil {
		handleError(h.log, w, r, err)
		return uuid.Nil, domain.Month{}, false
	}
	month, err := monthQuery(r, domain.Month{})
	if err != nil {
		handleError(h.log, w, r, err)
		return uuid.Nil, domain.Month{}, false
	}
	return outletID, month, true
}
