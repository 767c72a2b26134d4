package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/sahakar/accounts-backend/internal/domain"
	"github.com/sahakar/accounts-backend/internal/service/ledger"
)

// IdempotencyKeyHeader may carry the idempotency key instead of the body.
const IdempotencyKeyHeader = "X-Idempotency-Key"

type ledgerService interface {
	CanEdit(ctx context.Context, input ledger.CanEditInput) ledger.EditDecision
	CreateTransaction(ctx context.Context, input ledger.CreateTransactionInput) (ledger.CreateTransactionResult, error)
	TransactionPermission(ctx context.Context, transactionID uuid.UUID) (ledger.EditDecision, error)
	DayTransactions(ctx context.Context, outletID uuid.UUID, date time.Time) ([]domain.Transaction, error)
	ReverseTransaction(ctx context.Context, input ledger.ReverseTransactionInput) (ledger.ReversalResult, error)
	LockDay(ctx context.Context, input ledger.LockDayInput) (ledger.LockResult, error)
	UnlockDay(ctx context.Context, input ledger.UnlockDayInput) (ledger.LockResult, error)
}

// LedgerHandler serves ledger mutation endpoints.
type LedgerHandler struct {
	svc ledgerService
	log *slog.Logger
}

// NewLedgerHandler creates a LedgerHandler.
func NewLedgerHandler(svc ledgerService, logger *slog.Logger) *LedgerHandler {
	return &LedgerHandler{svc: svc, log: logger.With("handler", "ledger")}
}

type transactionResult struct {
	Transaction transactionResponse `json:"transaction"`
	Replayed    bool                `json:"replayed,omitempty"`
	Warning     string              `json:"warning,omitempty"`
}

// CanEdit handles GET /ledger/can-edit?date=&role=.
func (h *LedgerHandler) CanEdit(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	decision := h.svc.CanEdit(r.Context(), ledger.CanEditInput{
		TransactionDate: q.Get("date"),
		Role:            q.Get("role"),
	})
	writeJSON(w, http.StatusOK, decision)
}

// CreateTransaction handles POST /outlets/{oid}/transactions.
func (h *LedgerHandler) CreateTransaction(w http.ResponseWriter, r *http.Request) {
	outletID, err := uuidParam(r, "oid")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req createTransactionRequest
	if err := decodeBody(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	input := ledger.CreateTransactionInput{
		OutletID:       outletID,
		Type:           domain.TransactionType(strings.ToLower(strings.TrimSpace(req.Type))),
		Category:       req.Category,
		PaymentMode:    domain.ParsePaymentMode(req.PaymentMode),
		Amount:         req.Amount,
		Description:    req.Description,
		IdempotencyKey: req.IdempotencyKey,
	}
	if input.IdempotencyKey == "" {
		input.IdempotencyKey = r.Header.Get(IdempotencyKeyHeader)
	}
	if req.LedgerDate != "" {
		d, err := time.Parse(domain.DateLayout, req.LedgerDate)
		if err != nil {
			handleError(h.log, w, r, domain.NewValidationError("ledger_date", "must be a date (YYYY-MM-DD)"))
			return
		}
		input.LedgerDate = &d
	}

	res, err := h.svc.CreateTransaction(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	status := http.StatusCreated
	if res.Replayed {
		status = http.StatusOK
	}
	writeJSON(w, status, transactionResult{
		Transaction: toTransactionResponse(res.Transaction),
		Replayed:    res.Replayed,
		Warning:     res.Warning,
	})
}

// Permission handles GET /transactions/{id}/permission.
func (h *LedgerHandler) Permission(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	decision, err := h.svc.TransactionPermission(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, decision)
}

// Reverse handles POST /transactions/{id}/reversal.
func (h *LedgerHandler) Reverse(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req reversalRequest
	if err := decodeBody(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	res, err := h.svc.ReverseTransaction(r.Context(), ledger.ReverseTransactionInput{
		TransactionID: id,
		Reason:        req.Reason,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, transactionResult{
		Transaction: toTransactionResponse(res.Reversal),
		Warning:     res.Warning,
	})
}

// DayTransactions handles GET /outlets/{oid}/days/{date}/transactions.
func (h *LedgerHandler) DayTransactions(w http.ResponseWriter, r *http.Request) {
	outletID, err := uuidParam(r, "oid")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	date, err := dateParam(r, "date")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	txs, err := h.svc.DayTransactions(r.Context(), outletID, date)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	out := make([]transactionResponse, len(txs))
	for i, t := range txs {
		out[i] = toTransactionResponse(t)
	}
	writeJSON(w, http.StatusOK, out)
}

// LockDay handles POST /outlets/{oid}/days/{date}/lock.
func (h *LedgerHandler) LockDay(w http.ResponseWriter, r *http.Request) {
	outletID, date, reason, ok := h.dayRequest(w, r)
	if !ok {
		return
	}
	res, err := h.svc.LockDay(r.Context(), ledger.LockDayInput{OutletID: outletID, Date: date, Reason: reason})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toLockResultResponse(res))
}

// UnlockDay handles POST /outlets/{oid}/days/{date}/unlock.
func (h *LedgerHandler) UnlockDay(w http.ResponseWriter, r *http.Request) {
	outletID, date, reason, ok := h.dayRequest(w, r)
	if !ok {
		return
	}
	res, err := h.svc.UnlockDay(r.Context(), ledger.UnlockDayInput{OutletID: outletID, Date: date, Reason: reason})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toLockResultResponse(res))
}

func (h *LedgerHandler) dayRequest(w http.ResponseWriter, r *http.Request) (uuid.UUID, time.Time, string, bool) {
	outletID, err := uuidParam(r, "oid")
	if err != nil {
		handleError(h.log, w, r, err)
		return uuid.Nil, time.Time{}, "", false
	}
	date, err := dateParam(r, "date")
	if err != nil {
		handleError(h.log, w, r, err)
		return uuid.Nil, time.Time{}, "", false
	}
	var req dayLockRequest
	if err := decodeBody(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return uuid.Nil, time.Time{}, "", false
	}
	return outletID, date, req.Reason, true
}

func toLockResultResponse(res ledger.LockResult) lockResultResponse {
	return lockResultResponse{
		Success: res.Success,
		Lock: dayLockResponse{
			OutletID: res.Lock.OutletID,
			Date:     res.Lock.Date.Format(domain.DateLayout),
			IsLocked: res.Lock.IsLocked,
			LockedAt: res.Lock.LockedAt,
			LockedBy: res.Lock.LockedBy,
		},
		Warning: res.Warning,
	}
}
