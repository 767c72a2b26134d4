package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/sahakar/accounts-backend/internal/domain"
	"github.com/sahakar/accounts-backend/pkg/ctxutil"
)

type auditReader interface {
	List(ctx context.Context, f domain.AuditFilter) ([]domain.AuditRecord, error)
}

// ReasonAuditRole is the denial reason for roles that may not read the
// audit log.
const ReasonAuditRole = "Audit log is restricted to auditors and administrators"

// AuditHandler serves the read-only audit log.
type AuditHandler struct {
	audit auditReader
	log   *slog.Logger
}

// NewAuditHandler creates an AuditHandler.
func NewAuditHandler(audit auditReader, logger *slog.Logger) *AuditHandler {
	return &AuditHandler{audit: audit, log: logger.With("handler", "audit")}
}

// List handles GET /audit-logs?severity=&entity_type=&entity_id=&user_id=&action=&since=&limit=&offset=.
func (h *AuditHandler) List(w http.ResponseWriter, r *http.Request) {
	p, ok := ctxutil.PrincipalFromCtx(r.Context())
	if !ok {
		handleError(h.log, w, r, domain.ErrUnauthorized)
		return
	}
	if !p.Role.CanReadAudit() {
		handleError(h.log, w, r, domain.NewPermissionError(ReasonAuditRole))
		return
	}

	filter, err := parseAuditFilter(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	records, err := h.audit.List(r.Context(), filter)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	out := make([]auditRecordResponse, len(records))
	for i, rec := range records {
		out[i] = toAuditRecordResponse(rec)
	}
	writeJSON(w, http.StatusOK, out)
}

func parseAuditFilter(r *http.Request) (domain.AuditFilter, error) {
	q := r.URL.Query()
	var (
		f    domain.AuditFilter
		errs []domain.FieldError
	)

	if v := q.Get("severity"); v != "" {
		f.Severity = domain.AuditSeverity(v)
		if !f.Severity.IsValid() {
			errs = append(errs, domain.FieldError{Field: "severity", Message: "must be normal, warning or critical"})
		}
	}
	if v := q.Get("entity_type"); v != "" {
		f.EntityType = domain.EntityType(v)
		if !f.EntityType.IsValid() {
			errs = append(errs, domain.FieldError{Field: "entity_type", Message: "invalid"})
		}
	}
	if v := q.Get("action"); v != "" {
		f.Action = domain.AuditAction(v)
		if !f.Action.IsValid() {
			errs = append(errs, domain.FieldError{Field: "action", Message: "invalid"})
		}
	}
	f.EntityID = q.Get("entity_id")
	if v := q.Get("user_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			errs = append(errs, domain.FieldError{Field: "user_id", Message: "must be a UUID"})
		} else {
			f.UserID = &id
		}
	}
	if v := q.Get("since"); v != "" {
		t, err := domain.ParseDate(v)
		if err != nil {
			errs = append(errs, domain.FieldError{Field: "since", Message: "must be a date or RFC 3339 time"})
		} else {
			f.Since = &t
		}
	}
	if v := q.Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			errs = append(errs, domain.FieldError{Field: "limit", Message: "must be a positive integer"})
		}
		f.Limit = n
	}
	if v := q.Get("offset"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			errs = append(errs, domain.FieldError{Field: "offset", Message: "must be a non-negative integer"})
		}
		f.Offset = n
	}

	if len(errs) > 0 {
		return domain.AuditFilter{}, domain.NewValidationErrors(errs)
	}
	return f, nil
}

