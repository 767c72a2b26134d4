package middleware

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/sahakar/accounts-backend/internal/domain"
	"github.com/sahakar/accounts-backend/pkg/ctxutil"
)

// OutletScope rejects requests whose {param} URL parameter names an outlet
// the principal may not act on. It must be mounted on a chi route that
// declares param.
func OutletScope(param string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			outletID, err := uuid.Parse(chi.URLParam(r, param))
			if err != nil {
				writeError(w, http.StatusBadRequest, "invalid outlet id", "")
				return
			}
			p, ok := ctxutil.PrincipalFromCtx(r.Context())
			if !ok {
				writeError(w, http.StatusUnauthorized, "unauthorized", "")
				return
			}
			if !p.CanAccessOutlet(outletID) {
				writeError(w, http.StatusForbidden, "forbidden", domain.ReasonOutletAccess)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
