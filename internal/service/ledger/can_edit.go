package ledger

import (
	"context"
	"strings"

	"github.com/sahakar/accounts-backend/internal/domain"
	"github.com/sahakar/accounts-backend/pkg/ctxutil"
)

// CanEdit evaluates the edit window for a date and role. An empty role falls
// back to the caller's own role.
func (s *Service) CanEdit(ctx context.Context, input CanEditInput) EditDecision {
	role := domain.ParseRole(input.Role)
	if strings.TrimSpace(input.Role) == "" {
		role = ctxutil.RoleFromCtx(ctx)
	}

	date, err := domain.ParseDate(strings.TrimSpace(input.TransactionDate))
	if err != nil {
		return deny(ReasonInvalidDate)
	}

	decision := CheckEditWindow(date, role, s.now())
	s.metrics.LedgerDecision("can_edit", decision.Allowed)
	return decision
}
