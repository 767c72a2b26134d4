package ctxutil

import (
	"context"

	"github.com/google/uuid"

	"github.com/sahakar/accounts-backend/internal/domain"
)

type ctxKey string

const (
	principalKey  ctxKey = "principal"
	requestIDKey  ctxKey = "request_id"
	clientInfoKey ctxKey = "client_info"
)

// Principal is the authenticated caller of a request.
type Principal struct {
	UserID   uuid.UUID
	Role     domain.Role
	OutletID uuid.UUID // uuid.Nil for head-office users
}

// CanAccessOutlet reports whether the principal may act on the outlet.
// Head-office roles span every outlet; outlet roles see only their own.
func (p Principal) CanAccessOutlet(outletID uuid.UUID) bool {
	if p.Role.IsHeadOffice() {
		return true
	}
	return p.OutletID != uuid.Nil && p.OutletID == outletID
}

// ClientInfo identifies where a request came from, for audit records.
type ClientInfo struct {
	IP        string
	UserAgent string
}

// WithPrincipal stores the principal in the context.
func WithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, principalKey, p)
}

// PrincipalFromCtx extracts the principal from the context.
// Returns false if it is missing or carries a nil user ID.
func PrincipalFromCtx(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(principalKey).(Principal)
	if !ok || p.UserID == uuid.Nil {
		return Principal{}, false
	}
	return p, true
}

// UserIDFromCtx extracts the user ID of the principal.
// Returns uuid.Nil and false if the value is missing or nil.
func UserIDFromCtx(ctx context.Context) (uuid.UUID, bool) {
	p, ok := PrincipalFromCtx(ctx)
	if !ok {
		return uuid.Nil, false
	}
	return p.UserID, true
}

// RoleFromCtx returns the principal's role, or domain.RoleUnknown.
func RoleFromCtx(ctx context.Context) domain.Role {
	p, _ := PrincipalFromCtx(ctx)
	return p.Role
}

// WithRequestID stores the request ID in the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromCtx extracts the request ID from the context.
// Returns an empty string if absent.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// WithClientInfo stores the requester's address and user agent.
func WithClientInfo(ctx context.Context, info ClientInfo) context.Context {
	return context.WithValue(ctx, clientInfoKey, info)
}

// ClientInfoFromCtx returns the stored client info, or the zero value.
func ClientInfoFromCtx(ctx context.Context) ClientInfo {
	info, _ := ctx.Value(clientInfoKey).(ClientInfo)
	return info
}
