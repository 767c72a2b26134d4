package ledger

import (
	"fmt"
	"time"

	"github.com/sahakar/accounts-backend/internal/domain"
)

// Action types returned alongside an edit decision. Posted entries are never
// updated in place, so an allowed edit is always a reversal.
const (
	ActionReverse  = "reverse"
	ActionViewOnly = "view_only"
)

// Denial and approval reasons surfaced to callers.
const (
	ReasonDayLocked    = "Day is Locked (Daily Close Completed)"
	ReasonAuditor      = "Auditor: View Only Access"
	ReasonInvalidDate  = "Invalid date"
	ReasonWithinWindow = "Within Edit Window"
	ReasonUnknownRole  = "Unknown role"
)

// editWindows is the maximum age of an entry each role may correct.
var editWindows = map[domain.Role]time.Duration{
	domain.RoleOutletStaff:   24 * time.Hour,
	domain.RoleOutletManager: 7 * 24 * time.Hour,
	domain.RoleHOAccountant:  30 * 24 * time.Hour,
	domain.RoleMasterAdmin:   365 * 24 * time.Hour,
	domain.RoleSuperadmin:    365 * 24 * time.Hour,
}

// EditWindow returns the correction window of role. ok is false for roles
// that may never correct entries.
func EditWindow(role domain.Role) (time.Duration, bool) {
	w, ok := editWindows[role]
	return w, ok
}

// EditDecision is the outcome of an edit-window check.
type EditDecision struct {
	Allowed    bool   `json:"allowed"`
	Reason     string `json:"reason,omitempty"`
	ActionType string `json:"action_type"`
}

func deny(reason string) EditDecision {
	return EditDecision{Allowed: false, Reason: reason, ActionType: ActionViewOnly}
}

// CheckEditWindow decides whether role may correct an entry dated txDate.
// The age is the absolute distance between now and txDate, so future-dated
// entries are measured the same way. An age equal to the window is allowed.
func CheckEditWindow(txDate time.Time, role domain.Role, now time.Time) EditDecision {
	if role == domain.RoleAuditor {
		return deny(ReasonAuditor)
	}
	if txDate.IsZero() {
		return deny(ReasonInvalidDate)
	}

	window, ok := EditWindow(role)
	if !ok {
		return deny(ReasonUnknownRole)
	}

	age := now.Sub(txDate)
	if age < 0 {
		age = -age
	}
	if age > window {
		return deny(fmt.Sprintf("Edit Window Expired (Window: %d days)", int(window.Hours()/24)))
	}

	return EditDecision{Allowed: true, Reason: ReasonWithinWindow, ActionType: ActionReverse}
}

// CheckEntryPermission combines the day lock with the edit window. A lock
// overrides every role.
func CheckEntryPermission(txDate time.Time, role domain.Role, locked bool, now time.Time) EditDecision {
	if locked {
		return deny(ReasonDayLocked)
	}
	return CheckEditWindow(txDate, role, now)
}
