package domain

import "strings"

// Role is the authorization level of a user. The set is closed: strings
// that do not name a known role parse to RoleUnknown.
type Role string

const (
	RoleUnknown       Role = ""
	RoleOutletStaff   Role = "outlet_staff"
	RoleOutletManager Role = "outlet_manager"
	RoleHOAccountant  Role = "ho_accountant"
	RoleMasterAdmin   Role = "master_admin"
	RoleSuperadmin    Role = "superadmin"
	RoleAuditor       Role = "auditor"
)

// ParseRole maps a role string to a Role, ignoring case and surrounding
// whitespace.
func ParseRole(s string) Role {
	r := Role(strings.ToLower(strings.TrimSpace(s)))
	if r.IsValid() {
		return r
	}
	return RoleUnknown
}

func (r Role) String() string { return string(r) }

func (r Role) IsValid() bool {
	switch r {
	case RoleOutletStaff, RoleOutletManager, RoleHOAccountant,
		RoleMasterAdmin, RoleSuperadmin, RoleAuditor:
		return true
	}
	return false
}

// IsReadOnly reports whether the role may never mutate the ledger.
func (r Role) IsReadOnly() bool {
	return r == RoleAuditor || !r.IsValid()
}

// CanLockDays reports whether the role may lock a business day.
func (r Role) CanLockDays() bool {
	switch r {
	case RoleHOAccountant, RoleMasterAdmin, RoleSuperadmin:
		return true
	}
	return false
}

// CanUnlockDays reports whether the role may unlock a business day. Only the
// highest-privilege role can.
func (r Role) CanUnlockDays() bool {
	return r == RoleSuperadmin
}

// CanCloseMonths reports whether the role may seal a monthly closure.
func (r Role) CanCloseMonths() bool {
	return r == RoleHOAccountant || r == RoleSuperadmin
}

// CanReadAudit reports whether the role may read the audit log.
func (r Role) CanReadAudit() bool {
	switch r {
	case RoleAuditor, RoleMasterAdmin, RoleSuperadmin:
		return true
	}
	return false
}

// IsHeadOffice reports whether the role spans all outlets.
func (r Role) IsHeadOffice() bool {
	switch r {
	case RoleHOAccountant, RoleMasterAdmin, RoleSuperadmin, RoleAuditor:
		return true
	}
	return false
}

// TransactionType is the direction of a ledger entry.
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

func (t TransactionType) String() string { return string(t) }

func (t TransactionType) IsValid() bool {
	return t == TransactionTypeIncome || t == TransactionTypeExpense
}

// Opposite returns the compensating direction used by reversal entries.
func (t TransactionType) Opposite() TransactionType {
	if t == TransactionTypeIncome {
		return TransactionTypeExpense
	}
	return TransactionTypeIncome
}

// PaymentMode is how money moved for a ledger entry.
type PaymentMode string

const (
	PaymentModeCash   PaymentMode = "cash"
	PaymentModeUPI    PaymentMode = "upi"
	PaymentModeCard   PaymentMode = "card"
	PaymentModeCredit PaymentMode = "credit"
	PaymentModeBank   PaymentMode = "bank"
)

// ParsePaymentMode normalizes case ("Cash" and "cash" are the same mode).
func ParsePaymentMode(s string) PaymentMode {
	return PaymentMode(strings.ToLower(strings.TrimSpace(s)))
}

func (m PaymentMode) String() string { return string(m) }

func (m PaymentMode) IsValid() bool {
	switch m {
	case PaymentModeCash, PaymentModeUPI, PaymentModeCard, PaymentModeCredit, PaymentModeBank:
		return true
	}
	return false
}

// DayStatus is the workflow state of a DailyRecord.
type DayStatus string

const (
	DayStatusDraft     DayStatus = "draft"
	DayStatusSubmitted DayStatus = "submitted"
	DayStatusLocked    DayStatus = "locked"
)

func (s DayStatus) String() string { return string(s) }

func (s DayStatus) IsValid() bool {
	switch s {
	case DayStatusDraft, DayStatusSubmitted, DayStatusLocked:
		return true
	}
	return false
}

// AuditSeverity grades an audit event.
type AuditSeverity string

const (
	AuditSeverityNormal   AuditSeverity = "normal"
	AuditSeverityWarning  AuditSeverity = "warning"
	AuditSeverityCritical AuditSeverity = "critical"
)

func (s AuditSeverity) String() string { return string(s) }

func (s AuditSeverity) IsValid() bool {
	switch s {
	case AuditSeverityNormal, AuditSeverityWarning, AuditSeverityCritical:
		return true
	}
	return false
}

// AuditAction names the mutation recorded in the audit log.
type AuditAction string

const (
	AuditActionTransactionCreate  AuditAction = "TRANSACTION_CREATE"
	AuditActionTransactionReverse AuditAction = "TRANSACTION_REVERSE"
	AuditActionDayLock            AuditAction = "DAY_LOCK"
	AuditActionDayUnlock          AuditAction = "DAY_UNLOCK"
	AuditActionDaySubmit          AuditAction = "DAY_SUBMIT"
	AuditActionMonthClose         AuditAction = "MONTH_CLOSE"
	AuditActionMonthReopen        AuditAction = "MONTH_REOPEN"
)

func (a AuditAction) String() string { return string(a) }

func (a AuditAction) IsValid() bool {
	switch a {
	case AuditActionTransactionCreate, AuditActionTransactionReverse,
		AuditActionDayLock, AuditActionDayUnlock, AuditActionDaySubmit,
		AuditActionMonthClose, AuditActionMonthReopen:
		return true
	}
	return false
}

// EntityType identifies the kind of entity an audit record refers to.
type EntityType string

const (
	EntityTypeTransaction    EntityType = "transaction"
	EntityTypeDailyRecord    EntityType = "daily_record"
	EntityTypeDayLock        EntityType = "day_lock"
	EntityTypeMonthlyClosure EntityType = "monthly_closure"
)

func (e EntityType) String() string { return string(e) }

func (e EntityType) IsValid() bool {
	switch e {
	case EntityTypeTransaction, EntityTypeDailyRecord, EntityTypeDayLock, EntityTypeMonthlyClosure:
		return true
	}
	return false
}

// AnomalyType classifies a scanner finding.
type AnomalyType string

const (
	AnomalyIncomeSpike     AnomalyType = "income_spike"
	AnomalyNegativeNet     AnomalyType = "negative_net"
	AnomalyUnsubmittedDay  AnomalyType = "unsubmitted_day"
	AnomalyNegativeClosing AnomalyType = "negative_closing"
	AnomalyMissingDays     AnomalyType = "missing_days"
)

func (a AnomalyType) String() string { return string(a) }
