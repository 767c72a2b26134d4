package domain

import (
	"time"

	"github.com/google/uuid"
)

// AuditRecord is one append-only audit log entry. Records are never updated
// or deleted after creation.
type AuditRecord struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	Action     AuditAction
	EntityType EntityType
	EntityID   string
	OldData    map[string]any
	NewData    map[string]any
	Severity   AuditSeverity
	Reason     *string
	IPAddress  string
	UserAgent  string
	CreatedAt  time.Time
}

// AuditFilter narrows an audit log listing. Zero values mean "any".
type AuditFilter struct {
	UserID     *uuid.UUID
	EntityType EntityType
	EntityID   string
	Severity   AuditSeverity
	Action     AuditAction
	Since      *time.Time
	Limit      int
	Offset     int
}
