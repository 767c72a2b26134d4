// Package audit implements the audit log repository using PostgreSQL.
// It only inserts and reads; a table trigger rejects UPDATE and DELETE.
package audit

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/sahakar/accounts-backend/internal/adapter/postgres"
	"github.com/sahakar/accounts-backend/internal/domain"
)

const (
	table        = "audit_logs"
	defaultLimit = 50
	maxLimit     = 500
)

var columns = []string{
	"id", "user_id", "action", "entity_type", "entity_id", "old_data", "new_data",
	"severity", "reason", "ip_address", "user_agent", "created_at",
}

// Repo provides audit log persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new audit repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new audit record and returns the persisted domain.AuditRecord.
func (r *Repo) Create(ctx context.Context, record domain.AuditRecord) (domain.AuditRecord, error) {
	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now().UTC()
	}
	if record.Severity == "" {
		record.Severity = domain.AuditSeverityNormal
	}

	oldJSON, err := marshalData(record.OldData)
	if err != nil {
		return domain.AuditRecord{}, fmt.Errorf("audit_record marshal old_data: %w", err)
	}
	newJSON, err := marshalData(record.NewData)
	if err != nil {
		return domain.AuditRecord{}, fmt.Errorf("audit_record marshal new_data: %w", err)
	}

	query, args, err := postgres.Builder().
		Insert(table).
		Columns(columns...).
		Values(
			record.ID, record.UserID, string(record.Action), string(record.EntityType), record.EntityID,
			oldJSON, newJSON, string(record.Severity), record.Reason, record.IPAddress, record.UserAgent,
			record.CreatedAt,
		).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return domain.AuditRecord{}, fmt.Errorf("build insert audit_record: %w", err)
	}

	got, err := scan(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...))
	if err != nil {
		return domain.AuditRecord{}, postgres.MapError(err, "audit_record", record.ID)
	}
	return got, nil
}

// Log creates an audit record without returning it.
func (r *Repo) Log(ctx context.Context, record domain.AuditRecord) error {
	_, err := r.Create(ctx, record)
	return err
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// List returns audit records matching the filter, newest first.
func (r *Repo) List(ctx context.Context, f domain.AuditFilter) ([]domain.AuditRecord, error) {
	limit := f.Limit
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	offset := f.Offset
	if offset < 0 {
		offset = 0
	}

	b := postgres.Builder().
		Select(columns...).
		From(table).
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset))

	if f.UserID != nil {
		b = b.Where(sq.Eq{"user_id": *f.UserID})
	}
	if f.EntityType != "" {
		b = b.Where(sq.Eq{"entity_type": string(f.EntityType)})
	}
	if f.EntityID != "" {
		b = b.Where(sq.Eq{"entity_id": f.EntityID})
	}
	if f.Severity != "" {
		b = b.Where(sq.Eq{"severity": string(f.Severity)})
	}
	if f.Action != "" {
		b = b.Where(sq.Eq{"action": string(f.Action)})
	}
	if f.Since != nil {
		b = b.Where(sq.GtOrEq{"created_at": *f.Since})
	}

	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list audit_records: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list audit_records: %w", err)
	}
	defer rows.Close()

	records := make([]domain.AuditRecord, 0, limit)
	for rows.Next() {
		rec, err := scan(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// ---------------------------------------------------------------------------
// Mapping helpers
// ---------------------------------------------------------------------------

type scanner interface {
	Scan(dest ...any) error
}

func scan(row scanner) (domain.AuditRecord, error) {
	var (
		rec                          domain.AuditRecord
		action, entityType, severity string
		oldJSON, newJSON             []byte
	)
	err := row.Scan(
		&rec.ID, &rec.UserID, &action, &entityType, &rec.EntityID, &oldJSON, &newJSON,
		&severity, &rec.Reason, &rec.IPAddress, &rec.UserAgent, &rec.CreatedAt,
	)
	if err != nil {
		return domain.AuditRecord{}, err
	}
	rec.Action = domain.AuditAction(action)
	rec.EntityType = domain.EntityType(entityType)
	rec.Severity = domain.AuditSeverity(severity)

	if rec.OldData, err = unmarshalData(oldJSON); err != nil {
		return domain.AuditRecord{}, fmt.Errorf("audit_record %s unmarshal old_data: %w", rec.ID, err)
	}
	if rec.NewData, err = unmarshalData(newJSON); err != nil {
		return domain.AuditRecord{}, fmt.Errorf("audit_record %s unmarshal new_data: %w", rec.ID, err)
	}
	return rec, nil
}

// marshalData encodes a JSON snapshot; nil stays SQL NULL.
func marshalData(m map[string]any) ([]byte, error) {
	if m == nil {
		return nil, nil
	}
	return json.Marshal(m)
}

func unmarshalData(b []byte) (map[string]any, error) {
	if len(b) == 0 {
		return nil, nil
	}
	m := make(map[string]any)
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	return m, nil
}
