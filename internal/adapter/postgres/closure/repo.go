// Package closure implements the monthly closure snapshot repository using
// PostgreSQL. Sealed payloads are never rewritten; resealing a month adds a
// newer row and reopening only stamps the reopen columns.
package closure

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/sahakar/accounts-backend/internal/adapter/postgres"
	"github.com/sahakar/accounts-backend/internal/domain"
)

const table = "monthly_closures"

var columns = []string{
	"id", "outlet_id", "month", "snapshot", "snapshot_hash", "hash_algorithm",
	"created_by", "created_at", "reopened_at", "reopened_by", "reopen_reason",
}

// Repo provides closure snapshot persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new closure repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create inserts a sealed snapshot. The payload is stored as JSONB; the
// returned Snapshot is what the database hands back.
func (r *Repo) Create(ctx context.Context, s domain.ClosureSnapshot) (domain.ClosureSnapshot, error) {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	if s.CreatedAt.IsZero() {
		s.CreatedAt = time.Now().UTC()
	}

	query, args, err := postgres.Builder().
		Insert(table).
		Columns(columns...).
		Values(
			s.ID, s.OutletID, s.Month.Start(), []byte(s.Snapshot), s.SnapshotHash,
			string(s.HashAlgorithm), s.CreatedBy, s.CreatedAt, s.ReopenedAt, s.ReopenedBy, s.ReopenReason,
		).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return domain.ClosureSnapshot{}, fmt.Errorf("build insert monthly_closure: %w", err)
	}

	got, err := scan(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...))
	if err != nil {
		return domain.ClosureSnapshot{}, postgres.MapError(err, "monthly_closure", s.ID)
	}
	return got, nil
}

// Latest returns the newest snapshot for (outlet, month) by creation time,
// or domain.ErrNotFound.
func (r *Repo) Latest(ctx context.Context, outletID uuid.UUID, month domain.Month) (domain.ClosureSnapshot, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"outlet_id": outletID, "month": month.Start()}).
		OrderBy("created_at DESC", "id DESC").
		Limit(1).
		ToSql()
	if err != nil {
		return domain.ClosureSnapshot{}, fmt.Errorf("build latest monthly_closure: %w", err)
	}

	s, err := scan(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...))
	if err != nil {
		return domain.ClosureSnapshot{}, postgres.MapError(err, "monthly_closure", outletID.String()+"_"+month.String())
	}
	return s, nil
}

// MarkReopened stamps a snapshot as reopened. The payload and hash are left
// as sealed. A snapshot that is already reopened maps to domain.ErrConflict.
func (r *Repo) MarkReopened(ctx context.Context, id, by uuid.UUID, at time.Time, reason string) (domain.ClosureSnapshot, error) {
	query, args, err := postgres.Builder().
		Update(table).
		Set("reopened_at", at).
		Set("reopened_by", by).
		Set("reopen_reason", reason).
		Where(sq.Eq{"id": id, "reopened_at": nil}).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return domain.ClosureSnapshot{}, fmt.Errorf("build reopen monthly_closure: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	s, err := scan(q.QueryRow(ctx, query, args...))
	if err == nil {
		return s, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return domain.ClosureSnapshot{}, postgres.MapError(err, "monthly_closure", id)
	}

	var exists bool
	if err := q.QueryRow(ctx, "SELECT EXISTS (SELECT 1 FROM "+table+" WHERE id = $1)", id).Scan(&exists); err != nil {
		return domain.ClosureSnapshot{}, postgres.MapError(err, "monthly_closure", id)
	}
	if exists {
		return domain.ClosureSnapshot{}, fmt.Errorf("monthly_closure %s: already reopened: %w", id, domain.ErrConflict)
	}
	return domain.ClosureSnapshot{}, fmt.Errorf("monthly_closure %s: %w", id, domain.ErrNotFound)
}

type scanner interface {
	Scan(dest ...any) error
}

func scan(row scanner) (domain.ClosureSnapshot, error) {
	var (
		s        domain.ClosureSnapshot
		month    time.Time
		payload  []byte
		hashAlgo string
	)
	err := row.Scan(
		&s.ID, &s.OutletID, &month, &payload, &s.SnapshotHash, &hashAlgo, &s.CreatedBy, &s.CreatedAt,
		&s.ReopenedAt, &s.ReopenedBy, &s.ReopenReason,
	)
	if err != nil {
		return domain.ClosureSnapshot{}, err
	}
	s.Month = domain.MonthOf(month)
	s.Snapshot = payload
	s.HashAlgorithm = domain.HashAlgorithm(hashAlgo)
	return s, nil
}
