// Package daylock implements the per-(outlet, date) day lock repository using
// PostgreSQL. All writes are single-statement upserts keyed by the composite
// primary key.
package daylock

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/sahakar/accounts-backend/internal/adapter/postgres"
	"github.com/sahakar/accounts-backend/internal/domain"
)

// Repo provides day lock persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new day lock repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Get returns the lock for (outlet, date). A day that was never locked has
// no row and is returned as an unlocked DayLock.
func (r *Repo) Get(ctx context.Context, outletID uuid.UUID, date time.Time) (domain.DayLock, error) {
	query, args, err := postgres.Builder().
		Select("outlet_id", "date", "is_locked", "locked_at", "locked_by").
		From("day_locks").
		Where(sq.Eq{"outlet_id": outletID, "date": date}).
		ToSql()
	if err != nil {
		return domain.DayLock{}, fmt.Errorf("build get day_lock: %w", err)
	}

	var l domain.DayLock
	err = postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...).
		Scan(&l.OutletID, &l.Date, &l.IsLocked, &l.LockedAt, &l.LockedBy)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.DayLock{OutletID: outletID, Date: date}, nil
	}
	if err != nil {
		return domain.DayLock{}, postgres.MapError(err, "day_lock", domain.DayLockKey(outletID, date))
	}
	return l, nil
}

// upsertSQL writes the lock state in one statement and also returns whether
// the day was locked before the write. Re-locking a locked day matches no
// row in DO UPDATE, so the first locker's metadata is kept and nothing is
// returned.
const upsertSQL = `
WITH prev AS (
    SELECT is_locked FROM day_locks WHERE outlet_id = $1 AND date = $2
)
INSERT INTO day_locks (outlet_id, date, is_locked, locked_at, locked_by)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (outlet_id, date) DO UPDATE
    SET is_locked = EXCLUDED.is_locked,
        locked_at = EXCLUDED.locked_at,
        locked_by = EXCLUDED.locked_by
    WHERE NOT day_locks.is_locked OR NOT EXCLUDED.is_locked
RETURNING outlet_id, date, is_locked, locked_at, locked_by,
          COALESCE((SELECT is_locked FROM prev), false)`

// Upsert atomically sets the lock state for (outlet, date) and reports the
// state it replaced. Unlocking clears locked_at and locked_by. Locking an
// already locked day is a no-op that returns the existing lock.
func (r *Repo) Upsert(ctx context.Context, lock domain.DayLock) (domain.DayLock, bool, error) {
	lockedAt, lockedBy := lock.LockedAt, lock.LockedBy
	if !lock.IsLocked {
		lockedAt, lockedBy = nil, nil
	}

	var (
		l         domain.DayLock
		wasLocked bool
	)
	err := postgres.QuerierFromCtx(ctx, r.pool).
		QueryRow(ctx, upsertSQL, lock.OutletID, lock.Date, lock.IsLocked, lockedAt, lockedBy).
		Scan(&l.OutletID, &l.Date, &l.IsLocked, &l.LockedAt, &l.LockedBy, &wasLocked)
	if errors.Is(err, pgx.ErrNoRows) {
		existing, getErr := r.Get(ctx, lock.OutletID, lock.Date)
		if getErr != nil {
			return domain.DayLock{}, false, getErr
		}
		return existing, true, nil
	}
	if err != nil {
		return domain.DayLock{}, false, postgres.MapError(err, "day_lock", lock.Key())
	}
	return l, wasLocked, nil
}
