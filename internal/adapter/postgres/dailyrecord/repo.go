// Package dailyrecord implements the per-outlet daily book repository using
// PostgreSQL.
package dailyrecord

import (
	"context"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/sahakar/accounts-backend/internal/adapter/postgres"
	"github.com/sahakar/accounts-backend/internal/domain"
)

const table = "daily_records"

var columns = []string{
	"id", "outlet_id", "date", "opening_cash", "opening_upi", "closing_cash",
	"closing_upi", "total_income", "total_expense", "status", "submitted_at",
	"created_at", "updated_at",
}

// Repo provides daily record persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new daily record repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a daily record or domain.ErrNotFound.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (domain.DailyRecord, error) {
	return r.getOne(ctx, sq.Eq{"id": id}, id)
}

// GetByOutletDate returns the record of one outlet and date or
// domain.ErrNotFound.
func (r *Repo) GetByOutletDate(ctx context.Context, outletID uuid.UUID, date time.Time) (domain.DailyRecord, error) {
	return r.getOne(ctx, sq.Eq{"outlet_id": outletID, "date": date}, domain.DayLockKey(outletID, date))
}

// ListByOutletRange returns the outlet's records with from <= date < to,
// ordered by date.
func (r *Repo) ListByOutletRange(ctx context.Context, outletID uuid.UUID, from, to time.Time) ([]domain.DailyRecord, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"outlet_id": outletID}).
		Where(sq.GtOrEq{"date": from}).
		Where(sq.Lt{"date": to}).
		OrderBy("date ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list daily_records: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list daily_records: %w", err)
	}
	defer rows.Close()

	var out []domain.DailyRecord
	for rows.Next() {
		rec, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("scan daily_record: %w", err)
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

// ListOutletIDs returns every outlet that has at least one record on or
// after since.
func (r *Repo) ListOutletIDs(ctx context.Context, since time.Time) ([]uuid.UUID, error) {
	query, args, err := postgres.Builder().
		Select("DISTINCT outlet_id").
		From(table).
		Where(sq.GtOrEq{"date": since}).
		OrderBy("outlet_id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list outlet ids: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list outlet ids: %w", err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan outlet id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a record. A second record for the same (outlet, date)
// maps to domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, rec domain.DailyRecord) (domain.DailyRecord, error) {
	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}
	now := time.Now().UTC()
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = now
	}
	rec.UpdatedAt = rec.CreatedAt

	query, args, err := postgres.Builder().
		Insert(table).
		Columns(columns...).
		Values(
			rec.ID, rec.OutletID, rec.Date, rec.OpeningCash, rec.OpeningUPI, rec.ClosingCash,
			rec.ClosingUPI, rec.TotalIncome, rec.TotalExpense, string(rec.Status), rec.SubmittedAt,
			rec.CreatedAt, rec.UpdatedAt,
		).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return domain.DailyRecord{}, fmt.Errorf("build insert daily_record: %w", err)
	}

	got, err := scan(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...))
	if err != nil {
		return domain.DailyRecord{}, postgres.MapError(err, "daily_record", rec.Key())
	}
	return got, nil
}

// Submit moves a draft record to submitted. It returns domain.ErrConflict
// when the record exists but is not a draft.
func (r *Repo) Submit(ctx context.Context, id uuid.UUID, at time.Time) (domain.DailyRecord, error) {
	query, args, err := postgres.Builder().
		Update(table).
		Set("status", string(domain.DayStatusSubmitted)).
		Set("submitted_at", at).
		Set("updated_at", at).
		Where(sq.Eq{"id": id, "status": string(domain.DayStatusDraft)}).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return domain.DailyRecord{}, fmt.Errorf("build submit daily_record: %w", err)
	}

	rec, err := scan(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...))
	if err == nil {
		return rec, nil
	}

	mapped := postgres.MapError(err, "daily_record", id)
	if _, getErr := r.GetByID(ctx, id); getErr == nil {
		return domain.DailyRecord{}, fmt.Errorf("daily_record %s: not a draft: %w", id, domain.ErrConflict)
	}
	return domain.DailyRecord{}, mapped
}

// SetStatus sets the status of the (outlet, date) record if its current
// status is one of from. It reports whether a row changed; a missing record
// is not an error.
func (r *Repo) SetStatus(ctx context.Context, outletID uuid.UUID, date time.Time, to domain.DayStatus, from ...domain.DayStatus) (bool, error) {
	b := postgres.Builder().
		Update(table).
		Set("status", string(to)).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"outlet_id": outletID, "date": date})
	if len(from) > 0 {
		states := make([]string, len(from))
		for i, s := range from {
			states[i] = string(s)
		}
		b = b.Where(sq.Eq{"status": states})
	}

	query, args, err := b.ToSql()
	if err != nil {
		return false, fmt.Errorf("build set status: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, query, args...)
	if err != nil {
		return false, postgres.MapError(err, "daily_record", domain.DayLockKey(outletID, date))
	}
	return tag.RowsAffected() > 0, nil
}

// ApplyTransaction folds a ledger entry into the record's totals. Cash and
// UPI entries also move the matching closing balance.
func (r *Repo) ApplyTransaction(ctx context.Context, recordID uuid.UUID, t domain.Transaction) error {
	signed := t.Amount
	totalCol := "total_income"
	if t.Type == domain.TransactionTypeExpense {
		signed = signed.Neg()
		totalCol = "total_expense"
	}

	b := postgres.Builder().
		Update(table).
		Set(totalCol, sq.Expr(totalCol+" + ?", t.Amount)).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": recordID})
	switch t.PaymentMode {
	case domain.PaymentModeCash:
		b = b.Set("closing_cash", sq.Expr("closing_cash + ?", signed))
	case domain.PaymentModeUPI:
		b = b.Set("closing_upi", sq.Expr("closing_upi + ?", signed))
	}

	query, args, err := b.ToSql()
	if err != nil {
		return fmt.Errorf("build apply transaction: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "daily_record", recordID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("daily_record %s: %w", recordID, domain.ErrNotFound)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func (r *Repo) getOne(ctx context.Context, where sq.Sqlizer, key any) (domain.DailyRecord, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(where).
		Limit(1).
		ToSql()
	if err != nil {
		return domain.DailyRecord{}, fmt.Errorf("build get daily_record: %w", err)
	}

	rec, err := scan(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...))
	if err != nil {
		return domain.DailyRecord{}, postgres.MapError(err, "daily_record", key)
	}
	return rec, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scan(row scanner) (domain.DailyRecord, error) {
	var (
		rec    domain.DailyRecord
		status string
	)
	err := row.Scan(
		&rec.ID, &rec.OutletID, &rec.Date, &rec.OpeningCash, &rec.OpeningUPI, &rec.ClosingCash,
		&rec.ClosingUPI, &rec.TotalIncome, &rec.TotalExpense, &status, &rec.SubmittedAt,
		&rec.CreatedAt, &rec.UpdatedAt,
	)
	if err != nil {
		return domain.DailyRecord{}, err
	}
	rec.Status = domain.DayStatus(status)
	return rec, nil
}
