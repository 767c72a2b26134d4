// Package transaction implements the ledger entry repository using PostgreSQL.
// Entries are insert-only; corrections are new reversal rows.
package transaction

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

const table = "transactions"

var columns = []string{
	"id", "outlet_id", "daily_record_id", "ledger_date", "type", "category",
	"payment_mode", "amount", "description", "created_by", "is_reversal",
	"parent_transaction_id", "idempotency_key", "created_at",
}

// Repo provides ledger entry persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new transaction repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create inserts a ledger entry. A duplicate idempotency key maps to
// domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, t domain.Transaction) (domain.Transaction, error) {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now().UTC()
	}

	query, args, err := postgres.Builder().
		Insert(table).
		Columns(columns...).
		Values(
			t.ID, t.OutletID, t.DailyRecordID, t.LedgerDate, string(t.Type), t.Category,
			string(t.PaymentMode), t.Amount, t.Description, t.CreatedBy, t.IsReversal,
			t.ParentTransactionID, t.IdempotencyKey, t.CreatedAt,
		).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return domain.Transaction{}, fmt.Errorf("build insert transaction: %w", err)
	}

	got, err := scan(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...))
	if err != nil {
		return domain.Transaction{}, postgres.MapError(err, "transaction", t.ID)
	}
	return got, nil
}

// GetByID returns a ledger entry or domain.ErrNotFound.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (domain.Transaction, error) {
	return r.getOne(ctx, sq.Eq{"id": id}, id)
}

// GetByIdempotencyKey returns the entry created with key or domain.ErrNotFound.
func (r *Repo) GetByIdempotencyKey(ctx context.Context, key string) (domain.Transaction, error) {
	return r.getOne(ctx, sq.Eq{"idempotency_key": key}, key)
}

// ListByOutletDate returns the entries of one outlet and ledger date in
// creation order.
func (r *Repo) ListByOutletDate(ctx context.Context, outletID uuid.UUID, date time.Time) ([]domain.Transaction, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"outlet_id": outletID, "ledger_date": date}).
		OrderBy("created_at ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list transactions: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	defer rows.Close()

	var out []domain.Transaction
	for rows.Next() {
		t, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (r *Repo) getOne(ctx context.Context, where sq.Sqlizer, key any) (domain.Transaction, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(where).
		Limit(1).
		ToSql()
	if err != nil {
		return domain.Transaction{}, fmt.Errorf("build get transaction: %w", err)
	}

	t, err := scan(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...))
	if err != nil {
		return domain.Transaction{}, postgres.MapError(err, "transaction", key)
	}
	return t, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scan(row scanner) (domain.Transaction, error) {
	var (
		t         domain.Transaction
		typ, mode string
	)
	err := row.Scan(
		&t.ID, &t.OutletID, &t.DailyRecordID, &t.LedgerDate, &typ, &t.Category,
		&mode, &t.Amount, &t.Description, &t.CreatedBy, &t.IsReversal,
		&t.ParentTransactionID, &t.IdempotencyKey, &t.CreatedAt,
	)
	if err != nil {
		return domain.Transaction{}, err
	}
	t.Type = domain.TransactionType(typ)
	t.PaymentMode = domain.PaymentMode(mode)
	return t, nil
}
