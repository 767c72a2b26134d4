package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/sahakar/accounts-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedOutlet creates an outlet and returns its ID. Each test seeds its own
// outlet so parallel tests never share ledger rows.
func SeedOutlet(t *testing.T, pool *pgxpool.Pool) uuid.UUID {
	t.Helper()

	id := uuid.New()
	suffix := uniqueSuffix()
	_, err := pool.Exec(context.Background(),
		`INSERT INTO outlets (id, code, name) VALUES ($1, $2, $3)`,
		id, "OUT-"+suffix, "Test Outlet "+suffix,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedOutlet: %v", err)
	}
	return id
}

// SeedDailyRecord inserts a daily record for the outlet and date with the
// given income, expense, and status. Closing balances equal the net.
func SeedDailyRecord(t *testing.T, pool *pgxpool.Pool, outletID uuid.UUID, date time.Time, income, expense int64, status domain.DayStatus) domain.DailyRecord {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	rec := domain.DailyRecord{
		ID:           uuid.New(),
		OutletID:     outletID,
		Date:         domain.CivilDate(date),
		TotalIncome:  decimal.NewFromInt(income),
		TotalExpense: decimal.NewFromInt(expense),
		ClosingCash:  decimal.NewFromInt(income - expense),
		Status:       status,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO daily_records (id, outlet_id, date, total_income, total_expense, closing_cash, status, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		rec.ID, rec.OutletID, rec.Date, rec.TotalIncome, rec.TotalExpense, rec.ClosingCash, string(rec.Status), rec.CreatedAt, rec.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedDailyRecord: %v", err)
	}
	return rec
}

// SeedTransaction inserts a plain income entry on the given ledger date.
func SeedTransaction(t *testing.T, pool *pgxpool.Pool, outletID uuid.UUID, ledgerDate time.Time, amount int64) domain.Transaction {
	t.Helper()

	txn := domain.Transaction{
		ID:          uuid.New(),
		OutletID:    outletID,
		LedgerDate:  domain.CivilDate(ledgerDate),
		Type:        domain.TransactionTypeIncome,
		Category:    "sales",
		PaymentMode: domain.PaymentModeCash,
		Amount:      decimal.NewFromInt(amount),
		Description: "seeded",
		CreatedBy:   uuid.New(),
		CreatedAt:   time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO transactions (id, outlet_id, ledger_date, type, category, payment_mode, amount, description, created_by, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		txn.ID, txn.OutletID, txn.LedgerDate, string(txn.Type), txn.Category, string(txn.PaymentMode),
		txn.Amount, txn.Description, txn.CreatedBy, txn.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedTransaction: %v", err)
	}
	return txn
}
