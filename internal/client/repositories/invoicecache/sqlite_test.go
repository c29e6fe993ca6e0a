package invoicecache

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/northlink/selfcare/internal/client/models"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE invoice_cache (
  id           TEXT PRIMARY KEY,
  number       TEXT NOT NULL,
  amount_cents INTEGER NOT NULL,
  currency     TEXT NOT NULL,
  issued_at    TIMESTAMP NOT NULL,
  due_at       TIMESTAMP NOT NULL,
  paid         INTEGER NOT NULL DEFAULT 0
);`)
	require.NoError(t, err)
	return db
}

func sampleInvoices() []*models.Invoice {
	older := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	newer := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)
	return []*models.Invoice{
		{ID: "i1", Number: "INV-1", AmountCents: 4599, Currency: "EUR", IssuedAt: older, DueAt: older.AddDate(0, 0, 14), Paid: true},
		{ID: "i2", Number: "INV-2", AmountCents: 4599, Currency: "EUR", IssuedAt: newer, DueAt: newer.AddDate(0, 0, 14), Paid: false},
	}
}

func TestReplaceAndList(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, r.Replace(ctx, sampleInvoices()))

	got, err := r.List(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	// newest first
	require.Equal(t, "i2", got[0].ID)
	require.Equal(t, "i1", got[1].ID)
	require.True(t, got[1].Paid)
}

func TestReplace_DropsPreviousContents(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, r.Replace(ctx, sampleInvoices()))
	require.NoError(t, r.Replace(ctx, sampleInvoices()[:1]))

	got, err := r.List(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
}

func TestClear(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, r.Replace(ctx, sampleInvoices()))
	require.NoError(t, r.Clear(ctx))

	got, err := r.List(ctx)
	require.NoError(t, err)
	require.Empty(t, got)
}
