package invoicecache

import (
	"context"
	"fmt"

	"github.com/northlink/selfcare/internal/client/models"
	"github.com/northlink/selfcare/internal/dbx"
)

type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

// Replace swaps the cached list for a fresh one from the server.
func (r *SQLiteRepository) Replace(ctx context.Context, invoices []*models.Invoice) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM invoice_cache`); err != nil {
		return fmt.Errorf("failed to clear invoice cache: %w", err)
	}
	for _, inv := range invoices {
		_, err := r.db.ExecContext(ctx, `
			INSERT INTO invoice_cache (id, number, amount_cents, currency, issued_at, due_at, paid)
			VALUES (?, ?, ?, ?, ?, ?, ?)
		`, inv.ID, inv.Number, inv.AmountCents, inv.Currency, inv.IssuedAt, inv.DueAt, inv.Paid)
		if err != nil {
			return fmt.Errorf("failed to cache invoice %s: %w", inv.ID, err)
		}
	}
	return nil
}

func (r *SQLiteRepository) List(ctx context.Context) ([]*models.Invoice, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, number, amount_cents, currency, issued_at, due_at, paid
		FROM invoice_cache ORDER BY issued_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list cached invoices: %w", err)
	}
	defer rows.Close()

	var result []*models.Invoice
	for rows.Next() {
		inv := &models.Invoice{}
		if err := rows.Scan(&inv.ID, &inv.Number, &inv.AmountCents, &inv.Currency, &inv.IssuedAt, &inv.DueAt, &inv.Paid); err != nil {
			return nil, fmt.Errorf("failed to scan cached invoice: %w", err)
		}
		result = append(result, inv)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate cached invoices: %w", err)
	}

	return result, nil
}

func (r *SQLiteRepository) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM invoice_cache`); err != nil {
		return fmt.Errorf("failed to clear invoice cache: %w", err)
	}
	return nil
}
