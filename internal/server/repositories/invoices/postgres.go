// Package invoices provides a PostgreSQL-backed repository for billing
// documents.
package invoices

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/northlink/selfcare/internal/common"
	"github.com/northlink/selfcare/internal/dbx"
	"github.com/northlink/selfcare/internal/server/models"
)

// PostgresRepository implements Repository over dbx.DBTX
// (satisfied by *sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, invoice *models.Invoice) (*models.Invoice, error) {
	query := `
		INSERT INTO invoices (user_id, number, amount_cents, currency, issued_at, due_at, paid, storage_key)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`
	err := r.db.QueryRowContext(ctx, query,
		invoice.UserID, invoice.Number, invoice.AmountCents, invoice.Currency,
		invoice.IssuedAt, invoice.DueAt, invoice.Paid, invoice.StorageKey).Scan(&invoice.ID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return invoice, nil
}

func (r *PostgresRepository) ListByUser(ctx context.Context, userID string) ([]*models.Invoice, error) {
	query := `
		SELECT id, user_id, number, amount_cents, currency, issued_at, due_at, paid, storage_key
		FROM invoices
		WHERE user_id = $1
		ORDER BY issued_at DESC
	`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Invoice
	for rows.Next() {
		inv := &models.Invoice{}
		if err := rows.Scan(&inv.ID, &inv.UserID, &inv.Number, &inv.AmountCents,
			&inv.Currency, &inv.IssuedAt, &inv.DueAt, &inv.Paid, &inv.StorageKey); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, inv)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}

func (r *PostgresRepository) Get(ctx context.Context, id string) (*models.Invoice, error) {
	query := `
		SELECT id, user_id, number, amount_cents, currency, issued_at, due_at, paid, storage_key
		FROM invoices
		WHERE id = $1
	`
	inv := &models.Invoice{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(&inv.ID, &inv.UserID, &inv.Number,
		&inv.AmountCents, &inv.Currency, &inv.IssuedAt, &inv.DueAt, &inv.Paid, &inv.StorageKey)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return inv, nil
}
