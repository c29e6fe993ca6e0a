// Package users provides a PostgreSQL-backed repository for portal
// accounts.
package users

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

func (r *PostgresRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {

	query :=
		`INSERT INTO users (name, email, portal_id, account_number, portal_type, password_hash, salt, mfa_required)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING id
		 `

	err := r.db.QueryRowContext(ctx, query,
		user.Name, user.Email, user.PortalID, user.AccountNumber,
		user.PortalType, user.PasswordHash, user.Salt, user.MFARequired).Scan(&user.ID)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return user, nil
}

func (r *PostgresRepository) GetByIdentifier(ctx context.Context, identifier, portalType string) (*models.User, error) {
	query :=
		`SELECT id, name, email, portal_id, account_number, portal_type, password_hash, salt, mfa_required
		 FROM users
		 WHERE portal_type = $2 AND (email = $1 OR portal_id = $1 OR account_number = $1)
		 `

	return r.scanOne(r.db.QueryRowContext(ctx, query, identifier, portalType))
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	query :=
		`SELECT id, name, email, portal_id, account_number, portal_type, password_hash, salt, mfa_required
		 FROM users
		 WHERE id = $1
		 `

	return r.scanOne(r.db.QueryRowContext(ctx, query, id))
}

func (r *PostgresRepository) scanOne(row *sql.Row) (*models.User, error) {
	user := &models.User{}
	err := row.Scan(&user.ID, &user.Name, &user.Email, &user.PortalID,
		&user.AccountNumber, &user.PortalType, &user.PasswordHash, &user.Salt, &user.MFARequired)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return user, nil
}
