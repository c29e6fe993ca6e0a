// Package repomanager wires concrete repositories to database handles so
// services can run any repository against either *sql.DB or an open
// transaction.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/northlink/selfcare/internal/dbx"
	"github.com/northlink/selfcare/internal/server/repositories/invoices"
	"github.com/northlink/selfcare/internal/server/repositories/refreshtokens"
	"github.com/northlink/selfcare/internal/server/repositories/users"
)

type RepositoryManager interface {
	Users(db dbx.DBTX) users.Repository
	RefreshTokens(db dbx.DBTX) refreshtokens.Repository
	Invoices(db dbx.DBTX) invoices.Repository
	RunMigrations(ctx context.Context, db *sql.DB) error
}
