package client

import (
	"context"
	"database/sql"

	"github.com/pressly/goose/v3"

	"github.com/northlink/selfcare/internal/client/migrations"
	"github.com/northlink/selfcare/internal/client/repositories/invoicecache"
	"github.com/northlink/selfcare/internal/client/repositories/metadata"

	_ "modernc.org/sqlite"
)

type Repositories struct {
	Metadata metadata.Repository
	Invoices invoicecache.Repository
	DB       *sql.DB
}

func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return err
	}

	return goose.UpContext(ctx, db, ".")
}

func InitDatabase(ctx context.Context, dsn string) (*Repositories, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	if err := RunMigrations(ctx, db); err != nil {
		return nil, err
	}

	repos := &Repositories{
		Metadata: metadata.NewSQLiteRepository(db),
		Invoices: invoicecache.NewSQLiteRepository(db),
		DB:       db,
	}
	return repos, nil
}
