// Package repositories opens the client's local SQLite database and hands
// out its repositories.
package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"

	"github.com/dmitrijs2005/plantpal/internal/client/migrations"
	"github.com/dmitrijs2005/plantpal/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/plantpal/internal/filex"

	_ "modernc.org/sqlite"
)

type Repositories struct {
	Metadata metadata.Repository
	db       *sql.DB
}

// Close releases the database.
func (r *Repositories) Close() error {
	return r.db.Close()
}

func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	return goose.UpContext(ctx, db, ".")
}

// InitDatabase opens (creating if needed) the SQLite file at path and
// applies pending migrations. The parent directory is created and "~" is
// expanded; ":memory:" is used as is.
func InitDatabase(ctx context.Context, path string) (*Repositories, error) {
	dsn := path
	if path != ":memory:" {
		p, err := filex.EnsureParentDir(path)
		if err != nil {
			return nil, err
		}
		dsn = p
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if dsn == ":memory:" {
		// every pooled connection would get its own empty database
		db.SetMaxOpenConns(1)
	}

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Repositories{
		Metadata: metadata.NewSQLiteRepository(db),
		db:       db,
	}, nil
}
