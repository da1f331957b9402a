package repomanager

import (
	"context"
	"database/sql"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/dmitrijs2005/plantpal/internal/dbx"
	"github.com/dmitrijs2005/plantpal/internal/server/migrations"
	"github.com/dmitrijs2005/plantpal/internal/server/repositories/journal"
	"github.com/dmitrijs2005/plantpal/internal/server/repositories/plants"
	"github.com/dmitrijs2005/plantpal/internal/server/repositories/users"
)

// PostgresRepositoryManager vends PostgreSQL-backed repositories and runs
// the embedded goose migrations.
type PostgresRepositoryManager struct {
	db *sql.DB
}

// NewPostgresRepositoryManager opens a pgx connection pool for dsn.
func NewPostgresRepositoryManager(dsn string) (*PostgresRepositoryManager, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}
	return NewPostgresRepositoryManagerFromDB(db), nil
}

func NewPostgresRepositoryManagerFromDB(db *sql.DB) *PostgresRepositoryManager {
	return &PostgresRepositoryManager{db: db}
}

func bind(db dbx.DBTX) set {
	return set{
		users:   users.NewPostgresRepository(db),
		plants:  plants.NewPostgresRepository(db),
		journal: journal.NewPostgresRepository(db),
	}
}

func (m *PostgresRepositoryManager) Users() users.Repository     { return users.NewPostgresRepository(m.db) }
func (m *PostgresRepositoryManager) Plants() plants.Repository   { return plants.NewPostgresRepository(m.db) }
func (m *PostgresRepositoryManager) Journal() journal.Repository { return journal.NewPostgresRepository(m.db) }

// InTx runs fn inside one database transaction.
func (m *PostgresRepositoryManager) InTx(ctx context.Context, fn func(ctx context.Context, r Repositories) error) error {
	return dbx.WithTx(ctx, m.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return fn(ctx, bind(tx))
	})
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// RunMigrations sets up goose with the embedded migrations and runs them.
func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("pgx"); err != nil {
		return err
	}
	return gooseUpContext(ctx, m.db, ".")
}

func (m *PostgresRepositoryManager) Ping(ctx context.Context) error {
	return m.db.PingContext(ctx)
}

func (m *PostgresRepositoryManager) Close() error {
	return m.db.Close()
}
