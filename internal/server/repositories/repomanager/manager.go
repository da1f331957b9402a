// Package repomanager selects a storage backend and hands out its
// repositories.
package repomanager

import (
	"context"

	"github.com/dmitrijs2005/plantpal/internal/server/repositories/journal"
	"github.com/dmitrijs2005/plantpal/internal/server/repositories/plants"
	"github.com/dmitrijs2005/plantpal/internal/server/repositories/users"
)

// Repositories is one consistent set of repositories.
type Repositories interface {
	Users() users.Repository
	Plants() plants.Repository
	Journal() journal.Repository
}

// RepositoryManager owns a storage backend.
//
// InTx runs fn with repositories bound to a single transaction on backends
// that support one (postgres); elsewhere fn gets the plain repositories and
// writes made before a failure stay behind. Callers that need all-or-nothing
// on memory or bolt must undo their own writes.
type RepositoryManager interface {
	Repositories
	InTx(ctx context.Context, fn func(ctx context.Context, r Repositories) error) error
	RunMigrations(ctx context.Context) error
	Ping(ctx context.Context) error
	Close() error
}

// set is a fixed Repositories value.
type set struct {
	users   users.Repository
	plants  plants.Repository
	journal journal.Repository
}

func (s set) Users() users.Repository     { return s.users }
func (s set) Plants() plants.Repository   { return s.plants }
func (s set) Journal() journal.Repository { return s.journal }
