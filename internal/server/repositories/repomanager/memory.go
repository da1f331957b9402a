package repomanager

import (
	"context"

	"github.com/dmitrijs2005/plantpal/internal/server/repositories/journal"
	"github.com/dmitrijs2005/plantpal/internal/server/repositories/plants"
	"github.com/dmitrijs2005/plantpal/internal/server/repositories/users"
)

// MemoryRepositoryManager keeps everything in process memory. Data is lost
// on restart.
type MemoryRepositoryManager struct {
	set
}

func NewMemoryRepositoryManager() *MemoryRepositoryManager {
	return &MemoryRepositoryManager{set: set{
		users:   users.NewMemoryRepository(),
		plants:  plants.NewMemoryRepository(),
		journal: journal.NewMemoryRepository(),
	}}
}

func (m *MemoryRepositoryManager) InTx(ctx context.Context, fn func(ctx context.Context, r Repositories) error) error {
	return fn(ctx, m.set)
}

func (m *MemoryRepositoryManager) RunMigrations(context.Context) error { return nil }
func (m *MemoryRepositoryManager) Ping(context.Context) error          { return nil }
func (m *MemoryRepositoryManager) Close() error                        { return nil }
