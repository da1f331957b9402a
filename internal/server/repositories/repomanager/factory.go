package repomanager

import (
	"fmt"

	"github.com/dmitrijs2005/plantpal/internal/server/config"
)

// New builds the manager selected by cfg.Storage.
func New(cfg *config.Config) (RepositoryManager, error) {
	switch cfg.Storage {
	case config.StorageMemory, "":
		return NewMemoryRepositoryManager(), nil
	case config.StorageBolt:
		m, err := NewBoltRepositoryManager(cfg.BoltPath)
		if err != nil {
			return nil, err
		}
		return m, nil
	case config.StoragePostgres:
		m, err := NewPostgresRepositoryManager(cfg.DatabaseDSN)
		if err != nil {
			return nil, err
		}
		return m, nil
	}
	return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage)
}
