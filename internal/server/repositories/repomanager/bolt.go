package repomanager

import (
	"context"
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/dmitrijs2005/plantpal/internal/boltx"
	"github.com/dmitrijs2005/plantpal/internal/filex"
	"github.com/dmitrijs2005/plantpal/internal/server/repositories/journal"
	"github.com/dmitrijs2005/plantpal/internal/server/repositories/plants"
	"github.com/dmitrijs2005/plantpal/internal/server/repositories/users"
)

// BoltRepositoryManager stores every collection in a single bbolt file.
type BoltRepositoryManager struct {
	set
	db *bolt.DB
}

// NewBoltRepositoryManager opens (creating if needed) the database at path.
func NewBoltRepositoryManager(path string) (*BoltRepositoryManager, error) {
	path, err := filex.EnsureParentDir(path)
	if err != nil {
		return nil, err
	}

	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open bolt %s: %w", path, err)
	}

	return &BoltRepositoryManager{
		db: db,
		set: set{
			users:   users.NewBoltRepository(db),
			plants:  plants.NewBoltRepository(db),
			journal: journal.NewBoltRepository(db),
		},
	}, nil
}

func (m *BoltRepositoryManager) InTx(ctx context.Context, fn func(ctx context.Context, r Repositories) error) error {
	return fn(ctx, m.set)
}

// RunMigrations creates the collection buckets.
func (m *BoltRepositoryManager) RunMigrations(context.Context) error {
	return boltx.EnsureBuckets(m.db, users.Bucket, plants.Bucket, journal.Bucket)
}

func (m *BoltRepositoryManager) Ping(context.Context) error {
	return m.db.View(func(*bolt.Tx) error { return nil })
}

func (m *BoltRepositoryManager) Close() error {
	return m.db.Close()
}
