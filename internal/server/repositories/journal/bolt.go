package journal

import (
	"context"
	"errors"
	"fmt"
	"slices"

	bolt "go.etcd.io/bbolt"

	"github.com/dmitrijs2005/plantpal/internal/boltx"
	"github.com/dmitrijs2005/plantpal/internal/common"
	"github.com/dmitrijs2005/plantpal/internal/server/models"
)

// Bucket holds one JSON array of entries per owner ID, newest first.
const Bucket = "journal"

type BoltRepository struct {
	db *bolt.DB
}

func NewBoltRepository(db *bolt.DB) *BoltRepository {
	return &BoltRepository{db: db}
}

func (r *BoltRepository) List(ctx context.Context, userID string) ([]models.JournalEntry, error) {
	items, err := boltx.ViewCollection[models.JournalEntry](r.db, Bucket, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return items, nil
}

func (r *BoltRepository) Get(ctx context.Context, userID, id string) (*models.JournalEntry, error) {
	items, err := r.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	i := indexOf(items, id)
	if i < 0 {
		return nil, common.ErrorNotFound
	}
	return &items[i], nil
}

func (r *BoltRepository) Create(ctx context.Context, entry *models.JournalEntry) error {
	err := boltx.UpdateCollection(r.db, Bucket, entry.UserID, func(items []models.JournalEntry) ([]models.JournalEntry, error) {
		return append([]models.JournalEntry{*entry}, items...), nil
	})
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *BoltRepository) Delete(ctx context.Context, userID, id string) error {
	err := boltx.UpdateCollection(r.db, Bucket, userID, func(items []models.JournalEntry) ([]models.JournalEntry, error) {
		i := indexOf(items, id)
		if i < 0 {
			return nil, common.ErrorNotFound
		}
		return slices.Delete(items, i, i+1), nil
	})
	if err != nil && !errors.Is(err, common.ErrorNotFound) {
		return fmt.Errorf("db error: %w", err)
	}
	return err
}
