package plants

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

// Bucket holds one JSON array of plants per owner ID, newest first.
const Bucket = "plants"

type BoltRepository struct {
	db *bolt.DB
}

func NewBoltRepository(db *bolt.DB) *BoltRepository {
	return &BoltRepository{db: db}
}

func (r *BoltRepository) List(ctx context.Context, userID string) ([]models.Plant, error) {
	items, err := boltx.ViewCollection[models.Plant](r.db, Bucket, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return items, nil
}

func (r *BoltRepository) Get(ctx context.Context, userID, id string) (*models.Plant, error) {
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

func (r *BoltRepository) Create(ctx context.Context, plant *models.Plant) error {
	return r.update(plant.UserID, func(items []models.Plant) ([]models.Plant, error) {
		return append([]models.Plant{*plant}, items...), nil
	})
}

func (r *BoltRepository) Update(ctx context.Context, plant *models.Plant) error {
	return r.update(plant.UserID, func(items []models.Plant) ([]models.Plant, error) {
		i := indexOf(items, plant.ID)
		if i < 0 {
			return nil, common.ErrorNotFound
		}
		items[i] = *plant
		return items, nil
	})
}

func (r *BoltRepository) Delete(ctx context.Context, userID, id string) error {
	return r.update(userID, func(items []models.Plant) ([]models.Plant, error) {
		i := indexOf(items, id)
		if i < 0 {
			return nil, common.ErrorNotFound
		}
		return slices.Delete(items, i, i+1), nil
	})
}

func (r *BoltRepository) update(userID string, fn func([]models.Plant) ([]models.Plant, error)) error {
	err := boltx.UpdateCollection(r.db, Bucket, userID, fn)
	if err != nil && !errors.Is(err, common.ErrorNotFound) {
		return fmt.Errorf("db error: %w", err)
	}
	return err
}
