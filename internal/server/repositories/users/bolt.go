package users

import (
	"context"
	"errors"
	"fmt"

	bolt "go.etcd.io/bbolt"

	"github.com/dmitrijs2005/plantpal/internal/boltx"
	"github.com/dmitrijs2005/plantpal/internal/common"
	"github.com/dmitrijs2005/plantpal/internal/server/models"
)

// Bucket holds one JSON-encoded user per email key.
const Bucket = "users"

type BoltRepository struct {
	db *bolt.DB
}

func NewBoltRepository(db *bolt.DB) *BoltRepository {
	return &BoltRepository{db: db}
}

func (r *BoltRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	err := r.db.Update(func(tx *bolt.Tx) error {
		var existing models.User
		found, err := boltx.Get(tx, Bucket, user.Email, &existing)
		if err != nil {
			return err
		}
		if found {
			return common.ErrorAlreadyExists
		}
		return boltx.Put(tx, Bucket, user.Email, user)
	})
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, err
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return user, nil
}

func (r *BoltRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	user := &models.User{}
	var found bool
	err := r.db.View(func(tx *bolt.Tx) error {
		var err error
		found, err = boltx.Get(tx, Bucket, email, user)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	if !found {
		return nil, common.ErrorNotFound
	}
	return user, nil
}

func (r *BoltRepository) DeleteByEmail(ctx context.Context, email string) error {
	err := r.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(Bucket))
		if b == nil || b.Get([]byte(email)) == nil {
			return common.ErrorNotFound
		}
		return b.Delete([]byte(email))
	})
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return err
		}
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}
