// Package plants stores plant records. Every operation is scoped by owner.
package plants

import (
	"context"

	"github.com/dmitrijs2005/plantpal/internal/server/models"
)

// Repository persists plants. List returns the newest plant first. Get,
// Update and Delete report common.ErrorNotFound when the plant does not exist
// for that owner.
type Repository interface {
	List(ctx context.Context, userID string) ([]models.Plant, error)
	Get(ctx context.Context, userID, id string) (*models.Plant, error)
	Create(ctx context.Context, plant *models.Plant) error
	Update(ctx context.Context, plant *models.Plant) error
	Delete(ctx context.Context, userID, id string) error
}
