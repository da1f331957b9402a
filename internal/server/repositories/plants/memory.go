package plants

import (
	"context"
	"slices"
	"sync"

	"github.com/dmitrijs2005/plantpal/internal/common"
	"github.com/dmitrijs2005/plantpal/internal/server/models"
)

// MemoryRepository keeps each owner's plants in a slice, newest first.
type MemoryRepository struct {
	mu     sync.RWMutex
	byUser map[string][]models.Plant
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{byUser: make(map[string][]models.Plant)}
}

func (r *MemoryRepository) List(ctx context.Context, userID string) ([]models.Plant, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.byUser[userID]), nil
}

func (r *MemoryRepository) Get(ctx context.Context, userID, id string) (*models.Plant, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := indexOf(r.byUser[userID], id)
	if i < 0 {
		return nil, common.ErrorNotFound
	}
	p := r.byUser[userID][i]
	return &p, nil
}

func (r *MemoryRepository) Create(ctx context.Context, plant *models.Plant) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byUser[plant.UserID] = append([]models.Plant{*plant}, r.byUser[plant.UserID]...)
	return nil
}

func (r *MemoryRepository) Update(ctx context.Context, plant *models.Plant) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	items := r.byUser[plant.UserID]
	i := indexOf(items, plant.ID)
	if i < 0 {
		return common.ErrorNotFound
	}
	items[i] = *plant
	return nil
}

func (r *MemoryRepository) Delete(ctx context.Context, userID, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	items := r.byUser[userID]
	i := indexOf(items, id)
	if i < 0 {
		return common.ErrorNotFound
	}
	r.byUser[userID] = slices.Delete(items, i, i+1)
	return nil
}

func indexOf(items []models.Plant, id string) int {
	return slices.IndexFunc(items, func(p models.Plant) bool { return p.ID == id })
}
