package journal

import (
	"context"
	"slices"
	"sync"

	"github.com/dmitrijs2005/plantpal/internal/common"
	"github.com/dmitrijs2005/plantpal/internal/server/models"
)

type MemoryRepository struct {
	mu     sync.RWMutex
	byUser map[string][]models.JournalEntry
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{byUser: make(map[string][]models.JournalEntry)}
}

func (r *MemoryRepository) List(ctx context.Context, userID string) ([]models.JournalEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.byUser[userID]), nil
}

func (r *MemoryRepository) Get(ctx context.Context, userID, id string) (*models.JournalEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := indexOf(r.byUser[userID], id)
	if i < 0 {
		return nil, common.ErrorNotFound
	}
	e := r.byUser[userID][i]
	return &e, nil
}

func (r *MemoryRepository) Create(ctx context.Context, entry *models.JournalEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byUser[entry.UserID] = append([]models.JournalEntry{*entry}, r.byUser[entry.UserID]...)
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

func indexOf(items []models.JournalEntry, id string) int {
	return slices.IndexFunc(items, func(e models.JournalEntry) bool { return e.ID == id })
}
