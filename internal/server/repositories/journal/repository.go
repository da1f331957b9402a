// Package journal stores journal entries. Entries are immutable once
// created; they can only be listed, fetched and deleted.
package journal

import (
	"context"

	"github.com/dmitrijs2005/plantpal/internal/server/models"
)

// Repository persists journal entries, newest first. Get and Delete report
// common.ErrorNotFound for an unknown entry of that owner.
type Repository interface {
	List(ctx context.Context, userID string) ([]models.JournalEntry, error)
	Get(ctx context.Context, userID, id string) (*models.JournalEntry, error)
	Create(ctx context.Context, entry *models.JournalEntry) error
	Delete(ctx context.Context, userID, id string) error
}
