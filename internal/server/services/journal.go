package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/plantpal/internal/common"
	"github.com/dmitrijs2005/plantpal/internal/logging"
	shared "github.com/dmitrijs2005/plantpal/internal/models"
	"github.com/dmitrijs2005/plantpal/internal/server/models"
	"github.com/dmitrijs2005/plantpal/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/plantpal/internal/server/storage"
)

// JournalService manages a user's care journal.
type JournalService struct {
	repomanager repomanager.RepositoryManager
	files       storage.FileStore
	log         logging.Logger
	now         func() time.Time
}

func NewJournalService(m repomanager.RepositoryManager, files storage.FileStore, log logging.Logger) *JournalService {
	return &JournalService{
		repomanager: m,
		files:       files,
		log:         log.With("module", "journal"),
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// List returns the user's entries, newest first.
func (s *JournalService) List(ctx context.Context, userID string) ([]shared.JournalEntry, error) {
	items, err := s.repomanager.Journal().List(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]shared.JournalEntry, 0, len(items))
	for i := range items {
		out = append(out, s.view(ctx, &items[i]))
	}
	return out, nil
}

// Create adds an entry dated now. The attachment is optional.
func (s *JournalService) Create(ctx context.Context, userID, title, content string, file *shared.Photo) (shared.JournalEntry, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return shared.JournalEntry{}, fmt.Errorf("%w: title is required", common.ErrorValidation)
	}

	e := &models.JournalEntry{
		JournalEntry: shared.JournalEntry{
			ID:      uuid.NewString(),
			Title:   title,
			Content: content,
			Date:    s.now(),
		},
		UserID: userID,
	}

	if file != nil && len(file.Data) > 0 {
		key := storage.NewKey(userID, "journal", file.Name)
		if err := s.files.Put(ctx, key, file.ContentType, file.Data); err != nil {
			return shared.JournalEntry{}, fmt.Errorf("store attachment: %w", err)
		}
		e.FileKey = key
		e.File = &shared.Attachment{
			Name: file.Name,
			Type: shared.AttachmentTypeFor(file.ContentType),
		}
	}

	if err := s.repomanager.Journal().Create(ctx, e); err != nil {
		removeFile(ctx, s.files, s.log, e.FileKey)
		return shared.JournalEntry{}, err
	}
	return s.view(ctx, e), nil
}

// Delete removes the entry and its attachment.
func (s *JournalService) Delete(ctx context.Context, userID, id string) error {
	if err := checkID(id); err != nil {
		return err
	}
	repo := s.repomanager.Journal()

	existing, err := repo.Get(ctx, userID, id)
	if err != nil {
		return err
	}
	if err := repo.Delete(ctx, userID, id); err != nil {
		return err
	}
	removeFile(ctx, s.files, s.log, existing.FileKey)
	return nil
}

func (s *JournalService) view(ctx context.Context, e *models.JournalEntry) shared.JournalEntry {
	out := e.JournalEntry
	if out.File != nil {
		f := *out.File
		f.URL = resolveURL(ctx, s.files, s.log, e.FileKey, f.URL)
		out.File = &f
	}
	return out
}
