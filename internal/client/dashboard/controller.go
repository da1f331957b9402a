// Package dashboard holds the signed-in user's plants, journal and articles
// in memory and mediates every change to them. Deletes, edits and activity
// logging are applied locally first and rolled back to the previous
// collection if the server rejects them; creates wait for the server
// because it assigns the IDs.
package dashboard

import (
	"context"
	"errors"
	"slices"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/dmitrijs2005/plantpal/internal/care"
	"github.com/dmitrijs2005/plantpal/internal/models"
)

// ErrUnknownPlant and ErrUnknownEntry are returned for IDs not in the
// loaded collections.
var (
	ErrUnknownPlant = errors.New("plant not found")
	ErrUnknownEntry = errors.New("journal entry not found")
)

// API is the server surface the controller uses.
type API interface {
	ListPlants(ctx context.Context) ([]models.Plant, error)
	CreatePlant(ctx context.Context, draft models.PlantDraft, photo *models.Photo) (models.Plant, error)
	UpdatePlant(ctx context.Context, p models.Plant) (models.Plant, error)
	DeletePlant(ctx context.Context, id string) error
	LogActivity(ctx context.Context, id, activity string) (models.Plant, error)

	ListJournal(ctx context.Context) ([]models.JournalEntry, error)
	CreateJournalEntry(ctx context.Context, title, content string, file *models.Photo) (models.JournalEntry, error)
	DeleteJournalEntry(ctx context.Context, id string) error

	ListArticles(ctx context.Context) ([]models.Article, error)
}

type Controller struct {
	api API
	now func() time.Time

	mu       sync.RWMutex
	plants   []models.Plant
	journal  []models.JournalEntry
	articles []models.Article
	err      error
}

func New(api API) *Controller {
	return &Controller{api: api, now: time.Now}
}

// Load fetches all three collections concurrently. If any fetch fails every
// collection is left empty and the first error is recorded and returned.
func (c *Controller) Load(ctx context.Context) error {
	var (
		plants   []models.Plant
		journal  []models.JournalEntry
		articles []models.Article
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		plants, err = c.api.ListPlants(gctx)
		return err
	})
	g.Go(func() (err error) {
		journal, err = c.api.ListJournal(gctx)
		return err
	})
	g.Go(func() (err error) {
		articles, err = c.api.ListArticles(gctx)
		return err
	})
	err := g.Wait()

	c.mu.Lock()
	defer c.mu.Unlock()

	if err != nil {
		c.plants, c.journal, c.articles = nil, nil, nil
		c.err = err
		return err
	}
	c.plants, c.journal, c.articles = plants, journal, articles
	c.err = nil
	return nil
}

// AddPlant creates the plant on the server and prepends the stored record.
func (c *Controller) AddPlant(ctx context.Context, draft models.PlantDraft, photo *models.Photo) (models.Plant, error) {
	p, err := c.api.CreatePlant(ctx, draft, photo)

	c.mu.Lock()
	defer c.mu.Unlock()

	if err != nil {
		c.err = err
		return models.Plant{}, err
	}
	c.plants = slices.Insert(c.plants, 0, p)
	c.err = nil
	return p, nil
}

// UpdatePlant replaces the plant with p, then with the server's version.
func (c *Controller) UpdatePlant(ctx context.Context, p models.Plant) error {
	snapshot, err := c.mutatePlants(func(plants []models.Plant) ([]models.Plant, error) {
		i := plantIndex(plants, p.ID)
		if i < 0 {
			return nil, ErrUnknownPlant
		}
		plants[i] = p
		return plants, nil
	})
	if err != nil {
		return err
	}

	stored, err := c.api.UpdatePlant(ctx, p)
	return c.settlePlants(snapshot, stored, err)
}

// DeletePlant removes the plant at once and restores it if the server
// refuses.
func (c *Controller) DeletePlant(ctx context.Context, id string) error {
	snapshot, err := c.mutatePlants(func(plants []models.Plant) ([]models.Plant, error) {
		i := plantIndex(plants, id)
		if i < 0 {
			return nil, ErrUnknownPlant
		}
		return slices.Delete(plants, i, i+1), nil
	})
	if err != nil {
		return err
	}

	return c.settlePlants(snapshot, models.Plant{}, c.api.DeletePlant(ctx, id))
}

// LogActivity marks the cycle as done now, then adopts the server's record.
func (c *Controller) LogActivity(ctx context.Context, id, activity string) error {
	cycle, err := care.ParseCycle(activity)
	if err != nil {
		return c.fail(err)
	}

	now := c.now()
	snapshot, err := c.mutatePlants(func(plants []models.Plant) ([]models.Plant, error) {
		i := plantIndex(plants, id)
		if i < 0 {
			return nil, ErrUnknownPlant
		}
		if err := care.Record(&plants[i], cycle, now); err != nil {
			return nil, err
		}
		return plants, nil
	})
	if err != nil {
		return err
	}

	stored, err := c.api.LogActivity(ctx, id, string(cycle))
	return c.settlePlants(snapshot, stored, err)
}

// AddJournalEntry creates the entry on the server and prepends it.
func (c *Controller) AddJournalEntry(ctx context.Context, title, content string, file *models.Photo) (models.JournalEntry, error) {
	e, err := c.api.CreateJournalEntry(ctx, title, content, file)

	c.mu.Lock()
	defer c.mu.Unlock()

	if err != nil {
		c.err = err
		return models.JournalEntry{}, err
	}
	c.journal = slices.Insert(c.journal, 0, e)
	c.err = nil
	return e, nil
}

// DeleteJournalEntry removes the entry at once and restores the journal if
// the server refuses.
func (c *Controller) DeleteJournalEntry(ctx context.Context, id string) error {
	c.mu.Lock()
	i := slices.IndexFunc(c.journal, func(e models.JournalEntry) bool { return e.ID == id })
	if i < 0 {
		c.err = ErrUnknownEntry
		c.mu.Unlock()
		return ErrUnknownEntry
	}
	snapshot := slices.Clone(c.journal)
	c.journal = slices.Delete(slices.Clone(c.journal), i, i+1)
	c.mu.Unlock()

	err := c.api.DeleteJournalEntry(ctx, id)

	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		c.journal = snapshot
		c.err = err
		return err
	}
	c.err = nil
	return nil
}

// mutatePlants applies fn to a copy of the plants, installs the result and
// returns the previous collection.
func (c *Controller) mutatePlants(fn func([]models.Plant) ([]models.Plant, error)) ([]models.Plant, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	snapshot := c.plants
	next, err := fn(slices.Clone(c.plants))
	if err != nil {
		c.err = err
		return nil, err
	}
	c.plants = next
	return snapshot, nil
}

// settlePlants finishes an optimistic change: on failure the snapshot comes
// back, on success a non-empty stored record replaces the local one.
func (c *Controller) settlePlants(snapshot []models.Plant, stored models.Plant, err error) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err != nil {
		c.plants = snapshot
		c.err = err
		return err
	}
	if stored.ID != "" {
		if i := plantIndex(c.plants, stored.ID); i >= 0 {
			c.plants[i] = stored
		}
	}
	c.err = nil
	return nil
}

func (c *Controller) fail(err error) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.err = err
	return err
}

func plantIndex(plants []models.Plant, id string) int {
	return slices.IndexFunc(plants, func(p models.Plant) bool { return p.ID == id })
}
