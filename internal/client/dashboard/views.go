package dashboard

import (
	"slices"
	"time"

	"github.com/dmitrijs2005/plantpal/internal/care"
	"github.com/dmitrijs2005/plantpal/internal/models"
)

// Plants returns a copy of the full collection, newest first.
func (c *Controller) Plants() []models.Plant {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.plants)
}

// Plant looks up one plant by ID.
func (c *Controller) Plant(id string) (models.Plant, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if i := plantIndex(c.plants, id); i >= 0 {
		return c.plants[i], true
	}
	return models.Plant{}, false
}

func (c *Controller) Journal() []models.JournalEntry {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.journal)
}

func (c *Controller) Articles() []models.Article {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.articles)
}

// Visible is the filtered and sorted subset selected by criteria.
func (c *Controller) Visible(criteria care.Criteria, today time.Time) []models.Plant {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return care.Apply(c.plants, criteria, today)
}

func (c *Controller) Stats(today time.Time) models.Stats {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return care.Compute(c.plants, today)
}

// Locations lists the distinct plant locations for the location filter.
func (c *Controller) Locations() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return care.Locations(c.plants)
}

// LightLevels lists the distinct light categories for the light filter.
func (c *Controller) LightLevels() []models.Light {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return care.LightLevels(c.plants)
}

// Err is the last user-visible error, cleared by the next successful
// operation.
func (c *Controller) Err() error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.err
}
