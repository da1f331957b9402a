package care

import (
	"slices"
	"strings"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/dmitrijs2005/plantpal/internal/models"
)

// Category is the primary dashboard filter.
type Category string

const (
	CategoryAll            Category = "all"
	CategoryNeedsWater     Category = "needs-water"
	CategoryHealthy        Category = "healthy"
	CategoryNeedsAttention Category = "attention"
)

// SortOrder is the ordering of the visible plant list.
type SortOrder string

const (
	SortNameAsc      SortOrder = "name-asc"
	SortNameDesc     SortOrder = "name-desc"
	SortNextWatering SortOrder = "next-watering"
)

// Criteria selects and orders the visible subset of a collection. Empty
// string fields match everything.
type Criteria struct {
	Category Category
	Search   string
	Location string
	Light    models.Light
	Sort     SortOrder
}

// Match reports whether p passes every predicate of c.
func (c Criteria) Match(p models.Plant, today time.Time) bool {
	switch c.Category {
	case CategoryNeedsWater:
		if !NeedsWater(p, today) {
			return false
		}
	case CategoryHealthy:
		if p.Health != models.HealthHealthy {
			return false
		}
	case CategoryNeedsAttention:
		if p.Health != models.HealthAttention {
			return false
		}
	}

	if c.Search != "" {
		q := strings.ToLower(c.Search)
		if !strings.Contains(strings.ToLower(p.Name), q) &&
			!strings.Contains(strings.ToLower(p.ScientificName), q) {
			return false
		}
	}

	if c.Location != "" && p.Location != c.Location {
		return false
	}

	if c.Light != "" && p.Light != c.Light {
		return false
	}

	return true
}

// Apply returns a new slice holding the plants matching c, ordered by
// c.Sort. The input slice is not modified. Equal keys keep input order.
func Apply(plants []models.Plant, c Criteria, today time.Time) []models.Plant {
	out := make([]models.Plant, 0, len(plants))
	for _, p := range plants {
		if c.Match(p, today) {
			out = append(out, p)
		}
	}

	switch c.Sort {
	case SortNameDesc:
		cmp := nameOrder()
		slices.SortStableFunc(out, func(a, b models.Plant) int { return cmp(b.Name, a.Name) })
	case SortNextWatering:
		slices.SortStableFunc(out, func(a, b models.Plant) int {
			return NextDue(a.LastWatered, a.WateringFrequency).Compare(NextDue(b.LastWatered, b.WateringFrequency))
		})
	case SortNameAsc, "":
		cmp := nameOrder()
		slices.SortStableFunc(out, func(a, b models.Plant) int { return cmp(a.Name, b.Name) })
	}

	return out
}

// nameOrder compares names the way people read them: letters before case,
// so "aloe" sorts next to "Aloe" and before "Begonia". A Collator is not safe
// for concurrent use, so each sort gets its own.
func nameOrder() func(a, b string) int {
	c := collate.New(language.Und)
	return func(a, b string) int {
		if r := c.CompareString(a, b); r != 0 {
			return r
		}
		return strings.Compare(a, b)
	}
}

// Locations returns the distinct non-empty locations in first-seen order.
func Locations(plants []models.Plant) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, p := range plants {
		if p.Location == "" {
			continue
		}
		if _, ok := seen[p.Location]; ok {
			continue
		}
		seen[p.Location] = struct{}{}
		out = append(out, p.Location)
	}
	return out
}

// LightLevels returns the distinct light categories in first-seen order.
func LightLevels(plants []models.Plant) []models.Light {
	seen := make(map[models.Light]struct{})
	var out []models.Light
	for _, p := range plants {
		if p.Light == "" {
			continue
		}
		if _, ok := seen[p.Light]; ok {
			continue
		}
		seen[p.Light] = struct{}{}
		out = append(out, p.Light)
	}
	return out
}
