// Package care is the schedule and status engine: next-due dates for the
// three care cycles, light derivation, filtering, sorting and statistics
// over plant collections. Every function is pure.
package care

import (
	"errors"
	"time"

	"github.com/dmitrijs2005/plantpal/internal/models"
)

// ErrInvalidActivity is returned for an activity that is not a known cycle.
var ErrInvalidActivity = errors.New("invalid activity")

// Cycle is one of the recurring care actions tracked per plant.
type Cycle string

const (
	Water     Cycle = "water"
	Fertilize Cycle = "fertilize"
	Groom     Cycle = "groom"
)

// Cycles lists every cycle in display order.
var Cycles = []Cycle{Water, Fertilize, Groom}

func ParseCycle(s string) (Cycle, error) {
	switch c := Cycle(s); c {
	case Water, Fertilize, Groom:
		return c, nil
	}
	return "", ErrInvalidActivity
}

// Schedule returns the last-performed time and frequency of cycle c.
func Schedule(p models.Plant, c Cycle) (last time.Time, frequencyDays int) {
	switch c {
	case Water:
		return p.LastWatered, p.WateringFrequency
	case Fertilize:
		return p.LastFertilized, p.FertilizingFrequency
	case Groom:
		return p.LastGroomed, p.GroomingFrequency
	}
	return time.Time{}, 0
}

// Record sets the last-performed timestamp of cycle c to at. Repeated calls
// keep the last value.
func Record(p *models.Plant, c Cycle, at time.Time) error {
	switch c {
	case Water:
		p.LastWatered = at
	case Fertilize:
		p.LastFertilized = at
	case Groom:
		p.LastGroomed = at
	default:
		return ErrInvalidActivity
	}
	return nil
}
