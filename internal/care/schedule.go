package care

import (
	"time"

	"github.com/dmitrijs2005/plantpal/internal/models"
)

// StartOfDay truncates t to midnight in t's location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// SameDay reports whether a and b fall on the same calendar day in b's
// location.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.In(b.Location()).Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// NextDue is last plus frequencyDays calendar days.
func NextDue(last time.Time, frequencyDays int) time.Time {
	return last.AddDate(0, 0, frequencyDays)
}

// IsDue reports whether the cycle's next due date is on or before today.
// Only calendar dates are compared; a zero last time is always due.
func IsDue(last time.Time, frequencyDays int, today time.Time) bool {
	if last.IsZero() {
		return true
	}
	next := StartOfDay(NextDue(last, frequencyDays).In(today.Location()))
	return !next.After(StartOfDay(today))
}

// NeedsWater is IsDue for the watering cycle.
func NeedsWater(p models.Plant, today time.Time) bool {
	return IsDue(p.LastWatered, p.WateringFrequency, today)
}

// DueCycles returns the cycles of p that are due today, in display order.
func DueCycles(p models.Plant, today time.Time) []Cycle {
	var due []Cycle
	for _, c := range Cycles {
		last, freq := Schedule(p, c)
		if IsDue(last, freq, today) {
			due = append(due, c)
		}
	}
	return due
}
