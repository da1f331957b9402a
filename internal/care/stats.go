package care

import (
	"time"

	"github.com/dmitrijs2005/plantpal/internal/models"
)

// UpcomingDays is the width of the forward care histogram.
const UpcomingDays = 7

// Compute aggregates plants as of today.
func Compute(plants []models.Plant, today time.Time) models.Stats {
	s := models.Stats{
		Total:      len(plants),
		ByLocation: make(map[string]int),
		ByLight: map[models.Light]int{
			models.LightLow:    0,
			models.LightMedium: 0,
			models.LightBright: 0,
		},
		Upcoming: Upcoming(plants, today),
	}

	for _, p := range plants {
		switch p.Health {
		case models.HealthHealthy:
			s.Healthy++
		case models.HealthAttention:
			s.Attention++
		}
		if NeedsWater(p, today) {
			s.NeedsWater++
		}
		s.ByLocation[p.Location]++
		s.ByLight[p.Light]++
	}

	return s
}

// Upcoming counts watering and fertilizing events falling due on each of
// the next UpcomingDays calendar days, today included. Only exact day
// matches count; overdue cycles are not carried forward.
func Upcoming(plants []models.Plant, today time.Time) []models.DayCount {
	start := StartOfDay(today)
	days := make([]models.DayCount, UpcomingDays)
	for i := range days {
		days[i].Date = start.AddDate(0, 0, i)
	}

	for _, p := range plants {
		for _, c := range []Cycle{Water, Fertilize} {
			last, freq := Schedule(p, c)
			if last.IsZero() {
				continue
			}
			next := NextDue(last, freq)
			for i := range days {
				if SameDay(next, days[i].Date) {
					days[i].Count++
					break
				}
			}
		}
	}

	return days
}
