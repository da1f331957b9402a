package models

import "time"

// DayCount is one bucket of the upcoming-care histogram.
type DayCount struct {
	Date  time.Time `json:"date"`
	Count int       `json:"count"`
}

// Stats aggregates a plant collection.
type Stats struct {
	Total      int            `json:"total"`
	Healthy    int            `json:"healthy"`
	Attention  int            `json:"attention"`
	NeedsWater int            `json:"needsWater"`
	ByLocation map[string]int `json:"byLocation"`
	ByLight    map[Light]int  `json:"byLight"`
	Upcoming   []DayCount     `json:"upcoming"`
}
