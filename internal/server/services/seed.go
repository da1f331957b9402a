package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/plantpal/internal/care"
	shared "github.com/dmitrijs2005/plantpal/internal/models"
	"github.com/dmitrijs2005/plantpal/internal/server/models"
	"github.com/dmitrijs2005/plantpal/internal/server/repositories/repomanager"
)

// Seeder fills a fresh account with a small demo collection.
type Seeder struct {
	now func() time.Time
}

func NewSeeder() *Seeder {
	return &Seeder{now: func() time.Time { return time.Now().UTC() }}
}

type seedPlant struct {
	name, scientific, image, health, location string
	water, waterAgo                           int
	fertilize, fertilizeAgo                   int
	groom, groomAgo                           int
	sunlight, humidity, notes, fertilizer     string
}

var demoPlants = []seedPlant{
	{
		name: "Monstera Deliciosa", scientific: "Monstera deliciosa",
		image: "https://picsum.photos/id/106/500/600", health: "healthy", location: "Living Room",
		water: 7, waterAgo: 5, fertilize: 30, fertilizeAgo: 10, groom: 60, groomAgo: 20,
		sunlight: "Bright, indirect light", humidity: "Medium Humidity",
		notes:      "Loves to be misted occasionally. Check for new leaves unfurling!",
		fertilizer: "Use a balanced liquid fertilizer (20-20-20) every 4 weeks during the growing season.",
	},
	{
		name: "Snake Plant", scientific: "Dracaena trifasciata",
		image: "https://picsum.photos/id/152/500/600", health: "healthy", location: "Bedroom",
		water: 21, waterAgo: 15, fertilize: 90, fertilizeAgo: 50, groom: 120, groomAgo: 50,
		sunlight: "Low to bright, indirect light", humidity: "Low Humidity",
		notes: "Very resilient. Almost impossible to kill. Water sparingly.",
	},
	{
		name: "Fiddle Leaf Fig", scientific: "Ficus lyrata",
		image: "https://picsum.photos/id/206/500/600", health: "attention", location: "Office",
		water: 10, waterAgo: 11, fertilize: 30, fertilizeAgo: 15, groom: 45, groomAgo: 30,
		sunlight: "Bright, consistent light", humidity: "High Humidity",
		notes: "A bit fussy. Avoid moving it and keep away from drafts. Leaves have some brown spots.",
	},
}

type seedEntry struct {
	title, content string
	ago            int
	file           *shared.Attachment
}

var demoJournal = []seedEntry{
	{
		title:   "First Flower on the Orchid",
		content: "Woke up this morning to see the first bloom on the Phalaenopsis orchid. It's a beautiful white and purple flower. So exciting!",
		ago:     10,
		file: &shared.Attachment{
			Name: "orchid_bloom.jpg",
			Type: shared.AttachmentImage,
			URL:  "https://picsum.photos/id/1027/400/300",
		},
	},
	{
		title:   "Repotted the Monstera!",
		content: "Finally moved the Monstera to a larger pot. The roots were looking really healthy. Used a mix of potting soil, perlite, and orchid bark. Watered it thoroughly after repotting.",
		ago:     3,
	},
}

// Seed writes the demo plants and journal entries for userID through r.
// Items are created oldest first, with distinct creation times, so that every
// backend lists them in the usual newest-first order.
func (s *Seeder) Seed(ctx context.Context, r repomanager.Repositories, userID string) error {
	now := s.now()
	ago := func(days int) time.Time { return now.AddDate(0, 0, -days) }

	for i := len(demoPlants) - 1; i >= 0; i-- {
		d := demoPlants[i]
		p := &models.Plant{
			Plant: shared.Plant{
				ID:                   uuid.NewString(),
				Name:                 d.name,
				ScientificName:       d.scientific,
				Image:                d.image,
				Light:                care.DeriveLight(d.sunlight),
				Health:               shared.Health(d.health),
				Location:             d.location,
				WateringFrequency:    d.water,
				LastWatered:          ago(d.waterAgo),
				FertilizingFrequency: d.fertilize,
				LastFertilized:       ago(d.fertilizeAgo),
				GroomingFrequency:    d.groom,
				LastGroomed:          ago(d.groomAgo),
				Sunlight:             d.sunlight,
				Humidity:             d.humidity,
				Notes:                d.notes,
				FertilizerDetails:    d.fertilizer,
				CreatedAt:            now.Add(-time.Duration(i) * time.Millisecond),
			},
			UserID: userID,
		}
		if err := r.Plants().Create(ctx, p); err != nil {
			return err
		}
	}

	for _, d := range demoJournal {
		e := &models.JournalEntry{
			JournalEntry: shared.JournalEntry{
				ID:      uuid.NewString(),
				Title:   d.title,
				Content: d.content,
				Date:    ago(d.ago),
				File:    d.file,
			},
			UserID: userID,
		}
		if err := r.Journal().Create(ctx, e); err != nil {
			return err
		}
	}
	return nil
}
