package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/plantpal/internal/care"
	"github.com/dmitrijs2005/plantpal/internal/common"
	"github.com/dmitrijs2005/plantpal/internal/logging"
	shared "github.com/dmitrijs2005/plantpal/internal/models"
	"github.com/dmitrijs2005/plantpal/internal/server/models"
	"github.com/dmitrijs2005/plantpal/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/plantpal/internal/server/storage"
)

// ActivityObserver is notified of every logged care activity.
type ActivityObserver interface {
	ObserveActivity(cycle string)
}

// PlantService manages a user's plants.
type PlantService struct {
	repomanager repomanager.RepositoryManager
	files       storage.FileStore
	log         logging.Logger
	observer    ActivityObserver
	now         func() time.Time
}

func NewPlantService(m repomanager.RepositoryManager, files storage.FileStore, log logging.Logger, observer ActivityObserver) *PlantService {
	return &PlantService{
		repomanager: m,
		files:       files,
		log:         log.With("module", "plants"),
		observer:    observer,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// List returns the user's plants, newest first.
func (s *PlantService) List(ctx context.Context, userID string) ([]shared.Plant, error) {
	items, err := s.repomanager.Plants().List(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]shared.Plant, 0, len(items))
	for i := range items {
		out = append(out, s.view(ctx, &items[i]))
	}
	return out, nil
}

// Create stores a new plant built from draft. The server assigns the ID,
// sets every last-performed time to now, marks it healthy and derives the
// light category from the sunlight text. Without a photo the default image
// is used.
func (s *PlantService) Create(ctx context.Context, userID string, draft shared.PlantDraft, photo *shared.Photo) (shared.Plant, error) {
	if err := validateDraft(&draft); err != nil {
		return shared.Plant{}, err
	}

	now := s.now()
	p := &models.Plant{
		Plant: shared.Plant{
			ID:                   uuid.NewString(),
			Name:                 draft.Name,
			ScientificName:       draft.ScientificName,
			Image:                common.DefaultPlantImage,
			Light:                care.DeriveLight(draft.Sunlight),
			Health:               shared.HealthHealthy,
			Location:             draft.Location,
			WateringFrequency:    draft.WateringFrequency,
			LastWatered:          now,
			FertilizingFrequency: draft.FertilizingFrequency,
			LastFertilized:       now,
			GroomingFrequency:    draft.GroomingFrequency,
			LastGroomed:          now,
			Sunlight:             draft.Sunlight,
			Humidity:             draft.Humidity,
			Notes:                draft.Notes,
			FertilizerDetails:    draft.FertilizerDetails,
			CreatedAt:            now,
		},
		UserID: userID,
	}

	if photo != nil && len(photo.Data) > 0 {
		key := storage.NewKey(userID, "plants", photo.Name)
		if err := s.files.Put(ctx, key, photo.ContentType, photo.Data); err != nil {
			return shared.Plant{}, fmt.Errorf("store photo: %w", err)
		}
		p.PhotoKey = key
	}

	if err := s.repomanager.Plants().Create(ctx, p); err != nil {
		removeFile(ctx, s.files, s.log, p.PhotoKey)
		return shared.Plant{}, err
	}

	s.log.Info(ctx, "plant created", "plant_id", p.ID, "user_id", userID)
	return s.view(ctx, p), nil
}

// Update merges the JSON object patch into the stored plant. Identity and
// creation time cannot be changed; light is re-derived from sunlight.
func (s *PlantService) Update(ctx context.Context, userID, id string, patch []byte) (shared.Plant, error) {
	if err := checkID(id); err != nil {
		return shared.Plant{}, err
	}
	repo := s.repomanager.Plants()

	existing, err := repo.Get(ctx, userID, id)
	if err != nil {
		return shared.Plant{}, err
	}

	merged := existing.Plant
	if err := json.Unmarshal(patch, &merged); err != nil {
		return shared.Plant{}, fmt.Errorf("%w: %v", common.ErrorValidation, err)
	}
	merged.ID = existing.ID
	merged.CreatedAt = existing.CreatedAt
	merged.Image = existing.Image
	merged.Light = care.DeriveLight(merged.Sunlight)

	if err := validatePlant(&merged); err != nil {
		return shared.Plant{}, err
	}

	existing.Plant = merged
	if err := repo.Update(ctx, existing); err != nil {
		return shared.Plant{}, err
	}
	return s.view(ctx, existing), nil
}

// Delete removes the plant and its photo.
func (s *PlantService) Delete(ctx context.Context, userID, id string) error {
	if err := checkID(id); err != nil {
		return err
	}
	repo := s.repomanager.Plants()

	existing, err := repo.Get(ctx, userID, id)
	if err != nil {
		return err
	}
	if err := repo.Delete(ctx, userID, id); err != nil {
		return err
	}
	removeFile(ctx, s.files, s.log, existing.PhotoKey)
	return nil
}

// LogActivity records that the given care activity happened now. An unknown
// plant is reported before an unknown activity.
func (s *PlantService) LogActivity(ctx context.Context, userID, id, activity string) (shared.Plant, error) {
	if err := checkID(id); err != nil {
		return shared.Plant{}, err
	}
	repo := s.repomanager.Plants()

	p, err := repo.Get(ctx, userID, id)
	if err != nil {
		return shared.Plant{}, err
	}

	cycle, err := care.ParseCycle(activity)
	if err != nil {
		return shared.Plant{}, fmt.Errorf("%w: %w", common.ErrorValidation, err)
	}

	if err := care.Record(&p.Plant, cycle, s.now()); err != nil {
		return shared.Plant{}, err
	}
	if err := repo.Update(ctx, p); err != nil {
		return shared.Plant{}, err
	}

	if s.observer != nil {
		s.observer.ObserveActivity(string(cycle))
	}
	return s.view(ctx, p), nil
}

// Stats aggregates the user's plants as of now.
func (s *PlantService) Stats(ctx context.Context, userID string) (shared.Stats, error) {
	items, err := s.repomanager.Plants().List(ctx, userID)
	if err != nil {
		return shared.Stats{}, err
	}
	plants := make([]shared.Plant, len(items))
	for i := range items {
		plants[i] = items[i].Plant
	}
	return care.Compute(plants, s.now()), nil
}

func (s *PlantService) view(ctx context.Context, p *models.Plant) shared.Plant {
	out := p.Plant
	out.Image = resolveURL(ctx, s.files, s.log, p.PhotoKey, p.Image)
	return out
}

func validateDraft(d *shared.PlantDraft) error {
	d.Name = strings.TrimSpace(d.Name)
	if d.Name == "" {
		return fmt.Errorf("%w: name is required", common.ErrorValidation)
	}
	if d.WateringFrequency == 0 {
		d.WateringFrequency = shared.DefaultWateringFrequency
	}
	if d.FertilizingFrequency == 0 {
		d.FertilizingFrequency = shared.DefaultFertilizingFrequency
	}
	if d.GroomingFrequency == 0 {
		d.GroomingFrequency = shared.DefaultGroomingFrequency
	}
	if d.Sunlight == "" {
		d.Sunlight = shared.DefaultSunlight
	}
	if d.Humidity == "" {
		d.Humidity = shared.DefaultHumidity
	}
	if d.WateringFrequency < 0 || d.FertilizingFrequency < 0 || d.GroomingFrequency < 0 {
		return fmt.Errorf("%w: frequencies must be positive", common.ErrorValidation)
	}
	return nil
}

func validatePlant(p *shared.Plant) error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("%w: name is required", common.ErrorValidation)
	}
	if p.WateringFrequency <= 0 || p.FertilizingFrequency <= 0 || p.GroomingFrequency <= 0 {
		return fmt.Errorf("%w: frequencies must be positive", common.ErrorValidation)
	}
	if p.Health != shared.HealthHealthy && p.Health != shared.HealthAttention {
		return fmt.Errorf("%w: unknown health %q", common.ErrorValidation, p.Health)
	}
	return nil
}

// checkID rejects IDs the server could never have issued. Stores with a
// typed id column would otherwise fail on them instead of finding nothing.
func checkID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return common.ErrorNotFound
	}
	return nil
}

// IsValidation reports whether err is a client input error.
func IsValidation(err error) bool {
	return errors.Is(err, common.ErrorValidation)
}
