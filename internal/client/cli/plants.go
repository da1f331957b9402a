package cli

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/dmitrijs2005/plantpal/internal/care"
	"github.com/dmitrijs2005/plantpal/internal/models"
)

// AutofillFailedMessage is printed when the assistant cannot suggest care
// details; the plant is still created from the flags given.
const AutofillFailedMessage = "Sorry, we couldn't get AI suggestions. Please check your connection and try again."

type PlantsListCmd struct {
	Filter   string `help:"One of all, needs-water, healthy, attention." enum:"all,needs-water,healthy,attention" default:"all" short:"f"`
	Search   string `help:"Match name or scientific name." short:"s"`
	Location string `help:"Only plants in this location." short:"l"`
	Light    string `help:"Only plants with this light level (Low, Medium, Bright)." enum:"Low,Medium,Bright," default:""`
	Sort     string `help:"One of name-asc, name-desc, next-watering." enum:"name-asc,name-desc,next-watering" default:"name-asc"`
}

func (c *PlantsListCmd) Run(ctx context.Context, a *App) error {
	if err := a.load(ctx); err != nil {
		return err
	}

	today := a.now()
	plants := a.dash.Visible(care.Criteria{
		Category: care.Category(c.Filter),
		Search:   c.Search,
		Location: c.Location,
		Light:    models.Light(c.Light),
		Sort:     care.SortOrder(c.Sort),
	}, today)

	if len(plants) == 0 {
		if len(a.dash.Plants()) == 0 {
			a.println("No plants yet. Add one with `plantpal plants add`.")
		} else {
			a.println("No plants match the current filters.")
		}
		return nil
	}

	a.println(renderPlants(plants, today))

	locations := a.dash.Locations()
	lights := make([]string, 0, 3)
	for _, l := range a.dash.LightLevels() {
		lights = append(lights, string(l))
	}
	a.println(mutedStyle.Render(fmt.Sprintf("%d of %d plants · locations: %s · light: %s",
		len(plants), len(a.dash.Plants()), strings.Join(locations, ", "), strings.Join(lights, ", "))))
	return nil
}

type PlantsShowCmd struct {
	ID string `arg:"" help:"Plant ID or unique prefix."`
}

func (c *PlantsShowCmd) Run(ctx context.Context, a *App) error {
	if err := a.load(ctx); err != nil {
		return err
	}
	p, err := a.plantByPrefix(c.ID)
	if err != nil {
		return err
	}
	a.printf("%s", renderPlant(p, a.now()))
	return nil
}

// PlantFields are the editable attributes shared by add and edit. Zero
// values mean "not given".
type PlantFields struct {
	Name           string `help:"Common name." short:"n"`
	ScientificName string `name:"scientific" help:"Scientific name."`
	Location       string `help:"Where the plant lives." short:"l"`
	Water          int    `help:"Watering frequency in days."`
	Fertilize      int    `help:"Fertilizing frequency in days."`
	Groom          int    `help:"Grooming frequency in days."`
	Sunlight       string `help:"Low Light, Medium Light or Bright Light."`
	Humidity       string `help:"Low Humidity, Medium Humidity or High Humidity."`
	Notes          string `help:"Free-form notes."`
}

func (f PlantFields) validate() error {
	if f.Water < 0 || f.Fertilize < 0 || f.Groom < 0 {
		return errors.New("frequencies must be positive numbers of days")
	}
	if f.Sunlight != "" && !slices.Contains(models.SunlightOptions, f.Sunlight) {
		return fmt.Errorf("sunlight must be one of %s", strings.Join(models.SunlightOptions, ", "))
	}
	if f.Humidity != "" && !slices.Contains(models.HumidityOptions, f.Humidity) {
		return fmt.Errorf("humidity must be one of %s", strings.Join(models.HumidityOptions, ", "))
	}
	return nil
}

func (f PlantFields) applyToDraft(d *models.PlantDraft) {
	setString(&d.Name, f.Name)
	setString(&d.ScientificName, f.ScientificName)
	setString(&d.Location, f.Location)
	setInt(&d.WateringFrequency, f.Water)
	setInt(&d.FertilizingFrequency, f.Fertilize)
	setInt(&d.GroomingFrequency, f.Groom)
	setString(&d.Sunlight, f.Sunlight)
	setString(&d.Humidity, f.Humidity)
	setString(&d.Notes, f.Notes)
}

func (f PlantFields) applyToPlant(p *models.Plant) {
	setString(&p.Name, f.Name)
	setString(&p.ScientificName, f.ScientificName)
	setString(&p.Location, f.Location)
	setInt(&p.WateringFrequency, f.Water)
	setInt(&p.FertilizingFrequency, f.Fertilize)
	setInt(&p.GroomingFrequency, f.Groom)
	setString(&p.Sunlight, f.Sunlight)
	setString(&p.Humidity, f.Humidity)
	setString(&p.Notes, f.Notes)
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func setInt(dst *int, v int) {
	if v != 0 {
		*dst = v
	}
}

type PlantsAddCmd struct {
	PlantFields `embed:""`

	Photo    string `help:"Photo to upload." type:"existingfile" short:"p"`
	Autofill bool   `help:"Ask the assistant to fill in care details from the photo."`
}

func (c *PlantsAddCmd) Run(ctx context.Context, a *App) error {
	if err := c.validate(); err != nil {
		return err
	}
	if c.Autofill && c.Photo == "" {
		return errors.New("--autofill needs a --photo")
	}
	if err := a.requireSession(); err != nil {
		return err
	}

	var photo *models.Photo
	if c.Photo != "" {
		var err error
		if photo, err = loadPhoto(c.Photo); err != nil {
			return err
		}
	}

	draft := models.NewPlantDraft()
	if c.Autofill {
		details, err := a.api.Autofill(ctx, *photo)
		if err := a.check(ctx, err); err != nil {
			if errors.Is(err, ErrSessionExpired) {
				return err
			}
			a.println(AutofillFailedMessage)
		} else {
			details.ApplyTo(&draft)
			a.printf("Assistant suggests: %s (%s)\n", details.Name, details.ScientificName)
		}
	}
	// explicit flags win over suggestions
	c.applyToDraft(&draft)

	if strings.TrimSpace(draft.Name) == "" {
		return errors.New("a name is required (use --name, or --photo with --autofill)")
	}

	p, err := a.dash.AddPlant(ctx, draft, photo)
	if err := a.check(ctx, err); err != nil {
		return err
	}

	a.printf("Added %s %s", p.Name, mutedStyle.Render(shortID(p.ID)))
	if photo != nil {
		a.printf(" with a %s photo", humanize.Bytes(uint64(len(photo.Data))))
	}
	a.println()
	return nil
}

type PlantsEditCmd struct {
	ID string `arg:"" help:"Plant ID or unique prefix."`

	PlantFields `embed:""`

	Health            string `help:"healthy or attention."`
	FertilizerDetails string `name:"fertilizer-details" help:"Fertilizer instructions."`
}

func (c *PlantsEditCmd) Run(ctx context.Context, a *App) error {
	if err := c.validate(); err != nil {
		return err
	}
	switch models.Health(c.Health) {
	case "", models.HealthHealthy, models.HealthAttention:
	default:
		return fmt.Errorf("health must be %s or %s", models.HealthHealthy, models.HealthAttention)
	}
	if err := a.load(ctx); err != nil {
		return err
	}
	p, err := a.plantByPrefix(c.ID)
	if err != nil {
		return err
	}

	c.applyToPlant(&p)
	setString((*string)(&p.Health), c.Health)
	setString(&p.FertilizerDetails, c.FertilizerDetails)

	if err := a.check(ctx, a.dash.UpdatePlant(ctx, p)); err != nil {
		return err
	}

	updated, _ := a.dash.Plant(p.ID)
	a.printf("Updated %s.\n", updated.Name)
	return nil
}

type PlantsDeleteCmd struct {
	ID string `arg:"" help:"Plant ID or unique prefix."`
}

func (c *PlantsDeleteCmd) Run(ctx context.Context, a *App) error {
	if err := a.load(ctx); err != nil {
		return err
	}
	p, err := a.plantByPrefix(c.ID)
	if err != nil {
		return err
	}
	if err := a.check(ctx, a.dash.DeletePlant(ctx, p.ID)); err != nil {
		return err
	}
	a.printf("Deleted %s.\n", p.Name)
	return nil
}

type WaterCmd struct {
	ID string `arg:"" help:"Plant ID or unique prefix."`
}

func (c *WaterCmd) Run(ctx context.Context, a *App) error {
	return a.logActivity(ctx, c.ID, care.Water)
}

type FertilizeCmd struct {
	ID string `arg:"" help:"Plant ID or unique prefix."`
}

func (c *FertilizeCmd) Run(ctx context.Context, a *App) error {
	return a.logActivity(ctx, c.ID, care.Fertilize)
}

type GroomCmd struct {
	ID string `arg:"" help:"Plant ID or unique prefix."`
}

func (c *GroomCmd) Run(ctx context.Context, a *App) error {
	return a.logActivity(ctx, c.ID, care.Groom)
}

func (a *App) logActivity(ctx context.Context, prefix string, cycle care.Cycle) error {
	if err := a.load(ctx); err != nil {
		return err
	}
	p, err := a.plantByPrefix(prefix)
	if err != nil {
		return err
	}
	if err := a.check(ctx, a.dash.LogActivity(ctx, p.ID, string(cycle))); err != nil {
		return err
	}

	updated, _ := a.dash.Plant(p.ID)
	last, freq := care.Schedule(updated, cycle)
	a.printf("Recorded %s for %s. Next %s.\n", cycle, updated.Name, relDay(care.NextDue(last, freq), a.now()))
	return nil
}

type StatsCmd struct{}

func (c *StatsCmd) Run(ctx context.Context, a *App) error {
	if err := a.load(ctx); err != nil {
		return err
	}
	a.printf("%s", renderStats(a.dash.Stats(a.now())))
	return nil
}
