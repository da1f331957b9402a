package dashboard

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/plantpal/internal/care"
	"github.com/dmitrijs2005/plantpal/internal/models"
)

var today = time.Date(2025, 6, 15, 14, 30, 0, 0, time.UTC)

func daysAgo(n int) time.Time { return today.AddDate(0, 0, -n) }


type fakeAPI struct {
	mu sync.Mutex

	plants   []models.Plant
	journal  []models.JournalEntry
	articles []models.Article

	listPlantsErr   error
	listJournalErr  error
	listArticlesErr error
	mutateErr       error

	// inFlight, when set, is called while a mutation request is pending.
	inFlight func()

	calls []string
}

func (f *fakeAPI) record(call string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, call)
}

func (f *fakeAPI) pending() error {
	if f.inFlight != nil {
		f.inFlight()
	}
	return f.mutateErr
}

func (f *fakeAPI) ListPlants(ctx context.Context) ([]models.Plant, error) {
	f.record("ListPlants")
	return f.plants, f.listPlantsErr
}

func (f *fakeAPI) ListJournal(ctx context.Context) ([]models.JournalEntry, error) {
	f.record("ListJournal")
	return f.journal, f.listJournalErr
}

func (f *fakeAPI) ListArticles(ctx context.Context) ([]models.Article, error) {
	f.record("ListArticles")
	return f.articles, f.listArticlesErr
}

func (f *fakeAPI) CreatePlant(ctx context.Context, draft models.PlantDraft, photo *models.Photo) (models.Plant, error) {
	if err := f.pending(); err != nil {
		return models.Plant{}, err
	}
	return models.Plant{ID: "new", Name: draft.Name, Health: models.HealthHealthy}, nil
}

func (f *fakeAPI) UpdatePlant(ctx context.Context, p models.Plant) (models.Plant, error) {
	if err := f.pending(); err != nil {
		return models.Plant{}, err
	}
	p.Notes += " (saved)"
	return p, nil
}

func (f *fakeAPI) DeletePlant(ctx context.Context, id string) error {
	return f.pending()
}

func (f *fakeAPI) LogActivity(ctx context.Context, id, activity string) (models.Plant, error) {
	if err := f.pending(); err != nil {
		return models.Plant{}, err
	}
	return models.Plant{ID: id, Name: "from server", LastWatered: today}, nil
}

func (f *fakeAPI) CreateJournalEntry(ctx context.Context, title, content string, file *models.Photo) (models.JournalEntry, error) {
	if err := f.pending(); err != nil {
		return models.JournalEntry{}, err
	}
	return models.JournalEntry{ID: "j-new", Title: title, Content: content}, nil
}

func (f *fakeAPI) DeleteJournalEntry(ctx context.Context, id string) error {
	return f.pending()
}


func seeded() *fakeAPI {
	return &fakeAPI{
		plants: []models.Plant{
			{ID: "p1", Name: "Monstera", Location: "Living Room", Light: models.LightBright, Health: models.HealthHealthy, WateringFrequency: 7, LastWatered: daysAgo(5)},
			{ID: "p2", Name: "Snake Plant", Location: "Bedroom", Light: models.LightLow, Health: models.HealthHealthy, WateringFrequency: 21, LastWatered: daysAgo(15)},
			{ID: "p3", Name: "Fiddle Leaf Fig", Location: "Office", Light: models.LightBright, Health: models.HealthAttention, WateringFrequency: 10, LastWatered: daysAgo(11)},
		},
		journal: []models.JournalEntry{
			{ID: "j1", Title: "Repotted"},
			{ID: "j2", Title: "Bloom"},
		},
		articles: []models.Article{{ID: "1", Title: "Watering"}},
	}
}

func loaded(t *testing.T, api *fakeAPI) *Controller {
	t.Helper()
	c := New(api)
	c.now = func() time.Time { return today }
	require.NoError(t, c.Load(context.Background()))
	return c
}

func ids(ps []models.Plant) []string {
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = p.ID
	}
	return out
}


func TestLoad_PopulatesAllCollections(t *testing.T) {
	api := seeded()
	c := loaded(t, api)

	assert.Len(t, c.Plants(), 3)
	assert.Len(t, c.Journal(), 2)
	assert.Len(t, c.Articles(), 1)
	assert.NoError(t, c.Err())
	assert.ElementsMatch(t, []string{"ListPlants", "ListJournal", "ListArticles"}, api.calls)
}

func TestLoad_AnyFailureLeavesEverythingEmpty(t *testing.T) {
	for _, name := range []string{"plants", "journal", "articles"} {
		t.Run(name, func(t *testing.T) {
			api := seeded()
			boom := errors.New("boom")
			switch name {
			case "plants":
				api.listPlantsErr = boom
			case "journal":
				api.listJournalErr = boom
			case "articles":
				api.listArticlesErr = boom
			}

			c := New(api)
			err := c.Load(context.Background())
			require.ErrorIs(t, err, boom)
			assert.Empty(t, c.Plants())
			assert.Empty(t, c.Journal())
			assert.Empty(t, c.Articles())
			assert.ErrorIs(t, c.Err(), boom)
		})
	}
}

func TestLoad_FailureClearsPreviousState(t *testing.T) {
	api := seeded()
	c := loaded(t, api)

	api.listJournalErr = errors.New("boom")
	require.Error(t, c.Load(context.Background()))
	assert.Empty(t, c.Plants())
}


func TestAddPlant_PrependsOnSuccess(t *testing.T) {
	api := seeded()
	c := loaded(t, api)

	p, err := c.AddPlant(context.Background(), models.PlantDraft{Name: "Pothos"}, nil)
	require.NoError(t, err)
	assert.Equal(t, "new", p.ID)
	assert.Equal(t, []string{"new", "p1", "p2", "p3"}, ids(c.Plants()))
}

func TestAddPlant_FailureLeavesStateUntouched(t *testing.T) {
	api := seeded()
	c := loaded(t, api)
	before := c.Plants()

	api.mutateErr = errors.New("rejected")
	_, err := c.AddPlant(context.Background(), models.PlantDraft{Name: "Pothos"}, nil)
	require.Error(t, err)
	assert.Empty(t, cmp.Diff(before, c.Plants()))
	assert.EqualError(t, c.Err(), "rejected")
}

func TestDeletePlant_OptimisticThenCommitted(t *testing.T) {
	api := seeded()
	c := loaded(t, api)

	api.inFlight = func() {
		assert.Equal(t, []string{"p1", "p3"}, ids(c.Plants()))
	}
	require.NoError(t, c.DeletePlant(context.Background(), "p2"))
	assert.Equal(t, []string{"p1", "p3"}, ids(c.Plants()))
}

func TestDeletePlant_RollbackRestoresExactCollection(t *testing.T) {
	api := seeded()
	c := loaded(t, api)
	before := c.Plants()

	api.mutateErr = errors.New("server said no")
	require.Error(t, c.DeletePlant(context.Background(), "p2"))
	assert.Empty(t, cmp.Diff(before, c.Plants()))
	assert.EqualError(t, c.Err(), "server said no")
}

func TestDeletePlant_Unknown(t *testing.T) {
	c := loaded(t, seeded())
	assert.ErrorIs(t, c.DeletePlant(context.Background(), "nope"), ErrUnknownPlant)
}

func TestUpdatePlant(t *testing.T) {
	api := seeded()
	c := loaded(t, api)

	p, ok := c.Plant("p1")
	require.True(t, ok)
	p.Notes = "mist"

	api.inFlight = func() {
		got, _ := c.Plant("p1")
		assert.Equal(t, "mist", got.Notes)
	}
	require.NoError(t, c.UpdatePlant(context.Background(), p))

	got, _ := c.Plant("p1")
	assert.Equal(t, "mist (saved)", got.Notes)
}

func TestUpdatePlant_Rollback(t *testing.T) {
	api := seeded()
	c := loaded(t, api)
	before := c.Plants()

	p, _ := c.Plant("p1")
	p.Name = "Renamed"
	api.mutateErr = errors.New("invalid")
	require.Error(t, c.UpdatePlant(context.Background(), p))
	assert.Empty(t, cmp.Diff(before, c.Plants()))
}

func TestLogActivity_OptimisticThenServerRecord(t *testing.T) {
	api := seeded()
	c := loaded(t, api)
	c.now = func() time.Time { return today.Add(time.Hour) }

	api.inFlight = func() {
		got, _ := c.Plant("p2")
		assert.Equal(t, today.Add(time.Hour), got.LastWatered)
	}
	require.NoError(t, c.LogActivity(context.Background(), "p2", "water"))

	got, _ := c.Plant("p2")
	assert.Equal(t, "from server", got.Name)
	assert.Equal(t, today, got.LastWatered)
}

func TestLogActivity_Rollback(t *testing.T) {
	api := seeded()
	c := loaded(t, api)
	before := c.Plants()

	api.mutateErr = errors.New("offline")
	require.Error(t, c.LogActivity(context.Background(), "p2", "fertilize"))
	assert.Empty(t, cmp.Diff(before, c.Plants()))
}

func TestLogActivity_InvalidKindDoesNotCallServer(t *testing.T) {
	api := seeded()
	c := loaded(t, api)
	api.inFlight = func() { t.Fatal("server must not be called") }

	assert.ErrorIs(t, c.LogActivity(context.Background(), "p1", "repot"), care.ErrInvalidActivity)
}


func TestJournal_AddAndDelete(t *testing.T) {
	api := seeded()
	c := loaded(t, api)

	e, err := c.AddJournalEntry(context.Background(), "New leaf", "", nil)
	require.NoError(t, err)
	assert.Equal(t, "j-new", c.Journal()[0].ID)

	require.NoError(t, c.DeleteJournalEntry(context.Background(), e.ID))
	assert.Len(t, c.Journal(), 2)

	api.mutateErr = errors.New("nope")
	before := c.Journal()
	require.Error(t, c.DeleteJournalEntry(context.Background(), "j1"))
	assert.Empty(t, cmp.Diff(before, c.Journal()))

	assert.ErrorIs(t, c.DeleteJournalEntry(context.Background(), "zzz"), ErrUnknownEntry)
}


func TestVisible_DoesNotMutateBase(t *testing.T) {
	c := loaded(t, seeded())
	before := c.Plants()

	got := c.Visible(care.Criteria{Category: care.CategoryNeedsWater, Sort: care.SortNameAsc}, today)
	assert.Equal(t, []string{"p3"}, ids(got))

	got = c.Visible(care.Criteria{Light: models.LightBright, Sort: care.SortNameDesc}, today)
	assert.Equal(t, []string{"p1", "p3"}, ids(got))

	got = c.Visible(care.Criteria{Search: "PLANT"}, today)
	assert.Equal(t, []string{"p2"}, ids(got))

	assert.Empty(t, cmp.Diff(before, c.Plants()))
}

func TestStatsAndFilterChoices(t *testing.T) {
	c := loaded(t, seeded())

	st := c.Stats(today)
	assert.Equal(t, 3, st.Total)
	assert.Equal(t, 2, st.Healthy)
	assert.Equal(t, 1, st.Attention)
	assert.Equal(t, 1, st.NeedsWater)
	assert.Equal(t, 2, st.ByLight[models.LightBright])
	assert.Len(t, st.Upcoming, care.UpcomingDays)

	assert.Equal(t, []string{"Living Room", "Bedroom", "Office"}, c.Locations())
	assert.Equal(t, []models.Light{models.LightBright, models.LightLow}, c.LightLevels())
}
