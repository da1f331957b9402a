package plants

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	bolt "go.etcd.io/bbolt"

	"github.com/dmitrijs2005/plantpal/internal/boltx"
	"github.com/dmitrijs2005/plantpal/internal/common"
	shared "github.com/dmitrijs2005/plantpal/internal/models"
	"github.com/dmitrijs2005/plantpal/internal/server/models"
)

func backends(t *testing.T) map[string]Repository {
	t.Helper()

	db, err := bolt.Open(filepath.Join(t.TempDir(), "plants.db"), 0o600, &bolt.Options{Timeout: time.Second})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, boltx.EnsureBuckets(db, Bucket))

	return map[string]Repository{
		"memory": NewMemoryRepository(),
		"bolt":   NewBoltRepository(db),
	}
}

func plant(id, user, name string) *models.Plant {
	return &models.Plant{
		Plant:  shared.Plant{ID: id, Name: name, WateringFrequency: 7, LastWatered: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)},
		UserID: user,
	}
}

func TestRepository_Lifecycle(t *testing.T) {
	for name, repo := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			require.NoError(t, repo.Create(ctx, plant("p1", "u1", "Fern")))
			require.NoError(t, repo.Create(ctx, plant("p2", "u1", "Cactus")))
			require.NoError(t, repo.Create(ctx, plant("p3", "u2", "Orchid")))

			list, err := repo.List(ctx, "u1")
			require.NoError(t, err)
			require.Len(t, list, 2)
			assert.Equal(t, "p2", list[0].ID, "newest first")
			assert.Equal(t, "p1", list[1].ID)

			got, err := repo.Get(ctx, "u1", "p1")
			require.NoError(t, err)
			assert.Equal(t, "Fern", got.Name)

			_, err = repo.Get(ctx, "u2", "p1")
			assert.ErrorIs(t, err, common.ErrorNotFound, "other owner must not see the plant")

			got.Name = "Boston Fern"
			require.NoError(t, repo.Update(ctx, got))
			got, err = repo.Get(ctx, "u1", "p1")
			require.NoError(t, err)
			assert.Equal(t, "Boston Fern", got.Name)

			assert.ErrorIs(t, repo.Update(ctx, plant("missing", "u1", "x")), common.ErrorNotFound)

			require.NoError(t, repo.Delete(ctx, "u1", "p2"))
			assert.ErrorIs(t, repo.Delete(ctx, "u1", "p2"), common.ErrorNotFound)
			assert.ErrorIs(t, repo.Delete(ctx, "u1", "p3"), common.ErrorNotFound)

			list, err = repo.List(ctx, "u1")
			require.NoError(t, err)
			require.Len(t, list, 1)
			assert.Equal(t, "p1", list[0].ID)
		})
	}
}

func TestMemoryRepository_ListReturnsCopy(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()
	require.NoError(t, repo.Create(ctx, plant("p1", "u1", "Fern")))

	list, err := repo.List(ctx, "u1")
	require.NoError(t, err)
	list[0].Name = "changed"

	got, err := repo.Get(ctx, "u1", "p1")
	require.NoError(t, err)
	assert.Equal(t, "Fern", got.Name)
}
