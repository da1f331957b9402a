package repositories

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitDatabase_CreatesFileAndSchema(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "client.db")

	repos, err := InitDatabase(ctx, path)
	require.NoError(t, err)

	require.NoError(t, repos.Metadata.Set(ctx, "token", "t"))
	require.NoError(t, repos.Close())

	// Reopening keeps data and does not re-apply migrations.
	repos, err = InitDatabase(ctx, path)
	require.NoError(t, err)
	defer repos.Close()

	v, ok, err := repos.Metadata.Get(ctx, "token")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "t", v)
}
