package plants

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/plantpal/internal/common"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return NewPostgresRepository(db), mock, db
}

var plantCols = []string{"id", "user_id", "name", "scientific_name", "image", "light", "health", "location",
	"watering_frequency", "last_watered", "fertilizing_frequency", "last_fertilized",
	"grooming_frequency", "last_groomed", "sunlight", "humidity", "notes",
	"fertilizer_details", "photo_key", "created_at"}

func plantRow(rows *sqlmock.Rows, id, name string) *sqlmock.Rows {
	ts := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	return rows.AddRow(id, "u1", name, "Sci", "img", "Medium", "healthy", "Office",
		7, ts, 30, ts, 60, ts, "Medium Light", "Medium Humidity", "", "", "", ts)
}

func TestPostgres_List(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	rows := sqlmock.NewRows(plantCols)
	plantRow(rows, "p2", "Cactus")
	plantRow(rows, "p1", "Fern")
	mock.ExpectQuery(`(?s)^SELECT .* FROM plants\s+WHERE user_id = \$1\s+ORDER BY created_at DESC`).
		WithArgs("u1").
		WillReturnRows(rows)

	got, err := repo.List(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "p2", got[0].ID)
	assert.Equal(t, "Medium", string(got[0].Light))
	assert.Equal(t, 7, got[1].WateringFrequency)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgres_List_QueryError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`(?s)^SELECT .* FROM plants`).WillReturnError(errors.New("boom"))

	_, err := repo.List(context.Background(), "u1")
	assert.ErrorContains(t, err, "db error: boom")
}

func TestPostgres_Get(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`(?s)^SELECT .* FROM plants\s+WHERE user_id = \$1 AND id = \$2`).
		WithArgs("u1", "p1").
		WillReturnRows(plantRow(sqlmock.NewRows(plantCols), "p1", "Fern"))
	mock.ExpectQuery(`(?s)^SELECT .* FROM plants\s+WHERE user_id = \$1 AND id = \$2`).
		WithArgs("u1", "nope").
		WillReturnError(sql.ErrNoRows)

	got, err := repo.Get(context.Background(), "u1", "p1")
	require.NoError(t, err)
	assert.Equal(t, "Fern", got.Name)

	_, err = repo.Get(context.Background(), "u1", "nope")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestPostgres_Create(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`(?s)^INSERT INTO plants`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Create(context.Background(), plant("p1", "u1", "Fern")))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgres_UpdateAndDelete_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`(?s)^UPDATE plants SET`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`^DELETE FROM plants WHERE user_id = \$1 AND id = \$2`).
		WithArgs("u1", "p9").
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, repo.Update(context.Background(), plant("p9", "u1", "x")), common.ErrorNotFound)
	assert.ErrorIs(t, repo.Delete(context.Background(), "u1", "p9"), common.ErrorNotFound)
}

func TestPostgres_Delete_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`^DELETE FROM plants`).WithArgs("u1", "p1").WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Delete(context.Background(), "u1", "p1"))
}
