package plants

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/plantpal/internal/common"
	"github.com/dmitrijs2005/plantpal/internal/dbx"
	"github.com/dmitrijs2005/plantpal/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const columns = `id, user_id, name, scientific_name, image, light, health, location,
		 watering_frequency, last_watered, fertilizing_frequency, last_fertilized,
		 grooming_frequency, last_groomed, sunlight, humidity, notes,
		 fertilizer_details, photo_key, created_at`

type scanner interface {
	Scan(dest ...any) error
}

func scanPlant(row scanner) (*models.Plant, error) {
	p := &models.Plant{}
	err := row.Scan(&p.ID, &p.UserID, &p.Name, &p.ScientificName, &p.Image, &p.Light, &p.Health, &p.Location,
		&p.WateringFrequency, &p.LastWatered, &p.FertilizingFrequency, &p.LastFertilized,
		&p.GroomingFrequency, &p.LastGroomed, &p.Sunlight, &p.Humidity, &p.Notes,
		&p.FertilizerDetails, &p.PhotoKey, &p.CreatedAt)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *PostgresRepository) List(ctx context.Context, userID string) ([]models.Plant, error) {
	query := `SELECT ` + columns + ` FROM plants
		 WHERE user_id = $1
		 ORDER BY created_at DESC
		 `

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var out []models.Plant
	for rows.Next() {
		p, err := scanPlant(rows)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		out = append(out, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return out, nil
}

func (r *PostgresRepository) Get(ctx context.Context, userID, id string) (*models.Plant, error) {
	query := `SELECT ` + columns + ` FROM plants
		 WHERE user_id = $1 AND id = $2
		 `

	p, err := scanPlant(r.db.QueryRowContext(ctx, query, userID, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return p, nil
}

func (r *PostgresRepository) Create(ctx context.Context, p *models.Plant) error {
	query := `INSERT INTO plants (` + columns + `)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)
		 `

	_, err := r.db.ExecContext(ctx, query,
		p.ID, p.UserID, p.Name, p.ScientificName, p.Image, p.Light, p.Health, p.Location,
		p.WateringFrequency, p.LastWatered, p.FertilizingFrequency, p.LastFertilized,
		p.GroomingFrequency, p.LastGroomed, p.Sunlight, p.Humidity, p.Notes,
		p.FertilizerDetails, p.PhotoKey, p.CreatedAt)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) Update(ctx context.Context, p *models.Plant) error {
	query := `UPDATE plants SET
		 name = $3, scientific_name = $4, image = $5, light = $6, health = $7, location = $8,
		 watering_frequency = $9, last_watered = $10, fertilizing_frequency = $11, last_fertilized = $12,
		 grooming_frequency = $13, last_groomed = $14, sunlight = $15, humidity = $16, notes = $17,
		 fertilizer_details = $18, photo_key = $19
		 WHERE user_id = $1 AND id = $2
		 `

	res, err := r.db.ExecContext(ctx, query,
		p.UserID, p.ID, p.Name, p.ScientificName, p.Image, p.Light, p.Health, p.Location,
		p.WateringFrequency, p.LastWatered, p.FertilizingFrequency, p.LastFertilized,
		p.GroomingFrequency, p.LastGroomed, p.Sunlight, p.Humidity, p.Notes,
		p.FertilizerDetails, p.PhotoKey)
	return checkAffected(res, err)
}

func (r *PostgresRepository) Delete(ctx context.Context, userID, id string) error {
	query := `DELETE FROM plants WHERE user_id = $1 AND id = $2`

	res, err := r.db.ExecContext(ctx, query, userID, id)
	return checkAffected(res, err)
}

func checkAffected(res sql.Result, err error) error {
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}
