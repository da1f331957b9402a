package journal

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/plantpal/internal/common"
	"github.com/dmitrijs2005/plantpal/internal/dbx"
	shared "github.com/dmitrijs2005/plantpal/internal/models"
	"github.com/dmitrijs2005/plantpal/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const columns = `id, user_id, title, content, date, file_name, file_type, file_url, file_key`

type scanner interface {
	Scan(dest ...any) error
}

func scanEntry(row scanner) (*models.JournalEntry, error) {
	e := &models.JournalEntry{}
	var name, typ, url, key sql.NullString
	if err := row.Scan(&e.ID, &e.UserID, &e.Title, &e.Content, &e.Date, &name, &typ, &url, &key); err != nil {
		return nil, err
	}
	if name.Valid {
		e.File = &shared.Attachment{Name: name.String, Type: shared.AttachmentType(typ.String), URL: url.String}
		e.FileKey = key.String
	}
	return e, nil
}

func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func (r *PostgresRepository) List(ctx context.Context, userID string) ([]models.JournalEntry, error) {
	query := `SELECT ` + columns + ` FROM journal_entries
		 WHERE user_id = $1
		 ORDER BY date DESC
		 `

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var out []models.JournalEntry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		out = append(out, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return out, nil
}

func (r *PostgresRepository) Get(ctx context.Context, userID, id string) (*models.JournalEntry, error) {
	query := `SELECT ` + columns + ` FROM journal_entries
		 WHERE user_id = $1 AND id = $2
		 `

	e, err := scanEntry(r.db.QueryRowContext(ctx, query, userID, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return e, nil
}

func (r *PostgresRepository) Create(ctx context.Context, e *models.JournalEntry) error {
	query := `INSERT INTO journal_entries (` + columns + `)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 `

	var name, typ, url string
	if e.File != nil {
		name, typ, url = e.File.Name, string(e.File.Type), e.File.URL
	}

	_, err := r.db.ExecContext(ctx, query, e.ID, e.UserID, e.Title, e.Content, e.Date,
		nullable(name), nullable(typ), nullable(url), nullable(e.FileKey))
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) Delete(ctx context.Context, userID, id string) error {
	query := `DELETE FROM journal_entries WHERE user_id = $1 AND id = $2`

	res, err := r.db.ExecContext(ctx, query, userID, id)
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
