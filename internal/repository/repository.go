package repository

import (
	"context"

	"github.com/BerylCAtieno/pdf-extraction-service/internal/models"
	"github.com/jmoiron/sqlx"
)

type Repository interface {
	Create(ctx context.Context, rec *models.ExtractionRecord) error
	ListRecent(ctx context.Context, limit int) ([]models.ExtractionRecord, error)
}

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, rec *models.ExtractionRecord) error {
	query := `
		INSERT INTO extractions (id, file_path, file_size, text_length, status, error, duration_ms, created_at)
		VALUES (:id, :file_path, :file_size, :text_length, :status, :error, :duration_ms, :created_at)
	`

	_, err := r.db.NamedExecContext(ctx, query, rec)
	return err
}

func (r *repository) ListRecent(ctx context.Context, limit int) ([]models.ExtractionRecord, error) {
	query := `
		SELECT id, file_path, file_size, text_length, status, error, duration_ms, created_at
		FROM extractions
		ORDER BY created_at DESC, rowid DESC
		LIMIT ?
	`

	records := []models.ExtractionRecord{}
	if err := r.db.SelectContext(ctx, &records, query, limit); err != nil {
		return nil, err
	}

	return records, nil
}

type noopRepository struct{}

// NewNoopRepository drops every record. It backs the service when the journal
// is disabled.
func NewNoopRepository() Repository {
	return noopRepository{}
}

func (noopRepository) Create(context.Context, *models.ExtractionRecord) error {
	return nil
}

func (noopRepository) ListRecent(context.Context, int) ([]models.ExtractionRecord, error) {
	return nil, nil
}
