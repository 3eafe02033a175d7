package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"demandcast/internal/domain"
	"demandcast/internal/port"
)

type datasetRepo struct {
	db *sqlx.DB
}

// NewDatasetRepo creates a new PostgreSQL-backed DatasetRepository.
func NewDatasetRepo(db *sqlx.DB) port.DatasetRepository {
	return &datasetRepo{db: db}
}

func (r *datasetRepo) Create(ctx context.Context, ds *domain.Dataset) error {
	now := time.Now().UTC()
	ds.CreatedAt = now
	ds.UpdatedAt = now

	query := `INSERT INTO datasets (
		id, name, source, status, row_count, is_valid,
		error_count, warning_count, notify_email, archive_key,
		created_at, updated_at
	) VALUES (
		$1, $2, $3, $4, $5, $6,
		$7, $8, $9, $10,
		$11, $12
	)`

	_, err := r.db.ExecContext(ctx, query,
		ds.ID, ds.Name, ds.Source, ds.Status, ds.RowCount, ds.IsValid,
		ds.ErrorCount, ds.WarningCount, ds.NotifyEmail, ds.ArchiveKey,
		ds.CreatedAt, ds.UpdatedAt)
	if err != nil {
		return fmt.Errorf("datasetRepo.Create: %w", err)
	}
	return nil
}

func (r *datasetRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Dataset, error) {
	var ds domain.Dataset
	err := r.db.GetContext(ctx, &ds, "SELECT * FROM datasets WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrSessionNotFound
		}
		return nil, fmt.Errorf("datasetRepo.GetByID: %w", err)
	}
	return &ds, nil
}

func (r *datasetRepo) List(ctx context.Context, offset, limit int) ([]domain.Dataset, int, error) {
	var total int
	if err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM datasets"); err != nil {
		return nil, 0, fmt.Errorf("datasetRepo.List count: %w", err)
	}

	var datasets []domain.Dataset
	err := r.db.SelectContext(ctx, &datasets,
		"SELECT * FROM datasets ORDER BY created_at DESC LIMIT $1 OFFSET $2",
		limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("datasetRepo.List: %w", err)
	}
	return datasets, total, nil
}

func (r *datasetRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.DatasetStatus) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE datasets SET status = $1, updated_at = $2 WHERE id = $3",
		status, time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("datasetRepo.UpdateStatus: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrSessionNotFound
	}
	return nil
}

func (r *datasetRepo) UpdateValidation(ctx context.Context, ds *domain.Dataset) error {
	ds.UpdatedAt = time.Now().UTC()
	result, err := r.db.ExecContext(ctx,
		`UPDATE datasets SET
			row_count = $1, is_valid = $2, error_count = $3,
			warning_count = $4, status = $5, updated_at = $6
		 WHERE id = $7`,
		ds.RowCount, ds.IsValid, ds.ErrorCount,
		ds.WarningCount, ds.Status, ds.UpdatedAt,
		ds.ID)
	if err != nil {
		return fmt.Errorf("datasetRepo.UpdateValidation: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrSessionNotFound
	}
	return nil
}

func (r *datasetRepo) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM datasets WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("datasetRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrSessionNotFound
	}
	return nil
}
