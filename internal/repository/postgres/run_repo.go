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

type runRepo struct {
	db *sqlx.DB
}

// NewRunRepo creates a new PostgreSQL-backed RunRepository.
func NewRunRepo(db *sqlx.DB) port.RunRepository {
	return &runRepo{db: db}
}

func (r *runRepo) Create(ctx context.Context, run *domain.ForecastRun) error {
	now := time.Now().UTC()
	run.CreatedAt = now
	run.UpdatedAt = now

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO forecast_runs (id, dataset_id, status, error, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		run.ID, run.DatasetID, run.Status, run.Error, run.CreatedAt, run.UpdatedAt)
	if err != nil {
		return fmt.Errorf("runRepo.Create: %w", err)
	}
	return nil
}

func (r *runRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.ForecastRun, error) {
	var run domain.ForecastRun
	err := r.db.GetContext(ctx, &run, "SELECT * FROM forecast_runs WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRunNotFound
		}
		return nil, fmt.Errorf("runRepo.GetByID: %w", err)
	}
	return &run, nil
}

func (r *runRepo) GetLatestByDataset(ctx context.Context, datasetID uuid.UUID) (*domain.ForecastRun, error) {
	var run domain.ForecastRun
	err := r.db.GetContext(ctx, &run,
		`SELECT * FROM forecast_runs WHERE dataset_id = $1
		 ORDER BY created_at DESC LIMIT 1`, datasetID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRunNotFound
		}
		return nil, fmt.Errorf("runRepo.GetLatestByDataset: %w", err)
	}
	return &run, nil
}

// ClaimPending flips up to limit pending runs to processing inside a single
// statement. SKIP LOCKED keeps concurrent workers from claiming the same run.
func (r *runRepo) ClaimPending(ctx context.Context, limit int) ([]domain.ForecastRun, error) {
	var runs []domain.ForecastRun
	err := r.db.SelectContext(ctx, &runs,
		`UPDATE forecast_runs SET status = $1, started_at = $2, updated_at = $2
		 WHERE id IN (
			SELECT id FROM forecast_runs WHERE status = $3
			ORDER BY created_at
			LIMIT $4
			FOR UPDATE SKIP LOCKED
		 )
		 RETURNING *`,
		domain.RunStatusProcessing, time.Now().UTC(), domain.RunStatusPending, limit)
	if err != nil {
		return nil, fmt.Errorf("runRepo.ClaimPending: %w", err)
	}
	return runs, nil
}

func (r *runRepo) MarkCompleted(ctx context.Context, id uuid.UUID) error {
	now := time.Now().UTC()
	result, err := r.db.ExecContext(ctx,
		`UPDATE forecast_runs SET status = $1, error = '', completed_at = $2, updated_at = $2
		 WHERE id = $3`,
		domain.RunStatusCompleted, now, id)
	if err != nil {
		return fmt.Errorf("runRepo.MarkCompleted: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrRunNotFound
	}
	return nil
}

func (r *runRepo) MarkFailed(ctx context.Context, id uuid.UUID, runErr string) error {
	now := time.Now().UTC()
	result, err := r.db.ExecContext(ctx,
		`UPDATE forecast_runs SET status = $1, error = $2, completed_at = $3, updated_at = $3
		 WHERE id = $4`,
		domain.RunStatusFailed, runErr, now, id)
	if err != nil {
		return fmt.Errorf("runRepo.MarkFailed: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrRunNotFound
	}
	return nil
}
