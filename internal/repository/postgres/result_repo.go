package postgres

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"demandcast/internal/domain"
	"demandcast/internal/port"
)

type resultRepo struct {
	db *sqlx.DB
}

// NewResultRepo creates a new PostgreSQL-backed ResultRepository.
func NewResultRepo(db *sqlx.DB) port.ResultRepository {
	return &resultRepo{db: db}
}

func (r *resultRepo) ReplaceForRun(ctx context.Context, runID uuid.UUID, results []domain.ModelResult) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("resultRepo.ReplaceForRun: begin tx: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM model_results WHERE run_id = $1", runID); err != nil {
		return fmt.Errorf("resultRepo.ReplaceForRun: delete: %w", err)
	}

	if len(results) > 0 {
		now := time.Now().UTC()
		valueStrings := make([]string, 0, len(results))
		valueArgs := make([]interface{}, 0, len(results)*10)
		for i, res := range results {
			valueStrings = append(valueStrings, fmt.Sprintf("($%d, $%d, $%d, $%d, $%d, $%d, $%d, $%d, $%d, $%d)",
				i*10+1, i*10+2, i*10+3, i*10+4, i*10+5, i*10+6, i*10+7, i*10+8, i*10+9, i*10+10))
			valueArgs = append(valueArgs, runID, res.Rank, res.ModelName,
				res.MAPE, res.MAE, res.MSE, res.RMSE,
				res.Parameters, res.Predictions, now)
		}
		query := fmt.Sprintf(
			`INSERT INTO model_results (run_id, rank, model_name, mape, mae, mse, rmse, parameters, predictions, created_at)
			 VALUES %s`, strings.Join(valueStrings, ", "))
		if _, err := tx.ExecContext(ctx, query, valueArgs...); err != nil {
			return fmt.Errorf("resultRepo.ReplaceForRun: insert: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("resultRepo.ReplaceForRun: commit: %w", err)
	}
	return nil
}

func (r *resultRepo) ListByRun(ctx context.Context, runID uuid.UUID, limit int) ([]domain.ModelResult, error) {
	query := `SELECT * FROM model_results WHERE run_id = $1 ORDER BY rank`
	args := []interface{}{runID}
	if limit > 0 {
		query += " LIMIT $2"
		args = append(args, limit)
	}

	var results []domain.ModelResult
	if err := r.db.SelectContext(ctx, &results, query, args...); err != nil {
		return nil, fmt.Errorf("resultRepo.ListByRun: %w", err)
	}
	return results, nil
}
