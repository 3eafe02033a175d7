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

type findingRepo struct {
	db *sqlx.DB
}

// NewFindingRepo creates a new PostgreSQL-backed FindingRepository.
func NewFindingRepo(db *sqlx.DB) port.FindingRepository {
	return &findingRepo{db: db}
}

func (r *findingRepo) ReplaceForDataset(ctx context.Context, datasetID uuid.UUID, findings []domain.ValidationFinding) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("findingRepo.ReplaceForDataset begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx,
		"DELETE FROM validation_findings WHERE dataset_id = $1", datasetID); err != nil {
		return fmt.Errorf("findingRepo.ReplaceForDataset delete: %w", err)
	}

	if len(findings) > 0 {
		now := time.Now().UTC()
		valueStrings := make([]string, 0, len(findings))
		valueArgs := make([]interface{}, 0, len(findings)*6)
		for i, f := range findings {
			base := i * 6
			valueStrings = append(valueStrings, fmt.Sprintf("($%d, $%d, $%d, $%d, $%d, $%d)",
				base+1, base+2, base+3, base+4, base+5, base+6))
			valueArgs = append(valueArgs, datasetID, f.Row, f.Field, f.Message, f.Severity, now)
		}

		query := fmt.Sprintf(
			`INSERT INTO validation_findings (dataset_id, row_index, field, message, severity, created_at) VALUES %s`,
			strings.Join(valueStrings, ", "))
		if _, err := tx.ExecContext(ctx, query, valueArgs...); err != nil {
			return fmt.Errorf("findingRepo.ReplaceForDataset insert: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("findingRepo.ReplaceForDataset commit: %w", err)
	}
	return nil
}

func (r *findingRepo) ListByDataset(ctx context.Context, datasetID uuid.UUID) ([]domain.ValidationFinding, error) {
	var findings []domain.ValidationFinding
	err := r.db.SelectContext(ctx, &findings,
		"SELECT * FROM validation_findings WHERE dataset_id = $1 ORDER BY id",
		datasetID)
	if err != nil {
		return nil, fmt.Errorf("findingRepo.ListByDataset: %w", err)
	}
	return findings, nil
}

func (r *findingRepo) ListByDatasetAndRow(ctx context.Context, datasetID uuid.UUID, row int) ([]domain.ValidationFinding, error) {
	var findings []domain.ValidationFinding
	err := r.db.SelectContext(ctx, &findings,
		"SELECT * FROM validation_findings WHERE dataset_id = $1 AND row_index = $2 ORDER BY id",
		datasetID, row)
	if err != nil {
		return nil, fmt.Errorf("findingRepo.ListByDatasetAndRow: %w", err)
	}
	return findings, nil
}
