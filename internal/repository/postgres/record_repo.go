package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"demandcast/internal/domain"
	"demandcast/internal/port"
)

type recordRepo struct {
	db *sqlx.DB
}

// NewRecordRepo creates a new PostgreSQL-backed RecordRepository.
func NewRecordRepo(db *sqlx.DB) port.RecordRepository {
	return &recordRepo{db: db}
}

func (r *recordRepo) ReplaceForDataset(ctx context.Context, datasetID uuid.UUID, records []domain.DemandRecord) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("recordRepo.ReplaceForDataset begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx,
		"DELETE FROM demand_records WHERE dataset_id = $1", datasetID); err != nil {
		return fmt.Errorf("recordRepo.ReplaceForDataset delete: %w", err)
	}

	if len(records) > 0 {
		valueStrings := make([]string, 0, len(records))
		valueArgs := make([]interface{}, 0, len(records)*4)
		for i, rec := range records {
			base := i * 4
			valueStrings = append(valueStrings, fmt.Sprintf("($%d, $%d, $%d, $%d)",
				base+1, base+2, base+3, base+4))
			valueArgs = append(valueArgs, datasetID, rec.Position, rec.Month, rec.Demand)
		}

		query := fmt.Sprintf(
			`INSERT INTO demand_records (dataset_id, position, month, demand) VALUES %s`,
			strings.Join(valueStrings, ", "))
		if _, err := tx.ExecContext(ctx, query, valueArgs...); err != nil {
			return fmt.Errorf("recordRepo.ReplaceForDataset insert: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("recordRepo.ReplaceForDataset commit: %w", err)
	}
	return nil
}

func (r *recordRepo) ListByDataset(ctx context.Context, datasetID uuid.UUID) ([]domain.DemandRecord, error) {
	var records []domain.DemandRecord
	err := r.db.SelectContext(ctx, &records,
		"SELECT * FROM demand_records WHERE dataset_id = $1 ORDER BY position",
		datasetID)
	if err != nil {
		return nil, fmt.Errorf("recordRepo.ListByDataset: %w", err)
	}
	return records, nil
}
