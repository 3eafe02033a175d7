package port

import (
	"context"

	"github.com/google/uuid"

	"demandcast/internal/domain"
)

// DatasetRepository defines the contract for dataset persistence.
type DatasetRepository interface {
	Create(ctx context.Context, ds *domain.Dataset) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Dataset, error)
	List(ctx context.Context, offset, limit int) ([]domain.Dataset, int, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.DatasetStatus) error
	// UpdateValidation persists a fresh validation outcome: row count,
	// verdict, and issue counters.
	UpdateValidation(ctx context.Context, ds *domain.Dataset) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// RecordRepository defines the contract for persisted demand rows. Rows are
// written as a whole series; a re-upload replaces them.
type RecordRepository interface {
	ReplaceForDataset(ctx context.Context, datasetID uuid.UUID, records []domain.DemandRecord) error
	ListByDataset(ctx context.Context, datasetID uuid.UUID) ([]domain.DemandRecord, error)
}

// FindingRepository defines the contract for persisted validation findings.
// Findings are replaced wholesale on each validation pass, mirroring the
// engine's retained-state semantics.
type FindingRepository interface {
	ReplaceForDataset(ctx context.Context, datasetID uuid.UUID, findings []domain.ValidationFinding) error
	ListByDataset(ctx context.Context, datasetID uuid.UUID) ([]domain.ValidationFinding, error)
	ListByDatasetAndRow(ctx context.Context, datasetID uuid.UUID, row int) ([]domain.ValidationFinding, error)
}
