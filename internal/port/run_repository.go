package port

import (
	"context"

	"github.com/google/uuid"

	"demandcast/internal/domain"
)

// RunRepository defines the contract for forecast run persistence.
type RunRepository interface {
	Create(ctx context.Context, run *domain.ForecastRun) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.ForecastRun, error)
	GetLatestByDataset(ctx context.Context, datasetID uuid.UUID) (*domain.ForecastRun, error)
	// ClaimPending atomically moves up to limit pending runs to processing
	// and returns them. Concurrent workers never claim the same run.
	ClaimPending(ctx context.Context, limit int) ([]domain.ForecastRun, error)
	MarkCompleted(ctx context.Context, id uuid.UUID) error
	MarkFailed(ctx context.Context, id uuid.UUID, runErr string) error
}

// ResultRepository defines the contract for persisted model evaluations.
type ResultRepository interface {
	ReplaceForRun(ctx context.Context, runID uuid.UUID, results []domain.ModelResult) error
	ListByRun(ctx context.Context, runID uuid.UUID, limit int) ([]domain.ModelResult, error)
}
