package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"demandcast/internal/domain"
)

// MockRunRepo is a mock implementation of port.RunRepository.
type MockRunRepo struct {
	mock.Mock
}

func (m *MockRunRepo) Create(ctx context.Context, run *domain.ForecastRun) error {
	args := m.Called(ctx, run)
	return args.Error(0)
}

func (m *MockRunRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.ForecastRun, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ForecastRun), args.Error(1)
}

func (m *MockRunRepo) GetLatestByDataset(ctx context.Context, datasetID uuid.UUID) (*domain.ForecastRun, error) {
	args := m.Called(ctx, datasetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ForecastRun), args.Error(1)
}

func (m *MockRunRepo) ClaimPending(ctx context.Context, limit int) ([]domain.ForecastRun, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ForecastRun), args.Error(1)
}

func (m *MockRunRepo) MarkCompleted(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockRunRepo) MarkFailed(ctx context.Context, id uuid.UUID, runErr string) error {
	args := m.Called(ctx, id, runErr)
	return args.Error(0)
}
