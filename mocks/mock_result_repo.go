package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"demandcast/internal/domain"
)

// MockResultRepo is a mock implementation of port.ResultRepository.
type MockResultRepo struct {
	mock.Mock
}

func (m *MockResultRepo) ReplaceForRun(ctx context.Context, runID uuid.UUID, results []domain.ModelResult) error {
	args := m.Called(ctx, runID, results)
	return args.Error(0)
}

func (m *MockResultRepo) ListByRun(ctx context.Context, runID uuid.UUID, limit int) ([]domain.ModelResult, error) {
	args := m.Called(ctx, runID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ModelResult), args.Error(1)
}
