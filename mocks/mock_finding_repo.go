package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"demandcast/internal/domain"
)

// MockFindingRepo is a mock implementation of port.FindingRepository.
type MockFindingRepo struct {
	mock.Mock
}

func (m *MockFindingRepo) ReplaceForDataset(ctx context.Context, datasetID uuid.UUID, findings []domain.ValidationFinding) error {
	args := m.Called(ctx, datasetID, findings)
	return args.Error(0)
}

func (m *MockFindingRepo) ListByDataset(ctx context.Context, datasetID uuid.UUID) ([]domain.ValidationFinding, error) {
	args := m.Called(ctx, datasetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ValidationFinding), args.Error(1)
}

func (m *MockFindingRepo) ListByDatasetAndRow(ctx context.Context, datasetID uuid.UUID, row int) ([]domain.ValidationFinding, error) {
	args := m.Called(ctx, datasetID, row)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ValidationFinding), args.Error(1)
}
