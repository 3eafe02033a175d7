package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"demandcast/internal/domain"
)

// MockRecordRepo is a mock implementation of port.RecordRepository.
type MockRecordRepo struct {
	mock.Mock
}

func (m *MockRecordRepo) ReplaceForDataset(ctx context.Context, datasetID uuid.UUID, records []domain.DemandRecord) error {
	args := m.Called(ctx, datasetID, records)
	return args.Error(0)
}

func (m *MockRecordRepo) ListByDataset(ctx context.Context, datasetID uuid.UUID) ([]domain.DemandRecord, error) {
	args := m.Called(ctx, datasetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DemandRecord), args.Error(1)
}
