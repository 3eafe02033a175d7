package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"demandcast/internal/domain"
)

// MockDatasetRepo is a mock implementation of port.DatasetRepository.
type MockDatasetRepo struct {
	mock.Mock
}

func (m *MockDatasetRepo) Create(ctx context.Context, ds *domain.Dataset) error {
	args := m.Called(ctx, ds)
	return args.Error(0)
}

func (m *MockDatasetRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Dataset, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Dataset), args.Error(1)
}

func (m *MockDatasetRepo) List(ctx context.Context, offset, limit int) ([]domain.Dataset, int, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Dataset), args.Int(1), args.Error(2)
}

func (m *MockDatasetRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.DatasetStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockDatasetRepo) UpdateValidation(ctx context.Context, ds *domain.Dataset) error {
	args := m.Called(ctx, ds)
	return args.Error(0)
}

func (m *MockDatasetRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
