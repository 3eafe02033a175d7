package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"demandcast/internal/domain"
	"demandcast/internal/service"
	"demandcast/internal/validator"
)

// MockDatasetService is a mock implementation of service.DatasetService.
type MockDatasetService struct {
	mock.Mock
}

func (m *MockDatasetService) Upload(ctx context.Context, input service.UploadInput) (*service.UploadOutput, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.UploadOutput), args.Error(1)
}

func (m *MockDatasetService) Validate(payload []byte) service.ValidateOutput {
	args := m.Called(payload)
	return args.Get(0).(service.ValidateOutput)
}

func (m *MockDatasetService) Rules() validator.RuleSet {
	args := m.Called()
	return args.Get(0).(validator.RuleSet)
}

func (m *MockDatasetService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Dataset, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Dataset), args.Error(1)
}

func (m *MockDatasetService) List(ctx context.Context, offset, limit int) ([]domain.Dataset, int, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Dataset), args.Int(1), args.Error(2)
}

func (m *MockDatasetService) Records(ctx context.Context, id uuid.UUID) ([]domain.DemandRecord, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DemandRecord), args.Error(1)
}

func (m *MockDatasetService) Findings(ctx context.Context, id uuid.UUID) ([]domain.ValidationFinding, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ValidationFinding), args.Error(1)
}

func (m *MockDatasetService) RowFindings(ctx context.Context, id uuid.UUID, row int) ([]domain.ValidationFinding, error) {
	args := m.Called(ctx, id, row)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ValidationFinding), args.Error(1)
}

func (m *MockDatasetService) DownloadURL(ctx context.Context, id uuid.UUID) (string, error) {
	args := m.Called(ctx, id)
	return args.String(0), args.Error(1)
}

func (m *MockDatasetService) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
