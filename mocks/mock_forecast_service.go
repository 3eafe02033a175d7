package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"demandcast/internal/domain"
	"demandcast/internal/forecast"
	"demandcast/internal/service"
)

// MockForecastService is a mock implementation of service.ForecastService.
type MockForecastService struct {
	mock.Mock
}

func (m *MockForecastService) Process(ctx context.Context, sessionID uuid.UUID) (*service.ProcessOutput, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ProcessOutput), args.Error(1)
}

func (m *MockForecastService) Results(ctx context.Context, sessionID uuid.UUID) (*service.ResultsOutput, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ResultsOutput), args.Error(1)
}

func (m *MockForecastService) Forecast(ctx context.Context, input service.ForecastInput) (*service.ForecastResult, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ForecastResult), args.Error(1)
}

func (m *MockForecastService) Models() map[string]forecast.ModelInfo {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(map[string]forecast.ModelInfo)
}

func (m *MockForecastService) ExecuteRun(ctx context.Context, run *domain.ForecastRun) {
	m.Called(ctx, run)
}
