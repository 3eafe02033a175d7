package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
)

// MockResultsCache is a mock implementation of port.ResultsCache.
type MockResultsCache struct {
	mock.Mock
}

func (m *MockResultsCache) Get(ctx context.Context, datasetID string) ([]byte, bool, error) {
	args := m.Called(ctx, datasetID)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).([]byte), args.Bool(1), args.Error(2)
}

func (m *MockResultsCache) Set(ctx context.Context, datasetID string, payload []byte, ttl time.Duration) error {
	args := m.Called(ctx, datasetID, payload, ttl)
	return args.Error(0)
}

func (m *MockResultsCache) Invalidate(ctx context.Context, datasetID string) error {
	args := m.Called(ctx, datasetID)
	return args.Error(0)
}

func (m *MockResultsCache) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
