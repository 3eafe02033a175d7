package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"demandcast/internal/port"
)

// MockEmailSender is a mock implementation of port.EmailSender.
type MockEmailSender struct {
	mock.Mock
}

func (m *MockEmailSender) SendRunCompleted(ctx context.Context, toEmail string, n port.RunNotification) error {
	args := m.Called(ctx, toEmail, n)
	return args.Error(0)
}

func (m *MockEmailSender) SendRunFailed(ctx context.Context, toEmail string, datasetName, reason string) error {
	args := m.Called(ctx, toEmail, datasetName, reason)
	return args.Error(0)
}
