package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"urlfetch/internal/handler"
)

// MockTool is a mock implementation of handler.Tool
type MockTool struct {
	mock.Mock
}

func (m *MockTool) Name() string {
	args := m.Called()
	return args.String(0)
}

func (m *MockTool) Process(ctx context.Context, req handler.Request) (handler.Response, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(handler.Response), args.Error(1)
}

func (m *MockTool) Health(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
