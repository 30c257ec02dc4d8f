package mocks

import (
	"github.com/stretchr/testify/mock"
)

// MockMetrics is a mock implementation of observability.Metrics
type MockMetrics struct {
	mock.Mock
}

func (m *MockMetrics) RecordSuccess(operation string) {
	m.Called(operation)
}

func (m *MockMetrics) RecordError(operation, errorType string) {
	m.Called(operation, errorType)
}

func (m *MockMetrics) RecordDuration(operation string, seconds float64) {
	m.Called(operation, seconds)
}

func (m *MockMetrics) RecordFileSize(fileType string, bytes int64) {
	m.Called(fileType, bytes)
}

func (m *MockMetrics) StartOperation(operation string) {
	m.Called(operation)
}

func (m *MockMetrics) EndOperation(operation string) {
	m.Called(operation)
}
