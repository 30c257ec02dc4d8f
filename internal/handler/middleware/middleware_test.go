package middleware_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"urlfetch/internal/handler"
	"urlfetch/internal/handler/middleware"
	"urlfetch/internal/observability"
	"urlfetch/mocks"
)

func TestRecoveryMiddleware_RecoversPanic(t *testing.T) {
	panicking := func(ctx context.Context, req handler.Request) (handler.Response, error) {
		panic("boom")
	}

	fn := middleware.RecoveryMiddleware(observability.NopLogger{})(panicking)

	resp, err := fn(context.Background(), handler.Request{ID: "r1"})
	require.Error(t, err)
	assert.False(t, resp.Success)
	require.NotNil(t, resp.Error)
	assert.Equal(t, handler.CodeInternal, resp.Error.Code)
	assert.Equal(t, "r1", resp.ID)
}

func TestMetricsMiddleware_RecordsSuccess(t *testing.T) {
	metrics := new(mocks.MockMetrics)
	metrics.On("StartOperation", "fetch_url").Once()
	metrics.On("EndOperation", "fetch_url").Once()
	metrics.On("RecordDuration", "fetch_url", mock.AnythingOfType("float64")).Once()
	metrics.On("RecordSuccess", "fetch_url").Once()

	next := func(ctx context.Context, req handler.Request) (handler.Response, error) {
		return handler.Response{Success: true}, nil
	}

	fn := middleware.MetricsMiddleware(metrics)(next)
	_, err := fn(context.Background(), handler.Request{ID: "r1", Type: "fetch_url"})
	require.NoError(t, err)

	metrics.AssertExpectations(t)
}

func TestMetricsMiddleware_RecordsErrorCode(t *testing.T) {
	metrics := new(mocks.MockMetrics)
	metrics.On("StartOperation", "fetch_url").Once()
	metrics.On("EndOperation", "fetch_url").Once()
	metrics.On("RecordDuration", "fetch_url", mock.AnythingOfType("float64")).Once()
	metrics.On("RecordError", "fetch_url", handler.CodeDownloadFailed).Once()

	next := func(ctx context.Context, req handler.Request) (handler.Response, error) {
		return handler.NewErrorResponse(req.ID, handler.CodeDownloadFailed, "status 404", ""), nil
	}

	fn := middleware.MetricsMiddleware(metrics)(next)
	_, err := fn(context.Background(), handler.Request{ID: "r1", Type: "fetch_url"})
	require.NoError(t, err)

	metrics.AssertExpectations(t)
}

func TestMetricsMiddleware_RecordsHandlerError(t *testing.T) {
	metrics := new(mocks.MockMetrics)
	metrics.On("StartOperation", "fetch_url").Once()
	metrics.On("EndOperation", "fetch_url").Once()
	metrics.On("RecordDuration", "fetch_url", mock.AnythingOfType("float64")).Once()
	metrics.On("RecordError", "fetch_url", "handler_error").Once()

	next := func(ctx context.Context, req handler.Request) (handler.Response, error) {
		return handler.Response{}, errors.New("broken")
	}

	fn := middleware.MetricsMiddleware(metrics)(next)
	_, err := fn(context.Background(), handler.Request{ID: "r1", Type: "fetch_url"})
	require.Error(t, err)

	metrics.AssertExpectations(t)
}

func TestLoggingMiddleware_PassesThrough(t *testing.T) {
	next := func(ctx context.Context, req handler.Request) (handler.Response, error) {
		return handler.Response{ID: req.ID, Success: true}, nil
	}

	fn := middleware.LoggingMiddleware(observability.NopLogger{})(next)
	resp, err := fn(context.Background(), handler.Request{ID: "r1", Type: "fetch_url"})
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, "r1", resp.ID)
}
