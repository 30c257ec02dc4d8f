package handler_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"urlfetch/internal/handler"
	"urlfetch/mocks"
)

func TestHandler_Handle_CallsTool(t *testing.T) {
	tool := new(mocks.MockTool)
	req, err := handler.NewRequest("fetch_url", map[string]string{"url": "https://example.com/a"})
	require.NoError(t, err)

	want, err := handler.NewSuccessResponse(req.ID, map[string]int{"bytes_written": 42})
	require.NoError(t, err)

	tool.On("Process", mock.Anything, mock.AnythingOfType("handler.Request")).Return(want, nil)

	h := handler.New(tool, 0)
	got, err := h.Handle(context.Background(), req)
	require.NoError(t, err)

	assert.True(t, got.Success)
	assert.Equal(t, req.ID, got.ID)
	tool.AssertExpectations(t)
}

func TestHandler_MiddlewareOrder(t *testing.T) {
	tool := new(mocks.MockTool)
	tool.On("Process", mock.Anything, mock.Anything).Return(handler.Response{Success: true}, nil)

	var order []string
	named := func(name string) handler.Middleware {
		return func(next handler.HandlerFunc) handler.HandlerFunc {
			return func(ctx context.Context, req handler.Request) (handler.Response, error) {
				order = append(order, name)
				return next(ctx, req)
			}
		}
	}

	h := handler.New(tool, 0)
	h.Use(named("first"))
	h.Use(named("second"))

	_, err := h.Handle(context.Background(), handler.Request{ID: "r1"})
	require.NoError(t, err)
	assert.Equal(t, []string{"first", "second"}, order)
}

func TestHandler_TimeoutAppliesDeadline(t *testing.T) {
	tool := new(mocks.MockTool)
	tool.On("Process", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		ctx := args.Get(0).(context.Context)
		_, ok := ctx.Deadline()
		assert.True(t, ok)
	}).Return(handler.Response{Success: true}, nil)

	h := handler.New(tool, time.Minute)
	_, err := h.Handle(context.Background(), handler.Request{ID: "r1"})
	require.NoError(t, err)
}

func TestHandler_Health(t *testing.T) {
	tool := new(mocks.MockTool)
	tool.On("Health", mock.Anything).Return(nil)

	h := handler.New(tool, 0)
	assert.NoError(t, h.Health(context.Background()))
	tool.AssertExpectations(t)
}

func TestNewErrorResponse_Retryable(t *testing.T) {
	resp := handler.NewErrorResponse("id", handler.CodeTransport, "boom", "")
	require.NotNil(t, resp.Error)
	assert.True(t, resp.Error.Retryable)

	resp = handler.NewErrorResponse("id", handler.CodeValidation, "bad", "")
	require.NotNil(t, resp.Error)
	assert.False(t, resp.Error.Retryable)

	resp = handler.NewErrorResponse("id", handler.CodeDownloadFailed, "404", "")
	require.NotNil(t, resp.Error)
	assert.False(t, resp.Error.Retryable)
}

func TestRequest_Unmarshal(t *testing.T) {
	req, err := handler.NewRequest("fetch_url", map[string]string{"url": "https://example.com/x"})
	require.NoError(t, err)
	assert.NotEmpty(t, req.ID)
	assert.False(t, req.Timestamp.IsZero())

	var payload struct {
		URL string `json:"url"`
	}
	require.NoError(t, req.Unmarshal(&payload))
	assert.Equal(t, "https://example.com/x", payload.URL)
}
