// Package handler hosts tools behind a platform-agnostic request/response
// envelope with a middleware chain for cross-cutting concerns.
package handler

import (
	"context"
	"time"
)

// Tool is the unit of work hosted by a runtime. Tools process requests
// and return responses without knowing about the transport that carried
// them.
type Tool interface {
	// Name returns the tool name used for registration and routing.
	Name() string

	// Process handles the actual work. Tools unmarshal the request
	// payload, process it, and return an appropriate response.
	Process(ctx context.Context, req Request) (Response, error)

	// Health reports whether the tool is ready to process requests.
	Health(ctx context.Context) error
}

// HandlerFunc is the function signature for handling requests. This is
// the core processing function that middlewares wrap.
type HandlerFunc func(ctx context.Context, req Request) (Response, error)

// Middleware wraps a HandlerFunc to add cross-cutting concerns.
type Middleware func(next HandlerFunc) HandlerFunc

// Handler wraps a Tool with a middleware chain and an optional per-request
// timeout.
type Handler struct {
	tool        Tool
	middlewares []Middleware
	timeout     time.Duration
}

// New creates a handler for the given tool. A zero timeout disables the
// per-request deadline.
func New(tool Tool, timeout time.Duration) *Handler {
	return &Handler{
		tool:    tool,
		timeout: timeout,
	}
}

// Use adds middleware to the handler chain. Middleware is executed in the
// order it is added.
func (h *Handler) Use(middleware Middleware) {
	h.middlewares = append(h.middlewares, middleware)
}

// Handle processes a request through the middleware chain and tool.
func (h *Handler) Handle(ctx context.Context, req Request) (Response, error) {
	fn := h.buildChain()

	if h.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.timeout)
		defer cancel()
	}

	return fn(ctx, req)
}

// Health checks the health of the underlying tool.
func (h *Handler) Health(ctx context.Context) error {
	return h.tool.Health(ctx)
}

// Tool returns the underlying tool.
func (h *Handler) Tool() Tool {
	return h.tool
}

// buildChain applies middleware in reverse order so that the first
// middleware added is the outermost layer.
func (h *Handler) buildChain() HandlerFunc {
	fn := h.tool.Process
	for i := len(h.middlewares) - 1; i >= 0; i-- {
		fn = h.middlewares[i](fn)
	}
	return fn
}
