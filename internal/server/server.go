// Package server is the HTTP host for registered tools. It exposes each
// tool at POST /tools/{name} with JSON envelope responses, plus health
// and Prometheus metrics endpoints.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"urlfetch/internal/config"
	"urlfetch/internal/handler"
	"urlfetch/internal/observability"
)

type Server struct {
	httpServer     *http.Server
	router         *chi.Mux
	handlers       map[string]*handler.Handler
	logger         observability.Logger
	maxRequestSize int64
}

func New(cfg config.ServerConfig, logger observability.Logger) *Server {
	s := &Server{
		router:         chi.NewRouter(),
		handlers:       make(map[string]*handler.Handler),
		logger:         logger.WithFields(map[string]interface{}{"component": "server"}),
		maxRequestSize: cfg.MaxRequestSize,
	}

	s.router.Post("/tools/{name}", s.handleTool)
	s.router.Get("/healthz", s.handleHealth)
	if cfg.EnableMetrics {
		s.router.Handle("/metrics", promhttp.Handler())
	}

	s.httpServer = &http.Server{
		Addr:    cfg.Addr,
		Handler: s.router,
	}

	return s
}

// Register adds a tool handler, keyed by the tool's name.
func (s *Server) Register(h *handler.Handler) {
	s.handlers[h.Tool().Name()] = h
	s.logger.Info("Tool registered", "tool", h.Tool().Name())
}

// Router exposes the underlying router, mainly for tests.
func (s *Server) Router() *chi.Mux {
	return s.router
}

// Start runs the server until Shutdown is called.
func (s *Server) Start() error {
	s.logger.Info("Server listening", "addr", s.httpServer.Addr)
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

func (s *Server) handleTool(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	requestID := extractRequestID(r)

	h, ok := s.handlers[name]
	if !ok {
		s.writeJSON(w, http.StatusNotFound, handler.NewErrorResponse(
			requestID, handler.CodeNotFound,
			fmt.Sprintf("unknown tool: %s", name), ""))
		return
	}

	if s.maxRequestSize > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, s.maxRequestSize)
	}
	body, err := io.ReadAll(r.Body)
	if err != nil {
		s.writeJSON(w, http.StatusBadRequest, handler.NewErrorResponse(
			requestID, handler.CodeInvalidRequest,
			"failed to read request body", err.Error()))
		return
	}

	req := handler.Request{
		ID:      requestID,
		Source:  "http",
		Type:    name,
		Payload: body,
		Metadata: map[string]string{
			"http_method": r.Method,
			"http_path":   r.URL.Path,
		},
		Timestamp: time.Now().UTC(),
	}

	resp, err := h.Handle(r.Context(), req)
	if err != nil {
		s.writeJSON(w, http.StatusInternalServerError, handler.NewErrorResponse(
			req.ID, handler.CodeInternal,
			"request processing failed", err.Error()))
		return
	}

	s.writeJSON(w, statusCodeFor(resp), resp)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	for name, h := range s.handlers {
		if err := h.Health(r.Context()); err != nil {
			s.writeJSON(w, http.StatusServiceUnavailable, map[string]interface{}{
				"status": "unhealthy",
				"tool":   name,
				"error":  err.Error(),
			})
			return
		}
	}

	s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"status": "healthy",
		"time":   time.Now().UTC(),
	})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("Failed to encode response", "error", err)
	}
}

// extractRequestID takes the caller's request ID when present, otherwise
// generates one.
func extractRequestID(r *http.Request) string {
	for _, header := range []string{"X-Request-ID", "X-Correlation-ID"} {
		if id := r.Header.Get(header); id != "" {
			return id
		}
	}
	return uuid.New().String()
}

// statusCodeFor maps envelope error codes onto HTTP status codes.
func statusCodeFor(resp handler.Response) int {
	if resp.Success {
		return http.StatusOK
	}
	if resp.Error == nil {
		return http.StatusInternalServerError
	}

	switch resp.Error.Code {
	case handler.CodeValidation, handler.CodeInvalidRequest, handler.CodeInvalidURL:
		return http.StatusBadRequest
	case handler.CodeNotFound:
		return http.StatusNotFound
	case handler.CodeDownloadFailed, handler.CodeTransport, handler.CodeTooManyRedirects:
		return http.StatusBadGateway
	case handler.CodeTimeout:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}
