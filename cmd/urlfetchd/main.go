package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"urlfetch/internal/config"
	"urlfetch/internal/downloader"
	"urlfetch/internal/handler"
	"urlfetch/internal/handler/middleware"
	"urlfetch/internal/observability"
	"urlfetch/internal/observability/prom"
	"urlfetch/internal/observability/stdout"
	"urlfetch/internal/server"
	"urlfetch/internal/tool"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger := newLogger(cfg)
	metrics := newMetrics(cfg)

	logger.Info("Starting service",
		"service", cfg.ServiceName,
		"version", cfg.Version,
		"environment", cfg.Environment)

	srv := buildServer(cfg, logger, metrics)

	go func() {
		if err := srv.Start(); err != nil {
			logger.Error("Server stopped", "error", err)
			os.Exit(1)
		}
	}()

	waitForShutdown(srv, logger)
}

func newLogger(cfg *config.Config) observability.Logger {
	var logger observability.Logger
	if cfg.Server.LogJSON {
		logger = stdout.NewJSONLogger()
	} else {
		logger = stdout.NewLogger()
	}
	return logger.WithFields(map[string]interface{}{"service": cfg.ServiceName})
}

func newMetrics(cfg *config.Config) observability.Metrics {
	if !cfg.Server.EnableMetrics {
		return observability.NopMetrics{}
	}
	return prom.New(cfg.ServiceName)
}

func buildServer(cfg *config.Config, logger observability.Logger, metrics observability.Metrics) *server.Server {
	dl := downloader.New(
		downloader.NewHTTPClient(cfg.HTTP.Timeout),
		cfg.HTTP.UserAgent,
	)

	fetchTool := tool.NewFetchTool(dl, cfg.Downloader.BaseDir, logger, metrics)

	h := handler.New(fetchTool, cfg.Server.RequestTimeout)
	h.Use(middleware.RecoveryMiddleware(logger))
	h.Use(middleware.LoggingMiddleware(logger))
	h.Use(middleware.MetricsMiddleware(metrics))

	srv := server.New(cfg.Server, logger)
	srv.Register(h)

	return srv
}

func waitForShutdown(srv *server.Server, logger observability.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	logger.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Shutdown failed", "error", err)
	}
}
