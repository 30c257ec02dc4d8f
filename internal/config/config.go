// Package config holds the environment-driven configuration for the tool
// host. The one-shot CLI takes no configuration beyond its positional
// arguments and does not use this package.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration.
type Config struct {
	// Core settings
	Environment string
	ServiceName string
	LogLevel    string
	Version     string

	HTTP       HTTPConfig
	Server     ServerConfig
	Downloader DownloaderConfig
}

// HTTPConfig configures the outbound HTTP client.
type HTTPConfig struct {
	Timeout   time.Duration
	UserAgent string
}

// ServerConfig configures the tool host.
type ServerConfig struct {
	Addr           string
	RequestTimeout time.Duration
	MaxRequestSize int64
	EnableMetrics  bool
	LogJSON        bool
}

// DownloaderConfig configures destination resolution.
type DownloaderConfig struct {
	// BaseDir is the directory relative destinations and inferred
	// filenames are resolved against.
	BaseDir string
}

// Load reads optional .env files and then parses the configuration from
// environment variables, applying defaults for anything unset.
func Load() (*Config, error) {
	if err := loadEnvFiles(); err != nil {
		return nil, err
	}
	return parse(), nil
}

// loadEnvFiles loads .env files in order of precedence.
func loadEnvFiles() error {
	// Base .env file (optional)
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(".env"); err != nil {
			return fmt.Errorf("failed to load .env: %w", err)
		}
	}

	// .env.local for local overrides (highest precedence, optional)
	if _, err := os.Stat(".env.local"); err == nil {
		if err := godotenv.Overload(".env.local"); err != nil {
			return fmt.Errorf("failed to load .env.local: %w", err)
		}
	}

	return nil
}

// parse reads configuration from environment variables.
func parse() *Config {
	return &Config{
		Environment: getEnv("ENVIRONMENT", "local"),
		ServiceName: getEnv("SERVICE_NAME", "urlfetch"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		Version:     getEnv("SERVICE_VERSION", "1.0.0"),

		HTTP: HTTPConfig{
			Timeout:   getDuration("HTTP_TIMEOUT", "120s"),
			UserAgent: getEnv("HTTP_USER_AGENT", "urlfetch/1.0"),
		},

		Server: ServerConfig{
			Addr:           getEnv("SERVER_ADDR", ":8080"),
			RequestTimeout: getDuration("SERVER_REQUEST_TIMEOUT", "300s"),
			MaxRequestSize: int64(getInt("SERVER_MAX_REQUEST_SIZE", 1<<20)),
			EnableMetrics:  getBool("SERVER_ENABLE_METRICS", true),
			LogJSON:        getBool("SERVER_LOG_JSON", false),
		},

		Downloader: DownloaderConfig{
			BaseDir: getEnv("DOWNLOAD_BASE_DIR", defaultBaseDir()),
		},
	}
}

func defaultBaseDir() string {
	wd, err := os.Getwd()
	if err != nil {
		return "."
	}
	return wd
}
