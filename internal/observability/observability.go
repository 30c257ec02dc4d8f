// Package observability defines the logging and metrics ports used across
// the application. Concrete adapters live in subpackages.
package observability

// Logger defines the interface for structured logging in the application.
// Fields are passed as alternating key/value pairs.
type Logger interface {
	// Info logs informational messages for normal operations.
	Info(msg string, fields ...interface{})

	// Error logs error conditions. Pass the actual error under the
	// "error" key; implementations extract its message.
	Error(msg string, fields ...interface{})

	// Debug logs diagnostic detail, usually disabled in production.
	Debug(msg string, fields ...interface{})

	// WithFields returns a new Logger with the given fields added to all
	// subsequent logs. Useful for adding consistent context like
	// request_id or component name.
	WithFields(fields map[string]interface{}) Logger
}

// Metrics defines the interface for recording application metrics.
type Metrics interface {
	// RecordSuccess increments the success counter for an operation.
	RecordSuccess(operation string)

	// RecordError increments the error counters for an operation,
	// broken down by error type.
	RecordError(operation, errorType string)

	// RecordDuration records an operation duration in seconds.
	RecordDuration(operation string, seconds float64)

	// RecordFileSize records the size of a transferred file in bytes.
	RecordFileSize(fileType string, bytes int64)

	// StartOperation increments the in-progress gauge for an operation.
	// Must be paired with EndOperation.
	StartOperation(operation string)

	// EndOperation decrements the in-progress gauge for an operation.
	EndOperation(operation string)
}

// NopLogger discards everything. Useful for callers that do their own
// user-facing output, like the CLI.
type NopLogger struct{}

func (NopLogger) Info(string, ...interface{})  {}
func (NopLogger) Error(string, ...interface{}) {}
func (NopLogger) Debug(string, ...interface{}) {}

func (l NopLogger) WithFields(map[string]interface{}) Logger { return l }

// NopMetrics discards all measurements.
type NopMetrics struct{}

func (NopMetrics) RecordSuccess(string)           {}
func (NopMetrics) RecordError(string, string)     {}
func (NopMetrics) RecordDuration(string, float64) {}
func (NopMetrics) RecordFileSize(string, int64)   {}
func (NopMetrics) StartOperation(string)          {}
func (NopMetrics) EndOperation(string)            {}
