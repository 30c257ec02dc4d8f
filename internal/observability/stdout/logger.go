// Package stdout implements observability.Logger on top of standard
// output, emitting either formatted text or JSON lines.
package stdout

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"sort"
	"strings"
	"time"

	"urlfetch/internal/observability"
)

// Logger implements observability.Logger using stdout.
type Logger struct {
	fields map[string]interface{}
	logger *log.Logger
	json   bool
}

// NewLogger creates a new stdout logger emitting text lines.
func NewLogger() observability.Logger {
	return newLogger(os.Stdout, false)
}

// NewJSONLogger creates a new stdout logger emitting JSON lines.
func NewJSONLogger() observability.Logger {
	return newLogger(os.Stdout, true)
}

func newLogger(w io.Writer, jsonOutput bool) *Logger {
	return &Logger{
		fields: make(map[string]interface{}),
		logger: log.New(w, "", 0), // no prefix, we format ourselves
		json:   jsonOutput,
	}
}

func (l *Logger) Info(msg string, fields ...interface{}) {
	l.log("INFO", msg, fields...)
}

func (l *Logger) Error(msg string, fields ...interface{}) {
	l.log("ERROR", msg, fields...)
}

func (l *Logger) Debug(msg string, fields ...interface{}) {
	l.log("DEBUG", msg, fields...)
}

// WithFields returns a new Logger with additional persistent fields.
func (l *Logger) WithFields(fields map[string]interface{}) observability.Logger {
	newFields := make(map[string]interface{}, len(l.fields)+len(fields))
	for k, v := range l.fields {
		newFields[k] = v
	}
	for k, v := range fields {
		newFields[k] = v
	}

	return &Logger{
		fields: newFields,
		logger: l.logger,
		json:   l.json,
	}
}

func (l *Logger) log(level, msg string, fields ...interface{}) {
	entry := l.createLogEntry(level, msg, fields...)

	if l.json {
		l.logJSON(entry)
	} else {
		l.logText(entry)
	}
}

// createLogEntry merges persistent fields with the variadic key/value
// pairs of a single call.
func (l *Logger) createLogEntry(level, msg string, fields ...interface{}) map[string]interface{} {
	entry := make(map[string]interface{})

	entry["timestamp"] = time.Now().UTC().Format(time.RFC3339)
	entry["level"] = level
	entry["message"] = msg

	for k, v := range l.fields {
		entry[k] = v
	}

	// Variadic fields come as key1, value1, key2, value2, ...
	for i := 0; i < len(fields)-1; i += 2 {
		key, ok := fields[i].(string)
		if !ok {
			continue
		}

		if err, ok := fields[i+1].(error); ok && err != nil {
			entry[key] = err.Error()
			continue
		}
		entry[key] = fields[i+1]
	}

	return entry
}

func (l *Logger) logJSON(entry map[string]interface{}) {
	jsonBytes, err := json.Marshal(entry)
	if err != nil {
		l.logger.Printf("Failed to marshal log entry: %v", err)
		return
	}
	l.logger.Println(string(jsonBytes))
}

func (l *Logger) logText(entry map[string]interface{}) {
	timestamp := entry["timestamp"]
	level := entry["level"]
	message := entry["message"]
	delete(entry, "timestamp")
	delete(entry, "level")
	delete(entry, "message")

	fieldStrs := make([]string, 0, len(entry))
	for k, v := range entry {
		fieldStrs = append(fieldStrs, fmt.Sprintf("%s=%v", k, v))
	}
	sort.Strings(fieldStrs)

	logLine := fmt.Sprintf("%s [%s] %s", timestamp, level, message)
	if len(fieldStrs) > 0 {
		logLine += " | " + strings.Join(fieldStrs, " ")
	}

	l.logger.Println(logLine)
}
