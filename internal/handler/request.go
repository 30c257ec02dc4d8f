package handler

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Error codes used in ErrorInfo. The host maps these to HTTP status codes;
// other platforms may map them differently.
const (
	CodeValidation       = "VALIDATION_ERROR"
	CodeInvalidRequest   = "INVALID_REQUEST"
	CodeInvalidURL       = "INVALID_URL"
	CodeTooManyRedirects = "TOO_MANY_REDIRECTS"
	CodeDownloadFailed   = "DOWNLOAD_FAILED"
	CodeTransport        = "TRANSPORT_ERROR"
	CodeFilesystem       = "FILESYSTEM_ERROR"
	CodeNotFound         = "NOT_FOUND"
	CodeTimeout          = "TIMEOUT"
	CodeInternal         = "INTERNAL_ERROR"
)

// Request represents a generic incoming request to a tool. It provides a
// platform-agnostic way to handle input from different hosts.
type Request struct {
	// ID is a unique identifier for the request (for tracing)
	ID string `json:"id"`

	// Source identifies where the request came from (http, cli, ...)
	Source string `json:"source"`

	// Type identifies the tool being invoked (e.g. "fetch_url")
	Type string `json:"type"`

	// Payload contains the actual request data as raw JSON
	Payload json.RawMessage `json:"payload"`

	// Metadata contains additional context (headers, attributes, ...)
	Metadata map[string]string `json:"metadata,omitempty"`

	// Timestamp when the request was created
	Timestamp time.Time `json:"timestamp"`
}

// Response represents a generic response from a tool.
type Response struct {
	// ID correlates with the request ID
	ID string `json:"id"`

	// Success indicates if processing was successful
	Success bool `json:"success"`

	// Data contains the response payload (only if Success is true)
	Data json.RawMessage `json:"data,omitempty"`

	// Error contains error information if Success is false
	Error *ErrorInfo `json:"error,omitempty"`

	// Metadata contains additional response context
	Metadata map[string]string `json:"metadata,omitempty"`

	// ProcessedAt timestamp
	ProcessedAt time.Time `json:"processed_at"`
}

// ErrorInfo represents structured error information, consistent across
// all tools and hosts.
type ErrorInfo struct {
	// Code is a machine-readable error code (e.g. "DOWNLOAD_FAILED")
	Code string `json:"code"`

	// Message is a human-readable error message
	Message string `json:"message"`

	// Details provides additional error context (optional)
	Details string `json:"details,omitempty"`

	// Retryable indicates if the operation can be retried
	Retryable bool `json:"retryable,omitempty"`
}

// NewRequest creates a new request with a generated ID and timestamp.
func NewRequest(requestType string, payload interface{}) (Request, error) {
	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return Request{}, err
	}

	return Request{
		ID:        uuid.New().String(),
		Type:      requestType,
		Payload:   payloadBytes,
		Metadata:  make(map[string]string),
		Timestamp: time.Now().UTC(),
	}, nil
}

// Unmarshal is a helper to unmarshal the request payload into a specific type.
func (r *Request) Unmarshal(v interface{}) error {
	return json.Unmarshal(r.Payload, v)
}

// Marshal is a helper to set the response data from a specific type.
func (r *Response) Marshal(v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	r.Data = data
	return nil
}

// NewSuccessResponse creates a success response carrying data.
func NewSuccessResponse(id string, data interface{}) (Response, error) {
	resp := Response{
		ID:          id,
		Success:     true,
		ProcessedAt: time.Now().UTC(),
		Metadata:    make(map[string]string),
	}

	if data != nil {
		if err := resp.Marshal(data); err != nil {
			return Response{}, err
		}
	}

	return resp, nil
}

// NewErrorResponse creates an error response.
func NewErrorResponse(id, code, message, details string) Response {
	return Response{
		ID:      id,
		Success: false,
		Error: &ErrorInfo{
			Code:      code,
			Message:   message,
			Details:   details,
			Retryable: isRetryableCode(code),
		},
		ProcessedAt: time.Now().UTC(),
	}
}

// isRetryableCode determines if an error code represents a retryable
// failure. Only transient transport-level conditions qualify.
func isRetryableCode(code string) bool {
	switch code {
	case CodeTransport, CodeTimeout:
		return true
	default:
		return false
	}
}
