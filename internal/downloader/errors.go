package downloader

import (
	"errors"
	"fmt"
)

// ErrorKind classifies downloader failures. Every error returned by
// FetchAndSave is an *Error carrying one of these kinds.
type ErrorKind string

const (
	KindInvalidURL       ErrorKind = "invalid_url"
	KindTooManyRedirects ErrorKind = "too_many_redirects"
	KindDownloadFailed   ErrorKind = "download_failed"
	KindTransport        ErrorKind = "transport_error"
	KindFilesystem       ErrorKind = "filesystem_error"
)

// Error is the failure type returned by the downloader.
// StatusCode is only set for download_failed errors, Path only for
// filesystem errors.
type Error struct {
	Kind       ErrorKind
	URL        string
	Path       string
	StatusCode int
	Err        error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindInvalidURL:
		if e.Err != nil {
			return fmt.Sprintf("invalid URL %q: %v", e.URL, e.Err)
		}
		return fmt.Sprintf("invalid URL %q: scheme must be http or https", e.URL)
	case KindTooManyRedirects:
		return fmt.Sprintf("too many redirects fetching %s (limit %d)", e.URL, MaxRedirects)
	case KindDownloadFailed:
		return fmt.Sprintf("download failed for %s: unexpected status %d", e.URL, e.StatusCode)
	case KindTransport:
		return fmt.Sprintf("request to %s failed: %v", e.URL, e.Err)
	case KindFilesystem:
		return fmt.Sprintf("failed to write %s: %v", e.Path, e.Err)
	default:
		return fmt.Sprintf("download error: %v", e.Err)
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Error wrapping functions with context
func ErrInvalidURL(url string, err error) error {
	return &Error{Kind: KindInvalidURL, URL: url, Err: err}
}

func ErrTooManyRedirects(url string) error {
	return &Error{Kind: KindTooManyRedirects, URL: url}
}

func ErrDownloadFailed(url string, statusCode int) error {
	return &Error{Kind: KindDownloadFailed, URL: url, StatusCode: statusCode}
}

func ErrTransport(url string, err error) error {
	return &Error{Kind: KindTransport, URL: url, Err: err}
}

func ErrFilesystem(path string, err error) error {
	return &Error{Kind: KindFilesystem, Path: path, Err: err}
}

// KindOf returns the ErrorKind of err, or the empty kind when err was not
// produced by the downloader.
func KindOf(err error) ErrorKind {
	var dlErr *Error
	if errors.As(err, &dlErr) {
		return dlErr.Kind
	}
	return ""
}
