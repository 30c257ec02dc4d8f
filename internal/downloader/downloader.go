// Package downloader implements the end-to-end download operation: URL
// validation, bounded redirect following, status handling and streaming
// the response body to a local file.
package downloader

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"time"
)

const (
	// MaxRedirects bounds the redirect chain. Exceeding it aborts the
	// transfer before another request is issued.
	MaxRedirects = 5

	// DefaultFilename is used when the source URL has no path segment to
	// derive a filename from.
	DefaultFilename = "downloaded-file"
)

// HTTPClient is the transport dependency of the Downloader.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// TransferResult describes a completed transfer.
type TransferResult struct {
	// FinalURL is the URL that produced the response body, after all
	// redirects were followed.
	FinalURL string

	// OutputPath is the file the body was written to.
	OutputPath string

	// BytesWritten is the exact byte length of the written body.
	BytesWritten int64
}

// Downloader performs a single HTTP(S) GET transfer per call. It holds no
// state between calls and is safe for concurrent use as long as concurrent
// calls target distinct output paths.
type Downloader struct {
	client    HTTPClient
	userAgent string
}

func New(client HTTPClient, userAgent string) *Downloader {
	return &Downloader{
		client:    client,
		userAgent: userAgent,
	}
}

// NewHTTPClient returns an http.Client suitable for the Downloader. It
// never follows redirects on its own so the bounded redirect loop stays
// inside FetchAndSave. A zero timeout means no timeout; callers impose
// deadlines through the request context.
func NewHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout: timeout,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
}

// FetchAndSave downloads sourceURL and writes the response body to
// outputPath, creating missing parent directories and overwriting any
// existing file. Redirects are followed up to MaxRedirects hops. The file
// handle is closed on every exit path; partially written files are not
// cleaned up.
func (d *Downloader) FetchAndSave(ctx context.Context, sourceURL, outputPath string) (*TransferResult, error) {
	current, err := url.Parse(sourceURL)
	if err != nil {
		return nil, ErrInvalidURL(sourceURL, err)
	}
	if current.Scheme != "http" && current.Scheme != "https" {
		return nil, ErrInvalidURL(sourceURL, nil)
	}

	for redirects := 0; ; {
		resp, err := d.get(ctx, current.String())
		if err != nil {
			return nil, err
		}

		// A 3xx without a Location header is not treated as a redirect
		// and falls through to final status handling below.
		if location, ok := redirectTarget(resp); ok {
			// Drain before closing so the connection can be reused for
			// the next hop.
			io.Copy(io.Discard, resp.Body)
			resp.Body.Close()

			redirects++
			if redirects > MaxRedirects {
				return nil, ErrTooManyRedirects(sourceURL)
			}

			next, err := current.Parse(location)
			if err != nil {
				return nil, ErrTransport(current.String(), fmt.Errorf("bad Location %q: %w", location, err))
			}
			current = next
			continue
		}

		if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
			resp.Body.Close()
			return nil, ErrDownloadFailed(current.String(), resp.StatusCode)
		}

		written, err := saveBody(current.String(), outputPath, resp.Body)
		resp.Body.Close()
		if err != nil {
			return nil, err
		}

		return &TransferResult{
			FinalURL:     current.String(),
			OutputPath:   outputPath,
			BytesWritten: written,
		}, nil
	}
}

func (d *Downloader) get(ctx context.Context, rawURL string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, ErrInvalidURL(rawURL, err)
	}

	if d.userAgent != "" {
		req.Header.Set("User-Agent", d.userAgent)
	}

	resp, err := d.client.Do(req)
	if err != nil {
		return nil, ErrTransport(rawURL, err)
	}
	return resp, nil
}

// redirectTarget reports whether resp is a redirect the downloader should
// follow, and the raw Location value when it is.
func redirectTarget(resp *http.Response) (string, bool) {
	switch resp.StatusCode {
	case http.StatusMovedPermanently,
		http.StatusFound,
		http.StatusSeeOther,
		http.StatusTemporaryRedirect,
		http.StatusPermanentRedirect:
		if location := resp.Header.Get("Location"); location != "" {
			return location, true
		}
	}
	return "", false
}

// saveBody streams body into a new file at path. Write-side failures
// surface as filesystem errors, read-side failures as transport errors.
func saveBody(rawURL, path string, body io.Reader) (int64, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return 0, ErrFilesystem(path, err)
	}

	file, err := os.Create(path)
	if err != nil {
		return 0, ErrFilesystem(path, err)
	}

	written, err := io.Copy(file, body)
	if err != nil {
		file.Close()
		var pathErr *fs.PathError
		if errors.As(err, &pathErr) {
			return written, ErrFilesystem(path, err)
		}
		return written, ErrTransport(rawURL, err)
	}

	if err := file.Close(); err != nil {
		return written, ErrFilesystem(path, err)
	}
	return written, nil
}
