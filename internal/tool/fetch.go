// Package tool contains the tools served by the host runtime.
package tool

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"urlfetch/internal/downloader"
	"urlfetch/internal/dto"
	"urlfetch/internal/handler"
	"urlfetch/internal/observability"
)

// FetchTool downloads a URL to a local file on behalf of a host caller.
type FetchTool struct {
	downloader *downloader.Downloader
	baseDir    string
	logger     observability.Logger
	metrics    observability.Metrics
}

func NewFetchTool(d *downloader.Downloader, baseDir string, logger observability.Logger, metrics observability.Metrics) *FetchTool {
	return &FetchTool{
		downloader: d,
		baseDir:    baseDir,
		logger:     logger.WithFields(map[string]interface{}{"component": "tool.fetch"}),
		metrics:    metrics,
	}
}

func (t *FetchTool) Name() string {
	return "fetch_url"
}

func (t *FetchTool) Process(ctx context.Context, req handler.Request) (handler.Response, error) {
	var fetchReq dto.FetchRequest
	if err := req.Unmarshal(&fetchReq); err != nil {
		return handler.NewErrorResponse(req.ID, handler.CodeInvalidRequest,
			"failed to unmarshal payload", err.Error()), nil
	}

	if err := fetchReq.Validate(); err != nil {
		return handler.NewErrorResponse(req.ID, handler.CodeValidation,
			"invalid payload", err.Error()), nil
	}

	outputPath := downloader.ResolveDestination(fetchReq.URL, fetchReq.OutputPath, t.baseDir)

	t.logger.Info("Starting download",
		"request_id", req.ID,
		"url", fetchReq.URL,
		"output_path", outputPath)

	result, err := t.downloader.FetchAndSave(ctx, fetchReq.URL, outputPath)
	if err != nil {
		t.logger.Error("Download failed",
			"request_id", req.ID,
			"url", fetchReq.URL,
			"error", err)
		return errorResponseFor(req.ID, err), nil
	}

	t.metrics.RecordFileSize(fileTypeOf(result.OutputPath), result.BytesWritten)

	t.logger.Info("Download completed",
		"request_id", req.ID,
		"url", result.FinalURL,
		"output_path", result.OutputPath,
		"bytes_written", result.BytesWritten)

	resp, err := handler.NewSuccessResponse(req.ID, &dto.FetchResponse{
		URL:          result.FinalURL,
		OutputPath:   result.OutputPath,
		BytesWritten: result.BytesWritten,
	})
	if err != nil {
		return handler.NewErrorResponse(req.ID, handler.CodeInternal,
			"failed to encode response", err.Error()), nil
	}
	return resp, nil
}

// Health verifies the base directory is usable as a download target.
func (t *FetchTool) Health(ctx context.Context) error {
	info, err := os.Stat(t.baseDir)
	if err != nil {
		return fmt.Errorf("base directory not accessible: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("base path %s is not a directory", t.baseDir)
	}
	return nil
}

// fileTypeOf labels a downloaded file by its extension for metrics.
func fileTypeOf(path string) string {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return "unknown"
	}
	return strings.ToLower(ext)
}

// errorResponseFor maps downloader error kinds onto handler error codes.
func errorResponseFor(id string, err error) handler.Response {
	code := handler.CodeInternal
	switch downloader.KindOf(err) {
	case downloader.KindInvalidURL:
		code = handler.CodeInvalidURL
	case downloader.KindTooManyRedirects:
		code = handler.CodeTooManyRedirects
	case downloader.KindDownloadFailed:
		code = handler.CodeDownloadFailed
	case downloader.KindTransport:
		code = handler.CodeTransport
	case downloader.KindFilesystem:
		code = handler.CodeFilesystem
	}
	return handler.NewErrorResponse(id, code, "download failed", err.Error())
}
