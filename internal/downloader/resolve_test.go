package downloader

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveDestination(t *testing.T) {
	tests := []struct {
		name            string
		sourceURL       string
		destinationPath string
		baseDir         string
		want            string
	}{
		{
			name:            "explicit absolute path used verbatim",
			sourceURL:       "https://example.com/files/report.pdf",
			destinationPath: "/data/out.pdf",
			baseDir:         "/base",
			want:            "/data/out.pdf",
		},
		{
			name:            "explicit relative path joined to base",
			sourceURL:       "https://example.com/files/report.pdf",
			destinationPath: "out/report.pdf",
			baseDir:         "/base",
			want:            "/base/out/report.pdf",
		},
		{
			name:      "filename from last url segment",
			sourceURL: "https://example.com/files/report.pdf",
			baseDir:   "/base",
			want:      "/base/report.pdf",
		},
		{
			name:      "trailing slash takes last non-empty segment",
			sourceURL: "https://example.com/files/",
			baseDir:   "/base",
			want:      "/base/files",
		},
		{
			name:      "root path falls back to default name",
			sourceURL: "https://example.com/",
			baseDir:   "/base",
			want:      "/base/downloaded-file",
		},
		{
			name:      "empty path falls back to default name",
			sourceURL: "https://example.com",
			baseDir:   "/base",
			want:      "/base/downloaded-file",
		},
		{
			name:      "query string ignored",
			sourceURL: "https://example.com/files/report.pdf?version=2",
			baseDir:   "/base",
			want:      "/base/report.pdf",
		},
		{
			name:      "unparseable url falls back to default name",
			sourceURL: "http://%zz",
			baseDir:   "/base",
			want:      "/base/downloaded-file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveDestination(tt.sourceURL, tt.destinationPath, tt.baseDir)
			assert.Equal(t, tt.want, got)

			// Pure function: identical inputs, identical output.
			assert.Equal(t, got, ResolveDestination(tt.sourceURL, tt.destinationPath, tt.baseDir))
		})
	}
}
