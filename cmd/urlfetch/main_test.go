package main

import (
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_Help(t *testing.T) {
	assert.Equal(t, 0, run([]string{"-h"}))
	assert.Equal(t, 0, run([]string{"--help"}))

	// A bare "help" word is not a flag; it is treated as a URL and fails.
	assert.Equal(t, 1, run([]string{"help"}))
}

func TestRun_MissingURL(t *testing.T) {
	assert.Equal(t, 1, run(nil))
}

func TestRun_TooManyArgs(t *testing.T) {
	assert.Equal(t, 1, run([]string{"https://example.com/a", "out", "extra"}))
}

func TestRun_DownloadsToExplicitPath(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, "cli body")
	}))
	defer srv.Close()

	dest := filepath.Join(t.TempDir(), "out.bin")
	assert.Equal(t, 0, run([]string{srv.URL + "/file", dest}))

	written, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, "cli body", string(written))
}

func TestRun_FailureExitsNonzero(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "out.bin")
	assert.Equal(t, 1, run([]string{"ftp://example.com/file", dest}))

	_, err := os.Stat(dest)
	assert.True(t, os.IsNotExist(err))
}
