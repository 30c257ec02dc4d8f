package downloader

import (
	"net/url"
	"path/filepath"
	"strings"
)

// ResolveDestination computes the output path for a transfer. An explicit
// absolute destination is used verbatim; an explicit relative one is
// resolved against baseDir. When no destination is given the filename is
// derived from the last non-empty segment of the URL path, falling back to
// DefaultFilename. Pure function; it never fails.
func ResolveDestination(sourceURL, destinationPath, baseDir string) string {
	if destinationPath != "" {
		if filepath.IsAbs(destinationPath) {
			return destinationPath
		}
		return filepath.Join(baseDir, destinationPath)
	}
	return filepath.Join(baseDir, filenameFromURL(sourceURL))
}

func filenameFromURL(sourceURL string) string {
	u, err := url.Parse(sourceURL)
	if err != nil {
		return DefaultFilename
	}

	segments := strings.Split(u.Path, "/")
	for i := len(segments) - 1; i >= 0; i-- {
		if segments[i] != "" {
			return segments[i]
		}
	}
	return DefaultFilename
}
