// Package dto defines the payloads exchanged with the fetch tool.
package dto

import "errors"

// FetchRequest is the payload accepted by the fetch tool.
type FetchRequest struct {
	// URL is the source to download. Must be an absolute http(s) URL.
	URL string `json:"url"`

	// OutputPath optionally names the destination file. Relative paths
	// are resolved against the host's base directory; when omitted the
	// filename is derived from the URL.
	OutputPath string `json:"output_path,omitempty"`
}

func (r *FetchRequest) Validate() error {
	if r.URL == "" {
		return errors.New("url is required")
	}
	return nil
}
