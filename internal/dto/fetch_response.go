package dto

// FetchResponse reports a completed transfer back to the caller.
type FetchResponse struct {
	// URL is the final URL after all redirects were followed.
	URL string `json:"url"`

	// OutputPath is the file the body was written to.
	OutputPath string `json:"output_path"`

	// BytesWritten is the exact byte length of the written body.
	BytesWritten int64 `json:"bytes_written"`
}
