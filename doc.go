/*
Package urlfetch fetches a resource from an HTTP(S) URL and writes it to a
local path, inferring a filename when none is given and following a
bounded number of redirects.

Two surfaces expose the same download operation:

  - cmd/urlfetch: a one-shot CLI, `urlfetch <url> [output-path]`
  - cmd/urlfetchd: a host runtime serving the operation as a callable
    tool over HTTP, with health and Prometheus metrics endpoints

Architecture

	├── cmd/
	│   ├── urlfetch/          # CLI entry point
	│   └── urlfetchd/         # tool host entry point
	├── internal/
	│   ├── downloader/        # core download algorithm
	│   ├── dto/               # tool request/response payloads
	│   ├── tool/              # fetch tool (handler.Tool implementation)
	│   ├── handler/           # envelope, middleware chain
	│   ├── server/            # HTTP host (chi router)
	│   ├── config/            # env-driven configuration
	│   └── observability/     # logging and metrics ports + adapters
	└── mocks/                 # testify mocks

The core lives in internal/downloader: validate the URL scheme, follow
redirects through an explicit bounded loop (at most 5 hops, relative
Location values resolved against the current URL), reject non-2xx final
responses, then stream the body to disk, creating parent directories and
overwriting any existing file. No state outlives a single invocation and
no retries are attempted; every failure carries one of the error kinds
invalid_url, too_many_redirects, download_failed, transport_error or
filesystem_error.

The tool host accepts POST /tools/fetch_url with a JSON payload:

	{
	    "url": "https://example.com/files/report.pdf",
	    "output_path": "reports/latest.pdf"
	}

and responds with an envelope carrying the final URL, the output path and
the number of bytes written.
*/
package urlfetch
