package main

import (
	"context"
	"fmt"
	"os"

	"urlfetch/internal/downloader"
)

const userAgent = "urlfetch/1.0"

const usage = `Usage: urlfetch <url> [output-path]

Download a resource over HTTP(S) and save it to a local file. When no
output path is given the filename is taken from the last segment of the
URL path, falling back to "downloaded-file".

Options:
  -h, --help  Show this help text`

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, usage)
		return 1
	}

	switch args[0] {
	case "-h", "--help":
		fmt.Println(usage)
		return 0
	}

	if len(args) > 2 {
		fmt.Fprintln(os.Stderr, usage)
		return 1
	}

	sourceURL := args[0]
	outputPath := ""
	if len(args) == 2 {
		outputPath = args[1]
	}

	baseDir, err := os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	destination := downloader.ResolveDestination(sourceURL, outputPath, baseDir)
	dl := downloader.New(downloader.NewHTTPClient(0), userAgent)

	fmt.Printf("Downloading %s...\n", sourceURL)

	result, err := dl.FetchAndSave(context.Background(), sourceURL, destination)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	fmt.Printf("Saved to %s (%d bytes)\n", result.OutputPath, result.BytesWritten)
	return 0
}
