// Package fetch downloads files over HTTP
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/net/context/ctxhttp"
)

// Result describes a completed download
type Result struct {
	Path     string // absolute path of the downloaded file
	Bytes    int64  // number of bytes written
	Checksum uint64 // xxhash64 of the file contents
}

// StatusError is returned when the server responds with a non-2xx status
type StatusError struct {
	URL        string
	StatusCode int
	Status     string
}

// Error returns a description of the failed response
func (e *StatusError) Error() string {
	return fmt.Sprintf("GET %s: unexpected status %s", e.URL, e.Status)
}

// Download fetches url into dest, creating or truncating it. If client is nil,
// http.DefaultClient is used. A file which was partially written before a failure
// is left in place.
func Download(ctx context.Context, client *http.Client, url string, dest string) (result *Result, err error) {
	path, err := filepath.Abs(dest)
	if err != nil {
		return nil, err
	}
	resp, err := ctxhttp.Get(ctx, client, url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{URL: url, StatusCode: resp.StatusCode, Status: resp.Status}
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cErr := f.Close(); cErr != nil && err == nil {
			result = nil
			err = cErr
		}
	}()
	digest := xxhash.New()
	n, err := io.Copy(io.MultiWriter(f, digest), resp.Body)
	if err != nil {
		return nil, fmt.Errorf("writing %s: %w", path, err)
	}
	return &Result{Path: path, Bytes: n, Checksum: digest.Sum64()}, nil
}
