// Package loader fetches the JSON content files behind each page. A Fetcher
// reads raw bytes by relative reference; Load and Gather decode them.
package loader

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"net/url"
	"os"
	"path"
	"strings"
	"time"
)

// maxBodySize caps a single HTTP response.
const maxBodySize = 16 << 20

// Fetcher reads one resource by its reference relative to the data root,
// e.g. "projects/projects.json".
type Fetcher interface {
	Fetch(ctx context.Context, ref string) ([]byte, error)
}

// FSFetcher reads resources from a file system.
type FSFetcher struct {
	FS fs.FS
}

// NewFSFetcher returns a fetcher rooted at dir.
func NewFSFetcher(dir string) *FSFetcher {
	return &FSFetcher{FS: os.DirFS(dir)}
}

// Fetch implements Fetcher.
func (f *FSFetcher) Fetch(ctx context.Context, ref string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	name := path.Clean(strings.TrimPrefix(ref, "/"))
	if !fs.ValidPath(name) {
		return nil, fmt.Errorf("invalid resource path %q", ref)
	}
	return fs.ReadFile(f.FS, name)
}

// HTTPFetcher reads resources relative to a base URL.
type HTTPFetcher struct {
	BaseURL string
	Client  *http.Client
}

// NewHTTPFetcher returns a fetcher for baseURL. A nil client gets a default
// one with a 30 second timeout.
func NewHTTPFetcher(baseURL string, client *http.Client) *HTTPFetcher {
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	return &HTTPFetcher{BaseURL: baseURL, Client: client}
}

// Fetch implements Fetcher. Non-2xx responses return a *StatusError.
func (f *HTTPFetcher) Fetch(ctx context.Context, ref string) ([]byte, error) {
	u, err := url.JoinPath(f.BaseURL, ref)
	if err != nil {
		return nil, fmt.Errorf("building URL for %s: %w", ref, err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{URL: u, StatusCode: resp.StatusCode}
	}
	return io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
}
