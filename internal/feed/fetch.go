package feed

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// ErrNotModified is returned when the server answers 304 to a
// conditional fetch; the caller keeps its current schedule.
var ErrNotModified = errors.New("schedule feed not modified")

// Fetcher retrieves the schedule feed document over HTTP. It remembers
// the last ETag it saw and sends If-None-Match on subsequent fetches.
// Not safe for concurrent use; the refresh loop is the only caller.
type Fetcher struct {
	url    string
	client *http.Client
	etag   string
}

func NewFetcher(url string, timeout time.Duration) *Fetcher {
	return &Fetcher{
		url: url,
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

// Fetch retrieves the feed document. On 304 it returns ErrNotModified.
func (f *Fetcher) Fetch(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build feed request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if f.etag != "" {
		req.Header.Set("If-None-Match", f.etag)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotModified {
		return nil, ErrNotModified
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("feed returned unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read feed body: %w", err)
	}

	f.etag = resp.Header.Get("ETag")

	return body, nil
}

// ETag returns the entity tag of the last successful fetch, if any.
func (f *Fetcher) ETag() string {
	return f.etag
}
