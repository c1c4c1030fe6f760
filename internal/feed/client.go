// Package feed retrieves and decodes published CSV feeds.
package feed

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// ErrUnavailable indicates that a feed request failed (network error or
// non-success response). Callers match it with errors.Is to distinguish
// transport failures from decoding problems.
var ErrUnavailable = errors.New("feed unavailable")

// Client fetches raw tabular text over HTTP. Feeds are published sheets, so
// a plain GET with a timeout is all that is needed; failed fetches are not
// retried.
type Client struct {
	httpClient *http.Client
}

// NewClient creates a feed client with the given request timeout.
func NewClient(timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
	}
}

// FetchCSV retrieves the feed at url and decodes it into header-keyed rows.
// The name labels the feed in errors so a caller can tell which of several
// concurrent fetches failed.
func (c *Client) FetchCSV(ctx context.Context, name, url string) ([]Row, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%s feed: creating request: %w", name, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s feed: %w: %w", name, ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("%s feed: %w: HTTP %d from %s", name, ErrUnavailable, resp.StatusCode, url)
	}

	rows, err := ParseCSV(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%s feed: %w", name, err)
	}
	return rows, nil
}
