// Package fetch pulls medal data snapshots from the upstream results page
// and serves them through a TTL cache and a background poller. The upstream
// is best-effort and unstable; every failure here degrades to "no data"
// rather than an error surfaced to users.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/medalpool/podium/pkg/logger"
	"github.com/medalpool/podium/pkg/metrics"
)

const defaultFetchTimeout = 20 * time.Second

// browserHeaders are required by the upstream, which blocks obvious
// non-browser clients.
var browserHeaders = map[string]string{
	"User-Agent": "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) " +
		"AppleWebKit/537.36 (KHTML, like Gecko) Chrome/131.0.0.0 Safari/537.36",
	"Accept":          "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8",
	"Accept-Language": "en-US,en;q=0.9",
	"Accept-Encoding": "identity",
	"Sec-Fetch-Dest":  "document",
	"Sec-Fetch-Mode":  "navigate",
	"Sec-Fetch-Site":  "none",
}

// Client fetches page bytes from a fixed upstream URL.
type Client struct {
	url        string
	httpClient *http.Client
	log        logger.Logger
}

// ClientOption applies a configuration option to the Client.
type ClientOption func(*Client)

// WithTimeout bounds a single fetch.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		if d > 0 {
			c.httpClient.Timeout = d
		}
	}
}

// WithHTTPClient replaces the underlying HTTP client, mainly for tests.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithClientLogger sets a custom logger.
func WithClientLogger(log logger.Logger) ClientOption {
	return func(c *Client) {
		if log != nil {
			c.log = log
		}
	}
}

// NewClient creates a Client for the given URL.
func NewClient(url string, opts ...ClientOption) *Client {
	c := &Client{
		url:        url,
		httpClient: &http.Client{Timeout: defaultFetchTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// FetchPage returns the page body, or an error on any network or status
// failure. Callers treat an error identically to a parse failure.
func (c *Client) FetchPage(ctx context.Context) (string, error) {
	metrics.RecordSnapshotFetch()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		metrics.RecordSnapshotFetchFailure()
		return "", fmt.Errorf("%w: %w", ErrFetch, err)
	}
	for k, v := range browserHeaders {
		req.Header.Set(k, v)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.RecordSnapshotFetchFailure()
		if c.log != nil {
			c.log.Warn(ctx, "upstream fetch failed", logger.String("url", c.url), logger.Error(err))
		}
		return "", fmt.Errorf("%w: %w", ErrFetch, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		metrics.RecordSnapshotFetchFailure()
		if c.log != nil {
			c.log.Warn(ctx, "upstream returned non-200",
				logger.String("url", c.url),
				logger.Int("status", resp.StatusCode),
			)
		}
		return "", fmt.Errorf("%w: status %d", ErrFetch, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		metrics.RecordSnapshotFetchFailure()
		return "", fmt.Errorf("%w: %w", ErrFetch, err)
	}
	return string(body), nil
}
