package gtfsrt

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

const userAgent = "bus-tracker/1.0"

// Client fetches raw bytes from an HTTP(S) URL or a local file path.
// It is used for both the .proto schema text and the binary feed.
type Client struct {
	httpClient *http.Client
}

// NewClient creates a client whose requests give up after timeout (0 = no limit)
func NewClient(timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
	}
}

// NewClientWithHTTP wraps an existing http.Client
func NewClientWithHTTP(hc *http.Client) *Client {
	return &Client{httpClient: hc}
}

// Fetch returns the body of urlOrPath. Anything that is not an http:// or
// https:// URL is read from the local filesystem.
func (c *Client) Fetch(ctx context.Context, urlOrPath string) ([]byte, error) {
	if urlOrPath == "" {
		return nil, &FetchError{URL: urlOrPath, Err: fmt.Errorf("empty source")}
	}

	if !strings.HasPrefix(urlOrPath, "http://") && !strings.HasPrefix(urlOrPath, "https://") {
		b, err := os.ReadFile(urlOrPath)
		if err != nil {
			return nil, &FetchError{URL: urlOrPath, Err: err}
		}
		return b, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, urlOrPath, nil)
	if err != nil {
		return nil, &FetchError{URL: urlOrPath, Err: err}
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &FetchError{URL: urlOrPath, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, &FetchError{URL: urlOrPath, StatusCode: resp.StatusCode}
	}

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &FetchError{URL: urlOrPath, Err: fmt.Errorf("read body: %w", err)}
	}
	return b, nil
}
