// Package fetcher retrieves raw page markup for the analyzer. It is the only
// part of the pipeline that touches the network.
package fetcher

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/net/html/charset"
)

const (
	userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 " +
		"(KHTML, like Gecko) Chrome/122.0.0.0 Safari/537.36"
	acceptLanguage = "ar,en;q=0.9"

	// DefaultTimeout bounds a single page fetch.
	DefaultTimeout = 20 * time.Second
)

// FetchError reports that page content could not be obtained. It is the only
// failure the analysis pipeline surfaces to callers; everything downstream
// degrades instead of failing.
type FetchError struct {
	URL    string
	Status int
	Err    error
}

func (e *FetchError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("fetch %s: unexpected status %d", e.URL, e.Status)
	}
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// Fetcher supplies the raw markup for a URL.
type Fetcher interface {
	Fetch(ctx context.Context, pageURL string) (string, error)
}

// HTTPFetcher implements Fetcher over net/http with browser-like headers.
type HTTPFetcher struct {
	client *http.Client
}

// NewHTTPFetcher wraps the given client, defaulting to one with DefaultTimeout.
func NewHTTPFetcher(client *http.Client) *HTTPFetcher {
	if client == nil {
		client = &http.Client{Timeout: DefaultTimeout}
	}
	return &HTTPFetcher{client: client}
}

// Fetch downloads the page and returns its markup decoded to UTF-8.
func (f *HTTPFetcher) Fetch(ctx context.Context, pageURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return "", &FetchError{URL: pageURL, Err: err}
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept-Language", acceptLanguage)

	resp, err := f.client.Do(req)
	if err != nil {
		return "", &FetchError{URL: pageURL, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return "", &FetchError{URL: pageURL, Status: resp.StatusCode}
	}

	reader, err := charset.NewReader(resp.Body, resp.Header.Get("Content-Type"))
	if err != nil {
		return "", &FetchError{URL: pageURL, Err: fmt.Errorf("decode body: %w", err)}
	}
	body, err := io.ReadAll(reader)
	if err != nil {
		return "", &FetchError{URL: pageURL, Err: err}
	}
	return string(body), nil
}

var _ Fetcher = (*HTTPFetcher)(nil)
