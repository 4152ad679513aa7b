// Package ingestion turns job posting URLs and uploaded resume files into
// plain text the rest of the pipeline can work with.
package ingestion

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// DefaultTimeout is the default HTTP request timeout.
const DefaultTimeout = 30 * time.Second

// DefaultUserAgent is the user agent string for HTTP requests.
const DefaultUserAgent = "Mozilla/5.0 (compatible; ResumeTailor/1.0)"

// FetchResult holds the raw and processed content of a job posting fetch.
type FetchResult struct {
	URL         string
	HTML        string
	Text        string
	ContentType string
	StatusCode  int
	Rendered    bool // true when the HTML came from the headless browser
}

// FetchError represents an error during URL fetching.
type FetchError struct {
	URL     string
	Message string
	Cause   error
}

func (e *FetchError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("fetch error for %s: %s: %v", e.URL, e.Message, e.Cause)
	}
	return fmt.Sprintf("fetch error for %s: %s", e.URL, e.Message)
}

func (e *FetchError) Unwrap() error {
	return e.Cause
}

// Options configures job posting fetch behavior.
type Options struct {
	Timeout    time.Duration
	UserAgent  string
	Headers    map[string]string
	UseBrowser bool // allow headless browser fallback for SPA pages
	Verbose    bool
}

// DefaultOptions returns sensible defaults for fetching.
func DefaultOptions() *Options {
	return &Options{
		Timeout:   DefaultTimeout,
		UserAgent: DefaultUserAgent,
	}
}

// FetchURL retrieves HTML content from a job posting URL.
func FetchURL(ctx context.Context, urlStr string, opts *Options) (*FetchResult, error) {
	if opts == nil {
		opts = DefaultOptions()
	}

	parsedURL, err := url.Parse(urlStr)
	if err != nil || parsedURL.Scheme == "" || parsedURL.Host == "" {
		return nil, &FetchError{
			URL:     urlStr,
			Message: "invalid URL",
			Cause:   err,
		}
	}

	client := &http.Client{
		Timeout: opts.Timeout,
	}

	req, err := http.NewRequestWithContext(ctx, "GET", urlStr, nil)
	if err != nil {
		return nil, &FetchError{
			URL:     urlStr,
			Message: "failed to create request",
			Cause:   err,
		}
	}

	req.Header.Set("User-Agent", opts.UserAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")
	for key, value := range opts.Headers {
		req.Header.Set(key, value)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, &FetchError{
			URL:     urlStr,
			Message: "HTTP request failed",
			Cause:   err,
		}
	}
	defer func() { _ = resp.Body.Close() }()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &FetchError{
			URL:     urlStr,
			Message: "failed to read response body",
			Cause:   err,
		}
	}

	result := &FetchResult{
		URL:         urlStr,
		HTML:        string(bodyBytes),
		ContentType: resp.Header.Get("Content-Type"),
		StatusCode:  resp.StatusCode,
	}

	if resp.StatusCode != http.StatusOK {
		return result, &FetchError{
			URL:     urlStr,
			Message: fmt.Sprintf("HTTP status %d", resp.StatusCode),
		}
	}

	return result, nil
}

// FetchJobPosting fetches a job posting URL and extracts its readable text.
// If the plain HTTP fetch yields too little text and browser fallback is
// enabled, the page is re-rendered in a headless browser first.
func FetchJobPosting(ctx context.Context, urlStr string, opts *Options) (*FetchResult, error) {
	if opts == nil {
		opts = DefaultOptions()
	}

	result, err := FetchURL(ctx, urlStr, opts)
	if err != nil {
		return nil, err
	}

	text, err := ExtractJobText(result.HTML)
	if err != nil {
		return nil, &FetchError{
			URL:     urlStr,
			Message: "failed to extract text",
			Cause:   err,
		}
	}
	result.Text = text

	if opts.UseBrowser && ShouldUseBrowser(text) {
		html, berr := RenderWithBrowser(ctx, urlStr, opts.Timeout, opts.Verbose)
		if berr != nil {
			// Keep the HTTP result; the browser is best effort.
			return result, nil
		}
		rendered, terr := ExtractJobText(html)
		if terr == nil && len(rendered) > len(text) {
			result.HTML = html
			result.Text = rendered
			result.Rendered = true
		}
	}

	return result, nil
}
