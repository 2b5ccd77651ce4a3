// Package scrape fetches a landing page and extracts the signals the report
// prompt needs: meta tags, headings, CTA texts and trimmed body text.
// Fetching is best effort; the scoring core never depends on it succeeding.
package scrape

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
const DefaultUserAgent = "Mozilla/5.0 (compatible; LandingAgent/1.0)"

// maxBodyBytes caps how much of a response body is read.
const maxBodyBytes = 4 << 20

// Error represents a failure fetching a landing page.
type Error struct {
	URL     string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("scrape error for %s: %s: %v", e.URL, e.Message, e.Cause)
	}
	return fmt.Sprintf("scrape error for %s: %s", e.URL, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Options configures fetch behavior.
type Options struct {
	Timeout    time.Duration
	UserAgent  string
	UseBrowser bool // force headless browser rendering
}

// DefaultOptions returns sensible defaults.
func DefaultOptions() *Options {
	return &Options{
		Timeout:   DefaultTimeout,
		UserAgent: DefaultUserAgent,
	}
}

// FetchHTML retrieves the raw HTML of a URL over plain HTTP.
func FetchHTML(ctx context.Context, urlStr string, opts *Options) (string, error) {
	if opts == nil {
		opts = DefaultOptions()
	}

	parsed, err := url.Parse(urlStr)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return "", &Error{URL: urlStr, Message: "invalid URL", Cause: err}
	}

	client := &http.Client{Timeout: opts.Timeout}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, urlStr, nil)
	if err != nil {
		return "", &Error{URL: urlStr, Message: "failed to create request", Cause: err}
	}
	req.Header.Set("User-Agent", opts.UserAgent)

	resp, err := client.Do(req)
	if err != nil {
		return "", &Error{URL: urlStr, Message: "HTTP request failed", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &Error{URL: urlStr, Message: fmt.Sprintf("unexpected status %d", resp.StatusCode)}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return "", &Error{URL: urlStr, Message: "failed to read response body", Cause: err}
	}

	return string(body), nil
}

// Fetch retrieves and parses a landing page. When the HTTP fetch yields too
// little text (likely a JavaScript-rendered SPA) or UseBrowser is set, the
// page is rendered in a headless browser instead.
func Fetch(ctx context.Context, urlStr string, opts *Options) (*Page, error) {
	if opts == nil {
		opts = DefaultOptions()
	}

	if opts.UseBrowser {
		html, err := RenderWithBrowser(ctx, urlStr, opts.Timeout)
		if err != nil {
			return nil, err
		}
		return ParsePage(urlStr, html)
	}

	html, err := FetchHTML(ctx, urlStr, opts)
	if err != nil {
		return nil, err
	}

	page, err := ParsePage(urlStr, html)
	if err != nil {
		return nil, err
	}

	if ShouldUseBrowser(page.BodyText) {
		rendered, berr := RenderWithBrowser(ctx, urlStr, opts.Timeout)
		if berr == nil {
			if p, perr := ParsePage(urlStr, rendered); perr == nil {
				return p, nil
			}
		}
		// Browser fallback is best effort; keep the HTTP result.
	}

	return page, nil
}
