// Package fetcher retrieves web pages on behalf of agent tools. Every request
// passes through the safeurl validator first, and redirect targets are
// re-validated before they are followed. Failures are returned as result
// strings rather than errors: the strings are the tool's observable output.
package fetcher

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
	"toolserver/internal/config"
	"toolserver/internal/safeurl"
)

// Options configure outbound fetching. These settings are typically derived
// from application configuration.
type Options struct {
	// Timeout is the default per-request timeout used when the caller does not
	// provide one.
	Timeout time.Duration
	// MaxContentSize caps the number of response bytes read.
	MaxContentSize int64
	// MaxRedirects caps the number of redirects followed per request.
	MaxRedirects int
	// UserAgent is sent with every outbound request.
	UserAgent string
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		Timeout:        cfg.Fetcher.Timeout,
		MaxContentSize: cfg.Fetcher.MaxContentSize,
		MaxRedirects:   cfg.Fetcher.MaxRedirects,
		UserAgent:      cfg.Fetcher.UserAgent,
	}
}

// Fetcher fetches pages and converts HTML responses to markdown. It is safe
// for concurrent use.
type Fetcher struct {
	options   Options
	validator *safeurl.Validator
	client    *http.Client
	converter *Converter
}

// errRedirectBlocked marks a redirect rejected by the validator so the fetch
// can surface the underlying reason instead of a generic transport error.
type errRedirectBlocked struct{ reason string }

func (e errRedirectBlocked) Error() string { return e.reason }

// New creates a Fetcher that validates every request and redirect target with
// the provided validator.
func New(validator *safeurl.Validator, options Options) *Fetcher {
	f := &Fetcher{
		options:   options,
		validator: validator,
		converter: NewConverter(),
	}

	f.client = &http.Client{
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			if len(via) >= options.MaxRedirects {
				return fmt.Errorf("stopped after %d redirects", options.MaxRedirects)
			}

			// The redirect target resolves to a different host than the one
			// already validated, so it gets the same treatment.
			if verdict := f.validator.Validate(req.Context(), req.URL.String()); !verdict.Safe {
				return errRedirectBlocked{reason: verdict.Reason}
			}

			return nil
		},
	}

	return f
}

// FetchPage retrieves the page at rawURL and returns its content as markdown.
// All failures are reported through the returned string; FetchPage never
// returns an error to its caller. A non-positive timeout falls back to the
// configured default.
func (f *Fetcher) FetchPage(ctx context.Context, rawURL string, timeout time.Duration) string {
	if !strings.HasPrefix(rawURL, "http://") && !strings.HasPrefix(rawURL, "https://") {
		return "invalid URL format, must start with http:// or https://"
	}

	if verdict := f.validator.Validate(ctx, rawURL); !verdict.Safe {
		return verdict.Reason
	}

	if timeout <= 0 {
		timeout = f.options.Timeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Sprintf("error fetching content: %v", err)
	}
	if f.options.UserAgent != "" {
		req.Header.Set("User-Agent", f.options.UserAgent)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		var blocked errRedirectBlocked
		if errors.As(err, &blocked) {
			return blocked.reason
		}
		if errors.Is(err, context.DeadlineExceeded) {
			return fmt.Sprintf("request timed out after %s", timeout)
		}

		return fmt.Sprintf("error fetching content: %v", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Sprintf("error fetching content: unexpected status %s", resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.options.MaxContentSize))
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return fmt.Sprintf("request timed out after %s", timeout)
		}

		return fmt.Sprintf("error fetching content: %v", err)
	}

	if !strings.Contains(resp.Header.Get("Content-Type"), "text/html") {
		return string(body)
	}

	markdown, err := f.converter.Convert(resp.Request.URL.String(), body)
	if err != nil {
		return fmt.Sprintf("error fetching content: %v", err)
	}

	return markdown
}
