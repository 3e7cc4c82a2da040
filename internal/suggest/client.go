// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package suggest

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/pdiddy/keyword-discovery/internal/httputil"
	"github.com/pdiddy/keyword-discovery/pkg/types"
)

const (
	// DefaultTimeout bounds each suggestion request.
	DefaultTimeout = 5 * time.Second

	// DefaultUserAgent is sent when the config leaves UserAgent empty.
	DefaultUserAgent = "keyword-discovery/0.1"

	maxBodyBytes = 1 << 20
)

// Client issues suggestion requests against the supported services.
type Client struct {
	HTTP      *http.Client
	UserAgent string

	// Retries is the number of retries on HTTP 429 (0 = single attempt).
	Retries int

	Logger zerolog.Logger
}

// NewClient builds a Client from cfg. A zero Timeout becomes DefaultTimeout.
func NewClient(cfg types.HTTPConfig, logger zerolog.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ua := cfg.UserAgent
	if ua == "" {
		ua = DefaultUserAgent
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: cfg.InsecureSkipVerify} //nolint:gosec // suggestion endpoints only

	return &Client{
		HTTP:      &http.Client{Timeout: timeout, Transport: transport},
		UserAgent: ua,
		Retries:   cfg.Retries,
		Logger:    logger.With().Str("component", "suggest").Logger(),
	}
}

// Suggest queries svc for completions of query. Any failure is returned as a
// *FetchError; the returned slice is nil in that case.
func (c *Client) Suggest(ctx context.Context, svc Service, query string) ([]string, error) {
	fail := func(kind FailureKind, status int, err error) *FetchError {
		return &FetchError{Kind: kind, Service: svc, Query: query, StatusCode: status, Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL(svc, query), nil)
	if err != nil {
		return nil, fail(FailureNetwork, 0, fmt.Errorf("creating request: %w", err))
	}
	req.Header.Set("User-Agent", c.UserAgent)
	req.Header.Set("Accept", "application/json, text/javascript, */*")

	start := time.Now()
	resp, err := httputil.DoWithRetry(ctx, c.HTTP, req, c.Retries)
	if err != nil {
		if isTimeout(err) {
			return nil, fail(FailureTimeout, 0, err)
		}
		return nil, fail(FailureNetwork, 0, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, resp.Body)
		return nil, fail(FailureHTTPStatus, resp.StatusCode, nil)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		if isTimeout(err) {
			return nil, fail(FailureTimeout, 0, err)
		}
		return nil, fail(FailureNetwork, 0, fmt.Errorf("reading body: %w", err))
	}

	suggestions, err := lookup(svc).parse(body)
	if err != nil {
		return nil, fail(FailureParse, 0, err)
	}

	c.Logger.Debug().
		Str("service", string(svc)).
		Str("query", query).
		Int("suggestions", len(suggestions)).
		Dur("elapsed", time.Since(start)).
		Msg("suggest")
	return suggestions, nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}
