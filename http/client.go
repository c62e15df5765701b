// Package http provides the Kagi web client: it issues session-authenticated
// requests to kagi.com and hands the responses to the parsers in the kagi
// and goquery packages.
package http

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"github.com/fwojciec/kagi"
	"golang.org/x/net/publicsuffix"
	"golang.org/x/time/rate"
)

// DefaultBaseURL is the Kagi origin.
const DefaultBaseURL = "https://kagi.com"

// DefaultTimeout is the default timeout for a single HTTP request.
// Summaries of long pages stream for a while, so this is generous.
const DefaultTimeout = 30 * time.Second

// MaxBodyBytes caps the size of a response body. Larger responses fail
// rather than being parsed partially.
const MaxBodyBytes = 10 * 1024 * 1024

// SessionCookie is the cookie carrying the session token.
const SessionCookie = "kagi_session"

// UserAgent is sent with every request; Kagi serves the HTML search page
// only to browser user agents.
const UserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/18.5 Safari/605.1.15"

// Messages of errors returned by the client.
const (
	InvalidTokenMessage = "Invalid or expired session token"
	NetworkErrorMessage = "Network error: Unable to connect to Kagi"
	TimeoutMessage      = "Request to Kagi timed out"

	ResponseTooLargeMessage = "Response from Kagi too large"
)

// EUPSTREAM reports an unexpected non-success status from Kagi.
const EUPSTREAM = "upstream"

// Ensure Client implements kagi.Searcher and kagi.Summarizer at compile time.
var (
	_ kagi.Searcher   = (*Client)(nil)
	_ kagi.Summarizer = (*Client)(nil)
)

// Client talks to Kagi on behalf of a session token.
type Client struct {
	baseURL     *url.URL
	client      *http.Client
	timeout     time.Duration
	limiter     *rate.Limiter
	retryDelays []time.Duration
	parser      kagi.SearchParser
}

// Option configures a Client.
type Option func(*Client) error

// WithBaseURL points the client at a different origin, e.g. a test server.
func WithBaseURL(rawURL string) Option {
	return func(c *Client) error {
		u, err := url.Parse(rawURL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return kagi.Errorf(kagi.EINVALID, "invalid base URL %q", rawURL)
		}
		c.baseURL = u
		return nil
	}
}

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultTimeout if not specified.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) error {
		c.timeout = d
		return nil
	}
}

// WithRateLimit limits outgoing requests to rps per second with the given
// burst. Requests are unlimited by default.
func WithRateLimit(rps float64, burst int) Option {
	return func(c *Client) error {
		if burst < 1 {
			burst = 1
		}
		c.limiter = rate.NewLimiter(rate.Limit(rps), burst)
		return nil
	}
}

// WithRetryDelays retries requests that fail with EUNAVAILABLE, waiting
// delays[i] before attempt i+2. No retries are made by default.
func WithRetryDelays(delays []time.Duration) Option {
	return func(c *Client) error {
		c.retryDelays = delays
		return nil
	}
}

// DefaultRetryDelays returns the backoff delays for retries: 1s, 2s, 4s.
func DefaultRetryDelays() []time.Duration {
	return []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second}
}

// NewClient creates a Client authenticated with token. Search pages are
// parsed with parser.
func NewClient(token string, parser kagi.SearchParser, opts ...Option) (*Client, error) {
	if strings.TrimSpace(token) == "" {
		return nil, kagi.Errorf(kagi.EUNAUTHORIZED, kagi.TokenRequiredMessage)
	}

	base, _ := url.Parse(DefaultBaseURL)
	c := &Client{
		baseURL: base,
		timeout: DefaultTimeout,
		parser:  parser,
	}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	if err != nil {
		return nil, err
	}
	jar.SetCookies(c.baseURL, []*http.Cookie{{Name: SessionCookie, Value: token, Path: "/"}})

	c.client = &http.Client{
		Jar:     jar,
		Timeout: c.timeout,
	}

	return c, nil
}

// requestFunc builds a fresh request for each attempt.
type requestFunc func(ctx context.Context) (*http.Request, error)

// do sends the request built by newReq and returns the response body,
// retrying EUNAVAILABLE failures according to the configured delays.
func (c *Client) do(ctx context.Context, newReq requestFunc) (string, error) {
	maxAttempts := len(c.retryDelays) + 1

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		body, err := c.attempt(ctx, newReq)
		if err == nil {
			return body, nil
		}
		lastErr = err

		if kagi.ErrorCode(err) != kagi.EUNAVAILABLE || attempt >= maxAttempts-1 {
			break
		}

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(c.retryDelays[attempt]):
		}
	}

	return "", lastErr
}

func (c *Client) attempt(ctx context.Context, newReq requestFunc) (string, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return "", err
		}
	}

	req, err := newReq(ctx)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", UserAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", transportError(ctx, err)
	}
	defer resp.Body.Close()

	if err := statusError(resp.StatusCode); err != nil {
		return "", err
	}

	// One byte past the cap tells a full page from a truncated one.
	body, err := io.ReadAll(io.LimitReader(resp.Body, MaxBodyBytes+1))
	if err != nil {
		return "", transportError(ctx, err)
	}
	if len(body) > MaxBodyBytes {
		return "", kagi.Errorf(EUPSTREAM, ResponseTooLargeMessage)
	}

	return string(body), nil
}

// statusError maps a non-success status to an application error.
func statusError(code int) error {
	switch {
	case code >= 200 && code < 300:
		return nil
	case code == http.StatusUnauthorized || code == http.StatusForbidden:
		return kagi.Errorf(kagi.EUNAUTHORIZED, InvalidTokenMessage)
	case code == http.StatusTooManyRequests || code >= 500:
		return kagi.Errorf(kagi.EUNAVAILABLE, "HTTP %d: %s", code, http.StatusText(code))
	default:
		return kagi.Errorf(EUPSTREAM, "HTTP %d: %s", code, http.StatusText(code))
	}
}

// transportError classifies a failed round trip. Cancellation is returned
// unchanged so callers can test for it.
func transportError(ctx context.Context, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return kagi.Errorf(kagi.EUNAVAILABLE, TimeoutMessage)
	}

	var dnsErr *net.DNSError
	var opErr *net.OpError
	if errors.As(err, &dnsErr) || (errors.As(err, &opErr) && opErr.Op == "dial") {
		return kagi.Errorf(kagi.EUNAVAILABLE, NetworkErrorMessage)
	}

	return fmt.Errorf("kagi request: %w", err)
}
