package github

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	// APIBase is the GitHub REST API root.
	APIBase = "https://api.github.com"

	// AcceptHeader is the GitHub JSON media type.
	AcceptHeader = "application/vnd.github+json"

	// UserAgent identifies this client to the API.
	UserAgent = "depsguard"

	// MaxAttempts caps the retry loop for rate-limited requests.
	MaxAttempts = 5

	// InitialBackoff is the first retry delay; it doubles per retry
	// (60s, 120s, 240s, 480s, 960s).
	InitialBackoff = 60 * time.Second

	// DefaultTimeout is the per-request HTTP timeout.
	DefaultTimeout = 30 * time.Second
)

// Response is the typed result of one logical API GET: status, header
// mapping, raw body, and the continuation cursor parsed from the Link
// header (empty on the last page).
type Response struct {
	Status   int
	Header   http.Header
	Body     []byte
	NextPage string
}

// StatusError reports a non-200 response that is not a rate limit
// signal. These are permanent: a 404, 401 or 500 will not resolve by
// waiting, so the request is not retried.
type StatusError struct {
	URL    string
	Status int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("GET %s: unexpected status %d", e.URL, e.Status)
}

// Client performs GETs against the GitHub API with bounded
// retry/backoff on rate limit signals (403/429) and post-success
// throttling driven by rate limit headers.
type Client struct {
	httpClient *http.Client
	token      string
	baseURL    string
	limiter    *RateLimiter

	maxAttempts int
	backoff     time.Duration
	sleep       func(time.Duration)
}

// NewClient creates an API client authenticating with the given
// bearer token.
func NewClient(token string) *Client {
	return &Client{
		httpClient:  &http.Client{Timeout: DefaultTimeout},
		token:       token,
		baseURL:     APIBase,
		limiter:     NewRateLimiter(),
		maxAttempts: MaxAttempts,
		backoff:     InitialBackoff,
		sleep:       time.Sleep,
	}
}

// Get performs one logical GET against the API. 403 and 429 responses
// are treated as rate limit signals regardless of header content and
// retried with exponential backoff; any other non-200 status fails
// immediately with a *StatusError. After a 200 the shared rate
// limiter pauses if the quota is exhausted, anticipating the next
// request. Each call is independent; no backoff state survives it.
func (c *Client) Get(ctx context.Context, url string) (*Response, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	backoff := c.backoff
	for attempt := 0; attempt < c.maxAttempts; attempt++ {
		resp, err := c.do(ctx, url)
		if err != nil {
			return nil, fmt.Errorf("GET %s: %w", url, err)
		}

		switch resp.StatusCode {
		case http.StatusOK:
			body, err := io.ReadAll(resp.Body)
			_ = resp.Body.Close()
			if err != nil {
				return nil, fmt.Errorf("GET %s: read body: %w", url, err)
			}
			c.limiter.Pause(resp.Header)
			return &Response{
				Status:   resp.StatusCode,
				Header:   resp.Header,
				Body:     body,
				NextPage: ParseNextLink(resp.Header.Get("Link")),
			}, nil

		case http.StatusForbidden, http.StatusTooManyRequests:
			_, _ = io.Copy(io.Discard, resp.Body)
			_ = resp.Body.Close()
			c.sleep(backoff)
			backoff *= 2

		default:
			_ = resp.Body.Close()
			return nil, &StatusError{URL: url, Status: resp.StatusCode}
		}
	}

	return nil, fmt.Errorf("GET %s: still rate limited after %d attempts", url, c.maxAttempts)
}

func (c *Client) do(ctx context.Context, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", AcceptHeader)
	req.Header.Set("User-Agent", UserAgent)

	return c.httpClient.Do(req)
}
