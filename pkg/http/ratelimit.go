package http

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/kasuboski/mediastat/pkg/cache"
	"golang.org/x/exp/rand"
	"golang.org/x/time/rate"
)

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

const (
	DefaultMaxRetries        = 3
	DefaultBaseBackoff       = time.Millisecond * 500
	DefaultRequestsPerSecond = 10
	DefaultBurst             = 5
)

// RateLimitedClient throttles requests per host and retries responses that signal the
// server is overloaded (429 and 503).
type RateLimitedClient struct {
	client      HTTPClient
	baseBackoff time.Duration
	maxRetries  int
	limit       rate.Limit
	burst       int
	limiters    *cache.Cache[string, *rate.Limiter]
}

// ClientOption is a function that can be used to configure a RateLimitedHTTPClient
type ClientOption func(*RateLimitedClient)

// NewRateLimitedHTTPClient creates a new RateLimitedHTTPClient that respects 429 and 503 status codes.
// The client can be used concurrently
func NewRateLimitedHTTPClient(opts ...ClientOption) *RateLimitedClient {
	c := &RateLimitedClient{
		client:      http.DefaultClient,
		maxRetries:  DefaultMaxRetries,
		baseBackoff: DefaultBaseBackoff,
		limit:       rate.Limit(DefaultRequestsPerSecond),
		burst:       DefaultBurst,
		limiters:    cache.New[string, *rate.Limiter](),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// WithMaxRetries sets the maximum number of retries for the client
func WithMaxRetries(maxRetries int) ClientOption {
	return func(c *RateLimitedClient) {
		c.maxRetries = maxRetries
	}
}

// WithBaseBackoff sets the base backoff time for the client
func WithBaseBackoff(baseBackoff time.Duration) ClientOption {
	return func(c *RateLimitedClient) {
		c.baseBackoff = baseBackoff
	}
}

// WithHTTPClient sets the http client to use for the client
func WithHTTPClient(client HTTPClient) ClientOption {
	return func(c *RateLimitedClient) {
		c.client = client
	}
}

// WithRateLimit sets the per host request rate. A non positive rps disables throttling.
func WithRateLimit(rps float64, burst int) ClientOption {
	return func(c *RateLimitedClient) {
		if rps <= 0 {
			c.limit = rate.Inf
		} else {
			c.limit = rate.Limit(rps)
		}
		if burst < 1 {
			burst = 1
		}
		c.burst = burst
	}
}

func (c *RateLimitedClient) limiter(host string) *rate.Limiter {
	return c.limiters.GetOrCreate(host, func() *rate.Limiter {
		return rate.NewLimiter(c.limit, c.burst)
	})
}

// Do executes the HTTP request while respecting rate limits.
// This is a blocking call until the request completes successfully, the request context is done,
// or the backoff reaches the maximum retries.
// If the maximum number of retries is reached, the response returned will be the last response received
func (c *RateLimitedClient) Do(req *http.Request) (*http.Response, error) {
	var resp *http.Response
	var err error

	ctx := req.Context()
	for attempt := 0; attempt < c.maxRetries; attempt++ {
		if err := c.limiter(req.URL.Host).Wait(ctx); err != nil {
			return nil, err
		}

		resp, err = c.client.Do(req)
		if err != nil {
			return nil, err
		}

		if !retryable(resp.StatusCode) {
			return resp, nil
		}

		if attempt == c.maxRetries-1 {
			break
		}

		retryAfter := c.getRetryAfter(resp, attempt)
		resp.Body.Close()

		if err := sleep(ctx, retryAfter); err != nil {
			return nil, err
		}
	}

	return resp, fmt.Errorf("rate limit exceeded after %d retries", c.maxRetries)
}

func retryable(status int) bool {
	return status == http.StatusTooManyRequests || status == http.StatusServiceUnavailable
}

func sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// getRetryAfter calculates the appropriate retry delay
func (c *RateLimitedClient) getRetryAfter(resp *http.Response, attempt int) time.Duration {
	retryAfterHeader := resp.Header.Get("Retry-After")

	if retryAfterHeader != "" {
		seconds, err := strconv.Atoi(retryAfterHeader)
		if err == nil {
			return time.Duration(seconds) * time.Second
		}
	}

	// 2^n backoff
	return time.Duration(1<<attempt)*c.baseBackoff + c.jitter()
}

// jitter staggers the backoff to avoid a thundering herd
func (c *RateLimitedClient) jitter() time.Duration {
	if c.baseBackoff <= 1 {
		return 0
	}
	return time.Duration(rand.Int63n(int64(c.baseBackoff) / 2))
}
