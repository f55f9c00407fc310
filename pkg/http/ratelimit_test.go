package http

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/kasuboski/mediastat/pkg/http/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/time/rate"
)

func TestNewRateLimitedHTTPClient(t *testing.T) {
	t.Run("default", func(t *testing.T) {
		c := NewRateLimitedHTTPClient()
		assert.Equal(t, http.DefaultClient, c.client)
		assert.Equal(t, DefaultMaxRetries, c.maxRetries)
		assert.Equal(t, DefaultBaseBackoff, c.baseBackoff)
		assert.Equal(t, rate.Limit(DefaultRequestsPerSecond), c.limit)
		assert.Equal(t, DefaultBurst, c.burst)
		require.NotNil(t, c.limiters)
	})

	t.Run("custom", func(t *testing.T) {
		httpClient := &http.Client{
			Transport: &http.Transport{
				MaxIdleConns: 10,
			},
		}
		c := NewRateLimitedHTTPClient(
			WithMaxRetries(5),
			WithBaseBackoff(time.Millisecond*100),
			WithHTTPClient(httpClient),
			WithRateLimit(2, 0),
		)
		assert.Equal(t, httpClient, c.client)
		assert.Equal(t, 5, c.maxRetries)
		assert.Equal(t, time.Millisecond*100, c.baseBackoff)
		assert.Equal(t, rate.Limit(2), c.limit)
		assert.Equal(t, 1, c.burst)
	})

	t.Run("unlimited", func(t *testing.T) {
		c := NewRateLimitedHTTPClient(WithRateLimit(0, 3))
		assert.Equal(t, rate.Inf, c.limit)
	})
}

func TestRateLimitedHTTPClient_Do(t *testing.T) {
	newRequest := func(t *testing.T, ctx context.Context) *http.Request {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, "https://example.com", nil)
		require.NoError(t, err)
		return req
	}

	t.Run("error during request", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mhttp := mocks.NewMockHTTPClient(ctrl)
		req := newRequest(t, context.Background())

		mhttp.EXPECT().Do(req).Return(nil, errors.New("http error"))
		client := NewRateLimitedHTTPClient(WithHTTPClient(mhttp))
		resp, err := client.Do(req)
		assert.Error(t, err)
		assert.Nil(t, resp)
	})

	t.Run("non retryable response", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mhttp := mocks.NewMockHTTPClient(ctrl)
		req := newRequest(t, context.Background())

		mhttp.EXPECT().Do(req).Return(&http.Response{
			StatusCode: http.StatusOK,
			Body:       io.NopCloser(bytes.NewBufferString("ok")),
		}, nil)

		client := NewRateLimitedHTTPClient(WithHTTPClient(mhttp))
		resp, err := client.Do(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		b, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.Equal(t, "ok", string(b))
	})

	t.Run("429 response - max retries", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mhttp := mocks.NewMockHTTPClient(ctrl)
		req := newRequest(t, context.Background())

		mhttp.EXPECT().Do(req).Return(&http.Response{
			StatusCode: http.StatusTooManyRequests,
			Body:       io.NopCloser(bytes.NewBufferString("429 response")),
		}, nil)
		client := NewRateLimitedHTTPClient(WithHTTPClient(mhttp), WithMaxRetries(1))
		resp, err := client.Do(req)
		assert.ErrorContains(t, err, "rate limit exceeded after 1 retries")
		require.NotNil(t, resp)
		assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
	})

	t.Run("503 then success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mhttp := mocks.NewMockHTTPClient(ctrl)
		req := newRequest(t, context.Background())

		gomock.InOrder(
			mhttp.EXPECT().Do(req).Return(&http.Response{
				StatusCode: http.StatusServiceUnavailable,
				Body:       io.NopCloser(bytes.NewBufferString("busy")),
			}, nil),
			mhttp.EXPECT().Do(req).Return(&http.Response{
				StatusCode: http.StatusOK,
				Body:       io.NopCloser(bytes.NewBufferString("ok")),
			}, nil),
		)

		client := NewRateLimitedHTTPClient(WithHTTPClient(mhttp), WithBaseBackoff(time.Millisecond))
		resp, err := client.Do(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("context cancelled during backoff", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mhttp := mocks.NewMockHTTPClient(ctrl)

		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()
		req := newRequest(t, ctx)

		mhttp.EXPECT().Do(req).Return(&http.Response{
			StatusCode: http.StatusTooManyRequests,
			Header:     http.Header{"Retry-After": []string{"30"}},
			Body:       io.NopCloser(bytes.NewBufferString("slow down")),
		}, nil)

		client := NewRateLimitedHTTPClient(WithHTTPClient(mhttp))
		resp, err := client.Do(req)
		assert.ErrorIs(t, err, context.DeadlineExceeded)
		assert.Nil(t, resp)
	})
}

func TestRateLimitedClient_getRetryAfter(t *testing.T) {
	t.Run("retry after header", func(t *testing.T) {
		c := &RateLimitedClient{baseBackoff: time.Second}
		got := c.getRetryAfter(&http.Response{
			Header: http.Header{"Retry-After": []string{"1"}},
		}, 0)
		assert.Equal(t, time.Second, got)
	})

	t.Run("exponential backoff with jitter", func(t *testing.T) {
		c := &RateLimitedClient{baseBackoff: time.Second}
		got := c.getRetryAfter(&http.Response{}, 3)
		assert.GreaterOrEqual(t, got, time.Second*8)
		assert.Less(t, got, time.Second*8+time.Second/2)
	})

	t.Run("no backoff", func(t *testing.T) {
		c := &RateLimitedClient{}
		assert.Equal(t, time.Duration(0), c.getRetryAfter(&http.Response{}, 2))
	})
}

func TestRateLimitedClient_limiterPerHost(t *testing.T) {
	c := NewRateLimitedHTTPClient()
	a := c.limiter("plex.local:32400")
	b := c.limiter("jellyfin.local:8096")

	assert.Same(t, a, c.limiter("plex.local:32400"))
	assert.NotSame(t, a, b)
}
