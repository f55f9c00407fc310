package mediasource

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/goccy/go-json"
	mhttp "github.com/kasuboski/mediastat/pkg/http"
)

// client issues authenticated JSON GET requests against one server
type client struct {
	baseURL *url.URL
	headers http.Header
	doer    mhttp.HTTPClient
}

func newClient(baseURL string, headers http.Header, httpClient mhttp.HTTPClient) (*client, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid server url %q: %w", baseURL, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid server url %q: scheme and host are required", baseURL)
	}

	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &client{
		baseURL: u,
		headers: headers,
		doer:    httpClient,
	}, nil
}

func (c *client) getJSON(ctx context.Context, path string, query url.Values, dest any) error {
	u := c.baseURL.JoinPath(path)
	u.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return err
	}
	for k, v := range c.headers {
		req.Header[k] = v
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.doer.Do(req)
	if err != nil && resp != nil {
		// retries ran out on a throttled or overloaded server
		defer resp.Body.Close()
		return fmt.Errorf("GET %s: %w: status %d: %w", path, ErrUnexpectedStatus, resp.StatusCode, err)
	}
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("%w: %w", ErrUnreachable, err)
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return fmt.Errorf("GET %s: %w", path, err)
	}

	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("failed to decode %s: %w", path, err)
	}

	return nil
}

func checkStatus(resp *http.Response) error {
	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return nil
	case resp.StatusCode == http.StatusUnauthorized, resp.StatusCode == http.StatusForbidden:
		return fmt.Errorf("%w: status %d", ErrUnauthorized, resp.StatusCode)
	default:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("%w: status %d: %s", ErrUnexpectedStatus, resp.StatusCode, strings.TrimSpace(string(body)))
	}
}
