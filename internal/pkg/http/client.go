package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/piresc/studentdeals/internal/pkg/circuitbreaker"
	"github.com/piresc/studentdeals/internal/pkg/logger"
	nrpkg "github.com/piresc/studentdeals/internal/pkg/newrelic"
	"github.com/piresc/studentdeals/internal/pkg/retry"
)

// maxBodyBytes caps how much of a response body is read
const maxBodyBytes = 1 << 20

// HTTPError is returned for non-2xx responses
type HTTPError struct {
	StatusCode int
	Body       string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("unexpected status %d", e.StatusCode)
}

// IsRetryable reports whether a GetJSON failure is worth another attempt:
// transient network errors and 5xx responses are
func IsRetryable(err error) bool {
	if retry.IsPermanent(err) {
		return false
	}
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.StatusCode >= 500
	}
	return retry.IsTransient(err)
}

// Client wraps http.Client with retry and circuit breaker protection.
// One breaker is kept per target host.
type Client struct {
	client         *http.Client
	retrier        *retry.Retrier
	circuitManager *circuitbreaker.Manager
}

// NewClient creates a new HTTP client
func NewClient(timeout time.Duration, retrier *retry.Retrier, breakers *circuitbreaker.Manager) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		client:         &http.Client{Timeout: timeout},
		retrier:        retrier,
		circuitManager: breakers,
	}
}

// GetJSON sends a GET request and decodes a 2xx JSON body into out.
// 5xx responses and network errors are retried; 4xx responses are not.
func (c *Client) GetJSON(ctx context.Context, url string, headers map[string]string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	host := req.URL.Host
	return c.circuitManager.Execute(ctx, host, func(ctx context.Context) error {
		return c.retrier.Execute(ctx, func(ctx context.Context) error {
			return c.do(ctx, req.Clone(ctx), out)
		})
	})
}

func (c *Client) do(ctx context.Context, req *http.Request, out interface{}) error {
	resp, err := nrpkg.InstrumentHTTPRequest(ctx, req, func() (*http.Response, error) {
		return c.client.Do(req)
	})
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode >= 500 {
		logger.WarnCtx(ctx, "Upstream server error",
			logger.String("host", req.URL.Host),
			logger.Int("status", resp.StatusCode))
		return &HTTPError{StatusCode: resp.StatusCode, Body: string(body)}
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return retry.Permanent(&HTTPError{StatusCode: resp.StatusCode, Body: string(body)})
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return retry.Permanent(fmt.Errorf("failed to decode response: %w", err))
	}
	return nil
}
