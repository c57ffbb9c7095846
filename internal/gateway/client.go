// Package gateway talks to the remote university API over HTTP/JSON.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/sigue-client/internal/models"
	"github.com/noah-isme/sigue-client/pkg/config"
	appErrors "github.com/noah-isme/sigue-client/pkg/errors"
	"github.com/noah-isme/sigue-client/pkg/middleware/requestid"
)

const maxErrorBody = 64 << 10

// TokenSource supplies the bearer token for authenticated calls.
type TokenSource interface {
	Token() string
}

// Options configures a Client.
type Options struct {
	BaseURL         string
	LoginPath       string
	Timeout         time.Duration
	RetryAttempts   int
	RetryBackoff    time.Duration
	RetryMaxBackoff time.Duration

	HTTPClient *http.Client
	Tokens     TokenSource
	Logger     *zap.Logger
	Metrics    *Metrics
}

// OptionsFromConfig maps the gateway config onto client options.
func OptionsFromConfig(cfg config.GatewayConfig) Options {
	return Options{
		BaseURL:         cfg.BaseURL,
		LoginPath:       cfg.LoginPath,
		Timeout:         cfg.Timeout,
		RetryAttempts:   cfg.RetryAttempts,
		RetryBackoff:    cfg.RetryBackoff,
		RetryMaxBackoff: cfg.RetryMaxBackoff,
	}
}

// Client issues JSON requests against the gateway. Every call blocks until a
// response arrives, the timeout fires or ctx is done.
type Client struct {
	baseURL    string
	loginPath  string
	http       *http.Client
	tokens     TokenSource
	logger     *zap.Logger
	metrics    *Metrics
	retries    int
	backoff    time.Duration
	maxBackoff time.Duration
	sleep      func(ctx context.Context, d time.Duration) error
}

// New constructs a gateway client.
func New(opts Options) *Client {
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: opts.Timeout}
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	loginPath := opts.LoginPath
	if loginPath == "" {
		loginPath = "/auth/login"
	}
	retries := opts.RetryAttempts
	if retries < 0 {
		retries = 0
	}
	return &Client{
		baseURL:    strings.TrimRight(opts.BaseURL, "/"),
		loginPath:  loginPath,
		http:       httpClient,
		tokens:     opts.Tokens,
		logger:     logger,
		metrics:    opts.Metrics,
		retries:    retries,
		backoff:    opts.RetryBackoff,
		maxBackoff: opts.RetryMaxBackoff,
		sleep:      sleepContext,
	}
}

// Login exchanges credentials for a token. It is never retried.
func (c *Client) Login(ctx context.Context, username, password string) (models.LoginResponse, error) {
	var missing []string
	if strings.TrimSpace(username) == "" {
		missing = append(missing, "username")
	}
	if password == "" {
		missing = append(missing, "password")
	}
	if len(missing) > 0 {
		return models.LoginResponse{}, appErrors.Invalid(appErrors.ErrMissingField, strings.Join(missing, ","),
			fmt.Sprintf("required fields missing: %s", strings.Join(missing, ", ")))
	}

	var resp models.LoginResponse
	req := models.LoginRequest{Username: strings.TrimSpace(username), Password: password}
	if err := c.Do(ctx, http.MethodPost, c.loginPath, nil, req, &resp); err != nil {
		return models.LoginResponse{}, err
	}
	if resp.Token == "" {
		return models.LoginResponse{}, appErrors.Clone(appErrors.ErrUnauthorized, "login response carried no token")
	}
	return resp, nil
}

// Do sends one logical request and decodes the JSON response into out when
// out is non-nil. Idempotent methods are retried on transport failures and
// on 502/503/504 responses. A DELETE whose earlier attempt may have reached
// the server counts a 404 on retry as done.
func (c *Client) Do(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
	var payload []byte
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "encode request body")
		}
		payload = raw
	}

	target := c.baseURL + "/" + strings.TrimLeft(path, "/")
	if len(query) > 0 {
		target += "?" + query.Encode()
	}
	resource := resourceOf(path)
	attempts := 1
	if retryable(method) {
		attempts += c.retries
	}

	var (
		lastErr      error
		maybeApplied bool
	)
	for attempt := 1; attempt <= attempts; attempt++ {
		if attempt > 1 {
			c.metrics.ObserveRetry(method, resource)
			if err := c.sleep(ctx, c.delay(attempt-1)); err != nil {
				return transportError(err)
			}
		}

		raw, status, err := c.send(ctx, method, target, resource, payload, attempt)
		if err != nil {
			lastErr = transportError(err)
			if ctx.Err() != nil {
				return lastErr
			}
			maybeApplied = true
			continue
		}
		if method == http.MethodDelete && maybeApplied && status == http.StatusNotFound {
			c.logger.Debug("delete already applied by an earlier attempt",
				zap.String("url", target), zap.Int("attempt", attempt))
			return nil
		}
		if status >= http.StatusBadRequest {
			lastErr = decodeError(status, raw)
			if temporary(status) {
				continue
			}
			return lastErr
		}
		if out == nil || len(bytes.TrimSpace(raw)) == 0 {
			return nil
		}
		if err := json.Unmarshal(raw, out); err != nil {
			return appErrors.Wrap(err, appErrors.ErrTransport.Code, appErrors.ErrTransport.Status, "invalid gateway response")
		}
		return nil
	}
	return lastErr
}

func (c *Client) send(ctx context.Context, method, target, resource string, payload []byte, attempt int) ([]byte, int, error) {
	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return nil, 0, err
	}
	reqID := requestid.FromContext(ctx)
	req.Header.Set("Accept", "application/json")
	req.Header.Set(requestid.HeaderKey, reqID)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.tokens != nil {
		if token := c.tokens.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.metrics.ObserveRequest(method, resource, 0, time.Since(start))
		c.logger.Debug("gateway request failed",
			zap.String("method", method),
			zap.String("url", target),
			zap.Int("attempt", attempt),
			zap.String("request_id", reqID),
			zap.Error(err),
		)
		return nil, 0, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	elapsed := time.Since(start)
	c.metrics.ObserveRequest(method, resource, resp.StatusCode, elapsed)
	if err != nil {
		return nil, 0, err
	}

	c.logger.Debug("gateway request",
		zap.String("method", method),
		zap.String("url", target),
		zap.Int("status", resp.StatusCode),
		zap.Duration("latency", elapsed),
		zap.Int("attempt", attempt),
		zap.String("request_id", reqID),
	)
	return raw, resp.StatusCode, nil
}

// delay returns the exponential backoff before retry n (1-based).
func (c *Client) delay(n int) time.Duration {
	d := c.backoff
	for i := 1; i < n; i++ {
		d *= 2
		if c.maxBackoff > 0 && d >= c.maxBackoff {
			return c.maxBackoff
		}
	}
	if c.maxBackoff > 0 && d > c.maxBackoff {
		return c.maxBackoff
	}
	return d
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func retryable(method string) bool {
	switch method {
	case http.MethodGet, http.MethodPut, http.MethodDelete:
		return true
	default:
		return false
	}
}

func temporary(status int) bool {
	switch status {
	case http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return true
	default:
		return false
	}
}

func resourceOf(path string) string {
	trimmed := strings.Trim(path, "/")
	if i := strings.IndexByte(trimmed, '/'); i >= 0 {
		trimmed = trimmed[:i]
	}
	if trimmed == "" {
		return "root"
	}
	return trimmed
}

func transportError(err error) error {
	var appErr *appErrors.Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return appErrors.Wrap(err, appErrors.ErrTransport.Code, appErrors.ErrTransport.Status, appErrors.ErrTransport.Message)
}

type errorBody struct {
	Message string          `json:"message"`
	Error   json.RawMessage `json:"error"`
}

// decodeError extracts the gateway's human readable message from an error
// response: top-level message, error.message, a plain error string or the
// raw body text.
func decodeError(status int, raw []byte) *appErrors.Error {
	if len(raw) > maxErrorBody {
		raw = raw[:maxErrorBody]
	}
	var body errorBody
	if err := json.Unmarshal(raw, &body); err == nil {
		if body.Message != "" {
			return appErrors.Gateway(status, body.Message)
		}
		if len(body.Error) > 0 {
			var nested struct {
				Message string `json:"message"`
			}
			if json.Unmarshal(body.Error, &nested) == nil && nested.Message != "" {
				return appErrors.Gateway(status, nested.Message)
			}
			var text string
			if json.Unmarshal(body.Error, &text) == nil && text != "" {
				return appErrors.Gateway(status, text)
			}
		}
		return appErrors.Gateway(status, "")
	}
	return appErrors.Gateway(status, strings.TrimSpace(string(raw)))
}
