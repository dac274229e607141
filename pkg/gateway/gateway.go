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

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"
	"github.com/hashicorp/go-hclog"
	"github.com/spf13/afero"
)

// Gateway translates client, file and notification operations into requests
// against the remote API. It holds no mutable state after construction and is
// safe for concurrent use.
type Gateway struct {
	config *Config
	client *http.Client
	fs     afero.Fs
	logger hclog.Logger
}

// Option customizes a Gateway.
type Option func(*Gateway)

// WithHTTPClient replaces the HTTP client built from the config.
func WithHTTPClient(c *http.Client) Option {
	return func(g *Gateway) {
		g.client = c
	}
}

// WithFs sets the filesystem attachments are read from.
func WithFs(fs afero.Fs) Option {
	return func(g *Gateway) {
		g.fs = fs
	}
}

// WithLogger sets the logger.
func WithLogger(l hclog.Logger) Option {
	return func(g *Gateway) {
		g.logger = l
	}
}

// New creates a Gateway. The base URL is not checked here: every operation
// resolves it first and fails with a *ConfigError, before any I/O, if it is
// unusable.
func New(cfg *Config, opts ...Option) (*Gateway, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	cfg.applyDefaults()

	if cfg.Timeout < 0 {
		return nil, fmt.Errorf("invalid gateway config: timeout must be positive, got: %v", cfg.Timeout)
	}
	if cfg.MaxRetries < 0 {
		return nil, fmt.Errorf("invalid gateway config: max_retries must be non-negative, got: %d", cfg.MaxRetries)
	}
	if cfg.RetryDelay < 0 {
		return nil, fmt.Errorf("invalid gateway config: retry_delay must be non-negative, got: %v", cfg.RetryDelay)
	}

	g := &Gateway{
		config: cfg,
		fs:     afero.NewOsFs(),
		logger: hclog.NewNullLogger(),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.client == nil {
		g.client = cfg.NewHTTPClient()
	}
	g.logger = g.logger.Named("gateway")

	return g, nil
}

// request describes one logical API call.
type request struct {
	method   string
	path     string
	rawQuery string

	// At most one of body and form is set.
	body interface{}
	form *form

	// idempotent requests may be retried when MaxRetries > 0.
	idempotent bool
}

// doRequest executes req and decodes a successful response into result. A nil
// result means the operation only needs an acknowledgment.
func (g *Gateway) doRequest(ctx context.Context, req *request, result interface{}) error {
	baseURL, err := g.config.resolveBaseURL()
	if err != nil {
		return err
	}

	endpoint := baseURL + req.path
	if req.rawQuery != "" {
		endpoint += "?" + req.rawQuery
	}

	payload, contentType, err := g.encodeBody(req)
	if err != nil {
		return err
	}

	attempt := func() error {
		return g.send(ctx, req.method, endpoint, payload, contentType, result)
	}

	if !req.idempotent || g.config.MaxRetries == 0 {
		return attempt()
	}

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = g.config.RetryDelay
	b.MaxElapsedTime = 0
	b.Reset()

	return backoff.RetryNotify(
		func() error {
			if err := attempt(); err != nil {
				if retryable(err) {
					return err
				}
				return backoff.Permanent(err)
			}
			return nil
		},
		backoff.WithContext(backoff.WithMaxRetries(b, uint64(g.config.MaxRetries)), ctx),
		func(err error, wait time.Duration) {
			g.logger.Warn("retrying request",
				"method", req.method,
				"path", req.path,
				"wait", wait,
				"error", err,
			)
		},
	)
}

// encodeBody runs the load and encode stages for multipart requests, or
// marshals the JSON body.
func (g *Gateway) encodeBody(req *request) ([]byte, string, error) {
	switch {
	case req.form != nil && req.body != nil:
		return nil, "", fmt.Errorf("request has both a JSON and a multipart body")

	case req.form != nil:
		if err := req.form.load(g.fs); err != nil {
			return nil, "", err
		}
		return req.form.encode()

	case req.body != nil:
		b, err := json.Marshal(req.body)
		if err != nil {
			return nil, "", fmt.Errorf("failed to marshal request body: %w", err)
		}
		return b, "application/json", nil
	}

	return nil, "", nil
}

// send performs a single HTTP round trip and classifies the outcome.
func (g *Gateway) send(
	ctx context.Context,
	method, endpoint string,
	payload []byte,
	contentType string,
	result interface{},
) error {
	var bodyReader io.Reader
	if payload != nil {
		bodyReader = bytes.NewReader(payload)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, endpoint, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	requestID := uuid.NewString()
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("User-Agent", g.config.UserAgent)
	httpReq.Header.Set("X-Request-ID", requestID)
	if contentType != "" {
		httpReq.Header.Set("Content-Type", contentType)
	}

	logger := g.logger.With("method", method, "path", httpReq.URL.Path, "request_id", requestID)
	logger.Debug("sending request", "content_length", len(payload))

	start := time.Now()
	resp, err := g.client.Do(httpReq)
	if err != nil {
		return &TransportError{Err: unwrapURLError(err)}
	}
	defer resp.Body.Close()

	logger.Debug("received response",
		"status", resp.StatusCode,
		"duration", time.Since(start),
	)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg := unknownErrorBody
		if body, err := io.ReadAll(resp.Body); err == nil {
			msg = strings.TrimSpace(string(body))
		}
		return &APIError{StatusCode: resp.StatusCode, Body: msg}
	}

	if result == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return &TransportError{Err: fmt.Errorf("failed to read response: %w", err)}
	}

	if len(bytes.TrimSpace(respBody)) == 0 {
		return &DecodeError{Err: errors.New("empty response body")}
	}

	if err := json.Unmarshal(respBody, result); err != nil {
		return &DecodeError{Err: err}
	}

	return nil
}

// unwrapURLError drops the *url.Error wrapper, which repeats the method and
// full endpoint in its message.
func unwrapURLError(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return fmt.Errorf("%s: %w", urlErr.Op, urlErr.Err)
	}
	return err
}

// checkBaseURL reports a missing or unusable base URL. Operations call it
// before validating their own arguments so configuration problems win.
func (g *Gateway) checkBaseURL() error {
	_, err := g.config.resolveBaseURL()
	return err
}

// pathSegment escapes a value for use as a single URL path segment.
func pathSegment(name, value string) (string, error) {
	if strings.TrimSpace(value) == "" {
		return "", &ValidationError{Err: fmt.Errorf("%s is required", name)}
	}
	return url.PathEscape(value), nil
}
