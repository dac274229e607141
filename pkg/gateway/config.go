package gateway

import (
	"crypto/tls"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Config contains configuration for the gateway. It is built once at process
// start and passed to New.
type Config struct {
	// BaseURL is the root URL of the remote API.
	// Example: "http://192.168.0.31:8080"
	BaseURL string `json:"baseUrl"`

	// TLSVerify controls TLS certificate verification.
	// Set to false only for development with self-signed certs.
	TLSVerify *bool `json:"tlsVerify,omitempty"`

	// Timeout for API requests.
	// Default: 30 seconds
	Timeout time.Duration `json:"timeout,omitempty"`

	// MaxRetries for failed idempotent reads (list and fetch). Writes are
	// never retried.
	// Default: 0
	MaxRetries int `json:"maxRetries,omitempty"`

	// RetryDelay is the initial backoff between read retries.
	// Default: 1 second
	RetryDelay time.Duration `json:"retryDelay,omitempty"`

	// UserAgent sent with every request.
	UserAgent string `json:"userAgent,omitempty"`
}

// DefaultConfig returns a Config with sensible defaults and no base URL.
func DefaultConfig() *Config {
	tlsVerify := true
	return &Config{
		TLSVerify:  &tlsVerify,
		Timeout:    30 * time.Second,
		RetryDelay: 1 * time.Second,
		UserAgent:  "clientdesk",
	}
}

// applyDefaults fills zero values from DefaultConfig.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.TLSVerify == nil {
		c.TLSVerify = defaults.TLSVerify
	}
	if c.Timeout == 0 {
		c.Timeout = defaults.Timeout
	}
	if c.RetryDelay == 0 {
		c.RetryDelay = defaults.RetryDelay
	}
	if c.UserAgent == "" {
		c.UserAgent = defaults.UserAgent
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if _, err := c.resolveBaseURL(); err != nil {
		return err
	}

	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got: %v", c.Timeout)
	}

	if c.MaxRetries < 0 {
		return fmt.Errorf("max_retries must be non-negative, got: %d", c.MaxRetries)
	}

	if c.RetryDelay < 0 {
		return fmt.Errorf("retry_delay must be non-negative, got: %v", c.RetryDelay)
	}

	return nil
}

// resolveBaseURL returns the base URL without a trailing slash, or a
// *ConfigError if it is missing or malformed.
func (c *Config) resolveBaseURL() (string, error) {
	if c == nil || strings.TrimSpace(c.BaseURL) == "" {
		return "", &ConfigError{Msg: "base_url is required (set API_URL or api.base_url)"}
	}

	parsedURL, err := url.Parse(strings.TrimSpace(c.BaseURL))
	if err != nil {
		return "", &ConfigError{Msg: fmt.Sprintf("invalid base_url: %v", err)}
	}

	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return "", &ConfigError{Msg: fmt.Sprintf(
			"base_url must use http or https scheme, got: %q", parsedURL.Scheme)}
	}

	if parsedURL.Host == "" {
		return "", &ConfigError{Msg: "base_url must include a host"}
	}

	return strings.TrimRight(parsedURL.String(), "/"), nil
}

// NewHTTPClient creates a configured HTTP client.
func (c *Config) NewHTTPClient() *http.Client {
	transport := &http.Transport{
		Proxy:               http.ProxyFromEnvironment,
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
	}

	// Configure TLS verification
	if c.TLSVerify != nil && !*c.TLSVerify {
		transport.TLSClientConfig = &tls.Config{
			InsecureSkipVerify: true,
		}
	}

	return &http.Client{
		Timeout:   c.Timeout,
		Transport: transport,
	}
}
