package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/hcl/v2/hclsimple"

	"github.com/hashicorp-forge/clientdesk/pkg/gateway"
)

// Environment variables that override the configuration file.
const (
	EnvConfigPath = "CLIENTDESK_CONFIG"
	EnvAPIURL     = "API_URL"
	EnvLogLevel   = "CLIENTDESK_LOG_LEVEL"
	EnvOutput     = "CLIENTDESK_OUTPUT"
)

// Output formats.
const (
	OutputJSON  = "json"
	OutputYAML  = "yaml"
	OutputTable = "table"
)

// Config is the clientdesk configuration.
type Config struct {
	// LogLevel is the hclog level name (trace, debug, info, warn, error).
	LogLevel string `hcl:"log_level,optional"`

	// Output is the default output format: json, yaml or table.
	Output string `hcl:"output,optional"`

	// API configures the remote client API.
	API *API `hcl:"api,block"`
}

// API configures the remote client API.
type API struct {
	BaseURL            string `hcl:"base_url,optional"`
	Timeout            string `hcl:"timeout,optional"`
	MaxRetries         int    `hcl:"max_retries,optional"`
	RetryDelay         string `hcl:"retry_delay,optional"`
	InsecureSkipVerify bool   `hcl:"insecure_skip_verify,optional"`
}

// ResolvePath returns the configuration file path from the flag value, falling
// back to CLIENTDESK_CONFIG. An empty result means no file.
func ResolvePath(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	return os.Getenv(EnvConfigPath)
}

// Load reads the HCL file at path, if any, applies defaults and then
// environment overrides, and validates the result.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if path != "" {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return nil, fmt.Errorf("configuration file not found: %s", path)
		}

		if err := hclsimple.DecodeFile(path, nil, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse configuration file: %w", err)
		}
	}

	cfg.applyDefaults()
	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.LogLevel == "" {
		c.LogLevel = "warn"
	}
	if c.Output == "" {
		c.Output = OutputJSON
	}
	if c.API == nil {
		c.API = &API{}
	}
	if c.API.Timeout == "" {
		c.API.Timeout = "30s"
	}
	if c.API.RetryDelay == "" {
		c.API.RetryDelay = "1s"
	}
}

func (c *Config) applyEnv() {
	if v := os.Getenv(EnvAPIURL); v != "" {
		c.API.BaseURL = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv(EnvOutput); v != "" {
		c.Output = v
	}
}

// Validate checks the configuration. The base URL is deliberately not
// required here; the gateway reports a missing one when it is first used.
func (c *Config) Validate() error {
	if hclog.LevelFromString(c.LogLevel) == hclog.NoLevel {
		return fmt.Errorf("invalid log_level %q", c.LogLevel)
	}
	if err := ValidateOutput(c.Output); err != nil {
		return err
	}
	if c.API.MaxRetries < 0 {
		return fmt.Errorf("api.max_retries must be non-negative, got: %d", c.API.MaxRetries)
	}
	if _, err := c.GatewayConfig(); err != nil {
		return err
	}
	return nil
}

// ValidateOutput checks an output format name.
func ValidateOutput(format string) error {
	switch strings.ToLower(format) {
	case OutputJSON, OutputYAML, OutputTable:
		return nil
	}
	return fmt.Errorf("invalid output format %q (valid: json, yaml, table)", format)
}

// Level returns the configured log level.
func (c *Config) Level() hclog.Level {
	return hclog.LevelFromString(c.LogLevel)
}

// GatewayConfig converts the api block to a gateway configuration.
func (c *Config) GatewayConfig() (*gateway.Config, error) {
	api := c.API
	if api == nil {
		api = &API{}
	}

	gc := gateway.DefaultConfig()
	gc.BaseURL = api.BaseURL
	gc.MaxRetries = api.MaxRetries

	if api.Timeout != "" {
		d, err := time.ParseDuration(api.Timeout)
		if err != nil {
			return nil, fmt.Errorf("error parsing api.timeout: %w", err)
		}
		gc.Timeout = d
	}
	if api.RetryDelay != "" {
		d, err := time.ParseDuration(api.RetryDelay)
		if err != nil {
			return nil, fmt.Errorf("error parsing api.retry_delay: %w", err)
		}
		gc.RetryDelay = d
	}
	if api.InsecureSkipVerify {
		verify := false
		gc.TLSVerify = &verify
	}

	return gc, nil
}

// Example configuration file:
//
//	log_level = "info"
//	output    = "table"
//
//	api {
//	  base_url    = "http://192.168.0.31:8080"
//	  timeout     = "30s"
//	  max_retries = 2
//	  retry_delay = "500ms"
//	}
