package base

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"
	"github.com/pkg/browser"
	"github.com/spf13/afero"

	"github.com/hashicorp-forge/clientdesk/internal/config"
	"github.com/hashicorp-forge/clientdesk/internal/version"
	"github.com/hashicorp-forge/clientdesk/pkg/gateway"
)

// Command holds what every subcommand shares: the logger, the UI, and the
// flags that select configuration and output.
type Command struct {
	Log hclog.Logger
	UI  cli.Ui

	// Fs is where attachments are read from.
	Fs afero.Fs

	// HTTPClient, when set, replaces the client built from configuration.
	HTTPClient *http.Client

	// OpenURL opens a URL in the user's browser.
	OpenURL func(url string) error

	flagConfig string
	flagFormat string
	flagAPIURL string
}

// NewCommand returns a Command using the local filesystem and the system
// browser.
func NewCommand(log hclog.Logger, ui cli.Ui) *Command {
	return &Command{
		Log:     log,
		UI:      ui,
		Fs:      afero.NewOsFs(),
		OpenURL: browser.OpenURL,
	}
}

// AddGlobalFlags registers -config, -api-url and -format on f.
func (c *Command) AddGlobalFlags(f *FlagSet) {
	f.StringVar(
		&c.flagConfig, "config", "",
		fmt.Sprintf("Path to an HCL configuration file. Defaults to $%s.", config.EnvConfigPath),
	)
	f.StringVar(
		&c.flagAPIURL, "api-url", "",
		fmt.Sprintf("Base URL of the client API. Overrides the config file and $%s.", config.EnvAPIURL),
	)
	f.StringVar(
		&c.flagFormat, "format", "",
		"Output format: json, yaml or table. Defaults to the configured output.",
	)
}

// Setup loads the configuration, applies flag overrides, sets the log level
// and builds the gateway.
func (c *Command) Setup() (*config.Config, *gateway.Gateway, error) {
	cfg, err := config.Load(config.ResolvePath(c.flagConfig))
	if err != nil {
		return nil, nil, fmt.Errorf("error loading configuration: %w", err)
	}

	if c.flagAPIURL != "" {
		cfg.API.BaseURL = c.flagAPIURL
	}
	if c.flagFormat != "" {
		if err := config.ValidateOutput(c.flagFormat); err != nil {
			return nil, nil, err
		}
		cfg.Output = c.flagFormat
	}

	c.Log.SetLevel(cfg.Level())

	gc, err := cfg.GatewayConfig()
	if err != nil {
		return nil, nil, err
	}
	gc.UserAgent = "clientdesk/" + version.Version

	opts := []gateway.Option{
		gateway.WithLogger(c.Log),
	}
	if c.Fs != nil {
		opts = append(opts, gateway.WithFs(c.Fs))
	}
	if c.HTTPClient != nil {
		opts = append(opts, gateway.WithHTTPClient(c.HTTPClient))
	}

	gw, err := gateway.New(gc, opts...)
	if err != nil {
		return nil, nil, fmt.Errorf("error creating gateway: %w", err)
	}

	return cfg, gw, nil
}

// Context returns a context cancelled on SIGINT or SIGTERM.
func (c *Command) Context() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}
