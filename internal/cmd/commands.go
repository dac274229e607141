package cmd

import (
	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"

	"github.com/hashicorp-forge/clientdesk/internal/cmd/base"
	"github.com/hashicorp-forge/clientdesk/internal/cmd/commands/clients"
	"github.com/hashicorp-forge/clientdesk/internal/cmd/commands/files"
	"github.com/hashicorp-forge/clientdesk/internal/cmd/commands/version"
)

// Commands is the mapping of all available commands.
var Commands map[string]cli.CommandFactory

func initCommands(log hclog.Logger, ui cli.Ui) {
	initCommandsWithBase(base.NewCommand(log, ui))
}

func initCommandsWithBase(b *base.Command) {
	Commands = map[string]cli.CommandFactory{
		"clients": func() (cli.Command, error) {
			return &clients.Command{Command: b}, nil
		},
		"clients list": func() (cli.Command, error) {
			return &clients.ListCommand{Command: b}, nil
		},
		"clients get": func() (cli.Command, error) {
			return &clients.GetCommand{Command: b}, nil
		},
		"clients create": func() (cli.Command, error) {
			return &clients.CreateCommand{Command: b}, nil
		},
		"clients update": func() (cli.Command, error) {
			return &clients.UpdateCommand{Command: b}, nil
		},
		"clients delete": func() (cli.Command, error) {
			return &clients.DeleteCommand{Command: b}, nil
		},
		"files": func() (cli.Command, error) {
			return &files.Command{Command: b}, nil
		},
		"files list": func() (cli.Command, error) {
			return &files.ListCommand{Command: b}, nil
		},
		"files attach": func() (cli.Command, error) {
			return &files.AttachCommand{Command: b}, nil
		},
		"files delete": func() (cli.Command, error) {
			return &files.DeleteCommand{Command: b}, nil
		},
		"files send": func() (cli.Command, error) {
			return &files.SendCommand{Command: b}, nil
		},
		"files send-category": func() (cli.Command, error) {
			return &files.SendCategoryCommand{Command: b}, nil
		},
		"files open": func() (cli.Command, error) {
			return &files.OpenCommand{Command: b}, nil
		},
		"version": func() (cli.Command, error) {
			return &version.Command{Command: b}, nil
		},
	}
}
