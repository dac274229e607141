package files

import (
	"fmt"

	"github.com/mitchellh/cli"

	"github.com/hashicorp-forge/clientdesk/internal/cmd/base"
	"github.com/hashicorp-forge/clientdesk/pkg/models"
)

type Command struct {
	*base.Command
}

func (c *Command) Synopsis() string {
	return "Manage and send client files"
}

func (c *Command) Help() string {
	return `Usage: clientdesk files <subcommand> [options] [args]

  This command groups subcommands for the documents stored for a client:
  listing, uploading, deleting, opening and emailing them.`
}

func (c *Command) Run(args []string) int {
	return cli.RunResultHelp
}

// twoArgs parses the two positional arguments every file subcommand takes.
func twoArgs(f *base.FlagSet, args []string, second string) (models.ID, string, error) {
	if err := f.Parse(args); err != nil {
		return "", "", fmt.Errorf("error parsing flags: %v", err)
	}
	if len(f.Args()) != 2 {
		return "", "", fmt.Errorf("expected exactly two arguments: <client-id> <%s>", second)
	}
	return models.ID(f.Arg(0)), f.Arg(1), nil
}

// findFile returns the file with the given id from a fetched client.
func findFile(client *models.Client, fileID models.ID) (*models.File, error) {
	for i := range client.Files {
		if client.Files[i].ID == fileID {
			return &client.Files[i], nil
		}
	}
	return nil, fmt.Errorf("client %s has no file %s", client.ID, fileID)
}
