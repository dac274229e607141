package clients

import (
	"flag"
	"fmt"
	"strings"

	"github.com/hashicorp-forge/clientdesk/internal/cmd/base"
	"github.com/hashicorp-forge/clientdesk/pkg/models"
)

type DeleteCommand struct {
	*base.Command

	flagYes bool
}

func (c *DeleteCommand) Synopsis() string {
	return "Delete a client"
}

func (c *DeleteCommand) Help() string {
	return `Usage: clientdesk clients delete [options] <client-id>

  Delete a client and everything stored for it. Asks for confirmation
  unless -yes is given.` +
		c.Flags().Help()
}

func (c *DeleteCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(
		flag.NewFlagSet("delete", flag.ContinueOnError))

	c.AddGlobalFlags(f)

	f.BoolVar(&c.flagYes, "yes", false, "Skip the confirmation prompt.")

	return f
}

func (c *DeleteCommand) Run(args []string) int {
	ui := c.UI

	flags := c.Flags()
	if err := flags.Parse(args); err != nil {
		ui.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}
	if len(flags.Args()) != 1 {
		ui.Error("expected exactly one argument: <client-id>")
		return 1
	}
	id := models.ID(flags.Arg(0))

	if !c.flagYes {
		answer, err := ui.Ask(fmt.Sprintf("Delete client %s? Type 'yes' to confirm:", id))
		if err != nil {
			ui.Error(fmt.Sprintf("error reading confirmation: %v", err))
			return 1
		}
		if strings.ToLower(strings.TrimSpace(answer)) != "yes" {
			ui.Warn("Aborted")
			return 1
		}
	}

	_, gw, err := c.Setup()
	if err != nil {
		ui.Error(err.Error())
		return 1
	}

	ctx, cancel := c.Context()
	defer cancel()

	if err := gw.DeleteClient(ctx, id); err != nil {
		ui.Error(err.Error())
		return 1
	}

	ui.Info(fmt.Sprintf("Client %s deleted", id))
	return 0
}
