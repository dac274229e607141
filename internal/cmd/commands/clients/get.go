package clients

import (
	"flag"
	"fmt"

	"github.com/hashicorp-forge/clientdesk/internal/cmd/base"
	"github.com/hashicorp-forge/clientdesk/pkg/models"
)

type GetCommand struct {
	*base.Command
}

func (c *GetCommand) Synopsis() string {
	return "Show a client and its files"
}

func (c *GetCommand) Help() string {
	return `Usage: clientdesk clients get [options] <client-id>

  Fetch a single client, including the files stored for it.` +
		c.Flags().Help()
}

func (c *GetCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(
		flag.NewFlagSet("get", flag.ContinueOnError))

	c.AddGlobalFlags(f)

	return f
}

func (c *GetCommand) Run(args []string) int {
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

	cfg, gw, err := c.Setup()
	if err != nil {
		ui.Error(err.Error())
		return 1
	}

	ctx, cancel := c.Context()
	defer cancel()

	client, err := gw.GetClient(ctx, id)
	if err != nil {
		ui.Error(err.Error())
		return 1
	}

	if err := c.Print(cfg.Output, client, clientTable(client)); err != nil {
		ui.Error(err.Error())
		return 1
	}

	return 0
}
