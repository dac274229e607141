package files

import (
	"flag"
	"fmt"

	"github.com/hashicorp-forge/clientdesk/internal/cmd/base"
	"github.com/hashicorp-forge/clientdesk/pkg/models"
)

type OpenCommand struct {
	*base.Command

	flagPrint bool
}

func (c *OpenCommand) Synopsis() string {
	return "Open a stored file in the browser"
}

func (c *OpenCommand) Help() string {
	return `Usage: clientdesk files open [options] <client-id> <file-id>

  Open a stored file in the default browser. Use -print to only print its
  URL.` +
		c.Flags().Help()
}

func (c *OpenCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(
		flag.NewFlagSet("open", flag.ContinueOnError))

	c.AddGlobalFlags(f)

	f.BoolVar(&c.flagPrint, "print", false, "Print the URL instead of opening it.")

	return f
}

func (c *OpenCommand) Run(args []string) int {
	ui := c.UI

	clientID, fileID, err := twoArgs(c.Flags(), args, "file-id")
	if err != nil {
		ui.Error(err.Error())
		return 1
	}

	_, gw, err := c.Setup()
	if err != nil {
		ui.Error(err.Error())
		return 1
	}

	ctx, cancel := c.Context()
	defer cancel()

	client, err := gw.GetClient(ctx, clientID)
	if err != nil {
		ui.Error(err.Error())
		return 1
	}

	file, err := findFile(client, models.ID(fileID))
	if err != nil {
		ui.Error(err.Error())
		return 1
	}

	u, err := gw.FileURL(*file)
	if err != nil {
		ui.Error(err.Error())
		return 1
	}

	if c.flagPrint {
		ui.Output(u)
		return 0
	}

	if err := c.OpenURL(u); err != nil {
		ui.Error(fmt.Sprintf("error opening browser: %v", err))
		ui.Output(u)
		return 1
	}

	return 0
}
