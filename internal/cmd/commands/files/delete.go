package files

import (
	"flag"
	"fmt"

	"github.com/hashicorp-forge/clientdesk/internal/cmd/base"
	"github.com/hashicorp-forge/clientdesk/pkg/models"
)

type DeleteCommand struct {
	*base.Command
}

func (c *DeleteCommand) Synopsis() string {
	return "Delete a file of a client"
}

func (c *DeleteCommand) Help() string {
	return `Usage: clientdesk files delete [options] <client-id> <file-id>` +
		c.Flags().Help()
}

func (c *DeleteCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(
		flag.NewFlagSet("delete", flag.ContinueOnError))

	c.AddGlobalFlags(f)

	return f
}

func (c *DeleteCommand) Run(args []string) int {
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

	if err := gw.DeleteFile(ctx, clientID, models.ID(fileID)); err != nil {
		ui.Error(err.Error())
		return 1
	}

	ui.Info(fmt.Sprintf("File %s deleted", fileID))
	return 0
}
