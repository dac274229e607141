package files

import (
	"flag"
	"fmt"

	"github.com/hashicorp-forge/clientdesk/internal/cmd/base"
	"github.com/hashicorp-forge/clientdesk/pkg/models"
)

type SendCommand struct {
	*base.Command
}

func (c *SendCommand) Synopsis() string {
	return "Email a single file"
}

func (c *SendCommand) Help() string {
	return `Usage: clientdesk files send [options] <client-id> <file-id>

  Ask the API to email one stored file.` +
		c.Flags().Help()
}

func (c *SendCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(
		flag.NewFlagSet("send", flag.ContinueOnError))

	c.AddGlobalFlags(f)

	return f
}

func (c *SendCommand) Run(args []string) int {
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

	if err := gw.SendFile(ctx, clientID, models.ID(fileID)); err != nil {
		ui.Error(err.Error())
		return 1
	}

	ui.Info(fmt.Sprintf("File %s sent", fileID))
	return 0
}

type SendCategoryCommand struct {
	*base.Command
}

func (c *SendCategoryCommand) Synopsis() string {
	return "Email every file of a category"
}

func (c *SendCategoryCommand) Help() string {
	return `Usage: clientdesk files send-category [options] <client-id> <category>

  Ask the API to email every file stored for a client in one category.
  The category is normalized to snake_case.` +
		c.Flags().Help()
}

func (c *SendCategoryCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(
		flag.NewFlagSet("send-category", flag.ContinueOnError))

	c.AddGlobalFlags(f)

	return f
}

func (c *SendCategoryCommand) Run(args []string) int {
	ui := c.UI

	clientID, category, err := twoArgs(c.Flags(), args, "category")
	if err != nil {
		ui.Error(err.Error())
		return 1
	}
	category = models.NormalizeCategory(category)

	_, gw, err := c.Setup()
	if err != nil {
		ui.Error(err.Error())
		return 1
	}

	ctx, cancel := c.Context()
	defer cancel()

	if err := gw.SendCategory(ctx, clientID, category); err != nil {
		ui.Error(err.Error())
		return 1
	}

	ui.Info(fmt.Sprintf("%s files sent", models.CategoryLabel(category)))
	return 0
}
