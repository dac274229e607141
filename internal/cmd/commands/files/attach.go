package files

import (
	"flag"
	"fmt"
	"strings"

	"github.com/hashicorp-forge/clientdesk/internal/cmd/base"
	"github.com/hashicorp-forge/clientdesk/pkg/models"
)

type AttachCommand struct {
	*base.Command

	flagCategory string
}

func (c *AttachCommand) Synopsis() string {
	return "Upload a file to a client"
}

func (c *AttachCommand) Help() string {
	return `Usage: clientdesk files attach [options] <client-id> <path>

  Upload a local file to a client under a category. Categories are
  normalized to snake_case, so "Purchase Order" becomes purchase_order.
  Well-known categories: ` + strings.Join(models.KnownCategories, ", ") + `.` +
		c.Flags().Help()
}

func (c *AttachCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(
		flag.NewFlagSet("attach", flag.ContinueOnError))

	c.AddGlobalFlags(f)

	f.StringVar(&c.flagCategory, "category", "", "(Required) Category to file the document under.")

	return f
}

func (c *AttachCommand) Run(args []string) int {
	ui := c.UI

	clientID, path, err := twoArgs(c.Flags(), args, "path")
	if err != nil {
		ui.Error(err.Error())
		return 1
	}

	category := models.NormalizeCategory(c.flagCategory)
	if category == "" {
		ui.Error("category flag is required")
		return 1
	}

	_, gw, err := c.Setup()
	if err != nil {
		ui.Error(err.Error())
		return 1
	}

	ctx, cancel := c.Context()
	defer cancel()

	if err := gw.AttachFile(ctx, clientID, category, path); err != nil {
		ui.Error(err.Error())
		return 1
	}

	ui.Info(fmt.Sprintf("Uploaded %s to client %s as %s", path, clientID, models.CategoryLabel(category)))
	return 0
}
