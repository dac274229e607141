package clients

import (
	"flag"
	"fmt"

	"github.com/hashicorp-forge/clientdesk/internal/cmd/base"
	"github.com/hashicorp-forge/clientdesk/pkg/models"
)

type UpdateCommand struct {
	*base.Command

	flagSet []string
}

func (c *UpdateCommand) Synopsis() string {
	return "Update fields of a client"
}

func (c *UpdateCommand) Help() string {
	return `Usage: clientdesk clients update [options] <client-id>

  Update a client. The current record is fetched first and every -set
  key=value pair is applied on top of it, so unchanged fields are kept.
  Keys are the API field names: company_name, client_name, email, phone,
  segment, state, city.

  Example:
    clientdesk clients update -set email=ops@acme.example -set city=Kochi 7` +
		c.Flags().Help()
}

func (c *UpdateCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(
		flag.NewFlagSet("update", flag.ContinueOnError))

	c.AddGlobalFlags(f)

	f.StringSliceVar(&c.flagSet, "set", "(Required) Field to change as key=value. May be repeated.")

	return f
}

func (c *UpdateCommand) Run(args []string) int {
	ui := c.UI

	c.flagSet = nil
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

	if len(c.flagSet) == 0 {
		ui.Error("at least one -set flag is required")
		return 1
	}
	fields, err := base.KeyValues(c.flagSet)
	if err != nil {
		ui.Error(fmt.Sprintf("error parsing -set: %v", err))
		return 1
	}

	_, gw, err := c.Setup()
	if err != nil {
		ui.Error(err.Error())
		return 1
	}

	ctx, cancel := c.Context()
	defer cancel()

	current, err := gw.GetClient(ctx, id)
	if err != nil {
		ui.Error(err.Error())
		return 1
	}

	req := models.NewUpdateClientRequest(current)
	if err := req.ApplyFields(fields); err != nil {
		ui.Error(err.Error())
		return 1
	}

	if err := gw.UpdateClient(ctx, req); err != nil {
		ui.Error(err.Error())
		return 1
	}

	ui.Info(fmt.Sprintf("Client %s updated", id))
	return 0
}
