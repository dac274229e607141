package clients

import (
	"flag"
	"fmt"

	"github.com/hashicorp-forge/clientdesk/internal/cmd/base"
	"github.com/hashicorp-forge/clientdesk/pkg/models"
)

type CreateCommand struct {
	*base.Command

	form models.CreateFormData
}

func (c *CreateCommand) Synopsis() string {
	return "Create a client with optional attachments"
}

func (c *CreateCommand) Help() string {
	return `Usage: clientdesk clients create [options]

  Create a client. Attachments are local file paths; -invoice and
  -pms-report may be repeated. If any attachment can't be read nothing is
  sent.

  Example:
    clientdesk clients create -company-name "Acme Marine" -client-name "Jane Roe" \
      -email jane@acme.example -phone 9876543210 -state Kerala -city Kochi \
      -segment marine -invoice ./inv-1.pdf -invoice ./inv-2.pdf` +
		c.Flags().Help()
}

func (c *CreateCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(
		flag.NewFlagSet("create", flag.ContinueOnError))

	c.AddGlobalFlags(f)

	f.StringVar(&c.form.CompanyName, "company-name", "", "(Required) Company name.")
	f.StringVar(&c.form.ClientName, "client-name", "", "(Required) Contact name.")
	f.StringVar(&c.form.Email, "email", "", "(Required) Contact email.")
	f.StringVar(&c.form.Phone, "phone", "", "(Required) 10-digit phone number.")
	f.StringVar(&c.form.State, "state", "", "(Required) State.")
	f.StringVar(&c.form.City, "city", "", "(Required) City.")
	f.StringVar(&c.form.Segment, "segment", "", "(Required) Business segment.")

	f.StringVar(&c.form.PurchaseOrder, "purchase-order", "", "Path of the purchase order.")
	f.StringSliceVar(&c.form.Invoice, "invoice", "Path of an invoice. May be repeated.")
	f.StringVar(&c.form.HandingOverReport, "handing-over-report", "", "Path of the handing over report.")
	f.StringSliceVar(&c.form.PMSReport, "pms-report", "Path of a PMS report. May be repeated.")

	return f
}

func (c *CreateCommand) Run(args []string) int {
	ui := c.UI

	c.form = models.CreateFormData{}
	flags := c.Flags()
	if err := flags.Parse(args); err != nil {
		ui.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}
	if len(flags.Args()) > 0 {
		ui.Error("create takes no arguments")
		return 1
	}
	if err := c.form.Validate(); err != nil {
		ui.Error(fmt.Sprintf("invalid client: %v", err))
		return 1
	}

	cfg, gw, err := c.Setup()
	if err != nil {
		ui.Error(err.Error())
		return 1
	}

	ctx, cancel := c.Context()
	defer cancel()

	client, err := gw.CreateClient(ctx, &c.form)
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
