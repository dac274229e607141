package clients

import (
	"flag"
	"fmt"

	"github.com/hashicorp-forge/clientdesk/internal/cmd/base"
	"github.com/hashicorp-forge/clientdesk/internal/config"
	"github.com/hashicorp-forge/clientdesk/pkg/models"
)

type ListCommand struct {
	*base.Command

	flagCompanyName string
	flagSegment     string
	flagState       string
	flagCity        string
	flagPage        int
	flagPageSize    int
	flagQuery       string
	flagAll         bool
}

func (c *ListCommand) Synopsis() string {
	return "List clients"
}

func (c *ListCommand) Help() string {
	return `Usage: clientdesk clients list [options]

  List one page of clients, optionally filtered. Use -query to pass a raw,
  already encoded query string to the API instead of the filter flags, and
  -all to follow pagination until the last page.` +
		c.Flags().Help()
}

func (c *ListCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(
		flag.NewFlagSet("list", flag.ContinueOnError))

	c.AddGlobalFlags(f)

	f.StringVar(&c.flagCompanyName, "company-name", "", "Filter by company name (case-insensitive).")
	f.StringVar(&c.flagSegment, "segment", "", "Filter by segment.")
	f.StringVar(&c.flagState, "state", "", "Filter by state.")
	f.StringVar(&c.flagCity, "city", "", "Filter by city.")
	f.IntVar(&c.flagPage, "page", 0, "Page number to fetch.")
	f.IntVar(&c.flagPageSize, "page-size", 0, "Number of clients per page.")
	f.StringVar(&c.flagQuery, "query", "", "Raw query string sent verbatim, e.g. \"page=2&pageSize=10\".")
	f.BoolVar(&c.flagAll, "all", false, "Fetch every page starting from -page.")

	return f
}

func (c *ListCommand) Run(args []string) int {
	ui := c.UI

	flags := c.Flags()
	if err := flags.Parse(args); err != nil {
		ui.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}
	if len(flags.Args()) > 0 {
		ui.Error("list takes no arguments")
		return 1
	}

	filter := models.ClientFilter{
		CompanyName: c.flagCompanyName,
		Segment:     c.flagSegment,
		State:       c.flagState,
		City:        c.flagCity,
		Page:        c.flagPage,
		PageSize:    c.flagPageSize,
	}
	if c.flagQuery != "" {
		if filter != (models.ClientFilter{}) {
			ui.Error("-query can't be combined with filter or paging flags")
			return 1
		}
		if c.flagAll {
			ui.Error("-query can't be combined with -all")
			return 1
		}
	}

	cfg, gw, err := c.Setup()
	if err != nil {
		ui.Error(err.Error())
		return 1
	}

	ctx, cancel := c.Context()
	defer cancel()

	if !c.flagAll {
		query := c.flagQuery
		if query == "" {
			query = filter.Encode()
		}

		resp, err := gw.ListClients(ctx, query)
		if err != nil {
			ui.Error(err.Error())
			return 1
		}

		if err := c.Print(cfg.Output, resp, clientsTable(resp.Clients)); err != nil {
			ui.Error(err.Error())
			return 1
		}
		if cfg.Output == config.OutputTable {
			ui.Info(pageSummary(resp.Metadata, len(resp.Clients)))
		}
		return 0
	}

	if filter.Page < 1 {
		filter.Page = 1
	}

	var all []models.Client
	for {
		resp, err := gw.ListClients(ctx, filter.Encode())
		if err != nil {
			ui.Error(err.Error())
			return 1
		}
		all = append(all, resp.Clients...)

		c.Log.Debug("fetched page",
			"page", resp.Metadata.CurrentPage,
			"last_page", resp.Metadata.LastPage,
			"count", len(resp.Clients),
		)

		// Stop when the API reports no further pages or stops advancing.
		if !resp.Metadata.HasNext() || resp.Metadata.CurrentPage < filter.Page {
			break
		}
		filter.Page = resp.Metadata.CurrentPage + 1
	}

	if all == nil {
		all = []models.Client{}
	}
	if err := c.Print(cfg.Output, all, clientsTable(all)); err != nil {
		ui.Error(err.Error())
		return 1
	}

	return 0
}
