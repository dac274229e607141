package clients

import (
	"strconv"

	"github.com/mitchellh/cli"

	"github.com/hashicorp-forge/clientdesk/internal/cmd/base"
	"github.com/hashicorp-forge/clientdesk/pkg/models"
)

type Command struct {
	*base.Command
}

func (c *Command) Synopsis() string {
	return "Manage client records"
}

func (c *Command) Help() string {
	return `Usage: clientdesk clients <subcommand> [options] [args]

  This command groups subcommands for listing, viewing, creating, updating
  and deleting client records.`
}

func (c *Command) Run(args []string) int {
	return cli.RunResultHelp
}

var clientColumns = []string{"ID", "COMPANY", "CLIENT", "EMAIL", "PHONE", "SEGMENT", "STATE", "CITY"}

func clientRow(cl models.Client) []string {
	return []string{
		cl.ID.String(),
		cl.CompanyName,
		cl.ClientName,
		cl.Email,
		cl.Phone,
		cl.Segment,
		cl.State,
		cl.City,
	}
}

func clientsTable(clients []models.Client) *base.Table {
	t := &base.Table{Header: clientColumns}
	for _, cl := range clients {
		t.Rows = append(t.Rows, clientRow(cl))
	}
	return t
}

// clientTable renders one client followed by its files.
func clientTable(cl *models.Client) *base.Table {
	t := clientsTable([]models.Client{*cl})
	if len(cl.Files) == 0 {
		return t
	}

	t.Rows = append(t.Rows,
		[]string{},
		[]string{"FILE ID", "CATEGORY", "NAME", "CREATED"},
	)
	for _, f := range cl.Files {
		created := f.CreatedAt
		if ts, err := f.CreatedTime(); err == nil {
			created = ts.Local().Format("2006-01-02 15:04")
		}
		t.Rows = append(t.Rows, []string{
			f.ID.String(),
			models.CategoryLabel(f.Category),
			f.OriginalFileName,
			created,
		})
	}
	return t
}

func pageSummary(m models.Metadata, shown int) string {
	return "Page " + strconv.Itoa(m.CurrentPage) + " of " + strconv.Itoa(m.LastPage) +
		" (" + strconv.Itoa(shown) + " of " + strconv.Itoa(m.TotalRecords) + " clients)"
}
