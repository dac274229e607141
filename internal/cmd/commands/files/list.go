package files

import (
	"flag"
	"fmt"

	"github.com/hashicorp-forge/clientdesk/internal/cmd/base"
	"github.com/hashicorp-forge/clientdesk/pkg/models"
)

type ListCommand struct {
	*base.Command

	flagCategory string
}

func (c *ListCommand) Synopsis() string {
	return "List the files of a client"
}

func (c *ListCommand) Help() string {
	return `Usage: clientdesk files list [options] <client-id>

  List the files stored for a client, optionally limited to one category.` +
		c.Flags().Help()
}

func (c *ListCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(
		flag.NewFlagSet("list", flag.ContinueOnError))

	c.AddGlobalFlags(f)

	f.StringVar(&c.flagCategory, "category", "", "Only list files in this category.")

	return f
}

func (c *ListCommand) Run(args []string) int {
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

	files := client.Files
	if c.flagCategory != "" {
		files = client.FilesByCategory(models.NormalizeCategory(c.flagCategory))
	}
	if files == nil {
		files = []models.File{}
	}

	if err := c.Print(cfg.Output, files, filesTable(files)); err != nil {
		ui.Error(err.Error())
		return 1
	}

	return 0
}

func filesTable(files []models.File) *base.Table {
	t := &base.Table{Header: []string{"ID", "CATEGORY", "NAME", "CREATED"}}
	for _, f := range files {
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
