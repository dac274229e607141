package version

import (
	"github.com/hashicorp-forge/clientdesk/internal/cmd/base"
	"github.com/hashicorp-forge/clientdesk/internal/version"
)

type Command struct {
	*base.Command
}

func (c *Command) Synopsis() string {
	return "Print the version"
}

func (c *Command) Help() string {
	return `Usage: clientdesk version`
}

func (c *Command) Run(args []string) int {
	c.UI.Output("clientdesk " + version.Version)
	return 0
}
