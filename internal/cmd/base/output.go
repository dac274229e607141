package base

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"github.com/hashicorp-forge/clientdesk/internal/config"
)

// Table is the tabular rendering of a value.
type Table struct {
	Header []string
	Rows   [][]string
}

// Print writes v to the UI in the given format. table is used for the table
// format; when it is nil, table output falls back to YAML.
func (c *Command) Print(format string, v interface{}, table *Table) error {
	var out string

	switch strings.ToLower(format) {
	case config.OutputJSON, "":
		b, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Errorf("error encoding JSON output: %w", err)
		}
		out = string(b)

	case config.OutputYAML:
		b, err := yaml.Marshal(v)
		if err != nil {
			return fmt.Errorf("error encoding YAML output: %w", err)
		}
		out = strings.TrimRight(string(b), "\n")

	case config.OutputTable:
		if table == nil {
			return c.Print(config.OutputYAML, v, nil)
		}
		out = table.String()

	default:
		return config.ValidateOutput(format)
	}

	c.UI.Output(out)
	return nil
}

// String renders the table with aligned columns.
func (t *Table) String() string {
	var b strings.Builder
	w := tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)

	if len(t.Header) > 0 {
		fmt.Fprintln(w, strings.Join(t.Header, "\t"))
	}
	for _, row := range t.Rows {
		fmt.Fprintln(w, strings.Join(row, "\t"))
	}
	_ = w.Flush()

	return strings.TrimRight(b.String(), "\n")
}
