package console

import (
	"bufio"
	"fmt"
	"strconv"

	"github.com/gopak/minigrep/internal/search"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"gopkg.in/yaml.v3"
)

// PrintLines writes one result per line, nothing else.
func (c *ConsoleUI) PrintLines(lines []string) error {
	w := bufio.NewWriter(c.out)
	for _, l := range lines {
		if _, err := w.WriteString(l + "\n"); err != nil {
			return err
		}
	}
	return w.Flush()
}

// PrintMatches writes numbered results as a yaml sequence or, otherwise, a table.
func (c *ConsoleUI) PrintMatches(matches []search.Match) error {
	s := renderTable(matches)
	if c.format == FormatYAML {
		var err error
		if s, err = renderYAML(matches); err != nil {
			return err
		}
	}
	_, err := fmt.Fprint(c.out, s)
	return err
}

func renderTable(matches []search.Match) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleLight)
	tw.Style().Format.Header = text.FormatDefault
	tw.AppendHeader(table.Row{"Line", "Text"})
	tw.SetColumnConfigs([]table.ColumnConfig{{Name: "Line", Align: text.AlignRight}})
	for _, m := range matches {
		tw.AppendRow(table.Row{strconv.Itoa(m.Line), m.Text})
	}
	return tw.Render() + "\n"
}

func renderYAML(matches []search.Match) (string, error) {
	if matches == nil {
		matches = []search.Match{}
	}
	b, err := yaml.Marshal(matches)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
