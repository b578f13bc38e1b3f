package console

import (
	"io"
	"os"
)

type ConsoleUI struct {
	out    io.Writer
	format Format
}

func NewConsoleUI(out io.Writer, format Format) *ConsoleUI {
	if out == nil {
		out = os.Stdout
	}
	if format == "" {
		format = FormatText
	}
	return &ConsoleUI{out: out, format: format}
}

// Numbered reports whether the format needs line numbers, i.e. Matches rather than Lines.
func (c *ConsoleUI) Numbered() bool { return c.format != FormatText }
