package logging

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-isatty"
)

var out io.Writer = os.Stderr
var colored bool
var verbose bool

// Init directs diagnostics to w. Color is used only when w is a terminal.
func Init(w io.Writer) {
	out = w
	colored = isTerminal(w)
	log.SetOutput(w)
	log.SetFlags(0)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func color(c text.Color, s string) string {
	if !colored {
		return s
	}
	return c.Sprint(s)
}

func Error(msg string) {
	_, _ = fmt.Fprintln(out, color(text.FgRed, msg))
}

// SetVerbose toggles debug output.
func SetVerbose(v bool) { verbose = v }

// Debug prints only when verbose mode is enabled.
func Debug(msg string) {
	if !verbose {
		return
	}
	log.Println(color(text.FgHiBlack, "[DEBUG] "+msg))
}
