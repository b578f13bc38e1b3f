package console

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
)

// Format selects how results are written to stdout.
type Format string

const (
	FormatText  Format = "text"
	FormatTable Format = "table"
	FormatYAML  Format = "yaml"
)

var _ pflag.Value = (*Format)(nil)

func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "", FormatText:
		return FormatText, nil
	case FormatTable, FormatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("invalid format %q (want text, table or yaml)", s)
	}
}

func (f *Format) String() string {
	if *f == "" {
		return string(FormatText)
	}
	return string(*f)
}

func (f *Format) Set(s string) error {
	v, err := ParseFormat(s)
	if err != nil {
		return err
	}
	*f = v
	return nil
}

func (f *Format) Type() string { return "format" }
