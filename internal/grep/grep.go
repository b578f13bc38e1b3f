// Package grep ties a resolved Config to the file system and the console.
package grep

import (
	"errors"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"github.com/gopak/minigrep/internal/config"
	"github.com/gopak/minigrep/internal/logging"
	"github.com/gopak/minigrep/internal/search"
	"github.com/gopak/minigrep/internal/ui/console"
)

var ErrInvalidUTF8 = errors.New("stream did not contain valid UTF-8")

// ReadError reports that the target file could not be loaded.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string { return e.Err.Error() }
func (e *ReadError) Unwrap() error { return e.Err }

// WriteError reports that results could not be written out.
type WriteError struct {
	Err error
}

func (e *WriteError) Error() string { return "write results: " + e.Err.Error() }
func (e *WriteError) Unwrap() error { return e.Err }

type Options struct {
	Out    io.Writer
	Format console.Format
}

// Run reads cfg.Filename, searches it and prints the results.
func Run(cfg config.Config, opts Options) error {
	contents, err := ReadContents(cfg.Filename)
	if err != nil {
		return err
	}
	logging.Debug(fmt.Sprintf("read %d bytes from %s (case-sensitive=%t)", len(contents), cfg.Filename, cfg.CaseSensitive))

	ui := console.NewConsoleUI(opts.Out, opts.Format)
	if ui.Numbered() {
		matches := search.Find(cfg.Query, contents, cfg.CaseSensitive)
		logging.Debug(fmt.Sprintf("%d matching lines", len(matches)))
		if err := ui.PrintMatches(matches); err != nil {
			return &WriteError{Err: err}
		}
		return nil
	}

	var results []string
	if cfg.CaseSensitive {
		results = search.Search(cfg.Query, contents)
	} else {
		results = search.SearchCaseInsensitive(cfg.Query, contents)
	}
	logging.Debug(fmt.Sprintf("%d matching lines", len(results)))
	if err := ui.PrintLines(results); err != nil {
		return &WriteError{Err: err}
	}
	return nil
}

// ReadContents loads the whole file as text. The file is closed before it returns.
func ReadContents(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", &ReadError{Path: path, Err: err}
	}
	if !utf8.Valid(b) {
		return "", &ReadError{Path: path, Err: ErrInvalidUTF8}
	}
	return string(b), nil
}
