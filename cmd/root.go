package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gopak/minigrep/internal/config"
	"github.com/gopak/minigrep/internal/grep"
	"github.com/gopak/minigrep/internal/logging"
	"github.com/gopak/minigrep/internal/ui/console"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var version = "dev"

const (
	exitOK      = 0
	exitArgs    = 1
	exitRuntime = 2
)

// Execute runs minigrep against the real process state and returns its exit code.
func Execute() int { return run(os.Args, os.Stdout, os.Stderr, os.LookupEnv) }

func run(argv []string, stdout, stderr io.Writer, lookupEnv func(string) (string, bool)) int {
	logging.Init(stderr)
	logging.SetVerbose(false)
	prog := "minigrep"
	var rest []string
	if len(argv) > 0 {
		prog, rest = argv[0], argv[1:]
	}
	root := newRootCmd(prog, stdout, stderr, lookupEnv)
	root.SetArgs(append([]string{}, rest...))

	err := root.Execute()
	if err == nil {
		return exitOK
	}
	var re *grep.ReadError
	var we *grep.WriteError
	if errors.As(err, &re) {
		logging.Debug("could not read " + re.Path)
	}
	if re != nil || errors.As(err, &we) {
		logging.Error("Error : " + err.Error())
		return exitRuntime
	}
	logging.Error("Problem with arguments : " + err.Error())
	return exitArgs
}

func newRootCmd(prog string, stdout, stderr io.Writer, lookupEnv func(string) (string, bool)) *cobra.Command {
	var verbose bool
	var prompt bool
	format := console.FormatText

	cmd := &cobra.Command{
		Use:   "minigrep <query> <filename>",
		Short: "Print the lines of a file that contain a query",
		Long: "Print every line of <filename> containing <query>, trimmed, in file order.\n" +
			"Set " + config.CaseInsensitiveEnv + " (any value) to ignore case.\n" +
			"Flags go before the query. A query that looks like a flag is taken as the query\n" +
			"unless the flags leave both a query and a filename behind.",
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		SilenceErrors:      true,
		SilenceUsage:       true,
		Version:            version,
		RunE: func(cmd *cobra.Command, raw []string) error {
			reset := func() {
				verbose, prompt, format = false, false, console.FormatText
			}
			args, literal, err := splitArgs(cmd.Flags(), raw, func() bool { return prompt }, reset)
			if err != nil {
				return err
			}
			if !literal {
				if help, _ := cmd.Flags().GetBool("help"); help {
					return cmd.Help()
				}
				if v, _ := cmd.Flags().GetBool("version"); v {
					_, err := fmt.Fprintf(cmd.OutOrStdout(), "%s version %s\n", cmd.Name(), cmd.Version)
					return err
				}
			}
			logging.SetVerbose(verbose)

			if prompt {
				if args, err = console.PromptMissing(args, nil); err != nil {
					return err
				}
			}
			insensitive := config.CaseInsensitiveSet(lookupEnv)
			cfg, err := config.Resolve(append([]string{prog}, args...), insensitive)
			if err != nil {
				return err
			}
			return grep.Run(cfg, grep.Options{Out: stdout, Format: format})
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.Flags().SetInterspersed(false)
	cmd.Flags().VarP(&format, "format", "f", "output format: text, table or yaml")
	cmd.Flags().BoolVar(&prompt, "prompt", false, "ask for a missing query or filename interactively")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "print diagnostics to stderr")
	return cmd
}

// splitArgs parses the flags in front of the query. When raw starts with a single-dash
// token that either fails to parse or leaves no room for both query and filename, raw
// is returned untouched as positional arguments (literal) and reset clears any flag
// already set. Long flags are always strict. keep reports whether a partial argument
// list is acceptable after parsing.
func splitArgs(fs *pflag.FlagSet, raw []string, keep func() bool, reset func()) ([]string, bool, error) {
	err := fs.Parse(raw)
	if err == nil && (len(fs.Args()) >= 2 || len(raw) < 2 || keep()) {
		return fs.Args(), false, nil
	}
	if len(raw) > 0 && strings.HasPrefix(raw[0], "--") {
		if err != nil {
			return nil, false, err
		}
		return fs.Args(), false, nil
	}
	reset()
	return raw, true, nil
}
