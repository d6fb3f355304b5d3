package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version information, set by build flags.
var (
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var noColor bool

var rootCmd = &cobra.Command{
	Use:   "golox [script]",
	Short: "A tree-walking interpreter for Lox",
	Long: `golox is a Go implementation of the Lox scripting language from
Crafting Interpreters: dynamically typed, closures, classes with single
inheritance, and a REPL.

Run a script:
  golox run script.lox

Start the REPL:
  golox run

Inspect the pipeline:
  golox lex script.lox
  golox parse script.lox`,
	Version: Version,
	Args:    rootArgs,
	Run:     runRun,
}

// rootArgs rejects everything but the bare `golox [script]` form: zero args
// start the REPL, one arg is the script path. Cobra's own default validator
// (legacyArgs) would instead report "unknown command" once a command has
// subcommands, so this overrides it to keep the one-line usage message.
func rootArgs(_ *cobra.Command, args []string) error {
	if len(args) > 1 {
		return errors.New("Usage: lox [script]")
	}
	return nil
}

// Execute runs the root command and exits the process. Cobra-level errors
// (unknown flag, too many args) are usage errors, exit code 64; the run
// command handles its own scan/parse/resolve/runtime exit codes directly
// and never returns an error to Cobra.
func Execute() {
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(64)
	}
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored diagnostic output")
}

// colorEnabled reports whether diagnostics should be rendered with ANSI
// styling: off for --no-color and for the NO_COLOR convention
// (https://no-color.org), on otherwise.
func colorEnabled() bool {
	if noColor {
		return false
	}
	if _, set := os.LookupEnv("NO_COLOR"); set {
		return false
	}
	return true
}
