package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/cwbudde/golox/internal/diag"
	"github.com/cwbudde/golox/internal/lexer"
	"github.com/spf13/cobra"
)

var lexCmd = &cobra.Command{
	Use:   "lex [script]",
	Short: "Scan a Lox script and print its token stream",
	Long: `Scan Lox source into tokens and print one per line, without parsing.
Reads from the given file, or from stdin if no file is given.`,
	Args: cobra.MaximumNArgs(1),
	Run:  runLex,
}

func init() {
	rootCmd.AddCommand(lexCmd)
}

func runLex(_ *cobra.Command, args []string) {
	source, err := readSourceArg(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(64)
	}

	reporter := diag.NewReporter()
	lx := lexer.New(source, func(line int, message string) {
		reporter.Report(diag.StageScan, line, message)
	})

	for _, tok := range lx.ScanTokens() {
		fmt.Println(tok.String())
	}

	if reporter.HasErrors() {
		fmt.Fprint(os.Stderr, reporter.PrettyAll(source, colorEnabled()))
		os.Exit(65)
	}
}

// readSourceArg reads from args[0] if present, otherwise from stdin — the
// shared input convention for the lex and parse debug commands.
func readSourceArg(args []string) (string, error) {
	if len(args) == 1 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", err
		}
		return string(data), nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
