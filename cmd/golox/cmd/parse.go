package cmd

import (
	"fmt"
	"os"

	"github.com/cwbudde/golox/internal/ast"
	"github.com/cwbudde/golox/internal/diag"
	"github.com/cwbudde/golox/internal/lexer"
	"github.com/cwbudde/golox/internal/parser"
	"github.com/cwbudde/golox/internal/resolver"
	"github.com/spf13/cobra"
)

var parseAST bool

var parseCmd = &cobra.Command{
	Use:   "parse [script]",
	Short: "Parse a Lox script and print its syntax tree",
	Long: `Scan, parse, and resolve Lox source, printing the resulting syntax
tree without executing it. Reads from the given file, or from stdin if no
file is given.`,
	Args: cobra.MaximumNArgs(1),
	Run:  runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
	parseCmd.Flags().BoolVar(&parseAST, "ast", false, "print an indented tree dump instead of the Lisp-like form")
}

func runParse(_ *cobra.Command, args []string) {
	source, err := readSourceArg(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(64)
	}

	reporter := diag.NewReporter()
	lx := lexer.New(source, func(line int, message string) {
		reporter.Report(diag.StageScan, line, message)
	})
	tokens := lx.ScanTokens()

	p := parser.New(tokens, reporter)
	program := p.Parse()

	if reporter.HasErrors() {
		fmt.Fprint(os.Stderr, reporter.PrettyAll(source, colorEnabled()))
		os.Exit(65)
	}

	res := resolver.New(reporter)
	res.Resolve(program)

	if reporter.HasErrors() {
		fmt.Fprint(os.Stderr, reporter.PrettyAll(source, colorEnabled()))
		os.Exit(65)
	}

	if parseAST {
		fmt.Println(ast.Dump(program))
		return
	}
	fmt.Println(program.String())
}
