package cmd

import (
	"bufio"
	"fmt"
	"os"

	"github.com/cwbudde/golox/internal/ast"
	"github.com/cwbudde/golox/internal/diag"
	"github.com/cwbudde/golox/internal/interp"
	"github.com/cwbudde/golox/internal/lexer"
	"github.com/cwbudde/golox/internal/parser"
	"github.com/cwbudde/golox/internal/resolver"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
)

var (
	dumpAST bool
	watch   bool
)

var runCmd = &cobra.Command{
	Use:   "run [script]",
	Short: "Run a Lox script, or start a REPL with no arguments",
	Long: `Execute a Lox program from a file, or start an interactive REPL if no
file is given.

Examples:
  golox run script.lox
  golox run --dump-ast script.lox
  golox run --watch script.lox
  golox run`,
	Args: cobra.MaximumNArgs(1),
	Run:  runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().BoolVar(&dumpAST, "dump-ast", false, "dump the parsed AST before executing")
	runCmd.Flags().BoolVar(&watch, "watch", false, "re-run the script whenever the file changes")
}

func runRun(_ *cobra.Command, args []string) {
	if len(args) == 0 {
		runREPL()
		return
	}

	path := args[0]
	if watch {
		runWatch(path)
		return
	}

	source, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(64)
	}
	os.Exit(runSource(string(source)))
}

// runSource runs the full Scan -> Parse -> Resolve -> Interpret pipeline
// over source once, returning the process exit code for each failure stage:
// 65 for scan/parse/resolve, 70 for runtime, 0 for success.
func runSource(source string) int {
	reporter := diag.NewReporter()

	lx := lexer.New(source, func(line int, message string) {
		reporter.Report(diag.StageScan, line, message)
	})
	tokens := lx.ScanTokens()

	p := parser.New(tokens, reporter)
	program := p.Parse()

	if reporter.HasErrors() {
		fmt.Fprint(os.Stderr, reporter.PrettyAll(source, colorEnabled()))
		return 65
	}

	res := resolver.New(reporter)
	res.Resolve(program)

	if reporter.HasErrors() {
		fmt.Fprint(os.Stderr, reporter.PrettyAll(source, colorEnabled()))
		return 65
	}

	if dumpAST {
		fmt.Println(ast.Dump(program))
	}

	it := interp.New(os.Stdout)
	if runtimeErr := it.Interpret(program); runtimeErr != nil {
		fmt.Fprintln(os.Stderr, runtimeErr.Format())
		return 70
	}
	return 0
}

// runWatch re-runs the script on every write to path, for iterating on a
// script without restarting golox each time.
func runWatch(path string) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(64)
	}
	defer watcher.Close()

	if err := watcher.Add(path); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(64)
	}

	runOnce := func() {
		source, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %s\n", err)
			return
		}
		fmt.Fprintf(os.Stderr, "--- running %s ---\n", path)
		runSource(string(source))
	}

	runOnce()
	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if event.Has(fsnotify.Write) {
				runOnce()
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			fmt.Fprintf(os.Stderr, "watch error: %s\n", err)
		}
	}
}

// runREPL reads and evaluates one line at a time, echoing bare expression
// values and never aborting the session on an error — each line gets a fresh
// Reporter and its own Resolver pass, sharing the REPL's persistent
// Environment, matching jlox-derived REPL conventions.
func runREPL() {
	it := interp.New(os.Stdout)
	it.IsREPL = true

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			fmt.Println()
			return
		}
		line := scanner.Text()
		if line == "" {
			continue
		}
		replEval(it, line)
	}
}

func replEval(it *interp.Interpreter, line string) {
	reporter := diag.NewReporter()

	lx := lexer.New(line, func(ln int, message string) {
		reporter.Report(diag.StageScan, ln, message)
	})
	tokens := lx.ScanTokens()

	p := parser.New(tokens, reporter)
	program := p.Parse()

	if reporter.HasErrors() {
		fmt.Fprint(os.Stderr, reporter.PrettyAll(line, colorEnabled()))
		return
	}

	res := resolver.New(reporter)
	res.Resolve(program)

	if reporter.HasErrors() {
		fmt.Fprint(os.Stderr, reporter.PrettyAll(line, colorEnabled()))
		return
	}

	if runtimeErr := it.Interpret(program); runtimeErr != nil {
		fmt.Fprintln(os.Stderr, runtimeErr.Format())
	}
}
