package interp_test

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/cwbudde/golox/internal/diag"
	"github.com/cwbudde/golox/internal/interp"
	"github.com/cwbudde/golox/internal/lexer"
	"github.com/cwbudde/golox/internal/parser"
	"github.com/cwbudde/golox/internal/resolver"
	"github.com/gkampitakis/go-snaps/snaps"
)

// TestFixtures runs every *.lox program under testdata/fixtures through the
// full Scan -> Parse -> Resolve -> Interpret pipeline and snapshots its
// combined stdout/diagnostic output, the same go-snaps discipline the
// teacher repo's fixture suite uses for its own language test corpus.
func TestFixtures(t *testing.T) {
	paths, err := filepath.Glob("../../testdata/fixtures/*.lox")
	if err != nil {
		t.Fatalf("glob fixtures: %v", err)
	}
	if len(paths) == 0 {
		t.Fatal("no fixtures found")
	}

	for _, path := range paths {
		name := filepath.Base(path)
		t.Run(name, func(t *testing.T) {
			source, err := os.ReadFile(path)
			if err != nil {
				t.Fatalf("read fixture: %v", err)
			}

			out := runFixture(string(source))
			snaps.MatchSnapshot(t, fmt.Sprintf("%s_output", name), out)
		})
	}
}

// runFixture drives one program through the pipeline and returns its
// combined output: `print` text, then any diagnostic/runtime-error text.
func runFixture(source string) string {
	var out bytes.Buffer
	reporter := diag.NewReporter()

	lx := lexer.New(source, func(line int, message string) {
		reporter.Report(diag.StageScan, line, message)
	})
	tokens := lx.ScanTokens()

	p := parser.New(tokens, reporter)
	program := p.Parse()

	if reporter.HasErrors() {
		out.WriteString(reporter.FormatAll())
		return out.String()
	}

	res := resolver.New(reporter)
	res.Resolve(program)

	if reporter.HasErrors() {
		out.WriteString(reporter.FormatAll())
		return out.String()
	}

	it := interp.New(&out)
	if runtimeErr := it.Interpret(program); runtimeErr != nil {
		out.WriteString(runtimeErr.Format())
		out.WriteString("\n")
	}
	return out.String()
}
