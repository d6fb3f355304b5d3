// Package diag collects and formats the diagnostics produced by the
// Scanner, Parser, and Resolver stages, and the single RuntimeError that
// aborts evaluation, using a Reporter/Diagnostic split with a line-only
// position model.
package diag

import (
	"fmt"
	"strings"
)

// Stage identifies which pipeline phase raised a Diagnostic.
type Stage string

const (
	StageScan     Stage = "scan"
	StageParse    Stage = "parse"
	StageResolve  Stage = "resolve"
)

// Diagnostic is a single scan/parse/resolve error.
type Diagnostic struct {
	Stage   Stage
	Line    int
	Where   string // "at 'lexeme'" or "at end"; empty when not token-anchored
	Message string
}

// Reporter accumulates Diagnostics during a single Scan+Parse+Resolve pass.
// It is created fresh per CLI invocation, and per line in the REPL, so that
// tests and a REPL can reset and inspect it independently — there is no
// hidden process-wide sink.
type Reporter struct {
	diagnostics []Diagnostic
}

// NewReporter returns an empty Reporter.
func NewReporter() *Reporter {
	return &Reporter{}
}

// Report records a line-anchored diagnostic with no token context, e.g. a
// scanner error.
func (r *Reporter) Report(stage Stage, line int, message string) {
	r.diagnostics = append(r.diagnostics, Diagnostic{Stage: stage, Line: line, Message: message})
}

// ReportAt records a diagnostic anchored to a specific lexeme, or to "end"
// when lexeme is empty (used for errors at EOF).
func (r *Reporter) ReportAt(stage Stage, line int, lexeme, message string) {
	where := "at end"
	if lexeme != "" {
		where = fmt.Sprintf("at '%s'", lexeme)
	}
	r.diagnostics = append(r.diagnostics, Diagnostic{Stage: stage, Line: line, Where: where, Message: message})
}

// HasErrors reports whether any diagnostic has been recorded.
func (r *Reporter) HasErrors() bool {
	return len(r.diagnostics) > 0
}

// Diagnostics returns the accumulated diagnostics in report order.
func (r *Reporter) Diagnostics() []Diagnostic {
	return r.diagnostics
}

// Reset clears all accumulated diagnostics, for REPL reuse between lines.
func (r *Reporter) Reset() {
	r.diagnostics = nil
}

// Format renders a Diagnostic in the "[line N] Error<at ...>: MESSAGE" form
// the lex/parse/resolve error channel requires.
func (d Diagnostic) Format() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "[line %d] Error", d.Line)
	if d.Where != "" {
		fmt.Fprintf(&sb, " %s", d.Where)
	}
	fmt.Fprintf(&sb, ": %s", d.Message)
	return sb.String()
}

// FormatAll renders every accumulated diagnostic, one per line.
func (r *Reporter) FormatAll() string {
	var sb strings.Builder
	for _, d := range r.diagnostics {
		sb.WriteString(d.Format())
		sb.WriteString("\n")
	}
	return sb.String()
}

// RuntimeError is the single error that aborts the interpreter. Unlike
// scan/parse/resolve diagnostics it is never accumulated: the first one
// unwinds evaluation immediately, per the failure semantics table.
type RuntimeError struct {
	Line    int
	Message string
}

func (e *RuntimeError) Error() string {
	return e.Message
}

// Format renders the runtime error in the "MESSAGE\n[line N]" form the
// runtime error channel requires.
func (e *RuntimeError) Format() string {
	return fmt.Sprintf("%s\n[line %d]", e.Message, e.Line)
}

// NewRuntimeError constructs a RuntimeError at the given line.
func NewRuntimeError(line int, format string, args ...any) *RuntimeError {
	return &RuntimeError{Line: line, Message: fmt.Sprintf(format, args...)}
}
