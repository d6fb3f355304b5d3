package diag_test

import (
	"testing"

	"github.com/cwbudde/golox/internal/diag"
)

func TestDiagnostic_Format(t *testing.T) {
	d := diag.Diagnostic{Stage: diag.StageParse, Line: 3, Where: "at 'x'", Message: "Expect ';'."}
	if got := d.Format(); got != "[line 3] Error at 'x': Expect ';'." {
		t.Fatalf("got %q", got)
	}
}

func TestDiagnostic_FormatWithoutWhere(t *testing.T) {
	d := diag.Diagnostic{Stage: diag.StageScan, Line: 1, Message: "Unexpected character."}
	if got := d.Format(); got != "[line 1] Error: Unexpected character." {
		t.Fatalf("got %q", got)
	}
}

func TestReporter_ReportAt(t *testing.T) {
	r := diag.NewReporter()
	r.ReportAt(diag.StageParse, 2, "", "Expect expression.")
	if got := r.Diagnostics()[0].Where; got != "at end" {
		t.Fatalf("got %q", got)
	}

	r.Reset()
	if r.HasErrors() {
		t.Fatal("expected Reset to clear diagnostics")
	}
}

func TestReporter_FormatAll(t *testing.T) {
	r := diag.NewReporter()
	r.Report(diag.StageScan, 1, "Unexpected character.")
	r.Report(diag.StageScan, 2, "Unterminated string.")
	want := "[line 1] Error: Unexpected character.\n[line 2] Error: Unterminated string.\n"
	if got := r.FormatAll(); got != want {
		t.Fatalf("got %q", got)
	}
}

func TestRuntimeError_Format(t *testing.T) {
	err := diag.NewRuntimeError(5, "Undefined variable '%s'.", "x")
	if got := err.Format(); got != "Undefined variable 'x'.\n[line 5]" {
		t.Fatalf("got %q", got)
	}
	if got := err.Error(); got != "Undefined variable 'x'." {
		t.Fatalf("got %q", got)
	}
}
