package interp_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/cwbudde/golox/internal/diag"
	"github.com/cwbudde/golox/internal/interp"
	"github.com/cwbudde/golox/internal/lexer"
	"github.com/cwbudde/golox/internal/parser"
	"github.com/cwbudde/golox/internal/resolver"
)

// run drives source through the full pipeline and returns stdout plus any
// runtime error. It fails the test immediately on a scan/parse/resolve
// error, since these tests are only concerned with evaluation semantics.
func run(t *testing.T, source string) (string, *diag.RuntimeError) {
	t.Helper()
	reporter := diag.NewReporter()

	tokens := lexer.New(source, func(line int, message string) {
		reporter.Report(diag.StageScan, line, message)
	}).ScanTokens()

	p := parser.New(tokens, reporter)
	program := p.Parse()
	if reporter.HasErrors() {
		t.Fatalf("unexpected parse errors: %v", reporter.Diagnostics())
	}

	resolver.New(reporter).Resolve(program)
	if reporter.HasErrors() {
		t.Fatalf("unexpected resolve errors: %v", reporter.Diagnostics())
	}

	var out bytes.Buffer
	it := interp.New(&out)
	runtimeErr := it.Interpret(program)
	return out.String(), runtimeErr
}

func TestInterpret_Arithmetic(t *testing.T) {
	out, err := run(t, `print 1 + 2 * 3;`)
	if err != nil {
		t.Fatalf("unexpected runtime error: %v", err)
	}
	if out != "7\n" {
		t.Fatalf("got %q", out)
	}
}

func TestInterpret_IntegralNumberHasNoTrailingZero(t *testing.T) {
	out, _ := run(t, `print 10 / 2;`)
	if out != "5\n" {
		t.Fatalf("got %q", out)
	}
}

func TestInterpret_DivisionByZeroIsInf(t *testing.T) {
	out, err := run(t, `print 1 / 0;`)
	if err != nil {
		t.Fatalf("unexpected runtime error: %v", err)
	}
	if out != "+Inf\n" && out != "inf\n" {
		t.Fatalf("got %q", out)
	}
}

func TestInterpret_StringConcatenation(t *testing.T) {
	out, _ := run(t, `print "foo" + "bar";`)
	if out != "foobar\n" {
		t.Fatalf("got %q", out)
	}
}

func TestInterpret_PrintEmptyString(t *testing.T) {
	out, _ := run(t, `print "";`)
	if out != "\n" {
		t.Fatalf("got %q", out)
	}
}

func TestInterpret_NilEqualsFalseIsFalse(t *testing.T) {
	out, _ := run(t, `print nil == false;`)
	if out != "false\n" {
		t.Fatalf("got %q", out)
	}
}

func TestInterpret_AddingNumberAndStringIsRuntimeError(t *testing.T) {
	_, err := run(t, `print 1 + "a";`)
	if err == nil {
		t.Fatal("expected a runtime error")
	}
	if err.Message != "Operands must be two numbers or two strings." {
		t.Fatalf("got %q", err.Message)
	}
}

func TestInterpret_Closures(t *testing.T) {
	out, err := run(t, `
		fun makeCounter() {
			var count = 0;
			fun increment() {
				count = count + 1;
				return count;
			}
			return increment;
		}
		var counter = makeCounter();
		print counter();
		print counter();
		print counter();
	`)
	if err != nil {
		t.Fatalf("unexpected runtime error: %v", err)
	}
	if out != "1\n2\n3\n" {
		t.Fatalf("got %q", out)
	}
}

func TestInterpret_ClassesAndInheritance(t *testing.T) {
	out, err := run(t, `
		class Animal {
			init(name) {
				this.name = name;
			}
			speak() {
				return this.name + " speaks.";
			}
		}
		class Dog < Animal {
			speak() {
				return super.speak() + " Woof.";
			}
		}
		var d = Dog("Rex");
		print d.speak();
	`)
	if err != nil {
		t.Fatalf("unexpected runtime error: %v", err)
	}
	if out != "Rex speaks. Woof.\n" {
		t.Fatalf("got %q", out)
	}
}

func TestInterpret_BlockScopingAndShadowing(t *testing.T) {
	out, err := run(t, `
		var a = "global";
		{
			var a = "outer";
			{
				var a = "inner";
				print a;
			}
			print a;
		}
		print a;
	`)
	if err != nil {
		t.Fatalf("unexpected runtime error: %v", err)
	}
	if out != "inner\nouter\nglobal\n" {
		t.Fatalf("got %q", out)
	}
}

func TestInterpret_CallingNonCallableIsRuntimeError(t *testing.T) {
	_, err := run(t, `var x = 1; x();`)
	if err == nil {
		t.Fatal("expected a runtime error")
	}
	if err.Message != "Can only call functions and classes." {
		t.Fatalf("got %q", err.Message)
	}
}

func TestInterpret_ArityMismatchIsRuntimeError(t *testing.T) {
	_, err := run(t, `fun f(a, b) { return a + b; } f(1);`)
	if err == nil {
		t.Fatal("expected a runtime error")
	}
	if !strings.Contains(err.Message, "Expected 2 arguments but got 1.") {
		t.Fatalf("got %q", err.Message)
	}
}

func TestInterpret_Assert(t *testing.T) {
	out, err := run(t, `assert 1 + 1 == 2; print "ok";`)
	if err != nil {
		t.Fatalf("unexpected runtime error: %v", err)
	}
	if out != "ok\n" {
		t.Fatalf("got %q", out)
	}
}

func TestInterpret_AssertFailureIsRuntimeError(t *testing.T) {
	_, err := run(t, `assert 1 == 2;`)
	if err == nil {
		t.Fatal("expected a runtime error")
	}
}

func TestInterpret_Clock(t *testing.T) {
	out, err := run(t, `print clock() >= 0;`)
	if err != nil {
		t.Fatalf("unexpected runtime error: %v", err)
	}
	if out != "true\n" {
		t.Fatalf("got %q", out)
	}
}

func TestInterpret_FieldAccessOnNonInstanceIsRuntimeError(t *testing.T) {
	_, err := run(t, `var x = 1; print x.y;`)
	if err == nil {
		t.Fatal("expected a runtime error")
	}
	if err.Message != "Only instances have properties." {
		t.Fatalf("got %q", err.Message)
	}
}
