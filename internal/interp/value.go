package interp

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Callable is implemented by anything that can appear as a Call expression's
// callee: user functions, classes (construction), and native functions.
type Callable interface {
	Arity() int
	Call(in *Interpreter, args []any) (any, error)
}

// isTruthy implements Lox's truthiness rule: nil and false are falsy, every
// other value — including 0 and "" — is truthy.
func isTruthy(value any) bool {
	if value == nil {
		return false
	}
	if b, ok := value.(bool); ok {
		return b
	}
	return true
}

// valuesEqual implements Lox's equality: nil equals only nil, cross-type
// comparisons are always false (never an error), and same-typed values
// compare structurally.
func valuesEqual(a, b any) bool {
	if a == nil && b == nil {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	switch av := a.(type) {
	case float64:
		bv, ok := b.(float64)
		return ok && av == bv
	case string:
		bv, ok := b.(string)
		return ok && av == bv
	case bool:
		bv, ok := b.(bool)
		return ok && av == bv
	default:
		return a == b
	}
}

// stringify renders value the way `print` does: nil as "nil", integral
// floats without a trailing ".0", booleans as "true"/"false", strings
// verbatim, and callables/instances via their own representation.
func stringify(value any) string {
	switch v := value.(type) {
	case nil:
		return "nil"
	case bool:
		return strconv.FormatBool(v)
	case float64:
		return formatNumber(v)
	case string:
		return v
	case *Function:
		return v.String()
	case *Class:
		return v.String()
	case *Instance:
		return v.String()
	case *NativeFn:
		return "<native fn>"
	default:
		return fmt.Sprintf("%v", v)
	}
}

func formatNumber(f float64) string {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
	text := strconv.FormatFloat(f, 'g', -1, 64)
	if strings.ContainsAny(text, "eE") {
		// Large/small magnitudes still go through Go's %g form; Lox only
		// special-cases the common integral case below.
		return text
	}
	if f == float64(int64(f)) {
		return strconv.FormatInt(int64(f), 10)
	}
	return text
}
