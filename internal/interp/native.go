package interp

import "time"

// NativeFn wraps a Go function as a Lox Callable. Lox's only built-in is
// `clock`, but the wrapper is general enough for more if the standard
// library ever grows beyond it.
type NativeFn struct {
	arity int
	fn    func(in *Interpreter, args []any) (any, error)
}

func (n *NativeFn) Arity() int { return n.arity }

func (n *NativeFn) Call(in *Interpreter, args []any) (any, error) {
	return n.fn(in, args)
}

// clockFn returns the number of seconds since the Unix epoch as a Lox
// Number, for measuring elapsed time from within a script.
func clockFn() *NativeFn {
	return &NativeFn{
		arity: 0,
		fn: func(_ *Interpreter, _ []any) (any, error) {
			return float64(time.Now().UnixNano()) / float64(time.Second), nil
		},
	}
}
