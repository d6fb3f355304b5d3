package interp

import "github.com/cwbudde/golox/internal/ast"

// Function is a user-defined function or method: its declaration, the
// environment it closed over at definition time, and whether it is a class
// initializer (which returns `this` instead of its normal result).
type Function struct {
	declaration   *ast.FunctionStmt
	closure       *Environment
	isInitializer bool
}

// NewFunction wraps a parsed function/method declaration as a callable
// closure over env.
func NewFunction(declaration *ast.FunctionStmt, closure *Environment, isInitializer bool) *Function {
	return &Function{declaration: declaration, closure: closure, isInitializer: isInitializer}
}

// Bind returns a new Function whose captured environment is a fresh child
// of the original with `this` defined to instance — used when a method is
// read off an instance via Get.
func (f *Function) Bind(instance *Instance) *Function {
	env := NewChildEnvironment(f.closure)
	env.Define("this", instance)
	return NewFunction(f.declaration, env, f.isInitializer)
}

func (f *Function) Arity() int {
	return len(f.declaration.Params)
}

func (f *Function) Call(in *Interpreter, args []any) (result any, err error) {
	env := NewChildEnvironment(f.closure)
	for i, param := range f.declaration.Params {
		env.Define(param.Lexeme, args[i])
	}

	outcome, err := in.executeBlock(f.declaration.Body, env)
	if err != nil {
		return nil, err
	}

	if f.isInitializer {
		return f.closure.GetAt(0, "this"), nil
	}
	if outcome.kind == outcomeReturn {
		return outcome.value, nil
	}
	return nil, nil
}

func (f *Function) String() string {
	return "<fn " + f.declaration.Name.Lexeme + ">"
}
