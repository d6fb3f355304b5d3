// Package interp implements the tree-walking evaluator: environment-chain
// variable lookup biased by the resolver's depth annotations, method
// binding, closures, and runtime error propagation.
package interp

import (
	"fmt"
	"io"

	"github.com/cwbudde/golox/internal/ast"
	"github.com/cwbudde/golox/internal/diag"
	"github.com/cwbudde/golox/internal/token"
)

// Interpreter walks a resolved Program's statements in order, evaluating
// expressions and performing print/assert side effects. Globals holds the
// single predefined `clock` binding; environment is the current frame
// pointer, reset to Globals at construction and pushed/popped by block
// execution and function calls.
type Interpreter struct {
	Globals     *Environment
	environment *Environment
	out         io.Writer

	// IsREPL, when true, echoes the value of a bare expression statement
	// (one that is neither an assignment nor a call) to the output writer.
	// Never set for
	// file-mode runs.
	IsREPL bool
}

// New creates an Interpreter writing `print` output to out.
func New(out io.Writer) *Interpreter {
	globals := NewEnvironment()
	globals.Define("clock", clockFn())
	return &Interpreter{Globals: globals, environment: globals, out: out}
}

// Interpret executes every statement in program in order. It returns the
// first RuntimeError encountered, which aborts execution immediately —
// scan/parse/resolve errors are handled by their own stages before
// Interpret is ever called.
func (in *Interpreter) Interpret(program *ast.Program) *diag.RuntimeError {
	for _, stmt := range program.Stmts {
		if _, err := in.execute(stmt); err != nil {
			return toRuntimeError(err)
		}
	}
	return nil
}

func toRuntimeError(err error) *diag.RuntimeError {
	if re, ok := err.(*diag.RuntimeError); ok {
		return re
	}
	return diag.NewRuntimeError(0, "%s", err.Error())
}

// ---- statement execution ----------------------------------------------------

func (in *Interpreter) execute(stmt ast.Stmt) (execOutcome, error) {
	switch s := stmt.(type) {
	case *ast.ExpressionStmt:
		return in.executeExpressionStmt(s)
	case *ast.PrintStmt:
		value, err := in.evaluate(s.Expression)
		if err != nil {
			return outcomeNormalValue, err
		}
		fmt.Fprintln(in.out, stringify(value))
		return outcomeNormalValue, nil
	case *ast.AssertStmt:
		return in.executeAssert(s)
	case *ast.VarStmt:
		var value any
		if s.Initializer != nil {
			var err error
			value, err = in.evaluate(s.Initializer)
			if err != nil {
				return outcomeNormalValue, err
			}
		}
		in.environment.Define(s.Name.Lexeme, value)
		return outcomeNormalValue, nil
	case *ast.BlockStmt:
		return in.executeBlock(s.Stmts, NewChildEnvironment(in.environment))
	case *ast.IfStmt:
		return in.executeIf(s)
	case *ast.WhileStmt:
		return in.executeWhile(s)
	case *ast.FunctionStmt:
		fn := NewFunction(s, in.environment, false)
		in.environment.Define(s.Name.Lexeme, fn)
		return outcomeNormalValue, nil
	case *ast.ReturnStmt:
		var value any
		if s.Value != nil {
			var err error
			value, err = in.evaluate(s.Value)
			if err != nil {
				return outcomeNormalValue, err
			}
		}
		return execOutcome{kind: outcomeReturn, value: value}, nil
	case *ast.ClassStmt:
		return in.executeClass(s)
	default:
		panic("interp: unhandled statement type")
	}
}

func (in *Interpreter) executeExpressionStmt(s *ast.ExpressionStmt) (execOutcome, error) {
	value, err := in.evaluate(s.Expression)
	if err != nil {
		return outcomeNormalValue, err
	}
	if in.IsREPL {
		switch s.Expression.(type) {
		case *ast.Assign, *ast.Call, *ast.Set:
			// Not echoed: the statement's purpose is the side effect, not
			// the value it happens to produce.
		default:
			fmt.Fprintln(in.out, stringify(value))
		}
	}
	return outcomeNormalValue, nil
}

func (in *Interpreter) executeAssert(s *ast.AssertStmt) (execOutcome, error) {
	value, err := in.evaluate(s.Expression)
	if err != nil {
		return outcomeNormalValue, err
	}
	if !isTruthy(value) {
		return outcomeNormalValue, diag.NewRuntimeError(s.Keyword.Line, "%s is not truthy", stringify(value))
	}
	return outcomeNormalValue, nil
}

func (in *Interpreter) executeIf(s *ast.IfStmt) (execOutcome, error) {
	cond, err := in.evaluate(s.Condition)
	if err != nil {
		return outcomeNormalValue, err
	}
	if isTruthy(cond) {
		return in.execute(s.Then)
	}
	if s.Else != nil {
		return in.execute(s.Else)
	}
	return outcomeNormalValue, nil
}

func (in *Interpreter) executeWhile(s *ast.WhileStmt) (execOutcome, error) {
	for {
		cond, err := in.evaluate(s.Condition)
		if err != nil {
			return outcomeNormalValue, err
		}
		if !isTruthy(cond) {
			return outcomeNormalValue, nil
		}
		outcome, err := in.execute(s.Body)
		if err != nil || outcome.kind == outcomeReturn {
			return outcome, err
		}
	}
}

func (in *Interpreter) executeClass(s *ast.ClassStmt) (execOutcome, error) {
	var superclass *Class
	if s.Superclass != nil {
		value, err := in.evaluate(s.Superclass)
		if err != nil {
			return outcomeNormalValue, err
		}
		class, ok := value.(*Class)
		if !ok {
			return outcomeNormalValue, diag.NewRuntimeError(s.Superclass.Name.Line, "Superclass must be a class.")
		}
		superclass = class
	}

	in.environment.Define(s.Name.Lexeme, nil)

	if s.Superclass != nil {
		in.environment = NewChildEnvironment(in.environment)
		in.environment.Define("super", superclass)
	}

	methods := make(map[string]*Function, len(s.Methods))
	for _, method := range s.Methods {
		isInitializer := method.Name.Lexeme == "init"
		methods[method.Name.Lexeme] = NewFunction(method, in.environment, isInitializer)
	}

	class := NewClass(s.Name.Lexeme, superclass, methods)

	if s.Superclass != nil {
		in.environment = in.environment.parent
	}

	if err := in.environment.Assign(s.Name.Lexeme, class); err != nil {
		return outcomeNormalValue, err
	}
	return outcomeNormalValue, nil
}

// executeBlock runs stmts under env, restoring the interpreter's previous
// environment on every exit path — normal completion, a Return unwind, or a
// runtime error.
func (in *Interpreter) executeBlock(stmts []ast.Stmt, env *Environment) (execOutcome, error) {
	previous := in.environment
	in.environment = env
	defer func() { in.environment = previous }()

	for _, stmt := range stmts {
		outcome, err := in.execute(stmt)
		if err != nil || outcome.kind == outcomeReturn {
			return outcome, err
		}
	}
	return outcomeNormalValue, nil
}

// ---- expression evaluation --------------------------------------------------

func (in *Interpreter) evaluate(expr ast.Expr) (any, error) {
	switch e := expr.(type) {
	case *ast.Literal:
		return e.Value, nil
	case *ast.Grouping:
		return in.evaluate(e.Inner)
	case *ast.Unary:
		return in.evaluateUnary(e)
	case *ast.Binary:
		return in.evaluateBinary(e)
	case *ast.Logical:
		return in.evaluateLogical(e)
	case *ast.Variable:
		return in.lookupVariable(e.Name, e.VarRef)
	case *ast.Assign:
		return in.evaluateAssign(e)
	case *ast.Call:
		return in.evaluateCall(e)
	case *ast.Get:
		return in.evaluateGet(e)
	case *ast.Set:
		return in.evaluateSet(e)
	case *ast.This:
		return in.lookupVariable(e.Keyword, e.VarRef)
	case *ast.Super:
		return in.evaluateSuper(e)
	default:
		panic("interp: unhandled expression type")
	}
}

// lookupVariable reads name via the resolver's recorded depth if one
// exists, otherwise falls through to the global environment.
func (in *Interpreter) lookupVariable(name token.Token, ref ast.VarRef) (any, error) {
	if ref.Resolved() {
		return in.environment.GetAt(ref.Depth, name.Lexeme), nil
	}
	value, err := in.Globals.Get(name.Lexeme)
	if err != nil {
		return nil, diag.NewRuntimeError(name.Line, "%s", err.Error())
	}
	return value, nil
}

func (in *Interpreter) evaluateAssign(e *ast.Assign) (any, error) {
	value, err := in.evaluate(e.Value)
	if err != nil {
		return nil, err
	}
	if e.Resolved() {
		in.environment.AssignAt(e.Depth, e.Name.Lexeme, value)
	} else if err := in.Globals.Assign(e.Name.Lexeme, value); err != nil {
		return nil, diag.NewRuntimeError(e.Name.Line, "%s", err.Error())
	}
	return value, nil
}

func (in *Interpreter) evaluateUnary(e *ast.Unary) (any, error) {
	right, err := in.evaluate(e.Right)
	if err != nil {
		return nil, err
	}
	switch e.Op.Kind {
	case token.MINUS:
		n, ok := right.(float64)
		if !ok {
			return nil, diag.NewRuntimeError(e.Op.Line, "Operand must be a number.")
		}
		return -n, nil
	case token.BANG:
		return !isTruthy(right), nil
	default:
		panic("interp: unhandled unary operator")
	}
}

func (in *Interpreter) evaluateLogical(e *ast.Logical) (any, error) {
	left, err := in.evaluate(e.Left)
	if err != nil {
		return nil, err
	}
	if e.Op.Kind == token.OR {
		if isTruthy(left) {
			return left, nil
		}
	} else {
		if !isTruthy(left) {
			return left, nil
		}
	}
	return in.evaluate(e.Right)
}

func (in *Interpreter) evaluateBinary(e *ast.Binary) (any, error) {
	left, err := in.evaluate(e.Left)
	if err != nil {
		return nil, err
	}
	right, err := in.evaluate(e.Right)
	if err != nil {
		return nil, err
	}

	switch e.Op.Kind {
	case token.PLUS:
		return addValues(left, right, e.Op.Line)
	case token.MINUS:
		return numericBinary(left, right, e.Op.Line, func(a, b float64) any { return a - b })
	case token.STAR:
		return numericBinary(left, right, e.Op.Line, func(a, b float64) any { return a * b })
	case token.SLASH:
		return numericBinary(left, right, e.Op.Line, func(a, b float64) any { return a / b })
	case token.GREATER:
		return numericBinary(left, right, e.Op.Line, func(a, b float64) any { return a > b })
	case token.GREATER_EQUAL:
		return numericBinary(left, right, e.Op.Line, func(a, b float64) any { return a >= b })
	case token.LESS:
		return numericBinary(left, right, e.Op.Line, func(a, b float64) any { return a < b })
	case token.LESS_EQUAL:
		return numericBinary(left, right, e.Op.Line, func(a, b float64) any { return a <= b })
	case token.EQUAL_EQUAL:
		return valuesEqual(left, right), nil
	case token.BANG_EQUAL:
		return !valuesEqual(left, right), nil
	default:
		panic("interp: unhandled binary operator")
	}
}

// addValues implements `+`: (Number,Number) addition, (String,String)
// concatenation, anything else a runtime error. No coercion, no
// numeric-string mixing.
func addValues(left, right any, line int) (any, error) {
	if ln, ok := left.(float64); ok {
		if rn, ok := right.(float64); ok {
			return ln + rn, nil
		}
	}
	if ls, ok := left.(string); ok {
		if rs, ok := right.(string); ok {
			return ls + rs, nil
		}
	}
	return nil, diag.NewRuntimeError(line, "Operands must be two numbers or two strings.")
}

func numericBinary(left, right any, line int, op func(a, b float64) any) (any, error) {
	ln, lok := left.(float64)
	rn, rok := right.(float64)
	if !lok || !rok {
		return nil, diag.NewRuntimeError(line, "Operands must be numbers.")
	}
	return op(ln, rn), nil
}

func (in *Interpreter) evaluateCall(e *ast.Call) (any, error) {
	callee, err := in.evaluate(e.Callee)
	if err != nil {
		return nil, err
	}

	args := make([]any, len(e.Args))
	for i, a := range e.Args {
		v, err := in.evaluate(a)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}

	callable, ok := callee.(Callable)
	if !ok {
		return nil, diag.NewRuntimeError(e.Paren.Line, "Can only call functions and classes.")
	}
	if len(args) != callable.Arity() {
		return nil, diag.NewRuntimeError(e.Paren.Line, "Expected %d arguments but got %d.", callable.Arity(), len(args))
	}
	return callable.Call(in, args)
}

func (in *Interpreter) evaluateGet(e *ast.Get) (any, error) {
	object, err := in.evaluate(e.Object)
	if err != nil {
		return nil, err
	}
	instance, ok := object.(*Instance)
	if !ok {
		return nil, diag.NewRuntimeError(e.Name.Line, "Only instances have properties.")
	}
	value, err := instance.Get(e.Name.Lexeme)
	if err != nil {
		return nil, diag.NewRuntimeError(e.Name.Line, "%s", err.Error())
	}
	return value, nil
}

func (in *Interpreter) evaluateSet(e *ast.Set) (any, error) {
	object, err := in.evaluate(e.Object)
	if err != nil {
		return nil, err
	}
	instance, ok := object.(*Instance)
	if !ok {
		return nil, diag.NewRuntimeError(e.Name.Line, "Only instances have fields.")
	}
	value, err := in.evaluate(e.Value)
	if err != nil {
		return nil, err
	}
	instance.Set(e.Name.Lexeme, value)
	return value, nil
}

// evaluateSuper resolves `super.method`: the superclass is fetched from the
// closure at the resolved depth, the current instance from one level
// shallower (where `this` lives), and the method is bound to that instance.
func (in *Interpreter) evaluateSuper(e *ast.Super) (any, error) {
	distance := e.Depth
	superclass := in.environment.GetAt(distance, "super").(*Class)
	instance := in.environment.GetAt(distance-1, "this").(*Instance)

	method, ok := superclass.FindMethod(e.Method.Lexeme)
	if !ok {
		return nil, diag.NewRuntimeError(e.Method.Line, "Undefined property '%s'.", e.Method.Lexeme)
	}
	return method.Bind(instance), nil
}
