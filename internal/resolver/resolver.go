// Package resolver implements the static pass that walks a parsed Program
// once, assigning every variable reference its lexical scope depth and
// diagnosing scope-related errors before the interpreter ever runs.
package resolver

import (
	"github.com/cwbudde/golox/internal/ast"
	"github.com/cwbudde/golox/internal/diag"
	"github.com/cwbudde/golox/internal/token"
)

type functionKind int

const (
	fkNone functionKind = iota
	fkFunction
	fkMethod
	fkInitializer
)

type classKind int

const (
	ckNone classKind = iota
	ckClass
	ckSubclass
)

// Resolver carries the ambient state the static pass needs: a scope stack
// of name -> defined? maps (globals are never pushed onto this stack), and
// the kind of function/class currently being resolved, used to diagnose
// `return`, `this`, and `super` misuse.
type Resolver struct {
	reporter *diag.Reporter
	scopes   []map[string]bool

	currentFunction functionKind
	currentClass    classKind
}

// New creates a Resolver reporting diagnostics to reporter.
func New(reporter *diag.Reporter) *Resolver {
	return &Resolver{reporter: reporter}
}

// Resolve walks every top-level statement of the program, annotating
// variable references in place. Callers should check reporter.HasErrors()
// afterward; the interpreter must not run if the resolver reported any.
func (r *Resolver) Resolve(program *ast.Program) {
	r.resolveStmts(program.Stmts)
}

// ---- scopes ---------------------------------------------------------------

func (r *Resolver) beginScope() {
	r.scopes = append(r.scopes, map[string]bool{})
}

func (r *Resolver) endScope() {
	r.scopes = r.scopes[:len(r.scopes)-1]
}

func (r *Resolver) declare(name token.Token) {
	if len(r.scopes) == 0 {
		return
	}
	scope := r.scopes[len(r.scopes)-1]
	if _, ok := scope[name.Lexeme]; ok {
		r.reportAt(name, "Already a variable with this name in this scope.")
	}
	scope[name.Lexeme] = false
}

func (r *Resolver) define(name token.Token) {
	if len(r.scopes) == 0 {
		return
	}
	r.scopes[len(r.scopes)-1][name.Lexeme] = true
}

// resolveLocal walks the scope stack top-down and, on the first frame that
// binds name, records depth = stackSize-1-index directly on ref via set.
// If name is never found, ref is left unresolved (depth -1), meaning
// "global" to the interpreter.
func (r *Resolver) resolveLocal(set func(depth int), name string) {
	for i := len(r.scopes) - 1; i >= 0; i-- {
		if _, ok := r.scopes[i][name]; ok {
			set(len(r.scopes) - 1 - i)
			return
		}
	}
}

func (r *Resolver) reportAt(tok token.Token, message string) {
	r.reporter.ReportAt(diag.StageResolve, tok.Line, tok.Lexeme, message)
}

// ---- statements -------------------------------------------------------------

func (r *Resolver) resolveStmts(stmts []ast.Stmt) {
	for _, stmt := range stmts {
		r.resolveStmt(stmt)
	}
}

func (r *Resolver) resolveStmt(stmt ast.Stmt) {
	switch s := stmt.(type) {
	case *ast.ExpressionStmt:
		r.resolveExpr(s.Expression)
	case *ast.PrintStmt:
		r.resolveExpr(s.Expression)
	case *ast.AssertStmt:
		r.resolveExpr(s.Expression)
	case *ast.VarStmt:
		r.declare(s.Name)
		if s.Initializer != nil {
			r.resolveExpr(s.Initializer)
		}
		r.define(s.Name)
	case *ast.BlockStmt:
		r.beginScope()
		r.resolveStmts(s.Stmts)
		r.endScope()
	case *ast.IfStmt:
		r.resolveExpr(s.Condition)
		r.resolveStmt(s.Then)
		if s.Else != nil {
			r.resolveStmt(s.Else)
		}
	case *ast.WhileStmt:
		r.resolveExpr(s.Condition)
		r.resolveStmt(s.Body)
	case *ast.FunctionStmt:
		r.declare(s.Name)
		r.define(s.Name)
		r.resolveFunction(s, fkFunction)
	case *ast.ReturnStmt:
		if r.currentFunction == fkNone {
			r.reportAt(s.Keyword, "Can't return from top-level code.")
		}
		if s.Value != nil {
			if r.currentFunction == fkInitializer {
				r.reportAt(s.Keyword, "Can't return a value from an initializer.")
			}
			r.resolveExpr(s.Value)
		}
	case *ast.ClassStmt:
		r.resolveClass(s)
	default:
		panic("resolver: unhandled statement type")
	}
}

func (r *Resolver) resolveFunction(fn *ast.FunctionStmt, kind functionKind) {
	enclosingFunction := r.currentFunction
	r.currentFunction = kind

	r.beginScope()
	for _, param := range fn.Params {
		r.declare(param)
		r.define(param)
	}
	r.resolveStmts(fn.Body)
	r.endScope()

	r.currentFunction = enclosingFunction
}

func (r *Resolver) resolveClass(stmt *ast.ClassStmt) {
	enclosingClass := r.currentClass
	r.currentClass = ckClass

	r.declare(stmt.Name)
	r.define(stmt.Name)

	if stmt.Superclass != nil {
		if stmt.Superclass.Name.Lexeme == stmt.Name.Lexeme {
			r.reportAt(stmt.Superclass.Name, "A class can't inherit from itself.")
		}
		r.currentClass = ckSubclass
		r.resolveExpr(stmt.Superclass)

		r.beginScope()
		r.scopes[len(r.scopes)-1]["super"] = true
	}

	r.beginScope()
	r.scopes[len(r.scopes)-1]["this"] = true

	for _, method := range stmt.Methods {
		kind := fkMethod
		if method.Name.Lexeme == "init" {
			kind = fkInitializer
		}
		r.resolveFunction(method, kind)
	}

	r.endScope()

	if stmt.Superclass != nil {
		r.endScope()
	}

	r.currentClass = enclosingClass
}

// ---- expressions ------------------------------------------------------------

func (r *Resolver) resolveExpr(expr ast.Expr) {
	switch e := expr.(type) {
	case *ast.Literal:
		// no children
	case *ast.Grouping:
		r.resolveExpr(e.Inner)
	case *ast.Unary:
		r.resolveExpr(e.Right)
	case *ast.Binary:
		r.resolveExpr(e.Left)
		r.resolveExpr(e.Right)
	case *ast.Logical:
		r.resolveExpr(e.Left)
		r.resolveExpr(e.Right)
	case *ast.Variable:
		if len(r.scopes) > 0 {
			if defined, ok := r.scopes[len(r.scopes)-1][e.Name.Lexeme]; ok && !defined {
				r.reportAt(e.Name, "Can't read local variable in its own initializer.")
			}
		}
		r.resolveLocal(func(d int) { e.Depth = d }, e.Name.Lexeme)
	case *ast.Assign:
		r.resolveExpr(e.Value)
		r.resolveLocal(func(d int) { e.Depth = d }, e.Name.Lexeme)
	case *ast.Call:
		r.resolveExpr(e.Callee)
		for _, a := range e.Args {
			r.resolveExpr(a)
		}
	case *ast.Get:
		r.resolveExpr(e.Object)
	case *ast.Set:
		r.resolveExpr(e.Value)
		r.resolveExpr(e.Object)
	case *ast.This:
		if r.currentClass == ckNone {
			r.reportAt(e.Keyword, "Can't use 'this' outside of a class.")
			return
		}
		r.resolveLocal(func(d int) { e.Depth = d }, "this")
	case *ast.Super:
		switch r.currentClass {
		case ckNone:
			r.reportAt(e.Keyword, "Can't use 'super' outside of a class.")
		case ckClass:
			r.reportAt(e.Keyword, "Can't use 'super' in a class with no superclass.")
		}
		r.resolveLocal(func(d int) { e.Depth = d }, "super")
	default:
		panic("resolver: unhandled expression type")
	}
}
