package ast

import (
	"fmt"
	"strings"

	"github.com/cwbudde/golox/internal/token"
)

// Literal is a compile-time constant: a number, string, boolean, or nil.
// Value holds the decoded Go value (float64, string, bool, or nil).
type Literal struct {
	Value any
}

func (l *Literal) exprNode() {}
func (l *Literal) String() string {
	if l.Value == nil {
		return "nil"
	}
	return fmt.Sprintf("%v", l.Value)
}

// Grouping is a parenthesized sub-expression, kept as its own node so a
// printer can reproduce the source grouping.
type Grouping struct {
	Inner Expr
}

func (g *Grouping) exprNode()      {}
func (g *Grouping) String() string { return "(group " + g.Inner.String() + ")" }

// Unary is a prefix operator application: `-x` or `!x`.
type Unary struct {
	Op    token.Token
	Right Expr
}

func (u *Unary) exprNode()      {}
func (u *Unary) String() string { return "(" + u.Op.Lexeme + " " + u.Right.String() + ")" }

// Binary is an infix arithmetic or comparison operator application.
type Binary struct {
	Left  Expr
	Op    token.Token
	Right Expr
}

func (b *Binary) exprNode() {}
func (b *Binary) String() string {
	return "(" + b.Op.Lexeme + " " + b.Left.String() + " " + b.Right.String() + ")"
}

// Logical is `and`/`or`, kept distinct from Binary because it short-circuits
// instead of always evaluating both operands.
type Logical struct {
	Left  Expr
	Op    token.Token
	Right Expr
}

func (l *Logical) exprNode() {}
func (l *Logical) String() string {
	return "(" + l.Op.Lexeme + " " + l.Left.String() + " " + l.Right.String() + ")"
}

// Variable is a read of a named binding. The resolver annotates VarRef.Depth
// after the parser produces this node.
type Variable struct {
	VarRef
	Name token.Token
}

func (v *Variable) exprNode()      {}
func (v *Variable) String() string { return v.Name.Lexeme }

// Assign is `name = value`. Like Variable, it carries its own resolved
// depth for the write side.
type Assign struct {
	VarRef
	Name  token.Token
	Value Expr
}

func (a *Assign) exprNode() {}
func (a *Assign) String() string {
	return "(= " + a.Name.Lexeme + " " + a.Value.String() + ")"
}

// Call is a function/method/class invocation. Paren is the closing `)`
// token, kept so runtime errors (arity mismatch, non-callable callee) can
// report the call site's line.
type Call struct {
	Callee Expr
	Paren  token.Token
	Args   []Expr
}

func (c *Call) exprNode() {}
func (c *Call) String() string {
	args := make([]string, len(c.Args))
	for i, a := range c.Args {
		args[i] = a.String()
	}
	return "(call " + c.Callee.String() + " " + strings.Join(args, " ") + ")"
}

// Get is a property/method read: `object.name`.
type Get struct {
	Object Expr
	Name   token.Token
}

func (g *Get) exprNode()      {}
func (g *Get) String() string { return "(get " + g.Object.String() + " " + g.Name.Lexeme + ")" }

// Set is a property write: `object.name = value`. The parser only produces
// this by rewriting an Assign whose target parsed as a Get.
type Set struct {
	Object Expr
	Name   token.Token
	Value  Expr
}

func (s *Set) exprNode() {}
func (s *Set) String() string {
	return "(set " + s.Object.String() + " " + s.Name.Lexeme + " " + s.Value.String() + ")"
}

// This is a `this` reference inside a method body.
type This struct {
	VarRef
	Keyword token.Token
}

func (t *This) exprNode()      {}
func (t *This) String() string { return "this" }

// Super is a `super.method` reference inside a subclass method body.
type Super struct {
	VarRef
	Keyword token.Token
	Method  token.Token
}

func (s *Super) exprNode()      {}
func (s *Super) String() string { return "(super " + s.Method.Lexeme + ")" }

// NewVariable, NewAssign, NewThis, and NewSuper initialize the embedded
// VarRef to its unresolved state (-1) so the resolver has a well-defined
// starting point and a node the resolver never visits still reads as
// "global" rather than as a zero-value false depth of 0.
func NewVariable(name token.Token) *Variable { return &Variable{VarRef: newVarRef(), Name: name} }

func NewAssign(name token.Token, value Expr) *Assign {
	return &Assign{VarRef: newVarRef(), Name: name, Value: value}
}

func NewThis(keyword token.Token) *This { return &This{VarRef: newVarRef(), Keyword: keyword} }

func NewSuper(keyword, method token.Token) *Super {
	return &Super{VarRef: newVarRef(), Keyword: keyword, Method: method}
}
