package ast

import (
	"strings"

	"github.com/cwbudde/golox/internal/token"
)

// ExpressionStmt evaluates an expression for its side effects and discards
// the result (except in the REPL, see cmd/golox/cmd/run.go).
type ExpressionStmt struct {
	Expression Expr
}

func (s *ExpressionStmt) stmtNode()      {}
func (s *ExpressionStmt) String() string { return s.Expression.String() + ";" }

// PrintStmt evaluates an expression and writes its formatted value followed
// by a newline.
type PrintStmt struct {
	Expression Expr
}

func (s *PrintStmt) stmtNode()      {}
func (s *PrintStmt) String() string { return "print " + s.Expression.String() + ";" }

// AssertStmt evaluates an expression and raises a runtime error if it is
// falsy.
type AssertStmt struct {
	Keyword    token.Token
	Expression Expr
}

func (s *AssertStmt) stmtNode()      {}
func (s *AssertStmt) String() string { return "assert " + s.Expression.String() + ";" }

// VarStmt declares a new variable, optionally with an initializer
// expression. Initializer is nil for `var x;`.
type VarStmt struct {
	Name        token.Token
	Initializer Expr
}

func (s *VarStmt) stmtNode() {}
func (s *VarStmt) String() string {
	if s.Initializer == nil {
		return "var " + s.Name.Lexeme + ";"
	}
	return "var " + s.Name.Lexeme + " = " + s.Initializer.String() + ";"
}

// BlockStmt is a `{ ... }` sequence that introduces a new lexical scope.
type BlockStmt struct {
	Stmts []Stmt
}

func (s *BlockStmt) stmtNode() {}
func (s *BlockStmt) String() string {
	parts := make([]string, len(s.Stmts))
	for i, st := range s.Stmts {
		parts[i] = st.String()
	}
	return "{" + strings.Join(parts, " ") + "}"
}

// IfStmt is a conditional. Else is nil when there is no `else` clause.
type IfStmt struct {
	Condition Expr
	Then      Stmt
	Else      Stmt
}

func (s *IfStmt) stmtNode() {}
func (s *IfStmt) String() string {
	out := "if (" + s.Condition.String() + ") " + s.Then.String()
	if s.Else != nil {
		out += " else " + s.Else.String()
	}
	return out
}

// WhileStmt is a condition-guarded loop. ForStmt has no dedicated node: the
// parser desugars `for` directly into a WhileStmt, wrapped in a BlockStmt
// when the loop has an initializer.
type WhileStmt struct {
	Condition Expr
	Body      Stmt
}

func (s *WhileStmt) stmtNode() {}
func (s *WhileStmt) String() string {
	return "while (" + s.Condition.String() + ") " + s.Body.String()
}

// FunctionStmt declares a named function or method. Body is always a
// BlockStmt's statement list.
type FunctionStmt struct {
	Name   token.Token
	Params []token.Token
	Body   []Stmt
}

func (s *FunctionStmt) stmtNode() {}
func (s *FunctionStmt) String() string {
	params := make([]string, len(s.Params))
	for i, p := range s.Params {
		params[i] = p.Lexeme
	}
	return "fun " + s.Name.Lexeme + "(" + strings.Join(params, ", ") + ") <body>"
}

// ReturnStmt exits the enclosing function call, optionally carrying a
// value. Value is nil for a bare `return;`.
type ReturnStmt struct {
	Keyword token.Token
	Value   Expr
}

func (s *ReturnStmt) stmtNode() {}
func (s *ReturnStmt) String() string {
	if s.Value == nil {
		return "return;"
	}
	return "return " + s.Value.String() + ";"
}

// ClassStmt declares a class, its optional superclass, and its methods.
// Superclass is nil for a class with no `< Base` clause.
type ClassStmt struct {
	Name       token.Token
	Superclass *Variable
	Methods    []*FunctionStmt
}

func (s *ClassStmt) stmtNode() {}
func (s *ClassStmt) String() string {
	out := "class " + s.Name.Lexeme
	if s.Superclass != nil {
		out += " < " + s.Superclass.Name.Lexeme
	}
	return out + " { ... }"
}
