package ast

import (
	"fmt"
	"strings"
)

// Dump renders an indented tree view of a Program, for the `golox parse
// --ast` debug command. Kept small and internal rather than a separate
// binary.
func Dump(program *Program) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Program (%d statements)\n", len(program.Stmts))
	for _, stmt := range program.Stmts {
		dumpStmt(&sb, stmt, 1)
	}
	return sb.String()
}

func indent(sb *strings.Builder, depth int) {
	sb.WriteString(strings.Repeat("  ", depth))
}

func dumpStmt(sb *strings.Builder, stmt Stmt, depth int) {
	indent(sb, depth)
	switch s := stmt.(type) {
	case *ExpressionStmt:
		sb.WriteString("ExpressionStmt\n")
		dumpExpr(sb, s.Expression, depth+1)
	case *PrintStmt:
		sb.WriteString("PrintStmt\n")
		dumpExpr(sb, s.Expression, depth+1)
	case *AssertStmt:
		sb.WriteString("AssertStmt\n")
		dumpExpr(sb, s.Expression, depth+1)
	case *VarStmt:
		fmt.Fprintf(sb, "VarStmt %s\n", s.Name.Lexeme)
		if s.Initializer != nil {
			dumpExpr(sb, s.Initializer, depth+1)
		}
	case *BlockStmt:
		fmt.Fprintf(sb, "BlockStmt (%d statements)\n", len(s.Stmts))
		for _, inner := range s.Stmts {
			dumpStmt(sb, inner, depth+1)
		}
	case *IfStmt:
		sb.WriteString("IfStmt\n")
		dumpExpr(sb, s.Condition, depth+1)
		dumpStmt(sb, s.Then, depth+1)
		if s.Else != nil {
			dumpStmt(sb, s.Else, depth+1)
		}
	case *WhileStmt:
		sb.WriteString("WhileStmt\n")
		dumpExpr(sb, s.Condition, depth+1)
		dumpStmt(sb, s.Body, depth+1)
	case *FunctionStmt:
		fmt.Fprintf(sb, "FunctionStmt %s (%d params)\n", s.Name.Lexeme, len(s.Params))
		for _, inner := range s.Body {
			dumpStmt(sb, inner, depth+1)
		}
	case *ReturnStmt:
		sb.WriteString("ReturnStmt\n")
		if s.Value != nil {
			dumpExpr(sb, s.Value, depth+1)
		}
	case *ClassStmt:
		name := s.Name.Lexeme
		if s.Superclass != nil {
			name += " < " + s.Superclass.Name.Lexeme
		}
		fmt.Fprintf(sb, "ClassStmt %s (%d methods)\n", name, len(s.Methods))
		for _, m := range s.Methods {
			dumpStmt(sb, m, depth+1)
		}
	default:
		fmt.Fprintf(sb, "%T: %v\n", stmt, stmt)
	}
}

func dumpExpr(sb *strings.Builder, expr Expr, depth int) {
	indent(sb, depth)
	switch e := expr.(type) {
	case *Literal:
		fmt.Fprintf(sb, "Literal: %v\n", e.Value)
	case *Grouping:
		sb.WriteString("Grouping\n")
		dumpExpr(sb, e.Inner, depth+1)
	case *Unary:
		fmt.Fprintf(sb, "Unary (%s)\n", e.Op.Lexeme)
		dumpExpr(sb, e.Right, depth+1)
	case *Binary:
		fmt.Fprintf(sb, "Binary (%s)\n", e.Op.Lexeme)
		dumpExpr(sb, e.Left, depth+1)
		dumpExpr(sb, e.Right, depth+1)
	case *Logical:
		fmt.Fprintf(sb, "Logical (%s)\n", e.Op.Lexeme)
		dumpExpr(sb, e.Left, depth+1)
		dumpExpr(sb, e.Right, depth+1)
	case *Variable:
		fmt.Fprintf(sb, "Variable: %s (depth=%d)\n", e.Name.Lexeme, e.Depth)
	case *Assign:
		fmt.Fprintf(sb, "Assign: %s (depth=%d)\n", e.Name.Lexeme, e.Depth)
		dumpExpr(sb, e.Value, depth+1)
	case *Call:
		fmt.Fprintf(sb, "Call (%d args)\n", len(e.Args))
		dumpExpr(sb, e.Callee, depth+1)
		for _, a := range e.Args {
			dumpExpr(sb, a, depth+1)
		}
	case *Get:
		fmt.Fprintf(sb, "Get: %s\n", e.Name.Lexeme)
		dumpExpr(sb, e.Object, depth+1)
	case *Set:
		fmt.Fprintf(sb, "Set: %s\n", e.Name.Lexeme)
		dumpExpr(sb, e.Object, depth+1)
		dumpExpr(sb, e.Value, depth+1)
	case *This:
		fmt.Fprintf(sb, "This (depth=%d)\n", e.Depth)
	case *Super:
		fmt.Fprintf(sb, "Super: %s (depth=%d)\n", e.Method.Lexeme, e.Depth)
	default:
		fmt.Fprintf(sb, "%T: %v\n", expr, expr)
	}
}
