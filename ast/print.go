package ast

import "strings"

// Sprint returns a parenthesized prefix representation of an Expr node,
// e.g. "(- (* 10 10) 1)" for "10 * 10 - 1".
func Sprint(expr Expr) string {
	return astPrinter{}.print(expr)
}

// SprintStmt returns a parenthesized representation of a Stmt node
func SprintStmt(stmt Stmt) string {
	return stmt.Accept(astPrinter{}).(string)
}

type astPrinter struct{}

func (a astPrinter) print(expr Expr) string {
	return expr.Accept(a).(string)
}

func (a astPrinter) VisitExpressionStmt(stmt ExpressionStmt) interface{} {
	return a.parenthesize(";", stmt.Expr)
}

func (a astPrinter) VisitLetStmt(stmt LetStmt) interface{} {
	return a.parenthesize("let "+stmt.Name.Lexeme, stmt.Initializer)
}

func (a astPrinter) VisitPrintStmt(stmt PrintStmt) interface{} {
	return a.parenthesize("println", stmt.Expr)
}

func (a astPrinter) VisitVariableExpr(expr VariableExpr) interface{} {
	return expr.Name.Lexeme
}

func (a astPrinter) VisitBinaryExpr(expr BinaryExpr) interface{} {
	return a.parenthesize(expr.Operator.Lexeme, expr.Left, expr.Right)
}

func (a astPrinter) VisitGroupingExpr(expr GroupingExpr) interface{} {
	return a.parenthesize("group", expr.Expression)
}

func (a astPrinter) VisitLiteralExpr(expr LiteralExpr) interface{} {
	return expr.Value.String()
}

func (a astPrinter) VisitUnaryExpr(expr UnaryExpr) interface{} {
	return a.parenthesize(expr.Operator.Lexeme, expr.Right)
}

func (a astPrinter) parenthesize(name string, exprs ...Expr) string {
	var b strings.Builder

	b.WriteString("(" + name)
	for _, expr := range exprs {
		b.WriteString(" " + a.print(expr))
	}
	b.WriteString(")")

	return b.String()
}
