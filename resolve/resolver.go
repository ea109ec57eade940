package resolve

import (
	"fmt"

	"github.com/chidiwilliams/lm/ast"
)

// Unbound describes a variable used before any
// declaration of its name
type Unbound struct {
	Name ast.Token
}

func (u Unbound) String() string {
	return fmt.Sprintf("[line %d] Warning: '%s' is used before it is declared.", u.Name.Line, u.Name.Lexeme)
}

// Resolution is the result of resolving a program
type Resolution struct {
	// Bindings maps the node id of each resolved VariableExpr
	// to the node id of the LetStmt that bound it
	Bindings map[int]int
	// Unbound lists the uses that no earlier declaration binds
	Unbound []Unbound
}

// Predeclared is the declaration id recorded for names
// that were bound before the resolved statements ran
const Predeclared = -1

// Resolver records, for every variable access in a program, the
// declaration the access will read at runtime. Declarations are
// visible from the statement after them until the same name is
// declared again.
type Resolver struct {
	// declared maps each name to the id of its latest declaration
	declared   map[string]int
	resolution Resolution
}

// NewResolver returns a new Resolver. Names in predeclared are treated
// as already bound, e.g. by earlier lines of a REPL session.
func NewResolver(predeclared ...string) *Resolver {
	r := &Resolver{
		declared:   make(map[string]int, len(predeclared)),
		resolution: Resolution{Bindings: make(map[int]int)},
	}
	for _, name := range predeclared {
		r.declared[name] = Predeclared
	}
	return r
}

// ResolveStmts resolves all the variable accesses in a list of statements
// produced by a single parse
func (r *Resolver) ResolveStmts(statements []ast.Stmt) Resolution {
	for _, statement := range statements {
		statement.Accept(r)
	}
	return r.resolution
}

func (r *Resolver) resolveExpr(expr ast.Expr) {
	expr.Accept(r)
}

func (r *Resolver) VisitExpressionStmt(stmt ast.ExpressionStmt) interface{} {
	r.resolveExpr(stmt.Expr)
	return nil
}

// VisitLetStmt resolves the initializer before declaring the
// name, so "let a = a;" reads the previous binding of a
func (r *Resolver) VisitLetStmt(stmt ast.LetStmt) interface{} {
	r.resolveExpr(stmt.Initializer)
	r.declared[stmt.Name.Lexeme] = stmt.ID
	return nil
}

func (r *Resolver) VisitPrintStmt(stmt ast.PrintStmt) interface{} {
	r.resolveExpr(stmt.Expr)
	return nil
}

func (r *Resolver) VisitBinaryExpr(expr ast.BinaryExpr) interface{} {
	r.resolveExpr(expr.Left)
	r.resolveExpr(expr.Right)
	return nil
}

func (r *Resolver) VisitGroupingExpr(expr ast.GroupingExpr) interface{} {
	r.resolveExpr(expr.Expression)
	return nil
}

func (r *Resolver) VisitLiteralExpr(_ ast.LiteralExpr) interface{} {
	return nil
}

func (r *Resolver) VisitUnaryExpr(expr ast.UnaryExpr) interface{} {
	r.resolveExpr(expr.Right)
	return nil
}

func (r *Resolver) VisitVariableExpr(expr ast.VariableExpr) interface{} {
	if decl, ok := r.declared[expr.Name.Lexeme]; ok {
		r.resolution.Bindings[expr.ID] = decl
	} else {
		r.resolution.Unbound = append(r.resolution.Unbound, Unbound{Name: expr.Name})
	}
	return nil
}
