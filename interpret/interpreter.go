package interpret

import (
	"errors"
	"fmt"
	"io"

	"github.com/chidiwilliams/lm/ast"
	"github.com/chidiwilliams/lm/env"
)

var (
	// ErrUndefinedVariable is wrapped by errors for unbound names
	ErrUndefinedVariable = errors.New("undefined variable")
	// ErrOperands is wrapped by errors for operators applied
	// to a pairing of operand kinds they do not support
	ErrOperands = errors.New("unsupported operands")
	// ErrInvalidUnary is wrapped by errors for unary
	// operators applied to an unsupported operand
	ErrInvalidUnary = errors.New("invalid unary operator")
)

// RuntimeError is an error raised while executing a program
type RuntimeError struct {
	Token ast.Token
	Msg   string
	Err   error
}

// Error renders the message followed by the source line. Errors not
// tied to a token, such as output failures, have no line.
func (r *RuntimeError) Error() string {
	if r.Token.Line == 0 {
		return r.Msg
	}
	return fmt.Sprintf("%s\n[line %d]", r.Msg, r.Token.Line)
}

func (r *RuntimeError) Unwrap() error {
	return r.Err
}

// Interpreter holds the environment and output
// of a program being executed
type Interpreter struct {
	environment *env.Environment
	// standard output
	stdOut io.Writer
}

// NewInterpreter sets up a new interpreter with an empty environment
// that prints to stdOut
func NewInterpreter(stdOut io.Writer) *Interpreter {
	return &Interpreter{environment: env.New(), stdOut: stdOut}
}

// Environment returns the interpreter's variable bindings
func (in *Interpreter) Environment() *env.Environment {
	return in.environment
}

// Interpret executes a list of statements in order within the interpreter's
// environment. It stops at the first runtime error and returns it; output
// already printed by earlier statements is kept.
func (in *Interpreter) Interpret(stmts []ast.Stmt) (err error) {
	defer in.recoverRuntimeError(&err)

	for _, statement := range stmts {
		in.execute(statement)
	}
	return nil
}

// Evaluate evaluates a single expression within the interpreter's environment
func (in *Interpreter) Evaluate(expr ast.Expr) (value ast.Value, err error) {
	defer in.recoverRuntimeError(&err)

	return in.evaluate(expr), nil
}

// recoverRuntimeError converts a RuntimeError panic into an error
// return. Any other panic is propagated.
func (in *Interpreter) recoverRuntimeError(err *error) {
	if r := recover(); r != nil {
		e, ok := r.(*RuntimeError)
		if !ok {
			panic(r)
		}
		*err = e
	}
}

func (in *Interpreter) error(token ast.Token, kind error, message string) {
	panic(&RuntimeError{Token: token, Msg: message, Err: kind})
}

func (in *Interpreter) execute(stmt ast.Stmt) {
	stmt.Accept(in)
}

func (in *Interpreter) evaluate(expr ast.Expr) ast.Value {
	return expr.Accept(in).(ast.Value)
}

func (in *Interpreter) VisitLetStmt(stmt ast.LetStmt) interface{} {
	val := in.evaluate(stmt.Initializer)
	in.environment.Define(stmt.Name.Lexeme, val)
	return nil
}

func (in *Interpreter) VisitExpressionStmt(stmt ast.ExpressionStmt) interface{} {
	in.evaluate(stmt.Expr)
	return nil
}

// VisitPrintStmt evaluates the statement's expression and prints
// its canonical form to the interpreter's standard output
func (in *Interpreter) VisitPrintStmt(stmt ast.PrintStmt) interface{} {
	value := in.evaluate(stmt.Expr)
	if _, err := io.WriteString(in.stdOut, value.String()+"\n"); err != nil {
		panic(&RuntimeError{Msg: "Could not write output: " + err.Error(), Err: err})
	}
	return nil
}

func (in *Interpreter) VisitVariableExpr(expr ast.VariableExpr) interface{} {
	val, err := in.environment.Get(expr.Name.Lexeme)
	if err != nil {
		in.error(expr.Name, ErrUndefinedVariable, fmt.Sprintf("Undefined variable '%s'.", expr.Name.Lexeme))
	}
	return val
}

func (in *Interpreter) VisitGroupingExpr(expr ast.GroupingExpr) interface{} {
	return in.evaluate(expr.Expression)
}

func (in *Interpreter) VisitLiteralExpr(expr ast.LiteralExpr) interface{} {
	return expr.Value
}

func (in *Interpreter) VisitUnaryExpr(expr ast.UnaryExpr) interface{} {
	right := in.evaluate(expr.Right)
	switch expr.Operator.TokenType {
	case ast.TokenMinus:
		if n, ok := right.(ast.Number); ok {
			return -n
		}
		in.error(expr.Operator, ErrOperands, fmt.Sprintf("Operand of '-' must be a number, got %#v.", right))
	case ast.TokenBang:
		if b, ok := right.(ast.Bool); ok {
			return !b
		}
	}
	in.error(expr.Operator, ErrInvalidUnary,
		fmt.Sprintf("'%s' is not a valid unary operator for %#v.", expr.Operator.Lexeme, right))
	return nil
}

// VisitBinaryExpr evaluates both operands left to right and
// applies the operator chosen by the kinds of the two values
func (in *Interpreter) VisitBinaryExpr(expr ast.BinaryExpr) interface{} {
	left := in.evaluate(expr.Left)
	right := in.evaluate(expr.Right)

	var (
		result ast.Value
		ok     bool
	)
	switch l := left.(type) {
	case ast.Number:
		if r, isNumber := right.(ast.Number); isNumber {
			result, ok = numberOp(expr.Operator.TokenType, l, r)
		}
	case ast.String:
		if r, isString := right.(ast.String); isString {
			result, ok = stringOp(expr.Operator.TokenType, l, r)
		}
	case ast.Bool:
		if r, isBool := right.(ast.Bool); isBool {
			result, ok = boolOp(expr.Operator.TokenType, l, r)
		}
	}

	if !ok {
		in.error(expr.Operator, ErrOperands, fmt.Sprintf("Operator '%s' is not implemented for operands %#v and %#v.",
			expr.Operator.Lexeme, left, right))
	}
	return result
}

func numberOp(op ast.TokenType, l, r ast.Number) (ast.Value, bool) {
	switch op {
	case ast.TokenPlus:
		return l + r, true
	case ast.TokenMinus:
		return l - r, true
	case ast.TokenStar:
		return l * r, true
	case ast.TokenSlash:
		// division by zero follows IEEE 754 and yields ±Inf or NaN
		return l / r, true
	case ast.TokenGreater:
		return ast.Bool(l > r), true
	case ast.TokenGreaterEqual:
		return ast.Bool(l >= r), true
	case ast.TokenLess:
		return ast.Bool(l < r), true
	case ast.TokenLessEqual:
		return ast.Bool(l <= r), true
	case ast.TokenEqualEqual:
		return ast.Bool(l == r), true
	case ast.TokenBangEqual:
		return ast.Bool(l != r), true
	}
	return nil, false
}

func stringOp(op ast.TokenType, l, r ast.String) (ast.Value, bool) {
	switch op {
	case ast.TokenPlus:
		return l + r, true
	case ast.TokenGreater:
		return ast.Bool(l > r), true
	case ast.TokenGreaterEqual:
		return ast.Bool(l >= r), true
	case ast.TokenLess:
		return ast.Bool(l < r), true
	case ast.TokenLessEqual:
		return ast.Bool(l <= r), true
	case ast.TokenEqualEqual:
		return ast.Bool(l == r), true
	case ast.TokenBangEqual:
		return ast.Bool(l != r), true
	}
	return nil, false
}

func boolOp(op ast.TokenType, l, r ast.Bool) (ast.Value, bool) {
	switch op {
	case ast.TokenEqualEqual:
		return ast.Bool(l == r), true
	case ast.TokenBangEqual:
		return ast.Bool(l != r), true
	}
	return nil, false
}
