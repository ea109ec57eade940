package parse

import (
	"errors"
	"fmt"
	"strings"

	"github.com/chidiwilliams/lm/ast"
)

// DefaultMaxDepth is the default limit on nested unary
// and grouping expressions
const DefaultMaxDepth = 256

// ErrNestingTooDeep is wrapped by the Error reported when
// an expression exceeds the parser's nesting limit
var ErrNestingTooDeep = errors.New("nesting too deep")

// Error is a syntax error at a token
type Error struct {
	Token ast.Token
	Msg   string
	// Err is an optional sentinel describing the error kind
	Err error
}

func (e *Error) Error() string {
	var where string
	if e.Token.TokenType == ast.TokenEof {
		where = " at end"
	} else {
		where = " at '" + e.Token.Lexeme + "'"
	}
	return fmt.Sprintf("[line %d] Error%s: %s", e.Token.Line, where, e.Msg)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// ErrorList holds one Error per failed declaration, in source order
type ErrorList []*Error

func (l ErrorList) Error() string {
	msgs := make([]string, len(l))
	for i, err := range l {
		msgs[i] = err.Error()
	}
	return strings.Join(msgs, "\n")
}

// Parser parses a flat list of tokens into
// an AST representation of the source program
type Parser struct {
	tokens   []ast.Token
	current  int
	nextID   int
	depth    int
	maxDepth int
	errs     ErrorList
}

// NewParser returns a new Parser that reads a list of tokens.
// The list must be terminated by an EOF token.
func NewParser(tokens []ast.Token) *Parser {
	return &Parser{tokens: tokens, maxDepth: DefaultMaxDepth}
}

// SetMaxDepth sets the nesting limit for unary and grouping expressions
func (p *Parser) SetMaxDepth(depth int) {
	p.maxDepth = depth
}

/**
Parser grammar:

	program     => declaration* EOF
	declaration => letDecl | statement
	letDecl     => "let" IDENTIFIER "=" expression ";"
	statement   => printStmt | exprStmt
	printStmt   => "println" expression ";"
	exprStmt    => expression ";"
	expression  => equality
	equality    => comparison ( ( "!=" | "==" ) comparison )*
	comparison  => term ( ( ">" | ">=" | "<" | "<=" ) term )*
	term        => factor ( ( "-" | "+" ) factor )*
	factor      => unary ( ( "/" | "*" ) unary )*
	unary       => ( "!" | "-" ) unary | primary
	primary     => IDENTIFIER | NUMBER | STRING | "(" expression ")"

*/

// Parse reads the list of tokens and returns a list of statements
// representing the source program. A failed declaration does not stop
// the parse; every error found is returned together as an ErrorList.
func (p *Parser) Parse() ([]ast.Stmt, error) {
	var statements []ast.Stmt
	for !p.isAtEnd() {
		if stmt := p.declaration(); stmt != nil {
			statements = append(statements, stmt)
		}
	}
	if len(p.errs) > 0 {
		return nil, p.errs
	}
	return statements, nil
}

// ParseExpression parses the tokens as a single expression
// followed by the end of input
func (p *Parser) ParseExpression() (expr ast.Expr, err error) {
	defer func() {
		if r := recover(); r != nil {
			e, ok := r.(*Error)
			if !ok {
				panic(r)
			}
			expr, err = nil, e
		}
	}()

	expr = p.expression()
	if !p.isAtEnd() {
		p.error(p.peek(), "Expect end of expression.")
	}
	return expr, nil
}

// declaration parses declaration statements. A declaration statement is
// a variable declaration or a regular statement. If the statement contains
// a parse error, it records the error, skips to the start of the next
// statement and returns nil.
func (p *Parser) declaration() ast.Stmt {
	start := p.current
	defer func() {
		if r := recover(); r != nil {
			// If the error is a parse Error, synchronize to
			// the next statement. If not, propagate the panic.
			err, ok := r.(*Error)
			if !ok {
				panic(r)
			}
			p.errs = append(p.errs, err)
			p.depth = 0
			p.synchronize(start)
		}
	}()

	if p.match(ast.TokenLet) {
		return p.letDeclaration()
	}
	return p.statement()
}

func (p *Parser) letDeclaration() ast.Stmt {
	name := p.consume(ast.TokenIdentifier, "Expect variable name.")
	p.consume(ast.TokenEqual, "Expect '=' after variable name.")
	initializer := p.expression()
	p.consume(ast.TokenSemicolon, "Expect ';' after variable declaration.")
	return ast.LetStmt{ID: p.newID(), Name: name, Initializer: initializer}
}

// statement parses statements. A statement can be
// a print or an expression statement.
func (p *Parser) statement() ast.Stmt {
	if p.match(ast.TokenPrintln) {
		return p.printStatement()
	}
	return p.expressionStatement()
}

func (p *Parser) printStatement() ast.Stmt {
	expr := p.expression()
	p.consume(ast.TokenSemicolon, "Expect ';' after value.")
	return ast.PrintStmt{ID: p.newID(), Expr: expr}
}

// expressionStatement parses expression statements
func (p *Parser) expressionStatement() ast.Stmt {
	expr := p.expression()
	p.consume(ast.TokenSemicolon, "Expect ';' after expression.")
	return ast.ExpressionStmt{ID: p.newID(), Expr: expr}
}

func (p *Parser) expression() ast.Expr {
	return p.equality()
}

func (p *Parser) equality() ast.Expr {
	return p.binary(p.comparison, ast.TokenBangEqual, ast.TokenEqualEqual)
}

func (p *Parser) comparison() ast.Expr {
	return p.binary(p.term, ast.TokenGreater, ast.TokenGreaterEqual, ast.TokenLess, ast.TokenLessEqual)
}

func (p *Parser) term() ast.Expr {
	return p.binary(p.factor, ast.TokenMinus, ast.TokenPlus)
}

func (p *Parser) factor() ast.Expr {
	return p.binary(p.unary, ast.TokenSlash, ast.TokenStar)
}

// binary parses a left-associative chain of operands
// produced by operand and separated by any of operators
func (p *Parser) binary(operand func() ast.Expr, operators ...ast.TokenType) ast.Expr {
	expr := operand()

	for p.match(operators...) {
		operator := p.previous()
		right := operand()
		expr = ast.BinaryExpr{ID: p.newID(), Left: expr, Operator: operator, Right: right}
	}

	return expr
}

func (p *Parser) unary() ast.Expr {
	if p.match(ast.TokenBang, ast.TokenMinus) {
		operator := p.previous()
		p.enter(operator)
		defer p.leave()

		right := p.unary()
		return ast.UnaryExpr{ID: p.newID(), Operator: operator, Right: right}
	}

	return p.primary()
}

func (p *Parser) primary() ast.Expr {
	switch {
	case p.match(ast.TokenNumber, ast.TokenString):
		return ast.LiteralExpr{ID: p.newID(), Value: p.previous().Literal}
	case p.match(ast.TokenIdentifier):
		return ast.VariableExpr{ID: p.newID(), Name: p.previous()}
	case p.match(ast.TokenLeftParen):
		p.enter(p.previous())
		defer p.leave()

		expr := p.expression()
		p.consume(ast.TokenRightParen, "Expect ')' after expression.")
		return ast.GroupingExpr{ID: p.newID(), Expression: expr}
	}

	p.error(p.peek(), "Expect expression.")
	return nil
}

// enter increments the nesting depth, failing at token
// if the depth exceeds the parser's limit
func (p *Parser) enter(token ast.Token) {
	p.depth++
	if p.maxDepth > 0 && p.depth > p.maxDepth {
		panic(&Error{
			Token: token,
			Msg:   fmt.Sprintf("Expression nested more than %d levels deep.", p.maxDepth),
			Err:   ErrNestingTooDeep,
		})
	}
}

func (p *Parser) leave() {
	p.depth--
}

func (p *Parser) newID() int {
	id := p.nextID
	p.nextID++
	return id
}

// consume checks that the next ast.Token is of the given ast.TokenType and then
// advances to the next token. If the check fails, it panics with the given message.
func (p *Parser) consume(tokenType ast.TokenType, message string) ast.Token {
	if p.check(tokenType) {
		return p.advance()
	}
	p.error(p.peek(), message)
	return ast.Token{}
}

func (p *Parser) error(token ast.Token, message string) {
	panic(&Error{Token: token, Msg: message})
}

// synchronize discards tokens until the start of the next statement:
// just after a ";" or at a "let" or "println" keyword. It always moves
// past the token at start so that a failed declaration cannot be retried
// at the same position.
func (p *Parser) synchronize(start int) {
	if p.current == start {
		p.advance()
	}
	for !p.isAtEnd() {
		if p.previous().TokenType == ast.TokenSemicolon {
			return
		}

		switch p.peek().TokenType {
		case ast.TokenLet, ast.TokenPrintln:
			return
		}

		p.advance()
	}
}

func (p *Parser) match(types ...ast.TokenType) bool {
	for _, tokenType := range types {
		if p.check(tokenType) {
			p.advance()
			return true
		}
	}

	return false
}

func (p *Parser) check(tokenType ast.TokenType) bool {
	if p.isAtEnd() {
		return false
	}

	return p.peek().TokenType == tokenType
}

func (p *Parser) advance() ast.Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

func (p *Parser) isAtEnd() bool {
	return p.peek().TokenType == ast.TokenEof
}

func (p *Parser) peek() ast.Token {
	return p.tokens[p.current]
}

func (p *Parser) previous() ast.Token {
	return p.tokens[p.current-1]
}
