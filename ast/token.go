package ast

import "fmt"

type TokenType uint8

const (
	// single-character tokens
	TokenLeftParen TokenType = iota
	TokenRightParen
	TokenSemicolon
	TokenMinus
	TokenPlus
	TokenSlash
	TokenStar

	// one or two character tokens
	TokenBang
	TokenBangEqual
	TokenEqual
	TokenEqualEqual
	TokenGreater
	TokenGreaterEqual
	TokenLess
	TokenLessEqual

	// literals
	TokenIdentifier
	TokenString
	TokenNumber

	// keywords
	TokenLet
	TokenPrintln

	TokenEof
)

var tokenNames = [...]string{
	TokenLeftParen:    "LeftParen",
	TokenRightParen:   "RightParen",
	TokenSemicolon:    "Semicolon",
	TokenMinus:        "Minus",
	TokenPlus:         "Plus",
	TokenSlash:        "Slash",
	TokenStar:         "Star",
	TokenBang:         "Bang",
	TokenBangEqual:    "BangEqual",
	TokenEqual:        "Equal",
	TokenEqualEqual:   "EqualEqual",
	TokenGreater:      "Greater",
	TokenGreaterEqual: "GreaterEqual",
	TokenLess:         "Less",
	TokenLessEqual:    "LessEqual",
	TokenIdentifier:   "Identifier",
	TokenString:       "String",
	TokenNumber:       "Number",
	TokenLet:          "Let",
	TokenPrintln:      "Println",
	TokenEof:          "EOF",
}

func (t TokenType) String() string {
	if int(t) < len(tokenNames) {
		return tokenNames[t]
	}
	return fmt.Sprintf("TokenType(%d)", uint8(t))
}

// Keywords maps each reserved word to its token type.
// Lookups are exact: "Let" is an identifier, not a keyword.
var Keywords = map[string]TokenType{
	"let":     TokenLet,
	"println": TokenPrintln,
}

type Token struct {
	TokenType TokenType
	Lexeme    string
	// Literal is set for number and string tokens and nil otherwise
	Literal Value
	Line    int
}

func (t Token) String() string {
	if t.Literal == nil {
		return fmt.Sprintf("%s %s", t.TokenType, t.Lexeme)
	}
	return fmt.Sprintf("%s %s %s", t.TokenType, t.Lexeme, t.Literal)
}
