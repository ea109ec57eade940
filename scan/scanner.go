package scan

import (
	"errors"
	"strconv"
	"unicode/utf8"

	"github.com/chidiwilliams/lm/ast"
)

// Scanner converts a source text
// into a slice of ast.Token-s
type Scanner struct {
	start   int
	current int
	line    int
	source  string
	tokens  []ast.Token
	errs    ErrorList
}

// NewScanner returns a new Scanner
func NewScanner(source string) *Scanner {
	return &Scanner{source: source, line: 1}
}

// ScanTokens returns a slice of tokens representing the source text,
// terminated by an EOF token. Scanning continues past errors; if any
// occurred, it returns all of them as an ErrorList instead.
func (s *Scanner) ScanTokens() ([]ast.Token, error) {
	for !s.isAtEnd() {
		// we're at the beginning of the next lexeme
		s.start = s.current
		s.scanToken()
	}

	if len(s.errs) > 0 {
		return nil, s.errs
	}

	s.tokens = append(s.tokens, ast.Token{TokenType: ast.TokenEof, Line: s.line})
	return s.tokens, nil
}

func (s *Scanner) scanToken() {
	char := s.advance()
	switch char {
	case '(':
		s.addToken(ast.TokenLeftParen)
	case ')':
		s.addToken(ast.TokenRightParen)
	case '-':
		s.addToken(ast.TokenMinus)
	case '+':
		s.addToken(ast.TokenPlus)
	case ';':
		s.addToken(ast.TokenSemicolon)
	case '*':
		s.addToken(ast.TokenStar)

	// with look-ahead
	case '!':
		s.addToken(s.either('=', ast.TokenBangEqual, ast.TokenBang))
	case '=':
		s.addToken(s.either('=', ast.TokenEqualEqual, ast.TokenEqual))
	case '<':
		s.addToken(s.either('=', ast.TokenLessEqual, ast.TokenLess))
	case '>':
		s.addToken(s.either('=', ast.TokenGreaterEqual, ast.TokenGreater))
	case '/':
		if s.match('/') {
			for s.peek() != '\n' && !s.isAtEnd() {
				s.advance()
			}
		} else {
			s.addToken(ast.TokenSlash)
		}

	// whitespace
	case ' ', '\r', '\t':
	case '\n':
		s.line++

	// string
	case '"':
		s.string()

	default:
		if isDigit(char) {
			s.number()
		} else if isAlpha(char) {
			s.identifier()
		} else {
			if char >= utf8.RuneSelf {
				// report a multi-byte character once, not per byte
				r, size := utf8.DecodeRuneInString(s.source[s.start:])
				char = r
				s.current = s.start + size
			}
			s.errs = append(s.errs, &Error{Kind: UnrecognizedChar, Line: s.line, Char: char})
		}
	}
}

func (s *Scanner) isAtEnd() bool {
	return s.current >= len(s.source)
}

func (s *Scanner) advance() rune {
	curr := rune(s.source[s.current])
	s.current++
	return curr
}

func (s *Scanner) addToken(tokenType ast.TokenType) {
	s.addTokenWithLiteral(tokenType, nil)
}

func (s *Scanner) addTokenWithLiteral(tokenType ast.TokenType, literal ast.Value) {
	text := s.source[s.start:s.current]
	token := ast.Token{TokenType: tokenType, Lexeme: text, Literal: literal, Line: s.line}
	s.tokens = append(s.tokens, token)
}

func (s *Scanner) match(expected rune) bool {
	if s.isAtEnd() {
		return false
	}

	if rune(s.source[s.current]) != expected {
		return false
	}

	s.current++
	return true
}

// either returns matched if the next character is expected
// (consuming it) and otherwise returns single
func (s *Scanner) either(expected rune, matched, single ast.TokenType) ast.TokenType {
	if s.match(expected) {
		return matched
	}
	return single
}

func (s *Scanner) string() {
	startLine := s.line
	for s.peek() != '"' && !s.isAtEnd() {
		if s.peek() == '\n' {
			s.line++
		}
		s.advance()
	}

	if s.isAtEnd() {
		s.errs = append(s.errs, &Error{Kind: UnterminatedString, Line: startLine})
		return
	}

	s.advance() // the closing "

	value := s.source[s.start+1 : s.current-1]
	s.addTokenWithLiteral(ast.TokenString, ast.String(value))
}

func (s *Scanner) number() {
	for isDigit(s.peek()) {
		s.advance()
	}

	// look for a fractional part
	if s.peek() == '.' && isDigit(s.peekNext()) {
		s.advance()
		for isDigit(s.peek()) {
			s.advance()
		}
	}

	text := s.source[s.start:s.current]
	val, err := strconv.ParseFloat(text, 64)
	// a literal too large for float64 is ±Inf, not an error
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		s.errs = append(s.errs, &Error{Kind: NumberFormat, Line: s.line, Lexeme: text})
		return
	}
	s.addTokenWithLiteral(ast.TokenNumber, ast.Number(val))
}

func (s *Scanner) peek() rune {
	if s.isAtEnd() {
		return '\000'
	}
	return rune(s.source[s.current])
}

func (s *Scanner) peekNext() rune {
	if s.current+1 >= len(s.source) {
		return '\000'
	}
	return rune(s.source[s.current+1])
}

func (s *Scanner) identifier() {
	for isAlphaNumeric(s.peek()) {
		s.advance()
	}

	text := s.source[s.start:s.current]
	tokenType, found := ast.Keywords[text]
	if !found {
		tokenType = ast.TokenIdentifier
	}
	s.addToken(tokenType)
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isAlpha(char rune) bool {
	return (char >= 'a' && char <= 'z') || (char >= 'A' && char <= 'Z') || (char == '_')
}

func isAlphaNumeric(char rune) bool {
	return isAlpha(char) || isDigit(char)
}
