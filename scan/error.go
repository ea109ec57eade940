package scan

import (
	"fmt"
	"strings"
)

// ErrorKind classifies a lexical error
type ErrorKind uint8

const (
	// UnterminatedString is reported when the input ends inside a string literal
	UnterminatedString ErrorKind = iota
	// UnrecognizedChar is reported for a character that cannot start any token
	UnrecognizedChar
	// NumberFormat is reported when an accepted digit sequence fails to parse
	NumberFormat
)

func (k ErrorKind) String() string {
	switch k {
	case UnterminatedString:
		return "UnterminatedString"
	case UnrecognizedChar:
		return "UnrecognizedChar"
	case NumberFormat:
		return "NumberFormat"
	}
	return fmt.Sprintf("ErrorKind(%d)", uint8(k))
}

// Error is a single lexical error
type Error struct {
	Kind ErrorKind
	Line int
	// Char is the offending character of an UnrecognizedChar error
	Char rune
	// Lexeme is the offending text of a NumberFormat error
	Lexeme string
}

func (e *Error) Error() string {
	var msg string
	switch e.Kind {
	case UnterminatedString:
		msg = "Unterminated string."
	case UnrecognizedChar:
		msg = fmt.Sprintf("Unexpected character '%c'.", e.Char)
	case NumberFormat:
		msg = fmt.Sprintf("Invalid number '%s'.", e.Lexeme)
	}
	return fmt.Sprintf("[line %d] Error: %s", e.Line, msg)
}

// ErrorList holds every lexical error found in a source text,
// in source order
type ErrorList []*Error

func (l ErrorList) Error() string {
	msgs := make([]string, len(l))
	for i, err := range l {
		msgs[i] = err.Error()
	}
	return strings.Join(msgs, "\n")
}
