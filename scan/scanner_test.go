package scan

import (
	"errors"
	"math"
	"reflect"
	"strings"
	"testing"

	"github.com/chidiwilliams/lm/ast"
)

func TestScanner_ScanTokens(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   []ast.Token
	}{
		{"empty", "", []ast.Token{
			{TokenType: ast.TokenEof, Line: 1},
		}},
		{"keyword", "let", []ast.Token{
			{TokenType: ast.TokenLet, Lexeme: "let", Line: 1},
			{TokenType: ast.TokenEof, Line: 1},
		}},
		{"keywords are case-sensitive", "Let printLn", []ast.Token{
			{TokenType: ast.TokenIdentifier, Lexeme: "Let", Line: 1},
			{TokenType: ast.TokenIdentifier, Lexeme: "printLn", Line: 1},
			{TokenType: ast.TokenEof, Line: 1},
		}},
		{"keyword prefix is an identifier", "letter", []ast.Token{
			{TokenType: ast.TokenIdentifier, Lexeme: "letter", Line: 1},
			{TokenType: ast.TokenEof, Line: 1},
		}},
		{"string", `"hello"`, []ast.Token{
			{TokenType: ast.TokenString, Lexeme: `"hello"`, Literal: ast.String("hello"), Line: 1},
			{TokenType: ast.TokenEof, Line: 1},
		}},
		{"decimal number", "10.10", []ast.Token{
			{TokenType: ast.TokenNumber, Lexeme: "10.10", Literal: ast.Number(10.10), Line: 1},
			{TokenType: ast.TokenEof, Line: 1},
		}},
		{"trailing dot is not part of the number", "7.", nil},
		{"number too large for float64", "1" + strings.Repeat("0", 400), []ast.Token{
			{TokenType: ast.TokenNumber, Lexeme: "1" + strings.Repeat("0", 400), Literal: ast.Number(math.Inf(1)), Line: 1},
			{TokenType: ast.TokenEof, Line: 1},
		}},
		{"operators", "= == ! != < <= > >= + - * /", []ast.Token{
			{TokenType: ast.TokenEqual, Lexeme: "=", Line: 1},
			{TokenType: ast.TokenEqualEqual, Lexeme: "==", Line: 1},
			{TokenType: ast.TokenBang, Lexeme: "!", Line: 1},
			{TokenType: ast.TokenBangEqual, Lexeme: "!=", Line: 1},
			{TokenType: ast.TokenLess, Lexeme: "<", Line: 1},
			{TokenType: ast.TokenLessEqual, Lexeme: "<=", Line: 1},
			{TokenType: ast.TokenGreater, Lexeme: ">", Line: 1},
			{TokenType: ast.TokenGreaterEqual, Lexeme: ">=", Line: 1},
			{TokenType: ast.TokenPlus, Lexeme: "+", Line: 1},
			{TokenType: ast.TokenMinus, Lexeme: "-", Line: 1},
			{TokenType: ast.TokenStar, Lexeme: "*", Line: 1},
			{TokenType: ast.TokenSlash, Lexeme: "/", Line: 1},
			{TokenType: ast.TokenEof, Line: 1},
		}},
		{"declaration", "let a = 10;\nprintln(a);", []ast.Token{
			{TokenType: ast.TokenLet, Lexeme: "let", Line: 1},
			{TokenType: ast.TokenIdentifier, Lexeme: "a", Line: 1},
			{TokenType: ast.TokenEqual, Lexeme: "=", Line: 1},
			{TokenType: ast.TokenNumber, Lexeme: "10", Literal: ast.Number(10), Line: 1},
			{TokenType: ast.TokenSemicolon, Lexeme: ";", Line: 1},
			{TokenType: ast.TokenPrintln, Lexeme: "println", Line: 2},
			{TokenType: ast.TokenLeftParen, Lexeme: "(", Line: 2},
			{TokenType: ast.TokenIdentifier, Lexeme: "a", Line: 2},
			{TokenType: ast.TokenRightParen, Lexeme: ")", Line: 2},
			{TokenType: ast.TokenSemicolon, Lexeme: ";", Line: 2},
			{TokenType: ast.TokenEof, Line: 2},
		}},
		{"newlines inside strings are counted", "\"a\nb\" x", []ast.Token{
			{TokenType: ast.TokenString, Lexeme: "\"a\nb\"", Literal: ast.String("a\nb"), Line: 2},
			{TokenType: ast.TokenIdentifier, Lexeme: "x", Line: 2},
			{TokenType: ast.TokenEof, Line: 2},
		}},
		{"comment", "1 // one\n2", []ast.Token{
			{TokenType: ast.TokenNumber, Lexeme: "1", Literal: ast.Number(1), Line: 1},
			{TokenType: ast.TokenNumber, Lexeme: "2", Literal: ast.Number(2), Line: 2},
			{TokenType: ast.TokenEof, Line: 2},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, err := NewScanner(tt.source).ScanTokens()
			if tt.want == nil {
				if err == nil {
					t.Fatalf("expected an error, got tokens %v", tokens)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !reflect.DeepEqual(tokens, tt.want) {
				t.Fatalf("tokens: got %v, expected %v", tokens, tt.want)
			}
		})
	}
}

func TestScanner_TrailingDot(t *testing.T) {
	_, err := NewScanner("7.").ScanTokens()

	var errs ErrorList
	if !errors.As(err, &errs) {
		t.Fatalf("expected ErrorList, got %T", err)
	}
	// "7" scans as a number and "." is left over
	if len(errs) != 1 || errs[0].Kind != UnrecognizedChar || errs[0].Char != '.' {
		t.Fatalf("errors: got %v", errs)
	}
}

func TestScanner_Errors(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   ErrorList
	}{
		{"unterminated string", `let a = "hello`, ErrorList{
			{Kind: UnterminatedString, Line: 1},
		}},
		{"unterminated string reports its opening line", "1;\n\"a\nb\nc", ErrorList{
			{Kind: UnterminatedString, Line: 2},
		}},
		{"unrecognized character", "let a = 1 # 2;", ErrorList{
			{Kind: UnrecognizedChar, Line: 1, Char: '#'},
		}},
		{"multi-byte character", "é", ErrorList{
			{Kind: UnrecognizedChar, Line: 1, Char: 'é'},
		}},
		{"errors are collected", "@\nlet b = 2 $;\n\"open", ErrorList{
			{Kind: UnrecognizedChar, Line: 1, Char: '@'},
			{Kind: UnrecognizedChar, Line: 2, Char: '$'},
			{Kind: UnterminatedString, Line: 3},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, err := NewScanner(tt.source).ScanTokens()
			if tokens != nil {
				t.Fatalf("expected no tokens, got %v", tokens)
			}
			var errs ErrorList
			if !errors.As(err, &errs) {
				t.Fatalf("expected ErrorList, got %T (%v)", err, err)
			}
			if !reflect.DeepEqual(errs, tt.want) {
				t.Fatalf("errors: got %v, expected %v", errs, tt.want)
			}
		})
	}
}

func TestErrorList_Error(t *testing.T) {
	errs := ErrorList{
		{Kind: UnrecognizedChar, Line: 1, Char: '#'},
		{Kind: UnterminatedString, Line: 4},
	}
	want := "[line 1] Error: Unexpected character '#'.\n[line 4] Error: Unterminated string."
	if got := errs.Error(); got != want {
		t.Fatalf("Error(): got %q, expected %q", got, want)
	}
}

func TestScanner_NumberLiterals(t *testing.T) {
	for _, src := range []string{"0", "7", "10.10", "3.14159", "123456789", "0.5"} {
		tokens, err := NewScanner(src).ScanTokens()
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", src, err)
		}
		if len(tokens) != 2 || tokens[0].TokenType != ast.TokenNumber {
			t.Fatalf("%s: expected one number token, got %v", src, tokens)
		}
		// re-scanning the printed value yields the same number
		again, err := NewScanner(tokens[0].Literal.String()).ScanTokens()
		if err != nil {
			t.Fatalf("%s: re-scan error: %v", src, err)
		}
		if again[0].Literal != tokens[0].Literal {
			t.Fatalf("%s: re-scan got %v, expected %v", src, again[0].Literal, tokens[0].Literal)
		}
	}
}
