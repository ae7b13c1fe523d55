package tokenizer

import "fmt"

// TokenType tags the five lexical categories the Jack grammar defines.
type TokenType string

const (
	KEYWORD      TokenType = "keyword"
	SYMBOL       TokenType = "symbol"
	IDENTIFIER   TokenType = "identifier"
	INT_CONST    TokenType = "integerConstant"
	STRING_CONST TokenType = "stringConstant"
)

// Token is a tagged value produced by the lexer. Raw carries the literal
// text (quotes stripped for strings); IntVal is populated for
// INT_CONST tokens.
type Token struct {
	Type   TokenType
	Raw    string
	IntVal int
	Line   int
}

func (t Token) String() string {
	return fmt.Sprintf("%s(%q)", t.Type, t.Raw)
}

// Is reports whether the token is a symbol or keyword with the given
// literal text.
func (t Token) Is(raw string) bool {
	return (t.Type == SYMBOL || t.Type == KEYWORD) && t.Raw == raw
}

// Keywords lists the 21 reserved words. Kept as a slice (checked with
// slices.Contains) rather than a map, matching how the lexer also
// classifies symbols.
var Keywords = []string{
	"class", "constructor", "function", "method",
	"field", "static", "var", "int", "char",
	"boolean", "void", "true", "false", "null",
	"this", "let", "do", "if", "else",
	"while", "return",
}

// Symbols lists the single-character symbol alphabet.
var Symbols = []rune{
	'{', '}', '(', ')', '[', ']',
	'.', ',', ';', '+', '-', '*',
	'/', '&', '|', '<', '>', '=',
	'~',
}
