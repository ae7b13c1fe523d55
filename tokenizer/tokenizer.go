// Package tokenizer turns Jack source text into a flat, fully
// materialized sequence of Token values, stripping line and block
// comments in the same stateful scan that recognizes tokens (never with
// a naive regex pass, so a "//" inside a string literal is left alone).
package tokenizer

import (
	"unicode"

	"golang.org/x/exp/slices"

	"github.com/hlmerscher/n2t-toolchain/internal/perr"
)

const maxIntConst = 1<<15 - 1 // 32767

// Tokenize lexes the full source of file (used only for error messages)
// and returns its token sequence.
func Tokenize(src string, file string) ([]Token, error) {
	l := &lexer{src: []rune(src), file: file, line: 1}
	return l.run()
}

type lexer struct {
	src  []rune
	pos  int
	line int
	file string
}

func (l *lexer) run() ([]Token, error) {
	tokens := make([]Token, 0, len(l.src)/4)
	for {
		if err := l.skipTrivia(); err != nil {
			return nil, err
		}
		if l.eof() {
			return tokens, nil
		}
		tok, err := l.scanToken()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
	}
}

func (l *lexer) eof() bool { return l.pos >= len(l.src) }

func (l *lexer) peek() rune {
	if l.eof() {
		return 0
	}
	return l.src[l.pos]
}

func (l *lexer) peekAt(off int) rune {
	if l.pos+off >= len(l.src) {
		return 0
	}
	return l.src[l.pos+off]
}

// skipTrivia consumes whitespace, line comments and block comments.
// Block comments are non-nested and may span multiple lines; an
// unterminated block comment is a lex error.
func (l *lexer) skipTrivia() error {
	for !l.eof() {
		c := l.peek()
		switch {
		case c == '\n':
			l.line++
			l.pos++
		case unicode.IsSpace(c):
			l.pos++
		case c == '/' && l.peekAt(1) == '/':
			for !l.eof() && l.peek() != '\n' {
				l.pos++
			}
		case c == '/' && l.peekAt(1) == '*':
			startLine := l.line
			l.pos += 2
			closed := false
			for !l.eof() {
				if l.peek() == '\n' {
					l.line++
					l.pos++
					continue
				}
				if l.peek() == '*' && l.peekAt(1) == '/' {
					l.pos += 2
					closed = true
					break
				}
				l.pos++
			}
			if !closed {
				return perr.New(perr.Lex, l.file, startLine, "/*", "unterminated block comment")
			}
		default:
			return nil
		}
	}
	return nil
}

func (l *lexer) scanToken() (Token, error) {
	c := l.peek()
	line := l.line

	switch {
	case slices.Contains(Symbols, c):
		l.pos++
		return Token{Type: SYMBOL, Raw: string(c), Line: line}, nil

	case c == '"':
		return l.scanString(line)

	case unicode.IsDigit(c):
		return l.scanInt(line)

	case isIdentStart(c):
		return l.scanIdentOrKeyword(line), nil

	default:
		return Token{}, perr.Newf(perr.Lex, l.file, line, string(c), "unexpected character")
	}
}

func (l *lexer) scanString(line int) (Token, error) {
	l.pos++ // opening quote
	start := l.pos
	for !l.eof() && l.peek() != '"' {
		if l.peek() == '\n' {
			return Token{}, perr.New(perr.Lex, l.file, line, `"`, "unterminated string constant (newline before closing quote)")
		}
		l.pos++
	}
	if l.eof() {
		return Token{}, perr.New(perr.Lex, l.file, line, `"`, "unterminated string constant")
	}
	raw := string(l.src[start:l.pos])
	l.pos++ // closing quote
	return Token{Type: STRING_CONST, Raw: raw, Line: line}, nil
}

func (l *lexer) scanInt(line int) (Token, error) {
	start := l.pos
	for !l.eof() && unicode.IsDigit(l.peek()) {
		l.pos++
	}
	raw := string(l.src[start:l.pos])
	n := 0
	for _, d := range raw {
		n = n*10 + int(d-'0')
		if n > maxIntConst {
			return Token{}, perr.Newf(perr.Lex, l.file, line, raw, "integer constant out of range (max %d)", maxIntConst)
		}
	}
	return Token{Type: INT_CONST, Raw: raw, IntVal: n, Line: line}, nil
}

func (l *lexer) scanIdentOrKeyword(line int) Token {
	start := l.pos
	for !l.eof() && isIdentCont(l.peek()) {
		l.pos++
	}
	raw := string(l.src[start:l.pos])
	if slices.Contains(Keywords, raw) {
		return Token{Type: KEYWORD, Raw: raw, Line: line}
	}
	return Token{Type: IDENTIFIER, Raw: raw, Line: line}
}

func isIdentStart(c rune) bool {
	return c == '_' || unicode.IsLetter(c)
}

func isIdentCont(c rune) bool {
	return c == '_' || unicode.IsLetter(c) || unicode.IsDigit(c)
}
