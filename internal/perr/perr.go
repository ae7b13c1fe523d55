// Package perr defines the position-carrying error taxonomy shared by
// the lexer, parser, VM translator, and assembler: LexError, ParseError,
// SemanticError, VMDecodeError, AsmEncodeError. Every error names the
// file, line, and offending lexeme where available.
package perr

import (
	"fmt"

	"github.com/pkg/errors"
)

type Kind string

const (
	Lex      Kind = "lex error"
	Parse    Kind = "parse error"
	Semantic Kind = "semantic error"
	VMDecode Kind = "vm decode error"
	AsmEncode Kind = "asm encode error"
)

// PosError is a Kind-tagged error carrying the source file, line number
// (0 when unavailable), and the offending lexeme.
type PosError struct {
	Kind   Kind
	File   string
	Line   int
	Lexeme string
	Msg    string
}

func (e *PosError) Error() string {
	loc := e.File
	if e.Line > 0 {
		loc = fmt.Sprintf("%s:%d", e.File, e.Line)
	}
	if e.Lexeme != "" {
		return fmt.Sprintf("%s: %s: %q: %s", loc, e.Kind, e.Lexeme, e.Msg)
	}
	return fmt.Sprintf("%s: %s: %s", loc, e.Kind, e.Msg)
}

func New(kind Kind, file string, line int, lexeme, msg string) error {
	return errors.WithStack(&PosError{Kind: kind, File: file, Line: line, Lexeme: lexeme, Msg: msg})
}

func Newf(kind Kind, file string, line int, lexeme, format string, args ...any) error {
	return New(kind, file, line, lexeme, fmt.Sprintf(format, args...))
}

// Is reports whether err (or something it wraps) is a PosError of kind.
func Is(err error, kind Kind) bool {
	pe, ok := errors.Cause(err).(*PosError)
	return ok && pe.Kind == kind
}
