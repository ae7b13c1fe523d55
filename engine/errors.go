package engine

import (
	"fmt"

	"github.com/hlmerscher/n2t-toolchain/internal/perr"
)

// notSubroutineDec/notClassVarDec-style sentinels aren't needed here: the
// grammar's FIRST sets are small enough that the parser peeks the
// keyword directly rather than trial-parsing and backtracking on a
// sentinel error, unlike the teacher's compiler.go.

func (p *Parser) unexpected(want string) error {
	tok := p.cur()
	return perr.Newf(perr.Parse, p.file, tok.Line, tok.Raw, "expected %s, got %s", want, tok)
}

func (p *Parser) semanticf(format string, args ...any) error {
	tok := p.cur()
	return perr.New(perr.Semantic, p.file, tok.Line, tok.Raw, fmt.Sprintf(format, args...))
}
