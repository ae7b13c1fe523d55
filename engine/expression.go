package engine

import (
	"golang.org/x/exp/slices"

	"github.com/hlmerscher/n2t-toolchain/symtable"
	"github.com/hlmerscher/n2t-toolchain/tokenizer"
)

var binaryOps = []string{"+", "-", "*", "/", "&", "|", "<", ">", "="}

func isBinaryOp(tok tokenizer.Token) bool {
	return tok.Type == tokenizer.SYMBOL && slices.Contains(binaryOps, tok.Raw)
}

// expression := term (op term)*
func (p *Parser) compileExpression() error {
	if err := p.compileTerm(); err != nil {
		return err
	}
	for isBinaryOp(p.cur()) {
		op := p.advance().Raw
		if err := p.compileTerm(); err != nil {
			return err
		}
		if err := p.emitBinaryOp(op); err != nil {
			return err
		}
	}
	return nil
}

func (p *Parser) emitBinaryOp(op string) error {
	switch op {
	case "+":
		return p.w.WriteArithmetic("add")
	case "-":
		return p.w.WriteArithmetic("sub")
	case "&":
		return p.w.WriteArithmetic("and")
	case "|":
		return p.w.WriteArithmetic("or")
	case "<":
		return p.w.WriteArithmetic("lt")
	case ">":
		return p.w.WriteArithmetic("gt")
	case "=":
		return p.w.WriteArithmetic("eq")
	case "*":
		return p.w.WriteCall("Math.multiply", 2)
	case "/":
		return p.w.WriteCall("Math.divide", 2)
	}
	return p.semanticf("unknown operator %q", op)
}

// expressionList := (expression (',' expression)*)?
// Returns the number of expressions emitted.
func (p *Parser) compileExpressionList() (int, error) {
	if p.cur().Is(")") {
		return 0, nil
	}
	n := 0
	for {
		if err := p.compileExpression(); err != nil {
			return 0, err
		}
		n++
		if !p.cur().Is(",") {
			break
		}
		p.advance()
	}
	return n, nil
}

// term := intConst | strConst | keywordConst | varName
//       | varName '[' expression ']'
//       | subroutineCall | '(' expression ')' | unaryOp term
func (p *Parser) compileTerm() error {
	tok := p.cur()

	switch {
	case tok.Type == tokenizer.INT_CONST:
		p.advance()
		return p.w.WritePush("constant", tok.IntVal)

	case tok.Type == tokenizer.STRING_CONST:
		p.advance()
		return p.emitStringConstant(tok.Raw)

	case tok.Is("true"), tok.Is("false"), tok.Is("null"), tok.Is("this"):
		p.advance()
		return p.emitKeywordConstant(tok.Raw)

	case tok.Is("("):
		p.advance()
		if err := p.compileExpression(); err != nil {
			return err
		}
		_, err := p.expectSymbol(")")
		return err

	case tok.Is("-"), tok.Is("~"):
		p.advance()
		if err := p.compileTerm(); err != nil {
			return err
		}
		if tok.Raw == "-" {
			return p.w.WriteArithmetic("neg")
		}
		return p.w.WriteArithmetic("not")

	case tok.Type == tokenizer.IDENTIFIER:
		p.advance()
		return p.compileIdentifierTerm(tok.Raw)

	default:
		return p.unexpected("term")
	}
}

// compileIdentifierTerm disambiguates varName, varName[expr] and
// subroutineCall with the one token of lookahead already consumed
// (name) plus the two-token lookahead the current token provides.
func (p *Parser) compileIdentifierTerm(name string) error {
	switch {
	case p.cur().Is("["):
		p.advance()
		if err := p.compileExpression(); err != nil {
			return err
		}
		if _, err := p.expectSymbol("]"); err != nil {
			return err
		}
		entry, err := p.resolve(name)
		if err != nil {
			return err
		}
		if err := p.w.WritePush(segmentFor(entry.Kind), entry.Index); err != nil {
			return err
		}
		if err := p.w.WriteArithmetic("add"); err != nil {
			return err
		}
		if err := p.w.WritePop("pointer", 1); err != nil {
			return err
		}
		return p.w.WritePush("that", 0)

	case p.cur().Is("("), p.cur().Is("."):
		return p.compileSubroutineCall(name)

	default:
		entry, err := p.resolve(name)
		if err != nil {
			return err
		}
		return p.w.WritePush(segmentFor(entry.Kind), entry.Index)
	}
}

// compileSubroutineCall handles both call shapes described in
// spec.md §4.2's subroutine-call resolution rules: `first(args)` is a
// method call on the current object; `first.second(args)` is either a
// method call on a known variable or a class-level call.
func (p *Parser) compileSubroutineCall(first string) error {
	if p.cur().Is("(") {
		p.advance()
		if err := p.w.WritePush("pointer", 0); err != nil {
			return err
		}
		n, err := p.compileExpressionList()
		if err != nil {
			return err
		}
		if _, err := p.expectSymbol(")"); err != nil {
			return err
		}
		return p.w.WriteCall(p.className+"."+first, n+1)
	}

	// first.second(args)
	p.advance() // '.'
	secondTok, err := p.expectIdentifier()
	if err != nil {
		return err
	}
	second := secondTok.Raw

	if entry, ok := p.st.Lookup(first); ok {
		if entry.Kind == symtable.Field && p.subroutineKind == "function" {
			return p.semanticf("cannot access field %q from a function", first)
		}
		if err := p.w.WritePush(segmentFor(entry.Kind), entry.Index); err != nil {
			return err
		}
		if _, err := p.expectSymbol("("); err != nil {
			return err
		}
		n, err := p.compileExpressionList()
		if err != nil {
			return err
		}
		if _, err := p.expectSymbol(")"); err != nil {
			return err
		}
		return p.w.WriteCall(entry.Type+"."+second, n+1)
	}

	// first is a class name: static/function/constructor call.
	if _, err := p.expectSymbol("("); err != nil {
		return err
	}
	n, err := p.compileExpressionList()
	if err != nil {
		return err
	}
	if _, err := p.expectSymbol(")"); err != nil {
		return err
	}
	return p.w.WriteCall(first+"."+second, n)
}

func (p *Parser) emitKeywordConstant(raw string) error {
	switch raw {
	case "true":
		if err := p.w.WritePush("constant", 0); err != nil {
			return err
		}
		return p.w.WriteArithmetic("not")
	case "false", "null":
		return p.w.WritePush("constant", 0)
	case "this":
		return p.w.WritePush("pointer", 0)
	}
	return p.semanticf("unknown keyword constant %q", raw)
}

func (p *Parser) emitStringConstant(s string) error {
	if err := p.w.WritePush("constant", len(s)); err != nil {
		return err
	}
	if err := p.w.WriteCall("String.new", 1); err != nil {
		return err
	}
	for _, c := range []byte(s) {
		if err := p.w.WritePush("constant", int(c)); err != nil {
			return err
		}
		if err := p.w.WriteCall("String.appendChar", 2); err != nil {
			return err
		}
	}
	return nil
}
