package engine

import (
	"github.com/hlmerscher/n2t-toolchain/symtable"
	"github.com/hlmerscher/n2t-toolchain/tokenizer"
)

// compileClass := 'class' ID '{' classVarDec* subroutineDec* '}'
func (p *Parser) compileClass() error {
	if _, err := p.expectKeyword("class"); err != nil {
		return err
	}
	nameTok, err := p.expectIdentifier()
	if err != nil {
		return err
	}
	p.className = nameTok.Raw

	if _, err := p.expectSymbol("{"); err != nil {
		return err
	}

	for p.cur().Is("static") || p.cur().Is("field") {
		if err := p.compileClassVarDec(); err != nil {
			return err
		}
	}

	for p.cur().Is("constructor") || p.cur().Is("function") || p.cur().Is("method") {
		if err := p.compileSubroutine(); err != nil {
			return err
		}
	}

	_, err = p.expectSymbol("}")
	return err
}

// classVarDec := ('static'|'field') type ID (',' ID)* ';'
func (p *Parser) compileClassVarDec() error {
	kindTok, err := p.expectKeyword("static", "field")
	if err != nil {
		return err
	}
	kind := symtable.Static
	if kindTok.Raw == "field" {
		kind = symtable.Field
	}

	typ, err := p.parseType()
	if err != nil {
		return err
	}

	for {
		nameTok, err := p.expectIdentifier()
		if err != nil {
			return err
		}
		if _, err := p.st.Define(nameTok.Raw, typ, kind); err != nil {
			return p.semanticf("%s", err)
		}

		if !p.cur().Is(",") {
			break
		}
		p.advance()
	}

	_, err = p.expectSymbol(";")
	return err
}

// type := 'int' | 'char' | 'boolean' | className
func (p *Parser) parseType() (string, error) {
	tok := p.cur()
	switch {
	case tok.Is("int"), tok.Is("char"), tok.Is("boolean"):
		p.advance()
		return tok.Raw, nil
	case tok.Type == tokenizer.IDENTIFIER:
		p.advance()
		return tok.Raw, nil
	default:
		return "", p.unexpected("type")
	}
}
