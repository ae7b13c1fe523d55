package engine

import (
	"fmt"

	"github.com/hlmerscher/n2t-toolchain/symtable"
)

// subroutine := ('constructor'|'function'|'method') (type|'void') ID
//               '(' paramList ')' '{' varDec* statement* '}'
func (p *Parser) compileSubroutine() error {
	kindTok, err := p.expectKeyword("constructor", "function", "method")
	if err != nil {
		return err
	}

	p.st.StartSubroutine()
	p.subroutineKind = kindTok.Raw
	p.ifCounter = 0
	p.whileCounter = 0

	if p.subroutineKind == "method" {
		if _, err := p.st.Define("this", p.className, symtable.Argument); err != nil {
			return p.semanticf("%s", err)
		}
	}

	if p.cur().Is("void") {
		p.advance()
		p.returnType = "void"
	} else {
		typ, err := p.parseType()
		if err != nil {
			return err
		}
		p.returnType = typ
	}

	nameTok, err := p.expectIdentifier()
	if err != nil {
		return err
	}
	p.subroutineName = nameTok.Raw

	if _, err := p.expectSymbol("("); err != nil {
		return err
	}
	if err := p.compileParameterList(); err != nil {
		return err
	}
	if _, err := p.expectSymbol(")"); err != nil {
		return err
	}

	return p.compileSubroutineBody()
}

// paramList := (type ID (',' type ID)*)?
func (p *Parser) compileParameterList() error {
	if p.cur().Is(")") {
		return nil
	}
	for {
		typ, err := p.parseType()
		if err != nil {
			return err
		}
		nameTok, err := p.expectIdentifier()
		if err != nil {
			return err
		}
		if _, err := p.st.Define(nameTok.Raw, typ, symtable.Argument); err != nil {
			return p.semanticf("%s", err)
		}
		if !p.cur().Is(",") {
			break
		}
		p.advance()
	}
	return nil
}

func (p *Parser) compileSubroutineBody() error {
	if _, err := p.expectSymbol("{"); err != nil {
		return err
	}

	for p.cur().Is("var") {
		if err := p.compileVarDec(); err != nil {
			return err
		}
	}

	nLocals := p.st.Count(symtable.Local)
	mangled := p.mangledName()
	if err := p.w.WriteFunction(mangled, nLocals); err != nil {
		return err
	}

	switch p.subroutineKind {
	case "constructor":
		nFields := p.st.Count(symtable.Field)
		if err := p.w.WritePush("constant", nFields); err != nil {
			return err
		}
		if err := p.w.WriteCall("Memory.alloc", 1); err != nil {
			return err
		}
		if err := p.w.WritePop("pointer", 0); err != nil {
			return err
		}
	case "method":
		if err := p.w.WritePush("argument", 0); err != nil {
			return err
		}
		if err := p.w.WritePop("pointer", 0); err != nil {
			return err
		}
	}

	if err := p.compileStatements(); err != nil {
		return err
	}

	_, err := p.expectSymbol("}")
	return err
}

// varDec := 'var' type ID (',' ID)* ';'
func (p *Parser) compileVarDec() error {
	p.advance() // 'var'
	typ, err := p.parseType()
	if err != nil {
		return err
	}
	for {
		nameTok, err := p.expectIdentifier()
		if err != nil {
			return err
		}
		if _, err := p.st.Define(nameTok.Raw, typ, symtable.Local); err != nil {
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

func (p *Parser) mangledName() string {
	return fmt.Sprintf("%s.%s", p.className, p.subroutineName)
}
