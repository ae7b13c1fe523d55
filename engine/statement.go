package engine

import (
	"fmt"

	"github.com/hlmerscher/n2t-toolchain/symtable"
)

// statement := letStmt | ifStmt | whileStmt | doStmt | returnStmt
func (p *Parser) compileStatements() error {
	for {
		switch {
		case p.cur().Is("let"):
			if err := p.compileLet(); err != nil {
				return err
			}
		case p.cur().Is("if"):
			if err := p.compileIf(); err != nil {
				return err
			}
		case p.cur().Is("while"):
			if err := p.compileWhile(); err != nil {
				return err
			}
		case p.cur().Is("do"):
			if err := p.compileDo(); err != nil {
				return err
			}
		case p.cur().Is("return"):
			if err := p.compileReturn(); err != nil {
				return err
			}
		default:
			return nil
		}
	}
}

// resolve looks up name, rejecting field access from a function and
// undeclared identifiers.
func (p *Parser) resolve(name string) (symtable.Entry, error) {
	entry, ok := p.st.Lookup(name)
	if !ok {
		return symtable.Entry{}, p.semanticf("undeclared identifier %q", name)
	}
	if entry.Kind == symtable.Field && p.subroutineKind == "function" {
		return symtable.Entry{}, p.semanticf("cannot access field %q from a function", name)
	}
	return entry, nil
}

func segmentFor(kind symtable.Kind) string {
	switch kind {
	case symtable.Static:
		return "static"
	case symtable.Field:
		return "this"
	case symtable.Argument:
		return "argument"
	case symtable.Local:
		return "local"
	}
	return ""
}

// letStmt := 'let' varName ('[' expression ']')? '=' expression ';'
func (p *Parser) compileLet() error {
	p.advance() // 'let'
	nameTok, err := p.expectIdentifier()
	if err != nil {
		return err
	}
	entry, err := p.resolve(nameTok.Raw)
	if err != nil {
		return err
	}

	if p.cur().Is("[") {
		p.advance()
		if err := p.compileExpression(); err != nil { // index expression
			return err
		}
		if _, err := p.expectSymbol("]"); err != nil {
			return err
		}
		if err := p.w.WritePush(segmentFor(entry.Kind), entry.Index); err != nil {
			return err
		}
		if err := p.w.WriteArithmetic("add"); err != nil {
			return err
		}

		if _, err := p.expectSymbol("="); err != nil {
			return err
		}
		if err := p.compileExpression(); err != nil { // rhs, may itself index arrays
			return err
		}
		if _, err := p.expectSymbol(";"); err != nil {
			return err
		}

		// Two-temp sequence: rhs may clobber pointer 1 while computing
		// its own array subscripts, so stash it before repositioning
		// pointer 1 to the lhs's target address.
		if err := p.w.WritePop("temp", 0); err != nil {
			return err
		}
		if err := p.w.WritePop("pointer", 1); err != nil {
			return err
		}
		if err := p.w.WritePush("temp", 0); err != nil {
			return err
		}
		return p.w.WritePop("that", 0)
	}

	if _, err := p.expectSymbol("="); err != nil {
		return err
	}
	if err := p.compileExpression(); err != nil {
		return err
	}
	if _, err := p.expectSymbol(";"); err != nil {
		return err
	}
	return p.w.WritePop(segmentFor(entry.Kind), entry.Index)
}

// ifStmt := 'if' '(' expression ')' '{' statements '}' ('else' '{' statements '}')?
func (p *Parser) compileIf() error {
	p.advance() // 'if'
	k := p.ifCounter
	p.ifCounter++
	trueLabel := fmt.Sprintf("IF_TRUE%d", k)
	falseLabel := fmt.Sprintf("IF_FALSE%d", k)
	endLabel := fmt.Sprintf("IF_END%d", k)

	if _, err := p.expectSymbol("("); err != nil {
		return err
	}
	if err := p.compileExpression(); err != nil {
		return err
	}
	if _, err := p.expectSymbol(")"); err != nil {
		return err
	}

	if err := p.w.WriteIf(trueLabel); err != nil {
		return err
	}
	if err := p.w.WriteGoto(falseLabel); err != nil {
		return err
	}
	if err := p.w.WriteLabel(trueLabel); err != nil {
		return err
	}

	if _, err := p.expectSymbol("{"); err != nil {
		return err
	}
	if err := p.compileStatements(); err != nil {
		return err
	}
	if _, err := p.expectSymbol("}"); err != nil {
		return err
	}

	if !p.cur().Is("else") {
		return p.w.WriteLabel(falseLabel)
	}

	if err := p.w.WriteGoto(endLabel); err != nil {
		return err
	}
	if err := p.w.WriteLabel(falseLabel); err != nil {
		return err
	}

	p.advance() // 'else'
	if _, err := p.expectSymbol("{"); err != nil {
		return err
	}
	if err := p.compileStatements(); err != nil {
		return err
	}
	if _, err := p.expectSymbol("}"); err != nil {
		return err
	}

	return p.w.WriteLabel(endLabel)
}

// whileStmt := 'while' '(' expression ')' '{' statements '}'
func (p *Parser) compileWhile() error {
	p.advance() // 'while'
	k := p.whileCounter
	p.whileCounter++
	expLabel := fmt.Sprintf("WHILE_EXP%d", k)
	endLabel := fmt.Sprintf("WHILE_END%d", k)

	if err := p.w.WriteLabel(expLabel); err != nil {
		return err
	}

	if _, err := p.expectSymbol("("); err != nil {
		return err
	}
	if err := p.compileExpression(); err != nil {
		return err
	}
	if _, err := p.expectSymbol(")"); err != nil {
		return err
	}

	if err := p.w.WriteArithmetic("not"); err != nil {
		return err
	}
	if err := p.w.WriteIf(endLabel); err != nil {
		return err
	}

	if _, err := p.expectSymbol("{"); err != nil {
		return err
	}
	if err := p.compileStatements(); err != nil {
		return err
	}
	if _, err := p.expectSymbol("}"); err != nil {
		return err
	}

	if err := p.w.WriteGoto(expLabel); err != nil {
		return err
	}
	return p.w.WriteLabel(endLabel)
}

// doStmt := 'do' subroutineCall ';'
func (p *Parser) compileDo() error {
	p.advance() // 'do'
	nameTok, err := p.expectIdentifier()
	if err != nil {
		return err
	}
	if err := p.compileSubroutineCall(nameTok.Raw); err != nil {
		return err
	}
	if _, err := p.expectSymbol(";"); err != nil {
		return err
	}
	return p.w.WritePop("temp", 0)
}

// returnStmt := 'return' expression? ';'
func (p *Parser) compileReturn() error {
	p.advance() // 'return'
	if p.cur().Is(";") {
		if p.returnType != "void" {
			return p.semanticf("subroutine %q must return a value", p.subroutineName)
		}
		p.advance()
		if err := p.w.WritePush("constant", 0); err != nil {
			return err
		}
		return p.w.WriteReturn()
	}

	if p.returnType == "void" {
		return p.semanticf("void subroutine %q cannot return a value", p.subroutineName)
	}
	if err := p.compileExpression(); err != nil {
		return err
	}
	if _, err := p.expectSymbol(";"); err != nil {
		return err
	}
	return p.w.WriteReturn()
}
