package hasm

import (
	"fmt"
	"io"
	"strconv"

	"github.com/hlmerscher/n2t-toolchain/internal/perr"
)

// Assemble runs both passes over src and writes one 16-bit ASCII binary
// word per non-label instruction to out, LF-terminated.
func Assemble(src string, file string, out io.Writer) error {
	lines, err := ParseSource(src, file)
	if err != nil {
		return err
	}

	st := NewSymbolTable()
	if err := resolveLabels(lines, st); err != nil {
		return err
	}

	for _, l := range lines {
		word, err := encodeLine(l, st, file)
		if err != nil {
			return err
		}
		if word == "" {
			continue // label declaration: consumes no instruction address
		}
		if _, err := fmt.Fprintln(out, word); err != nil {
			return err
		}
	}
	return nil
}

// resolveLabels is assembler pass 1: it never emits output, only
// records each label's address (the address of the following
// instruction).
func resolveLabels(lines []Line, st *SymbolTable) error {
	addr := 0
	for _, l := range lines {
		if l.Kind == KindLabel {
			if err := st.DefineLabel(l.Symbol, addr); err != nil {
				return perr.New(perr.AsmEncode, "", l.LineNo, l.Symbol, err.Error())
			}
			continue
		}
		addr++
	}
	return nil
}

func encodeLine(l Line, st *SymbolTable, file string) (string, error) {
	switch l.Kind {
	case KindLabel:
		return "", nil
	case KindA:
		addr, err := resolveAddress(l.Symbol, st, file, l.LineNo)
		if err != nil {
			return "", err
		}
		return EncodeA(addr)
	case KindC:
		return EncodeC(l.Dest, l.Comp, l.Jmp, file, l.LineNo)
	default:
		return "", fmt.Errorf("hasm: unhandled line kind %v", l.Kind)
	}
}

// resolveAddress implements the @x rules: a non-negative decimal
// literal is used verbatim; a known symbol resolves to its address;
// anything else is allocated the next free RAM address.
func resolveAddress(symbol string, st *SymbolTable, file string, lineNo int) (int, error) {
	if n, err := strconv.Atoi(symbol); err == nil {
		if n < 0 || n > maxRAMAddress {
			return 0, perr.Newf(perr.AsmEncode, file, lineNo, symbol, "address literal out of range")
		}
		return n, nil
	}
	if addr, ok := st.Lookup(symbol); ok {
		return addr, nil
	}
	addr, err := st.AllocateVariable(symbol)
	if err != nil {
		return 0, perr.New(perr.AsmEncode, file, lineNo, symbol, err.Error())
	}
	return addr, nil
}
