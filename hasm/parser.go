package hasm

import (
	"strings"

	"github.com/hlmerscher/n2t-toolchain/internal/perr"
)

// ParseSource strips comments and whitespace and classifies every
// remaining line as an A-instruction, C-instruction, or label
// declaration, preserving source order.
func ParseSource(src string, file string) ([]Line, error) {
	var lines []Line
	for i, raw := range strings.Split(src, "\n") {
		lineNo := i + 1
		cleaned := clean(raw)
		if cleaned == "" {
			continue
		}

		line, err := classify(cleaned, lineNo, file)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	return lines, nil
}

func clean(raw string) string {
	line := raw
	if i := strings.Index(line, "//"); i >= 0 {
		line = line[:i]
	}
	return strings.TrimSpace(strings.ReplaceAll(line, " ", ""))
}

func classify(line string, lineNo int, file string) (Line, error) {
	switch {
	case strings.HasPrefix(line, "@"):
		symbol := line[1:]
		if symbol == "" {
			return Line{}, perr.New(perr.AsmEncode, file, lineNo, line, "A-instruction missing operand")
		}
		return Line{Kind: KindA, Symbol: symbol, LineNo: lineNo}, nil

	case strings.HasPrefix(line, "(") && strings.HasSuffix(line, ")"):
		name := line[1 : len(line)-1]
		if name == "" {
			return Line{}, perr.New(perr.AsmEncode, file, lineNo, line, "empty label declaration")
		}
		return Line{Kind: KindLabel, Symbol: name, LineNo: lineNo}, nil

	default:
		return classifyC(line, lineNo, file)
	}
}

func classifyC(line string, lineNo int, file string) (Line, error) {
	dest := ""
	rest := line
	if i := strings.Index(rest, "="); i >= 0 {
		dest = rest[:i]
		rest = rest[i+1:]
	}

	jmp := ""
	comp := rest
	if i := strings.Index(rest, ";"); i >= 0 {
		comp = rest[:i]
		jmp = rest[i+1:]
	}

	if comp == "" {
		return Line{}, perr.New(perr.AsmEncode, file, lineNo, line, "C-instruction missing comp field")
	}

	return Line{Kind: KindC, Dest: dest, Comp: comp, Jmp: jmp, LineNo: lineNo}, nil
}
