package vmtranslate

import (
	"strconv"
	"strings"

	"github.com/hlmerscher/n2t-toolchain/internal/perr"
)

// ParseLine decodes one line of VM source. Blank lines and lines that
// are entirely a "//" comment yield (nil, nil): the caller should skip
// them. A trailing "//" comment on an otherwise valid line is stripped.
func ParseLine(raw string, lineNo int, file string) (*Instruction, error) {
	line := raw
	if i := strings.Index(line, "//"); i >= 0 {
		line = line[:i]
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return nil, nil
	}

	fields := strings.Fields(line)
	op := Op(fields[0])

	switch {
	case arithmeticOps[op]:
		if len(fields) != 1 {
			return nil, perr.Newf(perr.VMDecode, file, lineNo, line, "%s takes no operands", op)
		}
		return &Instruction{Op: op, Raw: raw, Line: lineNo}, nil

	case op == OpPush || op == OpPop:
		if len(fields) != 3 {
			return nil, perr.Newf(perr.VMDecode, file, lineNo, line, "%s requires segment and index", op)
		}
		segment := fields[1]
		if !segments[segment] {
			return nil, perr.Newf(perr.VMDecode, file, lineNo, line, "unknown segment %q", segment)
		}
		idx, err := parseIndex(fields[2])
		if err != nil {
			return nil, perr.Newf(perr.VMDecode, file, lineNo, line, "invalid index %q", fields[2])
		}
		if op == OpPop && segment == "constant" {
			return nil, perr.Newf(perr.VMDecode, file, lineNo, line, "cannot pop into constant segment")
		}
		return &Instruction{Op: op, Segment: segment, Index: idx, Raw: raw, Line: lineNo}, nil

	case op == OpLabel || op == OpGoto || op == OpIfGoto:
		if len(fields) != 2 {
			return nil, perr.Newf(perr.VMDecode, file, lineNo, line, "%s requires a label name", op)
		}
		return &Instruction{Op: op, Name: fields[1], Raw: raw, Line: lineNo}, nil

	case op == OpFunction:
		if len(fields) != 3 {
			return nil, perr.Newf(perr.VMDecode, file, lineNo, line, "function requires name and nLocals")
		}
		n, err := parseIndex(fields[2])
		if err != nil {
			return nil, perr.Newf(perr.VMDecode, file, lineNo, line, "invalid nLocals %q", fields[2])
		}
		return &Instruction{Op: op, Name: fields[1], NLocals: n, Raw: raw, Line: lineNo}, nil

	case op == OpCall:
		if len(fields) != 3 {
			return nil, perr.Newf(perr.VMDecode, file, lineNo, line, "call requires name and nArgs")
		}
		n, err := parseIndex(fields[2])
		if err != nil {
			return nil, perr.Newf(perr.VMDecode, file, lineNo, line, "invalid nArgs %q", fields[2])
		}
		return &Instruction{Op: op, Name: fields[1], NArgs: n, Raw: raw, Line: lineNo}, nil

	case op == OpReturn:
		if len(fields) != 1 {
			return nil, perr.Newf(perr.VMDecode, file, lineNo, line, "return takes no operands")
		}
		return &Instruction{Op: op, Raw: raw, Line: lineNo}, nil

	default:
		return nil, perr.Newf(perr.VMDecode, file, lineNo, line, "unknown mnemonic %q", fields[0])
	}
}

func parseIndex(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, strconv.ErrRange
	}
	return n, nil
}
