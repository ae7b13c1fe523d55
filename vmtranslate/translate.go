package vmtranslate

import (
	"io"
	"strings"
)

// FileUnit is one .vm source file, already read into memory.
type FileUnit struct {
	// Basename is the file's stem (no directory, no ".vm" extension),
	// used both for static-segment scoping and for error messages.
	Basename string
	Source   string
}

// Translate lowers units, in order, into a single assembly stream.
// Bootstrap code (SP init + call Sys.init 0) is emitted first when
// bootstrap is true — the caller decides this from whether the
// original input was a directory, per spec.md §5's directory-input
// convention.
func Translate(units []FileUnit, out io.Writer, debug bool, bootstrap bool) error {
	ctx := NewContext(out, debug)
	if bootstrap {
		if err := ctx.EmitBootstrap(); err != nil {
			return err
		}
	}

	for _, u := range units {
		ctx.SetFile(u.Basename)
		for i, raw := range strings.Split(u.Source, "\n") {
			instr, err := ParseLine(raw, i+1, u.Basename)
			if err != nil {
				return err
			}
			if instr == nil {
				continue
			}
			if err := ctx.Translate(instr); err != nil {
				return err
			}
		}
	}
	return nil
}
