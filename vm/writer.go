// Package vm emits the stack-machine VM instruction text that the Jack
// code generator produces during its recursive descent. Writer knows
// nothing about Jack syntax; it only knows how to render each VM
// instruction shape to text.
package vm

import (
	"fmt"
	"io"

	"golang.org/x/exp/slices"
)

var segments = []string{
	"argument", "local", "static", "this", "that", "pointer", "temp", "constant",
}

var arithmeticOps = []string{
	"add", "sub", "neg", "eq", "gt", "lt", "and", "or", "not",
}

// Writer renders VM instructions to out, one per line.
type Writer struct {
	out io.Writer
}

func New(out io.Writer) *Writer {
	return &Writer{out: out}
}

func (w *Writer) writeln(line string) error {
	_, err := fmt.Fprintln(w.out, line)
	return err
}

func (w *Writer) WritePush(segment string, index int) error {
	if !slices.Contains(segments, segment) {
		return fmt.Errorf("vm: unknown segment %q", segment)
	}
	return w.writeln(fmt.Sprintf("push %s %d", segment, index))
}

func (w *Writer) WritePop(segment string, index int) error {
	if segment == "constant" {
		return fmt.Errorf("vm: cannot pop into constant segment")
	}
	if !slices.Contains(segments, segment) {
		return fmt.Errorf("vm: unknown segment %q", segment)
	}
	return w.writeln(fmt.Sprintf("pop %s %d", segment, index))
}

func (w *Writer) WriteArithmetic(op string) error {
	if !slices.Contains(arithmeticOps, op) {
		return fmt.Errorf("vm: unknown arithmetic op %q", op)
	}
	return w.writeln(op)
}

func (w *Writer) WriteLabel(name string) error {
	return w.writeln(fmt.Sprintf("label %s", name))
}

func (w *Writer) WriteGoto(name string) error {
	return w.writeln(fmt.Sprintf("goto %s", name))
}

func (w *Writer) WriteIf(name string) error {
	return w.writeln(fmt.Sprintf("if-goto %s", name))
}

func (w *Writer) WriteFunction(name string, nLocals int) error {
	return w.writeln(fmt.Sprintf("function %s %d", name, nLocals))
}

func (w *Writer) WriteCall(name string, nArgs int) error {
	return w.writeln(fmt.Sprintf("call %s %d", name, nArgs))
}

func (w *Writer) WriteReturn() error {
	return w.writeln("return")
}
