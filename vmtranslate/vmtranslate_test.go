package vmtranslate_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hlmerscher/n2t-toolchain/vmtranslate"
)

func lines(s string) []string {
	var out []string
	for _, l := range strings.Split(strings.TrimRight(s, "\n"), "\n") {
		if l != "" {
			out = append(out, l)
		}
	}
	return out
}

func TestPushConstantAndAdd(t *testing.T) {
	var buf bytes.Buffer
	units := []vmtranslate.FileUnit{{Basename: "Main", Source: "push constant 7\npush constant 8\nadd\n"}}
	require.NoError(t, vmtranslate.Translate(units, &buf, false, false))

	out := buf.String()
	assert.Contains(t, out, "@7")
	assert.Contains(t, out, "@8")
	assert.Contains(t, out, "M=D+M")
}

func TestFunctionPushesZeroLocals(t *testing.T) {
	var buf bytes.Buffer
	units := []vmtranslate.FileUnit{{Basename: "Main", Source: "function Main.f 3\n"}}
	require.NoError(t, vmtranslate.Translate(units, &buf, false, false))

	out := buf.String()
	assert.Equal(t, 3, strings.Count(out, "@0\nD=A"))
}

func TestLabelIsScopedToCurrentFunction(t *testing.T) {
	var buf bytes.Buffer
	src := "function Main.f 0\nlabel LOOP\ngoto LOOP\n"
	units := []vmtranslate.FileUnit{{Basename: "Main", Source: src}}
	require.NoError(t, vmtranslate.Translate(units, &buf, false, false))

	assert.Contains(t, buf.String(), "(Main.f$LOOP)")
	assert.Contains(t, buf.String(), "@Main.f$LOOP")
}

func TestBootstrapEmittedOnceForDirectoryInput(t *testing.T) {
	var buf bytes.Buffer
	units := []vmtranslate.FileUnit{
		{Basename: "Main", Source: "function Main.main 0\ncall Sys.init 0\n"},
	}
	require.NoError(t, vmtranslate.Translate(units, &buf, false, true))

	out := buf.String()
	assert.Equal(t, 1, strings.Count(out, "@256\nD=A\n@SP\nM=D"))
}

func TestDebugAnnotatesEachInstruction(t *testing.T) {
	var buf bytes.Buffer
	units := []vmtranslate.FileUnit{{Basename: "Main", Source: "push constant 1 // one\n"}}
	require.NoError(t, vmtranslate.Translate(units, &buf, true, false))

	assert.Contains(t, buf.String(), "// push constant 1")
}

func TestCallPushesFiveFrameWords(t *testing.T) {
	var buf bytes.Buffer
	units := []vmtranslate.FileUnit{{Basename: "Main", Source: "call Foo.bar 2\n"}}
	require.NoError(t, vmtranslate.Translate(units, &buf, false, false))

	out := lines(buf.String())
	pushCount := 0
	for _, l := range out {
		if strings.Contains(l, "M=M+1") {
			pushCount++
		}
	}
	assert.Equal(t, 5, pushCount)
	assert.Contains(t, buf.String(), "@ARG\nM=D")
	assert.Contains(t, buf.String(), "@LCL\nM=D")
}

func TestUnknownMnemonicIsVMDecodeError(t *testing.T) {
	_, err := vmtranslate.ParseLine("frobnicate", 1, "Main")
	require.Error(t, err)
}

func TestPopConstantIsError(t *testing.T) {
	_, err := vmtranslate.ParseLine("pop constant 0", 1, "Main")
	require.Error(t, err)
}

func TestBlankAndCommentLinesAreSkipped(t *testing.T) {
	instr, err := vmtranslate.ParseLine("  // just a comment", 1, "Main")
	require.NoError(t, err)
	assert.Nil(t, instr)

	instr, err = vmtranslate.ParseLine("   ", 2, "Main")
	require.NoError(t, err)
	assert.Nil(t, instr)
}
