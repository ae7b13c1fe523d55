package hasm_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hlmerscher/n2t-toolchain/hasm"
)

func TestTrivialAdd(t *testing.T) {
	src := "@2\nD=A\n@3\nD=D+A\n@0\nM=D\n"
	var buf bytes.Buffer
	require.NoError(t, hasm.Assemble(src, "add.asm", &buf))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 6)
	assert.Equal(t, "0000000000000010", lines[0])
	assert.Equal(t, "1110001100001000", lines[5])
	for _, l := range lines {
		assert.Len(t, l, 16)
	}
}

func TestLabelAndVariable(t *testing.T) {
	src := "(LOOP)\n@i\nM=M+1\n@LOOP\n0;JMP\n"
	var buf bytes.Buffer
	require.NoError(t, hasm.Assemble(src, "loop.asm", &buf))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 4)

	// @i allocates address 16 -> 0000000000010000
	assert.Equal(t, "0000000000010000", lines[0])
	// @LOOP resolves to address 0 -> 0000000000000000
	assert.Equal(t, "0000000000000000", lines[2])
}

func TestEveryCInstructionStartsWith111(t *testing.T) {
	src := "@0\nD=A\nD;JGT\nD=D+1;JMP\n"
	var buf bytes.Buffer
	require.NoError(t, hasm.Assemble(src, "t.asm", &buf))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	for _, l := range lines[1:] {
		assert.True(t, strings.HasPrefix(l, "111"))
	}
}

func TestVariablesAllocateSequentiallyFrom16(t *testing.T) {
	src := "@foo\n@bar\n@foo\n"
	var buf bytes.Buffer
	require.NoError(t, hasm.Assemble(src, "t.asm", &buf))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, lines[0], lines[2]) // same symbol -> same address
	assert.NotEqual(t, lines[0], lines[1])
}

func TestPredefinedSymbols(t *testing.T) {
	src := "@SCREEN\n@KBD\n@R2\n"
	var buf bytes.Buffer
	require.NoError(t, hasm.Assemble(src, "t.asm", &buf))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	// 16384 = 0100000000000000
	assert.Equal(t, "0100000000000000", lines[0])
	// 24576 = 0110000000000000
	assert.Equal(t, "0110000000000000", lines[1])
	// R2 = 2
	assert.Equal(t, "0000000000000010", lines[2])
}

func TestDuplicateLabelIsError(t *testing.T) {
	src := "(LOOP)\n@0\n(LOOP)\n@0\n"
	var buf bytes.Buffer
	err := hasm.Assemble(src, "t.asm", &buf)
	require.Error(t, err)
}

func TestUnknownCompMnemonicIsError(t *testing.T) {
	_, err := hasm.EncodeC("D", "D%A", "", "t.asm", 1)
	require.Error(t, err)
}

func TestCommentsAndBlankLinesIgnored(t *testing.T) {
	src := "// header\n\n@1  // load one\nD=A\n"
	var buf bytes.Buffer
	require.NoError(t, hasm.Assemble(src, "t.asm", &buf))
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
}

func TestAssemblingTwiceIsByteIdentical(t *testing.T) {
	src := "@2\nD=A\n@3\nD=D+A\n@0\nM=D\n"
	var b1, b2 bytes.Buffer
	require.NoError(t, hasm.Assemble(src, "t.asm", &b1))
	require.NoError(t, hasm.Assemble(src, "t.asm", &b2))
	assert.Equal(t, b1.String(), b2.String())
}
