package tokenizer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hlmerscher/n2t-toolchain/internal/perr"
	"github.com/hlmerscher/n2t-toolchain/tokenizer"
)

func TestTokenizeBasics(t *testing.T) {
	src := `class Main {
		// comment
		function void main() {
			/* block
			   comment */
			var int x;
			let x = 32767;
			return;
		}
	}`

	toks, err := tokenizer.Tokenize(src, "Main.jack")
	require.NoError(t, err)

	var raws []string
	for _, tok := range toks {
		raws = append(raws, tok.Raw)
	}
	assert.Equal(t, []string{
		"class", "Main", "{",
		"function", "void", "main", "(", ")", "{",
		"var", "int", "x", ";",
		"let", "x", "=", "32767", ";",
		"return", ";",
		"}",
		"}",
	}, raws)
}

func TestKeywordPrefixIsIdentifier(t *testing.T) {
	toks, err := tokenizer.Tokenize("var int classify;", "t.jack")
	require.NoError(t, err)
	require.Len(t, toks, 4)
	assert.Equal(t, tokenizer.IDENTIFIER, toks[2].Type)
	assert.Equal(t, "classify", toks[2].Raw)
}

func TestIntegerOutOfRange(t *testing.T) {
	_, err := tokenizer.Tokenize("32768", "t.jack")
	require.Error(t, err)
	assert.True(t, perr.Is(err, perr.Lex))
}

func TestIntegerAtBoundaryIsAccepted(t *testing.T) {
	toks, err := tokenizer.Tokenize("32767", "t.jack")
	require.NoError(t, err)
	require.Len(t, toks, 1)
	assert.Equal(t, 32767, toks[0].IntVal)
}

func TestUnterminatedString(t *testing.T) {
	_, err := tokenizer.Tokenize(`"hello`, "t.jack")
	require.Error(t, err)
	assert.True(t, perr.Is(err, perr.Lex))
}

func TestStringWithNewlineIsError(t *testing.T) {
	_, err := tokenizer.Tokenize("\"hello\nworld\"", "t.jack")
	require.Error(t, err)
}

func TestCommentInsideStringIsPreserved(t *testing.T) {
	toks, err := tokenizer.Tokenize(`"not // a comment"`, "t.jack")
	require.NoError(t, err)
	require.Len(t, toks, 1)
	assert.Equal(t, "not // a comment", toks[0].Raw)
}

func TestEmptyStringLiteral(t *testing.T) {
	toks, err := tokenizer.Tokenize(`""`, "t.jack")
	require.NoError(t, err)
	require.Len(t, toks, 1)
	assert.Equal(t, "", toks[0].Raw)
	assert.Equal(t, tokenizer.STRING_CONST, toks[0].Type)
}

func TestUnknownCharacterIsLexError(t *testing.T) {
	_, err := tokenizer.Tokenize("@", "t.jack")
	require.Error(t, err)
	assert.True(t, perr.Is(err, perr.Lex))
}
