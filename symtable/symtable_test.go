package symtable_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hlmerscher/n2t-toolchain/symtable"
)

func TestDefineAndLookup(t *testing.T) {
	st := symtable.New()
	_, err := st.Define("x", "int", symtable.Field)
	require.NoError(t, err)
	_, err = st.Define("y", "int", symtable.Field)
	require.NoError(t, err)

	st.StartSubroutine()
	_, err = st.Define("ax", "int", symtable.Argument)
	require.NoError(t, err)
	_, err = st.Define("total", "int", symtable.Local)
	require.NoError(t, err)

	e, ok := st.Lookup("ax")
	require.True(t, ok)
	assert.Equal(t, symtable.Argument, e.Kind)
	assert.Equal(t, 0, e.Index)

	e, ok = st.Lookup("y")
	require.True(t, ok)
	assert.Equal(t, 1, e.Index)

	assert.Equal(t, 2, st.Count(symtable.Field))
	assert.Equal(t, 1, st.Count(symtable.Argument))
}

func TestSubroutineScopeShadowsClassScope(t *testing.T) {
	st := symtable.New()
	_, err := st.Define("x", "int", symtable.Field)
	require.NoError(t, err)

	st.StartSubroutine()
	_, err = st.Define("x", "int", symtable.Local)
	require.NoError(t, err)

	e, ok := st.Lookup("x")
	require.True(t, ok)
	assert.Equal(t, symtable.Local, e.Kind)
}

func TestRedefinitionIsError(t *testing.T) {
	st := symtable.New()
	_, err := st.Define("x", "int", symtable.Field)
	require.NoError(t, err)
	_, err = st.Define("x", "int", symtable.Field)
	require.Error(t, err)
}

func TestStartSubroutineResetsOnlySubroutineScope(t *testing.T) {
	st := symtable.New()
	_, _ = st.Define("f1", "int", symtable.Field)

	st.StartSubroutine()
	_, _ = st.Define("a", "int", symtable.Argument)
	st.StartSubroutine()

	assert.Equal(t, 0, st.Count(symtable.Argument))
	_, ok := st.Lookup("a")
	assert.False(t, ok)
	_, ok = st.Lookup("f1")
	assert.True(t, ok)
}
