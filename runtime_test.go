package plorth

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(dir, rel, content string) error {
	path := filepath.Join(dir, rel)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return ioutil.WriteFile(path, []byte(content), 0o644)
}

func TestNewRuntimeRegistersPrototypes(t *testing.T) {
	rt := NewRuntime()
	for _, kind := range []Kind{KindArray, KindObject, KindQuote, KindWord, KindError, KindNumber, KindString} {
		assert.NotNil(t, rt.PrototypeFor(kind), "missing prototype for %v", kind)
	}
}

func TestRuntimeSymbolicateInterns(t *testing.T) {
	rt := NewRuntime()
	a := rt.Symbolicate("foo")
	b := rt.Symbolicate("foo")
	assert.Same(t, a, b)

	c := rt.Symbolicate("bar")
	assert.NotSame(t, a, c)
}

func TestRuntimeTrueFalseAreInterned(t *testing.T) {
	rt := NewRuntime()
	assert.Same(t, rt.True(), rt.True())
	assert.Same(t, rt.False(), rt.False())
	assert.NotEqual(t, rt.True(), rt.False())
}

func TestRuntimeMemLimitRejectsOverflow(t *testing.T) {
	rt := NewRuntime(WithMemLimit(1))
	_, err := rt.NewArray(nil)
	require.Nil(t, err)

	_, err = rt.NewArray(nil)
	require.NotNil(t, err, "second allocation should exceed the limit of 1")
	assert.Equal(t, ErrRange, err.Code)
}

func TestRuntimeDefineAndLookupGlobal(t *testing.T) {
	rt := NewRuntime()
	_, ok := rt.LookupGlobal("frobnicate")
	assert.False(t, ok)

	rt.DefineGlobal("frobnicate", rt.Constant(NewInt(9)))
	v, ok := rt.LookupGlobal("frobnicate")
	require.True(t, ok)
	assert.Equal(t, KindQuote, v.Kind())
}

func TestRuntimeFindModuleFirstMatchWins(t *testing.T) {
	dirA := t.TempDir()
	dirB := t.TempDir()
	require.NoError(t, writeFile(dirB, "a/b.plorth", "unused"))
	require.NoError(t, writeFile(dirA, "a/b.plorth", "used"))

	rt := NewRuntime(WithModulePaths([]string{dirA, dirB}))
	path, ok := rt.FindModule("a.b")
	require.True(t, ok)
	assert.Contains(t, path, dirA)
}

func TestRuntimeFindModuleNotFound(t *testing.T) {
	rt := NewRuntime(WithModulePaths([]string{t.TempDir()}))
	_, ok := rt.FindModule("nope.at.all")
	assert.False(t, ok)
}
