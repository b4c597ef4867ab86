package plorth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringLenAtReverseEmpty(t *testing.T) {
	rt := NewRuntime()
	ctx := NewContext(rt, "<test>")

	require.True(t, ctx.Eval(`"hello" len`, "<test>", 1))
	v, _ := ctx.Pop()
	assert.True(t, v.Equal(NewInt(5)))

	require.True(t, ctx.Eval(`"hello" 1 @`, "<test>", 1))
	v, _ = ctx.Pop()
	assert.Equal(t, "e", v.(*String).String())

	require.True(t, ctx.Eval(`"hello" reverse`, "<test>", 1))
	v, _ = ctx.Pop()
	assert.Equal(t, "olleh", v.(*String).String())

	require.True(t, ctx.Eval(`"" empty?`, "<test>", 1))
	v, _ = ctx.Pop()
	assert.True(t, bool(*v.(*Bool)))

	require.True(t, ctx.Eval(`"x" empty?`, "<test>", 1))
	v, _ = ctx.Pop()
	assert.False(t, bool(*v.(*Bool)))
}

func TestStringAtOutOfRangeIsRangeError(t *testing.T) {
	rt := NewRuntime()
	ctx := NewContext(rt, "<test>")

	ok := ctx.Eval(`"hi" 5 @`, "<test>", 1)
	require.False(t, ok)
	assert.Equal(t, ErrRange, ctx.Error().Code)
}

// TestStringConcatOrderIsSecondThenTop pins the same second-then-top
// concatenation order as the array prototype's +.
func TestStringConcatOrderIsSecondThenTop(t *testing.T) {
	rt := NewRuntime()
	ctx := NewContext(rt, "<test>")

	require.True(t, ctx.Eval(`"foo" "bar" +`, "<test>", 1))
	v, _ := ctx.Pop()
	assert.Equal(t, "foobar", v.(*String).String())
}

func TestStringConcatUnderflowIsRangeError(t *testing.T) {
	rt := NewRuntime()
	ctx := NewContext(rt, "<test>")

	ok := ctx.Eval(`"only-one" +`, "<test>", 1)
	require.False(t, ok)
	assert.Equal(t, ErrRange, ctx.Error().Code)
}
