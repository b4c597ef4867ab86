package plorth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNumberArithmetic(t *testing.T) {
	rt := NewRuntime()
	ctx := NewContext(rt, "<test>")

	cases := []struct {
		src  string
		want *Number
	}{
		{`2 3 +`, NewInt(5)},
		{`5 3 -`, NewInt(2)},
		{`4 3 *`, NewInt(12)},
		{`6 3 /`, NewInt(2)},
		{`7 2 %`, NewInt(1)},
		{`1 2.5 +`, NewFloat(3.5)},
	}
	for _, c := range cases {
		require.True(t, ctx.Eval(c.src, "<test>", 1), c.src)
		v, _ := ctx.Pop()
		assert.True(t, v.Equal(c.want), c.src)
		ctx.Clear()
	}
}

func TestNumberDivisionByZeroIsRangeError(t *testing.T) {
	rt := NewRuntime()
	ctx := NewContext(rt, "<test>")

	ok := ctx.Eval(`1 0 /`, "<test>", 1)
	require.False(t, ok)
	assert.Equal(t, ErrRange, ctx.Error().Code)
}

func TestNumberModuloByZeroIsRangeError(t *testing.T) {
	rt := NewRuntime()
	ctx := NewContext(rt, "<test>")

	ok := ctx.Eval(`1 0 %`, "<test>", 1)
	require.False(t, ok)
	assert.Equal(t, ErrRange, ctx.Error().Code)
}

func TestNumberComparisons(t *testing.T) {
	rt := NewRuntime()
	ctx := NewContext(rt, "<test>")

	cases := []struct {
		src  string
		want bool
	}{
		{`1 2 <`, true},
		{`2 1 <`, false},
		{`2 1 >`, true},
		{`1 1 <=`, true},
		{`1 1 >=`, true},
		{`1 1 =`, true},
		{`1 2 <>`, true},
		{`1 2 =`, false},
	}
	for _, c := range cases {
		require.True(t, ctx.Eval(c.src, "<test>", 1), c.src)
		v, _ := ctx.Pop()
		assert.Equal(t, c.want, bool(*v.(*Bool)), c.src)
		ctx.Clear()
	}
}

func TestNumberAddUnderflowIsRangeError(t *testing.T) {
	rt := NewRuntime()
	ctx := NewContext(rt, "<test>")

	ok := ctx.Eval(`1 +`, "<test>", 1)
	require.False(t, ok)
	assert.Equal(t, ErrRange, ctx.Error().Code)
}
