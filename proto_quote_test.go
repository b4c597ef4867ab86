package plorth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuoteComposeRunsLeftThenRight(t *testing.T) {
	rt := NewRuntime()
	ctx := NewContext(rt, "<test>")
	require.True(t, ctx.Eval(`5 ( 1 + ) ( 2 * ) compose call`, "<test>", 1))
	v, _ := ctx.Pop()
	assert.True(t, v.Equal(NewInt(12)))
}

func TestQuoteCurryPrependsArgument(t *testing.T) {
	rt := NewRuntime()
	ctx := NewContext(rt, "<test>")
	require.True(t, ctx.Eval(`3 ( + ) curry`, "<test>", 1))
	q, ok := ctxTop(ctx)
	require.True(t, ok)
	assert.Equal(t, KindQuote, q.Kind())

	require.True(t, ctx.Eval(`4 swap call`, "<test>", 1))
	v, _ := ctx.Pop()
	assert.True(t, v.Equal(NewInt(7)))
}

func TestQuoteNegateFlipsBoolean(t *testing.T) {
	rt := NewRuntime()
	ctx := NewContext(rt, "<test>")
	require.True(t, ctx.Eval(`( true ) negate call`, "<test>", 1))
	v, _ := ctx.Pop()
	assert.False(t, bool(*v.(*Bool)))
}

func TestQuoteDipHidesAndRestoresValue(t *testing.T) {
	rt := NewRuntime()
	ctx := NewContext(rt, "<test>")
	require.True(t, ctx.Eval(`1 2 ( 10 + ) dip`, "<test>", 1))
	assert.Equal(t, []string{"11", "2"}, stackStrings(ctx))
}

func TestQuote2DipHidesAndRestoresTwoValues(t *testing.T) {
	rt := NewRuntime()
	ctx := NewContext(rt, "<test>")
	require.True(t, ctx.Eval(`1 2 3 ( 100 + ) 2dip`, "<test>", 1))
	assert.Equal(t, []string{"101", "2", "3"}, stackStrings(ctx))
}

func ctxTop(ctx *Context) (Value, bool) { return ctx.Peek() }
