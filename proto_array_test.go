package plorth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func evalOnto(t *testing.T, ctx *Context, src string) {
	t.Helper()
	require.True(t, ctx.Eval(src, "<test>", 1), func() string {
		if err := ctx.Error(); err != nil {
			return err.Diagnostic()
		}
		return ""
	}())
}

func TestArrayConcatOrderIsSecondThenTop(t *testing.T) {
	rt := NewRuntime()
	ctx := NewContext(rt, "<test>")
	evalOnto(t, ctx, `[1, 2] [3, 4] +`)

	v, ok := ctx.Pop()
	require.True(t, ok)
	a, ok := v.(*Array)
	require.True(t, ok)
	assert.Equal(t, "[1, 2, 3, 4]", a.Source())
}

func TestArrayReduceEmptyIsRangeError(t *testing.T) {
	rt := NewRuntime()
	ctx := NewContext(rt, "<test>")
	ok := ctx.Eval(`[] ( + ) reduce`, "<test>", 1)
	require.False(t, ok)
	require.NotNil(t, ctx.Error())
	assert.Equal(t, ErrRange, ctx.Error().Code)
	assert.Equal(t, "Cannot reduce empty array", ctx.Error().Message)
	assert.Equal(t, 0, ctx.Depth())
}

func TestArrayMapFilterReduce(t *testing.T) {
	rt := NewRuntime()
	ctx := NewContext(rt, "<test>")
	evalOnto(t, ctx, `[1, 2, 3, 4] ( 2 * ) map`)
	v, _ := ctx.Pop()
	assert.Equal(t, "[2, 4, 6, 8]", v.(*Array).Source())

	evalOnto(t, ctx, `[1, 2, 3, 4] ( 2 % 0 = ) filter`)
	v, _ = ctx.Pop()
	assert.Equal(t, "[2, 4]", v.(*Array).Source())

	evalOnto(t, ctx, `[1, 2, 3, 4] ( + ) reduce`)
	v, _ = ctx.Pop()
	assert.True(t, v.Equal(NewInt(10)))
}

func TestArraySetOutOfRangeAppends(t *testing.T) {
	rt := NewRuntime()
	ctx := NewContext(rt, "<test>")
	evalOnto(t, ctx, `[1, 2] 99 3 !`)
	v, _ := ctx.Pop()
	assert.Equal(t, "[1, 2, 3]", v.(*Array).Source())
}

func TestArrayFlattenAndUniq(t *testing.T) {
	rt := NewRuntime()
	ctx := NewContext(rt, "<test>")
	evalOnto(t, ctx, `[1, [2, 3], [4, [5]]] flatten`)
	v, _ := ctx.Pop()
	assert.Equal(t, "[1, 2, 3, 4, 5]", v.(*Array).Source())

	evalOnto(t, ctx, `[1, 1, 2, 2, 3] uniq`)
	v, _ = ctx.Pop()
	assert.Equal(t, "[1, 2, 3]", v.(*Array).Source())
}

func TestArrayFirstEmptyIsRangeError(t *testing.T) {
	rt := NewRuntime()
	ctx := NewContext(rt, "<test>")
	ok := ctx.Eval(`[] first`, "<test>", 1)
	require.False(t, ok)
	assert.Equal(t, ErrRange, ctx.Error().Code)
}
