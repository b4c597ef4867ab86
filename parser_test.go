package plorth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestArrayLiteralDropPopsLiveStack pins the decision in DESIGN.md's
// Open Question #2: `drop` written in value position pops whatever is
// already on the context's live operand stack at parse time, and the
// popped value becomes that array slot. The array literal accumulates
// its elements into a plain Go slice as it parses, not onto the live
// stack, so `2`'s own slot is unaffected by the pop; `drop`'s slot is
// the one filled by the sentinel that was already on the stack.
func TestArrayLiteralDropPopsLiveStack(t *testing.T) {
	rt := NewRuntime()
	ctx := NewContext(rt, "<test>")

	ctx.Push(NewInt(99)) // sentinel, observable only via drop's slot
	require.True(t, ctx.Eval(`[1, 2, drop, 3]`, "<test>", 1))

	v, ok := ctx.Pop()
	require.True(t, ok)
	a, ok := v.(*Array)
	require.True(t, ok)
	assert.Equal(t, "[1, 2, 99, 3]", a.Source())

	// the sentinel was consumed by `drop`; nothing else remains.
	assert.Equal(t, 0, ctx.Depth())
}

func TestArrayLiteralDropOnEmptyStackIsRangeError(t *testing.T) {
	rt := NewRuntime()
	ctx := NewContext(rt, "<test>")

	ok := ctx.Eval(`[1, drop]`, "<test>", 1)
	require.False(t, ok)
	require.NotNil(t, ctx.Error())
	assert.Equal(t, ErrRange, ctx.Error().Code)
}

func TestQuoteLiteralIsLazy(t *testing.T) {
	rt := NewRuntime()
	ctx := NewContext(rt, "<test>")

	require.True(t, ctx.Eval(`( no-such-word )`, "<test>", 1))
	v, ok := ctx.Pop()
	require.True(t, ok)
	assert.Equal(t, KindQuote, v.Kind())
}

func TestParseDeclarationBindsName(t *testing.T) {
	rt := NewRuntime()
	ctx := NewContext(rt, "<test>")

	require.True(t, ctx.Eval(`: answer 42 ;`, "<test>", 1))
	require.True(t, ctx.Call("answer"))
	v, _ := ctx.Pop()
	assert.True(t, v.Equal(NewInt(42)))
}
