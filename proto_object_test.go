package plorth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectPrototypeDefaultsToObjectProto(t *testing.T) {
	rt := NewRuntime()
	ctx := NewContext(rt, "<test>")

	require.True(t, ctx.Eval(`{} prototype`, "<test>", 1))
	v, _ := ctx.Pop()
	assert.Same(t, rt.objectProto, v)
}

func TestObjectPrototypeOnObjectProtoItselfIsNull(t *testing.T) {
	rt := NewRuntime()
	ctx := NewContext(rt, "<test>")

	ctx.Push(rt.objectProto)
	require.True(t, ctx.Eval(`prototype`, "<test>", 1))
	v, _ := ctx.Pop()
	assert.Equal(t, NullValue, v)
}

func TestObjectSetPrototypeThenLookupFindsNewProtoWord(t *testing.T) {
	rt := NewRuntime()
	ctx := NewContext(rt, "<test>")

	sym := rt.Symbolicate("greet")
	custom := rt.NewObject([]string{"greet"}, map[string]Value{
		"greet": rt.Compiled(mustTokenize(t, `"hi"`)),
	})
	_ = sym

	ctx.Push(rt.NewObject(nil, nil))
	ctx.Push(custom)
	require.True(t, ctx.Eval(`prototype!`, "<test>", 1))
	v, _ := ctx.Pop()
	obj, ok := v.(*Object)
	require.True(t, ok)

	ctx.Push(obj)
	require.True(t, ctx.Eval(`greet`, "<test>", 1))
	out, _ := ctx.Pop()
	assert.Equal(t, "hi", out.(*String).String())
}

func TestObjectSetPrototypeToNullClearsExplicitSlot(t *testing.T) {
	rt := NewRuntime()
	ctx := NewContext(rt, "<test>")

	ctx.Push(rt.NewObject(nil, nil))
	ctx.Push(NullValue)
	require.True(t, ctx.Eval(`prototype!`, "<test>", 1))
	v, _ := ctx.Pop()
	obj := v.(*Object)

	require.Equal(t, obj, obj)
	ctx.Push(obj)
	require.True(t, ctx.Eval(`prototype`, "<test>", 1))
	proto, _ := ctx.Pop()
	assert.Same(t, rt.objectProto, proto)
}
