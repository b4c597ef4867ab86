package plorth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWordSymbolQuoteCallDefine(t *testing.T) {
	rt := NewRuntime()
	ctx := NewContext(rt, "<test>")

	sym := rt.Symbolicate("triple")
	body := rt.Compiled(mustTokenize(t, "3 *"))
	w := NewWord(sym, body)

	ctx.Push(w)
	require.True(t, ctx.Eval(`symbol`, "<test>", 1))
	v, _ := ctx.Pop()
	assert.Equal(t, "triple", v.(*Symbol).Name())

	ctx.Push(w)
	require.True(t, ctx.Eval(`quote`, "<test>", 1))
	v, _ = ctx.Pop()
	assert.Equal(t, KindQuote, v.Kind())

	ctx.Push(NewInt(4))
	ctx.Push(w)
	require.True(t, ctx.Eval(`call`, "<test>", 1))
	v, _ = ctx.Pop()
	assert.True(t, v.Equal(NewInt(12)))

	ctx.Push(w)
	require.True(t, ctx.Eval(`define`, "<test>", 1))
	ctx.Push(NewInt(5))
	require.True(t, ctx.Call("triple"))
	v, _ = ctx.Pop()
	assert.True(t, v.Equal(NewInt(15)))
}

func mustTokenize(t *testing.T, src string) []Token {
	t.Helper()
	toks, err := Tokenize(src, "<test>", 1)
	require.Nil(t, err)
	return toks
}
