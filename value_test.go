package plorth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindStringNames(t *testing.T) {
	cases := map[Kind]string{
		KindNull:    "null",
		KindBoolean: "boolean",
		KindNumber:  "number",
		KindString:  "string",
		KindArray:   "array",
		KindObject:  "object",
		KindSymbol:  "symbol",
		KindWord:    "word",
		KindQuote:   "quote",
		KindError:   "error",
	}
	for k, want := range cases {
		assert.Equal(t, want, k.String())
	}
}

func TestPrototypeResolutionForKinds(t *testing.T) {
	rt := NewRuntime()

	assert.Same(t, rt.prototypes[KindNumber], Prototype(rt, NewInt(1)))
	assert.Same(t, rt.prototypes[KindString], Prototype(rt, NewString("x")))
	assert.Same(t, rt.prototypes[KindArray], Prototype(rt, NewArray(nil)))
}

func TestPrototypeResolutionForPlainObject(t *testing.T) {
	rt := NewRuntime()

	obj := rt.NewObject(nil, nil)
	assert.Same(t, rt.objectProto, Prototype(rt, obj))
}

func TestPrototypeResolutionForObjectWithExplicitProto(t *testing.T) {
	rt := NewRuntime()

	custom := rt.NewObject([]string{"k"}, map[string]Value{"k": NewInt(1)})
	obj := rt.NewObject(nil, nil).WithPrototype(custom)
	assert.Same(t, custom, Prototype(rt, obj))
}

func TestPrototypeResolutionTerminatesAtObjectProto(t *testing.T) {
	rt := NewRuntime()

	assert.Nil(t, Prototype(rt, rt.objectProto))
}

func TestNullEquality(t *testing.T) {
	assert.True(t, NullValue.Equal(NullValue))
	assert.False(t, NullValue.Equal(NewInt(0)))
}

func TestBoolEquality(t *testing.T) {
	assert.True(t, BoolValue(true).Equal(BoolValue(true)))
	assert.False(t, BoolValue(true).Equal(BoolValue(false)))
	assert.False(t, BoolValue(true).Equal(NewInt(1)))
}

func TestNumberEqualityAcrossRepresentation(t *testing.T) {
	assert.True(t, NewInt(2).Equal(NewFloat(2)))
	assert.False(t, NewInt(2).Equal(NewFloat(2.5)))
}
