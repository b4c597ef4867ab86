package plorth

import "strings"

// Array is an immutable ordered sequence of values. Operations that
// produce arrays (map, filter, reverse, +, ...) always return a fresh
// backing slice; the receiver is never mutated. See spec section 3.
type Array struct {
	elems []Value
}

// NewArray takes ownership of elems; callers that still hold a reference
// to the backing slice should pass a copy.
func NewArray(elems []Value) *Array {
	return &Array{elems: elems}
}

func (a *Array) Kind() Kind { return KindArray }

func (a *Array) Equal(v Value) bool {
	o, ok := v.(*Array)
	if !ok || len(a.elems) != len(o.elems) {
		return false
	}
	for i, e := range a.elems {
		if !e.Equal(o.elems[i]) {
			return false
		}
	}
	return true
}

func (a *Array) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, e := range a.elems {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(e.String())
	}
	sb.WriteByte(']')
	return sb.String()
}

func (a *Array) Source() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, e := range a.elems {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(e.Source())
	}
	sb.WriteByte(']')
	return sb.String()
}

// Len returns the number of elements.
func (a *Array) Len() int { return len(a.elems) }

// Elements returns the backing slice. Callers must not mutate it; it is
// shared with the Array and, transitively, with anything that captured
// the same Value.
func (a *Array) Elements() []Value { return a.elems }

// At normalizes negative indices (counting from the end) and returns the
// element there, or ok=false if out of range.
func (a *Array) At(i int) (Value, bool) {
	if i < 0 {
		i += len(a.elems)
	}
	if i < 0 || i >= len(a.elems) {
		return nil, false
	}
	return a.elems[i], true
}

// With returns a fresh array with index i set to v. An out-of-range index
// (after negative normalization) appends v instead of erroring, per the
// `!` word's documented behavior.
func (a *Array) With(i int, v Value) *Array {
	norm := i
	if norm < 0 {
		norm += len(a.elems)
	}
	out := make([]Value, len(a.elems))
	copy(out, a.elems)
	if norm < 0 || norm >= len(out) {
		out = append(out, v)
	} else {
		out[norm] = v
	}
	return NewArray(out)
}

// Reversed returns a fresh array with elements in reverse order.
func (a *Array) Reversed() *Array {
	out := make([]Value, len(a.elems))
	for i, e := range a.elems {
		out[len(a.elems)-1-i] = e
	}
	return NewArray(out)
}

// Concat returns second ++ first as per the documented (and spec-pinned)
// `array array +` word: the array that was second-from-top on the stack
// is placed before the one that was on top. Here `a` is the receiver
// that was popped first (the original top-of-stack array) and `second`
// is the one popped next.
func (a *Array) Concat(second *Array) *Array {
	out := make([]Value, 0, len(a.elems)+len(second.elems))
	out = append(out, second.elems...)
	out = append(out, a.elems...)
	return NewArray(out)
}
