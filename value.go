package plorth

// Kind tags a Value with its type, per spec section 3. A tagged union
// (this) rather than a class hierarchy is the deliberate design: the
// prototype mechanism, not Go interface dispatch, decides which built-in
// word implementation runs for a given value.
type Kind uint8

const (
	KindNull Kind = iota
	KindBoolean
	KindNumber
	KindString
	KindArray
	KindObject
	KindSymbol
	KindWord
	KindQuote
	KindError
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBoolean:
		return "boolean"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	case KindSymbol:
		return "symbol"
	case KindWord:
		return "word"
	case KindQuote:
		return "quote"
	case KindError:
		return "error"
	default:
		return "unknown"
	}
}

// Value is the polymorphic root every plorth datum implements.
type Value interface {
	// Kind reports the value's type tag.
	Kind() Kind

	// Equal is structural equality against another value.
	Equal(other Value) bool

	// String is the human-display form.
	String() string

	// Source yields text which, re-parsed, reproduces an equal value for
	// null, booleans, numbers, strings, symbols, arrays, objects and
	// compiled quotes. Native quotes and errors render an opaque
	// placeholder; curried, composed, negated and constant quotes and
	// words render a descriptive form that does not parse back to an
	// equal value.
	Source() string
}

// Null is the singleton null value.
type Null struct{}

// NullValue is the single shared Null instance; null carries no state, so
// every reference to it may share one allocation.
var NullValue = &Null{}

func (*Null) Kind() Kind        { return KindNull }
func (*Null) Equal(v Value) bool { _, ok := v.(*Null); return ok }
func (*Null) String() string    { return "null" }
func (*Null) Source() string    { return "null" }

// Bool is a boolean value.
type Bool bool

// BoolValue wraps a Go bool as a Value. Callers should prefer the shared
// literals interned on the Runtime (Runtime.True / Runtime.False) where
// one is available, but constructing directly is always safe since Bool
// is a plain value type.
func BoolValue(b bool) *Bool {
	v := Bool(b)
	return &v
}

func (b *Bool) Kind() Kind { return KindBoolean }
func (b *Bool) Equal(v Value) bool {
	o, ok := v.(*Bool)
	return ok && *b == *o
}
func (b *Bool) String() string {
	if bool(*b) {
		return "true"
	}
	return "false"
}
func (b *Bool) Source() string { return b.String() }

// Prototype resolves prototype(v) per the invariant in spec section 3:
// an object's explicit prototype slot, else the runtime's registered
// prototype for v's kind, else the object prototype, else nil (only for
// the object prototype itself).
func Prototype(rt *Runtime, v Value) *Object {
	if obj, ok := v.(*Object); ok {
		if obj.proto != nil {
			return obj.proto
		}
		if obj == rt.objectProto {
			return nil
		}
		return rt.objectProto
	}
	if p := rt.prototypes[v.Kind()]; p != nil {
		return p
	}
	return rt.objectProto
}
