package plorth

// String is an immutable sequence of Unicode code points. Indexing is by
// code point, not byte, per spec section 3.
type String struct {
	runes []rune
}

// NewString builds a String value from a Go string.
func NewString(s string) *String {
	return &String{runes: []rune(s)}
}

func newStringFromRunes(runes []rune) *String {
	cp := make([]rune, len(runes))
	copy(cp, runes)
	return &String{runes: cp}
}

func (s *String) Kind() Kind { return KindString }

func (s *String) Equal(v Value) bool {
	o, ok := v.(*String)
	if !ok || len(s.runes) != len(o.runes) {
		return false
	}
	for i, r := range s.runes {
		if o.runes[i] != r {
			return false
		}
	}
	return true
}

func (s *String) String() string { return string(s.runes) }

func (s *String) Source() string { return JSONStringify(string(s.runes)) }

// Len returns the number of code points in the string.
func (s *String) Len() int { return len(s.runes) }

// At returns the code point at index i, honoring negative indices that
// count from the end, mirroring Array indexing semantics.
func (s *String) At(i int) (rune, bool) {
	if i < 0 {
		i += len(s.runes)
	}
	if i < 0 || i >= len(s.runes) {
		return 0, false
	}
	return s.runes[i], true
}

// Concat returns a fresh String with other's runes appended after s's.
func (s *String) Concat(other *String) *String {
	out := make([]rune, 0, len(s.runes)+len(other.runes))
	out = append(out, s.runes...)
	out = append(out, other.runes...)
	return &String{runes: out}
}
