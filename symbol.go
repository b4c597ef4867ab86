package plorth

// Symbol is an interned string identifier used as a word name. Symbols
// are interned per-Runtime (see Runtime.Symbolicate, generalized from
// gothird's string-interning table) so that two symbols with the same
// name are the same *Symbol.
type Symbol struct {
	name string
}

func (s *Symbol) Kind() Kind { return KindSymbol }

func (s *Symbol) Equal(v Value) bool {
	o, ok := v.(*Symbol)
	return ok && s.name == o.name
}

func (s *Symbol) String() string { return s.name }
func (s *Symbol) Source() string { return s.name }

// Name returns the symbol's text.
func (s *Symbol) Name() string { return s.name }
