package plorth

// Quote is a suspended computation: the dominant abstraction in a
// concatenative language. All six variants answer Call(ctx) -> bool,
// meaning "no error was latched during this call" (spec section 4.7).
type Quote interface {
	Value
	Call(ctx *Context) bool
}

func quoteEqual(a, b Quote) bool {
	av, aok := a.(Value)
	bv, bok := b.(Value)
	if !aok || !bok {
		return a == b
	}
	return av.Equal(bv)
}

// CompiledQuote carries a token vector and evaluates lazily; see
// Context's compiled-quote execution loop for Call's implementation.
// Token text is always copied (never borrowed from parser input) so a
// quote may safely outlive the source text it came from.
type CompiledQuote struct {
	tokens []Token
}

// NewCompiledQuote copies tokens (and their text) into a fresh quote.
func NewCompiledQuote(tokens []Token) *CompiledQuote {
	cp := make([]Token, len(tokens))
	copy(cp, tokens)
	return &CompiledQuote{tokens: cp}
}

func (q *CompiledQuote) Kind() Kind { return KindQuote }

func (q *CompiledQuote) Equal(v Value) bool {
	o, ok := v.(*CompiledQuote)
	if !ok || len(q.tokens) != len(o.tokens) {
		return false
	}
	for i, t := range q.tokens {
		if t.Kind != o.tokens[i].Kind || t.Text != o.tokens[i].Text {
			return false
		}
	}
	return true
}

func (q *CompiledQuote) String() string { return q.Source() }

func (q *CompiledQuote) Source() string {
	s := "("
	for i, t := range q.tokens {
		if i > 0 {
			s += " "
		}
		s += t.Source()
	}
	return s + ")"
}

// Tokens returns the quote's token vector. Callers must not mutate it.
func (q *CompiledQuote) Tokens() []Token { return q.tokens }

// NativeQuote wraps a host callback. Equality is identity: two native
// quotes are equal only if they are the same object, since there is no
// way to compare Go closures structurally.
type NativeQuote struct {
	name string
	fn   func(ctx *Context) bool
}

// NewNativeQuote wraps fn; name is used only for String()/debug display.
func NewNativeQuote(name string, fn func(ctx *Context) bool) *NativeQuote {
	return &NativeQuote{name: name, fn: fn}
}

func (q *NativeQuote) Kind() Kind          { return KindQuote }
func (q *NativeQuote) Equal(v Value) bool  { o, ok := v.(*NativeQuote); return ok && q == o }
func (q *NativeQuote) String() string      { return "<native quote>" }
func (q *NativeQuote) Source() string      { return "<native quote>" }
func (q *NativeQuote) Call(ctx *Context) bool {
	return ctx.CallNative(q.fn)
}

// CurriedQuote pushes its argument then calls inner.
type CurriedQuote struct {
	arg   Value
	inner Quote
}

func NewCurriedQuote(arg Value, inner Quote) *CurriedQuote {
	return &CurriedQuote{arg: arg, inner: inner}
}

func (q *CurriedQuote) Kind() Kind { return KindQuote }
func (q *CurriedQuote) Equal(v Value) bool {
	o, ok := v.(*CurriedQuote)
	return ok && q.arg.Equal(o.arg) && quoteEqual(q.inner, o.inner)
}
func (q *CurriedQuote) String() string { return q.Source() }
func (q *CurriedQuote) Source() string {
	return q.arg.Source() + " " + describeQuote(q.inner) + " curry"
}
func (q *CurriedQuote) Call(ctx *Context) bool {
	ctx.Push(q.arg)
	return q.inner.Call(ctx)
}

// ComposedQuote calls left then right, short-circuiting on failure.
type ComposedQuote struct {
	left, right Quote
}

func NewComposedQuote(left, right Quote) *ComposedQuote {
	return &ComposedQuote{left: left, right: right}
}

func (q *ComposedQuote) Kind() Kind { return KindQuote }
func (q *ComposedQuote) Equal(v Value) bool {
	o, ok := v.(*ComposedQuote)
	return ok && quoteEqual(q.left, o.left) && quoteEqual(q.right, o.right)
}
func (q *ComposedQuote) String() string { return q.Source() }
func (q *ComposedQuote) Source() string {
	return describeQuote(q.left) + " " + describeQuote(q.right) + " compose"
}
func (q *ComposedQuote) Call(ctx *Context) bool {
	if !q.left.Call(ctx) {
		return false
	}
	return q.right.Call(ctx)
}

// NegatedQuote calls inner then replaces the top boolean with its negation.
type NegatedQuote struct {
	inner Quote
}

func NewNegatedQuote(inner Quote) *NegatedQuote {
	return &NegatedQuote{inner: inner}
}

func (q *NegatedQuote) Kind() Kind { return KindQuote }
func (q *NegatedQuote) Equal(v Value) bool {
	o, ok := v.(*NegatedQuote)
	return ok && quoteEqual(q.inner, o.inner)
}
func (q *NegatedQuote) String() string { return q.Source() }
func (q *NegatedQuote) Source() string { return describeQuote(q.inner) + " negate" }
func (q *NegatedQuote) Call(ctx *Context) bool {
	if !q.inner.Call(ctx) {
		return false
	}
	var b bool
	if !ctx.PopBool(&b) {
		return false
	}
	ctx.Push(BoolValue(!b))
	return true
}

// ConstantQuote pushes a fixed value; calling it always succeeds.
type ConstantQuote struct {
	val Value
}

func NewConstantQuote(val Value) *ConstantQuote {
	return &ConstantQuote{val: val}
}

func (q *ConstantQuote) Kind() Kind { return KindQuote }
func (q *ConstantQuote) Equal(v Value) bool {
	o, ok := v.(*ConstantQuote)
	return ok && q.val.Equal(o.val)
}
func (q *ConstantQuote) String() string { return q.Source() }
func (q *ConstantQuote) Source() string { return q.val.Source() + " const" }
func (q *ConstantQuote) Call(ctx *Context) bool {
	ctx.Push(q.val)
	return true
}

func describeQuote(q Quote) string {
	if v, ok := q.(Value); ok {
		return v.Source()
	}
	return "<quote>"
}
