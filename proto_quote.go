package plorth

// registerQuoteProto attaches quote's built-in words (spec section 4.8):
// call, compose, curry, negate, dip, 2dip.
func registerQuoteProto(rt *Runtime) {
	rt.RegisterPrototype(KindQuote, buildProto(rt, map[string]func(ctx *Context) bool{
		"call":  quoteCall,
		"compose": quoteCompose,
		"curry":   quoteCurry,
		"negate":  quoteNegate,
		"dip":     quoteDip,
		"2dip":    quote2Dip,
	}))
}

func quoteCall(ctx *Context) bool {
	var q Quote
	if !ctx.PopQuote(&q) {
		return false
	}
	return q.Call(ctx)
}

func quoteCompose(ctx *Context) bool {
	var right, left Quote
	if !ctx.PopQuote(&right) || !ctx.PopQuote(&left) {
		return false
	}
	ctx.Push(ctx.Runtime().Compose(left, right))
	return true
}

func quoteCurry(ctx *Context) bool {
	var q Quote
	if !ctx.PopQuote(&q) {
		return false
	}
	arg, ok := ctx.Pop()
	if !ok {
		return rangeErr(ctx, "stack is empty")
	}
	ctx.Push(ctx.Runtime().Curry(arg, q))
	return true
}

func quoteNegate(ctx *Context) bool {
	var q Quote
	if !ctx.PopQuote(&q) {
		return false
	}
	ctx.Push(ctx.Runtime().Negate(q))
	return true
}

// dip hides the value below the quote, calls the quote, then restores
// the hidden value on top.
func quoteDip(ctx *Context) bool {
	var q Quote
	if !ctx.PopQuote(&q) {
		return false
	}
	hidden, ok := ctx.Pop()
	if !ok {
		return rangeErr(ctx, "stack is empty")
	}
	ok = q.Call(ctx)
	ctx.Push(hidden)
	return ok
}

// 2dip hides the two values below the quote, calls the quote, then
// restores them in their original order.
func quote2Dip(ctx *Context) bool {
	var q Quote
	if !ctx.PopQuote(&q) {
		return false
	}
	b, ok := ctx.Pop()
	if !ok {
		return rangeErr(ctx, "stack is empty")
	}
	a, ok := ctx.Pop()
	if !ok {
		return rangeErr(ctx, "stack is empty")
	}
	ok = q.Call(ctx)
	ctx.Push(a)
	ctx.Push(b)
	return ok
}
