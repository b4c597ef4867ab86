package plorth

// registerWordProto attaches word's built-in words (spec section 4.8):
// symbol, quote, call, define.
func registerWordProto(rt *Runtime) {
	rt.RegisterPrototype(KindWord, buildProto(rt, map[string]func(ctx *Context) bool{
		"symbol": wordSymbol,
		"quote":  wordQuote,
		"call":   wordCall,
		"define": wordDefine,
	}))
}

func popWord(ctx *Context) (*Word, bool) {
	v, ok := ctx.Pop()
	if !ok {
		return nil, rangeErr(ctx, "stack is empty")
	}
	w, ok := v.(*Word)
	if !ok {
		return nil, typeErr(ctx, "expected word, got "+v.Kind().String())
	}
	return w, true
}

func wordSymbol(ctx *Context) bool {
	w, ok := popWord(ctx)
	if !ok {
		return false
	}
	ctx.Push(w.Symbol())
	return true
}

func wordQuote(ctx *Context) bool {
	w, ok := popWord(ctx)
	if !ok {
		return false
	}
	ctx.Push(w.Quote())
	return true
}

func wordCall(ctx *Context) bool {
	w, ok := popWord(ctx)
	if !ok {
		return false
	}
	return w.Quote().Call(ctx)
}

// define installs a word's quote into the current local dictionary under
// its symbol's identifier (the glossary's description of what "executing
// a word" does).
func wordDefine(ctx *Context) bool {
	w, ok := popWord(ctx)
	if !ok {
		return false
	}
	ctx.Declare(w.Symbol().Name(), w.Quote())
	return true
}
