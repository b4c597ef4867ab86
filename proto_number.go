package plorth

// registerNumberProto attaches number's arithmetic and comparison words
// (SPEC_FULL.md section C.7): +, -, *, /, %, <, >, <=, >=, =, <>.
func registerNumberProto(rt *Runtime) {
	rt.RegisterPrototype(KindNumber, buildProto(rt, map[string]func(ctx *Context) bool{
		"+":  numberAdd,
		"-":  numberSub,
		"*":  numberMul,
		"/":  numberDiv,
		"%":  numberMod,
		"<":  numberLt,
		">":  numberGt,
		"<=": numberLe,
		">=": numberGe,
		"=":  numberEq,
		"<>": numberNe,
	}))
}

func popNumberPair(ctx *Context) (a, b *Number, ok bool) {
	if !ctx.PopNumber(&b) {
		return nil, nil, false
	}
	if !ctx.PopNumber(&a) {
		return nil, nil, false
	}
	return a, b, true
}

func numberAdd(ctx *Context) bool {
	a, b, ok := popNumberPair(ctx)
	if !ok {
		return false
	}
	ctx.Push(numAdd(a, b))
	return true
}

func numberSub(ctx *Context) bool {
	a, b, ok := popNumberPair(ctx)
	if !ok {
		return false
	}
	ctx.Push(numSub(a, b))
	return true
}

func numberMul(ctx *Context) bool {
	a, b, ok := popNumberPair(ctx)
	if !ok {
		return false
	}
	ctx.Push(numMul(a, b))
	return true
}

func numberDiv(ctx *Context) bool {
	a, b, ok := popNumberPair(ctx)
	if !ok {
		return false
	}
	q, ok := numDiv(a, b)
	if !ok {
		return rangeErr(ctx, "division by zero")
	}
	ctx.Push(q)
	return true
}

func numberMod(ctx *Context) bool {
	a, b, ok := popNumberPair(ctx)
	if !ok {
		return false
	}
	m, ok := numMod(a, b)
	if !ok {
		return rangeErr(ctx, "division by zero")
	}
	ctx.Push(m)
	return true
}

func numberLt(ctx *Context) bool { return numberCompareWord(ctx, func(c int) bool { return c < 0 }) }
func numberGt(ctx *Context) bool { return numberCompareWord(ctx, func(c int) bool { return c > 0 }) }
func numberLe(ctx *Context) bool { return numberCompareWord(ctx, func(c int) bool { return c <= 0 }) }
func numberGe(ctx *Context) bool { return numberCompareWord(ctx, func(c int) bool { return c >= 0 }) }
func numberEq(ctx *Context) bool { return numberCompareWord(ctx, func(c int) bool { return c == 0 }) }
func numberNe(ctx *Context) bool { return numberCompareWord(ctx, func(c int) bool { return c != 0 }) }

func numberCompareWord(ctx *Context, pred func(cmp int) bool) bool {
	a, b, ok := popNumberPair(ctx)
	if !ok {
		return false
	}
	ctx.Push(BoolValue(pred(numCompare(a, b))))
	return true
}
