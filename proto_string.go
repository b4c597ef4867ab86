package plorth

// registerStringProto attaches a small set of string words, mirroring
// the array prototype's @/len/+ for the other sequence-shaped value
// (not exhaustively specified; kept minimal and grounded in the same
// indexing/concatenation shape as proto_array.go).
func registerStringProto(rt *Runtime) {
	rt.RegisterPrototype(KindString, buildProto(rt, map[string]func(ctx *Context) bool{
		"len":     stringLen,
		"@":       stringAt,
		"+":       stringConcat,
		"reverse": stringReverse,
		"empty?":  stringEmpty,
	}))
}

func stringLen(ctx *Context) bool {
	var s *String
	if !ctx.PopString(&s) {
		return false
	}
	ctx.Push(NewInt(int64(s.Len())))
	return true
}

func stringEmpty(ctx *Context) bool {
	var s *String
	if !ctx.PopString(&s) {
		return false
	}
	ctx.Push(BoolValue(s.Len() == 0))
	return true
}

func stringAt(ctx *Context) bool {
	var idx *Number
	if !ctx.PopNumber(&idx) {
		return false
	}
	var s *String
	if !ctx.PopString(&s) {
		return false
	}
	r, ok := s.At(int(idx.AsInt()))
	if !ok {
		return rangeErr(ctx, "string index out of bounds")
	}
	ctx.Push(NewString(string(r)))
	return true
}

func stringConcat(ctx *Context) bool {
	var top, second *String
	if !ctx.PopString(&top) {
		return false
	}
	if !ctx.PopString(&second) {
		return false
	}
	ctx.Push(second.Concat(top))
	return true
}

func stringReverse(ctx *Context) bool {
	var s *String
	if !ctx.PopString(&s) {
		return false
	}
	runes := []rune(s.String())
	out := make([]rune, len(runes))
	for i, r := range runes {
		out[len(runes)-1-i] = r
	}
	ctx.Push(NewString(string(out)))
	return true
}
