package plorth

// registerErrorProto attaches error's namespaced built-in words (spec
// section 4.8 and SPEC_FULL.md section C.4): error.code, error.message,
// error.position, error.throw. Dot is not a tokenizer delimiter, so each
// of these lexes as a single word.
func registerErrorProto(rt *Runtime) {
	rt.RegisterPrototype(KindError, buildProto(rt, map[string]func(ctx *Context) bool{
		"error.code":     errorCode,
		"error.message":  errorMessage,
		"error.position": errorPosition,
		"error.throw":    errorThrow,
	}))
}

func popError(ctx *Context) (*Error, bool) {
	v, ok := ctx.Pop()
	if !ok {
		return nil, rangeErr(ctx, "stack is empty")
	}
	e, ok := v.(*Error)
	if !ok {
		return nil, typeErr(ctx, "expected error, got "+v.Kind().String())
	}
	return e, true
}

// error.code pushes the error's kind as its underlying numeric code
// (spec section 8, scenario E5: "stack contains the Range error code as
// a number").
func errorCode(ctx *Context) bool {
	e, ok := popError(ctx)
	if !ok {
		return false
	}
	ctx.Push(NewInt(int64(e.Code)))
	return true
}

func errorMessage(ctx *Context) bool {
	e, ok := popError(ctx)
	if !ok {
		return false
	}
	ctx.Push(NewString(e.Message))
	return true
}

func errorPosition(ctx *Context) bool {
	e, ok := popError(ctx)
	if !ok {
		return false
	}
	if !e.HasPosition() {
		ctx.Push(NullValue)
		return true
	}
	rt := ctx.Runtime()
	obj := rt.NewObject([]string{"file", "line", "column"}, map[string]Value{
		"file":   NewString(e.Position.Filename),
		"line":   NewInt(int64(e.Position.Line)),
		"column": NewInt(int64(e.Position.Column)),
	})
	ctx.Push(obj)
	return true
}

// error.throw latches e as the context's current error, ending execution
// of the calling quote the same way any other word failure would.
func errorThrow(ctx *Context) bool {
	e, ok := popError(ctx)
	if !ok {
		return false
	}
	ctx.SetError(e)
	return false
}
