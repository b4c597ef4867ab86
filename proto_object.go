package plorth

// registerObjectProto attaches the object prototype (which, uniquely, is
// also the terminal link of every prototype chain, see value.go's
// Prototype function): prototype, prototype! (SPEC_FULL.md section C.5).
func registerObjectProto(rt *Runtime) {
	proto := buildProto(rt, map[string]func(ctx *Context) bool{
		"prototype":  valuePrototype,
		"prototype!": objectSetPrototype,
	})
	rt.objectProto = proto
	rt.RegisterPrototype(KindObject, proto)
}

// valuePrototype pushes prototype(v), or null when v has none (only the
// object prototype itself).
func valuePrototype(ctx *Context) bool {
	v, ok := ctx.Pop()
	if !ok {
		return rangeErr(ctx, "stack is empty")
	}
	proto := Prototype(ctx.Runtime(), v)
	if proto == nil {
		ctx.Push(NullValue)
		return true
	}
	ctx.Push(proto)
	return true
}

// prototype! sets an object's explicit prototype slot; the new prototype
// may be null (clearing it) or another object.
func objectSetPrototype(ctx *Context) bool {
	protoVal, ok := ctx.Pop()
	if !ok {
		return rangeErr(ctx, "stack is empty")
	}
	var proto *Object
	switch p := protoVal.(type) {
	case *Null:
		proto = nil
	case *Object:
		proto = p
	default:
		return typeErr(ctx, "expected object or null, got "+protoVal.Kind().String())
	}

	var obj *Object
	if !ctx.PopObject(&obj) {
		return false
	}
	ctx.Push(obj.WithPrototype(proto))
	return true
}
