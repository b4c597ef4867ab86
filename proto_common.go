package plorth

import "sort"

// buildProto assembles a prototype Object from a name->implementation
// table, wrapping each implementation as a Native quote. Keys iterate in
// sorted order for determinism; lookup itself is by map, so the order
// only affects enumeration (e.g. a debugger printing the prototype).
func buildProto(rt *Runtime, words map[string]func(ctx *Context) bool) *Object {
	keys := make([]string, 0, len(words))
	for name := range words {
		keys = append(keys, name)
	}
	sort.Strings(keys)

	vals := make(map[string]Value, len(words))
	for name, fn := range words {
		vals[name] = rt.Native(name, fn)
	}
	return NewObject(keys, vals)
}

func rangeErr(ctx *Context, message string) bool {
	ctx.SetError(NewError(ErrRange, message))
	return false
}

func typeErr(ctx *Context, message string) bool {
	ctx.SetError(NewError(ErrType, message))
	return false
}
