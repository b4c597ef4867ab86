package plorth

// registerArrayProto attaches the array prototype's built-in words (spec
// section 4.8 plus SPEC_FULL.md section C.6's supplemented extras).
func registerArrayProto(rt *Runtime) {
	rt.RegisterPrototype(KindArray, buildProto(rt, map[string]func(ctx *Context) bool{
		"len":       arrayLen,
		"empty?":    arrayEmpty,
		"every?":    arrayEvery,
		"some?":     arraySome,
		"index-of":  arrayIndexOf,
		"join":      arrayJoin,
		"for-each":  arrayForEach,
		"filter":    arrayFilter,
		"map":       arrayMap,
		"reduce":    arrayReduce,
		"find":      arrayFind,
		"reverse":   arrayReverse,
		"extract":   arrayExtract,
		"@":         arrayAt,
		"!":         arraySet,
		"+":         arrayConcat,
		"*":         arrayRepeat,
		"first":     arrayFirst,
		"last":      arrayLast,
		"insert":    arrayInsert,
		"delete":    arrayDelete,
		"uniq":      arrayUniq,
		"flatten":   arrayFlatten,
	}))
}

func arrayLen(ctx *Context) bool {
	var a *Array
	if !ctx.PopArray(&a) {
		return false
	}
	ctx.Push(NewInt(int64(a.Len())))
	return true
}

func arrayEmpty(ctx *Context) bool {
	var a *Array
	if !ctx.PopArray(&a) {
		return false
	}
	ctx.Push(BoolValue(a.Len() == 0))
	return true
}

func arrayAt(ctx *Context) bool {
	var idx *Number
	if !ctx.PopNumber(&idx) {
		return false
	}
	var a *Array
	if !ctx.PopArray(&a) {
		return false
	}
	v, ok := a.At(int(idx.AsInt()))
	if !ok {
		return rangeErr(ctx, "array index out of bounds")
	}
	ctx.Push(v)
	return true
}

// ! sets an index; an out-of-range index appends instead of erroring,
// per spec section 4.8's pinned semantics.
func arraySet(ctx *Context) bool {
	v, ok := ctx.Pop()
	if !ok {
		return rangeErr(ctx, "stack is empty")
	}
	var idx *Number
	if !ctx.PopNumber(&idx) {
		return false
	}
	var a *Array
	if !ctx.PopArray(&a) {
		return false
	}
	ctx.Push(a.With(int(idx.AsInt()), v))
	return true
}

// + concatenates with the top-of-stack array placed after the
// second-from-top array (spec's pinned, intentional pop order).
func arrayConcat(ctx *Context) bool {
	var top, second *Array
	if !ctx.PopArray(&top) {
		return false
	}
	if !ctx.PopArray(&second) {
		return false
	}
	ctx.Push(top.Concat(second))
	return true
}

// * repeats the array n times; n may be a big integer, though the
// repeat count is truncated to what AsInt can represent.
func arrayRepeat(ctx *Context) bool {
	var n *Number
	if !ctx.PopNumber(&n) {
		return false
	}
	var a *Array
	if !ctx.PopArray(&a) {
		return false
	}
	count := n.AsInt()
	if count < 0 {
		return rangeErr(ctx, "repeat count must not be negative")
	}
	out := make([]Value, 0, int64(a.Len())*count)
	for i := int64(0); i < count; i++ {
		out = append(out, a.Elements()...)
	}
	ctx.Push(NewArray(out))
	return true
}

func arrayIndexOf(ctx *Context) bool {
	needle, ok := ctx.Pop()
	if !ok {
		return rangeErr(ctx, "stack is empty")
	}
	var a *Array
	if !ctx.PopArray(&a) {
		return false
	}
	for i, e := range a.Elements() {
		if e.Equal(needle) {
			ctx.Push(NewInt(int64(i)))
			return true
		}
	}
	ctx.Push(NewInt(-1))
	return true
}

func arrayJoin(ctx *Context) bool {
	var sep *String
	if !ctx.PopString(&sep) {
		return false
	}
	var a *Array
	if !ctx.PopArray(&a) {
		return false
	}
	var sb []rune
	for i, e := range a.Elements() {
		if i > 0 {
			sb = append(sb, []rune(sep.String())...)
		}
		sb = append(sb, []rune(e.String())...)
	}
	ctx.Push(NewString(string(sb)))
	return true
}

func arrayForEach(ctx *Context) bool {
	var q Quote
	if !ctx.PopQuote(&q) {
		return false
	}
	var a *Array
	if !ctx.PopArray(&a) {
		return false
	}
	for _, e := range a.Elements() {
		ctx.Push(e)
		if !q.Call(ctx) {
			return false
		}
	}
	return true
}

func arrayFilter(ctx *Context) bool {
	var q Quote
	if !ctx.PopQuote(&q) {
		return false
	}
	var a *Array
	if !ctx.PopArray(&a) {
		return false
	}
	var out []Value
	for _, e := range a.Elements() {
		ctx.Push(e)
		if !q.Call(ctx) {
			return false
		}
		var keep bool
		if !ctx.PopBool(&keep) {
			return false
		}
		if keep {
			out = append(out, e)
		}
	}
	ctx.Push(NewArray(out))
	return true
}

func arrayMap(ctx *Context) bool {
	var q Quote
	if !ctx.PopQuote(&q) {
		return false
	}
	var a *Array
	if !ctx.PopArray(&a) {
		return false
	}
	out := make([]Value, 0, a.Len())
	for _, e := range a.Elements() {
		ctx.Push(e)
		if !q.Call(ctx) {
			return false
		}
		v, ok := ctx.Pop()
		if !ok {
			return rangeErr(ctx, "stack is empty")
		}
		out = append(out, v)
	}
	ctx.Push(NewArray(out))
	return true
}

func arrayReduce(ctx *Context) bool {
	var q Quote
	if !ctx.PopQuote(&q) {
		return false
	}
	var a *Array
	if !ctx.PopArray(&a) {
		return false
	}
	elems := a.Elements()
	if len(elems) == 0 {
		return rangeErr(ctx, "Cannot reduce empty array")
	}
	acc := elems[0]
	for _, e := range elems[1:] {
		ctx.Push(acc)
		ctx.Push(e)
		if !q.Call(ctx) {
			return false
		}
		v, ok := ctx.Pop()
		if !ok {
			return rangeErr(ctx, "stack is empty")
		}
		acc = v
	}
	ctx.Push(acc)
	return true
}

func arrayFind(ctx *Context) bool {
	var q Quote
	if !ctx.PopQuote(&q) {
		return false
	}
	var a *Array
	if !ctx.PopArray(&a) {
		return false
	}
	for _, e := range a.Elements() {
		ctx.Push(e)
		if !q.Call(ctx) {
			return false
		}
		var hit bool
		if !ctx.PopBool(&hit) {
			return false
		}
		if hit {
			ctx.Push(e)
			return true
		}
	}
	ctx.Push(NullValue)
	return true
}

func arrayEvery(ctx *Context) bool {
	var q Quote
	if !ctx.PopQuote(&q) {
		return false
	}
	var a *Array
	if !ctx.PopArray(&a) {
		return false
	}
	for _, e := range a.Elements() {
		ctx.Push(e)
		if !q.Call(ctx) {
			return false
		}
		var ok bool
		if !ctx.PopBool(&ok) {
			return false
		}
		if !ok {
			ctx.Push(ctx.Runtime().False())
			return true
		}
	}
	ctx.Push(ctx.Runtime().True())
	return true
}

func arraySome(ctx *Context) bool {
	var q Quote
	if !ctx.PopQuote(&q) {
		return false
	}
	var a *Array
	if !ctx.PopArray(&a) {
		return false
	}
	for _, e := range a.Elements() {
		ctx.Push(e)
		if !q.Call(ctx) {
			return false
		}
		var ok bool
		if !ctx.PopBool(&ok) {
			return false
		}
		if ok {
			ctx.Push(ctx.Runtime().True())
			return true
		}
	}
	ctx.Push(ctx.Runtime().False())
	return true
}

func arrayReverse(ctx *Context) bool {
	var a *Array
	if !ctx.PopArray(&a) {
		return false
	}
	ctx.Push(a.Reversed())
	return true
}

func normalizeRange(i, length int) int {
	if i < 0 {
		i += length
	}
	if i < 0 {
		return 0
	}
	if i > length {
		return length
	}
	return i
}

func arrayExtract(ctx *Context) bool {
	var end *Number
	if !ctx.PopNumber(&end) {
		return false
	}
	var start *Number
	if !ctx.PopNumber(&start) {
		return false
	}
	var a *Array
	if !ctx.PopArray(&a) {
		return false
	}
	elems := a.Elements()
	s := normalizeRange(int(start.AsInt()), len(elems))
	e := normalizeRange(int(end.AsInt()), len(elems))
	if e < s {
		e = s
	}
	out := make([]Value, e-s)
	copy(out, elems[s:e])
	ctx.Push(NewArray(out))
	return true
}

func arrayFirst(ctx *Context) bool {
	var a *Array
	if !ctx.PopArray(&a) {
		return false
	}
	v, ok := a.At(0)
	if !ok {
		return rangeErr(ctx, "array is empty")
	}
	ctx.Push(v)
	return true
}

func arrayLast(ctx *Context) bool {
	var a *Array
	if !ctx.PopArray(&a) {
		return false
	}
	v, ok := a.At(-1)
	if !ok {
		return rangeErr(ctx, "array is empty")
	}
	ctx.Push(v)
	return true
}

func arrayInsert(ctx *Context) bool {
	v, ok := ctx.Pop()
	if !ok {
		return rangeErr(ctx, "stack is empty")
	}
	var idx *Number
	if !ctx.PopNumber(&idx) {
		return false
	}
	var a *Array
	if !ctx.PopArray(&a) {
		return false
	}
	elems := a.Elements()
	i := normalizeRange(int(idx.AsInt()), len(elems))
	out := make([]Value, 0, len(elems)+1)
	out = append(out, elems[:i]...)
	out = append(out, v)
	out = append(out, elems[i:]...)
	ctx.Push(NewArray(out))
	return true
}

func arrayDelete(ctx *Context) bool {
	var idx *Number
	if !ctx.PopNumber(&idx) {
		return false
	}
	var a *Array
	if !ctx.PopArray(&a) {
		return false
	}
	elems := a.Elements()
	i := int(idx.AsInt())
	if i < 0 {
		i += len(elems)
	}
	if i < 0 || i >= len(elems) {
		return rangeErr(ctx, "array index out of bounds")
	}
	out := make([]Value, 0, len(elems)-1)
	out = append(out, elems[:i]...)
	out = append(out, elems[i+1:]...)
	ctx.Push(NewArray(out))
	return true
}

func arrayUniq(ctx *Context) bool {
	var a *Array
	if !ctx.PopArray(&a) {
		return false
	}
	var out []Value
	for _, e := range a.Elements() {
		dup := false
		for _, seen := range out {
			if seen.Equal(e) {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, e)
		}
	}
	ctx.Push(NewArray(out))
	return true
}

func arrayFlatten(ctx *Context) bool {
	var a *Array
	if !ctx.PopArray(&a) {
		return false
	}
	ctx.Push(NewArray(flattenElements(a.Elements())))
	return true
}

func flattenElements(elems []Value) []Value {
	var out []Value
	for _, e := range elems {
		if nested, ok := e.(*Array); ok {
			out = append(out, flattenElements(nested.Elements())...)
		} else {
			out = append(out, e)
		}
	}
	return out
}
