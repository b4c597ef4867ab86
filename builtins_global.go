package plorth

import "github.com/plorth-lang/plorth/internal/runeio"

// registerGlobalWords installs the stack-shuffling and error-handling
// words every runnable program needs, beyond the illustrative set named
// directly in spec.md (SPEC_FULL.md section C.8-C.9), plus the native
// output words backed by the runtime's flushable writer.
func registerGlobalWords(rt *Runtime) {
	words := map[string]func(ctx *Context) bool{
		"dup":      globalDup,
		"drop":     globalDrop,
		"swap":     globalSwap,
		"rot":      globalRot,
		"nip":      globalNip,
		"tuck":     globalTuck,
		"depth":    globalDepth,
		"clear":    globalClear,
		"type-of":  globalTypeOf,
		"error?":   globalErrorPred,
		"try":      globalTry,
		"print":    globalPrint,
		"print-nl": globalPrintNl,
	}
	for name, fn := range words {
		rt.DefineGlobal(name, rt.Native(name, fn))
	}
}

func globalDup(ctx *Context) bool {
	v, ok := ctx.Peek()
	if !ok {
		return rangeErr(ctx, "stack is empty")
	}
	ctx.Push(v)
	return true
}

func globalDrop(ctx *Context) bool {
	if _, ok := ctx.Pop(); !ok {
		return rangeErr(ctx, "stack is empty")
	}
	return true
}

func globalSwap(ctx *Context) bool {
	b, ok := ctx.Pop()
	if !ok {
		return rangeErr(ctx, "stack is empty")
	}
	a, ok := ctx.Pop()
	if !ok {
		return rangeErr(ctx, "stack is empty")
	}
	ctx.Push(b)
	ctx.Push(a)
	return true
}

// rot rotates the third-from-top value to the top: ( a b c -- b c a ).
func globalRot(ctx *Context) bool {
	if ctx.Depth() < 3 {
		return rangeErr(ctx, "stack underflow")
	}
	c, _ := ctx.Pop()
	b, _ := ctx.Pop()
	a, _ := ctx.Pop()
	ctx.Push(b)
	ctx.Push(c)
	ctx.Push(a)
	return true
}

// nip discards the second-from-top value: ( a b -- b ).
func globalNip(ctx *Context) bool {
	b, ok := ctx.Pop()
	if !ok {
		return rangeErr(ctx, "stack is empty")
	}
	if _, ok := ctx.Pop(); !ok {
		return rangeErr(ctx, "stack is empty")
	}
	ctx.Push(b)
	return true
}

// tuck copies the top value below the second-from-top: ( a b -- b a b ).
func globalTuck(ctx *Context) bool {
	b, ok := ctx.Pop()
	if !ok {
		return rangeErr(ctx, "stack is empty")
	}
	a, ok := ctx.Pop()
	if !ok {
		return rangeErr(ctx, "stack is empty")
	}
	ctx.Push(b)
	ctx.Push(a)
	ctx.Push(b)
	return true
}

func globalDepth(ctx *Context) bool {
	ctx.Push(NewInt(int64(ctx.Depth())))
	return true
}

func globalClear(ctx *Context) bool {
	ctx.Clear()
	return true
}

func globalTypeOf(ctx *Context) bool {
	v, ok := ctx.Pop()
	if !ok {
		return rangeErr(ctx, "stack is empty")
	}
	ctx.Push(ctx.Runtime().Symbolicate(v.Kind().String()))
	return true
}

func globalErrorPred(ctx *Context) bool {
	v, ok := ctx.Pop()
	if !ok {
		return rangeErr(ctx, "stack is empty")
	}
	ctx.Push(BoolValue(v.Kind() == KindError))
	return true
}

// try executes the first quote; on failure it pushes the caught error,
// clears the error slot, and executes the second quote (spec section
// 4.8).
func globalTry(ctx *Context) bool {
	var second, first Quote
	if !ctx.PopQuote(&second) {
		return false
	}
	if !ctx.PopQuote(&first) {
		return false
	}
	if first.Call(ctx) {
		return true
	}
	caught := ctx.Error()
	if caught == nil {
		caught = NewError(ErrUnknown, "")
	}
	ctx.ClearError()
	ctx.Push(caught)
	return second.Call(ctx)
}

func globalPrint(ctx *Context) bool {
	v, ok := ctx.Pop()
	if !ok {
		return rangeErr(ctx, "stack is empty")
	}
	return writeOut(ctx, v.String())
}

func globalPrintNl(ctx *Context) bool {
	v, ok := ctx.Pop()
	if !ok {
		return rangeErr(ctx, "stack is empty")
	}
	return writeOut(ctx, v.String()+"\n")
}

// writeOut renders text through WriteANSIString so that stray control
// characters in printed strings reach the terminal in their classic
// caret/escape form rather than corrupting it outright.
func writeOut(ctx *Context, text string) bool {
	out := ctx.Runtime().Out()
	if out == nil {
		return true
	}
	if _, err := runeio.WriteANSIString(out, text); err != nil {
		ctx.SetError(NewError(ErrIO, err.Error()))
		return false
	}
	if err := out.Flush(); err != nil {
		ctx.SetError(NewError(ErrIO, err.Error()))
		return false
	}
	return true
}
