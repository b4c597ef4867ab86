package plorth

import (
	"fmt"

	"golang.org/x/sync/singleflight"

	"github.com/plorth-lang/plorth/internal/panicerr"
)

// Context is one thread of execution: an operand stack, a local
// dictionary, the latched error (if any) and a pointer back to the
// Runtime it shares its global dictionary and prototypes with (spec
// section 4.6). Generalized from gothird's per-goroutine VM state, a
// Context is not safe for concurrent use by multiple goroutines; run
// separate imports/evaluations on separate Contexts.
type Context struct {
	rt       *Runtime
	filename string

	stack  []Value
	locals map[string]Value

	err *Error

	args []string

	importSF *singleflight.Group
	imported map[string]bool
}

// ContextOption configures a Context at construction time.
type ContextOption interface{ apply(ctx *Context) }

type contextOptionFunc func(ctx *Context)

func (f contextOptionFunc) apply(ctx *Context) { f(ctx) }

// WithContextArgs overrides the argument vector a Context reports via
// the `args` word; absent this option a Context inherits its Runtime's.
func WithContextArgs(args []string) ContextOption {
	return contextOptionFunc(func(ctx *Context) { ctx.args = append([]string(nil), args...) })
}

// NewContext builds a Context bound to rt, attributing parse errors and
// diagnostics to filename.
func NewContext(rt *Runtime, filename string, opts ...ContextOption) *Context {
	ctx := &Context{
		rt:       rt,
		filename: filename,
		locals:   make(map[string]Value),
		args:     rt.Args(),
		importSF: &rt.importGroup,
		imported: make(map[string]bool),
	}
	for _, opt := range opts {
		opt.apply(ctx)
	}
	return ctx
}

// Runtime returns the Context's Runtime.
func (ctx *Context) Runtime() *Runtime { return ctx.rt }

// Filename returns the source file this Context attributes diagnostics
// and relative imports to.
func (ctx *Context) Filename() string { return ctx.filename }

// Args returns the argument vector programs see via the `args` word.
func (ctx *Context) Args() []string { return ctx.args }

// Depth returns the number of values on the operand stack.
func (ctx *Context) Depth() int { return len(ctx.stack) }

// Push places v on top of the operand stack.
func (ctx *Context) Push(v Value) { ctx.stack = append(ctx.stack, v) }

// Pop removes and returns the top of the operand stack. ok is false
// (and the stack untouched) if the stack is empty; callers that want
// this to latch a Range error should use a typed Pop* method instead.
func (ctx *Context) Pop() (Value, bool) {
	n := len(ctx.stack)
	if n == 0 {
		return nil, false
	}
	v := ctx.stack[n-1]
	ctx.stack = ctx.stack[:n-1]
	return v, true
}

// popRaw is Pop under the name the parser uses for the value-position
// `drop` construct (spec's pinned behavior: `drop` written where a value
// is expected pops the live operand stack at parse time, distinct from
// `drop` called as an ordinary word during evaluation).
func (ctx *Context) popRaw() (Value, bool) { return ctx.Pop() }

// Peek returns the top of the operand stack without removing it.
func (ctx *Context) Peek() (Value, bool) {
	n := len(ctx.stack)
	if n == 0 {
		return nil, false
	}
	return ctx.stack[n-1], true
}

// Clear empties the operand stack.
func (ctx *Context) Clear() { ctx.stack = ctx.stack[:0] }

// SetError latches err as the Context's current error. A nil err clears
// the error slot, the same as ClearError.
func (ctx *Context) SetError(err *Error) { ctx.err = err }

// ClearError clears the Context's latched error.
func (ctx *Context) ClearError() { ctx.err = nil }

// Error returns the Context's currently latched error, or nil.
func (ctx *Context) Error() *Error { return ctx.err }

func (ctx *Context) popErr(kind ErrorKind, message string) {
	ctx.SetError(NewError(kind, message))
}

// PopBool pops a boolean into out, latching a Range or Type error and
// returning false on failure.
func (ctx *Context) PopBool(out *bool) bool {
	v, ok := ctx.Pop()
	if !ok {
		ctx.popErr(ErrRange, "stack is empty")
		return false
	}
	b, ok := v.(*Bool)
	if !ok {
		ctx.popErr(ErrType, "expected boolean, got "+v.Kind().String())
		return false
	}
	*out = bool(*b)
	return true
}

// PopNumber pops a number into out.
func (ctx *Context) PopNumber(out **Number) bool {
	v, ok := ctx.Pop()
	if !ok {
		ctx.popErr(ErrRange, "stack is empty")
		return false
	}
	n, ok := v.(*Number)
	if !ok {
		ctx.popErr(ErrType, "expected number, got "+v.Kind().String())
		return false
	}
	*out = n
	return true
}

// PopString pops a string into out.
func (ctx *Context) PopString(out **String) bool {
	v, ok := ctx.Pop()
	if !ok {
		ctx.popErr(ErrRange, "stack is empty")
		return false
	}
	s, ok := v.(*String)
	if !ok {
		ctx.popErr(ErrType, "expected string, got "+v.Kind().String())
		return false
	}
	*out = s
	return true
}

// PopArray pops an array into out.
func (ctx *Context) PopArray(out **Array) bool {
	v, ok := ctx.Pop()
	if !ok {
		ctx.popErr(ErrRange, "stack is empty")
		return false
	}
	a, ok := v.(*Array)
	if !ok {
		ctx.popErr(ErrType, "expected array, got "+v.Kind().String())
		return false
	}
	*out = a
	return true
}

// PopObject pops an object into out.
func (ctx *Context) PopObject(out **Object) bool {
	v, ok := ctx.Pop()
	if !ok {
		ctx.popErr(ErrRange, "stack is empty")
		return false
	}
	o, ok := v.(*Object)
	if !ok {
		ctx.popErr(ErrType, "expected object, got "+v.Kind().String())
		return false
	}
	*out = o
	return true
}

// PopQuote pops a quote into out.
func (ctx *Context) PopQuote(out *Quote) bool {
	v, ok := ctx.Pop()
	if !ok {
		ctx.popErr(ErrRange, "stack is empty")
		return false
	}
	q, ok := v.(Quote)
	if !ok {
		ctx.popErr(ErrType, "expected quote, got "+v.Kind().String())
		return false
	}
	*out = q
	return true
}

// PopSymbol pops a symbol into out.
func (ctx *Context) PopSymbol(out **Symbol) bool {
	v, ok := ctx.Pop()
	if !ok {
		ctx.popErr(ErrRange, "stack is empty")
		return false
	}
	s, ok := v.(*Symbol)
	if !ok {
		ctx.popErr(ErrType, "expected symbol, got "+v.Kind().String())
		return false
	}
	*out = s
	return true
}

// Declare installs v into the Context's local dictionary under name
// (the effect of a `: name value ;` declaration).
func (ctx *Context) Declare(name string, v Value) {
	ctx.locals[name] = v
}

// Lookup resolves name to a value, searching, in order, the Context's
// local dictionary, the prototype chain of the current top-of-stack
// value, then the Runtime's global dictionary (spec section 4.6).
func (ctx *Context) Lookup(name string) (Value, bool) {
	if v, ok := ctx.locals[name]; ok {
		return v, true
	}
	if top, ok := ctx.Peek(); ok {
		for proto := Prototype(ctx.rt, top); proto != nil; proto = Prototype(ctx.rt, proto) {
			if v, ok := proto.Get(name); ok {
				return v, true
			}
		}
	}
	if v, ok := ctx.rt.LookupGlobal(name); ok {
		return v, true
	}
	return nil, false
}

// Call looks up name and executes it: a quote value is called, any
// other value is simply pushed (the effect of referencing a declared
// constant). Returns false, with an error latched, if name is unbound
// or execution fails.
func (ctx *Context) Call(name string) bool {
	v, ok := ctx.Lookup(name)
	if !ok {
		ctx.popErr(ErrReference, "unknown word: `"+name+"'")
		return false
	}
	return ctx.callValue(v)
}

func (ctx *Context) callValue(v Value) bool {
	if q, ok := v.(Quote); ok {
		return q.Call(ctx)
	}
	ctx.Push(v)
	return true
}

// CallNative runs fn under panic/Goexit recovery (generalized from
// gothird/internal/panicerr, which recovers a whole goroutine's abnormal
// exit into an error value), converting any escaping panic into a
// latched Unknown error rather than crashing the host process.
func (ctx *Context) CallNative(fn func(ctx *Context) bool) bool {
	var result bool
	err := panicerr.Recover("native quote", func() error {
		result = fn(ctx)
		return nil
	})
	if err != nil {
		ctx.popErr(ErrUnknown, err.Error())
		return false
	}
	return result
}

// Compile lexes source and wraps the resulting token vector in a
// CompiledQuote; the body is not parsed further until the quote is
// called, matching the parser's general laziness (spec section 4.4).
func (ctx *Context) Compile(source, filename string, startingLine int) (*CompiledQuote, *Error) {
	toks, err := Tokenize(source, filename, startingLine)
	if err != nil {
		return nil, err
	}
	return NewCompiledQuote(toks), nil
}

// Eval compiles source and immediately calls the resulting quote against
// ctx, the combination the REPL, the CLI's `-e` sources and its program
// file run through (spec section 6).
func (ctx *Context) Eval(source, filename string, startingLine int) bool {
	q, err := ctx.Compile(source, filename, startingLine)
	if err != nil {
		ctx.SetError(err)
		return false
	}
	return q.Call(ctx)
}

// Import loads and runs the module named name (dot-separated path
// components, spec section 6.4) at most once per Context: a repeated
// import of the same name on one Context is a no-op, and concurrent
// imports of the same module file from Contexts sharing one Runtime
// collapse into a single run via singleflight, promoting
// golang.org/x/sync from the teacher's indirect requirement to a direct
// one. A later import on a different Context runs the module again. The module body is compiled and
// run in a fresh Context of its own, isolated from ctx's operand stack;
// on success the module's local dictionary is merged into ctx's.
func (ctx *Context) Import(name string, read func(path string) (string, error)) bool {
	if ctx.imported[name] {
		return true
	}

	path, ok := ctx.rt.FindModule(name)
	if !ok {
		ctx.popErr(ErrImport, fmt.Sprintf("no such module: `%v'", name))
		return false
	}

	locals, err, _ := ctx.importSF.Do(path, func() (interface{}, error) {
		src, rerr := read(path)
		if rerr != nil {
			return nil, rerr
		}
		modCtx := NewContext(ctx.rt, path, WithContextArgs(ctx.args))
		if !modCtx.Eval(src, path, 1) {
			return nil, fmt.Errorf("%v", modCtx.Error())
		}
		return modCtx.locals, nil
	})
	if err != nil {
		ctx.popErr(ErrImport, err.Error())
		return false
	}

	for k, v := range locals.(map[string]Value) {
		ctx.locals[k] = v
	}
	ctx.imported[name] = true
	return true
}

// Call executes the quote's compiled body against ctx: each token is
// dispatched by kind (spec section 4.6). A value-producing token
// (string, or the opener of a quote/array/object) is parsed and pushed;
// `:` begins a declaration; a word token is either a literal
// (null/true/false/a number) to push, or a name to look up and call.
// Execution stops at the first failing step, leaving ctx's error slot
// set to why.
func (q *CompiledQuote) Call(ctx *Context) bool {
	toks := q.tokens
	i := 0
	for i < len(toks) {
		tok := toks[i]
		switch tok.Kind {
		case TokString, TokLParen, TokLBrack, TokLBrace:
			v, err := ParseValue(ctx.rt, ctx, toks, &i)
			if err != nil {
				ctx.SetError(err)
				return false
			}
			ctx.Push(v)

		case TokColon:
			i++
			if err := ParseDeclaration(ctx.rt, ctx, toks, &i); err != nil {
				ctx.SetError(err)
				return false
			}

		case TokWord:
			i++
			if !ctx.execWordToken(tok) {
				return false
			}

		default:
			ctx.SetError(syntaxAt(tok.Pos, "unexpected "+tok.Kind.String()))
			return false
		}
	}
	return true
}

func (ctx *Context) execWordToken(tok Token) bool {
	switch tok.Text {
	case "null":
		ctx.Push(NullValue)
		return true
	case "true":
		ctx.Push(ctx.rt.True())
		return true
	case "false":
		ctx.Push(ctx.rt.False())
		return true
	}
	if num, ok := ParseNumber(tok.Text); ok {
		ctx.Push(num)
		return true
	}
	if !ctx.Call(tok.Text) {
		if pe := ctx.Error(); pe != nil && !pe.HasPosition() {
			ctx.SetError(NewPositionedError(pe.Code, pe.Message, tok.Pos))
		}
		return false
	}
	return true
}
