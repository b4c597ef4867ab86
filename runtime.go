package plorth

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/plorth-lang/plorth/internal/flushio"
	"github.com/plorth-lang/plorth/internal/slab"
)

// Runtime owns the global dictionary, the prototype registry, interned
// literals, the module search path and the memory manager. It is built
// once (NewRuntime) and may be shared by multiple Contexts, subject to
// the serialization requirements in spec section 5.
type Runtime struct {
	mem *slab.Pool

	prototypes  map[Kind]*Object
	objectProto *Object

	globals map[string]Value

	symbolsMu sync.RWMutex
	symbols   map[string]*Symbol

	literalTrue  *Bool
	literalFalse *Bool

	args        []string
	modulePaths []string

	out  flushio.WriteFlusher
	logf func(mess string, args ...interface{})

	importGroup singleflight.Group
}

// RuntimeOption configures a Runtime at construction time, following the
// functional-options pattern gothird uses for its VM (see options.go).
type RuntimeOption interface{ apply(rt *Runtime) }

type runtimeOptionFunc func(rt *Runtime)

func (f runtimeOptionFunc) apply(rt *Runtime) { f(rt) }

// WithLogf installs a trace/debug logging sink.
func WithLogf(logf func(mess string, args ...interface{})) RuntimeOption {
	return runtimeOptionFunc(func(rt *Runtime) { rt.logf = logf })
}

// WithArgs sets the argument vector the runtime exposes to programs
// (populated by the external CLI front-end).
func WithArgs(args []string) RuntimeOption {
	return runtimeOptionFunc(func(rt *Runtime) { rt.args = append([]string(nil), args...) })
}

// WithModulePaths sets the module search path list (populated by the
// external CLI from PLORTHPATH and the program file's directory).
func WithModulePaths(paths []string) RuntimeOption {
	return runtimeOptionFunc(func(rt *Runtime) { rt.modulePaths = append([]string(nil), paths...) })
}

// WithOutput sets the writer backing the `print`/`print-nl` native words.
func WithOutput(w flushio.WriteFlusher) RuntimeOption {
	return runtimeOptionFunc(func(rt *Runtime) { rt.out = w })
}

// WithMemLimit caps the number of simultaneously live array/object
// allocations the memory manager will hand out; 0 (the default) means
// unlimited.
func WithMemLimit(limit uint) RuntimeOption {
	return runtimeOptionFunc(func(rt *Runtime) { rt.mem = slab.NewPool(limit) })
}

// NewRuntime builds a Runtime, registers the built-in prototypes and
// global words, and applies opts.
func NewRuntime(opts ...RuntimeOption) *Runtime {
	rt := &Runtime{
		prototypes: make(map[Kind]*Object),
		globals:    make(map[string]Value),
		symbols:    make(map[string]*Symbol),
		mem:        slab.NewPool(0),
		out:        flushio.NewWriteFlusher(os.Stdout),
	}
	for _, opt := range opts {
		opt.apply(rt)
	}

	rt.objectProto = emptyObject()
	rt.prototypes[KindObject] = rt.objectProto

	rt.literalTrue = BoolValue(true)
	rt.literalFalse = BoolValue(false)

	registerObjectProto(rt)
	registerArrayProto(rt)
	registerQuoteProto(rt)
	registerWordProto(rt)
	registerErrorProto(rt)
	registerNumberProto(rt)
	registerStringProto(rt)
	registerGlobalWords(rt)

	return rt
}

func (rt *Runtime) logTrace(mess string, args ...interface{}) {
	if rt.logf != nil {
		rt.logf(mess, args...)
	}
}

// True returns the runtime's interned `true` literal.
func (rt *Runtime) True() *Bool { return rt.literalTrue }

// False returns the runtime's interned `false` literal.
func (rt *Runtime) False() *Bool { return rt.literalFalse }

// Args returns the argument vector supplied by the host CLI.
func (rt *Runtime) Args() []string { return rt.args }

// ModulePaths returns the configured module search directories, in
// priority order.
func (rt *Runtime) ModulePaths() []string { return rt.modulePaths }

// Out returns the writer backing `print`/`print-nl`.
func (rt *Runtime) Out() flushio.WriteFlusher { return rt.out }

// Symbolicate interns name, returning the same *Symbol for repeated
// calls with equal text. Generalized from gothird/symbols.go's
// string-interning table.
func (rt *Runtime) Symbolicate(name string) *Symbol {
	rt.symbolsMu.RLock()
	if sym, ok := rt.symbols[name]; ok {
		rt.symbolsMu.RUnlock()
		return sym
	}
	rt.symbolsMu.RUnlock()

	rt.symbolsMu.Lock()
	defer rt.symbolsMu.Unlock()
	if sym, ok := rt.symbols[name]; ok {
		return sym
	}
	sym := &Symbol{name: name}
	rt.symbols[name] = sym
	return sym
}

// NewArray builds an Array value tracked by the memory manager. Returns
// a Range error if the runtime's memory limit would be exceeded.
func (rt *Runtime) NewArray(elems []Value) (*Array, *Error) {
	a := NewArray(elems)
	if _, err := rt.mem.Track("array", a); err != nil {
		return nil, NewError(ErrRange, err.Error())
	}
	return a, nil
}

// MustNewArray is NewArray without the memory-limit failure path, for
// call sites that already know the limit is unset or irrelevant (tests,
// and anywhere building arrays out of an already-bounded input).
func (rt *Runtime) MustNewArray(elems []Value) *Array {
	a, err := rt.NewArray(elems)
	if err != nil {
		return NewArray(elems)
	}
	return a
}

// NewObject builds an Object value tracked by the memory manager.
func (rt *Runtime) NewObject(keys []string, vals map[string]Value) *Object {
	o := NewObject(keys, vals)
	_, _ = rt.mem.Track("object", o)
	return o
}

// MemoryReport summarizes the memory manager's live-allocation state,
// for debug-build shutdown diagnostics (spec section 4.2).
func (rt *Runtime) MemoryReport() []string {
	return rt.mem.ReportLines()
}

// Curry, Compose, Constant, Native, Compiled and Negate build the six
// quote combinators (spec section 4.5).
func (rt *Runtime) Curry(arg Value, inner Quote) *CurriedQuote { return NewCurriedQuote(arg, inner) }
func (rt *Runtime) Compose(left, right Quote) *ComposedQuote   { return NewComposedQuote(left, right) }
func (rt *Runtime) Constant(v Value) *ConstantQuote            { return NewConstantQuote(v) }
func (rt *Runtime) Native(name string, fn func(*Context) bool) *NativeQuote {
	return NewNativeQuote(name, fn)
}
func (rt *Runtime) Compiled(tokens []Token) *CompiledQuote { return NewCompiledQuote(tokens) }
func (rt *Runtime) Negate(q Quote) *NegatedQuote           { return NewNegatedQuote(q) }

// RegisterPrototype installs proto as the prototype for every value of
// kind. Intended to be called during runtime construction.
func (rt *Runtime) RegisterPrototype(kind Kind, proto *Object) {
	rt.prototypes[kind] = proto
}

// PrototypeFor returns the registered prototype for kind, or nil.
func (rt *Runtime) PrototypeFor(kind Kind) *Object {
	return rt.prototypes[kind]
}

// DefineGlobal writes name into the runtime's top-level dictionary. Per
// spec section 5, mutating the global dictionary after contexts have
// diverged must be externally synchronized; this method itself is not
// locked.
func (rt *Runtime) DefineGlobal(name string, v Value) {
	rt.globals[name] = v
}

// LookupGlobal searches the top-level dictionary.
func (rt *Runtime) LookupGlobal(name string) (Value, bool) {
	v, ok := rt.globals[name]
	return v, ok
}

// FindModule resolves an import name like "a.b.c" to a file path by
// trying "<path>/a/b/c.plorth" against each configured module path,
// first match wins (spec section 6.4). The candidate paths are probed
// concurrently via errgroup, promoting golang.org/x/sync from the
// teacher's indirect requirement to a direct one; results are then
// resolved back into path-priority order so "first match wins" holds
// regardless of filesystem latency.
func (rt *Runtime) FindModule(name string) (string, bool) {
	rel := filepath.Join(strings.Split(name, ".")...) + ".plorth"

	candidates := make([]string, len(rt.modulePaths))
	for i, base := range rt.modulePaths {
		candidates[i] = filepath.Join(base, rel)
	}

	found := make([]bool, len(candidates))
	var g errgroup.Group
	for i, path := range candidates {
		i, path := i, path
		g.Go(func() error {
			if fi, err := os.Stat(path); err == nil && !fi.IsDir() {
				found[i] = true
			}
			return nil
		})
	}
	_ = g.Wait()

	for i, ok := range found {
		if ok {
			return candidates[i], true
		}
	}
	return "", false
}
