/* Package plorth implements the core of the Plorth language: a
concatenative, stack-based scripting language in the spirit of Forth and
Factor.

A program is source text, which the tokenizer (token.go, tokenizer.go)
turns into a stream of positioned tokens. The parser (parser.go) lifts
token spans into values without executing them: string literals, number
literals, arrays, objects and parenthesized quotes all parse into
first-class Values. A quote's tokens are only walked when something
calls it.

Every Value has a prototype, resolved through the owning Runtime's
prototype registry (value.go). Built-in words live on those prototypes
(proto_*.go) so that `len`, `+`, `map` and friends dispatch differently
for arrays, strings and numbers without any explicit type switch at the
call site -- see Prototype and Context.Lookup.

A Runtime (runtime.go) owns the global dictionary, the prototype
registry, interned literals and the module search path; it is built
once and may be shared by multiple Contexts (context.go), each of which
owns its own operand stack, local dictionary and current error.
*/
package plorth
