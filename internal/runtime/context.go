package runtime

import (
	"bufio"
	"io"

	"github.com/rm-a0/sol25/internal/diag"
)

// Invoker re-enters the evaluator to run a block closure with the
// given arguments. Built-ins that must invoke user code (whileTrue:,
// ifTrue:ifFalse:, and:, or:, value/value:/value:value:) call this
// instead of depending on the eval package directly, which would
// create an import cycle (eval already imports runtime).
type Invoker func(closure *BlockClosure, args []*Value) (*Value, error)

// Context is the explicit runtime-context object design notes call for
// ("Native methods as closures over the runtime... parameterized by a
// runtime-context object passed explicitly, rather than relying on
// implicit global state"). Every native method handle receives one.
type Context struct {
	Registry *Registry
	Invoke   Invoker

	Stdin  *bufio.Reader
	Stdout io.Writer
	Stderr io.Writer

	Tracer *diag.Tracer

	// Singletons for True/False/Nil, so native methods never allocate
	// a second instance of these classes (spec.md §3: "no payload
	// (singleton-equivalent)").
	True  *Value
	False *Value
	Nil   *Value
}

// Bool returns ctx.True or ctx.False for cond, the idiom every
// boolean-returning built-in uses instead of constructing a fresh
// instance.
func (ctx *Context) Bool(cond bool) *Value {
	if cond {
		return ctx.True
	}
	return ctx.False
}

// Err is a small convenience wrapper so builtins read like
// `return nil, ctx.Err(diag.TypeMismatch, selector, "...")`.
func (ctx *Context) Err(cat diag.Category, where, format string, args ...any) error {
	return diag.Newf(cat, where, format, args...)
}
