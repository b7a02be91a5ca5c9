// Package builtins registers the native method implementations for the
// seven built-in SOL25 classes (spec.md §4.3 "Numeric and string
// semantics", "Boolean methods", "Object methods", "Block methods", and
// §4.4 "Built-in Library Registration"). Every native method is a plain
// function value closing over nothing but its own logic; the runtime
// state it needs (the class registry, stdio, the re-entrant block
// invoker) arrives through the *runtime.Context parameter the
// evaluator passes to every dispatch (design notes, "Native methods as
// closures over the runtime").
package builtins

import (
	"github.com/rm-a0/sol25/internal/diag"
	"github.com/rm-a0/sol25/internal/runtime"
)

// checkArity rejects a native call whose argument count does not match
// what the selector requires. SOL25's exit-code taxonomy has no
// dedicated arity category (spec.md §6 lists five, and §4.3 separately
// names ArityMismatch only for eval_block); this repo classifies a
// native-method arity mismatch as TypeMismatch, the closest named
// category for "wrong shape of argument(s) to a built-in" — see
// DESIGN.md Open Questions.
func checkArity(selector string, args []*runtime.Value, want int) error {
	if len(args) != want {
		return diag.Newf(diag.TypeMismatch, selector, "%s expects %d argument(s), got %d", selector, want, len(args))
	}
	return nil
}

func requireClass(ctx *runtime.Context, selector string, v *runtime.Value, className string) error {
	if !ctx.Registry.IsSubclass(v.Class, className) {
		return diag.Newf(diag.TypeMismatch, selector, "%s expects a %s argument, got %s", selector, className, v.Class.Name)
	}
	return nil
}

// intPayload and strPayload guard against a receiver/argument whose
// class is Integer/String but whose Payload was never populated —
// reachable via `Integer new` (Object#new never sets a payload). A
// bare type assertion would panic here instead of reporting a typed
// SOL25 error.
func intPayload(selector string, v *runtime.Value) (int64, error) {
	n, ok := v.Payload.(int64)
	if !ok {
		return 0, diag.Newf(diag.TypeMismatch, selector, "%s requires an initialized Integer value", selector)
	}
	return n, nil
}

func strPayload(selector string, v *runtime.Value) (string, error) {
	s, ok := v.Payload.(string)
	if !ok {
		return "", diag.Newf(diag.TypeMismatch, selector, "%s requires an initialized String value", selector)
	}
	return s, nil
}
