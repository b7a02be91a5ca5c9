package eval

import (
	"strings"

	"github.com/rm-a0/sol25/internal/ast"
	"github.com/rm-a0/sol25/internal/diag"
	"github.com/rm-a0/sol25/internal/runtime"
)

// evalSend evaluates a message send: the receiver, then every argument
// left-to-right (spec.md §4.3 "strict evaluation"), then applies the
// dispatch rule.
func (e *Evaluator) evalSend(expr *ast.Expr, self *runtime.Value, env *runtime.Environment) (*runtime.Value, error) {
	receiver, err := e.EvalExpression(expr.Receiver, self, env)
	if err != nil {
		return nil, err
	}

	args := make([]*runtime.Value, len(expr.Args))
	for i, a := range expr.Args {
		v, err := e.EvalExpression(a, self, env)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}

	e.Ctx.Tracer.Tracef("send %s %s(%d args)", receiver.Class.Name, expr.Selector, len(args))

	method, err := e.Registry.FindMethod(receiver.Class, expr.Selector)
	if err != nil {
		// Attribute read/write fallback: a selector no class in the
		// receiver's chain understands is treated as access to the
		// receiver's own attribute storage, e.g. `c x: 42` on a freshly
		// instantiated `c` sets c's own "x" even though c is not self in
		// the caller's frame (spec.md §8 scenario: `c := C new. c x: 42.
		// c x asString print.` must print 42 — see DESIGN.md's Open
		// Questions entry on the §4.3-vs-§8 tension this resolves).
		return e.dispatchAttribute(receiver, expr.Selector, args)
	}

	switch method.Variant {
	case runtime.NativeVariant:
		return method.Native(e.Ctx, receiver, args)
	default:
		// A user method's lexical environment is the class scope: a
		// fresh frame parented to the global scope, never the
		// caller's locals (spec.md §4.3).
		lexEnv := runtime.NewEnclosedEnvironment(e.Global)
		return e.EvalBlock(method.Block, receiver, args, lexEnv)
	}
}

// dispatchAttribute implements the attribute read/write fallback for
// sends whose receiver's class has no method matching the selector
// (spec.md §4.3 dispatch rule item 1, broadened per DESIGN.md to any
// receiver rather than self only).
func (e *Evaluator) dispatchAttribute(receiver *runtime.Value, selector string, args []*runtime.Value) (*runtime.Value, error) {
	if strings.HasSuffix(selector, ":") && len(args) == 1 {
		if isSingleton(receiver) {
			return nil, diag.Newf(diag.DoesNotUnderstand, selector,
				"cannot assign attribute %q on a singleton %s value", selector, receiver.Class.Name)
		}
		name := strings.TrimSuffix(selector, ":")
		receiver.SetAttr(name, args[0])
		return receiver, nil
	}

	v, ok := receiver.GetAttr(selector)
	if !ok {
		return nil, diag.Newf(diag.DoesNotUnderstand, selector,
			"class %q does not understand %q", receiver.Class.Name, selector)
	}
	return v, nil
}

// isSingleton reports whether v is the interned True, False, or Nil
// value, which per spec.md §3 "have no attributes and no payload;
// assigning to their attributes is ill-defined and must fail".
func isSingleton(v *runtime.Value) bool {
	switch v.Class.Name {
	case "True", "False", "Nil":
		return true
	default:
		return false
	}
}
