package builtins

import (
	"github.com/rm-a0/sol25/internal/diag"
	"github.com/rm-a0/sol25/internal/runtime"
)

// registerBlock installs value/value:/value:value: and whileTrue:
// (spec.md §4.3 "Block methods").
func registerBlock(reg *runtime.Registry, block *runtime.Class) {
	block.DefineMethod(&runtime.Method{Selector: "value", Variant: runtime.NativeVariant, Native: blockValue(0)})
	block.DefineMethod(&runtime.Method{Selector: "value:", Variant: runtime.NativeVariant, Native: blockValue(1)})
	block.DefineMethod(&runtime.Method{Selector: "value:value:", Variant: runtime.NativeVariant, Native: blockValue(2)})
	block.DefineMethod(&runtime.Method{Selector: "whileTrue:", Variant: runtime.NativeVariant, Native: blockWhileTrue})
	block.DefineMethod(&runtime.Method{Selector: "isBlock", Variant: runtime.NativeVariant, Native: alwaysTrue})
}

// blockValue returns the native handle for value/value:/value:value:.
// The underlying block's parameter count must equal arity exactly
// (spec.md §4.3: "the parameter count of the underlying block must
// equal the selector's arity, else TypeMismatch").
func blockValue(arity int) runtime.NativeFunc {
	selector := [...]string{"value", "value:", "value:value:"}[arity]
	return func(ctx *runtime.Context, receiver *runtime.Value, args []*runtime.Value) (*runtime.Value, error) {
		if err := checkArity(selector, args, arity); err != nil {
			return nil, err
		}
		closure, ok := receiver.Payload.(*runtime.BlockClosure)
		if !ok {
			return nil, diag.Newf(diag.TypeMismatch, selector, "%s requires an initialized Block value", selector)
		}
		if len(closure.Block.Params) != arity {
			return nil, diag.Newf(diag.TypeMismatch, selector,
				"block takes %d parameter(s), %s sent %d argument(s)", len(closure.Block.Params), selector, arity)
		}
		return ctx.Invoke(closure, args)
	}
}

// blockWhileTrue repeatedly invokes the receiver; as soon as its
// result's class is not True, the loop stops without invoking body
// again. Both receiver and body must be zero-parameter Blocks (spec.md
// §4.3 "whileTrue:"). Always returns Nil.
func blockWhileTrue(ctx *runtime.Context, receiver *runtime.Value, args []*runtime.Value) (*runtime.Value, error) {
	if err := checkArity("whileTrue:", args, 1); err != nil {
		return nil, err
	}
	condClosure, err := requireZeroArgBlock(ctx, "whileTrue:", receiver)
	if err != nil {
		return nil, err
	}
	bodyClosure, err := requireZeroArgBlock(ctx, "whileTrue:", args[0])
	if err != nil {
		return nil, err
	}

	for {
		cond, err := ctx.Invoke(condClosure, nil)
		if err != nil {
			return nil, err
		}
		if cond.Class.Name != "True" {
			break
		}
		if _, err := ctx.Invoke(bodyClosure, nil); err != nil {
			return nil, err
		}
	}
	return ctx.Nil, nil
}
