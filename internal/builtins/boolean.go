package builtins

import (
	"github.com/rm-a0/sol25/internal/diag"
	"github.com/rm-a0/sol25/internal/runtime"
)

// registerBoolean installs not/and:/or:/ifTrue:ifFalse: identically
// shaped on both True and False, differing only in which branch short-
// circuits (spec.md §4.3 "Boolean methods").
func registerBoolean(reg *runtime.Registry, trueClass, falseClass *runtime.Class) {
	trueClass.DefineMethod(&runtime.Method{Selector: "not", Variant: runtime.NativeVariant, Native: notReturns(false)})
	falseClass.DefineMethod(&runtime.Method{Selector: "not", Variant: runtime.NativeVariant, Native: notReturns(true)})

	trueClass.DefineMethod(&runtime.Method{Selector: "and:", Variant: runtime.NativeVariant, Native: trueAnd})
	falseClass.DefineMethod(&runtime.Method{Selector: "and:", Variant: runtime.NativeVariant, Native: falseAnd})

	trueClass.DefineMethod(&runtime.Method{Selector: "or:", Variant: runtime.NativeVariant, Native: trueOr})
	falseClass.DefineMethod(&runtime.Method{Selector: "or:", Variant: runtime.NativeVariant, Native: falseOr})

	trueClass.DefineMethod(&runtime.Method{Selector: "ifTrue:ifFalse:", Variant: runtime.NativeVariant, Native: ifTrueIfFalse(0)})
	falseClass.DefineMethod(&runtime.Method{Selector: "ifTrue:ifFalse:", Variant: runtime.NativeVariant, Native: ifTrueIfFalse(1)})

	// asString is not named in spec.md's Boolean-methods list, but the
	// Object default ("" for every unoverridden class) would make
	// `true asString print` silently print nothing — surprising for a
	// value whose whole purpose is to print as "true"/"false". Filled
	// in the same way Integer#asString fills the analogous gap.
	trueClass.DefineMethod(&runtime.Method{Selector: "asString", Variant: runtime.NativeVariant, Native: constString("true")})
	falseClass.DefineMethod(&runtime.Method{Selector: "asString", Variant: runtime.NativeVariant, Native: constString("false")})
}

func constString(s string) runtime.NativeFunc {
	return func(ctx *runtime.Context, receiver *runtime.Value, args []*runtime.Value) (*runtime.Value, error) {
		if err := checkArity("asString", args, 0); err != nil {
			return nil, err
		}
		return newString(ctx, s), nil
	}
}

// notReturns returns the native handle for True#not/False#not. It
// defers to ctx.True/ctx.False rather than a *runtime.Class captured at
// registration time, so the result is always the one canonical
// singleton Value every other built-in compares by identity — a class
// token from Registry.ClassValue would be a distinct Value.
func notReturns(result bool) runtime.NativeFunc {
	return func(ctx *runtime.Context, receiver *runtime.Value, args []*runtime.Value) (*runtime.Value, error) {
		if err := checkArity("not", args, 0); err != nil {
			return nil, err
		}
		return ctx.Bool(result), nil
	}
}

// requireZeroArgBlock validates that v is a Block value whose
// underlying block takes no parameters, the shape and:/or:/
// ifTrue:ifFalse: all require for their block argument(s).
func requireZeroArgBlock(ctx *runtime.Context, selector string, v *runtime.Value) (*runtime.BlockClosure, error) {
	if !ctx.Registry.IsSubclass(v.Class, "Block") {
		return nil, ctx.Err(diag.TypeMismatch, selector, "%s expects a Block argument, got %s", selector, v.Class.Name)
	}
	closure, ok := v.Payload.(*runtime.BlockClosure)
	if !ok {
		return nil, ctx.Err(diag.TypeMismatch, selector, "%s requires an initialized Block value", selector)
	}
	if len(closure.Block.Params) != 0 {
		return nil, ctx.Err(diag.TypeMismatch, selector, "%s expects a zero-parameter Block", selector)
	}
	return closure, nil
}

func trueAnd(ctx *runtime.Context, receiver *runtime.Value, args []*runtime.Value) (*runtime.Value, error) {
	if err := checkArity("and:", args, 1); err != nil {
		return nil, err
	}
	closure, err := requireZeroArgBlock(ctx, "and:", args[0])
	if err != nil {
		return nil, err
	}
	result, err := ctx.Invoke(closure, nil)
	if err != nil {
		return nil, err
	}
	return ctx.Bool(result.Class.Name == "True"), nil
}

func falseAnd(ctx *runtime.Context, receiver *runtime.Value, args []*runtime.Value) (*runtime.Value, error) {
	if err := checkArity("and:", args, 1); err != nil {
		return nil, err
	}
	if _, err := requireZeroArgBlock(ctx, "and:", args[0]); err != nil {
		return nil, err
	}
	return ctx.False, nil
}

func trueOr(ctx *runtime.Context, receiver *runtime.Value, args []*runtime.Value) (*runtime.Value, error) {
	if err := checkArity("or:", args, 1); err != nil {
		return nil, err
	}
	if _, err := requireZeroArgBlock(ctx, "or:", args[0]); err != nil {
		return nil, err
	}
	return ctx.True, nil
}

func falseOr(ctx *runtime.Context, receiver *runtime.Value, args []*runtime.Value) (*runtime.Value, error) {
	if err := checkArity("or:", args, 1); err != nil {
		return nil, err
	}
	closure, err := requireZeroArgBlock(ctx, "or:", args[0])
	if err != nil {
		return nil, err
	}
	return ctx.Invoke(closure, nil)
}

// ifTrueIfFalse returns the native handle that always evaluates (sends
// value to) args[branch] — branch 0 for True#ifTrue:ifFalse:, 1 for
// False#ifTrue:ifFalse: (spec.md §4.3).
func ifTrueIfFalse(branch int) runtime.NativeFunc {
	return func(ctx *runtime.Context, receiver *runtime.Value, args []*runtime.Value) (*runtime.Value, error) {
		if err := checkArity("ifTrue:ifFalse:", args, 2); err != nil {
			return nil, err
		}
		thenClosure, err := requireZeroArgBlock(ctx, "ifTrue:ifFalse:", args[0])
		if err != nil {
			return nil, err
		}
		elseClosure, err := requireZeroArgBlock(ctx, "ifTrue:ifFalse:", args[1])
		if err != nil {
			return nil, err
		}
		if branch == 0 {
			return ctx.Invoke(thenClosure, nil)
		}
		return ctx.Invoke(elseClosure, nil)
	}
}
