package builtins

import "github.com/rm-a0/sol25/internal/runtime"

// registerObject installs the methods every class inherits unless it
// overrides them: new, from:, identicalTo:, equalTo:, asString, and
// the four isX predicates (spec.md §4.3 "Object methods").
func registerObject(reg *runtime.Registry, object *runtime.Class) {
	object.DefineMethod(&runtime.Method{Selector: "new", Variant: runtime.NativeVariant, Native: objectNew})
	object.DefineMethod(&runtime.Method{Selector: "from:", Variant: runtime.NativeVariant, Native: objectFrom})
	object.DefineMethod(&runtime.Method{Selector: "identicalTo:", Variant: runtime.NativeVariant, Native: objectIdenticalTo})
	object.DefineMethod(&runtime.Method{Selector: "equalTo:", Variant: runtime.NativeVariant, Native: objectEqualTo})
	object.DefineMethod(&runtime.Method{Selector: "asString", Variant: runtime.NativeVariant, Native: objectAsString})
	object.DefineMethod(&runtime.Method{Selector: "isNumber", Variant: runtime.NativeVariant, Native: alwaysFalse})
	object.DefineMethod(&runtime.Method{Selector: "isString", Variant: runtime.NativeVariant, Native: alwaysFalse})
	object.DefineMethod(&runtime.Method{Selector: "isBlock", Variant: runtime.NativeVariant, Native: alwaysFalse})
	object.DefineMethod(&runtime.Method{Selector: "isNil", Variant: runtime.NativeVariant, Native: alwaysFalse})
}

func alwaysFalse(ctx *runtime.Context, receiver *runtime.Value, args []*runtime.Value) (*runtime.Value, error) {
	return ctx.False, nil
}

// objectNew constructs a fresh Value of the receiver's class — the
// receiver may be a plain instance or a class token (spec.md §3
// "Invariants"; see runtime.Registry.ClassValue). Either way its
// Class field names what to instantiate.
func objectNew(ctx *runtime.Context, receiver *runtime.Value, args []*runtime.Value) (*runtime.Value, error) {
	if err := checkArity("new", args, 0); err != nil {
		return nil, err
	}
	// True/False/Nil are singletons (spec.md §3): `new` on one of their
	// class tokens must hand back the one shared instance, not a second
	// value indistinguishable from it by anything but identicalTo:.
	switch receiver.Class.Name {
	case "True":
		return ctx.True, nil
	case "False":
		return ctx.False, nil
	case "Nil":
		return ctx.Nil, nil
	}
	return runtime.NewInstance(receiver.Class), nil
}

// objectFrom constructs a fresh Value of the receiver's class, copying
// the argument's internal payload (spec.md §4.3 "from: v").
func objectFrom(ctx *runtime.Context, receiver *runtime.Value, args []*runtime.Value) (*runtime.Value, error) {
	if err := checkArity("from:", args, 1); err != nil {
		return nil, err
	}
	out := runtime.NewInstance(receiver.Class)
	out.Payload = args[0].Payload
	return out, nil
}

// objectIdenticalTo reports pointer identity between receiver and arg.
func objectIdenticalTo(ctx *runtime.Context, receiver *runtime.Value, args []*runtime.Value) (*runtime.Value, error) {
	if err := checkArity("identicalTo:", args, 1); err != nil {
		return nil, err
	}
	return ctx.Bool(receiver == args[0]), nil
}

// objectEqualTo degenerates to identity when neither side carries a
// payload, otherwise compares payloads by value (spec.md §4.3
// "equalTo:"). This single implementation also backs the behavior
// described separately for Integer#equalTo: and String#equalTo: —
// both degenerate to exactly this rule, so neither overrides it (see
// DESIGN.md).
func objectEqualTo(ctx *runtime.Context, receiver *runtime.Value, args []*runtime.Value) (*runtime.Value, error) {
	if err := checkArity("equalTo:", args, 1); err != nil {
		return nil, err
	}
	other := args[0]
	if receiver.Payload == nil && other.Payload == nil {
		return ctx.Bool(receiver == other), nil
	}
	return ctx.Bool(payloadEqual(receiver.Payload, other.Payload)), nil
}

func payloadEqual(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	switch av := a.(type) {
	case int64:
		bv, ok := b.(int64)
		return ok && av == bv
	case string:
		bv, ok := b.(string)
		return ok && av == bv
	default:
		return false
	}
}

// objectAsString is the default, empty-string representation for any
// class that does not override it (spec.md §4.3 "asString — default
// empty String").
func objectAsString(ctx *runtime.Context, receiver *runtime.Value, args []*runtime.Value) (*runtime.Value, error) {
	if err := checkArity("asString", args, 0); err != nil {
		return nil, err
	}
	return newString(ctx, ""), nil
}

func newString(ctx *runtime.Context, s string) *runtime.Value {
	class, _ := ctx.Registry.Find("String")
	return &runtime.Value{Class: class, Attrs: map[string]*runtime.Value{}, Payload: s}
}

func newInteger(ctx *runtime.Context, n int64) *runtime.Value {
	class, _ := ctx.Registry.Find("Integer")
	return &runtime.Value{Class: class, Attrs: map[string]*runtime.Value{}, Payload: n}
}
