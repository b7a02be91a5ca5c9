package builtins

import (
	"strconv"

	"github.com/rm-a0/sol25/internal/diag"
	"github.com/rm-a0/sol25/internal/runtime"
)

// registerInteger installs Integer's arithmetic, comparison, and
// formatting methods (spec.md §4.3 "Numeric and string semantics").
func registerInteger(reg *runtime.Registry, integer *runtime.Class) {
	integer.DefineMethod(&runtime.Method{Selector: "plus:", Variant: runtime.NativeVariant, Native: integerArith("plus:", func(a, b int64) int64 { return a + b })})
	integer.DefineMethod(&runtime.Method{Selector: "minus:", Variant: runtime.NativeVariant, Native: integerArith("minus:", func(a, b int64) int64 { return a - b })})
	integer.DefineMethod(&runtime.Method{Selector: "multiplyBy:", Variant: runtime.NativeVariant, Native: integerArith("multiplyBy:", func(a, b int64) int64 { return a * b })})
	integer.DefineMethod(&runtime.Method{Selector: "divBy:", Variant: runtime.NativeVariant, Native: integerDivBy})
	integer.DefineMethod(&runtime.Method{Selector: "greaterThan:", Variant: runtime.NativeVariant, Native: integerGreaterThan})
	integer.DefineMethod(&runtime.Method{Selector: "asString", Variant: runtime.NativeVariant, Native: integerAsString})
	integer.DefineMethod(&runtime.Method{Selector: "isNumber", Variant: runtime.NativeVariant, Native: alwaysTrue})
}

func alwaysTrue(ctx *runtime.Context, receiver *runtime.Value, args []*runtime.Value) (*runtime.Value, error) {
	return ctx.True, nil
}

// integerArith builds the native handle for plus:/minus:/multiplyBy:,
// which all share the same "require an Integer (subclass-aware)
// argument, else TypeMismatch" shape (spec.md §4.3).
func integerArith(selector string, op func(a, b int64) int64) runtime.NativeFunc {
	return func(ctx *runtime.Context, receiver *runtime.Value, args []*runtime.Value) (*runtime.Value, error) {
		if err := checkArity(selector, args, 1); err != nil {
			return nil, err
		}
		if err := requireClass(ctx, selector, args[0], "Integer"); err != nil {
			return nil, err
		}
		a, err := intPayload(selector, receiver)
		if err != nil {
			return nil, err
		}
		b, err := intPayload(selector, args[0])
		if err != nil {
			return nil, err
		}
		return newInteger(ctx, op(a, b)), nil
	}
}

// integerDivBy performs truncated integer division (spec.md §4.3
// "divBy:") — Go's native int64 division already truncates toward
// zero, matching the boundary case in spec.md §8 ("negative dividend
// uses truncation-toward-zero").
func integerDivBy(ctx *runtime.Context, receiver *runtime.Value, args []*runtime.Value) (*runtime.Value, error) {
	if err := checkArity("divBy:", args, 1); err != nil {
		return nil, err
	}
	if err := requireClass(ctx, "divBy:", args[0], "Integer"); err != nil {
		return nil, err
	}
	divisor, err := intPayload("divBy:", args[0])
	if err != nil {
		return nil, err
	}
	if divisor == 0 {
		return nil, diag.Newf(diag.ValueError, "divBy:", "division by zero")
	}
	dividend, err := intPayload("divBy:", receiver)
	if err != nil {
		return nil, err
	}
	return newInteger(ctx, dividend/divisor), nil
}

func integerGreaterThan(ctx *runtime.Context, receiver *runtime.Value, args []*runtime.Value) (*runtime.Value, error) {
	if err := checkArity("greaterThan:", args, 1); err != nil {
		return nil, err
	}
	if err := requireClass(ctx, "greaterThan:", args[0], "Integer"); err != nil {
		return nil, err
	}
	a, err := intPayload("greaterThan:", receiver)
	if err != nil {
		return nil, err
	}
	b, err := intPayload("greaterThan:", args[0])
	if err != nil {
		return nil, err
	}
	return ctx.Bool(a > b), nil
}

// integerAsString formats the payload using canonical signed-integer
// formatting — spec.md §9 resolves the leading-"+"/zero-trimming open
// question this way explicitly ("the specified model uses canonical
// signed-integer formatting").
func integerAsString(ctx *runtime.Context, receiver *runtime.Value, args []*runtime.Value) (*runtime.Value, error) {
	if err := checkArity("asString", args, 0); err != nil {
		return nil, err
	}
	n, err := intPayload("asString", receiver)
	if err != nil {
		return nil, err
	}
	return newString(ctx, strconv.FormatInt(n, 10)), nil
}
