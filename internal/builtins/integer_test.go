package builtins

import (
	"testing"

	"github.com/rm-a0/sol25/internal/diag"
	"github.com/rm-a0/sol25/internal/runtime"
)

func TestIntegerArithmetic(t *testing.T) {
	_, ctx := newTestContext(t, "")
	cases := []struct {
		selector string
		a, b, want int64
	}{
		{"plus:", 2, 3, 5},
		{"minus:", 5, 3, 2},
		{"multiplyBy:", 4, 3, 12},
	}
	for _, tc := range cases {
		var native runtime.NativeFunc
		switch tc.selector {
		case "plus:":
			native = integerArith("plus:", func(a, b int64) int64 { return a + b })
		case "minus:":
			native = integerArith("minus:", func(a, b int64) int64 { return a - b })
		case "multiplyBy:":
			native = integerArith("multiplyBy:", func(a, b int64) int64 { return a * b })
		}
		v, err := native(ctx, newInteger(ctx, tc.a), []*runtime.Value{newInteger(ctx, tc.b)})
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", tc.selector, err)
		}
		if v.Payload.(int64) != tc.want {
			t.Errorf("%d %s %d = %v, want %d", tc.a, tc.selector, tc.b, v.Payload, tc.want)
		}
	}
}

func TestIntegerArithRejectsNonIntegerArgument(t *testing.T) {
	_, ctx := newTestContext(t, "")
	native := integerArith("plus:", func(a, b int64) int64 { return a + b })
	_, err := native(ctx, newInteger(ctx, 1), []*runtime.Value{newString(ctx, "x")})
	de, ok := diag.As(err)
	if !ok || de.Category != diag.TypeMismatch {
		t.Fatalf("plus: with String arg = %v, want TypeMismatch", err)
	}
}

func TestIntegerDivByTruncatesTowardZero(t *testing.T) {
	_, ctx := newTestContext(t, "")
	v, err := integerDivBy(ctx, newInteger(ctx, -7), []*runtime.Value{newInteger(ctx, 2)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.Payload.(int64) != -3 {
		t.Fatalf("-7 divBy: 2 = %v, want -3 (truncation toward zero)", v.Payload)
	}
}

func TestIntegerDivByZeroIsValueError(t *testing.T) {
	_, ctx := newTestContext(t, "")
	_, err := integerDivBy(ctx, newInteger(ctx, 7), []*runtime.Value{newInteger(ctx, 0)})
	de, ok := diag.As(err)
	if !ok || de.Category != diag.ValueError {
		t.Fatalf("divBy: 0 = %v, want ValueError", err)
	}
}

func TestIntegerGreaterThan(t *testing.T) {
	_, ctx := newTestContext(t, "")
	v, _ := integerGreaterThan(ctx, newInteger(ctx, 5), []*runtime.Value{newInteger(ctx, 3)})
	if v != ctx.True {
		t.Error("5 greaterThan: 3 must be True")
	}
	v, _ = integerGreaterThan(ctx, newInteger(ctx, 3), []*runtime.Value{newInteger(ctx, 5)})
	if v != ctx.False {
		t.Error("3 greaterThan: 5 must be False")
	}
}

func TestIntegerAsString(t *testing.T) {
	_, ctx := newTestContext(t, "")
	cases := []struct {
		n    int64
		want string
	}{
		{0, "0"},
		{42, "42"},
		{-17, "-17"},
	}
	for _, tc := range cases {
		v, err := integerAsString(ctx, newInteger(ctx, tc.n), nil)
		if err != nil {
			t.Fatalf("asString error: %v", err)
		}
		if v.Payload.(string) != tc.want {
			t.Errorf("(%d) asString = %q, want %q", tc.n, v.Payload, tc.want)
		}
	}
}

func TestIntegerArithPanicsAvoidedOnUninitializedReceiver(t *testing.T) {
	reg, ctx := newTestContext(t, "")
	integer := mustFind(t, reg, "Integer")
	uninitialized := runtime.NewInstance(integer)

	native := integerArith("plus:", func(a, b int64) int64 { return a + b })
	_, err := native(ctx, uninitialized, []*runtime.Value{newInteger(ctx, 1)})
	de, ok := diag.As(err)
	if !ok || de.Category != diag.TypeMismatch {
		t.Fatalf("plus: on an `Integer new` receiver = %v, want a typed TypeMismatch, not a panic", err)
	}
}
