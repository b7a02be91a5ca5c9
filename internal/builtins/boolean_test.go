package builtins

import (
	"testing"

	"github.com/rm-a0/sol25/internal/runtime"
)

func TestBooleanNotReturnsCanonicalSingleton(t *testing.T) {
	_, ctx := newTestContext(t, "")
	v, err := notReturns(false)(ctx, ctx.True, nil)
	if err != nil {
		t.Fatalf("true not: unexpected error: %v", err)
	}
	if v != ctx.False {
		t.Fatal("true not must be the canonical False singleton, not a fresh value")
	}

	v, err = notReturns(true)(ctx, ctx.False, nil)
	if err != nil {
		t.Fatalf("false not: unexpected error: %v", err)
	}
	if v != ctx.True {
		t.Fatal("false not must be the canonical True singleton")
	}
}

func TestBooleanAsString(t *testing.T) {
	_, ctx := newTestContext(t, "")
	v, _ := constString("true")(ctx, ctx.True, nil)
	if v.Payload.(string) != "true" {
		t.Errorf("true asString = %q, want true", v.Payload)
	}
	v, _ = constString("false")(ctx, ctx.False, nil)
	if v.Payload.(string) != "false" {
		t.Errorf("false asString = %q, want false", v.Payload)
	}
}

func TestBooleanAndShortCircuitsOnFalseReceiver(t *testing.T) {
	reg, ctx := newTestContext(t, "")
	env := runtime.NewEnclosedEnvironment(nil)
	env.Set("self", ctx.False)
	// The block argument would, if invoked, return True — but
	// False#and: must never invoke it.
	block := zeroArgBlockValue(reg, env, "True")

	v, err := falseAnd(ctx, ctx.False, []*runtime.Value{block})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != ctx.False {
		t.Fatal("False and: <block> must be False without invoking the block")
	}
}

func TestBooleanAndInvokesBlockOnTrueReceiver(t *testing.T) {
	reg, ctx := newTestContext(t, "")
	env := runtime.NewEnclosedEnvironment(nil)
	env.Set("self", ctx.False)
	block := zeroArgBlockValue(reg, env, "False")

	v, err := trueAnd(ctx, ctx.True, []*runtime.Value{block})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != ctx.False {
		t.Fatal("True and: <block returning False> must be False")
	}
}

func TestBooleanOrShortCircuitsOnTrueReceiver(t *testing.T) {
	reg, ctx := newTestContext(t, "")
	env := runtime.NewEnclosedEnvironment(nil)
	env.Set("self", ctx.False)
	block := zeroArgBlockValue(reg, env, "False")

	v, err := trueOr(ctx, ctx.True, []*runtime.Value{block})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != ctx.True {
		t.Fatal("True or: <block> must be True without invoking the block")
	}
}

func TestBooleanIfTrueIfFalseEvaluatesMatchingBranch(t *testing.T) {
	reg, ctx := newTestContext(t, "")
	env := runtime.NewEnclosedEnvironment(nil)
	env.Set("self", ctx.False)
	thenBlock := zeroArgBlockValue(reg, env, "True")
	elseBlock := zeroArgBlockValue(reg, env, "False")

	v, err := ifTrueIfFalse(0)(ctx, ctx.True, []*runtime.Value{thenBlock, elseBlock})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != ctx.True {
		t.Fatal("True ifTrue:ifFalse: must evaluate the then-branch")
	}

	v, err = ifTrueIfFalse(1)(ctx, ctx.False, []*runtime.Value{thenBlock, elseBlock})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != ctx.False {
		t.Fatal("False ifTrue:ifFalse: must evaluate the else-branch")
	}
}

func TestRequireZeroArgBlockRejectsNonBlockArgument(t *testing.T) {
	_, ctx := newTestContext(t, "")
	_, err := requireZeroArgBlock(ctx, "and:", newInteger(ctx, 1))
	if err == nil {
		t.Fatal("expected an error for a non-Block argument")
	}
}
