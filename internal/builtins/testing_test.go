package builtins

import (
	"bytes"
	"testing"

	"github.com/rm-a0/sol25/internal/ast"
	"github.com/rm-a0/sol25/internal/runtime"
)

// newTestContext builds a fully registered Context the way the driver
// does, minus the evaluator — enough to call native methods directly
// and, via a hand-rolled Invoke, run the zero-arg blocks the Boolean/
// Block control-flow methods need.
func newTestContext(t *testing.T, stdin string) (*runtime.Registry, *runtime.Context) {
	t.Helper()
	reg := runtime.NewRegistry()
	ctx := &runtime.Context{
		Registry: reg,
		Stdin:    NewBufferedStdin(bytes.NewBufferString(stdin)),
		Stdout:   &bytes.Buffer{},
		Stderr:   &bytes.Buffer{},
	}
	if err := Register(reg, ctx); err != nil {
		t.Fatalf("Register() error: %v", err)
	}
	// A minimal re-entrant Invoke: runs a zero-statement-count-aware
	// closure by walking its Block.Statements directly against its
	// captured Env, binding no parameters (every control-flow native
	// method here only ever invokes zero-arg blocks).
	ctx.Invoke = func(closure *runtime.BlockClosure, args []*runtime.Value) (*runtime.Value, error) {
		self, _ := closure.Env.Get("self")
		frame := runtime.NewEnclosedEnvironment(closure.Env)
		frame.Define("self", self)
		result := ctx.Nil
		for _, stmt := range closure.Block.Statements {
			v, err := evalLiteralOrVar(ctx, &stmt.Expr, frame)
			if err != nil {
				return nil, err
			}
			frame.Set(stmt.Target, v)
			result = v
		}
		return result, nil
	}
	return reg, ctx
}

// evalLiteralOrVar is a tiny standalone evaluator covering only what
// this package's own tests need to build block bodies out of
// (True/False/Nil literals and variable reads; anything else, sends
// included, evaluates to Nil) without importing internal/eval (which
// would create an import cycle back into this package).
func evalLiteralOrVar(ctx *runtime.Context, expr *ast.Expr, env *runtime.Environment) (*runtime.Value, error) {
	switch expr.Kind {
	case ast.ExprLiteral:
		switch expr.LiteralClass {
		case "True":
			return ctx.True, nil
		case "False":
			return ctx.False, nil
		case "Nil":
			return ctx.Nil, nil
		}
	case ast.ExprVar:
		if v, ok := env.Get(expr.VarName); ok {
			return v, nil
		}
	}
	return ctx.Nil, nil
}

func zeroArgBlockValue(reg *runtime.Registry, env *runtime.Environment, literalClass string) *runtime.Value {
	block, _ := reg.Find("Block")
	body := &ast.Block{Statements: []*ast.Statement{
		{Target: "result", Expr: ast.Expr{Kind: ast.ExprLiteral, LiteralClass: literalClass}},
	}}
	return &runtime.Value{Class: block, Attrs: map[string]*runtime.Value{}, Payload: &runtime.BlockClosure{Block: body, Env: env}}
}
