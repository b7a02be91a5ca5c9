// Package driver implements the Driver component of spec.md §4.5: the
// bootstrap sequence from a parsed AST to a finished program run.
package driver

import (
	"io"

	"github.com/rm-a0/sol25/internal/ast"
	"github.com/rm-a0/sol25/internal/builtins"
	"github.com/rm-a0/sol25/internal/diag"
	"github.com/rm-a0/sol25/internal/eval"
	"github.com/rm-a0/sol25/internal/runtime"
)

// Options configures a Run: the three stdio streams String read/print
// touch, and whether to emit --trace diagnostics.
type Options struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Trace  bool
}

// Run executes program.Main#run end to end: register built-ins, merge
// user classes, verify Main/run, instantiate Main, invoke run (spec.md
// §4.5). Any step failing short-circuits with its *diag.Error.
func Run(program *ast.Program, opts Options) error {
	reg := runtime.NewRegistry()
	ctx := &runtime.Context{
		Registry: reg,
		Stdin:    builtins.NewBufferedStdin(opts.Stdin),
		Stdout:   opts.Stdout,
		Stderr:   opts.Stderr,
		Tracer:   diag.NewTracer(opts.Stderr, opts.Trace),
	}

	if err := builtins.Register(reg, ctx); err != nil {
		return err
	}
	if err := mergeUserClasses(reg, program); err != nil {
		return err
	}

	mainClass, err := reg.Find("Main")
	if err != nil {
		return err
	}
	method, err := reg.FindMethod(mainClass, "run")
	if err != nil {
		return diag.Newf(diag.UndefinedClass, "Main", "class Main must define a parameterless run method")
	}
	if method.Variant != runtime.UserVariant || len(method.Block.Params) != 0 {
		return diag.New(diag.StructureError, "Main#run must be a user-defined method taking no parameters")
	}

	mainInstance := runtime.NewInstance(mainClass)
	evaluator := eval.New(reg, ctx)
	lexEnv := runtime.NewEnclosedEnvironment(evaluator.Global)
	_, err = evaluator.EvalBlock(method.Block, mainInstance, nil, lexEnv)
	return err
}
