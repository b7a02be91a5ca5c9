// Package eval implements the SOL25 recursive expression/statement/
// block interpreter and message-dispatch core (spec.md §4.3).
package eval

import (
	"strconv"
	"strings"

	"github.com/rm-a0/sol25/internal/ast"
	"github.com/rm-a0/sol25/internal/diag"
	"github.com/rm-a0/sol25/internal/runtime"
)

// Evaluator holds the two pieces of process-wide state every
// expression evaluation needs: the class registry (for dispatch) and
// the runtime context (for native methods and tracing). Global is the
// permanently-empty root frame that every user method's lexical scope
// is parented to (spec.md §4.3: "in practice a fresh frame parented to
// the global scope"). Per the design notes, none of this is package-
// level state — it is threaded explicitly through every call.
type Evaluator struct {
	Registry *runtime.Registry
	Ctx      *runtime.Context
	Global   *runtime.Environment
}

// New builds an Evaluator and wires ctx.Invoke back to it, so native
// methods (whileTrue:, ifTrue:ifFalse:, Block#value, ...) can re-enter
// block evaluation without the runtime package importing eval.
func New(reg *runtime.Registry, ctx *runtime.Context) *Evaluator {
	e := &Evaluator{Registry: reg, Ctx: ctx, Global: runtime.NewEnvironment()}
	ctx.Invoke = e.invokeClosure
	return e
}

// invokeClosure runs a Block value's captured AST with the given
// arguments. self is NOT re-bound to something new — it resolves to
// whatever "self" was already bound to in the closure's defining
// environment (spec.md §9 "Closures": a Block couples its AST with its
// *defining* environment). This is how `self` inside a block literal
// keeps referring to the enclosing method's receiver even when the
// block is invoked from somewhere else entirely (spec.md §8 boundary
// case: "references to names from A's frame must still resolve").
func (e *Evaluator) invokeClosure(closure *runtime.BlockClosure, args []*runtime.Value) (*runtime.Value, error) {
	self, _ := closure.Env.Get("self")
	return e.EvalBlock(closure.Block, self, args, closure.Env)
}

// EvalBlock constructs a fresh frame linked to callerEnv, binds
// parameters and self, executes statements in order, and returns the
// value of the last one (spec.md §4.3 "eval_block"). An empty block
// returns Nil. Argument count must match parameter count exactly.
func (e *Evaluator) EvalBlock(block *ast.Block, receiver *runtime.Value, args []*runtime.Value, callerEnv *runtime.Environment) (*runtime.Value, error) {
	if len(args) != len(block.Params) {
		return nil, diag.Newf(diag.TypeMismatch, "arity",
			"expected %d argument(s), got %d", len(block.Params), len(args))
	}

	frame := runtime.NewEnclosedEnvironment(callerEnv)
	for i, p := range block.Params {
		frame.Define(p, args[i])
	}
	frame.Define("self", receiver)

	result := e.Ctx.Nil
	for _, stmt := range block.Statements {
		v, err := e.EvalStatement(stmt, receiver, frame)
		if err != nil {
			return nil, err
		}
		result = v
	}
	return result, nil
}

// EvalStatement evaluates stmt.Expr and assigns the result to
// stmt.Target in env (spec.md §4.3 "eval_statement") — rebinding the
// name in whichever frame already owns it, or declaring it fresh in
// env if no enclosing frame does (see Environment.Set).
func (e *Evaluator) EvalStatement(stmt *ast.Statement, self *runtime.Value, env *runtime.Environment) (*runtime.Value, error) {
	v, err := e.EvalExpression(&stmt.Expr, self, env)
	if err != nil {
		return nil, err
	}
	env.Set(stmt.Target, v)
	return v, nil
}

// EvalExpression is the closed case analysis over the four expression
// shapes (spec.md §4.3 "eval_expression"). It is an explicit switch on
// the tag, not virtual dispatch, per design notes "Dynamic dispatch
// and variant expressions".
func (e *Evaluator) EvalExpression(expr *ast.Expr, self *runtime.Value, env *runtime.Environment) (*runtime.Value, error) {
	switch expr.Kind {
	case ast.ExprLiteral:
		return e.evalLiteral(expr)
	case ast.ExprVar:
		if v, ok := env.Get(expr.VarName); ok {
			return v, nil
		}
		// Not a local: a name that isn't bound in any enclosing frame
		// but names a registered class is a reference to that class
		// (spec.md §8 law uses "Integer" as a bare value — the
		// argument of `from:` — confirming class names resolve this
		// way; see DESIGN.md).
		if class, err := e.Registry.Find(expr.VarName); err == nil {
			return e.Registry.ClassValue(class), nil
		}
		return nil, diag.Newf(diag.StructureError, expr.VarName, "undefined variable %q", expr.VarName)
	case ast.ExprBlockLit:
		return e.evalBlockLiteral(expr, env)
	case ast.ExprSend:
		return e.evalSend(expr, self, env)
	default:
		return nil, diag.New(diag.StructureError, "malformed expression node")
	}
}

func (e *Evaluator) evalLiteral(expr *ast.Expr) (*runtime.Value, error) {
	switch expr.LiteralClass {
	case "True":
		return e.Ctx.True, nil
	case "False":
		return e.Ctx.False, nil
	case "Nil":
		return e.Ctx.Nil, nil
	case "Integer":
		n, err := strconv.ParseInt(strings.TrimSpace(expr.LiteralValue), 10, 64)
		if err != nil {
			return nil, diag.Newf(diag.StructureError, expr.LiteralValue, "malformed Integer literal %q", expr.LiteralValue)
		}
		class, err := e.Registry.Find("Integer")
		if err != nil {
			return nil, err
		}
		return &runtime.Value{Class: class, Attrs: map[string]*runtime.Value{}, Payload: n}, nil
	case "String":
		class, err := e.Registry.Find("String")
		if err != nil {
			return nil, err
		}
		return &runtime.Value{Class: class, Attrs: map[string]*runtime.Value{}, Payload: expr.LiteralValue}, nil
	default:
		class, err := e.Registry.Find(expr.LiteralClass)
		if err != nil {
			return nil, err
		}
		return &runtime.Value{Class: class, Attrs: map[string]*runtime.Value{}, Payload: expr.LiteralValue}, nil
	}
}

func (e *Evaluator) evalBlockLiteral(expr *ast.Expr, env *runtime.Environment) (*runtime.Value, error) {
	class, err := e.Registry.Find("Block")
	if err != nil {
		return nil, err
	}
	closure := &runtime.BlockClosure{Block: expr.Block, Env: env}
	return &runtime.Value{Class: class, Attrs: map[string]*runtime.Value{}, Payload: closure}, nil
}
