package driver

import (
	"testing"

	"github.com/rm-a0/sol25/internal/ast"
	"github.com/rm-a0/sol25/internal/builtins"
	"github.com/rm-a0/sol25/internal/diag"
	"github.com/rm-a0/sol25/internal/runtime"
)

func newRegistryWithBuiltins(t *testing.T) *runtime.Registry {
	t.Helper()
	reg := runtime.NewRegistry()
	ctx := &runtime.Context{Registry: reg}
	if err := builtins.Register(reg, ctx); err != nil {
		t.Fatalf("Register() error: %v", err)
	}
	return reg
}

func userClass(name, parent string) *ast.Class {
	return &ast.Class{
		Name:       name,
		ParentName: parent,
		Methods: map[string]*ast.Method{
			"run": {Selector: "run", Kind: ast.UserMethod, Block: &ast.Block{}},
		},
	}
}

func TestMergeUserClassesLinksParents(t *testing.T) {
	reg := newRegistryWithBuiltins(t)
	program := &ast.Program{Classes: []*ast.Class{userClass("Main", "Object")}}
	if err := mergeUserClasses(reg, program); err != nil {
		t.Fatalf("mergeUserClasses() error: %v", err)
	}
	main, err := reg.Find("Main")
	if err != nil {
		t.Fatalf("Find(Main): %v", err)
	}
	if main.Parent == nil || main.Parent.Name != "Object" {
		t.Fatalf("Main.Parent = %v, want Object", main.Parent)
	}
}

func TestMergeUserClassesAllowsForwardParentReferences(t *testing.T) {
	reg := newRegistryWithBuiltins(t)
	// Base declared after Derived in the program's class list.
	program := &ast.Program{Classes: []*ast.Class{
		userClass("Derived", "Base"),
		userClass("Base", "Object"),
	}}
	if err := mergeUserClasses(reg, program); err != nil {
		t.Fatalf("mergeUserClasses() error: %v", err)
	}
	derived, _ := reg.Find("Derived")
	if derived.Parent.Name != "Base" {
		t.Fatalf("Derived.Parent = %v, want Base", derived.Parent)
	}
}

func TestMergeUserClassesRejectsCollisionWithBuiltin(t *testing.T) {
	reg := newRegistryWithBuiltins(t)
	program := &ast.Program{Classes: []*ast.Class{userClass("Integer", "Object")}}
	err := mergeUserClasses(reg, program)
	de, ok := diag.As(err)
	if !ok || de.Category != diag.StructureError {
		t.Fatalf("collision with built-in Integer = %v, want StructureError", err)
	}
}

func TestMergeUserClassesRejectsMissingParentName(t *testing.T) {
	reg := newRegistryWithBuiltins(t)
	program := &ast.Program{Classes: []*ast.Class{userClass("Orphan", "")}}
	err := mergeUserClasses(reg, program)
	de, ok := diag.As(err)
	if !ok || de.Category != diag.StructureError {
		t.Fatalf("missing parent name = %v, want StructureError", err)
	}
}

func TestMergeUserClassesRejectsUnresolvableParent(t *testing.T) {
	reg := newRegistryWithBuiltins(t)
	program := &ast.Program{Classes: []*ast.Class{userClass("Orphan", "Ghost")}}
	err := mergeUserClasses(reg, program)
	de, ok := diag.As(err)
	if !ok || de.Category != diag.UndefinedClass {
		t.Fatalf("unresolvable parent = %v, want UndefinedClass", err)
	}
}

func TestMergeUserClassesDetectsInheritanceCycle(t *testing.T) {
	reg := newRegistryWithBuiltins(t)
	program := &ast.Program{Classes: []*ast.Class{
		userClass("A", "B"),
		userClass("B", "A"),
	}}
	err := mergeUserClasses(reg, program)
	de, ok := diag.As(err)
	if !ok || de.Category != diag.StructureError {
		t.Fatalf("inheritance cycle = %v, want StructureError", err)
	}
}
