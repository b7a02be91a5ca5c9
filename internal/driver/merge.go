package driver

import (
	"github.com/rm-a0/sol25/internal/ast"
	"github.com/rm-a0/sol25/internal/diag"
	"github.com/rm-a0/sol25/internal/runtime"
)

// mergeUserClasses overlays the user-defined classes from program onto
// reg, which must already hold the seven built-ins (spec.md §4.4:
// "built-in first, user classes overlaid"). A user class with the same
// name as any existing class — built-in or user — is a program error
// (spec.md §4.5: "rejecting name collisions and unresolvable
// parents").
func mergeUserClasses(reg *runtime.Registry, program *ast.Program) error {
	classes := make(map[string]*runtime.Class, len(program.Classes))

	// Pass 1: register every class's own selector table before any
	// parent is linked, so forward references to classes declared
	// later in the file still resolve.
	for _, c := range program.Classes {
		class := runtime.NewClass(c.Name)
		for _, m := range c.Methods {
			class.DefineMethod(&runtime.Method{
				Selector: m.Selector,
				Variant:  runtime.UserVariant,
				Block:    m.Block,
			})
		}
		if err := reg.Register(class); err != nil {
			return err
		}
		classes[c.Name] = class
	}

	// Pass 2: link parents now that every class (built-in and user) is
	// registered.
	for _, c := range program.Classes {
		if c.ParentName == "" {
			return diag.Newf(diag.StructureError, c.Name, "class %q has no parent (only Object may omit one)", c.Name)
		}
		parent, err := reg.Find(c.ParentName)
		if err != nil {
			return err
		}
		classes[c.Name].Parent = parent
	}

	return checkAcyclic(reg)
}

// checkAcyclic verifies the inheritance graph is a single-rooted,
// acyclic tree with Object at the root (spec.md §3 "Invariants"). A
// parent chain that doesn't reach Object within len(All()) steps must
// contain a cycle, since a well-formed tree of N classes has depth at
// most N.
func checkAcyclic(reg *runtime.Registry) error {
	all := reg.All()
	limit := len(all) + 1
	for _, class := range all {
		steps := 0
		c := class
		for c.Name != "Object" {
			if c.Parent == nil {
				return diag.Newf(diag.StructureError, class.Name, "class %q does not reach Object", class.Name)
			}
			c = c.Parent
			steps++
			if steps > limit {
				return diag.Newf(diag.StructureError, class.Name, "inheritance cycle detected starting at %q", class.Name)
			}
		}
	}
	return nil
}
