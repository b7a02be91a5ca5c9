// Package runtime implements the SOL25 value, environment, and class
// registry model (spec.md §3, §4.1, §4.2): the pieces of the
// interpreter that exist independent of how expressions are evaluated.
package runtime

import "github.com/rm-a0/sol25/internal/ast"

// Value is a runtime object: a class pointer, a per-instance attribute
// map, and an optional internal payload used only by the built-in
// classes (spec.md §3 "Value (runtime object)").
//
// Unlike the teacher's *Value interface with one concrete struct per
// DWScript type (IntegerValue, StringValue, ObjectInstance, ...), SOL25
// has exactly one runtime object shape — every class, built-in or
// user-defined, produces the same struct. A plain struct is therefore
// the right fit; an interface here would buy polymorphism SOL25 never
// needs (see DESIGN.md).
type Value struct {
	Class   *Class
	Attrs   map[string]*Value
	Payload any
}

// BlockClosure is the payload of a Block value: the AST node paired
// with the environment active when the block literal was evaluated
// (spec.md §3 "Block — a reference to the Block AST node plus a
// captured environment"). It must be the *defining* environment, not
// the invoking one — see design notes "Closures".
type BlockClosure struct {
	Block *ast.Block
	Env   *Environment
}

// NewInstance builds a fresh Value of class with no payload and an
// empty attribute map — the shape Object#new and Object#from: produce
// (spec.md §4.3 "Object methods").
func NewInstance(class *Class) *Value {
	return &Value{Class: class, Attrs: make(map[string]*Value)}
}

// GetAttr reads an attribute, returning (nil, false) if unset. A
// selector that True/False/Nil do not define also falls through to
// this path (internal/eval's dispatch rule applies to any receiver);
// on those singletons it always misses, since attribute writes to them
// are rejected.
func (v *Value) GetAttr(name string) (*Value, bool) {
	a, ok := v.Attrs[name]
	return a, ok
}

// SetAttr writes an attribute. Callers are responsible for rejecting
// writes to the singleton True/False/Nil values before calling this
// (spec.md §3 invariant: "assigning to their attributes is ill-defined
// and must fail") — see internal/eval's attribute-write dispatch path.
func (v *Value) SetAttr(name string, val *Value) {
	v.Attrs[name] = val
}
