package runtime

import "github.com/rm-a0/sol25/internal/ast"

// MethodVariant distinguishes a native (built-in) method from a
// user-defined one, per spec.md §3 "Method": "one of two variants".
type MethodVariant int

const (
	NativeVariant MethodVariant = iota
	UserVariant
)

// NativeFunc is a built-in method handle. It closes over nothing
// implicitly — the registry and evaluator it needs to re-enter (for
// e.g. whileTrue:) are passed explicitly via *Context, per the design
// notes' guidance to avoid relying on implicit global state.
type NativeFunc func(ctx *Context, receiver *Value, args []*Value) (*Value, error)

// Method is immutable once registered (spec.md §3 "Methods are
// immutable"). Exactly one of Native / Block is populated, selected by
// Variant.
type Method struct {
	Selector string
	Variant  MethodVariant
	Native   NativeFunc
	Block    *ast.Block
}

// Class is a named, immutable-after-registration selector table plus
// an optional parent link. The inheritance graph the Registry builds
// from these must be a single-rooted, acyclic tree with Object at the
// root (spec.md §3 "Class").
type Class struct {
	Name    string
	Parent  *Class
	methods map[string]*Method
}

// NewClass creates an empty class with no parent and no methods. The
// driver links Parent in once all classes are registered
// (internal/driver's mergeUserClasses), so that forward references to
// not-yet-registered parents resolve.
func NewClass(name string) *Class {
	return &Class{Name: name, methods: make(map[string]*Method)}
}

// DefineMethod installs selector into the class's own selector table.
// Re-defining a selector already present overwrites it — used once per
// selector during class construction, never after Register.
func (c *Class) DefineMethod(m *Method) {
	c.methods[m.Selector] = m
}

// OwnMethod looks up selector in this class's own table only (no
// parent walk). Exposed for the registry's inheritance-aware lookups.
func (c *Class) OwnMethod(selector string) (*Method, bool) {
	m, ok := c.methods[selector]
	return m, ok
}
