package runtime

import "github.com/rm-a0/sol25/internal/diag"

// Registry is the name-to-class table plus inheritance-aware lookup
// (spec.md §4.1 "Class Registry"). It is built once during bootstrap
// (built-ins, then user classes) and never mutated afterward — per
// the design notes, it is threaded through as an explicit parameter
// rather than held as a package-level singleton.
type Registry struct {
	classes map[string]*Class

	// classValues memoizes the token Value returned when a bare class
	// name (e.g. "Integer", or a user class "C") is resolved as a
	// Variable expression — see internal/eval's handling of ExprVar
	// and DESIGN.md's "class names as values" resolution.
	classValues map[string]*Value
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		classes:     make(map[string]*Class),
		classValues: make(map[string]*Value),
	}
}

// ClassValue returns the canonical Value token representing class
// itself as a first-class reference — the receiver of `Integer new`,
// `C new`, or the argument in `n from: Integer`. Its Class field is
// the class it refers to, which is what makes `new`/`from:` (defined
// once on Object) work identically whether sent to an instance or to
// a class token: both read the class to instantiate off Value.Class.
func (r *Registry) ClassValue(class *Class) *Value {
	if v, ok := r.classValues[class.Name]; ok {
		return v
	}
	v := &Value{Class: class, Attrs: make(map[string]*Value)}
	r.classValues[class.Name] = v
	return v
}

// Register adds class to the table. It fails if a class with the same
// name is already present (spec.md §4.1).
func (r *Registry) Register(class *Class) error {
	if _, exists := r.classes[class.Name]; exists {
		return diag.Newf(diag.StructureError, class.Name, "class %q already defined", class.Name)
	}
	r.classes[class.Name] = class
	return nil
}

// Find resolves name to its class, or fails with UndefinedClass.
func (r *Registry) Find(name string) (*Class, error) {
	c, ok := r.classes[name]
	if !ok {
		return nil, diag.Newf(diag.UndefinedClass, name, "undefined class %q", name)
	}
	return c, nil
}

// HasMethod reports whether selector is defined on class or any
// ancestor.
func (r *Registry) HasMethod(class *Class, selector string) bool {
	_, err := r.FindMethod(class, selector)
	return err == nil
}

// FindMethod walks the parent chain starting at class, returning the
// first method matching selector. Fails with DoesNotUnderstand if no
// class in the chain defines it. The walk terminates because the
// driver's mergeUserClasses guarantees the inheritance graph is acyclic (spec.md §4.1).
func (r *Registry) FindMethod(class *Class, selector string) (*Method, error) {
	for c := class; c != nil; c = c.Parent {
		if m, ok := c.OwnMethod(selector); ok {
			return m, nil
		}
	}
	return nil, diag.Newf(diag.DoesNotUnderstand, selector, "class %q does not understand %q", class.Name, selector)
}

// IsSubclass reports whether class is ancestorName or a descendant of
// it; reflexive, so a class is always a subclass of itself (spec.md
// §4.1, §8 invariant).
func (r *Registry) IsSubclass(class *Class, ancestorName string) bool {
	for c := class; c != nil; c = c.Parent {
		if c.Name == ancestorName {
			return true
		}
	}
	return false
}

// All returns every registered class. Used by the driver's inheritance
// check (checkAcyclic); callers must not mutate the slice's backing
// classes.
func (r *Registry) All() []*Class {
	out := make([]*Class, 0, len(r.classes))
	for _, c := range r.classes {
		out = append(out, c)
	}
	return out
}
