// Package diag provides the interpreter's error taxonomy and stderr
// formatting, in the spirit of the teacher's internal/errors package:
// a typed error value carrying enough context to render a short,
// human-readable diagnostic, with no stack-trace format mandated.
package diag

// Category is one of the fixed, stable error kinds a SOL25 program run
// can terminate with. The zero value, CategoryNone, is never attached
// to an error; it exists so a missing category is visibly wrong rather
// than silently StructureError.
type Category int

const (
	CategoryNone Category = iota
	StructureError
	UndefinedClass
	DoesNotUnderstand
	TypeMismatch
	ValueError
	InternalError
)

// String renders the category the way it must appear in a stderr
// diagnostic (spec.md §6: "each error must include a human-readable
// category name").
func (c Category) String() string {
	switch c {
	case StructureError:
		return "StructureError"
	case UndefinedClass:
		return "UndefinedClass"
	case DoesNotUnderstand:
		return "DoesNotUnderstand"
	case TypeMismatch:
		return "TypeMismatch"
	case ValueError:
		return "ValueError"
	case InternalError:
		return "InternalError"
	default:
		return "UnknownError"
	}
}

// ExitCode maps a Category to the process exit code this repository's
// launcher (cmd/sol25) reports. The specific integers are an external
// contract per spec.md §6/§9 ("Open Questions"); this repo pins them
// since the launcher lives in-tree here rather than as a separate
// process — see SPEC_FULL.md "+SUPPLEMENTED FEATURES".
func (c Category) ExitCode() int {
	switch c {
	case CategoryNone:
		return 0
	case StructureError:
		return 41
	case UndefinedClass:
		return 42
	case DoesNotUnderstand:
		return 43
	case TypeMismatch:
		return 44
	case ValueError:
		return 45
	default:
		return 91
	}
}
