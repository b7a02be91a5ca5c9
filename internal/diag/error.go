package diag

import (
	"errors"
	"fmt"
)

// Error is the fatal, non-recoverable error value the evaluator and
// driver raise. Errors short-circuit evaluation immediately (spec.md
// §7: "Errors are fatal and non-recoverable... user code cannot catch
// them"); there is no recovery path inside the language.
type Error struct {
	Category Category
	Message  string

	// Where, when non-empty, names the selector or class involved —
	// not a source position (the XML loader does not carry one), but
	// enough to make "Error: DoesNotUnderstand: ..." actionable.
	Where string
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Where != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Category, e.Message, e.Where)
	}
	return fmt.Sprintf("%s: %s", e.Category, e.Message)
}

// New builds a diag.Error with the given category and formatted
// message, mirroring the teacher's NewCompilerError constructor shape.
func New(cat Category, format string, args ...any) *Error {
	return &Error{Category: cat, Message: fmt.Sprintf(format, args...)}
}

// Newf is New plus a where argument: it also records the selector or
// class involved in Error.Where, which Error() appends in parentheses.
func Newf(cat Category, where string, format string, args ...any) *Error {
	return &Error{Category: cat, Message: fmt.Sprintf(format, args...), Where: where}
}

// As reports whether err is (or wraps) a *diag.Error, returning it if
// so. It exists so the driver can classify arbitrary errors returned
// from deep in the evaluator without a type switch at every call site.
func As(err error) (*Error, bool) {
	if err == nil {
		return nil, false
	}
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}
