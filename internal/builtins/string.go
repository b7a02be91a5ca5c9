package builtins

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strconv"

	"github.com/rm-a0/sol25/internal/runtime"
)

// registerString installs String's comparison, conversion, and stdio
// methods (spec.md §4.3 "Numeric and string semantics"). Note that
// equalTo: is deliberately not overridden here — Object#equalTo:
// already implements exactly the byte-identical-payload comparison
// the spec describes for strings (see object.go).
func registerString(reg *runtime.Registry, str *runtime.Class) {
	str.DefineMethod(&runtime.Method{Selector: "concatenateWith:", Variant: runtime.NativeVariant, Native: stringConcatenateWith})
	str.DefineMethod(&runtime.Method{Selector: "asInteger", Variant: runtime.NativeVariant, Native: stringAsInteger})
	str.DefineMethod(&runtime.Method{Selector: "startsWith:endsBefore:", Variant: runtime.NativeVariant, Native: stringStartsWithEndsBefore})
	str.DefineMethod(&runtime.Method{Selector: "print", Variant: runtime.NativeVariant, Native: stringPrint})
	str.DefineMethod(&runtime.Method{Selector: "read", Variant: runtime.NativeVariant, Native: stringRead})
	str.DefineMethod(&runtime.Method{Selector: "asString", Variant: runtime.NativeVariant, Native: stringAsString})
	str.DefineMethod(&runtime.Method{Selector: "isString", Variant: runtime.NativeVariant, Native: alwaysTrue})
}

// stringConcatenateWith returns Nil (not an error) when the argument
// is not a String — spec.md §7's named "soft-failure" convention.
func stringConcatenateWith(ctx *runtime.Context, receiver *runtime.Value, args []*runtime.Value) (*runtime.Value, error) {
	if err := checkArity("concatenateWith:", args, 1); err != nil {
		return nil, err
	}
	if !ctx.Registry.IsSubclass(args[0].Class, "String") {
		return ctx.Nil, nil
	}
	a, err := strPayload("concatenateWith:", receiver)
	if err != nil {
		return nil, err
	}
	b, err := strPayload("concatenateWith:", args[0])
	if err != nil {
		return nil, err
	}
	return newString(ctx, a+b), nil
}

var strictDecimal = regexp.MustCompile(`^-?[0-9]+$`)

// stringAsInteger parses a strict decimal, optionally "-"-prefixed;
// any other content returns Nil rather than failing (spec.md §4.3
// "asInteger").
func stringAsInteger(ctx *runtime.Context, receiver *runtime.Value, args []*runtime.Value) (*runtime.Value, error) {
	if err := checkArity("asInteger", args, 0); err != nil {
		return nil, err
	}
	s, err := strPayload("asInteger", receiver)
	if err != nil {
		return nil, err
	}
	if !strictDecimal.MatchString(s) {
		return ctx.Nil, nil
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return ctx.Nil, nil
	}
	return newInteger(ctx, n), nil
}

// stringStartsWithEndsBefore implements the 1-based, half-open
// substring extraction in spec.md §4.3. Both arguments must be
// positive, non-zero Integers; anything else yields Nil. An empty
// window (end - start <= 0) yields an empty string, including the
// boundary case in spec.md §8 ("startsWith: 3 endsBefore: 3").
func stringStartsWithEndsBefore(ctx *runtime.Context, receiver *runtime.Value, args []*runtime.Value) (*runtime.Value, error) {
	if err := checkArity("startsWith:endsBefore:", args, 2); err != nil {
		return nil, err
	}
	startArg, endArg := args[0], args[1]
	if !ctx.Registry.IsSubclass(startArg.Class, "Integer") || !ctx.Registry.IsSubclass(endArg.Class, "Integer") {
		return ctx.Nil, nil
	}
	start, err := intPayload("startsWith:endsBefore:", startArg)
	if err != nil {
		return nil, err
	}
	end, err := intPayload("startsWith:endsBefore:", endArg)
	if err != nil {
		return nil, err
	}
	if start <= 0 || end <= 0 {
		return ctx.Nil, nil
	}

	s, err := strPayload("startsWith:endsBefore:", receiver)
	if err != nil {
		return nil, err
	}
	if end-start <= 0 {
		return newString(ctx, ""), nil
	}

	from, to := start-1, end-1
	n := int64(len(s))
	if from > n {
		from = n
	}
	if to > n {
		to = n
	}
	if to < from {
		to = from
	}
	return newString(ctx, s[from:to]), nil
}

// stringPrint writes the payload verbatim, with no trailing newline,
// and returns the receiver (spec.md §4.3 "print").
func stringPrint(ctx *runtime.Context, receiver *runtime.Value, args []*runtime.Value) (*runtime.Value, error) {
	if err := checkArity("print", args, 0); err != nil {
		return nil, err
	}
	s, err := strPayload("print", receiver)
	if err != nil {
		return nil, err
	}
	fmt.Fprint(ctx.Stdout, s)
	return receiver, nil
}

// stringRead reads one line from stdin, stripping a single trailing
// "\n" or "\r\n"; EOF yields an empty string (spec.md §4.3 "read").
func stringRead(ctx *runtime.Context, receiver *runtime.Value, args []*runtime.Value) (*runtime.Value, error) {
	if err := checkArity("read", args, 0); err != nil {
		return nil, err
	}
	line, err := ctx.Stdin.ReadString('\n')
	if err != nil && err != io.EOF {
		return ctx.Nil, nil
	}
	line = trimNewline(line)
	return newString(ctx, line), nil
}

func trimNewline(s string) string {
	if n := len(s); n > 0 && s[n-1] == '\n' {
		s = s[:n-1]
		if n := len(s); n > 0 && s[n-1] == '\r' {
			s = s[:n-1]
		}
	}
	return s
}

func stringAsString(ctx *runtime.Context, receiver *runtime.Value, args []*runtime.Value) (*runtime.Value, error) {
	if err := checkArity("asString", args, 0); err != nil {
		return nil, err
	}
	return receiver, nil
}

// NewBufferedStdin wraps an io.Reader for String#read. Exported so the
// driver can build the *runtime.Context's Stdin field without
// duplicating the bufio.NewReader call, mirroring the teacher's
// pattern of keeping a builtin's small helpers next to the method that
// consumes them.
func NewBufferedStdin(r io.Reader) *bufio.Reader {
	return bufio.NewReader(r)
}
