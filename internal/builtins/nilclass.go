package builtins

import "github.com/rm-a0/sol25/internal/runtime"

// registerNil installs Nil#isNil (True by override) and Nil#asString
// ("nil" — see the analogous note on Boolean#asString in boolean.go).
func registerNil(reg *runtime.Registry, nilClass *runtime.Class) {
	nilClass.DefineMethod(&runtime.Method{Selector: "isNil", Variant: runtime.NativeVariant, Native: alwaysTrue})
	nilClass.DefineMethod(&runtime.Method{Selector: "asString", Variant: runtime.NativeVariant, Native: constString("nil")})
}
