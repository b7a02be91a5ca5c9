package builtins

import "github.com/rm-a0/sol25/internal/runtime"

// Register builds and installs the seven built-in classes into reg,
// in the order spec.md §4.4 requires: before any user class is merged.
// It also mints the True/False/Nil singletons and stores them on ctx,
// since every literal evaluation, every boolean-returning native
// method, and the whileTrue: loop all need to hand back the *same*
// instance (spec.md §3: "no payload (singleton-equivalent)").
func Register(reg *runtime.Registry, ctx *runtime.Context) error {
	object := runtime.NewClass("Object")
	integer := runtime.NewClass("Integer")
	str := runtime.NewClass("String")
	trueClass := runtime.NewClass("True")
	falseClass := runtime.NewClass("False")
	nilClass := runtime.NewClass("Nil")
	block := runtime.NewClass("Block")

	integer.Parent = object
	str.Parent = object
	trueClass.Parent = object
	falseClass.Parent = object
	nilClass.Parent = object
	block.Parent = object

	for _, c := range []*runtime.Class{object, integer, str, trueClass, falseClass, nilClass, block} {
		if err := reg.Register(c); err != nil {
			return err
		}
	}

	registerObject(reg, object)
	registerInteger(reg, integer)
	registerString(reg, str)
	registerBoolean(reg, trueClass, falseClass)
	registerNil(reg, nilClass)
	registerBlock(reg, block)

	ctx.True = runtime.NewInstance(trueClass)
	ctx.False = runtime.NewInstance(falseClass)
	ctx.Nil = runtime.NewInstance(nilClass)
	return nil
}
