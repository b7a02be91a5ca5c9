package ast

// Program is the root of a parsed SOL25 AST: the ordered list of
// user-defined classes found in the program element. Order is
// preserved from the source XML for stable diagnostics, though class
// resolution itself is order-independent (internal/runtime.Registry).
type Program struct {
	Classes []*Class
}
