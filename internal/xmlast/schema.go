// Package xmlast loads a SOL25 AST from its XML serialization (spec.md
// §6 "Input AST"). This is the one external-boundary component spec.md
// §1 calls out as out of the core specification's scope — its only
// obligation is to hand the core a typed *ast.Program or reject
// structurally malformed input as a *diag.Error{Category:
// StructureError}.
package xmlast

import "encoding/xml"

// The structs below mirror the grammar in spec.md §6 one element at a
// time. They are decode targets only — internal/ast's types are what
// the rest of the interpreter consumes; see convert.go for the
// translation between the two.

type xmlProgram struct {
	XMLName  xml.Name   `xml:"program"`
	Language string     `xml:"language,attr"`
	Classes  []xmlClass `xml:"class"`
}

type xmlClass struct {
	Name    string      `xml:"name,attr"`
	Parent  string      `xml:"parent,attr"`
	Methods []xmlMethod `xml:"method"`
}

type xmlMethod struct {
	Selector string     `xml:"selector,attr"`
	Blocks   []xmlBlock `xml:"block"`
}

type xmlBlock struct {
	Parameters []xmlParameter `xml:"parameter"`
	Assigns    []xmlAssign    `xml:"assign"`
}

type xmlParameter struct {
	Name string `xml:"name,attr"`
}

type xmlAssign struct {
	Var  xmlVar  `xml:"var"`
	Expr xmlExpr `xml:"expr"`
}

type xmlVar struct {
	Name string `xml:"name,attr"`
}

// xmlExpr decodes any of the four expression shapes into one struct.
// Decoding itself may leave zero or several fields populated;
// convertExpr rejects anything but exactly one.
type xmlExpr struct {
	Literal *xmlLiteral `xml:"literal"`
	Var     *xmlVar     `xml:"var"`
	Send    *xmlSend    `xml:"send"`
	Block   *xmlBlock   `xml:"block"`
}

type xmlLiteral struct {
	Class string `xml:"class,attr"`
	Value string `xml:"value,attr"`
}

type xmlSend struct {
	Selector string  `xml:"selector,attr"`
	Receiver xmlExpr `xml:"expr"`
	Args     []xmlArg `xml:"arg"`
}

type xmlArg struct {
	Expr xmlExpr `xml:"expr"`
}
