package xmlast

import (
	"encoding/xml"
	"io"

	"github.com/rm-a0/sol25/internal/ast"
	"github.com/rm-a0/sol25/internal/diag"
)

// Load decodes r as a SOL25 XML AST and converts it into the
// immutable internal/ast representation the rest of the interpreter
// consumes. Malformed XML, a wrong language attribute, and every
// violation that convert.go checks for are reported as
// *diag.Error{Category: StructureError}. Elements and attributes the
// grammar does not name are ignored rather than rejected, and a
// repeated expr child (in assign, send or arg) is merged by the
// decoder into one expr, which is rejected only if the copies have
// different shapes.
func Load(r io.Reader) (*ast.Program, error) {
	var doc xmlProgram
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, diag.Newf(diag.StructureError, "xml", "malformed XML: %v", err)
	}
	if doc.Language != "SOL25" {
		return nil, diag.Newf(diag.StructureError, "language", `program element must declare language="SOL25", got %q`, doc.Language)
	}

	program := &ast.Program{}
	for _, xc := range doc.Classes {
		class, err := convertClass(&xc)
		if err != nil {
			return nil, err
		}
		program.Classes = append(program.Classes, class)
	}
	return program, nil
}
