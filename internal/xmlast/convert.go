package xmlast

import (
	"github.com/rm-a0/sol25/internal/ast"
	"github.com/rm-a0/sol25/internal/diag"
)

func convertClass(xc *xmlClass) (*ast.Class, error) {
	if xc.Name == "" {
		return nil, diag.New(diag.StructureError, "class element missing required name attribute")
	}
	class := &ast.Class{
		Name:       xc.Name,
		ParentName: xc.Parent,
		Methods:    make(map[string]*ast.Method),
	}
	for _, xm := range xc.Methods {
		method, err := convertMethod(&xm)
		if err != nil {
			return nil, err
		}
		class.Methods[method.Selector] = method
	}
	return class, nil
}

func convertMethod(xm *xmlMethod) (*ast.Method, error) {
	if xm.Selector == "" {
		return nil, diag.New(diag.StructureError, "method element missing required selector attribute")
	}
	if len(xm.Blocks) != 1 {
		return nil, diag.Newf(diag.StructureError, xm.Selector,
			"method %q must have exactly one block child, got %d", xm.Selector, len(xm.Blocks))
	}
	block, err := convertBlock(&xm.Blocks[0])
	if err != nil {
		return nil, err
	}
	return &ast.Method{Selector: xm.Selector, Kind: ast.UserMethod, Block: block}, nil
}

func convertBlock(xb *xmlBlock) (*ast.Block, error) {
	block := &ast.Block{}
	for _, p := range xb.Parameters {
		if p.Name == "" {
			return nil, diag.New(diag.StructureError, "parameter element missing required name attribute")
		}
		block.Params = append(block.Params, p.Name)
	}
	for _, xa := range xb.Assigns {
		stmt, err := convertAssign(&xa)
		if err != nil {
			return nil, err
		}
		block.Statements = append(block.Statements, stmt)
	}
	return block, nil
}

func convertAssign(xa *xmlAssign) (*ast.Statement, error) {
	if xa.Var.Name == "" {
		return nil, diag.New(diag.StructureError, "assign element missing required var name")
	}
	expr, err := convertExpr(&xa.Expr)
	if err != nil {
		return nil, err
	}
	return &ast.Statement{Target: xa.Var.Name, Expr: *expr}, nil
}

// convertExpr converts one xmlExpr into an ast.Expr, enforcing "exactly
// one child element" (spec.md §6).
func convertExpr(xe *xmlExpr) (*ast.Expr, error) {
	present := 0
	if xe.Literal != nil {
		present++
	}
	if xe.Var != nil {
		present++
	}
	if xe.Send != nil {
		present++
	}
	if xe.Block != nil {
		present++
	}
	if present != 1 {
		return nil, diag.Newf(diag.StructureError, "expr", "expr element must have exactly one child, found %d", present)
	}

	switch {
	case xe.Literal != nil:
		if xe.Literal.Class == "" {
			return nil, diag.New(diag.StructureError, "literal element missing required class attribute")
		}
		return &ast.Expr{Kind: ast.ExprLiteral, LiteralClass: xe.Literal.Class, LiteralValue: xe.Literal.Value}, nil

	case xe.Var != nil:
		if xe.Var.Name == "" {
			return nil, diag.New(diag.StructureError, "var element missing required name attribute")
		}
		return &ast.Expr{Kind: ast.ExprVar, VarName: xe.Var.Name}, nil

	case xe.Block != nil:
		block, err := convertBlock(xe.Block)
		if err != nil {
			return nil, err
		}
		return &ast.Expr{Kind: ast.ExprBlockLit, Block: block}, nil

	default: // xe.Send != nil
		return convertSend(xe.Send)
	}
}

func convertSend(xs *xmlSend) (*ast.Expr, error) {
	if xs.Selector == "" {
		return nil, diag.New(diag.StructureError, "send element missing required selector attribute")
	}
	receiver, err := convertExpr(&xs.Receiver)
	if err != nil {
		return nil, err
	}
	args := make([]*ast.Expr, len(xs.Args))
	for i, a := range xs.Args {
		argExpr, err := convertExpr(&a.Expr)
		if err != nil {
			return nil, err
		}
		args[i] = argExpr
	}
	return &ast.Expr{Kind: ast.ExprSend, Receiver: receiver, Selector: xs.Selector, Args: args}, nil
}
