package domain

import "github.com/yuin/gopher-lua/ast"

// inspect traverses a chunk depth first in source order and calls fn for every
// statement and expression. Returning false from fn skips the node's children.
// Nodes are treated as plain containers here; any meaning is up to fn.
func inspect(chunk []ast.Stmt, fn func(node any) bool) {
	for _, stmt := range chunk {
		inspectStmt(stmt, fn)
	}
}

func inspectStmt(stmt ast.Stmt, fn func(node any) bool) {
	if stmt == nil || !fn(stmt) {
		return
	}

	switch s := stmt.(type) {
	case *ast.AssignStmt:
		inspectExprs(s.Lhs, fn)
		inspectExprs(s.Rhs, fn)
	case *ast.LocalAssignStmt:
		inspectExprs(s.Exprs, fn)
	case *ast.FuncCallStmt:
		inspectExpr(s.Expr, fn)
	case *ast.DoBlockStmt:
		inspect(s.Stmts, fn)
	case *ast.WhileStmt:
		inspectExpr(s.Condition, fn)
		inspect(s.Stmts, fn)
	case *ast.RepeatStmt:
		inspect(s.Stmts, fn)
		inspectExpr(s.Condition, fn)
	case *ast.IfStmt:
		inspectExpr(s.Condition, fn)
		inspect(s.Then, fn)
		inspect(s.Else, fn)
	case *ast.NumberForStmt:
		inspectExpr(s.Init, fn)
		inspectExpr(s.Limit, fn)
		inspectExpr(s.Step, fn)
		inspect(s.Stmts, fn)
	case *ast.GenericForStmt:
		inspectExprs(s.Exprs, fn)
		inspect(s.Stmts, fn)
	case *ast.FuncDefStmt:
		if s.Name != nil {
			inspectExpr(s.Name.Func, fn)
			inspectExpr(s.Name.Receiver, fn)
		}

		if s.Func != nil {
			inspectExpr(s.Func, fn)
		}
	case *ast.ReturnStmt:
		inspectExprs(s.Exprs, fn)
	}
}

func inspectExprs(exprs []ast.Expr, fn func(node any) bool) {
	for _, expr := range exprs {
		inspectExpr(expr, fn)
	}
}

func inspectExpr(expr ast.Expr, fn func(node any) bool) {
	if expr == nil || !fn(expr) {
		return
	}

	switch e := expr.(type) {
	case *ast.AttrGetExpr:
		inspectExpr(e.Object, fn)
		inspectExpr(e.Key, fn)
	case *ast.TableExpr:
		for _, field := range e.Fields {
			if field == nil {
				continue
			}

			inspectExpr(field.Key, fn)
			inspectExpr(field.Value, fn)
		}
	case *ast.FuncCallExpr:
		inspectExpr(e.Func, fn)
		inspectExpr(e.Receiver, fn)
		inspectExprs(e.Args, fn)
	case *ast.LogicalOpExpr:
		inspectExpr(e.Lhs, fn)
		inspectExpr(e.Rhs, fn)
	case *ast.RelationalOpExpr:
		inspectExpr(e.Lhs, fn)
		inspectExpr(e.Rhs, fn)
	case *ast.StringConcatOpExpr:
		inspectExpr(e.Lhs, fn)
		inspectExpr(e.Rhs, fn)
	case *ast.ArithmeticOpExpr:
		inspectExpr(e.Lhs, fn)
		inspectExpr(e.Rhs, fn)
	case *ast.UnaryMinusOpExpr:
		inspectExpr(e.Expr, fn)
	case *ast.UnaryNotOpExpr:
		inspectExpr(e.Expr, fn)
	case *ast.UnaryLenOpExpr:
		inspectExpr(e.Expr, fn)
	case *ast.FunctionExpr:
		inspect(e.Stmts, fn)
	}
}
