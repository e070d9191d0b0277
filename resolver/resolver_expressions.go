/*
File    : golox/resolver/resolver_expressions.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package resolver

import "github.com/akashmaji946/golox/ast"

func (r *Resolver) resolveExpr(expr ast.Expr) {
	switch e := expr.(type) {
	case *ast.Variable:
		if len(r.scopes) > 0 {
			if state, ok := r.peekScope()[e.Name.Lexeme]; ok && state == declared {
				r.rep.ReportAt(e.Name.Line, "at '"+e.Name.Lexeme+"'", "Can't read local variable in its own initializer.")
			}
		}
		r.resolveLocal(e.NodeID(), e.Name.Lexeme)

	case *ast.Assign:
		r.resolveExpr(e.Value)
		r.resolveLocal(e.NodeID(), e.Name.Lexeme)

	case *ast.Binary:
		r.resolveExpr(e.Left)
		r.resolveExpr(e.Right)

	case *ast.Call:
		r.resolveExpr(e.Callee)
		for _, a := range e.Args {
			r.resolveExpr(a)
		}

	case *ast.Get:
		r.resolveExpr(e.Object)

	case *ast.Set:
		r.resolveExpr(e.Value)
		r.resolveExpr(e.Object)

	case *ast.Super:
		if r.currentClass == classNone {
			r.rep.ReportAt(e.Keyword.Line, "at '"+e.Keyword.Lexeme+"'", "Can't use 'super' outside of a class.")
		} else if r.currentClass != classSubclass {
			r.rep.ReportAt(e.Keyword.Line, "at '"+e.Keyword.Lexeme+"'", "Can't use 'super' in a class with no superclass.")
		}
		r.resolveLocal(e.NodeID(), "super")

	case *ast.This:
		if r.currentClass == classNone {
			r.rep.ReportAt(e.Keyword.Line, "at '"+e.Keyword.Lexeme+"'", "Can't use 'this' outside of a class.")
			return
		}
		r.resolveLocal(e.NodeID(), "this")

	case *ast.Grouping:
		r.resolveExpr(e.Expression)

	case *ast.Literal:
		// no bindings

	case *ast.Unary:
		r.resolveExpr(e.Right)

	case *ast.Logical:
		r.resolveExpr(e.Left)
		r.resolveExpr(e.Right)

	case *ast.Ternary:
		r.resolveExpr(e.Cond)
		r.resolveExpr(e.Then)
		r.resolveExpr(e.Else)

	default:
		panic("resolver: unhandled expression type")
	}
}
