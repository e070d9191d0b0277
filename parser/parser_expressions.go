/*
File    : golox/parser/parser_expressions.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import "github.com/akashmaji946/golox/ast"
import "github.com/akashmaji946/golox/lexer"

// expression is the grammar's entry point: a comma-separated list of
// assignments, left-associative. A single assignment with no comma just
// returns itself.
func (p *Parser) expression() ast.Expr {
	expr := p.assignment()
	for p.match(lexer.COMMA) {
		op := p.previous()
		right := p.assignment()
		expr = ast.NewBinary(p.ids, expr, op, right)
	}
	return expr
}

// assignment parses `target = value` or falls through to ternary. The
// left-hand side is parsed as an ordinary expression first, then inspected:
// a Variable becomes an Assign, a Get becomes a Set, anything else is a
// syntax error reported at the '=' token without unwinding the parser.
func (p *Parser) assignment() ast.Expr {
	expr := p.ternary()

	if p.match(lexer.EQUAL) {
		equals := p.previous()
		value := p.assignment()

		switch target := expr.(type) {
		case *ast.Variable:
			return ast.NewAssign(p.ids, target.Name, value)
		case *ast.Get:
			return ast.NewSet(p.ids, target.Object, target.Name, value)
		default:
			p.errorAt(equals, "Invalid assignment target.")
			return expr
		}
	}
	return expr
}

// ternary is `logic_or ("?" expression ":" expression)?`.
func (p *Parser) ternary() ast.Expr {
	expr := p.or()
	if p.match(lexer.QUESTION) {
		then := p.expression()
		p.consume(lexer.COLON, "Expect ':' after ternary 'then' branch.")
		els := p.expression()
		expr = ast.NewTernary(p.ids, expr, then, els)
	}
	return expr
}

func (p *Parser) or() ast.Expr {
	expr := p.and()
	for p.match(lexer.OR) {
		op := p.previous()
		right := p.and()
		expr = ast.NewLogical(p.ids, expr, op, right)
	}
	return expr
}

func (p *Parser) and() ast.Expr {
	expr := p.equality()
	for p.match(lexer.AND) {
		op := p.previous()
		right := p.equality()
		expr = ast.NewLogical(p.ids, expr, op, right)
	}
	return expr
}

func (p *Parser) equality() ast.Expr {
	expr := p.comparison()
	for p.match(lexer.BANG_EQUAL, lexer.EQUAL_EQUAL) {
		op := p.previous()
		right := p.comparison()
		expr = ast.NewBinary(p.ids, expr, op, right)
	}
	return expr
}

func (p *Parser) comparison() ast.Expr {
	expr := p.term()
	for p.match(lexer.GREATER, lexer.GREATER_EQUAL, lexer.LESS, lexer.LESS_EQUAL) {
		op := p.previous()
		right := p.term()
		expr = ast.NewBinary(p.ids, expr, op, right)
	}
	return expr
}

func (p *Parser) term() ast.Expr {
	expr := p.factor()
	for p.match(lexer.MINUS, lexer.PLUS) {
		op := p.previous()
		right := p.factor()
		expr = ast.NewBinary(p.ids, expr, op, right)
	}
	return expr
}

func (p *Parser) factor() ast.Expr {
	expr := p.unary()
	for p.match(lexer.SLASH, lexer.STAR) {
		op := p.previous()
		right := p.unary()
		expr = ast.NewBinary(p.ids, expr, op, right)
	}
	return expr
}

func (p *Parser) unary() ast.Expr {
	if p.match(lexer.BANG, lexer.MINUS) {
		op := p.previous()
		right := p.unary()
		return ast.NewUnary(p.ids, op, right)
	}
	return p.call()
}
