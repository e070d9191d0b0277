/*
File    : golox/parser/parser_functions.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"fmt"

	"github.com/akashmaji946/golox/ast"
	"github.com/akashmaji946/golox/lexer"
)

const maxParams = 255

// function parses `fun name(params) { body }` (kind is "function" or
// "method", only used to phrase error messages).
func (p *Parser) function(kind string) *ast.Function {
	name := p.consume(lexer.IDENTIFIER, "Expect "+kind+" name.")
	return p.functionBody(name, kind)
}

// functionBody parses the parameter list and body shared by plain
// functions, methods, and class (static) methods.
func (p *Parser) functionBody(name lexer.Token, kind string) *ast.Function {
	p.consume(lexer.LEFT_PAREN, "Expect '(' after "+kind+" name.")
	var params []lexer.Token
	if !p.check(lexer.RIGHT_PAREN) {
		for {
			if len(params) >= maxParams {
				p.errorAt(p.peek(), fmt.Sprintf("Can't have more than %d parameters.", maxParams))
			}
			params = append(params, p.consume(lexer.IDENTIFIER, "Expect parameter name."))
			if !p.match(lexer.COMMA) {
				break
			}
		}
	}
	p.consume(lexer.RIGHT_PAREN, "Expect ')' after parameters.")

	p.consume(lexer.LEFT_BRACE, "Expect '{' before "+kind+" body.")
	body := p.block()
	return &ast.Function{Name: name, Params: params, Body: body}
}

// classDeclaration parses `class Name [< Superclass] { methods... }`.
// A leading `class` token inside the method list (`class name() {...}`)
// marks a static (class) method, kept separate from instance methods so
// the resolver and interpreter can install them on the metaclass instead
// of the instance method table.
func (p *Parser) classDeclaration() ast.Stmt {
	name := p.consume(lexer.IDENTIFIER, "Expect class name.")

	var superclass *ast.Variable
	if p.match(lexer.LESS) {
		p.consume(lexer.IDENTIFIER, "Expect superclass name.")
		superclass = ast.NewVariable(p.ids, p.previous())
	}

	p.consume(lexer.LEFT_BRACE, "Expect '{' before class body.")

	var methods, classMethods []*ast.Function
	for !p.check(lexer.RIGHT_BRACE) && !p.isAtEnd() {
		if p.match(lexer.CLASS) {
			classMethods = append(classMethods, p.function("method"))
		} else {
			methods = append(methods, p.function("method"))
		}
	}
	p.consume(lexer.RIGHT_BRACE, "Expect '}' after class body.")

	return &ast.Class{Name: name, Superclass: superclass, Methods: methods, ClassMethods: classMethods}
}
