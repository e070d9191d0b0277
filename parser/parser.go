/*
File    : golox/parser/parser.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package parser is a recursive-descent parser with panic-mode error
// recovery. It turns the lexer's token sequence into the ast package's
// statement list.
//
// The grammar is split by concern across several files: parser.go holds
// the core driver and primary/call expressions, parser_expressions.go the
// binary/logical/ternary precedence ladder, parser_statements.go the
// statements and `for` desugaring, parser_functions.go the function and
// class declarations.
package parser

import (
	"fmt"

	"github.com/akashmaji946/golox/ast"
	"github.com/akashmaji946/golox/lexer"
	"github.com/akashmaji946/golox/reporter"
)

const maxArgs = 255

// parseError is a sentinel used to unwind out of a declaration on a syntax
// error so panic-mode recovery (synchronize) can run. It is never exposed
// outside this package.
type parseError struct{}

func (parseError) Error() string { return "parse error" }

// Parser holds the mutable state of one parse: the token list, current
// read position, the error sink shared with the scanner, and the node-id
// generator so every Expr it builds is side-table-ready.
type Parser struct {
	toks []lexer.Token
	rep  *reporter.Reporter
	ids  *ast.IDGen

	current   int
	loopDepth int
}

// New creates a Parser over toks (the full token stream, ending in EOF)
// that reports errors to rep.
func New(toks []lexer.Token, rep *reporter.Reporter) *Parser {
	return &Parser{toks: toks, rep: rep, ids: &ast.IDGen{}}
}

// Parse consumes the entire token stream and returns the program as an
// ordered list of top-level statements. On error, entries in the returned
// list may be nil placeholders left behind by resynchronization; callers
// must check rep.HadError() before evaluating.
func (p *Parser) Parse() []ast.Stmt {
	var stmts []ast.Stmt
	for !p.isAtEnd() {
		stmts = append(stmts, p.declaration())
	}
	return stmts
}

// ---- token cursor helpers ----

func (p *Parser) peek() lexer.Token {
	return p.toks[p.current]
}

func (p *Parser) previous() lexer.Token {
	return p.toks[p.current-1]
}

func (p *Parser) isAtEnd() bool {
	return p.peek().Kind == lexer.EOF
}

func (p *Parser) advance() lexer.Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

func (p *Parser) check(kind lexer.TokenType) bool {
	if p.isAtEnd() {
		return false
	}
	return p.peek().Kind == kind
}

func (p *Parser) match(kinds ...lexer.TokenType) bool {
	for _, k := range kinds {
		if p.check(k) {
			p.advance()
			return true
		}
	}
	return false
}

// consume advances past the current token if it has the expected kind;
// otherwise it reports a syntax error and unwinds via parseError.
func (p *Parser) consume(kind lexer.TokenType, message string) lexer.Token {
	if p.check(kind) {
		return p.advance()
	}
	panic(p.errorAt(p.peek(), message))
}

// errorAt records a parse error at tok's position and returns a
// parseError the caller may panic with to unwind the current declaration.
func (p *Parser) errorAt(tok lexer.Token, message string) parseError {
	where := "at '" + tok.Lexeme + "'"
	if tok.Kind == lexer.EOF {
		where = "at end"
	}
	p.rep.ReportAt(tok.Line, where, message)
	return parseError{}
}

// synchronize discards tokens after a parse error until it finds a ';'
// just consumed or the start of a statement, so the parser can resume
// inside the next declaration rather than cascading the same error.
func (p *Parser) synchronize() {
	p.advance()
	for !p.isAtEnd() {
		if p.previous().Kind == lexer.SEMICOLON {
			return
		}
		switch p.peek().Kind {
		case lexer.CLASS, lexer.FOR, lexer.FUN, lexer.IF, lexer.PRINT, lexer.RETURN, lexer.VAR, lexer.WHILE:
			return
		}
		p.advance()
	}
}

// declaration parses one top-level or block-level statement, recovering
// from any parse error by resynchronizing and returning nil for that slot.
func (p *Parser) declaration() (stmt ast.Stmt) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(parseError); !ok {
				panic(r)
			}
			p.synchronize()
			stmt = nil
		}
	}()

	switch {
	case p.match(lexer.CLASS):
		return p.classDeclaration()
	case p.match(lexer.FUN):
		return p.function("function")
	case p.match(lexer.VAR):
		return p.varDeclaration()
	default:
		return p.statement()
	}
}

// primary and call parsing live here since they anchor the precedence
// ladder implemented in parser_expressions.go.

func (p *Parser) call() ast.Expr {
	expr := p.primary()
	for {
		switch {
		case p.match(lexer.LEFT_PAREN):
			expr = p.finishCall(expr)
		case p.match(lexer.DOT):
			name := p.consume(lexer.IDENTIFIER, "Expect property name after '.'.")
			expr = ast.NewGet(p.ids, expr, name)
		default:
			return expr
		}
	}
}

func (p *Parser) finishCall(callee ast.Expr) ast.Expr {
	var args []ast.Expr
	if !p.check(lexer.RIGHT_PAREN) {
		for {
			if len(args) >= maxArgs {
				p.errorAt(p.peek(), fmt.Sprintf("Can't have more than %d arguments.", maxArgs))
			}
			// assignment-level, not the top expression() rule: argument
			// lists use literal commas as separators, which would be
			// ambiguous with the comma operator at full expression level.
			args = append(args, p.assignment())
			if !p.match(lexer.COMMA) {
				break
			}
		}
	}
	paren := p.consume(lexer.RIGHT_PAREN, "Expect ')' after arguments.")
	return ast.NewCall(p.ids, callee, paren, args)
}

func (p *Parser) primary() ast.Expr {
	switch {
	case p.match(lexer.FALSE):
		return ast.NewLiteral(p.ids, false)
	case p.match(lexer.TRUE):
		return ast.NewLiteral(p.ids, true)
	case p.match(lexer.NIL):
		return ast.NewLiteral(p.ids, nil)
	case p.match(lexer.NUMBER, lexer.STRING):
		return ast.NewLiteral(p.ids, p.previous().Literal)
	case p.match(lexer.SUPER):
		keyword := p.previous()
		p.consume(lexer.DOT, "Expect '.' after 'super'.")
		method := p.consume(lexer.IDENTIFIER, "Expect superclass method name.")
		return ast.NewSuper(p.ids, keyword, method)
	case p.match(lexer.THIS):
		return ast.NewThis(p.ids, p.previous())
	case p.match(lexer.IDENTIFIER):
		return ast.NewVariable(p.ids, p.previous())
	case p.match(lexer.LEFT_PAREN):
		expr := p.expression()
		p.consume(lexer.RIGHT_PAREN, "Expect ')' after expression.")
		return ast.NewGrouping(p.ids, expr)
	// Error production: a leading binary operator in primary position is
	// "missing left-hand operand". Consume and discard the right side so
	// the parser can keep going instead of cascading errors.
	case p.match(lexer.EQUAL_EQUAL, lexer.BANG_EQUAL, lexer.LESS, lexer.LESS_EQUAL,
		lexer.GREATER, lexer.GREATER_EQUAL, lexer.PLUS, lexer.STAR, lexer.SLASH):
		op := p.previous()
		p.errorAt(op, "Missing left-hand operand.")
		p.unary()
		return ast.NewLiteral(p.ids, nil)
	}
	panic(p.errorAt(p.peek(), "Expect expression."))
}
