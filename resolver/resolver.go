/*
File    : golox/resolver/resolver.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package resolver is the static lexical pass between parsing and
// evaluation. It annotates each variable reference with a scope
// "distance" — the number of frames between the reference and its
// declaration — that the evaluator trusts without re-checking, and reports
// the static errors that can be caught before any code runs.
package resolver

import (
	"github.com/akashmaji946/golox/ast"
	"github.com/akashmaji946/golox/lexer"
	"github.com/akashmaji946/golox/reporter"
)

// varState is the two-state enum a scope entry moves through: declared
// when its `var` is seen, defined once its initializer has been resolved.
// Reading a name while it is still only declared is the "read in its own
// initializer" static error.
type varState int

const (
	declared varState = iota
	defined
)

type funcType int

const (
	funcNone funcType = iota
	funcFunction
	funcMethod
	funcInitializer
)

type classType int

const (
	classNone classType = iota
	classClass
	classSubclass
)

// Resolver walks a fully-parsed statement list once, populating a
// node-id → scope-distance side-table that the interpreter indexes
// directly (environment.GetAt/AssignAt) instead of walking the live
// environment chain. It does not mutate the AST.
type Resolver struct {
	rep *reporter.Reporter

	scopes          []map[string]varState
	locals          map[ast.ID]int
	currentFunction funcType
	currentClass    classType
}

// New creates a Resolver reporting static errors to rep.
func New(rep *reporter.Reporter) *Resolver {
	return &Resolver{rep: rep, locals: make(map[ast.ID]int)}
}

// Resolve runs the static pass over the whole program and returns the
// side-table. Absence of a node's ID from the table means "look in
// globals".
func (r *Resolver) Resolve(stmts []ast.Stmt) map[ast.ID]int {
	r.resolveStmts(stmts)
	return r.locals
}

// ---- scope stack ----

func (r *Resolver) beginScope() {
	r.scopes = append(r.scopes, map[string]varState{})
}

func (r *Resolver) endScope() {
	r.scopes = r.scopes[:len(r.scopes)-1]
}

func (r *Resolver) peekScope() map[string]varState {
	return r.scopes[len(r.scopes)-1]
}

// declare introduces name into the innermost scope as "declared but not
// yet defined". Redeclaring the same name twice in the same non-global
// scope is a static error; the global scope (empty scope stack) allows
// redeclaration, so declare is a no-op there.
func (r *Resolver) declare(name lexer.Token) {
	if len(r.scopes) == 0 {
		return
	}
	scope := r.peekScope()
	if _, ok := scope[name.Lexeme]; ok {
		r.rep.ReportAt(name.Line, "at '"+name.Lexeme+"'", "Already a variable with this name in this scope.")
	}
	scope[name.Lexeme] = declared
}

func (r *Resolver) define(name lexer.Token) {
	if len(r.scopes) == 0 {
		return
	}
	r.peekScope()[name.Lexeme] = defined
}

// resolveLocal walks the scope stack from innermost to outermost looking
// for name; the first scope containing it yields
// hops = len(scopes) - 1 - index, recorded against id. No entry is
// written if the name is never found locally (global lookup instead).
func (r *Resolver) resolveLocal(id ast.ID, name string) {
	for i := len(r.scopes) - 1; i >= 0; i-- {
		if _, ok := r.scopes[i][name]; ok {
			r.locals[id] = len(r.scopes) - 1 - i
			return
		}
	}
}
