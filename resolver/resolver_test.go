/*
File    : golox/resolver/resolver_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package resolver

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/akashmaji946/golox/lexer"
	"github.com/akashmaji946/golox/parser"
	"github.com/akashmaji946/golox/reporter"
)

func resolveSrc(t *testing.T, src string) *reporter.Reporter {
	t.Helper()
	rep := reporter.New()
	toks := lexer.New(src, rep).Scan()
	stmts := parser.New(toks, rep).Parse()
	assert.False(t, rep.HadError(), "source should parse cleanly: %v", rep.Entries())
	New(rep).Resolve(stmts)
	return rep
}

func TestResolver_DuplicateLocalDeclaration(t *testing.T) {
	rep := resolveSrc(t, `{ var a = 1; var a = 2; }`)
	assert.True(t, rep.HadError())
	assert.Contains(t, rep.Entries()[0].Message, "Already a variable with this name in this scope.")
}

func TestResolver_GlobalRedeclarationAllowed(t *testing.T) {
	rep := resolveSrc(t, `var a = 1; var a = 2;`)
	assert.False(t, rep.HadError())
}

func TestResolver_ReadInOwnInitializer(t *testing.T) {
	rep := resolveSrc(t, `{ var a = a; }`)
	assert.True(t, rep.HadError())
	assert.Contains(t, rep.Entries()[0].Message, "own initializer")
}

func TestResolver_ReturnAtTopLevel(t *testing.T) {
	rep := resolveSrc(t, `return 1;`)
	assert.True(t, rep.HadError())
	assert.Contains(t, rep.Entries()[0].Message, "Can't return from top-level code.")
}

func TestResolver_ReturnValueInInitializer(t *testing.T) {
	rep := resolveSrc(t, `class A { init() { return 1; } }`)
	assert.True(t, rep.HadError())
	assert.Contains(t, rep.Entries()[0].Message, "Can't return a value from an initializer.")
}

func TestResolver_BareReturnInInitializerAllowed(t *testing.T) {
	rep := resolveSrc(t, `class A { init() { return; } }`)
	assert.False(t, rep.HadError())
}

func TestResolver_ThisOutsideClass(t *testing.T) {
	rep := resolveSrc(t, `print this;`)
	assert.True(t, rep.HadError())
	assert.Contains(t, rep.Entries()[0].Message, "Can't use 'this' outside of a class.")
}

func TestResolver_ThisInsideMethodOK(t *testing.T) {
	rep := resolveSrc(t, `class A { greet() { print this; } }`)
	assert.False(t, rep.HadError())
}

func TestResolver_SuperOutsideClass(t *testing.T) {
	rep := resolveSrc(t, `fun f() { print super.x; }`)
	assert.True(t, rep.HadError())
	assert.Contains(t, rep.Entries()[0].Message, "'super' outside of a class")
}

func TestResolver_SuperWithNoSuperclass(t *testing.T) {
	rep := resolveSrc(t, `class A { m() { super.m(); } }`)
	assert.True(t, rep.HadError())
	assert.Contains(t, rep.Entries()[0].Message, "class with no superclass")
}

func TestResolver_ClassCannotInheritFromItself(t *testing.T) {
	rep := resolveSrc(t, `class A < A {}`)
	assert.True(t, rep.HadError())
	assert.Contains(t, rep.Entries()[0].Message, "can't inherit from itself")
}

func TestResolver_HopsForClosure(t *testing.T) {
	rep := reporter.New()
	src := `
	var x = "global";
	fun outer() {
	  var x = "outer";
	  fun inner() { print x; }
	  inner();
	}
	outer();
	`
	toks := lexer.New(src, rep).Scan()
	stmts := parser.New(toks, rep).Parse()
	assert.False(t, rep.HadError())
	locals := New(rep).Resolve(stmts)
	assert.NotEmpty(t, locals)
}
