/*
File    : golox/ast/ast.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package ast defines the syntax tree the parser produces and every later
// stage consumes. Expr and Stmt are closed sum types: each variant is a
// distinct Go struct, and callers dispatch on them with a type switch
// rather than visitor-pattern double-dispatch.
//
// Every Expr carries a stable numeric ID assigned at parse time. The
// resolver's side-table is keyed by this ID rather than by Go object
// identity, so that two passes over the same tree agree on node identity
// even if a future transformation were to copy nodes.
package ast

import "github.com/akashmaji946/golox/lexer"

// ID identifies an Expr node for the resolver's side-table.
type ID int

// IDGen hands out increasing IDs to the parser as it builds the tree.
type IDGen struct{ next ID }

// Next returns the next unused ID.
func (g *IDGen) Next() ID {
	g.next++
	return g.next
}

// Expr is implemented by every expression node.
type Expr interface {
	exprNode()
	NodeID() ID
}

// Stmt is implemented by every statement node.
type Stmt interface {
	stmtNode()
}

type exprBase struct{ ID ID }

func (exprBase) exprNode()    {}
func (e exprBase) NodeID() ID { return e.ID }

type stmtBase struct{}

func (stmtBase) stmtNode() {}

// Assign is `name = value`.
type Assign struct {
	exprBase
	Name  lexer.Token
	Value Expr
}

// Binary is `left op right` for arithmetic, comparison, and equality.
type Binary struct {
	exprBase
	Left  Expr
	Op    lexer.Token
	Right Expr
}

// Call is `callee(args...)`. Paren is the closing ')' token, kept so
// runtime errors from the call can be reported at the call site.
type Call struct {
	exprBase
	Callee Expr
	Paren  lexer.Token
	Args   []Expr
}

// Get is `object.name`, a property or method read.
type Get struct {
	exprBase
	Object Expr
	Name   lexer.Token
}

// Set is `object.name = value`, a field write.
type Set struct {
	exprBase
	Object Expr
	Name   lexer.Token
	Value  Expr
}

// Super is `super.method`, resolved against the enclosing class's
// superclass.
type Super struct {
	exprBase
	Keyword lexer.Token
	Method  lexer.Token
}

// This is the `this` keyword used inside a method body.
type This struct {
	exprBase
	Keyword lexer.Token
}

// Grouping is a parenthesized expression, kept distinct from its inner
// expression so pretty-printing can round-trip parentheses.
type Grouping struct {
	exprBase
	Expression Expr
}

// Literal is a compile-time constant: a float64, string, bool, or nil.
type Literal struct {
	exprBase
	Value interface{}
}

// Unary is `op operand` for `!` and `-`.
type Unary struct {
	exprBase
	Op    lexer.Token
	Right Expr
}

// Logical is `left and right` / `left or right`, evaluated with
// short-circuiting (never both sides unconditionally).
type Logical struct {
	exprBase
	Left  Expr
	Op    lexer.Token
	Right Expr
}

// Ternary is `cond ? then : else`.
type Ternary struct {
	exprBase
	Cond Expr
	Then Expr
	Else Expr
}

// Variable is a bare identifier read.
type Variable struct {
	exprBase
	Name lexer.Token
}

// ---- Statements ----

// Block is `{ stmts... }`, introducing a new lexical scope.
type Block struct {
	stmtBase
	Stmts []Stmt
}

// Class is a class declaration, with an optional superclass variable,
// instance methods, and static ("class") methods.
type Class struct {
	stmtBase
	Name         lexer.Token
	Superclass   *Variable
	Methods      []*Function
	ClassMethods []*Function
}

// Expression is an expression statement: an expression evaluated for its
// side effects, with the result discarded.
type Expression struct {
	stmtBase
	Expr Expr
}

// Function is a function or method declaration.
type Function struct {
	stmtBase
	Name   lexer.Token
	Params []lexer.Token
	Body   []Stmt
}

// Var is a variable declaration with an optional initializer.
type Var struct {
	stmtBase
	Name        lexer.Token
	Initializer Expr
}

// Print is the `print expr;` statement.
type Print struct {
	stmtBase
	Expr Expr
}

// If is `if (cond) then else else`, with Else nil when absent.
type If struct {
	stmtBase
	Cond Expr
	Then Stmt
	Else Stmt
}

// While is `while (cond) body`. The parser desugars `for` into this, so
// the resolver and interpreter only ever handle While. Post, when present,
// is a desugared `for` loop's increment clause: it runs after Body on every
// iteration that falls through or hits `continue`, but not on `break`, so a
// `continue` inside a desugared `for` still advances the loop instead of
// spinning forever.
type While struct {
	stmtBase
	Cond Expr
	Body Stmt
	Post Stmt
}

// Break is a `break;` statement.
type Break struct {
	stmtBase
	Keyword lexer.Token
}

// Continue is a `continue;` statement.
type Continue struct {
	stmtBase
	Keyword lexer.Token
}

// Return is `return;` or `return value;`.
type Return struct {
	stmtBase
	Keyword lexer.Token
	Value   Expr
}

// ---- Constructors ----
//
// exprBase is unexported so that every Expr, regardless of which package
// builds it, goes through IDGen.Next() and gets a side-table-ready identity.
// The parser is the only caller of these.

func NewAssign(g *IDGen, name lexer.Token, value Expr) *Assign {
	return &Assign{exprBase: exprBase{g.Next()}, Name: name, Value: value}
}

func NewBinary(g *IDGen, left Expr, op lexer.Token, right Expr) *Binary {
	return &Binary{exprBase: exprBase{g.Next()}, Left: left, Op: op, Right: right}
}

func NewCall(g *IDGen, callee Expr, paren lexer.Token, args []Expr) *Call {
	return &Call{exprBase: exprBase{g.Next()}, Callee: callee, Paren: paren, Args: args}
}

func NewGet(g *IDGen, object Expr, name lexer.Token) *Get {
	return &Get{exprBase: exprBase{g.Next()}, Object: object, Name: name}
}

func NewSet(g *IDGen, object Expr, name lexer.Token, value Expr) *Set {
	return &Set{exprBase: exprBase{g.Next()}, Object: object, Name: name, Value: value}
}

func NewSuper(g *IDGen, keyword, method lexer.Token) *Super {
	return &Super{exprBase: exprBase{g.Next()}, Keyword: keyword, Method: method}
}

func NewThis(g *IDGen, keyword lexer.Token) *This {
	return &This{exprBase: exprBase{g.Next()}, Keyword: keyword}
}

func NewGrouping(g *IDGen, expr Expr) *Grouping {
	return &Grouping{exprBase: exprBase{g.Next()}, Expression: expr}
}

func NewLiteral(g *IDGen, value interface{}) *Literal {
	return &Literal{exprBase: exprBase{g.Next()}, Value: value}
}

func NewUnary(g *IDGen, op lexer.Token, right Expr) *Unary {
	return &Unary{exprBase: exprBase{g.Next()}, Op: op, Right: right}
}

func NewLogical(g *IDGen, left Expr, op lexer.Token, right Expr) *Logical {
	return &Logical{exprBase: exprBase{g.Next()}, Left: left, Op: op, Right: right}
}

func NewTernary(g *IDGen, cond, then, els Expr) *Ternary {
	return &Ternary{exprBase: exprBase{g.Next()}, Cond: cond, Then: then, Else: els}
}

func NewVariable(g *IDGen, name lexer.Token) *Variable {
	return &Variable{exprBase: exprBase{g.Next()}, Name: name}
}
