/*
File    : golox/value/function.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package value

import (
	"fmt"

	"github.com/akashmaji946/golox/ast"
	"github.com/akashmaji946/golox/environment"
)

// Function is a user-defined function or method value: its declaration
// node, the frame captured at declaration time, and an IsInitializer flag
// marking a class's `init` method.
//
// Closure is retained for the function's entire lifetime, which is what
// makes closures work: Environment frames are ordinary heap values in Go,
// so simply holding a pointer keeps the whole parent chain alive past the
// block that declared it.
type Function struct {
	Decl          *ast.Function
	Closure       *environment.Environment
	IsInitializer bool
}

// NewFunction builds a Function capturing closure as its defining scope.
func NewFunction(decl *ast.Function, closure *environment.Environment, isInitializer bool) *Function {
	return &Function{Decl: decl, Closure: closure, IsInitializer: isInitializer}
}

// Arity is the function's declared parameter count.
func (f *Function) Arity() int {
	return len(f.Decl.Params)
}

// Call runs the function body against a fresh frame chained off the
// closure, with parameters bound to args. A Return signal caught by
// ExecuteBody becomes the result; otherwise the result is nil. The one
// exception is an initializer, whose result is always the `this` bound in
// its own closure frame (Bind always puts it at hops 0), so `return;`
// inside `init` still yields the instance.
func (f *Function) Call(interp Interp, args []interface{}) (interface{}, error) {
	callEnv := environment.New(f.Closure)
	for i, param := range f.Decl.Params {
		callEnv.Define(param.Lexeme, args[i])
	}

	result, isReturn, err := interp.ExecuteBody(f.Decl.Body, callEnv)
	if err != nil {
		return nil, err
	}

	if f.IsInitializer {
		this, _ := f.Closure.GetAt(0, "this")
		return this, nil
	}
	if isReturn {
		return result, nil
	}
	return nil, nil
}

// Bind produces a new Function whose closure is a fresh frame, child of
// the method's own closure, with `this` defined to instance. This is how
// `this` becomes lexical: the resolver already assigned `this` inside a
// method body a fixed hop distance, and Bind is what makes that hop land
// on a frame actually holding the right instance.
func (f *Function) Bind(instance *Instance) *Function {
	env := environment.New(f.Closure)
	env.Define("this", instance)
	return NewFunction(f.Decl, env, f.IsInitializer)
}

// String implements Stringer for print/concatenation: "<fn NAME>".
func (f *Function) String() string {
	return fmt.Sprintf("<fn %s>", f.Decl.Name.Lexeme)
}
