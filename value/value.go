/*
File    : golox/value/value.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package value defines the runtime value taxonomy: nil, booleans,
// numbers, strings, callables (function, class, native), and instances.
//
// Primitive values (nil, bool, float64, string) are represented directly
// as Go's interface{} rather than boxed in wrapper structs, since Go's nil
// interface, bool, float64 and string already behave like the language's
// nil/Bool/Number/String forms under native formatting and equality —
// boxing them would only add allocation with no behavioral benefit.
// Callables and instances need real identity and mutable state, so those
// remain pointer-typed structs.
package value

import (
	"fmt"

	"github.com/akashmaji946/golox/ast"
	"github.com/akashmaji946/golox/environment"
)

// Callable is implemented by every value that can appear as the callee of
// a Call expression: user-defined functions, classes (calling a class
// constructs an instance), and native functions like clock.
//
// Call takes Interp rather than a concrete *interpreter.Interpreter to
// avoid an import cycle (the interpreter package must import value to
// build Function/Class/Instance values).
type Callable interface {
	Arity() int
	Call(interp Interp, args []interface{}) (interface{}, error)
	String() string
}

// Interp is the narrow slice of *interpreter.Interpreter that a Function
// needs in order to execute its own body: running a resolved statement
// list against a given frame and reporting back whether a Return signal
// unwound out of it, and with what value.
type Interp interface {
	ExecuteBody(body []ast.Stmt, env *environment.Environment) (result interface{}, isReturn bool, err error)
}

// IsTruthy implements the language's truthiness rule: only nil and false
// are falsey; everything else, including 0 and "", is truthy.
func IsTruthy(v interface{}) bool {
	if v == nil {
		return false
	}
	if b, ok := v.(bool); ok {
		return b
	}
	return true
}

// Equal implements the value-equality rule: nil equals nil, primitives
// compare by value, and callables/instances compare by identity (Go's ==
// on the pointer already gives that for all of *Function, *Class,
// *Instance, *Native).
func Equal(a, b interface{}) bool {
	if a == nil && b == nil {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	return a == b
}

// Stringify implements the shared stringification rule used by both the
// print statement and `+` string concatenation.
func Stringify(v interface{}) string {
	switch x := v.(type) {
	case nil:
		return "nil"
	case bool:
		if x {
			return "true"
		}
		return "false"
	case float64:
		return formatNumber(x)
	case string:
		return x
	case fmt.Stringer:
		return x.String()
	default:
		return fmt.Sprintf("%v", x)
	}
}

// formatNumber strips a trailing ".0" off whole-number floats so `10.0`
// prints as `10`.
func formatNumber(f float64) string {
	s := fmt.Sprintf("%g", f)
	// %g switches to scientific notation for integral values from 1e+06
	// up, so the explicit check below prints integral values of magnitude
	// below 1e18 as plain digits ("1000000", not "1e+06"). Larger integral
	// values (e.g. 1e+21) and all non-integral values keep the %g form.
	if f == float64(int64(f)) && f < 1e18 && f > -1e18 {
		return fmt.Sprintf("%d", int64(f))
	}
	return s
}
