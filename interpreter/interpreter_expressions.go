/*
File    : golox/interpreter/interpreter_expressions.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package interpreter

import (
	"github.com/akashmaji946/golox/ast"
	"github.com/akashmaji946/golox/environment"
	"github.com/akashmaji946/golox/lexer"
	"github.com/akashmaji946/golox/value"
)

// eval evaluates one expression node, dispatching on its concrete type.
func (in *Interpreter) eval(expr ast.Expr, env *environment.Environment) (interface{}, error) {
	switch e := expr.(type) {
	case *ast.Literal:
		return e.Value, nil

	case *ast.Grouping:
		return in.eval(e.Expression, env)

	case *ast.Unary:
		return in.evalUnary(e, env)

	case *ast.Binary:
		return in.evalBinary(e, env)

	case *ast.Logical:
		return in.evalLogical(e, env)

	case *ast.Ternary:
		cond, err := in.eval(e.Cond, env)
		if err != nil {
			return nil, err
		}
		if value.IsTruthy(cond) {
			return in.eval(e.Then, env)
		}
		return in.eval(e.Else, env)

	case *ast.Variable:
		return in.lookupVariable(e.NodeID(), e.Name.Lexeme, env)

	case *ast.This:
		return in.lookupVariable(e.NodeID(), "this", env)

	case *ast.Super:
		return in.evalSuper(e, env)

	case *ast.Assign:
		v, err := in.eval(e.Value, env)
		if err != nil {
			return nil, err
		}
		if err := in.assignVariable(e.NodeID(), e.Name.Lexeme, v, env); err != nil {
			return nil, err
		}
		return v, nil

	case *ast.Call:
		return in.evalCall(e, env)

	case *ast.Get:
		return in.evalGet(e, env)

	case *ast.Set:
		return in.evalSet(e, env)
	}
	return nil, runtimeError(0, "internal error: unhandled expression node")
}

func (in *Interpreter) evalUnary(e *ast.Unary, env *environment.Environment) (interface{}, error) {
	right, err := in.eval(e.Right, env)
	if err != nil {
		return nil, err
	}
	switch e.Op.Kind {
	case lexer.BANG:
		return !value.IsTruthy(right), nil
	case lexer.MINUS:
		n, err := checkNumberOperand(e.Op.Line, right)
		if err != nil {
			return nil, err
		}
		return -n, nil
	}
	return nil, runtimeError(e.Op.Line, "internal error: unhandled unary operator %q", e.Op.Lexeme)
}

// evalBinary implements arithmetic, comparison, equality, and the comma
// operator (a comma-separated expression evaluates left to right and keeps
// the rightmost value).
func (in *Interpreter) evalBinary(e *ast.Binary, env *environment.Environment) (interface{}, error) {
	left, err := in.eval(e.Left, env)
	if err != nil {
		return nil, err
	}

	// The comma operator discards left's value entirely, including when
	// evaluating it fails to produce a meaningful result; only its
	// side effects and evaluation order matter.
	if e.Op.Kind == lexer.COMMA {
		return in.eval(e.Right, env)
	}

	right, err := in.eval(e.Right, env)
	if err != nil {
		return nil, err
	}

	switch e.Op.Kind {
	case lexer.EQUAL_EQUAL:
		return value.Equal(left, right), nil
	case lexer.BANG_EQUAL:
		return !value.Equal(left, right), nil

	case lexer.PLUS:
		return in.evalPlus(e.Op.Line, left, right)

	case lexer.MINUS:
		a, b, err := checkNumberOperands(e.Op.Line, left, right)
		if err != nil {
			return nil, err
		}
		return a - b, nil

	case lexer.STAR:
		a, b, err := checkNumberOperands(e.Op.Line, left, right)
		if err != nil {
			return nil, err
		}
		return a * b, nil

	case lexer.SLASH:
		a, b, err := checkNumberOperands(e.Op.Line, left, right)
		if err != nil {
			return nil, err
		}
		if b == 0 {
			return nil, runtimeError(e.Op.Line, "Division by zero.")
		}
		return a / b, nil

	case lexer.GREATER:
		a, b, err := checkNumberOperands(e.Op.Line, left, right)
		if err != nil {
			return nil, err
		}
		return a > b, nil

	case lexer.GREATER_EQUAL:
		a, b, err := checkNumberOperands(e.Op.Line, left, right)
		if err != nil {
			return nil, err
		}
		return a >= b, nil

	case lexer.LESS:
		a, b, err := checkNumberOperands(e.Op.Line, left, right)
		if err != nil {
			return nil, err
		}
		return a < b, nil

	case lexer.LESS_EQUAL:
		a, b, err := checkNumberOperands(e.Op.Line, left, right)
		if err != nil {
			return nil, err
		}
		return a <= b, nil
	}
	return nil, runtimeError(e.Op.Line, "internal error: unhandled binary operator %q", e.Op.Lexeme)
}

// evalPlus implements the `+` overload: Number+Number adds, any String
// operand concatenates both sides' stringified forms, and any other mix is
// a type error.
func (in *Interpreter) evalPlus(line int, left, right interface{}) (interface{}, error) {
	if a, ok := left.(float64); ok {
		if b, ok := right.(float64); ok {
			return a + b, nil
		}
	}
	_, leftStr := left.(string)
	_, rightStr := right.(string)
	if leftStr || rightStr {
		return value.Stringify(left) + value.Stringify(right), nil
	}
	return nil, runtimeError(line, "Operands must be two numbers or two strings.")
}

func (in *Interpreter) evalLogical(e *ast.Logical, env *environment.Environment) (interface{}, error) {
	left, err := in.eval(e.Left, env)
	if err != nil {
		return nil, err
	}
	if e.Op.Kind == lexer.OR {
		if value.IsTruthy(left) {
			return left, nil
		}
		return in.eval(e.Right, env)
	}
	// and
	if !value.IsTruthy(left) {
		return left, nil
	}
	return in.eval(e.Right, env)
}

func (in *Interpreter) evalCall(e *ast.Call, env *environment.Environment) (interface{}, error) {
	callee, err := in.eval(e.Callee, env)
	if err != nil {
		return nil, err
	}

	args := make([]interface{}, len(e.Args))
	for i, a := range e.Args {
		v, err := in.eval(a, env)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}

	callable, ok := callee.(value.Callable)
	if !ok {
		return nil, runtimeError(e.Paren.Line, "Can only call functions and classes.")
	}
	if len(args) != callable.Arity() {
		return nil, runtimeError(e.Paren.Line, "Expected %d arguments but got %d.", callable.Arity(), len(args))
	}
	return callable.Call(in, args)
}

func (in *Interpreter) evalGet(e *ast.Get, env *environment.Environment) (interface{}, error) {
	obj, err := in.eval(e.Object, env)
	if err != nil {
		return nil, err
	}
	switch o := obj.(type) {
	case *value.Instance:
		v, err := o.Get(e.Name.Lexeme)
		if err != nil {
			return nil, runtimeError(e.Name.Line, "%s", err.Error())
		}
		return v, nil
	case *value.Class:
		if fn, ok := o.GetStatic(e.Name.Lexeme); ok {
			return fn, nil
		}
		return nil, runtimeError(e.Name.Line, "Undefined property '%s'.", e.Name.Lexeme)
	}
	return nil, runtimeError(e.Name.Line, "Only instances have properties.")
}

func (in *Interpreter) evalSet(e *ast.Set, env *environment.Environment) (interface{}, error) {
	obj, err := in.eval(e.Object, env)
	if err != nil {
		return nil, err
	}
	instance, ok := obj.(*value.Instance)
	if !ok {
		return nil, runtimeError(e.Name.Line, "Only instances have fields.")
	}
	v, err := in.eval(e.Value, env)
	if err != nil {
		return nil, err
	}
	instance.Set(e.Name.Lexeme, v)
	return v, nil
}

// evalSuper resolves `super.method` against the enclosing class's
// superclass, binding the method to the *current* instance (`this`), which
// always sits exactly one scope nearer than `super`: the resolver pushes
// the `this` scope directly inside the `super` scope for every class with
// a superclass.
func (in *Interpreter) evalSuper(e *ast.Super, env *environment.Environment) (interface{}, error) {
	hops, ok := in.locals[e.NodeID()]
	if !ok {
		return nil, runtimeError(e.Keyword.Line, "internal error: unresolved super")
	}
	superVal, err := env.GetAt(hops, "super")
	if err != nil {
		return nil, err
	}
	superclass, ok := superVal.(*value.Class)
	if !ok {
		return nil, runtimeError(e.Keyword.Line, "internal error: super is not a class")
	}
	thisVal, err := env.GetAt(hops-1, "this")
	if err != nil {
		return nil, err
	}
	instance, ok := thisVal.(*value.Instance)
	if !ok {
		return nil, runtimeError(e.Keyword.Line, "internal error: this is not an instance")
	}
	method, ok := superclass.FindMethod(e.Method.Lexeme)
	if !ok {
		return nil, runtimeError(e.Method.Line, "Undefined property '%s'.", e.Method.Lexeme)
	}
	return method.Bind(instance), nil
}
