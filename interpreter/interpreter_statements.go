/*
File    : golox/interpreter/interpreter_statements.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package interpreter

import (
	"fmt"

	"github.com/akashmaji946/golox/ast"
	"github.com/akashmaji946/golox/environment"
	"github.com/akashmaji946/golox/value"
)

// execStmts runs stmts in order against env, stopping at the first error
// or the first non-sigNone signal.
func (in *Interpreter) execStmts(stmts []ast.Stmt, env *environment.Environment) (signal, error) {
	for _, s := range stmts {
		sig, err := in.execStmt(s, env)
		if err != nil {
			return signal{}, err
		}
		if sig.kind != sigNone {
			return sig, nil
		}
	}
	return signal{}, nil
}

func (in *Interpreter) execStmt(stmt ast.Stmt, env *environment.Environment) (signal, error) {
	switch s := stmt.(type) {
	case *ast.Expression:
		_, err := in.eval(s.Expr, env)
		return signal{}, err

	case *ast.Print:
		v, err := in.eval(s.Expr, env)
		if err != nil {
			return signal{}, err
		}
		fmt.Fprintln(in.out, value.Stringify(v))
		return signal{}, nil

	case *ast.Var:
		var v interface{}
		if s.Initializer != nil {
			var err error
			v, err = in.eval(s.Initializer, env)
			if err != nil {
				return signal{}, err
			}
		}
		env.Define(s.Name.Lexeme, v)
		return signal{}, nil

	case *ast.Block:
		return in.execStmts(s.Stmts, environment.New(env))

	case *ast.If:
		cond, err := in.eval(s.Cond, env)
		if err != nil {
			return signal{}, err
		}
		if value.IsTruthy(cond) {
			return in.execStmt(s.Then, env)
		}
		if s.Else != nil {
			return in.execStmt(s.Else, env)
		}
		return signal{}, nil

	case *ast.While:
		return in.execWhile(s, env)

	case *ast.Function:
		fn := value.NewFunction(s, env, false)
		env.Define(s.Name.Lexeme, fn)
		return signal{}, nil

	case *ast.Return:
		var v interface{}
		if s.Value != nil {
			var err error
			v, err = in.eval(s.Value, env)
			if err != nil {
				return signal{}, err
			}
		}
		return signal{kind: sigReturn, value: v}, nil

	case *ast.Break:
		return signal{kind: sigBreak}, nil

	case *ast.Continue:
		return signal{kind: sigContinue}, nil

	case *ast.Class:
		return in.execClass(s, env)
	}
	return signal{}, nil
}

// execWhile loops while cond is truthy; a Break signal from the body exits
// the loop cleanly, a Continue signal skips straight to Post (if the parser
// desugared a `for` loop's increment there) and then the next condition
// check, and a Return signal propagates up to the enclosing function
// call.
func (in *Interpreter) execWhile(s *ast.While, env *environment.Environment) (signal, error) {
	for {
		cond, err := in.eval(s.Cond, env)
		if err != nil {
			return signal{}, err
		}
		if !value.IsTruthy(cond) {
			return signal{}, nil
		}
		sig, err := in.execStmt(s.Body, env)
		if err != nil {
			return signal{}, err
		}
		switch sig.kind {
		case sigBreak:
			return signal{}, nil
		case sigReturn:
			return sig, nil
		case sigContinue, sigNone:
			if s.Post != nil {
				if _, err := in.execStmt(s.Post, env); err != nil {
					return signal{}, err
				}
			}
		}
	}
}
