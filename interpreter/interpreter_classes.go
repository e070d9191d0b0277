/*
File    : golox/interpreter/interpreter_classes.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package interpreter

import (
	"github.com/akashmaji946/golox/ast"
	"github.com/akashmaji946/golox/environment"
	"github.com/akashmaji946/golox/value"
)

// execClass executes a class declaration: the superclass (if any) is
// evaluated first and must be a Class, then the name is defined as nil so
// methods may reference their own class (e.g. a factory method returning
// `Thing()`), methods are built capturing the defining frame (with
// a `super`-holding frame spliced in when there is a superclass), and
// finally the real Class value is assigned over the placeholder Nil.
func (in *Interpreter) execClass(s *ast.Class, env *environment.Environment) (signal, error) {
	var superclass *value.Class
	if s.Superclass != nil {
		v, err := in.eval(s.Superclass, env)
		if err != nil {
			return signal{}, err
		}
		sc, ok := v.(*value.Class)
		if !ok {
			return signal{}, runtimeError(s.Superclass.Name.Line, "Superclass must be a class.")
		}
		superclass = sc
	}

	env.Define(s.Name.Lexeme, nil)

	methodEnv := env
	if superclass != nil {
		methodEnv = environment.New(env)
		methodEnv.Define("super", superclass)
	}

	methods := make(map[string]*value.Function, len(s.Methods))
	for _, m := range s.Methods {
		methods[m.Name.Lexeme] = value.NewFunction(m, methodEnv, m.Name.Lexeme == "init")
	}

	statics := make(map[string]*value.Function, len(s.ClassMethods))
	for _, m := range s.ClassMethods {
		statics[m.Name.Lexeme] = value.NewFunction(m, methodEnv, false)
	}

	class := value.NewClass(s.Name.Lexeme, superclass, methods, statics)
	if err := env.Assign(s.Name.Lexeme, class); err != nil {
		return signal{}, err
	}
	return signal{}, nil
}
