/*
File    : golox/interpreter/interpreter.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package interpreter is the tree-walking evaluator: the final stage that
// turns a resolved statement list into side effects. It trusts the
// resolver's side-table (package resolver) for every local variable
// reference and only falls back to walking the environment chain for
// globals.
package interpreter

import (
	"fmt"
	"io"
	"time"

	"github.com/akashmaji946/golox/ast"
	"github.com/akashmaji946/golox/environment"
	"github.com/akashmaji946/golox/value"
)

// RuntimeError is a failure raised during evaluation, tied to the source
// line it should be reported against. It is a distinct type from the
// reporter.Entry used by the scan/parse/resolve stages because runtime
// errors carry no "where" fragment and use a different output format.
type RuntimeError struct {
	Line    int
	Message string
}

func (e *RuntimeError) Error() string {
	return e.Message
}

// runtimeError builds a RuntimeError at line.
func runtimeError(line int, format string, args ...interface{}) error {
	return &RuntimeError{Line: line, Message: fmt.Sprintf(format, args...)}
}

// FormatRuntimeError renders a runtime error as "\nMESSAGE\n [Line N]".
func FormatRuntimeError(err *RuntimeError) string {
	return fmt.Sprintf("\n%s\n [Line %d]", err.Message, err.Line)
}

// signalKind tags the three non-local control transfers the evaluator must
// route back to their handling construct without reporting them as
// errors.
type signalKind int

const (
	sigNone signalKind = iota
	sigReturn
	sigBreak
	sigContinue
)

// signal is what executing a statement yields alongside any error: either
// nothing (sigNone, fall through to the next statement) or one of the three
// control transfers. Carrying this as an explicit return value rather than
// a panic keeps the control flow transparent in every statement-execution
// method's signature.
type signal struct {
	kind  signalKind
	value interface{}
}

// Interpreter executes a resolved statement list against a chain of
// environment frames, starting from a global frame seeded with the `clock`
// native.
type Interpreter struct {
	Globals *environment.Environment
	locals  map[ast.ID]int
	out     io.Writer
}

// New creates an Interpreter. locals is the resolver's side-table; out
// receives print statement output.
func New(locals map[ast.ID]int, out io.Writer) *Interpreter {
	globals := environment.New(nil)
	globals.Define("clock", &value.Native{
		Name: "clock",
		Args: 0,
		Fn: func(args []interface{}) (interface{}, error) {
			return float64(time.Now().UnixMilli()) / 1000.0, nil
		},
	})
	return &Interpreter{Globals: globals, locals: locals, out: out}
}

// SetLocals replaces the resolver side-table consulted by lookupVariable
// and assignVariable. The REPL driver needs this: it resolves each line
// independently (a fresh IDGen starting back at ID 1 every line), so the
// side-table valid for one line is meaningless for the next, even though
// the same Interpreter and Globals frame persist across the whole session.
func (in *Interpreter) SetLocals(locals map[ast.ID]int) {
	in.locals = locals
}

// Interpret executes stmts at the top level against the global frame. It
// aborts at the first runtime error, returning it to the caller (the file
// runner treats this as exit 70; the REPL just reports it and reads the
// next line).
func (in *Interpreter) Interpret(stmts []ast.Stmt) error {
	_, err := in.execStmts(stmts, in.Globals)
	return err
}

// ExecuteBody implements value.Interp: it runs body against env (the call
// frame a Function.Call already built) and reports whether a Return signal
// unwound out of it. A Break or Continue reaching here instead of a Return
// would mean one escaped its loop; that is an internal error and is
// surfaced rather than silently dropped.
func (in *Interpreter) ExecuteBody(body []ast.Stmt, env *environment.Environment) (interface{}, bool, error) {
	sig, err := in.execStmts(body, env)
	if err != nil {
		return nil, false, err
	}
	switch sig.kind {
	case sigReturn:
		return sig.value, true, nil
	case sigNone:
		return nil, false, nil
	default:
		return nil, false, fmt.Errorf("internal error: break/continue escaped its loop")
	}
}

// lookupVariable reads name via the resolver's hops distance for id when
// present, falling back to a chain-walking global lookup otherwise.
func (in *Interpreter) lookupVariable(id ast.ID, name string, env *environment.Environment) (interface{}, error) {
	if hops, ok := in.locals[id]; ok {
		return env.GetAt(hops, name)
	}
	return in.Globals.Get(name)
}

// assignVariable writes name via the resolver's hops distance for id when
// present, falling back to a chain-walking global assignment otherwise.
func (in *Interpreter) assignVariable(id ast.ID, name string, v interface{}, env *environment.Environment) error {
	if hops, ok := in.locals[id]; ok {
		env.AssignAt(hops, name, v)
		return nil
	}
	return in.Globals.Assign(name, v)
}

func checkNumberOperand(line int, v interface{}) (float64, error) {
	if n, ok := v.(float64); ok {
		return n, nil
	}
	return 0, runtimeError(line, "Operand must be a number.")
}

func checkNumberOperands(line int, a, b interface{}) (float64, float64, error) {
	na, aok := a.(float64)
	nb, bok := b.(float64)
	if aok && bok {
		return na, nb, nil
	}
	return 0, 0, runtimeError(line, "Operands must be numbers.")
}
