/*
File    : golox/cmd/lox/run.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package main

import (
	"io"

	"github.com/akashmaji946/golox/ast"
	"github.com/akashmaji946/golox/interpreter"
	"github.com/akashmaji946/golox/lexer"
	"github.com/akashmaji946/golox/parser"
	"github.com/akashmaji946/golox/reporter"
	"github.com/akashmaji946/golox/resolver"
)

type resultKind int

const (
	resultOK resultKind = iota
	resultLanguageError
	resultRuntimeError
)

// runResult is what one scan-parse-resolve-interpret pass produced, in a
// shape the caller (file mode or REPL) can turn into the right exit code
// and error coloring without duplicating the pipeline itself.
type runResult struct {
	kind     resultKind
	messages []string
}

// frontEnd runs the scan/parse/resolve stages shared by file mode and the
// REPL, reporting every error to a fresh reporter.Reporter. ok is false if
// any stage reported an error, in which case evaluation must be
// suppressed.
func frontEnd(source string) (stmts []ast.Stmt, locals map[ast.ID]int, rep *reporter.Reporter, ok bool) {
	rep = reporter.New()
	toks := lexer.New(source, rep).Scan()
	stmts = parser.New(toks, rep).Parse()
	if rep.HadError() {
		return nil, nil, rep, false
	}
	locals = resolver.New(rep).Resolve(stmts)
	if rep.HadError() {
		return nil, nil, rep, false
	}
	return stmts, locals, rep, true
}

func languageErrorResult(rep *reporter.Reporter) runResult {
	msgs := make([]string, 0, len(rep.Entries()))
	for _, e := range rep.Entries() {
		msgs = append(msgs, e.String())
	}
	return runResult{kind: resultLanguageError, messages: msgs}
}

func runtimeErrorResult(err error) runResult {
	if rerr, ok := err.(*interpreter.RuntimeError); ok {
		return runResult{kind: resultRuntimeError, messages: []string{interpreter.FormatRuntimeError(rerr)}}
	}
	return runResult{kind: resultRuntimeError, messages: []string{err.Error()}}
}

// interpret runs source through the full pipeline once against a brand new
// Interpreter (and so a brand new global frame) — the shape file mode
// needs, since a script runs exactly once.
func interpret(source string, out io.Writer) runResult {
	stmts, locals, rep, ok := frontEnd(source)
	if !ok {
		return languageErrorResult(rep)
	}
	in := interpreter.New(locals, out)
	if err := in.Interpret(stmts); err != nil {
		return runtimeErrorResult(err)
	}
	return runResult{kind: resultOK}
}
