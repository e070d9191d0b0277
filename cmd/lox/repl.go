/*
File    : golox/cmd/lox/repl.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package main

import (
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/akashmaji946/golox/interpreter"
	"github.com/akashmaji946/golox/internal/config"
)

// Color definitions for REPL output: blueColor for separators, greenColor
// for the banner, cyanColor for instructions, redColor (in main.go) for
// errors.
var (
	blueColor  = color.New(color.FgBlue)
	greenColor = color.New(color.FgGreen)
	cyanColor  = color.New(color.FgCyan)
)

const replSeparator = "----------------------------------------------------------------"

// banner is the ASCII logo shown at REPL startup.
const banner = `
  _            _
 | | _____  __| |
 | |/ _ \ \/ / _ \
 | | (_) >  <  __/
 |_|\___/_/\_\___|
`

// printBanner shows the startup banner and basic usage instructions.
func printBanner(w io.Writer, cfg config.Config) {
	if !cfg.ShowBanner {
		return
	}
	blueColor.Fprintf(w, "%s\n", replSeparator)
	greenColor.Fprintf(w, "%s\n", banner)
	blueColor.Fprintf(w, "%s\n", replSeparator)
	cyanColor.Fprintf(w, "%s\n", "Lox interactive shell. Type code and press enter.")
	cyanColor.Fprintf(w, "%s\n", "Ctrl+D to exit. Up/down arrows navigate history.")
	blueColor.Fprintf(w, "%s\n", replSeparator)
}

// runREPL reads one line per input at the `lox> ` prompt (or the
// configured override) and exits 0 on EOF. Per-line error state never
// poisons later input — each line gets its own reporter.Reporter and its
// own resolver pass, but all lines share one Interpreter (and so one
// persistent global frame), exactly the variable and function persistence
// an interactive session needs.
func runREPL(cfg config.Config) {
	if !cfg.Color {
		color.NoColor = true
	}
	printBanner(os.Stdout, cfg)

	rl, err := readline.New(cfg.Prompt)
	if err != nil {
		redColor.Fprintf(os.Stderr, "readline: %v\n", err)
		os.Exit(exitUsageError)
	}
	defer rl.Close()

	in := interpreter.New(nil, os.Stdout)

	for {
		line, err := rl.Readline()
		if err != nil {
			// EOF (Ctrl+D) or a readline-internal error both end the
			// session cleanly with exit 0.
			os.Stdout.WriteString("\n")
			return
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		rl.SaveHistory(line)

		runLine(in, line)
	}
}

// runLine resolves and executes one REPL line against the session's shared
// Interpreter, reporting any scan/parse/resolve/runtime error in red
// without exiting.
func runLine(in *interpreter.Interpreter, line string) {
	stmts, locals, rep, ok := frontEnd(line)
	if !ok {
		for _, e := range rep.Entries() {
			redColor.Fprintln(os.Stderr, e.String())
		}
		return
	}

	in.SetLocals(locals)
	if err := in.Interpret(stmts); err != nil {
		if rerr, ok := err.(*interpreter.RuntimeError); ok {
			redColor.Fprintln(os.Stderr, interpreter.FormatRuntimeError(rerr))
		} else {
			redColor.Fprintln(os.Stderr, err.Error())
		}
	}
}
