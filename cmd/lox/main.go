/*
File    : golox/cmd/lox/main.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Command lox is the entry point for the interpreter. It provides two
// modes:
//  1. REPL mode (default, no arguments): interactive read-eval-print loop.
//  2. File mode (one argument): run a .lox source file and exit.
//
// Extra arguments are a usage error. Exit codes: 0 on success, 64 on
// usage errors, 65 on scan/parse/resolve errors, 70 on runtime errors.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/akashmaji946/golox/internal/config"
)

const (
	exitOK          = 0
	exitUsageError  = 64
	exitLanguageErr = 65
	exitRuntimeErr  = 70
)

var redColor = color.New(color.FgRed)

func main() {
	switch len(os.Args) {
	case 1:
		cfg, err := config.Load("loxconfig.yaml")
		if err != nil {
			redColor.Fprintf(os.Stderr, "warning: loxconfig.yaml: %v\n", err)
		}
		runREPL(cfg)
	case 2:
		os.Exit(runFile(os.Args[1]))
	default:
		fmt.Fprintln(os.Stderr, "Usage: jlox [script]")
		os.Exit(exitUsageError)
	}
}

// runFile reads and executes path once, returning the process exit
// code.
func runFile(path string) int {
	source, err := os.ReadFile(path)
	if err != nil {
		redColor.Fprintf(os.Stderr, "Could not read file '%s': %v\n", path, err)
		return exitUsageError
	}

	switch runResult := interpret(string(source), os.Stdout); runResult.kind {
	case resultLanguageError:
		for _, line := range runResult.messages {
			redColor.Fprintln(os.Stderr, line)
		}
		return exitLanguageErr
	case resultRuntimeError:
		redColor.Fprintln(os.Stderr, runResult.messages[0])
		return exitRuntimeErr
	default:
		return exitOK
	}
}
