/*
File    : golox/environment/environment.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package environment implements chained scope frames: a mapping from
// identifier to value plus an optional parent frame, with chain-walking
// Get/Assign for globals and hop-indexed GetAt/AssignAt for names the
// resolver placed statically.
//
// Frames are shared, never copied. A function value retains a pointer to
// the live *Environment that was current at its declaration, so mutating a
// captured variable from inside a closure is visible to subsequent lookups
// in the outer scope, and vice versa.
package environment

import "fmt"

// Environment is one lexical scope frame: a mapping from identifier to
// runtime value, plus an optional parent. The global frame has Parent ==
// nil and is a singleton for the lifetime of the interpreter.
type Environment struct {
	values map[string]interface{}
	Parent *Environment
}

// New creates a frame whose parent is enclosing (nil for the global
// frame).
func New(enclosing *Environment) *Environment {
	return &Environment{values: make(map[string]interface{}), Parent: enclosing}
}

// Define binds name in this frame, creating or overwriting it. Unlike
// Assign, Define never looks at the parent chain: it is how `var`
// declarations and function parameters introduce new bindings.
func (e *Environment) Define(name string, value interface{}) {
	e.values[name] = value
}

// Get reads name starting in this frame and walking up through parents
// until found, returning an "undefined variable" error if the chain is
// exhausted. This is the path used for identifiers the resolver could not
// place in any enclosing scope (globals, including forward references to
// functions/classes not yet declared at resolve time).
func (e *Environment) Get(name string) (interface{}, error) {
	if v, ok := e.values[name]; ok {
		return v, nil
	}
	if e.Parent != nil {
		return e.Parent.Get(name)
	}
	return nil, fmt.Errorf("Undefined variable '%s'.", name)
}

// Assign writes name's value in the frame where it already exists,
// walking up the parent chain to find it. It never creates a new binding;
// assigning to a name absent everywhere in the chain is an "undefined
// variable" error.
func (e *Environment) Assign(name string, value interface{}) error {
	if _, ok := e.values[name]; ok {
		e.values[name] = value
		return nil
	}
	if e.Parent != nil {
		return e.Parent.Assign(name, value)
	}
	return fmt.Errorf("Undefined variable '%s'.", name)
}

// ancestor walks exactly hops parents above e. The resolver guarantees
// hops never exceeds the real chain depth for any node it annotated, so
// this never needs to fail gracefully — a mismatch is an internal bug in
// the resolver/interpreter coupling, not a runtime condition a script can
// trigger.
func (e *Environment) ancestor(hops int) *Environment {
	env := e
	for i := 0; i < hops; i++ {
		env = env.Parent
	}
	return env
}

// GetAt reads name directly from the frame hops parents above e, skipping
// the chain walk Get would otherwise do. This is the evaluator's fast path
// for any node present in the resolver's side-table.
func (e *Environment) GetAt(hops int, name string) (interface{}, error) {
	frame := e.ancestor(hops)
	if v, ok := frame.values[name]; ok {
		return v, nil
	}
	return nil, fmt.Errorf("Undefined variable '%s'.", name)
}

// AssignAt writes name directly into the frame hops parents above e.
func (e *Environment) AssignAt(hops int, name string, value interface{}) {
	e.ancestor(hops).values[name] = value
}
