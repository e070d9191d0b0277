/*
File    : golox/value/native.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package value

// Native wraps a host-implemented function, such as the global `clock`,
// as a Callable.
type Native struct {
	Name string
	Args int
	Fn   func(args []interface{}) (interface{}, error)
}

// Arity is the native function's fixed parameter count.
func (n *Native) Arity() int {
	return n.Args
}

// Call runs the wrapped Go function. Native functions never need the
// Interp capability (they can't invoke back into user-defined callables),
// so it is accepted but unused — satisfying the Callable interface.
func (n *Native) Call(_ Interp, args []interface{}) (interface{}, error) {
	return n.Fn(args)
}

// String implements Stringer: every native function stringifies the same
// way, regardless of name.
func (n *Native) String() string {
	return "<native fn>"
}
