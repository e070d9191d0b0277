/*
File    : golox/value/instance.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package value

import "fmt"

// Instance is a runtime object of a Class: a class reference plus a
// mutable field map.
type Instance struct {
	Class  *Class
	Fields map[string]interface{}
}

// NewInstance creates a zero-field instance of c.
func NewInstance(c *Class) *Instance {
	return &Instance{Class: c, Fields: make(map[string]interface{})}
}

// Get implements property access: a field hit wins first, then the
// class's (and superclasses') method table, bound to this instance so
// `this` resolves correctly inside it. Neither found is an "Undefined
// property" error.
func (i *Instance) Get(name string) (interface{}, error) {
	if v, ok := i.Fields[name]; ok {
		return v, nil
	}
	if method, ok := i.Class.FindMethod(name); ok {
		return method.Bind(i), nil
	}
	return nil, fmt.Errorf("Undefined property '%s'.", name)
}

// Set always writes a field, creating it if absent.
func (i *Instance) Set(name string, v interface{}) {
	i.Fields[name] = v
}

// String implements Stringer: "<ClassName> instance".
func (i *Instance) String() string {
	return fmt.Sprintf("%s instance", i.Class.Name)
}
