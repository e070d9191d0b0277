/*
File    : golox/value/class.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package value

// Class is a class value: a name, an optional superclass, the instance
// method table, and a separate table for static (class) methods.
//
// Static methods are routed through Class itself acting as its own
// metaclass (GetStatic below) rather than allocating a separate metaclass
// instance: a class value already has identity and a method table, so a
// second wrapper object would only add indirection with no behavioral
// difference, since static methods don't capture a `this`.
type Class struct {
	Name       string
	Superclass *Class
	Methods    map[string]*Function
	Statics    map[string]*Function
}

// NewClass builds a Class value.
func NewClass(name string, superclass *Class, methods, statics map[string]*Function) *Class {
	return &Class{Name: name, Superclass: superclass, Methods: methods, Statics: statics}
}

// FindMethod looks up name in this class's instance method table, falling
// back to the superclass chain.
func (c *Class) FindMethod(name string) (*Function, bool) {
	if fn, ok := c.Methods[name]; ok {
		return fn, true
	}
	if c.Superclass != nil {
		return c.Superclass.FindMethod(name)
	}
	return nil, false
}

// GetStatic looks up name in this class's static method table, falling
// back to the superclass chain, used when a Get expression's object
// evaluates to the class itself rather than an instance.
func (c *Class) GetStatic(name string) (*Function, bool) {
	if fn, ok := c.Statics[name]; ok {
		return fn, true
	}
	if c.Superclass != nil {
		return c.Superclass.GetStatic(name)
	}
	return nil, false
}

// Arity is 0 if the class has no `init`, else init's declared arity.
func (c *Class) Arity() int {
	if init, ok := c.FindMethod("init"); ok {
		return init.Arity()
	}
	return 0
}

// Call constructs a new Instance, binds and invokes `init` if present
// (walking the superclass chain), and always returns the new instance.
func (c *Class) Call(interp Interp, args []interface{}) (interface{}, error) {
	instance := NewInstance(c)
	if init, ok := c.FindMethod("init"); ok {
		if _, err := init.Bind(instance).Call(interp, args); err != nil {
			return nil, err
		}
	}
	return instance, nil
}

// String implements Stringer: a class stringifies to its own name.
func (c *Class) String() string {
	return c.Name
}
