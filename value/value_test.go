/*
File    : golox/value/value_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsTruthy(t *testing.T) {
	assert.False(t, IsTruthy(nil))
	assert.False(t, IsTruthy(false))
	assert.True(t, IsTruthy(true))
	assert.True(t, IsTruthy(0.0))
	assert.True(t, IsTruthy(""))
	assert.True(t, IsTruthy("x"))
}

func TestEqual(t *testing.T) {
	assert.True(t, Equal(nil, nil))
	assert.False(t, Equal(nil, false))
	assert.True(t, Equal(1.0, 1.0))
	assert.False(t, Equal(1.0, 2.0))
	assert.True(t, Equal("a", "a"))
	assert.False(t, Equal("a", "b"))

	inst1 := NewInstance(NewClass("A", nil, nil, nil))
	inst2 := NewInstance(NewClass("A", nil, nil, nil))
	assert.True(t, Equal(inst1, inst1))
	assert.False(t, Equal(inst1, inst2))
}

func TestStringify(t *testing.T) {
	assert.Equal(t, "nil", Stringify(nil))
	assert.Equal(t, "true", Stringify(true))
	assert.Equal(t, "false", Stringify(false))
	assert.Equal(t, "7", Stringify(7.0))
	assert.Equal(t, "3.5", Stringify(3.5))
	assert.Equal(t, "hello", Stringify("hello"))

	class := NewClass("Counter", nil, nil, nil)
	assert.Equal(t, "Counter", Stringify(class))

	inst := NewInstance(class)
	assert.Equal(t, "Counter instance", Stringify(inst))

	native := &Native{Name: "clock", Args: 0}
	assert.Equal(t, "<native fn>", Stringify(native))
}

func TestClass_FindMethodWalksSuperclassChain(t *testing.T) {
	base := NewClass("Base", nil, map[string]*Function{"greet": {}}, nil)
	sub := NewClass("Sub", base, map[string]*Function{}, nil)

	_, ok := sub.FindMethod("greet")
	assert.True(t, ok)

	_, ok = sub.FindMethod("missing")
	assert.False(t, ok)
}

func TestInstance_GetFieldBeforeMethod(t *testing.T) {
	class := NewClass("A", nil, map[string]*Function{}, nil)
	inst := NewInstance(class)
	inst.Set("n", 10.0)

	v, err := inst.Get("n")
	assert.NoError(t, err)
	assert.Equal(t, 10.0, v)
}

func TestInstance_GetUndefinedProperty(t *testing.T) {
	inst := NewInstance(NewClass("A", nil, map[string]*Function{}, nil))
	_, err := inst.Get("missing")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Undefined property")
}
