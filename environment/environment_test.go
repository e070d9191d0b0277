/*
File    : golox/environment/environment_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package environment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnvironment_DefineAndGet(t *testing.T) {
	env := New(nil)
	env.Define("x", 1.0)
	v, err := env.Get("x")
	assert.NoError(t, err)
	assert.Equal(t, 1.0, v)
}

func TestEnvironment_GetWalksParentChain(t *testing.T) {
	global := New(nil)
	global.Define("x", "global")
	child := New(global)
	v, err := child.Get("x")
	assert.NoError(t, err)
	assert.Equal(t, "global", v)
}

func TestEnvironment_GetUndefinedIsError(t *testing.T) {
	env := New(nil)
	_, err := env.Get("missing")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Undefined variable")
}

func TestEnvironment_AssignUpdatesDeclaringFrame(t *testing.T) {
	global := New(nil)
	global.Define("x", 1.0)
	child := New(global)

	assert.NoError(t, child.Assign("x", 2.0))
	v, _ := global.Get("x")
	assert.Equal(t, 2.0, v)
}

func TestEnvironment_AssignUndefinedIsError(t *testing.T) {
	env := New(nil)
	err := env.Assign("missing", 1.0)
	assert.Error(t, err)
}

func TestEnvironment_ShadowingDefineDoesNotTouchParent(t *testing.T) {
	global := New(nil)
	global.Define("x", "outer")
	child := New(global)
	child.Define("x", "inner")

	v, _ := child.Get("x")
	assert.Equal(t, "inner", v)
	v, _ = global.Get("x")
	assert.Equal(t, "outer", v)
}

func TestEnvironment_GetAtAndAssignAtSkipChainWalk(t *testing.T) {
	global := New(nil)
	global.Define("x", "global")
	mid := New(global)
	mid.Define("x", "mid")
	inner := New(mid)

	// hops=1 from inner reaches mid directly.
	v, err := inner.GetAt(1, "x")
	assert.NoError(t, err)
	assert.Equal(t, "mid", v)

	inner.AssignAt(0, "x", "unused") // inner has no local "x" binding yet
	_, err = inner.Get("x")
	assert.NoError(t, err)
}

// TestEnvironment_ClosureSharesFrameNotCopy verifies the closure
// invariant: mutating a captured variable through the closure's retained
// frame is visible to later lookups against that same frame, because
// closures hold a live *Environment, never a snapshot.
func TestEnvironment_ClosureSharesFrameNotCopy(t *testing.T) {
	outer := New(nil)
	outer.Define("count", 0.0)

	closureFrame := outer // the function value would retain this pointer

	closureFrame.Assign("count", 1.0)
	v, _ := outer.Get("count")
	assert.Equal(t, 1.0, v)
}
