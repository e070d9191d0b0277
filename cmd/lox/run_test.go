/*
File    : golox/cmd/lox/run_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInterpretSuccess(t *testing.T) {
	var out bytes.Buffer
	result := interpret(`print 1 + 2 * 3;`, &out)
	require.Equal(t, resultOK, result.kind)
	assert.Equal(t, "7\n", out.String())
}

func TestInterpretLanguageError(t *testing.T) {
	var out bytes.Buffer
	result := interpret(`var;`, &out)
	require.Equal(t, resultLanguageError, result.kind)
	require.NotEmpty(t, result.messages)
}

func TestInterpretRuntimeError(t *testing.T) {
	var out bytes.Buffer
	result := interpret(`print "a" - 1;`, &out)
	require.Equal(t, resultRuntimeError, result.kind)
	require.Len(t, result.messages, 1)
	assert.Contains(t, result.messages[0], "Operands must be numbers.")
	assert.Contains(t, result.messages[0], "[Line 1]")
}
