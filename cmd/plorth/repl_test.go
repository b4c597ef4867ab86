package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	plorth "github.com/plorth-lang/plorth"
)

func TestRunREPLEvaluatesAndPrintsDiagnosticOnError(t *testing.T) {
	rt := plorth.NewRuntime()
	ctx := plorth.NewContext(rt, "<repl>")

	in := strings.NewReader("1 2 +\nno-such-word\n")
	var out strings.Builder

	runREPL(ctx, in, &out)

	output := out.String()
	assert.Contains(t, output, "plorth:0:0> ")
	assert.Contains(t, output, "plorth:1:1> ")
	assert.Contains(t, output, "reference error")
}

func TestRunREPLAccumulatesOpenBracketsAcrossLines(t *testing.T) {
	rt := plorth.NewRuntime()
	ctx := plorth.NewContext(rt, "<repl>")

	in := strings.NewReader("( 1 2 +\n)\ncall\n")
	var out strings.Builder

	runREPL(ctx, in, &out)

	require.Contains(t, out.String(), "*")
	assert.Equal(t, 1, ctx.Depth())
}

func TestRunREPLSkipsBlankLines(t *testing.T) {
	rt := plorth.NewRuntime()
	ctx := plorth.NewContext(rt, "<repl>")

	in := strings.NewReader("\n\n1\n")
	var out strings.Builder

	runREPL(ctx, in, &out)

	assert.Equal(t, 1, ctx.Depth())
}
