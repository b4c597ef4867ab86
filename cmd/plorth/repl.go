package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	plorth "github.com/plorth-lang/plorth"
)

// runREPL drives the read-eval-print loop described in spec section 6.2:
// lines accumulate (tracked by the tokenizer's bracket counter) until the
// bracket stack empties, then the buffer is compiled and run against ctx.
// A failing line prints its diagnostic and continues with a cleared
// error and the operand stack left as-is; the stack is never reset
// implicitly.
func runREPL(ctx *plorth.Context, in io.Reader, out io.Writer) {
	scanner := bufio.NewScanner(in)
	var (
		buf     strings.Builder
		stack   plorth.BracketStack
		lineNum int
	)

	prompt := func() {
		marker := ">"
		if len(stack) > 0 {
			marker = "*"
		}
		fmt.Fprintf(out, "plorth:%d:%d%s ", lineNum, ctx.Depth(), marker)
	}

	prompt()
	for scanner.Scan() {
		line := scanner.Text()
		lineNum++

		if buf.Len() == 0 && strings.TrimSpace(line) == "" {
			prompt()
			continue
		}

		stack = plorth.UpdateBracketStack(stack, line)
		buf.WriteString(line)
		buf.WriteByte('\n')

		if len(stack) > 0 {
			prompt()
			continue
		}

		source := buf.String()
		buf.Reset()

		if !ctx.Eval(source, "<repl>", lineNum) {
			if err := ctx.Error(); err != nil {
				fmt.Fprintln(out, err.Diagnostic())
			}
			ctx.ClearError()
		}

		prompt()
	}
	fmt.Fprintln(out)
}
