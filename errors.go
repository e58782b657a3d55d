package dfarx

import (
	"fmt"
	"strings"
)

// CompileError reports every diagnostic collected while compiling a
// pattern, in the order they occurred: lexical, syntax and semantic errors
// are interleaved in the order the single parse pass recorded them, and a
// DFA construction error, if any, comes last.
type CompileError struct {
	Pattern     string
	Diagnostics []string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("dfarx: failed to compile %q: %s", e.Pattern, strings.Join(e.Diagnostics, "; "))
}

// Errors returns the raw ordered diagnostic strings, for callers that want
// the bit-exact list rather than the joined human-readable message.
func (e *CompileError) Errors() []string { return e.Diagnostics }
