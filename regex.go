// Package dfarx compiles a small custom pattern language straight to a
// deterministic finite automaton via the classical Aho–Sethi–Ullman
// construction — nullable/firstpos/lastpos/followpos over an augmented
// syntax tree — with no Thompson NFA intermediate and no minimisation
// pass. Matching walks the DFA once per scan, reporting every
// non-overlapping, leftmost-longest match.
//
// Pattern syntax (not PCRE-compatible):
//   - a literal rune matches itself; "&X" escapes a reserved character
//   - "." matches any single rune
//   - "|" is alternation, juxtaposition is concatenation
//   - "?" makes the preceding factor optional, "+" is one-or-more
//   - "{low,top}", "{low,}", "{,top}", "{}" are bounded repetition
//   - "(reg)" groups, "(<name> reg)" defines a named group, a bare
//     "<name>" re-matches a previously defined group's pattern
//
// Basic usage:
//
//	re, err := dfarx.Compile(`(<digit>0|1|2|3|4|5|6|7|8|9)<digit>+`)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	matches := re.FindAll("room 204, desk 7")
//	fmt.Println(matches) // ["204"]: the pattern needs at least two digits
//
// Or the one-shot convenience entry point:
//
//	matches, errs := dfarx.FindAll(`a+b`, "aab aaab c")
//
// Limitations (by design, not yet-implemented gaps):
//   - no submatch extraction — CompiledPattern.Groups reports only names
//   - no leftmost-first (PCRE-style) semantics, only leftmost-longest
//   - no streaming input; FindAll takes a complete string
//   - no DFA minimisation pass
package dfarx

import (
	"github.com/coregx/dfarx/engine"
	"github.com/coregx/dfarx/matcher"
)

// CompiledPattern is a pattern compiled to a DFA, ready to scan text.
//
// A CompiledPattern is safe to use concurrently from multiple goroutines:
// FindAll only reads the underlying automaton, never mutates it.
type CompiledPattern struct {
	program *engine.Program
	pattern string
}

// Compile compiles pattern using DefaultConfig's resource limits.
//
// The returned *CompiledPattern is never nil, even on error: a pattern
// that fails to compile still produces a CompiledPattern whose IsOk is
// false and whose Errors holds the ordered diagnostics, mirroring this
// package's plain-string error contract alongside the Go error return.
//
// Example:
//
//	re, err := dfarx.Compile(`a+b?`)
//	if err != nil {
//	    log.Fatal(err)
//	}
func Compile(pattern string) (*CompiledPattern, error) {
	return CompileWithConfig(pattern, engine.DefaultConfig())
}

// CompileWithConfig compiles pattern using cfg's resource limits instead of
// the defaults.
//
// Example:
//
//	cfg := engine.DefaultConfig()
//	cfg.MaxDFAStates = 50000
//	re, err := dfarx.CompileWithConfig(`(a|b|c){1,40}`, cfg)
func CompileWithConfig(pattern string, cfg engine.Config) (*CompiledPattern, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	program := engine.Compile(pattern, cfg)
	cp := &CompiledPattern{program: program, pattern: pattern}
	if !program.Ok() {
		return cp, &CompileError{Pattern: pattern, Diagnostics: program.Errors}
	}
	return cp, nil
}

// MustCompile is like Compile but panics if pattern fails to compile. It is
// intended for patterns known at compile time, such as package-level
// variables.
//
// Example:
//
//	var wordSep = dfarx.MustCompile(`(,|;)? +`)
func MustCompile(pattern string) *CompiledPattern {
	cp, err := Compile(pattern)
	if err != nil {
		panic(err)
	}
	return cp
}

// IsOk reports whether the pattern compiled without diagnostics.
func (p *CompiledPattern) IsOk() bool {
	return p.program.Ok()
}

// Errors returns the ordered diagnostic strings produced while compiling
// the pattern. It is empty when IsOk is true.
func (p *CompiledPattern) Errors() []string {
	return p.program.Errors
}

// Groups returns the set of named group names the pattern declares via
// "(<name> reg)". Submatch extraction is out of scope: only the names are
// reported, never captured text.
func (p *CompiledPattern) Groups() map[string]struct{} {
	groups := make(map[string]struct{}, len(p.program.Groups))
	for _, name := range p.program.Groups {
		groups[name] = struct{}{}
	}
	return groups
}

// FindAll returns every non-overlapping, leftmost-longest match of the
// pattern in text, in order. It returns nil if the pattern failed to
// compile.
//
// Example:
//
//	re := dfarx.MustCompile(`a+`)
//	fmt.Println(re.FindAll("aa b aaa")) // ["aa", "aaa"]
func (p *CompiledPattern) FindAll(text string) []string {
	if !p.program.Ok() {
		return nil
	}
	return matcher.FindAll(p.program.Automaton, text)
}

// FindAll is the one-shot convenience entry point: compile pattern and scan
// text in a single call. errs is the pattern's ordered diagnostics (empty
// on success); matches is nil whenever errs is non-empty.
//
// Example:
//
//	matches, errs := dfarx.FindAll(`\d+`, "room 204")
//	// errs is empty and matches is nil: "\" is an ordinary literal rune in
//	// this pattern language, unlike PCRE, so the pattern looks for a
//	// backslash followed by one or more "d".
func FindAll(pattern, text string) (matches []string, errs []string) {
	cp, err := Compile(pattern)
	if err != nil {
		return nil, cp.Errors()
	}
	return cp.FindAll(text), nil
}
