package dfa

import (
	"errors"
	"testing"

	"github.com/coregx/dfarx/ast"
)

// buildAutomaton wires a small hand-built tree through Build, mirroring what
// parser.Parse + engine.Compile do for a real pattern.
func buildAutomaton(t *testing.T, build func(ctx *ast.Context) ast.Node, maxStates int) (*ast.Context, *Automaton) {
	t.Helper()
	ctx := ast.NewContext(ast.DefaultLimits())
	root := build(ctx)
	a, err := Build(ctx, root, maxStates)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	return ctx, a
}

func runDFA(a *Automaton, s string) bool {
	state := a.Start
	for _, r := range s {
		next, ok := a.Step(state, r)
		if !ok {
			return false
		}
		state = next
	}
	return a.IsFinal(state)
}

func TestBuildSingleLiteral(t *testing.T) {
	_, a := buildAutomaton(t, func(ctx *ast.Context) ast.Node {
		return ast.NewRoot(ctx, ast.NewSymbol(ctx, 'a'))
	}, 100)

	if !runDFA(a, "a") {
		t.Error("\"a\" must match pattern a")
	}
	if runDFA(a, "b") || runDFA(a, "aa") || runDFA(a, "") {
		t.Error("only the exact string \"a\" should match pattern a")
	}
}

func TestBuildConcatenation(t *testing.T) {
	_, a := buildAutomaton(t, func(ctx *ast.Context) ast.Node {
		ab := ast.NewConcat(ctx, ast.NewSymbol(ctx, 'a'), ast.NewSymbol(ctx, 'b'))
		return ast.NewRoot(ctx, ab)
	}, 100)

	if !runDFA(a, "ab") {
		t.Error("\"ab\" must match pattern ab")
	}
	if runDFA(a, "a") || runDFA(a, "b") || runDFA(a, "ba") {
		t.Error("only \"ab\" should match pattern ab")
	}
}

func TestBuildAlternation(t *testing.T) {
	_, a := buildAutomaton(t, func(ctx *ast.Context) ast.Node {
		or := ast.NewOr(ctx, ast.NewSymbol(ctx, 'a'), ast.NewSymbol(ctx, 'b'))
		return ast.NewRoot(ctx, or)
	}, 100)

	for _, s := range []string{"a", "b"} {
		if !runDFA(a, s) {
			t.Errorf("%q must match pattern a|b", s)
		}
	}
	if runDFA(a, "c") || runDFA(a, "ab") {
		t.Error("only \"a\" or \"b\" should match pattern a|b")
	}
}

func TestBuildClosureRepeatsButStartStateIsNotAccepting(t *testing.T) {
	_, a := buildAutomaton(t, func(ctx *ast.Context) ast.Node {
		star := ast.NewClosure(ctx, ast.NewSymbol(ctx, 'a'))
		return ast.NewRoot(ctx, star)
	}, 100)

	for _, s := range []string{"a", "aaaa"} {
		if !runDFA(a, s) {
			t.Errorf("%q must match pattern a*", s)
		}
	}
	// Root.FirstPos never contains the end marker, so even a nullable
	// pattern's start state is not accepting.
	if runDFA(a, "") {
		t.Error("\"\" must not match pattern a*: the start state is never accepting")
	}
	if runDFA(a, "aab") {
		t.Error("\"aab\" must not match pattern a*")
	}
}

func TestBuildWildcardMatchesAnyRune(t *testing.T) {
	_, a := buildAutomaton(t, func(ctx *ast.Context) ast.Node {
		dot := ast.NewConcat(ctx, ast.NewAnySymbol(ctx), ast.NewSymbol(ctx, 'x'))
		return ast.NewRoot(ctx, dot)
	}, 100)

	for _, s := range []string{"ax", "zx", " x"} {
		if !runDFA(a, s) {
			t.Errorf("%q must match pattern .x", s)
		}
	}
	if runDFA(a, "xx1") {
		t.Error("wildcard must not allow extra trailing input")
	}
}

func TestBuildStateLimitExceeded(t *testing.T) {
	_, err := func() (*Automaton, error) {
		ctx := ast.NewContext(ast.DefaultLimits())
		star := ast.NewClosure(ctx, ast.NewOr(ctx, ast.NewSymbol(ctx, 'a'), ast.NewSymbol(ctx, 'b')))
		root := ast.NewRoot(ctx, star)
		return Build(ctx, root, 0)
	}()
	if err == nil {
		t.Fatal("Build must fail when the state budget is exhausted")
	}
	var buildErr *BuildError
	if !errors.As(err, &buildErr) || buildErr.Kind != StateLimitExceeded {
		t.Fatalf("got error %v, want a *BuildError{Kind: StateLimitExceeded}", err)
	}
}

func TestAutomatonSortedAlphabetIsStableAndComplete(t *testing.T) {
	_, a := buildAutomaton(t, func(ctx *ast.Context) ast.Node {
		or := ast.NewOr(ctx, ast.NewSymbol(ctx, 'c'), ast.NewOr(ctx, ast.NewSymbol(ctx, 'a'), ast.NewSymbol(ctx, 'b')))
		return ast.NewRoot(ctx, or)
	}, 100)

	alphabet := a.sortedAlphabet()
	if len(alphabet) != 3 {
		t.Fatalf("got alphabet %v, want 3 runes", alphabet)
	}
	for i := 1; i < len(alphabet); i++ {
		if alphabet[i-1] >= alphabet[i] {
			t.Fatalf("sortedAlphabet must be ascending, got %v", alphabet)
		}
	}
	want := []rune{'a', 'b', 'c'}
	for i, r := range want {
		if alphabet[i] != r {
			t.Fatalf("sortedAlphabet() = %v, want %v", alphabet, want)
		}
	}
}

func TestAutomatonStateCount(t *testing.T) {
	_, a := buildAutomaton(t, func(ctx *ast.Context) ast.Node {
		return ast.NewRoot(ctx, ast.NewSymbol(ctx, 'a'))
	}, 100)

	if int(a.StateCount()) != a.NumStates() {
		t.Fatalf("StateCount() = %d, want %d", a.StateCount(), a.NumStates())
	}
}
