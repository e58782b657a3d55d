package matcher

import (
	"reflect"
	"testing"

	"github.com/coregx/dfarx/ast"
	"github.com/coregx/dfarx/dfa"
)

// compilePattern wires a hand-built tree through dfa.Build, the same path
// engine.Compile takes for a real pattern string.
func compilePattern(t *testing.T, build func(ctx *ast.Context) ast.Node) *dfa.Automaton {
	t.Helper()
	ctx := ast.NewContext(ast.DefaultLimits())
	root := build(ctx)
	a, err := dfa.Build(ctx, root, 4096)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	return a
}

func TestFindAllNonOverlappingLongestMatch(t *testing.T) {
	// a+
	a := compilePattern(t, func(ctx *ast.Context) ast.Node {
		return ast.NewRoot(ctx, ast.NewPositClos(ctx, ast.NewSymbol(ctx, 'a')))
	})

	got := FindAll(a, "aa b aaa")
	want := []string{"aa", "aaa"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("FindAll() = %v, want %v", got, want)
	}
}

func TestFindAllNoMatch(t *testing.T) {
	a := compilePattern(t, func(ctx *ast.Context) ast.Node {
		return ast.NewRoot(ctx, ast.NewSymbol(ctx, 'a'))
	})

	got := FindAll(a, "xyz")
	if got != nil {
		t.Fatalf("FindAll() = %v, want nil", got)
	}
}

func TestFindAllNullablePatternNeverMatchesEmptyString(t *testing.T) {
	// a? is nullable, but Root.FirstPos/LastPos are literal passthroughs to
	// Child's (spec.md §4.3): EndMarker only reaches a state via followpos,
	// never directly from firstpos, so the DFA's start state is never
	// accepting and the engine never reports an empty match here — it only
	// finds the literal "a".
	a := compilePattern(t, func(ctx *ast.Context) ast.Node {
		return ast.NewRoot(ctx, ast.NewOpt(ctx, ast.NewSymbol(ctx, 'a')))
	})

	got := FindAll(a, "ba")
	want := []string{"a"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("FindAll() = %v, want %v", got, want)
	}
}

func TestFindAllDiscardsWholeMatchOnStallAfterAccept(t *testing.T) {
	// a|axy on "axz": the walk accepts after the first 'a', predict sees
	// 'x' is steppable and says keep going (it never checks that the 'xy'
	// branch actually completes), the walk then dies on 'z', and the
	// entire candidate match -- including the valid leading "a" -- is
	// discarded rather than trimmed back. This is the bug spec.md §9
	// preserves as contract.
	a := compilePattern(t, func(ctx *ast.Context) ast.Node {
		or := ast.NewOr(ctx, ast.NewSymbol(ctx, 'a'),
			ast.NewConcat(ctx, ast.NewSymbol(ctx, 'a'),
				ast.NewConcat(ctx, ast.NewSymbol(ctx, 'x'), ast.NewSymbol(ctx, 'y'))))
		return ast.NewRoot(ctx, or)
	})

	got := FindAll(a, "axz")
	if got != nil {
		t.Fatalf("FindAll() = %v, want nil", got)
	}
}

func TestFindAllLongestOverShortest(t *testing.T) {
	// a|ab must prefer the longer branch when both match at the same start.
	a := compilePattern(t, func(ctx *ast.Context) ast.Node {
		or := ast.NewOr(ctx, ast.NewSymbol(ctx, 'a'),
			ast.NewConcat(ctx, ast.NewSymbol(ctx, 'a'), ast.NewSymbol(ctx, 'b')))
		return ast.NewRoot(ctx, or)
	})

	got := FindAll(a, "ab")
	want := []string{"ab"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("FindAll() = %v, want %v", got, want)
	}
}

func TestFindAllWildcard(t *testing.T) {
	a := compilePattern(t, func(ctx *ast.Context) ast.Node {
		dot := ast.NewConcat(ctx, ast.NewSymbol(ctx, 'a'), ast.NewAnySymbol(ctx))
		return ast.NewRoot(ctx, dot)
	})

	got := FindAll(a, "ax ay")
	want := []string{"ax", "ay"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("FindAll() = %v, want %v", got, want)
	}
}

func TestFindAllMultibyteRunes(t *testing.T) {
	a := compilePattern(t, func(ctx *ast.Context) ast.Node {
		return ast.NewRoot(ctx, ast.NewPositClos(ctx, ast.NewSymbol(ctx, 'é')))
	})

	got := FindAll(a, "éé x é")
	want := []string{"éé", "é"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("FindAll() = %v, want %v", got, want)
	}
}
