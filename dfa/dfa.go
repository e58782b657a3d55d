// Package dfa builds a deterministic finite automaton directly from an
// ast.Node tree's followpos table — a subset-style construction with no
// Thompson NFA intermediate and no minimisation pass.
package dfa

import (
	"sort"
	"strconv"
	"strings"

	"github.com/coregx/dfarx/ast"
	"github.com/coregx/dfarx/internal/conv"
)

// wildcardClass is the transition-table key used for every rune that never
// appears as a literal symbol anywhere in the pattern; only "." (Any)
// positions can produce a transition on it.
const wildcardClass rune = -1

// Automaton is the compiled DFA: a set of states, each a canonical set of
// positions, with a transition table keyed by rune (or wildcardClass for
// runes outside the pattern's literal alphabet) and a final-state mask.
type Automaton struct {
	Start  int
	Trans  []map[rune]int
	Finals []bool
	alpha  map[rune]struct{}
}

// IsFinal reports whether state is an accepting state.
func (a *Automaton) IsFinal(state int) bool { return a.Finals[state] }

// NumStates returns how many states the automaton has.
func (a *Automaton) NumStates() int { return len(a.Trans) }

// Step follows the transition from state on rune c. ok is false when no
// position in state matches c, meaning the DFA dies on this input.
func (a *Automaton) Step(state int, c rune) (next int, ok bool) {
	if _, inAlphabet := a.alpha[c]; inAlphabet {
		next, ok = a.Trans[state][c]
		return next, ok
	}
	next, ok = a.Trans[state][wildcardClass]
	return next, ok
}

// Build runs the construction: it computes followpos over root (which must
// already have every Symbol's position allocated via ctx), then performs
// the subset-style state exploration from Root.FirstPos().
func Build(ctx *ast.Context, root ast.Node, maxStates int) (*Automaton, error) {
	root.ComputeFollowPos(ctx)

	alpha := literalAlphabet(ctx)

	a := &Automaton{alpha: alpha}
	stateOf := map[string]int{}

	start := root.FirstPos()
	stateOf[canonicalKey(start)] = 0
	sets := []*ast.PosSet{start}

	for i := 0; i < len(sets); i++ {
		if len(sets) > maxStates {
			return nil, &BuildError{Kind: StateLimitExceeded, MaxStates: maxStates}
		}
		cur := sets[i]
		a.Trans = append(a.Trans, map[rune]int{})
		a.Finals = append(a.Finals, cur.HasEnd())

		for c := range alpha {
			next := followOnMatch(ctx, cur, func(s *ast.Symbol) bool { return s.Matches(c) })
			if next.IsEmpty() {
				continue
			}
			a.Trans[i][c] = internState(next, stateOf, &sets)
		}

		wild := followOnMatch(ctx, cur, func(s *ast.Symbol) bool { return s.Any })
		if !wild.IsEmpty() {
			a.Trans[i][wildcardClass] = internState(wild, stateOf, &sets)
		}
	}

	a.Start = 0
	return a, nil
}

// followOnMatch unions the followpos sets of every position in cur whose
// Symbol satisfies match.
func followOnMatch(ctx *ast.Context, cur *ast.PosSet, match func(*ast.Symbol) bool) *ast.PosSet {
	out := ctx.NewPosSet()
	for _, p := range cur.SortedIDs() {
		if match(ctx.Symbol(p)) {
			out.Union(ctx.FollowPos(p))
		}
	}
	return out
}

// internState returns the state index for next, allocating a fresh one and
// enqueueing it for exploration if it hasn't been seen before.
func internState(next *ast.PosSet, stateOf map[string]int, sets *[]*ast.PosSet) int {
	key := canonicalKey(next)
	if idx, ok := stateOf[key]; ok {
		return idx
	}
	idx := len(*sets)
	stateOf[key] = idx
	*sets = append(*sets, next)
	return idx
}

// canonicalKey gives two position sets with the same members the same key
// regardless of the order they were built in, so the subset construction
// recognises when it has revisited a state.
func canonicalKey(s *ast.PosSet) string {
	ids := s.SortedIDs()
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(id)
	}
	key := strings.Join(parts, ",")
	if s.HasEnd() {
		key += "#"
	}
	return key
}

// literalAlphabet collects every distinct rune used by a non-wildcard
// Symbol in the pattern.
func literalAlphabet(ctx *ast.Context) map[rune]struct{} {
	alpha := make(map[rune]struct{})
	for _, sym := range ctx.Positions() {
		if !sym.Any {
			alpha[sym.Ch] = struct{}{}
		}
	}
	return alpha
}

// sortedAlphabet is exposed for diagnostics and tests that want a stable
// ordering over Automaton's literal alphabet.
func (a *Automaton) sortedAlphabet() []rune {
	out := make([]rune, 0, len(a.alpha))
	for r := range a.alpha {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// StateCount is a conv-exercising accessor used by callers that need the
// automaton's size as a bounded integer (e.g. reporting in diagnostics).
func (a *Automaton) StateCount() uint32 {
	return conv.IntToUint32(len(a.Trans))
}
