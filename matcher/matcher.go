// Package matcher scans text against a compiled dfa.Automaton, producing
// every match the reference engine's findnext/predict pair would produce.
package matcher

import "github.com/coregx/dfarx/dfa"

// FindAll walks the automaton over text from left to right, calling
// findNext at each position to extend and lock in (or discard) a candidate
// match, mirroring original_source/my_re_new.py's findall: a leading check
// for a start state that is itself accepting (structurally dead here,
// since ast.Root's firstpos never contains EndMarker, but kept for
// fidelity), then repeated findNext calls, advancing past a match when one
// is found and by a single rune otherwise.
func FindAll(a *dfa.Automaton, text string) []string {
	runes := []rune(text)
	var matches []string

	if a.IsFinal(a.Start) {
		matches = append(matches, "")
	}

	for i := 0; i < len(runes); {
		end, ok := findNext(a, runes, i)
		if !ok {
			i++
			continue
		}
		matches = append(matches, string(runes[i:end]))
		i = end
	}
	return matches
}

// findNext transliterates findnext/predict. It walks the DFA one rune at a
// time from start, extending the candidate match on every successful step.
// Whenever the state just reached is accepting, it consults predict before
// continuing.
//
// predict does not verify that continuing ever reaches another accepting
// state — per the original, it only checks whether a single further step
// is possible at all. So once the walk passes an accepting state and
// predict says "keep going", findNext keeps extending even along a branch
// that later dead-ends, and when that happens the ENTIRE match is
// discarded (ok=false), not trimmed back to the earlier accepting
// position. A match is only returned when the walk stops (dead end or end
// of input) immediately after landing on an accepting state. This is the
// bug preserved as contract: for "a|axy" on "axz" the walk accepts after
// the first 'a', predict sees 'x' is steppable and says keep going, the
// walk then dies on 'z', and the whole match — including the valid "a" —
// is thrown away.
func findNext(a *dfa.Automaton, runes []rune, start int) (end int, ok bool) {
	state := a.Start
	pos := start
	for pos < len(runes) {
		next, stepped := a.Step(state, runes[pos])
		if !stepped {
			return 0, false
		}
		state = next
		pos++
		if a.IsFinal(state) && !predict(a, state, runes, pos) {
			return pos, true
		}
	}
	return 0, false
}

// predict reports whether, from state, the upcoming rune at pos (if any)
// has a transition at all. It is deliberately shallow — a single
// successful step is enough to report true — reproducing the original's
// snapshot-state check rather than a lookahead that actually confirms the
// walk reaches another accepting state.
func predict(a *dfa.Automaton, state int, runes []rune, pos int) bool {
	if pos >= len(runes) {
		return false
	}
	_, stepped := a.Step(state, runes[pos])
	return stepped
}
