// Package prefilter provides fast candidate filtering for patterns that
// reduce to a fixed set of literal alternatives (e.g. "cat|dog|bird"): an
// Aho-Corasick automaton over those literals lets the matcher jump straight
// to candidate start offsets instead of probing the DFA at every position.
//
// A prefilter never changes which matches FindAll reports — it is purely a
// scan-order optimization the matcher may or may not have available.
package prefilter

import "github.com/coregx/ahocorasick"

// Prefilter quickly finds candidate match positions before the matcher
// would otherwise have to probe the DFA one rune at a time.
type Prefilter interface {
	// Find returns the index of the first candidate at or after start, or
	// -1 if none exists. When IsComplete is true the candidate IS a match;
	// otherwise the caller must still verify it with the DFA.
	Find(haystack []byte, start int) int

	// IsComplete reports whether a Find hit is already a full match with
	// no DFA verification required.
	IsComplete() bool

	// HeapBytes reports the prefilter's approximate heap footprint, for
	// profiling and memory budgeting.
	HeapBytes() int
}

// MatchFinder is implemented by prefilters whose candidates carry variable
// length, so the caller needs both endpoints rather than a single Find
// offset plus a fixed literal length.
type MatchFinder interface {
	// FindMatch returns the start and end of the first match at or after
	// start, or (-1, -1) if none exists.
	FindMatch(haystack []byte, start int) (matchStart, matchEnd int)
}

// AhoCorasickPrefilter scans for any of a fixed set of literal alternatives.
// It is built only when an entire pattern reduces to a pure alternation of
// literals (see the literal package's AST extractor), in which case finding
// one of them at a position IS a complete match — IsComplete always
// reports true.
type AhoCorasickPrefilter struct {
	automaton *ahocorasick.Automaton
	heapBytes int
}

// NewAhoCorasick builds a prefilter over literals, which must be non-empty.
func NewAhoCorasick(literals []string) (*AhoCorasickPrefilter, error) {
	builder := ahocorasick.NewBuilder()
	size := 0
	for _, l := range literals {
		builder.AddPattern([]byte(l))
		size += len(l)
	}
	automaton, err := builder.Build()
	if err != nil {
		return nil, err
	}
	return &AhoCorasickPrefilter{automaton: automaton, heapBytes: size}, nil
}

// Find returns the start offset of the first literal occurring at or after
// start.
func (p *AhoCorasickPrefilter) Find(haystack []byte, start int) int {
	s, _ := p.FindMatch(haystack, start)
	return s
}

// FindMatch returns the bounds of the first literal occurring at or after
// start, or (-1, -1) if none of the alternatives occur again.
func (p *AhoCorasickPrefilter) FindMatch(haystack []byte, start int) (int, int) {
	if start < 0 || start > len(haystack) {
		return -1, -1
	}
	m := p.automaton.Find(haystack, start)
	if m == nil {
		return -1, -1
	}
	return m.Start, m.End
}

// IsComplete always reports true: a pure literal alternation pattern is
// fully matched the instant one of its literals is found.
func (p *AhoCorasickPrefilter) IsComplete() bool { return true }

// HeapBytes reports the total size of the literals the automaton indexes.
func (p *AhoCorasickPrefilter) HeapBytes() int { return p.heapBytes }
