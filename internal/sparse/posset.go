package sparse

import "sort"

// Clone returns an independent copy of s. ast.Merge clones its first
// operand before unioning the second into it, so neither operand is
// mutated.
func (s *SparseSet) Clone() *SparseSet {
	c := &SparseSet{
		sparse: make([]uint32, len(s.sparse)),
		dense:  make([]uint32, len(s.dense)),
		size:   s.size,
	}
	copy(c.sparse, s.sparse)
	copy(c.dense, s.dense)
	return c
}

// Union inserts every value of other into s.
func (s *SparseSet) Union(other *SparseSet) {
	other.Iter(func(v uint32) {
		s.Insert(v)
	})
}

// SortedValues returns the set's members in ascending order. DFA states are
// canonicalized on this ordering, so two position sets built in different
// traversal orders but with the same members always key the same state.
func (s *SparseSet) SortedValues() []uint32 {
	out := make([]uint32, s.size)
	copy(out, s.dense[:s.size])
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
