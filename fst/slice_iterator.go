// File: slice_iterator.go
// Role: the one concrete ArcIterator every package in this module
// shares, backing both MutableFst states and cached compose
// expansions.

package fst

// SliceArcIterator iterates a fixed, already-materialized arc slice.
type SliceArcIterator struct {
	arcs []Arc
	pos  int
}

// NewSliceArcIterator wraps arcs for iteration. The slice is not
// copied; callers must not mutate it while the iterator is live.
func NewSliceArcIterator(arcs []Arc) *SliceArcIterator {
	return &SliceArcIterator{arcs: arcs}
}

func (it *SliceArcIterator) Done() bool { return it.pos >= len(it.arcs) }
func (it *SliceArcIterator) Value() Arc { return it.arcs[it.pos] }
func (it *SliceArcIterator) Next()      { it.pos++ }
func (it *SliceArcIterator) Reset()     { it.pos = 0 }

var _ ArcIterator = (*SliceArcIterator)(nil)
