// File: sorted.go
// Role: SortedMatcher, the binary-search matcher over an automaton
// that declares the relevant arc sort.

package matcher

import (
	"sort"

	"github.com/arunjayapal/wfst/fst"
)

// SortedMatcher matches by binary search over a snapshot of the
// current state's arcs, which must be sorted on Side. Construction
// fails with ErrSortRequired if the bound automaton does not declare
// (as known-true) the corresponding sort property.
type SortedMatcher struct {
	aut  fst.Automaton
	side Side
	one  fst.Weight

	state fst.StateId
	arcs  []fst.Arc // snapshot for the current state, sorted by Side's label

	matches []fst.Arc
	pos     int
}

// NewSortedMatcher binds aut on the given side. one is the semiring
// identity used to synthesize the implicit self-loop arc.
func NewSortedMatcher(aut fst.Automaton, side Side, one fst.Weight) (*SortedMatcher, error) {
	if !hasRequiredSort(aut, side) {
		return nil, ErrSortRequired
	}
	return &SortedMatcher{aut: aut, side: side, one: one, state: fst.NoStateId}, nil
}

func hasRequiredSort(aut fst.Automaton, side Side) bool {
	prop := fst.PropILabelSorted
	if side == Output {
		prop = fst.PropOLabelSorted
	}
	props := aut.Properties(fst.Mask(prop))
	return props.Known(prop) && props.True(prop)
}

func (m *SortedMatcher) label(a fst.Arc) fst.Label {
	if m.side == Output {
		return a.OLabel
	}
	return a.ILabel
}

// SetState positions the matcher on s, snapshotting its arcs.
func (m *SortedMatcher) SetState(s fst.StateId) {
	m.state = s
	n := m.aut.NumArcs(s)
	m.arcs = make([]fst.Arc, 0, n)
	it := m.aut.Arcs(s)
	for !it.Done() {
		m.arcs = append(m.arcs, it.Value())
		it.Next()
	}
}

// Find begins enumeration of arcs whose Side label equals label, via
// binary search over the sorted snapshot, prefixed by the implicit
// self-loop when label is Epsilon.
func (m *SortedMatcher) Find(label fst.Label) bool {
	m.matches = m.matches[:0]
	if label == fst.Epsilon {
		m.matches = append(m.matches, fst.Arc{Weight: m.one, NextState: m.state})
	}
	lo := sort.Search(len(m.arcs), func(i int) bool { return m.label(m.arcs[i]) >= label })
	for i := lo; i < len(m.arcs) && m.label(m.arcs[i]) == label; i++ {
		m.matches = append(m.matches, m.arcs[i])
	}
	m.pos = 0
	return len(m.matches) > 0
}

func (m *SortedMatcher) Value() fst.Arc { return m.matches[m.pos] }
func (m *SortedMatcher) Next()          { m.pos++ }
func (m *SortedMatcher) Done() bool     { return m.pos >= len(m.matches) }

// Priority returns the arc count at s; composition iterates the arcs
// of the smaller-degree side and queries the other side's matcher.
func (m *SortedMatcher) Priority(s fst.StateId) int { return m.aut.NumArcs(s) }

// Type reports the bound side, re-validating the sort requirement
// when test is true.
func (m *SortedMatcher) Type(test bool) MatchType {
	if test && !hasRequiredSort(m.aut, m.side) {
		return MatchNone
	}
	if m.side == Output {
		return MatchOutput
	}
	return MatchInput
}

// Properties returns operand unchanged: a SortedMatcher adds no
// property beyond what the bound automaton already guarantees.
func (m *SortedMatcher) Properties(operand fst.PropertySet) fst.PropertySet { return operand }

// Flags returns 0; SortedMatcher never requires an exact Find call.
func (m *SortedMatcher) Flags() Flags { return 0 }

var _ Matcher = (*SortedMatcher)(nil)
