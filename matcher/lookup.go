// File: lookup.go
// Role: LookupMatcher, the lazily-indexed matcher for automata that
// offer no arc-sort guarantee.

package matcher

import "github.com/arunjayapal/wfst/fst"

// LookupMatcher matches by a per-state label-to-arc index, built
// lazily on the first Find call after each SetState. It imposes no
// sort requirement on the bound automaton.
type LookupMatcher struct {
	aut  fst.Automaton
	side Side
	one  fst.Weight

	state fst.StateId
	index map[fst.Label][]fst.Arc // nil until built for the current state

	matches []fst.Arc
	pos     int
}

// NewLookupMatcher binds aut on the given side. one is the semiring
// identity used to synthesize the implicit self-loop arc.
func NewLookupMatcher(aut fst.Automaton, side Side, one fst.Weight) *LookupMatcher {
	return &LookupMatcher{aut: aut, side: side, one: one, state: fst.NoStateId}
}

// SetState positions the matcher on s; the label index is rebuilt
// lazily on the next Find.
func (m *LookupMatcher) SetState(s fst.StateId) {
	m.state = s
	m.index = nil
}

func (m *LookupMatcher) buildIndex() {
	m.index = make(map[fst.Label][]fst.Arc, m.aut.NumArcs(m.state))
	it := m.aut.Arcs(m.state)
	for !it.Done() {
		a := it.Value()
		label := a.ILabel
		if m.side == Output {
			label = a.OLabel
		}
		m.index[label] = append(m.index[label], a)
		it.Next()
	}
}

// Find begins enumeration of arcs whose Side label equals label,
// prefixed by the implicit self-loop when label is Epsilon.
func (m *LookupMatcher) Find(label fst.Label) bool {
	if m.index == nil {
		m.buildIndex()
	}
	m.matches = m.matches[:0]
	if label == fst.Epsilon {
		m.matches = append(m.matches, fst.Arc{Weight: m.one, NextState: m.state})
	}
	m.matches = append(m.matches, m.index[label]...)
	m.pos = 0
	return len(m.matches) > 0
}

func (m *LookupMatcher) Value() fst.Arc { return m.matches[m.pos] }
func (m *LookupMatcher) Next()          { m.pos++ }
func (m *LookupMatcher) Done() bool     { return m.pos >= len(m.matches) }

// Priority returns the arc count at s, the same heuristic
// SortedMatcher uses.
func (m *LookupMatcher) Priority(s fst.StateId) int { return m.aut.NumArcs(s) }

// Type reports the bound side; LookupMatcher has no precondition for
// test to re-validate.
func (m *LookupMatcher) Type(test bool) MatchType {
	if m.side == Output {
		return MatchOutput
	}
	return MatchInput
}

// Properties returns operand unchanged.
func (m *LookupMatcher) Properties(operand fst.PropertySet) fst.PropertySet { return operand }

// Flags returns 0; LookupMatcher never requires an exact Find call.
func (m *LookupMatcher) Flags() Flags { return 0 }

var _ Matcher = (*LookupMatcher)(nil)
