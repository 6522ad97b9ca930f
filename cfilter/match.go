// File: match.go
// Role: MatchFilter, the symmetric, state-aware variant. Unlike
// Sequence/AltSequence, neither direction is unconditionally
// preferred — whichever direction opens a run first owns it, and the
// other direction must wait for a reset.

package cfilter

import "github.com/arunjayapal/wfst/fst"

// MatchFilter accepts at most one epsilon-run direction at a time,
// with no directional bias: the first epsilon pairing after a reset
// determines which side may continue until the next reset.
type MatchFilter struct {
	state FilterState
}

func NewMatchFilter() *MatchFilter { return &MatchFilter{state: StartState} }

func (f *MatchFilter) Start() FilterState { return StartState }

func (f *MatchFilter) SetState(s1, s2 fst.StateId, fs FilterState) { f.state = fs }

func (f *MatchFilter) FilterArc(a, b *fst.Arc) FilterState {
	if !isEpsOut(*a) || !isEpsIn(*b) {
		return StartState
	}
	aStep, bStep := aRealStep(*a), bRealStep(*b)
	switch {
	case aStep && !bStep:
		if f.state == bRun {
			return NoState
		}
		return aRun
	case !aStep && bStep:
		if f.state == aRun {
			return NoState
		}
		return bRun
	default:
		return NoState
	}
}

func (f *MatchFilter) FilterFinal(final1, final2 *fst.Weight) {}

func (f *MatchFilter) Properties(in fst.PropertySet) fst.PropertySet { return in }

var _ Filter = (*MatchFilter)(nil)
