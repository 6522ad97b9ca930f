// File: sequence.go
// Role: SequenceFilter and AltSequenceFilter, the two directional
// epsilon-ordering filters. Both share the same three-state FSM
// (neutral / mid-A-run / mid-B-run); they differ only in which
// direction is unconditionally allowed to open a new epsilon run
// versus which direction must wait for a reset.
//
// States: StartState (neutral), aRun (an uninterrupted run of
// A-epsilon pairings is in progress), bRun (same for B). A non-epsilon
// pairing always resets to StartState.

package cfilter

import "github.com/arunjayapal/wfst/fst"

const (
	aRun FilterState = 1
	bRun FilterState = 2
)

// SequenceFilter prefers matching A's output epsilons before B's
// input epsilons: an A-epsilon pairing is always accepted, but a
// B-epsilon pairing is rejected while a run of A-epsilons is open,
// forcing that path to resolve through the A-epsilon branch first.
type SequenceFilter struct {
	state FilterState
}

func NewSequenceFilter() *SequenceFilter { return &SequenceFilter{state: StartState} }

func (f *SequenceFilter) Start() FilterState { return StartState }

func (f *SequenceFilter) SetState(s1, s2 fst.StateId, fs FilterState) { f.state = fs }

func (f *SequenceFilter) FilterArc(a, b *fst.Arc) FilterState {
	if !isEpsOut(*a) || !isEpsIn(*b) {
		return StartState
	}
	aStep, bStep := aRealStep(*a), bRealStep(*b)
	switch {
	case aStep && !bStep:
		return aRun
	case !aStep && bStep:
		if f.state == aRun {
			return NoState
		}
		return bRun
	default: // neither side steps (both placeholders), or both step at once: reject either way
		return NoState
	}
}

func (f *SequenceFilter) FilterFinal(final1, final2 *fst.Weight) {}

func (f *SequenceFilter) Properties(in fst.PropertySet) fst.PropertySet { return in }

var _ Filter = (*SequenceFilter)(nil)

// AltSequenceFilter is SequenceFilter's mirror image: B's input
// epsilons are unconditionally allowed to open a run, while A's output
// epsilons wait for a reset while a B-run is open.
type AltSequenceFilter struct {
	state FilterState
}

func NewAltSequenceFilter() *AltSequenceFilter { return &AltSequenceFilter{state: StartState} }

func (f *AltSequenceFilter) Start() FilterState { return StartState }

func (f *AltSequenceFilter) SetState(s1, s2 fst.StateId, fs FilterState) { f.state = fs }

func (f *AltSequenceFilter) FilterArc(a, b *fst.Arc) FilterState {
	if !isEpsOut(*a) || !isEpsIn(*b) {
		return StartState
	}
	aStep, bStep := aRealStep(*a), bRealStep(*b)
	switch {
	case !aStep && bStep:
		return bRun
	case aStep && !bStep:
		if f.state == bRun {
			return NoState
		}
		return aRun
	default:
		return NoState
	}
}

func (f *AltSequenceFilter) FilterFinal(final1, final2 *fst.Weight) {}

func (f *AltSequenceFilter) Properties(in fst.PropertySet) fst.PropertySet { return in }

var _ Filter = (*AltSequenceFilter)(nil)
