// File: trivial.go
// Role: TrivialFilter, intended for operand pairs the caller already
// knows are epsilon-free. It performs no epsilon bookkeeping and is,
// in effect, Null plus a documented precondition; unlike Null, it
// carries no intent to support epsilon paths, so composing operands
// that do have epsilons through it will not deduplicate the resulting
// redundant paths.

package cfilter

import "github.com/arunjayapal/wfst/fst"

// TrivialFilter accepts every arc pair unconditionally. Callers must
// ensure neither operand has epsilon arcs; this is not checked.
type TrivialFilter struct{}

func NewTrivialFilter() *TrivialFilter { return &TrivialFilter{} }

func (f *TrivialFilter) Start() FilterState                            { return StartState }
func (f *TrivialFilter) SetState(s1, s2 fst.StateId, fs FilterState)   {}
func (f *TrivialFilter) FilterArc(a, b *fst.Arc) FilterState           { return StartState }
func (f *TrivialFilter) FilterFinal(final1, final2 *fst.Weight)        {}
func (f *TrivialFilter) Properties(in fst.PropertySet) fst.PropertySet { return in }

var _ Filter = (*TrivialFilter)(nil)
