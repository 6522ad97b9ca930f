// File: null.go
// Role: NullFilter, the permissive filter that admits every candidate
// pair. It exists to let a caller opt out of epsilon-ordering
// restriction at the cost of admitting redundant epsilon paths.

package cfilter

import "github.com/arunjayapal/wfst/fst"

// NullFilter accepts every arc pair unconditionally.
type NullFilter struct{}

func NewNullFilter() *NullFilter { return &NullFilter{} }

func (f *NullFilter) Start() FilterState                                   { return StartState }
func (f *NullFilter) SetState(s1, s2 fst.StateId, fs FilterState)          {}
func (f *NullFilter) FilterArc(a, b *fst.Arc) FilterState                  { return StartState }
func (f *NullFilter) FilterFinal(final1, final2 *fst.Weight)               {}
func (f *NullFilter) Properties(in fst.PropertySet) fst.PropertySet        { return in }

var _ Filter = (*NullFilter)(nil)
