// File: types.go
// Role: FilterState and the Filter contract.

package cfilter

import (
	"github.com/arunjayapal/wfst/fst"
)

// FilterState is an opaque, comparable value threaded through a
// composition's filter states.
type FilterState int64

// StartState is the FilterState a composition begins in.
const StartState FilterState = 0

// NoState signals "arc forbidden": FilterArc returns it to reject a
// candidate pair.
const NoState FilterState = -1

// Filter resolves epsilon ordering between the two operands of a
// composition. One Filter instance is bound to one composition
// instance and is not safe to share across instances.
type Filter interface {
	// Start returns the initial FilterState.
	Start() FilterState
	// SetState positions the filter on composition tuple (s1, s2, fs).
	SetState(s1, s2 fst.StateId, fs FilterState)
	// FilterArc may rewrite a's and b's labels (to mark a
	// matched-epsilon side with a distinguished non-epsilon marker)
	// and returns the successor FilterState, or NoState to reject the
	// pair.
	FilterArc(a, b *fst.Arc) FilterState
	// FilterFinal may rewrite final1/final2 (e.g. to Zero one of them
	// out) before they are multiplied into the composition final
	// weight.
	FilterFinal(final1, final2 *fst.Weight)
	// Properties returns the property delta this filter contributes
	// on top of in.
	Properties(in fst.PropertySet) fst.PropertySet
}

// isEpsOut reports whether a's output label is epsilon: a does not
// require the other operand to supply a real label to pair with it.
func isEpsOut(a fst.Arc) bool { return a.OLabel == fst.Epsilon }

// isEpsIn reports whether b's input label is epsilon: b does not
// require the other operand to supply a real label to pair with it.
func isEpsIn(b fst.Arc) bool { return b.ILabel == fst.Epsilon }

// The engine only ever submits pairs where a.OLabel == b.ILabel (the
// matcher matched on exactly that label), so isEpsOut(a) and isEpsIn(b)
// always agree: they cannot distinguish "A steps alone" from "B steps
// alone" from "both step at once". That distinction lives in each
// arc's *other*, unmatched label instead: a driven/query side
// substitutes the placeholder arc <0, 0, one, ...> for "stay put", so
// a real, independent step always carries a real label on the side
// that wasn't matched on.

// aRealStep reports whether a's unmatched label (ILabel) is a real
// symbol, meaning a is A's own epsilon-output arc rather than the
// "A stays put" placeholder.
func aRealStep(a fst.Arc) bool { return a.ILabel != fst.Epsilon }

// bRealStep reports whether b's unmatched label (OLabel) is a real
// symbol, meaning b is B's own epsilon-input arc rather than the
// "B stays put" placeholder.
func bRealStep(b fst.Arc) bool { return b.OLabel != fst.Epsilon }
