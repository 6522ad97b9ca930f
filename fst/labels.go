// File: labels.go
// Role: the primitive types of the data model: Label, StateId, and the
// immutable Arc record.

package fst

import "github.com/arunjayapal/wfst/semiring"

// Label identifies an input or output symbol on an arc. Zero is
// reserved for epsilon, the non-consuming label.
type Label int64

// Epsilon is the non-consuming label.
const Epsilon Label = 0

// NoLabel distinguishes "unset" from any valid label.
const NoLabel Label = -1

// StateId identifies a state within one automaton view. Ids are dense
// within any given view but are not required to be stable across views
// (e.g., after Connect compacts a MutableFst).
type StateId int64

// NoStateId distinguishes "undefined" from any valid state, and is the
// start id of an automaton with no start state.
const NoStateId StateId = -1

// Arc is a single transition: an input label, an output label, a
// weight, and a destination state. Once emitted by an Automaton, an
// Arc's fields do not change; MutableFst never hands out pointers into
// its own arc slices for this reason.
type Arc struct {
 ILabel Label
 OLabel Label
 Weight semiring.Weight
 NextState StateId
}
