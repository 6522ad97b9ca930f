// File: types.go
// Role: the Matcher contract and its small supporting enums.

package matcher

import "github.com/arunjayapal/wfst/fst"

// Side names which of an arc's two labels a Matcher indexes on.
type Side int

const (
	// Input matches on Arc.ILabel.
	Input Side = iota
	// Output matches on Arc.OLabel.
	Output
)

// MatchType names what a Matcher is willing to match, as answered by
// Matcher.Type. MatchNone signals the matcher cannot currently serve
// either side (e.g., a SortedMatcher whose required sort turned out to
// be missing on re-check).
type MatchType int

const (
	MatchNone MatchType = iota
	MatchInput
	MatchOutput
)

// Flags are static capability bits a Matcher declares about itself.
type Flags uint8

const (
	// RequiresMatch means the matcher will not yield any arc unless
	// Find is called with the exact label. Neither concrete matcher
	// in this package sets it; it exists so a future lookahead
	// matcher can.
	RequiresMatch Flags = 1 << iota
)

// Matcher enumerates, for one bound automaton and state, the outgoing
// arcs whose match-side label equals a requested label — plus the
// implicit self-loop <0, 0, one, s>, always findable via Find(0), that
// represents "stay put" for epsilon pairing.
type Matcher interface {
	// SetState positions the matcher on state s.
	SetState(s fst.StateId)
	// Find begins enumeration of arcs matching label and reports
	// whether any exist.
	Find(label fst.Label) bool
	// Value returns the current matched arc. Undefined if Done.
	Value() fst.Arc
	// Next advances to the next matched arc.
	Next()
	// Done reports whether the current Find enumeration is exhausted.
	Done() bool
	// Priority is a hint composition uses to pick which side drives
	// expansion: the side with the lower value has its arcs iterated
	// directly, and the other side is queried through its matcher.
	Priority(s fst.StateId) int
	// Type reports whether this matcher serves Input or Output. When
	// test is true the matcher re-validates its preconditions (e.g.
	// the required sort property) before answering.
	Type(test bool) MatchType
	// Properties returns the property set this matcher guarantees on
	// top of operand's own properties.
	Properties(operand fst.PropertySet) fst.PropertySet
	// Flags returns this matcher's static capability bits.
	Flags() Flags
}
