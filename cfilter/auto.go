// File: auto.go
// Role: the Kind enumeration and New, the factory that realizes Auto's selection rule.

package cfilter

// Kind names one of the filter variants a caller can request.
type Kind int

const (
	// Auto selects Sequence unless a lookahead matcher is in use.
	// Lookahead matchers are outside this module's scope (see
	// matcher.Flags' RequiresMatch doc comment), so Auto always
	// resolves to Sequence here.
	Auto Kind = iota
	Null
	Trivial
	Sequence
	AltSequence
	Match
)

// New constructs the Filter named by kind.
func New(kind Kind) Filter {
	switch kind {
	case Null:
		return NewNullFilter()
	case Trivial:
		return NewTrivialFilter()
	case AltSequence:
		return NewAltSequenceFilter()
	case Match:
		return NewMatchFilter()
	case Sequence, Auto:
		return NewSequenceFilter()
	default:
		return NewSequenceFilter()
	}
}
