// File: options.go
// Role: composition configuration.

package compose

import (
	"github.com/arunjayapal/wfst/cfilter"
	"github.com/arunjayapal/wfst/fst"
	"github.com/arunjayapal/wfst/fstcache"
	"github.com/arunjayapal/wfst/matcher"
)

// Options configures a composition. One and Zero are required: the
// engine is generic over the operands' semiring and has no other way
// to obtain its identities.
type Options struct {
	// One is the semiring's multiplicative identity, used to
	// synthesize self-loops and to read the semiring's properties for
	// the commutativity check.
	One fst.Weight
	// Zero is the semiring's additive identity, used as the default
	// final weight of materialized states and as the "no path" value.
	Zero fst.Weight

	// FilterKind selects which cfilter.Filter variant to use when
	// Filter is nil.
	FilterKind cfilter.Kind
	// Filter, if non-nil, overrides FilterKind with a caller-supplied
	// filter instance. The engine takes ownership of it.
	Filter cfilter.Filter

	// StateTable, if non-nil, overrides the table the engine would
	// otherwise construct with StateTableCeiling.
	StateTable *StateTable
	// StateTableCeiling bounds the number of distinct composition
	// tuples when StateTable is nil. 0 means unlimited.
	StateTableCeiling int

	// Cache configures the per-state expansion memoization.
	Cache fstcache.Options

	// Matcher1, if non-nil, overrides the matcher the engine would
	// otherwise build over operand A's output side.
	Matcher1 matcher.Matcher
	// Matcher2, if non-nil, overrides the matcher the engine would
	// otherwise build over operand B's input side.
	Matcher2 matcher.Matcher

	// Connect requests a trim pass (connect.Connect) after
	// materialization. Only consulted by the top-level Compose
	// function; Fst itself never trims, since it never materializes.
	Connect bool
}

// DefaultOptions returns Options with Auto filtering, connect enabled,
// and cache eviction off (every expanded state stays cached), given the
// semiring identities one and zero.
func DefaultOptions(one, zero fst.Weight) Options {
	return Options{
		One:        one,
		Zero:       zero,
		FilterKind: cfilter.Auto,
		Connect:    true,
	}
}
