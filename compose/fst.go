// File: fst.go
// Role: Fst, the delayed composition view, and its construction-time
// validation (symbol compatibility, matcher/filter selection, the
// required-sort and weight-commutativity checks of the error
// taxonomy).

package compose

import (
	"sync"

	"github.com/arunjayapal/wfst/cfilter"
	"github.com/arunjayapal/wfst/fst"
	"github.com/arunjayapal/wfst/fstcache"
	"github.com/arunjayapal/wfst/matcher"
	"github.com/arunjayapal/wfst/semiring"
	"github.com/arunjayapal/wfst/symtab"
)

// Fst is the relational product of two operand automata, synthesized
// state by state on first access. It satisfies fst.Automaton, so a
// composition may itself be an operand of a further composition.
type Fst struct {
	a, b fst.Automaton

	filter   cfilter.Filter
	matcher1 matcher.Matcher // bound to a, Output side
	matcher2 matcher.Matcher // bound to b, Input side

	table *StateTable
	cache *fstcache.Store

	one, zero fst.Weight

	mu            sync.Mutex
	start         fst.StateId
	startResolved bool
	errorProp     bool
}

// NewFst constructs a delayed composition of a and b under opts. It
// never returns a semantic error: construction-time failures (symbol
// mismatch, missing arc sort, a non-commutative semiring over weighted
// operands) set the returned Fst's sticky error property instead. The
// only error this returns is for caller misuse — a nil operand or
// missing semiring identities.
func NewFst(a, b fst.Automaton, opts Options) (*Fst, error) {
	if a == nil || b == nil {
		return nil, ErrMissingIdentities
	}
	if opts.One == nil || opts.Zero == nil {
		return nil, ErrMissingIdentities
	}

	f := &Fst{
		a: a, b: b,
		one: opts.One, zero: opts.Zero,
		start: fst.NoStateId,
	}

	if !symtab.CompatSymbols(a.OutputSymbols(), b.InputSymbols()) {
		f.errorProp = true
	}

	if !opts.One.Properties().Has(semiring.Commutative) && (weightedOrUnknown(a) || weightedOrUnknown(b)) {
		f.errorProp = true
	}

	if opts.Matcher1 != nil {
		f.matcher1 = opts.Matcher1
	} else {
		m, _ := buildMatcher(a, matcher.Output, opts.One)
		f.matcher1 = m
	}
	if opts.Matcher2 != nil {
		f.matcher2 = opts.Matcher2
	} else {
		m, _ := buildMatcher(b, matcher.Input, opts.One)
		f.matcher2 = m
	}
	if !anySorted(a, matcher.Output) && !anySorted(b, matcher.Input) && opts.Matcher1 == nil && opts.Matcher2 == nil {
		f.errorProp = true
	}

	if opts.Filter != nil {
		f.filter = opts.Filter
	} else {
		f.filter = cfilter.New(opts.FilterKind)
	}

	if opts.StateTable != nil {
		f.table = opts.StateTable
	} else {
		f.table = NewStateTable(opts.StateTableCeiling)
	}

	f.cache = fstcache.NewStore(opts.Cache)

	return f, nil
}

func buildMatcher(aut fst.Automaton, side matcher.Side, one fst.Weight) (matcher.Matcher, bool) {
	m, err := matcher.NewSortedMatcher(aut, side, one)
	if err == nil {
		return m, true
	}
	return matcher.NewLookupMatcher(aut, side, one), false
}

func anySorted(aut fst.Automaton, side matcher.Side) bool {
	prop := fst.PropILabelSorted
	if side == matcher.Output {
		prop = fst.PropOLabelSorted
	}
	props := aut.Properties(fst.Mask(prop))
	return props.Known(prop) && props.True(prop)
}

func weightedOrUnknown(aut fst.Automaton) bool {
	props := aut.Properties(fst.Mask(fst.PropWeighted))
	if props.Known(fst.PropWeighted) {
		return props.True(fst.PropWeighted)
	}
	return true
}

// Error reports whether this view's sticky error property is set.
func (f *Fst) Error() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.errorProp
}

func (f *Fst) setError() {
	f.errorProp = true
}

// Start returns the composition's start state: NoStateId if either
// operand has no start, or if construction/expansion has failed.
func (f *Fst) Start() fst.StateId {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.startResolved {
		return f.start
	}
	f.startResolved = true
	if f.errorProp {
		f.start = fst.NoStateId
		return f.start
	}
	s1, s2 := f.a.Start(), f.b.Start()
	if s1 == fst.NoStateId || s2 == fst.NoStateId {
		f.start = fst.NoStateId
		return f.start
	}
	fs0 := f.filter.Start()
	id := f.table.FindOrInsert(Tuple{S1: s1, S2: s2, Filter: fs0})
	if f.table.Error() {
		f.errorProp = true
		f.start = fst.NoStateId
		return f.start
	}
	f.start = id
	f.cache.SetStartComputed(id)
	return f.start
}

// Final returns s's composition final weight: times(final(s1),
// final(s2)), possibly rewritten by the filter, zero-short-circuited.
func (f *Fst) Final(s fst.StateId) fst.Weight {
	if w, ok := f.cache.Final(s); ok {
		return w
	}
	tuple, ok := f.table.Tuple(s)
	if !ok {
		return f.zero
	}
	final1, final2 := f.a.Final(tuple.S1), f.b.Final(tuple.S2)
	f.filter.SetState(tuple.S1, tuple.S2, tuple.Filter)
	f.filter.FilterFinal(&final1, &final2)
	var result fst.Weight
	if final1.IsZero() || final2.IsZero() {
		result = f.zero
	} else {
		result = semiring.Times(final1, final2)
	}
	f.cache.SetFinal(s, result)
	return result
}

// NumArcs returns the number of outgoing composition arcs at s,
// expanding s if necessary.
func (f *Fst) NumArcs(s fst.StateId) int {
	f.expand(s)
	arcs, _ := f.cache.Arcs(s)
	return len(arcs)
}

// Arcs returns an iterator over s's outgoing composition arcs,
// expanding s if necessary.
func (f *Fst) Arcs(s fst.StateId) fst.ArcIterator {
	f.expand(s)
	arcs, _ := f.cache.Arcs(s)
	return fst.NewSliceArcIterator(arcs)
}

// Properties returns the subset of mask this view currently knows.
// The only property this view computes directly is PropError; the
// rest are left unknown (a materializing caller, e.g. Compose, is
// expected to compute the rest over the realized store).
func (f *Fst) Properties(mask fst.PropertyMask) fst.PropertySet {
	f.mu.Lock()
	errored := f.errorProp
	f.mu.Unlock()
	return fst.PropertySet{}.Set(fst.PropError, errored).Masked(mask)
}

// InputSymbols returns operand A's input symbol table: composition
// reads like A.
func (f *Fst) InputSymbols() *symtab.SymbolTable { return f.a.InputSymbols() }

// OutputSymbols returns operand B's output symbol table: composition
// writes like B.
func (f *Fst) OutputSymbols() *symtab.SymbolTable { return f.b.OutputSymbols() }

var _ fst.Automaton = (*Fst)(nil)
