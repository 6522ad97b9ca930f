// File: automaton.go
// Role: the query-only Automaton interface. Concrete stores
// (MutableFst) and delayed views (compose.Fst) are peers behind this
// one interface.

package fst

import (
	"github.com/arunjayapal/wfst/semiring"
	"github.com/arunjayapal/wfst/symtab"
)

// ArcIterator enumerates a state's outgoing arcs in declared order.
// It doubles as both a forward-only ("streaming") iterator, which is
// cheap for a single pass, and a restartable one: calling Reset
// repositions it at the first arc again, which matchers rely on to
// re-scan a state under a new requested label.
type ArcIterator interface {
	// Done reports whether iteration has exhausted the arc list.
	Done() bool
	// Value returns the current arc. Undefined if Done is true.
	Value() Arc
	// Next advances to the following arc.
	Next()
	// Reset repositions the iterator at the first arc.
	Reset()
}

// Automaton is the read-only weighted transducer contract every
// component in this module programs against. Mutation is only
// available on the concrete MutableFst; delayed implementations (such
// as a composition view) satisfy this same interface without exposing
// a way to mutate themselves directly.
type Automaton interface {
	// Start returns the start state, or NoStateId if none.
	Start() StateId
	// Final returns s's final weight; a semiring Zero means s is not
	// final.
	Final(s StateId) Weight
	// NumArcs returns the number of outgoing arcs at s.
	NumArcs(s StateId) int
	// Arcs returns an iterator over s's outgoing arcs in declared
	// order.
	Arcs(s StateId) ArcIterator
	// Properties returns the subset of mask's properties this
	// automaton currently knows the value of. Callers must check
	// Known before trusting a bit.
	Properties(mask PropertyMask) PropertySet
	// InputSymbols returns the input symbol table, or nil if unset.
	InputSymbols() *symtab.SymbolTable
	// OutputSymbols returns the output symbol table, or nil if unset.
	OutputSymbols() *symtab.SymbolTable
}

// Weight is an alias for semiring.Weight, kept here so package fst's
// own doc comments can reference "Weight" without a qualified name.
type Weight = semiring.Weight
