// Package fst defines the weighted automaton abstraction that every
// other package in this module builds on: labels, arcs, the read-only
// Automaton interface, the properties bitset, and MutableFst, the
// mutable random-access backing store used both directly by callers
// and as the materialization target for delayed views.
//
// MutableFst borrows core.Graph's two-lock shape (one mutex for the
// state table, one for per-state arc lists) and its idempotent
// add-by-id style, adapted from vertex/edge records to states/arcs.
//
// Serialization of either an Automaton or a SymbolTable to bytes is an
// external collaborator's concern; this package only builds and
// queries in-memory automata.
package fst
