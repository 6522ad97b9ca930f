// Package matcher implements the label-matcher abstraction over one
// automaton's outgoing arcs: binding to a state and a match side
// (input or output labels), then answering "which arcs at this state
// match label L" — including the implicit non-consuming self-loop
// that lets composition pair an epsilon move on one operand with
// "stay put" on the other.
//
// Two concrete matchers are provided. SortedMatcher exploits an
// automaton that declares itself sorted on the relevant side and
// binary-searches; it is the fast path and the one composition prefers
// whenever the sort property is available. LookupMatcher builds a
// per-state label index lazily, for automata that offer no sort
// guarantee. Both share the same Matcher contract so the composition
// engine never needs to know which one it was handed.
package matcher
