// Package cfilter implements the composition-filter abstraction that
// resolves epsilon ordering between two composed operands: a small DFA
// over FilterState that decides, for each candidate arc pair, whether
// to accept it and what filter state the successor composition tuple
// carries.
//
// Five variants are provided. Sequence, AltSequence and Match share
// the same three-state shape — neutral, "A is mid epsilon-run", "B is
// mid epsilon-run"; Null and Trivial keep no state and accept every
// pair. Auto selects Sequence, since
// lookahead matchers (the other case Auto would need to distinguish)
// are outside this module's scope, so Auto always picks Sequence in
// practice here.
package cfilter
