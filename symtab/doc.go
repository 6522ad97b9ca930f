// Package symtab implements the symbol-table abstraction: a
// bidirectional mapping between arc labels (non-negative integers) and
// user-facing strings, with a labeled checksum used by compose to
// verify that the left operand's output alphabet matches the right
// operand's input alphabet.
//
// A SymbolTable is a thin, mutex-guarded catalog, following the same
// two-phase design core.Graph uses for vertices/edges: reads take an
// RLock, writes take a Lock, and every mutating method documents its
// complexity. Binary serialization of automata and symbol tables is out
// of scope; the text (tab-separated) form is implemented here with a
// configurable field separator and optional negative keys.
package symtab
