// Package compose implements the composition state table and the
// delayed composition engine: the relational product of two weighted
// transducers, synthesized state by state on first access and
// memoized through fstcache.
//
// Fst is the delayed view: it satisfies fst.Automaton directly, so
// composing a composition (A o B) o C needs no special case. Compose
// is the convenience entry point that materializes a delayed Fst into
// a concrete fst.MutableFst, optionally trimming it with connect
// afterward.
//
// Errors never escape as panics from the hot expansion path; instead
// they set a sticky error property on the resulting automaton,
// following the same "errors are state, not exceptions" discipline
// this module's sentinel-error style applies at the API boundary,
// pushed one step further into the data model itself because
// composition's failures are only meaningful relative to a particular
// state.
package compose
