// Package fstcache memoizes per-state expansions for a delayed
// transducer: final weight, arc list, and a "start computed" flag
// move through the lattice {empty} -> {start?} -> {arcs, final} and
// never move backward except through eviction, which discards an
// entry wholesale so re-expansion starts clean.
//
// Store is the moral equivalent of a cache-aside map guarded by a
// single mutex (there is exactly one writer per composition instance
// in the single-threaded expansion model, so the lock exists only to
// let a Store be shared read-only across goroutines, not to arbitrate
// concurrent writers). Eviction order is a textbook LRU chain built on
// container/list, the same stdlib structure this module's other
// ordering helpers reach for rather than importing a third-party
// cache package.
package fstcache
