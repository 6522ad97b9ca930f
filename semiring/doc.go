// Package semiring defines the weight algebra consumed by the fst and
// compose packages: a small closed algebra of Plus, Times, Zero and One
// over an opaque Weight, plus a static Properties bitset describing
// algebraic guarantees (commutativity, idempotence) that composition and
// property inference rely on without inspecting concrete weight values.
//
// Three concrete semirings are provided: TropicalWeight (min-plus, used
// for shortest-distance-style scoring), LogWeight (log-domain sum, exact
// probability accumulation) and BooleanWeight (unweighted acceptance).
// All three are commutative, which is what composition over weighted
// operands requires of Times.
//
// Equality between weights is never exact for the floating-point
// semirings; every comparison goes through ApproxEqual with a
// caller-supplied delta, mirroring the tolerance-based numeric policy
// used by the corpus's matrix.Options (DefaultEpsilon).
package semiring
