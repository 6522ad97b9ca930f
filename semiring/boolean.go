package semiring

// BooleanWeight implements the Boolean semiring: Plus is logical OR,
// Times is logical AND, Zero is false, One is true. It models plain
// (unweighted) acceptance; composing two Boolean-weighted automata
// answers "is there a path" without any numeric cost.
type BooleanWeight bool

// BooleanZero is the absorbing element of Times and identity of Plus.
func BooleanZero() BooleanWeight { return BooleanWeight(false) }

// BooleanOne is the identity of Times.
func BooleanOne() BooleanWeight { return BooleanWeight(true) }

// Plus returns w OR other.
func (w BooleanWeight) Plus(other Weight) Weight {
	return w || other.(BooleanWeight)
}

// Times returns w AND other.
func (w BooleanWeight) Times(other Weight) Weight {
	return w && other.(BooleanWeight)
}

// IsZero reports whether w is false.
func (w BooleanWeight) IsZero() bool { return !bool(w) }

// IsOne reports whether w is true.
func (w BooleanWeight) IsOne() bool { return bool(w) }

// ApproxEqual reports exact equality; the Boolean semiring has no
// notion of tolerance, so delta is accepted for interface symmetry and
// otherwise ignored.
func (w BooleanWeight) ApproxEqual(other Weight, _ float64) bool {
	return w == other.(BooleanWeight)
}

// Properties reports that the Boolean semiring is commutative and
// idempotent (a OR a == a).
func (w BooleanWeight) Properties() Properties { return Commutative | Idempotent }

// String renders "T" or "F", matching the terse notation used for
// Boolean-weighted acceptors in diagnostics.
func (w BooleanWeight) String() string {
	if w {
		return "T"
	}
	return "F"
}
