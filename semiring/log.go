package semiring

import (
	"math"
	"strconv"
)

// LogWeight implements the log semiring: Times is addition (as in the
// tropical semiring), but Plus is the log-domain sum
// -log(exp(-a) + exp(-b)), which accumulates probabilities exactly
// rather than approximating with a min. Zero is +Inf, One is 0.
type LogWeight float64

// LogZero is the identity of Plus and absorbing element of Times.
func LogZero() LogWeight { return LogWeight(math.Inf(1)) }

// LogOne is the identity of Times.
func LogOne() LogWeight { return LogWeight(0) }

// Plus returns the log-domain sum of w and other, short-circuiting
// through either Zero operand to avoid propagating NaN from Inf-Inf.
func (w LogWeight) Plus(other Weight) Weight {
	o := other.(LogWeight)
	if w.IsZero() {
		return o
	}
	if o.IsZero() {
		return w
	}
	// -log(exp(-a) + exp(-b)), computed in a numerically stable way by
	// factoring out the smaller exponent.
	a, b := float64(w), float64(o)
	if b < a {
		a, b = b, a
	}
	return LogWeight(a - math.Log1p(math.Exp(a-b)))
}

// Times returns w + other, propagating Zero unchanged.
func (w LogWeight) Times(other Weight) Weight {
	o := other.(LogWeight)
	if w.IsZero() || o.IsZero() {
		return LogZero()
	}
	return w + o
}

// IsZero reports whether w is +Inf.
func (w LogWeight) IsZero() bool { return math.IsInf(float64(w), 1) }

// IsOne reports whether w is exactly 0.
func (w LogWeight) IsOne() bool { return float64(w) == 0 }

// ApproxEqual reports whether w and other differ by no more than delta.
func (w LogWeight) ApproxEqual(other Weight, delta float64) bool {
	o := other.(LogWeight)
	if w.IsZero() && o.IsZero() {
		return true
	}
	return math.Abs(float64(w)-float64(o)) <= delta
}

// Properties reports that the log semiring is commutative but, unlike
// the tropical semiring, not idempotent (Plus(a, a) != a in general).
func (w LogWeight) Properties() Properties { return Commutative }

// String renders the weight, using "Inf" for the Zero element.
func (w LogWeight) String() string {
	if w.IsZero() {
		return "Inf"
	}
	return strconv.FormatFloat(float64(w), 'g', -1, 64)
}
