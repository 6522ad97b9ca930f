package semiring

import (
	"math"
	"strconv"
)

// TropicalWeight implements the min-plus (tropical) semiring: Plus is
// numeric minimum, Times is addition, Zero is +Inf, One is 0. It is the
// weight type most WFST shortest-distance and speech/NLP applications
// use for path cost.
type TropicalWeight float64

// TropicalZero is the identity of Plus (min) and absorbing element of Times.
func TropicalZero() TropicalWeight { return TropicalWeight(math.Inf(1)) }

// TropicalOne is the identity of Times.
func TropicalOne() TropicalWeight { return TropicalWeight(0) }

// Plus returns the minimum of w and other.
func (w TropicalWeight) Plus(other Weight) Weight {
	o := other.(TropicalWeight)
	if w < o {
		return w
	}
	return o
}

// Times returns w + other, propagating +Inf (Zero) unchanged.
func (w TropicalWeight) Times(other Weight) Weight {
	o := other.(TropicalWeight)
	if w.IsZero() || o.IsZero() {
		return TropicalZero()
	}
	return w + o
}

// IsZero reports whether w is +Inf.
func (w TropicalWeight) IsZero() bool { return math.IsInf(float64(w), 1) }

// IsOne reports whether w is exactly 0.
func (w TropicalWeight) IsOne() bool { return float64(w) == 0 }

// ApproxEqual reports whether w and other differ by no more than delta,
// treating two +Inf values (both Zero) as equal regardless of delta.
func (w TropicalWeight) ApproxEqual(other Weight, delta float64) bool {
	o := other.(TropicalWeight)
	if w.IsZero() && o.IsZero() {
		return true
	}
	return math.Abs(float64(w)-float64(o)) <= delta
}

// Properties reports that the tropical semiring is commutative and
// idempotent (Plus(a, a) == a since min(a, a) == a).
func (w TropicalWeight) Properties() Properties { return Commutative | Idempotent }

// String renders the weight, using "Inf" for the Zero element.
func (w TropicalWeight) String() string {
	if w.IsZero() {
		return "Inf"
	}
	return strconv.FormatFloat(float64(w), 'g', -1, 64)
}
