// File: topsort.go
// Role: TopSort, DFS-finishing-order topological sort with cycle
// detection via the classic white/gray/black coloring.

package topsort

import "github.com/arunjayapal/wfst/fst"

type color uint8

const (
	white color = iota
	gray
	black
)

// TopSort returns the states of f in topological order (every arc
// points from an earlier position to a later one) along with whether
// f is acyclic. If f has a cycle reachable from any state, acyclic is
// false and order is nil: a cyclic graph has no topological order.
func TopSort(f *fst.MutableFst) (acyclic bool, order []fst.StateId) {
	n := int(f.NumStates())
	colors := make([]color, n)
	var finished []fst.StateId
	cyclic := false

	var visit func(v fst.StateId)
	visit = func(v fst.StateId) {
		colors[v] = gray
		it := f.Arcs(v)
		for !it.Done() {
			w := it.Value().NextState
			switch colors[w] {
			case white:
				visit(w)
			case gray:
				cyclic = true
			}
			it.Next()
		}
		colors[v] = black
		finished = append(finished, v)
	}

	for v := fst.StateId(0); v < fst.StateId(n); v++ {
		if colors[v] == white {
			visit(v)
		}
	}
	if cyclic {
		return false, nil
	}

	order = make([]fst.StateId, n)
	for i, v := range finished {
		order[n-1-i] = v
	}
	return true, order
}
