// File: scc.go
// Role: Tarjan's SCC algorithm, used to compute co-accessibility.

package connect

import "github.com/arunjayapal/wfst/fst"

// tarjanCoaccessible returns a bool per state id, true where that
// state can reach some final state.
func tarjanCoaccessible(f *fst.MutableFst) []bool {
	n := int(f.NumStates())
	index := make([]int, n)
	lowlink := make([]int, n)
	onStack := make([]bool, n)
	for i := range index {
		index[i] = -1
	}
	var sccStack []fst.StateId
	coaccessible := make([]bool, n)
	counter := 0

	var visit func(v fst.StateId)
	visit = func(v fst.StateId) {
		index[v] = counter
		lowlink[v] = counter
		counter++
		sccStack = append(sccStack, v)
		onStack[v] = true

		it := f.Arcs(v)
		for !it.Done() {
			w := it.Value().NextState
			switch {
			case index[w] == -1:
				visit(w)
				if lowlink[w] < lowlink[v] {
					lowlink[v] = lowlink[w]
				}
			case onStack[w]:
				if index[w] < lowlink[v] {
					lowlink[v] = index[w]
				}
			}
			it.Next()
		}

		if lowlink[v] != index[v] {
			return
		}
		var scc []fst.StateId
		for {
			w := sccStack[len(sccStack)-1]
			sccStack = sccStack[:len(sccStack)-1]
			onStack[w] = false
			scc = append(scc, w)
			if w == v {
				break
			}
		}
		resolveCoaccessibility(f, scc, coaccessible)
	}

	for s := 0; s < n; s++ {
		if index[s] == -1 {
			visit(fst.StateId(s))
		}
	}
	return coaccessible
}

// resolveCoaccessibility marks every member of scc co-accessible if
// any member is final, or if any arc leaving the SCC targets a state
// already known co-accessible. By the time an SCC finishes in Tarjan's
// algorithm, every SCC reachable from it has already finished, so
// "already known" is complete for this purpose.
func resolveCoaccessibility(f *fst.MutableFst, scc []fst.StateId, coaccessible []bool) {
	members := make(map[fst.StateId]bool, len(scc))
	for _, s := range scc {
		members[s] = true
	}
	reach := false
	for _, s := range scc {
		if !f.Final(s).IsZero() {
			reach = true
		}
		it := f.Arcs(s)
		for !it.Done() {
			next := it.Value().NextState
			if !members[next] && coaccessible[next] {
				reach = true
			}
			it.Next()
		}
	}
	if reach {
		for _, s := range scc {
			coaccessible[s] = true
		}
	}
}
