// File: accessible.go
// Role: forward reachability from the start state.

package connect

import "github.com/arunjayapal/wfst/fst"

// accessible returns a bool per state id, true where that state is
// reachable from f's start state. If f has no start, every entry is
// false.
func accessible(f *fst.MutableFst) []bool {
	n := int(f.NumStates())
	visited := make([]bool, n)
	start := f.Start()
	if start == fst.NoStateId {
		return visited
	}
	stack := []fst.StateId{start}
	visited[start] = true
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		it := f.Arcs(s)
		for !it.Done() {
			next := it.Value().NextState
			if !visited[next] {
				visited[next] = true
				stack = append(stack, next)
			}
			it.Next()
		}
	}
	return visited
}
