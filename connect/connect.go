// File: connect.go
// Role: Connect, the public trim entry point.

package connect

import "github.com/arunjayapal/wfst/fst"

// Connect deletes every state of f that is not both accessible from
// the start state and co-accessible to some final state, then
// compacts the remaining state ids densely via f.DeleteStates.
// Complexity: O(V + E) time, O(V) auxiliary space.
func Connect(f *fst.MutableFst) {
	acc := accessible(f)
	coacc := tarjanCoaccessible(f)

	n := int(f.NumStates())
	var toDelete []fst.StateId
	for s := 0; s < n; s++ {
		if !acc[s] || !coacc[s] {
			toDelete = append(toDelete, fst.StateId(s))
		}
	}
	f.DeleteStates(toDelete)
}
