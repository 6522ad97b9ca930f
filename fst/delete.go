// File: delete.go
// Role: DeleteStates, the compacting deletion operation: compaction
// renumbers remaining states densely. This is what connect.Connect
// calls once it has computed the set of states to discard.

package fst

// DeleteStates removes every state in toDelete along with any arc that
// targets one, then renumbers the surviving states densely in their
// original relative order, starting at 0. If the start state is
// deleted, the store's start becomes NoStateId.
//
// Complexity: O(V + E) in the store's size before deletion.
func (f *MutableFst) DeleteStates(toDelete []StateId) {
	f.muStates.Lock()
	defer f.muStates.Unlock()
	f.muArcs.Lock()
	defer f.muArcs.Unlock()

 deleted := make(map[StateId]bool, len(toDelete))
 for _, s := range toDelete {
 if f.inRangeLocked(s) {
 deleted[s] = true
 }
 }
 if len(deleted) == 0 {
 return
 }

 remap := make([]StateId, len(f.states))
 next := StateId(0)
 for old := StateId(0); int(old) < len(f.states); old++ {
 if deleted[old] {
 remap[old] = NoStateId
 continue
 }
 remap[old] = next
 next++
 }

 compacted := make([]stateRecord, 0, next)
 for old := StateId(0); int(old) < len(f.states); old++ {
 if deleted[old] {
 continue
 }
 rec := f.states[old]
 keptArcs := rec.arcs[:0:0]
 for _, arc := range rec.arcs {
 if deleted[arc.NextState] {
 continue
 }
 arc.NextState = remap[arc.NextState]
 keptArcs = append(keptArcs, arc)
 }
 rec.arcs = keptArcs
 compacted = append(compacted, rec)
 }
 f.states = compacted

 if f.start != NoStateId {
 if deleted[f.start] {
 f.start = NoStateId
 } else {
 f.start = remap[f.start]
 }
 }
}
