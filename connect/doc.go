// Package connect implements the connect/trim pass: deleting states
// that are not both accessible (forward-reachable from start) and
// co-accessible (able to reach a final state), then compacting what
// remains.
//
// Accessibility is one forward DFS from the start state.
// Co-accessibility is computed by Tarjan's strongly-connected-
// components algorithm (dfnumber/lowlink/on-stack/scc-stack): an SCC
// can reach a final state iff some member is itself final or some arc
// leaving the SCC lands on an already-resolved co-accessible state —
// sound because Tarjan finishes an SCC only after every SCC reachable
// from it has already been resolved. Both passes run in O(V+E) total.
package connect
