// Package topsort computes a topological ordering of a transducer's
// states by DFS finishing order, detecting cycles along the way.
package topsort
