// Package invert swaps a transducer's input and output tapes in
// place: every arc's ILabel/OLabel trade places, and so do the input
// and output symbol tables. Inversion is its own inverse.
package invert
