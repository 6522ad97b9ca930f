package fst

import "errors"

// ErrNoSuchState indicates an operation referenced a state id that does
// not exist in the store.
var ErrNoSuchState = errors.New("fst: no such state")

// ErrForwardArc indicates AddArc referenced a nextstate id greater than
// the current maximum state id.
var ErrForwardArc = errors.New("fst: arc references a state id beyond the current maximum")

// ErrNegativeLabel indicates a label less than 0 was supplied where only
// NoLabel (-1) and non-negative labels are valid.
var ErrNegativeLabel = errors.New("fst: label must be non-negative or NoLabel")
