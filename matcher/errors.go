package matcher

import "errors"

// ErrSortRequired indicates a SortedMatcher was constructed over an
// automaton that does not declare (as known-true) the arc sort its
// match side requires.
var ErrSortRequired = errors.New("matcher: automaton lacks the required arc sort")
