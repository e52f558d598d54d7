package graph

import "errors"

// ErrNotAcyclic is returned by Linearize when a cycle prevents every
// reachable node from reaching pending == 0 (spec.md §4.3 "Failure").
var ErrNotAcyclic = errors.New("graph contains a cycle")
