// Package graph implements the topological linearizer used by the writer
// to turn a function's reachable node DAG into the deterministic,
// dependency-respecting order that makes the on-disk document loadable in
// one forward pass (spec.md §4.3).
package graph

import (
	"github.com/ngraph-go/ngraph/pkg/types"
)

// Linearize walks every node reachable from result and returns them in
// topological order using Kahn's algorithm: a node precedes every node
// that lists it as an input, and ties among simultaneously-ready nodes are
// broken by the order in which they first became ready (FIFO queue
// discipline), which in turn is driven by a deterministic reachability
// walk over result.
//
// Returns ErrNotAcyclic if the graph is not in fact acyclic — this should
// never happen by construction, since the only way to reach this code is
// via node objects already built by operation constructors, but a producer
// bug (e.g. a cycle introduced via external construction APIs out of this
// module's scope) is still reported rather than looping forever.
func Linearize(result *types.Node) ([]*types.Node, error) {
	if result == nil {
		return nil, nil
	}

	// Enumerate all reachable nodes via a deterministic DFS, and build the
	// reverse adjacency ("users") list in the same pass: users[n] holds the
	// nodes that declare n as an input, in first-discovery order. This is
	// what makes the FIFO tie-break in the queue loop below deterministic across
	// runs for identical inputs.
	var order []*types.Node
	visited := make(map[*types.Node]bool)
	users := make(map[*types.Node][]*types.Node)
	pending := make(map[*types.Node]int)

	var visit func(n *types.Node)
	visit = func(n *types.Node) {
		if visited[n] {
			return
		}
		visited[n] = true
		order = append(order, n)
		pending[n] = len(n.Inputs)
		for _, in := range n.Inputs {
			users[in] = append(users[in], n)
			visit(in)
		}
	}
	visit(result)

	// Initialize the queue with nodes that have no dependencies, in the
	// order they were first discovered above.
	queue := make([]*types.Node, 0, len(order))
	for _, n := range order {
		if pending[n] == 0 {
			queue = append(queue, n)
		}
	}

	linear := make([]*types.Node, 0, len(order))
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		linear = append(linear, current)

		for _, user := range users[current] {
			pending[user]--
			if pending[user] == 0 {
				queue = append(queue, user)
			}
		}
	}

	if len(linear) != len(order) {
		return nil, ErrNotAcyclic
	}
	return linear, nil
}
