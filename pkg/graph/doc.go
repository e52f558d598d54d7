// Package graph implements Kahn's algorithm over the in-memory node DAG
// reachable from a function's result, producing the deterministic
// topological order the writer emits to disk.
//
// # Guarantees
//
//   - Every reachable node appears exactly once in the output.
//   - For every input edge A -> B, A precedes B.
//   - The relative order of siblings with no dependency between them is
//     stable across runs for identical inputs.
//
// A cycle (which should never occur given nodes built through operation
// constructors) surfaces as ErrNotAcyclic rather than an infinite loop.
package graph
