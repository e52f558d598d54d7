// Package ngraph serializes and deserializes a typed tensor-computation
// graph — a DAG of named operations over typed multi-dimensional values —
// to and from a portable JSON document.
//
// The graph itself lives in pkg/types as a pointer graph of *types.Node
// values: one canonical handle per node, shared by every user within a
// function. Serialize linearizes that graph with pkg/graph's topological
// sort, encodes each node's operation-specific attributes with pkg/ops,
// and orders the document's functions callee-before-caller. Deserialize
// reverses the process, resolving node and function references strictly in
// the order they appear on disk.
package ngraph
