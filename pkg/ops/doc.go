// Package ops implements the per-operation attribute schema of spec.md
// §4.4: which extra JSON fields each operation kind writes and reads,
// arity validation, and the constructor dispatch that turns a decoded
// node plus its already-resolved input pointers into a *types.Node.
//
// Every constructible operation kind in the closed taxonomy has an entry in
// the arity table and, where it carries extra attributes, an Attrs struct. The
// dispatch in Decode is total over the taxonomy: an op tag outside it is
// UnknownOperation, and GetTupleElement — recognized but never
// constructible, see DESIGN.md — is UnsupportedOperation.
package ops
