// Package types holds the data model shared by the graph codec: the
// interned ElementType registry, Shape, Node, Function and Document, and
// the closed Op taxonomy from spec.md §4.4.
//
// # Element type interning
//
// ElementType values are never constructed outside this package. Canonical
// interns a (bitwidth, is_real, is_signed, c_type) quadruple against the
// fixed set of eleven recognized members and returns the one shared
// pointer for that member, so two element types compare equal with `==`
// exactly when they describe the same quadruple.
//
// # Name normalization
//
// Function and node names are normalized to NFC via NormalizeName before
// being used as keys in the reader's name→node and name→function maps and
// in the writer's duplicate-function-name check, so that Unicode look-alikes
// cannot defeat the uniqueness invariants in spec.md §3. The writer's
// call-graph walk keys its bookkeeping maps on the raw names.
package types
