// Package config centralizes the resource ceilings applied while loading a
// document: how many functions, how many nodes per function, how large the
// raw input may be, and whether to run the optional gojsonschema
// pre-validation pass in pkg/schema.
//
// None of these limits change the codec's semantics — the Non-goals in
// spec.md exclude streaming and partial load, not resource guards on an
// untrusted input source.
package config
