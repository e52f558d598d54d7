// Package store is the "save a compiled graph, load it back by handle"
// companion to the codec: pkg/ops and the root package round-trip bytes,
// GraphStore round-trips named artifacts built from those bytes, each
// assigned a uuid.New()-derived handle on Register.
package store
