package store

import "errors"

// Sentinel errors for graph store operations.
var (
	ErrNameRequired     = errors.New("graph name is required")
	ErrDocumentRequired = errors.New("graph document is required")
	ErrNotFound         = errors.New("graph not found")
)
