package config

import "errors"

// Sentinel errors for configuration validation.
var (
	ErrInvalidMaxFunctions       = errors.New("invalid max functions: must be non-negative")
	ErrInvalidMaxNodes           = errors.New("invalid max nodes per function: must be non-negative")
	ErrInvalidMaxDocumentBytes   = errors.New("invalid max document bytes: must be non-negative")
	ErrInvalidMaxAttributeLength = errors.New("invalid max attribute array length: must be non-negative")
)
