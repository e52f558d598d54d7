package config

// Config holds the resource ceilings applied while loading a document.
// These are safety limits on an untrusted input source, not semantic
// behavior: the codec's correctness never depends on any of them.
type Config struct {
	// MaxFunctions bounds the number of function objects in a document's
	// top-level array (0 = unlimited).
	MaxFunctions int

	// MaxNodesPerFunction bounds the length of a single function's ops
	// array (0 = unlimited).
	MaxNodesPerFunction int

	// MaxDocumentBytes bounds the size of the raw input consumed by
	// Deserialize before any parsing begins (0 = unlimited).
	MaxDocumentBytes int64

	// MaxAttributeArrayLength bounds the length of any op-specific array
	// attribute (shape, axes, reduction_axes, and so on; 0 = unlimited).
	MaxAttributeArrayLength int

	// StrictSchemaValidation runs the document through pkg/schema's
	// gojsonschema-based structural check before the procedural decode in
	// pkg/ops. Off by default: the procedural decoder is authoritative and
	// sufficient on its own.
	StrictSchemaValidation bool
}

// Default returns a Config with generous but finite limits.
func Default() *Config {
	return &Config{
		MaxFunctions:            10_000,
		MaxNodesPerFunction:     1_000_000,
		MaxDocumentBytes:        256 * 1024 * 1024,
		MaxAttributeArrayLength: 1_000_000,
		StrictSchemaValidation:  false,
	}
}

// Validate checks that the configuration's values are internally consistent.
func (c *Config) Validate() error {
	if c.MaxFunctions < 0 {
		return ErrInvalidMaxFunctions
	}
	if c.MaxNodesPerFunction < 0 {
		return ErrInvalidMaxNodes
	}
	if c.MaxDocumentBytes < 0 {
		return ErrInvalidMaxDocumentBytes
	}
	if c.MaxAttributeArrayLength < 0 {
		return ErrInvalidMaxAttributeLength
	}
	return nil
}

// Clone returns a copy of c.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}
