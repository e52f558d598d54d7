// Package logging provides the structured logger used by the document
// driver and function reader/writer to report progress and failures.
//
// Logger is a thin chaining wrapper over slog.Logger: WithFunctionName and
// WithNodeName attach the diagnostic context spec.md §7 requires on every
// error ("a diagnostic carrying the offending function name and/or node
// name") without callers needing to rebuild that message by hand.
package logging
