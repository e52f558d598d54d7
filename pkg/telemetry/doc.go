// Package telemetry wires the document driver's observer.Event stream into
// OpenTelemetry metrics, exported via the Prometheus exporter:
//   - counters for documents serialized/deserialized and functions/nodes loaded
//   - a histogram of deserialize call duration
//   - a failure counter broken down by error class from spec.md §7
//
// Provider implements observer.Observer directly, so it registers with an
// observer.Manager the same way any other observer does.
package telemetry
