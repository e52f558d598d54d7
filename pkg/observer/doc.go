// Package observer implements the observer pattern for the document driver
// and function reader/writer: callers register an Observer with a Manager
// and receive DocumentLoad/FunctionLoad/FunctionWrite events without the
// core codec depending on any particular logging or metrics backend.
//
// NoOpObserver and ConsoleObserver cover the common cases; pkg/telemetry's
// Provider implements Observer to turn the same events into OpenTelemetry
// metrics.
package observer
