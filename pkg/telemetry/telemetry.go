package telemetry

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"

	"github.com/ngraph-go/ngraph/pkg/observer"
	"github.com/ngraph-go/ngraph/pkg/types"
)

const serviceName = "ngraph-serializer"

const (
	metricDocumentsSerialized    = "documents.serialized.total"
	metricDocumentsDeserialized  = "documents.deserialized.total"
	metricDeserializeDuration    = "documents.deserialize.duration"
	metricFunctionsLoaded        = "functions.loaded.total"
	metricNodesLoaded            = "nodes.loaded.total"
	metricDeserializeFailures    = "documents.deserialize.failures.total"
)

// Provider manages OpenTelemetry setup backed by a Prometheus exporter, and
// implements observer.Observer so it can be registered with an
// observer.Manager directly.
type Provider struct {
	meterProvider *sdkmetric.MeterProvider
	meter         metric.Meter

	documentsSerialized   metric.Int64Counter
	documentsDeserialized metric.Int64Counter
	deserializeDuration   metric.Float64Histogram
	functionsLoaded       metric.Int64Counter
	nodesLoaded           metric.Int64Counter
	deserializeFailures   metric.Int64Counter

	mu sync.RWMutex
}

// Config holds telemetry configuration.
type Config struct {
	ServiceName    string
	ServiceVersion string
	Environment    string
}

// DefaultConfig returns the default telemetry configuration.
func DefaultConfig() Config {
	return Config{ServiceName: serviceName, ServiceVersion: "0.1.0", Environment: "development"}
}

// NewProvider stands up an OTel MeterProvider with a Prometheus exporter and
// the metric instruments the document driver records against.
func NewProvider(ctx context.Context, cfg Config) (*Provider, error) {
	p := &Provider{}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(cfg.ServiceName),
			semconv.ServiceVersion(cfg.ServiceVersion),
			attribute.String("environment", cfg.Environment),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create resource: %w", err)
	}

	exporter, err := prometheus.New()
	if err != nil {
		return nil, fmt.Errorf("failed to create prometheus exporter: %w", err)
	}

	p.meterProvider = sdkmetric.NewMeterProvider(
		sdkmetric.WithResource(res),
		sdkmetric.WithReader(exporter),
	)
	otel.SetMeterProvider(p.meterProvider)
	p.meter = p.meterProvider.Meter(serviceName)

	if err := p.createInstruments(); err != nil {
		return nil, fmt.Errorf("failed to create metric instruments: %w", err)
	}
	return p, nil
}

func (p *Provider) createInstruments() error {
	var err error

	if p.documentsSerialized, err = p.meter.Int64Counter(metricDocumentsSerialized,
		metric.WithDescription("Total number of documents serialized")); err != nil {
		return err
	}
	if p.documentsDeserialized, err = p.meter.Int64Counter(metricDocumentsDeserialized,
		metric.WithDescription("Total number of documents deserialized")); err != nil {
		return err
	}
	if p.deserializeDuration, err = p.meter.Float64Histogram(metricDeserializeDuration,
		metric.WithDescription("Deserialize call duration"), metric.WithUnit("ms")); err != nil {
		return err
	}
	if p.functionsLoaded, err = p.meter.Int64Counter(metricFunctionsLoaded,
		metric.WithDescription("Total number of functions loaded")); err != nil {
		return err
	}
	if p.nodesLoaded, err = p.meter.Int64Counter(metricNodesLoaded,
		metric.WithDescription("Total number of nodes loaded")); err != nil {
		return err
	}
	if p.deserializeFailures, err = p.meter.Int64Counter(metricDeserializeFailures,
		metric.WithDescription("Total number of failed deserialize calls, by error class")); err != nil {
		return err
	}
	return nil
}

// Meter returns the underlying OTel meter for advanced instrumentation.
func (p *Provider) Meter() metric.Meter {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.meter
}

// errorClasses is the closed failure taxonomy the failure counter is keyed by.
var errorClasses = []error{
	types.ErrMalformedDocument, types.ErrUnknownOperation, types.ErrUnsupportedOperation,
	types.ErrUnknownElementType, types.ErrMalformedNode, types.ErrDanglingReference,
	types.ErrForwardFunctionReference, types.ErrGraphNotAcyclic, types.ErrDuplicateFunctionName,
	types.ErrDuplicateNodeName, types.ErrResultNotFound, types.ErrParameterNotFound,
	types.ErrResultTypeMismatch,
}

// OnEvent implements observer.Observer, translating document/function
// load-and-write events into the counters above.
func (p *Provider) OnEvent(ctx context.Context, event observer.Event) {
	switch event.Type {
	case observer.EventDocumentLoadEnd:
		if event.Status == observer.StatusFailure {
			errClass := "unknown"
			for _, class := range errorClasses {
				if errors.Is(event.Error, class) {
					errClass = class.Error()
					break
				}
			}
			p.deserializeFailures.Add(ctx, 1, metric.WithAttributes(attribute.String("error_class", errClass)))
		} else {
			p.documentsDeserialized.Add(ctx, 1)
		}
		p.deserializeDuration.Record(ctx, float64(event.ElapsedTime.Milliseconds()))
	case observer.EventFunctionWriteEnd:
		if event.Status != observer.StatusFailure {
			p.documentsSerialized.Add(ctx, 1)
		}
	case observer.EventFunctionLoadEnd:
		if event.Status != observer.StatusFailure {
			p.functionsLoaded.Add(ctx, 1, metric.WithAttributes(attribute.String("function_name", event.FunctionName)))
			if count, ok := event.Metadata["node_count"].(int); ok {
				p.nodesLoaded.Add(ctx, int64(count), metric.WithAttributes(attribute.String("function_name", event.FunctionName)))
			}
		}
	}
}

// Shutdown gracefully shuts down the telemetry provider.
func (p *Provider) Shutdown(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.meterProvider != nil {
		if err := p.meterProvider.Shutdown(ctx); err != nil {
			return fmt.Errorf("failed to shutdown meter provider: %w", err)
		}
	}
	return nil
}
