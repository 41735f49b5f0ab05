package metrics

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	promexporter "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
)

const defaultServiceName = "games-catalog-service"

var (
	promReaderFactory = prometheusComponents
	otlpReaderFactory = buildOTLPReader
	instrumentFactory = newOtelInstruments
)

// TelemetryConfig controls how metrics are exported.
type TelemetryConfig struct {
	Enabled      bool
	Port         string
	ServiceName  string
	OtlpEndpoint string
	OtlpInsecure bool
}

// Setup configures OpenTelemetry metrics with a Prometheus exporter and optional OTLP exporter.
// It returns a Recorder, the Prometheus HTTP handler, and a shutdown function.
func Setup(ctx context.Context, cfg TelemetryConfig) (*Recorder, http.Handler, func(context.Context) error, error) {
	if !cfg.Enabled {
		return NewRecorder(), nil, func(context.Context) error { return nil }, nil
	}

	if cfg.ServiceName == "" {
		cfg.ServiceName = defaultServiceName
	}

	promReader, promHandler, err := promReaderFactory()
	if err != nil {
		return nil, nil, nil, err
	}

	opts := []sdkmetric.Option{sdkmetric.WithReader(promReader)}

	if cfg.OtlpEndpoint != "" {
		otlpReader, err := otlpReaderFactory(ctx, cfg.OtlpEndpoint, cfg.OtlpInsecure)
		if err != nil {
			return nil, nil, nil, err
		}
		opts = append(opts, sdkmetric.WithReader(otlpReader))
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(semconv.ServiceName(cfg.ServiceName)),
	)
	if err != nil {
		return nil, nil, nil, err
	}
	opts = append(opts, sdkmetric.WithResource(res))

	provider := sdkmetric.NewMeterProvider(opts...)

	otelInst, err := instrumentFactory(provider)
	if err != nil {
		return nil, nil, nil, err
	}

	rec := newRecorder(otelInst)
	shutdown := func(c context.Context) error {
		return provider.Shutdown(c)
	}

	return rec, promHandler, shutdown, nil
}

func buildOTLPReader(ctx context.Context, endpoint string, insecure bool) (sdkmetric.Reader, error) {
	otlpOpts := []otlpmetrichttp.Option{otlpmetrichttp.WithEndpoint(endpoint)}
	if insecure {
		otlpOpts = append(otlpOpts, otlpmetrichttp.WithInsecure())
	}
	otlpExp, err := otlpmetrichttp.New(ctx, otlpOpts...)
	if err != nil {
		return nil, err
	}
	return sdkmetric.NewPeriodicReader(otlpExp, sdkmetric.WithInterval(15*time.Second)), nil
}

func prometheusComponents() (sdkmetric.Reader, http.Handler, error) {
	reg := prometheus.NewRegistry()
	promExp, err := promexporter.New(promexporter.WithRegisterer(reg))
	if err != nil {
		return nil, nil, err
	}
	return promExp, promhttp.HandlerFor(reg, promhttp.HandlerOpts{}), nil
}

type otelInstruments struct {
	ctx              context.Context
	requests         metric.Int64Counter
	requestLatencyMs metric.Float64Histogram
	storeOps         metric.Int64Counter
	storeErrors      metric.Int64Counter
	storeLatencyMs   metric.Float64Histogram
	gamesStored      metric.Int64UpDownCounter
}

func newOtelInstruments(provider metric.MeterProvider) (*otelInstruments, error) {
	meter := provider.Meter(defaultServiceName)

	requests, err := meter.Int64Counter("http_requests_total")
	if err != nil {
		return nil, err
	}
	requestLatency, err := meter.Float64Histogram("http_request_duration_ms")
	if err != nil {
		return nil, err
	}
	storeOps, err := meter.Int64Counter("store_operations_total")
	if err != nil {
		return nil, err
	}
	storeErrors, err := meter.Int64Counter("store_operation_errors_total")
	if err != nil {
		return nil, err
	}
	storeLatency, err := meter.Float64Histogram("store_operation_duration_ms")
	if err != nil {
		return nil, err
	}
	gamesStored, err := meter.Int64UpDownCounter("games_stored")
	if err != nil {
		return nil, err
	}

	return &otelInstruments{
		ctx:              context.Background(),
		requests:         requests,
		requestLatencyMs: requestLatency,
		storeOps:         storeOps,
		storeErrors:      storeErrors,
		storeLatencyMs:   storeLatency,
		gamesStored:      gamesStored,
	}, nil
}

func (o *otelInstruments) recordHTTPRequest(method, route string, status int, duration time.Duration) {
	if o == nil {
		return
	}
	attrs := metric.WithAttributes(
		attribute.String(AttrMethod, method),
		attribute.String(AttrRoute, route),
		attribute.Int(AttrStatus, status),
	)
	o.requests.Add(o.ctx, 1, attrs)
	o.requestLatencyMs.Record(o.ctx, float64(duration.Milliseconds()), attrs)
}

func (o *otelInstruments) recordStoreOperation(op string, duration time.Duration, err error) {
	if o == nil {
		return
	}
	attrs := metric.WithAttributes(attribute.String(AttrOperation, op))
	o.storeOps.Add(o.ctx, 1, attrs)
	o.storeLatencyMs.Record(o.ctx, float64(duration.Microseconds())/1000, attrs)
	if err != nil {
		o.storeErrors.Add(o.ctx, 1, attrs)
	}
}

func (o *otelInstruments) recordGamesStored(delta int64) {
	if o == nil {
		return
	}
	o.gamesStored.Add(o.ctx, delta)
}
