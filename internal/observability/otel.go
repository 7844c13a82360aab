// Package observability wires OpenTelemetry tracing, metrics, and logging
// for the semana binaries. Providers are exported over OTLP/HTTP and honor
// the standard OTEL_EXPORTER_OTLP_* environment variables; when disabled,
// every Init function returns a no-op provider so callers never branch.
package observability

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/bridges/otelslog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlplog/otlploghttp"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/log"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

// DefaultServiceName is used when no service name is configured.
const DefaultServiceName = "semana"

const serviceVersion = "0.1.0"

const (
	exporterTimeout = 10 * time.Second
	batchTimeout    = 5 * time.Second
	metricInterval  = 15 * time.Second
)

// Config controls telemetry setup for a binary.
type Config struct {
	// Enabled turns OTLP export on. When false the Init functions install
	// no-op providers and logs go to stdout as JSON.
	Enabled bool

	// ServiceName identifies this binary in traces, metrics, and logs.
	// Defaults to DefaultServiceName when empty.
	ServiceName string
}

func (c Config) serviceName() string {
	if c.ServiceName == "" {
		return DefaultServiceName
	}
	return c.ServiceName
}

// parseOTLPHeaders reads OTEL_EXPORTER_OTLP_HEADERS and URL-decodes the
// values. Hosted backends such as Grafana Cloud hand out headers in
// URL-encoded form (e.g. Basic%20token) and the Go SDK does not always
// decode them itself.
func parseOTLPHeaders() map[string]string {
	raw := os.Getenv("OTEL_EXPORTER_OTLP_HEADERS")
	if raw == "" {
		return nil
	}

	headers := make(map[string]string)
	for _, pair := range strings.Split(raw, ",") {
		kv := strings.SplitN(pair, "=", 2)
		if len(kv) != 2 {
			continue
		}
		key := strings.TrimSpace(kv[0])
		value, err := url.QueryUnescape(kv[1])
		if err != nil {
			value = kv[1]
		}
		headers[key] = value
	}
	return headers
}

// newResource builds the resource attached to every exported signal.
// Service attributes are merged over the SDK defaults; partial-resource
// and schema conflicts are tolerated because the merged result is still
// usable. OTEL_RESOURCE_ATTRIBUTES can add attributes at deploy time.
func newResource(ctx context.Context, serviceName string) (*resource.Resource, error) {
	serviceResource, err := resource.New(ctx,
		resource.WithFromEnv(),
		resource.WithAttributes(
			semconv.ServiceName(serviceName),
			semconv.ServiceVersion(serviceVersion),
		),
		resource.WithSchemaURL(semconv.SchemaURL),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create service resource: %w", err)
	}

	res, err := resource.Merge(resource.Default(), serviceResource)
	if err != nil {
		if errors.Is(err, resource.ErrPartialResource) || errors.Is(err, resource.ErrSchemaURLConflict) {
			return res, nil
		}
		return nil, fmt.Errorf("failed to merge resources: %w", err)
	}

	return res, nil
}

// InitTracerProvider sets up the global tracer provider. Spans are batched
// and shipped over OTLP/HTTP; W3C trace context and baggage propagation are
// installed so instrumentation libraries pick them up.
func InitTracerProvider(ctx context.Context, cfg Config) (*sdktrace.TracerProvider, error) {
	if !cfg.Enabled {
		tp := sdktrace.NewTracerProvider()
		otel.SetTracerProvider(tp)
		return tp, nil
	}

	res, err := newResource(ctx, cfg.serviceName())
	if err != nil {
		return nil, err
	}

	opts := []otlptracehttp.Option{
		otlptracehttp.WithTimeout(exporterTimeout),
	}
	if headers := parseOTLPHeaders(); headers != nil {
		opts = append(opts, otlptracehttp.WithHeaders(headers))
	}

	// The exporter is built on context.Background so shutdown flushes do
	// not inherit an already-cancelled startup context.
	traceExporter, err := otlptracehttp.New(context.Background(), opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create trace exporter: %w", err)
	}

	tracerProvider := sdktrace.NewTracerProvider(
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
		sdktrace.WithResource(res),
		sdktrace.WithBatcher(traceExporter,
			sdktrace.WithBatchTimeout(batchTimeout),
		),
	)

	otel.SetTracerProvider(tracerProvider)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	return tracerProvider, nil
}

// InitMeterProvider sets up the global meter provider with a periodic
// OTLP/HTTP reader.
func InitMeterProvider(ctx context.Context, cfg Config) (*sdkmetric.MeterProvider, error) {
	if !cfg.Enabled {
		mp := sdkmetric.NewMeterProvider()
		otel.SetMeterProvider(mp)
		return mp, nil
	}

	res, err := newResource(ctx, cfg.serviceName())
	if err != nil {
		return nil, err
	}

	opts := []otlpmetrichttp.Option{
		otlpmetrichttp.WithTimeout(exporterTimeout),
	}
	if headers := parseOTLPHeaders(); headers != nil {
		opts = append(opts, otlpmetrichttp.WithHeaders(headers))
	}

	metricExporter, err := otlpmetrichttp.New(context.Background(), opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create metric exporter: %w", err)
	}

	meterProvider := sdkmetric.NewMeterProvider(
		sdkmetric.WithResource(res),
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(metricExporter,
			sdkmetric.WithInterval(metricInterval),
		)),
	)

	otel.SetMeterProvider(meterProvider)

	return meterProvider, nil
}

// InitLogger returns a logger provider and an slog.Logger backed by it.
// When telemetry is disabled the logger writes JSON to stdout and the
// provider is a no-op, so the caller's shutdown path stays uniform.
func InitLogger(ctx context.Context, cfg Config) (*log.LoggerProvider, *slog.Logger, error) {
	if !cfg.Enabled {
		return log.NewLoggerProvider(), slog.New(slog.NewJSONHandler(os.Stdout, nil)), nil
	}

	res, err := newResource(ctx, cfg.serviceName())
	if err != nil {
		return nil, nil, err
	}

	opts := []otlploghttp.Option{
		otlploghttp.WithTimeout(exporterTimeout),
	}
	if headers := parseOTLPHeaders(); headers != nil {
		opts = append(opts, otlploghttp.WithHeaders(headers))
	}

	logExporter, err := otlploghttp.New(context.Background(), opts...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create log exporter: %w", err)
	}

	loggerProvider := log.NewLoggerProvider(
		log.WithProcessor(log.NewBatchProcessor(logExporter,
			log.WithExportTimeout(batchTimeout),
		)),
		log.WithResource(res),
	)

	logger := otelslog.NewLogger(cfg.serviceName(), otelslog.WithLoggerProvider(loggerProvider))

	return loggerProvider, logger, nil
}
