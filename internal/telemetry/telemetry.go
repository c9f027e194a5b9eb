// Package telemetry wires the ambient observability stack for the CLI:
// slog loggers, an OpenTelemetry tracer provider exporting to a writer, and a
// prometheus registry that can be dumped to a node-exporter textfile.
package telemetry

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// Sentinel errors for telemetry setup.
var (
	ErrUnknownLevel  = errors.New("telemetry: unknown log level")
	ErrUnknownFormat = errors.New("telemetry: unknown log format")
)

// ServiceName identifies spans produced by tubepath.
const ServiceName = "tubepath"

// NewLogger builds a slog logger writing to w. level is one of
// debug|info|warn|error; format is text|json.
func NewLogger(level, format string, w io.Writer) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownLevel, level)
	}
	opts := &slog.HandlerOptions{Level: lvl}

	switch strings.ToLower(format) {
	case "", "text":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// NewTracerProvider returns a provider that batches spans and writes them as
// pretty-printed JSON to w. Callers must Shutdown it to flush.
func NewTracerProvider(w io.Writer, version string) (*sdktrace.TracerProvider, error) {
	exporter, err := stdouttrace.New(stdouttrace.WithWriter(w), stdouttrace.WithPrettyPrint())
	if err != nil {
		return nil, fmt.Errorf("telemetry: create exporter: %w", err)
	}
	res := resource.NewWithAttributes(
		"",
		attribute.String("service.name", ServiceName),
		attribute.String("service.version", version),
	)

	return sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
	), nil
}

// InitTracing installs a stdout tracer provider as the global provider when
// enabled and returns its shutdown function. Disabled tracing returns a
// no-op shutdown and leaves the global no-op provider in place.
func InitTracing(enabled bool, w io.Writer, version string) (func(context.Context) error, error) {
	if !enabled {
		return func(context.Context) error { return nil }, nil
	}
	tp, err := NewTracerProvider(w, version)
	if err != nil {
		return nil, err
	}
	otel.SetTracerProvider(tp)

	return tp.Shutdown, nil
}

// NewRegistry returns an isolated prometheus registry.
func NewRegistry() *prometheus.Registry {
	return prometheus.NewRegistry()
}

// WriteMetrics dumps every metric of reg to path in the text exposition
// format. An empty path is a no-op.
func WriteMetrics(path string, reg prometheus.Gatherer) error {
	if path == "" {
		return nil
	}
	if err := prometheus.WriteToTextfile(path, reg); err != nil {
		return fmt.Errorf("telemetry: write metrics: %w", err)
	}

	return nil
}
