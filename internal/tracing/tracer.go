// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tracing

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

var _ TracingInterface = (*Tracer)(nil)

type Tracer struct {
	tracer trace.Tracer
}

func (t *Tracer) Start(ctx context.Context, spanName string, opts ...trace.SpanStartOption) (context.Context, trace.Span) {
	return t.tracer.Start(ctx, spanName, opts...)
}

// NewTracer sets the global TracerProvider from the config and returns a Tracer
// backed by it. With tracing disabled the returned Tracer produces no-op spans.
func NewTracer(c *Config) *Tracer {
	t := new(Tracer)

	if !c.Enabled {
		t.tracer = noop.NewTracerProvider().Tracer("account-service")
		return t
	}

	var exporter *otlptrace.Exporter
	var err error

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	switch {
	case c.OtelGRPCEndpoint != "":
		exporter, err = otlptracegrpc.New(ctx, otlptracegrpc.WithEndpoint(c.OtelGRPCEndpoint), otlptracegrpc.WithInsecure())
	case c.OtelHTTPEndpoint != "":
		exporter, err = otlptracehttp.New(ctx, otlptracehttp.WithEndpoint(c.OtelHTTPEndpoint), otlptracehttp.WithInsecure())
	default:
		c.Logger.Info("No OTLP endpoint configured, tracing spans are not exported")
	}

	if err != nil {
		c.Logger.Errorf("failed to create OTLP exporter: %v", err)
	}

	opts := []sdktrace.TracerProviderOption{}
	if exporter != nil {
		opts = append(opts, sdktrace.WithBatcher(exporter))
	}

	tp := sdktrace.NewTracerProvider(opts...)
	otel.SetTracerProvider(tp)

	t.tracer = tp.Tracer("account-service")
	return t
}

func NewNoopTracer() *Tracer {
	return &Tracer{
		tracer: noop.NewTracerProvider().Tracer("account-service"),
	}
}
