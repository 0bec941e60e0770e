// Package tracing configura el TracerProvider de OpenTelemetry de la aplicación.
package tracing

import (
	"context"
	"fmt"
	"io"
	"os"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.18.0"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// Config opciones del proveedor de trazas.
type Config struct {
	Enabled     bool
	ServiceName string
	Env         string
	// Output destino de los spans exportados; por defecto os.Stdout.
	Output io.Writer
}

// Provider expone el Tracer de la app y su apagado.
type Provider struct {
	tracer   trace.Tracer
	shutdown func(context.Context) error
}

// New crea el proveedor. Con Enabled=false devuelve un tracer no-op y no registra nada global.
func New(cfg Config) (*Provider, error) {
	if !cfg.Enabled {
		return &Provider{
			tracer:   noop.NewTracerProvider().Tracer(cfg.ServiceName),
			shutdown: func(context.Context) error { return nil },
		}, nil
	}

	out := cfg.Output
	if out == nil {
		out = os.Stdout
	}
	exp, err := stdouttrace.New(stdouttrace.WithWriter(out))
	if err != nil {
		return nil, fmt.Errorf("exportador de trazas: %w", err)
	}
	res := resource.NewSchemaless(
		semconv.ServiceName(cfg.ServiceName),
		semconv.DeploymentEnvironment(cfg.Env),
	)
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exp),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(tp)

	return &Provider{
		tracer:   tp.Tracer(cfg.ServiceName),
		shutdown: tp.Shutdown,
	}, nil
}

// Tracer tracer de la aplicación.
func (p *Provider) Tracer() trace.Tracer {
	return p.tracer
}

// Shutdown exporta los spans pendientes y libera el proveedor.
func (p *Provider) Shutdown(ctx context.Context) error {
	return p.shutdown(ctx)
}
