package postgres

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	semconv "go.opentelemetry.io/otel/semconv/v1.18.0"
	"go.opentelemetry.io/otel/trace"
)

var _ pgx.QueryTracer = (*QueryTracer)(nil)

// QueryTracer abre un span OpenTelemetry por cada consulta ejecutada por pgx.
type QueryTracer struct {
	tracer trace.Tracer
}

// NewQueryTracer construye el tracer a partir de un trace.Tracer.
func NewQueryTracer(tracer trace.Tracer) *QueryTracer {
	return &QueryTracer{tracer: tracer}
}

// TraceQueryStart inicia el span; el nombre es la operación SQL (SELECT, INSERT, ...).
func (t *QueryTracer) TraceQueryStart(ctx context.Context, _ *pgx.Conn, data pgx.TraceQueryStartData) context.Context {
	op := sqlOperation(data.SQL)
	ctx, _ = t.tracer.Start(ctx, "postgres:"+strings.ToLower(op),
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			semconv.DBSystemPostgreSQL,
			semconv.DBOperationKey.String(op),
			semconv.DBStatementKey.String(data.SQL),
		),
	)
	return ctx
}

// TraceQueryEnd cierra el span. pgx.ErrNoRows no se marca como error.
func (t *QueryTracer) TraceQueryEnd(ctx context.Context, _ *pgx.Conn, data pgx.TraceQueryEndData) {
	span := trace.SpanFromContext(ctx)
	defer span.End()

	if data.Err != nil && !errors.Is(data.Err, pgx.ErrNoRows) {
		span.RecordError(data.Err)
		span.SetStatus(codes.Error, data.Err.Error())
		return
	}
	span.SetAttributes(attribute.Int64("db.rows_affected", data.CommandTag.RowsAffected()))
}

func sqlOperation(sql string) string {
	fields := strings.Fields(sql)
	if len(fields) == 0 {
		return "UNKNOWN"
	}
	return strings.ToUpper(fields[0])
}
