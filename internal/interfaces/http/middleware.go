package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"go.opentelemetry.io/otel/codes"
	semconv "go.opentelemetry.io/otel/semconv/v1.18.0"
	"go.opentelemetry.io/otel/trace"

	"github.com/jhoicas/customer-api/pkg/logger"
)

// RequestLogger registra método, ruta, status y latencia de cada petición.
func RequestLogger(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		status := statusFromError(c, err)

		ev := log.Info()
		if status >= fiber.StatusInternalServerError {
			ev = log.Warn()
		}
		ev.Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Str("ip", c.IP()).
			Msg("petición HTTP")
		return err
	}
}

// Tracing abre un span de servidor por petición y lo deja en c.UserContext()
// para que los casos de uso y las consultas SQL cuelguen de él.
func Tracing(tracer trace.Tracer) fiber.Handler {
	return func(c *fiber.Ctx) error {
		// Fiber reutiliza sus buffers al terminar la petición; los strings que guarda el span se copian.
		method := utils.CopyString(c.Method())
		ctx, span := tracer.Start(c.UserContext(), method,
			trace.WithSpanKind(trace.SpanKindServer),
			trace.WithAttributes(
				semconv.HTTPMethodKey.String(method),
				semconv.HTTPTargetKey.String(utils.CopyString(c.OriginalURL())),
			),
		)
		defer span.End()
		c.SetUserContext(ctx)

		err := c.Next()

		route := c.Route().Path
		status := statusFromError(c, err)
		span.SetName(method + " " + route)
		span.SetAttributes(
			semconv.HTTPRouteKey.String(route),
			semconv.HTTPStatusCodeKey.Int(status),
		)
		if err != nil {
			span.RecordError(err)
		}
		if status >= fiber.StatusInternalServerError {
			span.SetStatus(codes.Error, "respuesta "+utils.StatusMessage(status))
		}
		return err
	}
}
