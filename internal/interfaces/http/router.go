package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.opentelemetry.io/otel/trace"

	"github.com/jhoicas/customer-api/internal/application/customer"
	"github.com/jhoicas/customer-api/pkg/logger"
)

// AppConfig opciones para construir la app Fiber.
type AppConfig struct {
	Name   string
	Log    *logger.Logger
	Tracer trace.Tracer
}

// NewApp crea la app Fiber con ErrorHandler y middlewares comunes (recover, tracing, log).
func NewApp(cfg AppConfig) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      cfg.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		ErrorHandler: NewErrorHandler(cfg.Log),
	})
	app.Use(recover.New())
	app.Use(RequestLogger(cfg.Log))
	if cfg.Tracer != nil {
		app.Use(Tracing(cfg.Tracer))
	}
	return app
}

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CustomerUC *customer.CustomerUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	customers := app.Group(CustomerResourcePath)
	customerHandler := NewCustomerHandler(deps.CustomerUC, NewRequestValidator())
	customers.Post("/", customerHandler.Create)
	customers.Get("/", customerHandler.List)
	// /suggestions antes de /:uuid para que no se interprete como UUID.
	customers.Get("/suggestions", customerHandler.Suggestions)
	customers.Get("/:uuid", customerHandler.GetByID)
	customers.Put("/:uuid", customerHandler.Update)
	customers.Delete("/:uuid", customerHandler.Delete)
}
