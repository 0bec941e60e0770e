package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"

	_ "github.com/jhoicas/customer-api/docs"
	"github.com/jhoicas/customer-api/internal/application/customer"
	"github.com/jhoicas/customer-api/internal/application/lifecycle"
	"github.com/jhoicas/customer-api/internal/domain/repository"
	"github.com/jhoicas/customer-api/internal/infrastructure/memory"
	"github.com/jhoicas/customer-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/customer-api/internal/interfaces/http"
	"github.com/jhoicas/customer-api/pkg/config"
	"github.com/jhoicas/customer-api/pkg/logger"
	"github.com/jhoicas/customer-api/pkg/tracing"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("store", cfg.Store.Driver).
		Msg("iniciando aplicación")

	tp, err := tracing.New(tracing.Config{
		Enabled:     cfg.Tracing.Enabled,
		ServiceName: cfg.App.Name,
		Env:         cfg.App.Env,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("inicializar trazas")
	}

	ctx := context.Background()

	var (
		customerRepo repository.CustomerRepository
		txRunner     customer.TxRunner
	)
	switch cfg.Store.Driver {
	case config.StoreDriverMemory:
		store := memory.NewCustomerStore()
		customerRepo, txRunner = store, store
	default:
		pool, err := postgres.NewPool(ctx, cfg.DB, postgres.NewQueryTracer(tp.Tracer()))
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()

		if cfg.DB.Migrate {
			applied, err := postgres.Migrate(ctx, pool)
			if err != nil {
				log.Fatal().Err(err).Msg("aplicar migraciones")
			}
			log.Info().Strs("versions", applied).Msg("migraciones aplicadas")
		}
		customerRepo = postgres.NewCustomerRepository(pool)
		txRunner = postgres.NewTxRunner(pool)
	}

	customerUC := customer.NewCustomerUseCase(customerRepo, txRunner)

	// Si la carga de demo falla, la aplicación no arranca.
	seeder := lifecycle.NewDemoCustomerSeeder(customerUC, log)
	if cfg.App.SeedDemo {
		if err := seeder.Start(ctx); err != nil {
			log.Fatal().Err(err).Msg("carga de clientes demo")
		}
	}

	app := httpRouter.NewApp(httpRouter.AppConfig{
		Name:   cfg.App.Name,
		Log:    log,
		Tracer: tp.Tracer(),
	})

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Customer API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		CustomerUC: customerUC,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}
	seeder.Stop()
	if err := tp.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("vaciar trazas pendientes")
	}

	log.Info().Msg("aplicación detenida")
}
