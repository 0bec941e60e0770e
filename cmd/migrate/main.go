// migrate aplica las migraciones SQL embebidas sobre la base configurada (DATABASE_URL o DB_*).
//
// Uso: go run ./cmd/migrate
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/jhoicas/customer-api/internal/infrastructure/postgres"
	"github.com/jhoicas/customer-api/pkg/config"
	"github.com/jhoicas/customer-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB, nil)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	applied, err := postgres.Migrate(ctx, pool)
	if err != nil {
		log.Error().Err(err).Msg("aplicar migraciones")
		pool.Close()
		os.Exit(1)
	}
	if len(applied) == 0 {
		log.Info().Msg("sin migraciones pendientes")
		return
	}
	log.Info().Strs("versions", applied).Msg("migraciones aplicadas")
}
