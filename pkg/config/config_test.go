package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/customer-api/pkg/config"
)

func TestLoad_ValoresPorDefecto(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "customer-api", cfg.App.Name)
	assert.True(t, cfg.App.SeedDemo)
	assert.Equal(t, config.StoreDriverPostgres, cfg.Store.Driver)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
	assert.False(t, cfg.Tracing.Enabled)
}

func TestLoad_VariablesDeEntorno(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("STORE_DRIVER", "MEMORY")
	t.Setenv("SEED_DEMO_DATA", "false")
	t.Setenv("TRACING_ENABLED", "true")
	t.Setenv("DB_PASSWORD", "p@ss:word")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, config.StoreDriverMemory, cfg.Store.Driver)
	assert.False(t, cfg.App.SeedDemo)
	assert.True(t, cfg.Tracing.Enabled)
	assert.Contains(t, cfg.DB.DSN(), "p%40ss%3Aword", "la contraseña debe ir codificada en el DSN")
}

func TestLoad_DriverInvalido(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("STORE_DRIVER", "mongo")

	_, err := config.Load()
	assert.Error(t, err)
}

func TestDBConfig_ConnectionStringPrefiereDatabaseURL(t *testing.T) {
	c := config.DBConfig{DatabaseURL: "postgres://u:p@db:5432/x", Host: "otro"}
	assert.Equal(t, "postgres://u:p@db:5432/x", c.ConnectionString())
}
