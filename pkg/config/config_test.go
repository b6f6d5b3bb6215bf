package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unapec/cafeteria-admin/pkg/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "cafeteria-admin", cfg.App.Name)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "./data", cfg.Storage.Path)
	assert.False(t, cfg.Storage.InMemory)

	// Los interruptores del motor arrancan en el comportamiento heredado.
	assert.False(t, cfg.Inventario.StockStrict)
	assert.False(t, cfg.Inventario.CascadeRestore)
}

func TestLoad_EnvTienePrioridad(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("STORAGE_PATH", "/var/lib/cafeteria")
	t.Setenv("STOCK_STRICT", "true")
	t.Setenv("CASCADE_RESTORE", "true")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.App.Env)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "/var/lib/cafeteria", cfg.Storage.Path)
	assert.True(t, cfg.Inventario.StockStrict)
	assert.True(t, cfg.Inventario.CascadeRestore)
}
