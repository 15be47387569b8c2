package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Trazabilidad-api/pkg/config"
)

func TestLoad_ValoresPorDefecto(t *testing.T) {
	t.Setenv("APP_ENV", "test")
	t.Setenv("JWT_SECRET", "secreto")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "test", cfg.App.Env)
	assert.Equal(t, "secreto", cfg.JWT.Secret)
	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
	assert.Zero(t, cfg.Risk.AnomalyMultiplier, "sin override el multiplicador queda en cero")
}

func TestLoad_OverridesDeRiesgo(t *testing.T) {
	t.Setenv("RISK_RULES_VERSION", "planta-2")
	t.Setenv("RISK_DURATION_HIGH_SECONDS", "1200")
	t.Setenv("RISK_ANOMALY_MULTIPLIER", "2.5")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "planta-2", cfg.Risk.RulesVersion)
	assert.Equal(t, 1200.0, cfg.Risk.DurationHighSeconds)
	assert.Equal(t, 2.5, cfg.Risk.AnomalyMultiplier)
}

func TestLoad_ExpiracionInvalida(t *testing.T) {
	t.Setenv("JWT_EXPIRATION_MINUTES", "0")

	_, err := config.Load()
	assert.Error(t, err)
}

func TestDBConfig_ConnectionString(t *testing.T) {
	c := config.DBConfig{Host: "db", Port: 5432, User: "u", Password: "p@ss", DBName: "traza", SSLMode: "disable"}
	assert.Equal(t, "postgres://u:p%40ss@db:5432/traza?sslmode=disable", c.ConnectionString())

	c.DatabaseURL = "postgres://otra"
	assert.Equal(t, "postgres://otra", c.ConnectionString())
}
