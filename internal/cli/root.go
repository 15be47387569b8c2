// Package cli implementa tracectl: evaluación de riesgo y migraciones desde la terminal.
package cli

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	apprisk "github.com/jhoicas/Trazabilidad-api/internal/application/risk"
	"github.com/jhoicas/Trazabilidad-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Trazabilidad-api/pkg/config"
	"github.com/jhoicas/Trazabilidad-api/pkg/logger"
)

var (
	jsonOutput bool
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "tracectl",
	Short: "Herramienta de línea de comandos de trazabilidad",
	Long: `tracectl evalúa el riesgo de piezas y administra la base de datos.

El comando score funciona sin base de datos; part y anomalies leen el
historial de eventos desde PostgreSQL (DATABASE_URL o DB_*).`,
	Version:       "0.1.0",
	SilenceUsage:  true,
}

// Execute ejecuta el comando raíz.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "salida en JSON")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log de depuración")
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.SetVersionTemplate("tracectl version {{.Version}}\n")
}

// newLogger usa consola legible; silencioso salvo --verbose.
func newLogger() *logger.Logger {
	if !verbose {
		return logger.Nop()
	}
	return logger.New(logger.Config{Env: "development", Level: "debug", Out: rootCmd.ErrOrStderr()})
}

// riskServiceFromDB abre el pool y arma el servicio de riesgo. El caller cierra el pool.
func riskServiceFromDB(ctx context.Context) (*apprisk.Service, *pgxpool.Pool, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("cargar configuración: %w", err)
	}
	engine, err := apprisk.EngineFromConfig(cfg.Risk)
	if err != nil {
		return nil, nil, err
	}
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		return nil, nil, err
	}
	svc := apprisk.NewService(engine,
		postgres.NewPartRepository(pool),
		postgres.NewProcessEventRepository(pool),
		newLogger(), nil)
	return svc, pool, nil
}
