package cli

import (
	"github.com/spf13/cobra"

	"github.com/jhoicas/Trazabilidad-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Trazabilidad-api/pkg/config"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate <up|down|status|version|redo|reset|up-to|down-to> [args]",
	Short: "Aplica las migraciones embebidas (goose)",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		return postgres.Migrate(cmd.Context(), cfg.DB.ConnectionString(), args[0], args[1:]...)
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
