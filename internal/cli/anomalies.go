package cli

import (
	"github.com/spf13/cobra"

	apprisk "github.com/jhoicas/Trazabilidad-api/internal/application/risk"
)

var anomaliesCmd = &cobra.Command{
	Use:   "anomalies",
	Short: "Lista piezas con tiempo total por encima del umbral",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()
		svc, pool, err := riskServiceFromDB(ctx)
		if err != nil {
			return err
		}
		defer pool.Close()

		report, err := svc.FindAnomalies(ctx)
		if err != nil {
			return err
		}
		return printAnomalies(cmd.OutOrStdout(), apprisk.ToAnomalyReportResponse(report))
	},
}

func init() {
	rootCmd.AddCommand(anomaliesCmd)
}
