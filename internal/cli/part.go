package cli

import (
	"github.com/spf13/cobra"

	apprisk "github.com/jhoicas/Trazabilidad-api/internal/application/risk"
)

var partCmd = &cobra.Command{
	Use:   "part <part-id>",
	Short: "Evalúa el riesgo de una pieza almacenada",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		svc, pool, err := riskServiceFromDB(ctx)
		if err != nil {
			return err
		}
		defer pool.Close()

		a, err := svc.ScorePart(ctx, args[0])
		if err != nil {
			return err
		}
		return printAssessment(cmd.OutOrStdout(), apprisk.ToAssessmentResponse(args[0], *a))
	},
}

func init() {
	rootCmd.AddCommand(partCmd)
}
