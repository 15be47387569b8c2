package cli

import (
	"github.com/spf13/cobra"

	"github.com/jhoicas/Trazabilidad-api/internal/application/dto"
	apprisk "github.com/jhoicas/Trazabilidad-api/internal/application/risk"
	"github.com/jhoicas/Trazabilidad-api/pkg/config"
)

var scoreInput dto.ManualRiskRequest

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Evalúa riesgo a partir de agregados (sin base de datos)",
	Example: `  tracectl score --seconds 650 --rework 1 --station "INSPECCION FINAL"
  tracectl score --seconds 950 --scrap 1 --json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		engine, err := apprisk.EngineFromConfig(cfg.Risk)
		if err != nil {
			return err
		}
		svc := apprisk.NewService(engine, nil, nil, newLogger(), nil)
		a, err := svc.ScoreManual(apprisk.ToManualInput(scoreInput))
		if err != nil {
			return err
		}
		return printAssessment(cmd.OutOrStdout(), apprisk.ToAssessmentResponse("", a))
	},
}

func init() {
	f := scoreCmd.Flags()
	f.Float64Var(&scoreInput.TotalSeconds, "seconds", 0, "tiempo total en proceso (segundos)")
	f.IntVar(&scoreInput.ReworkCount, "rework", 0, "cantidad de reprocesos")
	f.IntVar(&scoreInput.ScrapCount, "scrap", 0, "cantidad de scrap")
	f.StringVar(&scoreInput.StationName, "station", "", "estación actual")
	f.StringVar(&scoreInput.PartType, "type", "", "tipo de pieza")
	rootCmd.AddCommand(scoreCmd)
}
