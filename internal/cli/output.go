package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/jhoicas/Trazabilidad-api/internal/application/dto"
)

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printAssessment(w io.Writer, a dto.RiskAssessmentResponse) error {
	if jsonOutput {
		return writeJSON(w, a)
	}
	if a.PartID != "" {
		fmt.Fprintf(w, "Pieza:     %s\n", a.PartID)
	}
	fmt.Fprintf(w, "Score:     %.2f\n", a.Score)
	fmt.Fprintf(w, "Nivel:     %s\n", a.Level)
	fmt.Fprintf(w, "Razones:   %s\n", strings.Join(a.Reasons, "; "))
	fmt.Fprintf(w, "Tiempo:    %.0f s (%.2f min)\n", a.Details.TotalSeconds, a.Details.TotalMinutes)
	fmt.Fprintf(w, "Eventos:   %d  scrap: %d  reprocesos: %d\n", a.Details.TotalEvents, a.Details.ScrapCount, a.Details.ReworkCount)
	fmt.Fprintf(w, "Reglas:    %s\n", a.RulesVersion)
	return nil
}

func printAnomalies(w io.Writer, r dto.AnomalyReportResponse) error {
	if jsonOutput {
		return writeJSON(w, r)
	}
	fmt.Fprintf(w, "Media: %.2f s  Umbral: %.2f s  (x%s)\n", r.MeanSeconds, r.ThresholdSeconds, r.Multiplier.String())
	if len(r.Anomalies) == 0 {
		fmt.Fprintln(w, "Sin piezas anómalas.")
		return nil
	}
	fmt.Fprintf(w, "%-38s %12s %10s\n", "PIEZA", "SEGUNDOS", "% SOBRE")
	for _, p := range r.Anomalies {
		fmt.Fprintf(w, "%-38s %12.0f %10s\n", p.PartID, p.TotalSeconds, p.PercentOverMean.StringFixed(1))
	}
	return nil
}
