package risk

import (
	"github.com/jhoicas/Trazabilidad-api/internal/application/dto"
	"github.com/jhoicas/Trazabilidad-api/internal/domain/risk"
)

// ToManualInput adapta el request HTTP/CLI a la entrada del motor.
func ToManualInput(in dto.ManualRiskRequest) risk.ManualInput {
	return risk.ManualInput{
		TotalSeconds: in.TotalSeconds,
		ReworkCount:  in.ReworkCount,
		ScrapCount:   in.ScrapCount,
		StationName:  in.StationName,
		PartType:     in.PartType,
	}
}

// ToAssessmentResponse mapea una evaluación a DTO. partID vacío para evaluaciones manuales.
func ToAssessmentResponse(partID string, a risk.Assessment) dto.RiskAssessmentResponse {
	reasons := make([]string, len(a.Reasons))
	copy(reasons, a.Reasons)
	return dto.RiskAssessmentResponse{
		PartID:  partID,
		Score:   a.Score,
		Level:   string(a.Level),
		Reasons: reasons,
		Details: dto.RiskDetailsResponse{
			TotalSeconds: a.Details.TotalSeconds,
			TotalMinutes: a.Details.TotalMinutes,
			TotalEvents:  a.Details.TotalEvents,
			ScrapCount:   a.Details.ScrapCount,
			ReworkCount:  a.Details.ReworkCount,
		},
		RulesVersion: a.RulesVersion,
	}
}

// ToAnomalyReportResponse mapea el reporte de anomalías a DTO (lista nunca nil).
func ToAnomalyReportResponse(r risk.AnomalyReport) dto.AnomalyReportResponse {
	out := dto.AnomalyReportResponse{
		MeanSeconds:      r.MeanSeconds,
		ThresholdSeconds: r.ThresholdSeconds,
		Multiplier:       r.Multiplier,
		Anomalies:        make([]dto.AnomalyResponse, 0, len(r.Parts)),
	}
	for _, p := range r.Parts {
		out.Anomalies = append(out.Anomalies, dto.AnomalyResponse{
			PartID:          p.PartID,
			TotalSeconds:    p.TotalSeconds,
			PercentOverMean: p.PercentOverMean,
		})
	}
	return out
}
