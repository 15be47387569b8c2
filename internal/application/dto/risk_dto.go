package dto

import "github.com/shopspring/decimal"

// ManualRiskRequest agregados enviados por el cliente para evaluación manual.
type ManualRiskRequest struct {
	TotalSeconds float64 `json:"total_seconds"`
	ReworkCount  int     `json:"rework_count"`
	ScrapCount   int     `json:"scrap_count"`
	StationName  string  `json:"station_name"`
	PartType     string  `json:"part_type"`
}

// RiskDetailsResponse agregados usados para calcular el score.
type RiskDetailsResponse struct {
	TotalSeconds float64 `json:"total_seconds"`
	TotalMinutes float64 `json:"total_minutes"`
	TotalEvents  int     `json:"total_events"`
	ScrapCount   int     `json:"scrap_count"`
	ReworkCount  int     `json:"rework_count"`
}

// RiskAssessmentResponse resultado de una evaluación de riesgo.
type RiskAssessmentResponse struct {
	PartID       string              `json:"part_id,omitempty"`
	Score        float64             `json:"score"`
	Level        string              `json:"level"`
	Reasons      []string            `json:"reasons"`
	Details      RiskDetailsResponse `json:"details"`
	RulesVersion string              `json:"rules_version"`
}

// AnomalyResponse pieza con tiempo total fuera de rango.
type AnomalyResponse struct {
	PartID          string          `json:"part_id"`
	TotalSeconds    float64         `json:"total_seconds"`
	PercentOverMean decimal.Decimal `json:"percent_over_mean"`
}

// AnomalyReportResponse salida del agregador de anomalías.
type AnomalyReportResponse struct {
	MeanSeconds      float64           `json:"mean_seconds"`
	ThresholdSeconds float64           `json:"threshold_seconds"`
	Multiplier       decimal.Decimal   `json:"multiplier"`
	Anomalies        []AnomalyResponse `json:"anomalies"`
}
