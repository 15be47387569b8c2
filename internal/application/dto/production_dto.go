package dto

import "github.com/shopspring/decimal"

// PartsByStatusResponse conteo de piezas por estado.
type PartsByStatusResponse struct {
	Counts map[string]int `json:"counts"`
	Total  int            `json:"total"`
}

// ThroughputDay piezas OK cerradas en un día (YYYY-MM-DD).
type ThroughputDay struct {
	Date  string `json:"date"`
	Parts int    `json:"parts"`
}

// ThroughputResponse throughput diario en un rango inclusivo.
type ThroughputResponse struct {
	From  string          `json:"from"`
	To    string          `json:"to"`
	Days  []ThroughputDay `json:"days"`
	Total int             `json:"total"`
}

// StationCycleTimeResponse tiempo de ciclo promedio de una estación.
type StationCycleTimeResponse struct {
	StationID   string          `json:"station_id"`
	StationName string          `json:"station_name"`
	AvgSeconds  decimal.Decimal `json:"avg_seconds"`
	Events      int             `json:"events"`
}

// ScrapRateResponse tasa de scrap por tipo de pieza (4 decimales).
type ScrapRateResponse struct {
	PartType string          `json:"part_type"`
	Total    int             `json:"total"`
	Scrap    int             `json:"scrap"`
	Rate     decimal.Decimal `json:"rate"`
}
