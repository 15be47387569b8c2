package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// DailyThroughput piezas OK cerradas en un día.
type DailyThroughput struct {
	Day   time.Time
	Parts int
}

// StationCycleTime tiempo de ciclo promedio (segundos) por estación.
type StationCycleTime struct {
	StationID   string
	StationName string
	AvgSeconds  decimal.Decimal
	Events      int
}

// PartTypeScrap conteos por tipo de pieza para la tasa de scrap.
type PartTypeScrap struct {
	PartType string
	Total    int
	Scrap    int
}

// ProductionRepository consultas de solo lectura para métricas de producción.
type ProductionRepository interface {
	CountPartsByStatus(ctx context.Context) (map[string]int, error)
	// Throughput agrupa eventos OK cerrados por día de salida, [from, to] inclusivo.
	Throughput(ctx context.Context, from, to time.Time) ([]DailyThroughput, error)
	StationCycleTimes(ctx context.Context) ([]StationCycleTime, error)
	ScrapByPartType(ctx context.Context) ([]PartTypeScrap, error)
}
