package report

import (
	"context"
	"time"

	"github.com/jhoicas/Trazabilidad-api/internal/domain/entity"
	"github.com/jhoicas/Trazabilidad-api/internal/domain/risk"
)

// EventLine evento del historial enriquecido con el nombre de la estación.
type EventLine struct {
	entity.ProcessEvent
	StationName string
}

// PartReport datos completos del reporte de trazabilidad de una pieza.
type PartReport struct {
	Part        entity.Part
	Assessment  risk.Assessment
	Events      []EventLine
	GeneratedAt time.Time
}

// PartReportGenerator genera el documento (PDF) del reporte.
type PartReportGenerator interface {
	GeneratePartReport(ctx context.Context, r PartReport) ([]byte, error)
}
