package report

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/Trazabilidad-api/internal/domain"
	"github.com/jhoicas/Trazabilidad-api/internal/domain/repository"
	"github.com/jhoicas/Trazabilidad-api/internal/domain/risk"
)

// PDFUseCase genera el reporte de trazabilidad (historial + riesgo) de una pieza.
type PDFUseCase struct {
	partRepo    repository.PartRepository
	stationRepo repository.StationRepository
	eventRepo   repository.ProcessEventRepository
	engine      *risk.Engine
	generator   PartReportGenerator
}

// NewPDFUseCase construye el caso de uso inyectando todas sus dependencias.
func NewPDFUseCase(
	partRepo repository.PartRepository,
	stationRepo repository.StationRepository,
	eventRepo repository.ProcessEventRepository,
	engine *risk.Engine,
	generator PartReportGenerator,
) *PDFUseCase {
	return &PDFUseCase{
		partRepo:    partRepo,
		stationRepo: stationRepo,
		eventRepo:   eventRepo,
		engine:      engine,
		generator:   generator,
	}
}

// DownloadPartReport devuelve los bytes del PDF y el nombre de archivo sugerido.
// Pieza inexistente -> domain.ErrNotFound.
func (uc *PDFUseCase) DownloadPartReport(ctx context.Context, partID string) (pdfBytes []byte, filename string, err error) {
	part, err := uc.partRepo.GetByID(ctx, partID)
	if err != nil {
		return nil, "", fmt.Errorf("report: obtener pieza: %w", err)
	}
	if part == nil {
		return nil, "", fmt.Errorf("%w: pieza %s", domain.ErrNotFound, partID)
	}

	events, err := uc.eventRepo.ListByPart(ctx, partID)
	if err != nil {
		return nil, "", fmt.Errorf("report: obtener eventos: %w", err)
	}

	names := make(map[string]string)
	lines := make([]EventLine, 0, len(events))
	for _, ev := range events {
		name, ok := names[ev.StationID]
		if !ok {
			name = ev.StationID // fallback
			if st, sErr := uc.stationRepo.GetByID(ctx, ev.StationID); sErr == nil && st != nil {
				name = st.Name
			}
			names[ev.StationID] = name
		}
		lines = append(lines, EventLine{ProcessEvent: ev, StationName: name})
	}

	pdfBytes, err = uc.generator.GeneratePartReport(ctx, PartReport{
		Part:        *part,
		Assessment:  uc.engine.Score(events),
		Events:      lines,
		GeneratedAt: time.Now().UTC(),
	})
	if err != nil {
		return nil, "", fmt.Errorf("report: generación fallida: %w", err)
	}
	return pdfBytes, fmt.Sprintf("trazabilidad_%s.pdf", part.Serial), nil
}
