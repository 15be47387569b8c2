package usecase

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Trazabilidad-api/internal/application/dto"
	"github.com/jhoicas/Trazabilidad-api/internal/domain"
	"github.com/jhoicas/Trazabilidad-api/internal/domain/entity"
	"github.com/jhoicas/Trazabilidad-api/internal/domain/repository"
)

// ProductionUseCase métricas de producción de solo lectura.
type ProductionUseCase struct {
	repo repository.ProductionRepository
}

// NewProductionUseCase construye el caso de uso.
func NewProductionUseCase(repo repository.ProductionRepository) *ProductionUseCase {
	return &ProductionUseCase{repo: repo}
}

// PartsByStatus cuenta piezas por estado; los cuatro estados siempre aparecen.
func (uc *ProductionUseCase) PartsByStatus(ctx context.Context) (*dto.PartsByStatusResponse, error) {
	counts, err := uc.repo.CountPartsByStatus(ctx)
	if err != nil {
		return nil, err
	}
	out := &dto.PartsByStatusResponse{Counts: map[string]int{
		entity.PartStatusInProcess: 0,
		entity.PartStatusOK:        0,
		entity.PartStatusScrap:     0,
		entity.PartStatusRework:    0,
	}}
	for status, n := range counts {
		out.Counts[status] += n
		out.Total += n
	}
	return out, nil
}

// Throughput piezas OK por día entre from y to (YYYY-MM-DD, inclusivo).
func (uc *ProductionUseCase) Throughput(ctx context.Context, from, to string) (*dto.ThroughputResponse, error) {
	fromDate, err := ParseDate(from)
	if err != nil {
		return nil, err
	}
	toDate, err := ParseDate(to)
	if err != nil {
		return nil, err
	}
	if toDate.Before(fromDate) {
		return nil, fmt.Errorf("%w: 'to' anterior a 'from'", domain.ErrInvalidInput)
	}
	rows, err := uc.repo.Throughput(ctx, fromDate, toDate)
	if err != nil {
		return nil, err
	}
	out := &dto.ThroughputResponse{
		From: fromDate.Format(DateLayout),
		To:   toDate.Format(DateLayout),
		Days: make([]dto.ThroughputDay, 0, len(rows)),
	}
	for _, r := range rows {
		out.Days = append(out.Days, dto.ThroughputDay{Date: r.Day.Format(DateLayout), Parts: r.Parts})
		out.Total += r.Parts
	}
	return out, nil
}

// StationCycleTimes tiempo de ciclo promedio por estación (eventos cerrados).
func (uc *ProductionUseCase) StationCycleTimes(ctx context.Context) ([]dto.StationCycleTimeResponse, error) {
	rows, err := uc.repo.StationCycleTimes(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.StationCycleTimeResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.StationCycleTimeResponse{
			StationID:   r.StationID,
			StationName: r.StationName,
			AvgSeconds:  r.AvgSeconds.Round(2),
			Events:      r.Events,
		})
	}
	return out, nil
}

// ScrapRate tasa SCRAP/total por tipo de pieza, 4 decimales; 0 si no hay piezas.
func (uc *ProductionUseCase) ScrapRate(ctx context.Context) ([]dto.ScrapRateResponse, error) {
	rows, err := uc.repo.ScrapByPartType(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ScrapRateResponse, 0, len(rows))
	for _, r := range rows {
		rate := decimal.Zero
		if r.Total > 0 {
			rate = decimal.NewFromInt(int64(r.Scrap)).Div(decimal.NewFromInt(int64(r.Total))).Round(4)
		}
		out = append(out, dto.ScrapRateResponse{
			PartType: r.PartType,
			Total:    r.Total,
			Scrap:    r.Scrap,
			Rate:     rate,
		})
	}
	return out, nil
}
