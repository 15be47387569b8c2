package report_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Trazabilidad-api/internal/application/report"
	"github.com/jhoicas/Trazabilidad-api/internal/domain"
	"github.com/jhoicas/Trazabilidad-api/internal/domain/entity"
	"github.com/jhoicas/Trazabilidad-api/internal/domain/risk"
	"github.com/jhoicas/Trazabilidad-api/internal/infrastructure/memory"
)

type captureGenerator struct {
	got report.PartReport
}

func (g *captureGenerator) GeneratePartReport(_ context.Context, r report.PartReport) ([]byte, error) {
	g.got = r
	return []byte("%PDF-fake"), nil
}

func TestDownloadPartReport_EnriqueceEstacionesYRiesgo(t *testing.T) {
	ctx := context.Background()
	parts, stations, events := memory.NewPartStore(), memory.NewStationStore(), memory.NewEventStore()
	require.NoError(t, parts.Create(ctx, &entity.Part{ID: "p1", Serial: "SN-77", Type: "EJE"}))
	require.NoError(t, stations.Create(ctx, &entity.Station{ID: "s1", Name: "Torno"}))
	entry := time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)
	exit := entry.Add(700 * time.Second)
	require.NoError(t, events.Create(ctx, &entity.ProcessEvent{ID: "e1", PartID: "p1", StationID: "s1", EntryTime: entry, ExitTime: &exit, Outcome: "REWORK"}))
	require.NoError(t, events.Create(ctx, &entity.ProcessEvent{ID: "e2", PartID: "p1", StationID: "s-borrada", EntryTime: exit}))

	gen := &captureGenerator{}
	uc := report.NewPDFUseCase(parts, stations, events, risk.NewDefaultEngine(), gen)

	pdf, filename, err := uc.DownloadPartReport(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-fake"), pdf)
	assert.Equal(t, "trazabilidad_SN-77.pdf", filename)

	require.Len(t, gen.got.Events, 2)
	assert.Equal(t, "Torno", gen.got.Events[0].StationName)
	assert.Equal(t, "s-borrada", gen.got.Events[1].StationName)
	assert.InDelta(t, 0.3, gen.got.Assessment.Score, 1e-9)
	assert.Equal(t, risk.LevelLow, gen.got.Assessment.Level)
}

func TestDownloadPartReport_PiezaInexistente(t *testing.T) {
	uc := report.NewPDFUseCase(memory.NewPartStore(), memory.NewStationStore(), memory.NewEventStore(), risk.NewDefaultEngine(), &captureGenerator{})

	_, _, err := uc.DownloadPartReport(context.Background(), "nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
