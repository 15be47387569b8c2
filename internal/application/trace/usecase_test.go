package trace_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Trazabilidad-api/internal/application/dto"
	"github.com/jhoicas/Trazabilidad-api/internal/application/trace"
	"github.com/jhoicas/Trazabilidad-api/internal/domain"
	"github.com/jhoicas/Trazabilidad-api/internal/domain/entity"
	"github.com/jhoicas/Trazabilidad-api/internal/infrastructure/memory"
)

var now = time.Date(2024, 5, 10, 9, 0, 0, 0, time.UTC)

type fixture struct {
	uc       *trace.EventUseCase
	parts    *memory.PartStore
	stations *memory.StationStore
	events   *memory.EventStore
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	parts := memory.NewPartStore()
	stations := memory.NewStationStore()
	events := memory.NewEventStore()
	ctx := context.Background()
	require.NoError(t, parts.Create(ctx, &entity.Part{ID: "p1", Serial: "SN-1", Type: "EJE", Status: entity.PartStatusInProcess, CreatedAt: now}))
	require.NoError(t, stations.Create(ctx, &entity.Station{ID: "s1", Name: "Torno", Type: "MECANIZADO"}))

	uc := trace.NewEventUseCase(memory.NewTxRunner(events, parts), parts, stations, events).
		WithClock(func() time.Time { return now })
	return &fixture{uc: uc, parts: parts, stations: stations, events: events}
}

// ─── RegisterEvent ──────────────────────────────────────────────────────────

func TestRegisterEvent_SinResultado_QuedaAbierto(t *testing.T) {
	f := newFixture(t)

	ev, err := f.uc.RegisterEvent(context.Background(), "op-1", dto.RegisterEventRequest{PartID: "p1", StationID: "s1"})
	require.NoError(t, err)

	assert.Equal(t, now, ev.EntryTime)
	assert.Nil(t, ev.ExitTime)
	assert.Empty(t, ev.Outcome)
	assert.Equal(t, "op-1", ev.OperatorID)

	p, _ := f.parts.GetByID(context.Background(), "p1")
	assert.Equal(t, entity.PartStatusInProcess, p.Status, "la entrada no cambia el estado")
}

func TestRegisterEvent_ConResultado_CierraYActualizaPieza(t *testing.T) {
	f := newFixture(t)

	ev, err := f.uc.RegisterEvent(context.Background(), "op-1", dto.RegisterEventRequest{
		PartID: "p1", StationID: "s1", Outcome: "retrabajo",
	})
	require.NoError(t, err)

	require.NotNil(t, ev.ExitTime)
	assert.Equal(t, now, *ev.ExitTime)
	assert.Equal(t, entity.OutcomeRework, ev.Outcome)

	p, _ := f.parts.GetByID(context.Background(), "p1")
	assert.Equal(t, entity.PartStatusRework, p.Status)
}

func TestRegisterEvent_Errores(t *testing.T) {
	past := now.Add(-time.Minute)
	tests := []struct {
		name string
		in   dto.RegisterEventRequest
		want error
	}{
		{"pieza inexistente", dto.RegisterEventRequest{PartID: "x", StationID: "s1"}, domain.ErrNotFound},
		{"estación inexistente", dto.RegisterEventRequest{PartID: "p1", StationID: "x"}, domain.ErrNotFound},
		{"resultado inválido", dto.RegisterEventRequest{PartID: "p1", StationID: "s1", Outcome: "MAL"}, domain.ErrInvalidInput},
		{"salida sin resultado", dto.RegisterEventRequest{PartID: "p1", StationID: "s1", ExitTime: &past}, domain.ErrInvalidInput},
		{"salida antes de entrada", dto.RegisterEventRequest{PartID: "p1", StationID: "s1", Outcome: "OK", ExitTime: &past}, domain.ErrInvalidInput},
		{"campos vacíos", dto.RegisterEventRequest{}, domain.ErrInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			_, err := f.uc.RegisterEvent(context.Background(), "op-1", tt.in)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

// ─── CloseEvent ─────────────────────────────────────────────────────────────

func TestCloseEvent_FijaSalidaYEstado(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	opened, err := f.uc.RegisterEvent(ctx, "op-1", dto.RegisterEventRequest{PartID: "p1", StationID: "s1"})
	require.NoError(t, err)

	exit := now.Add(950 * time.Second)
	closed, err := f.uc.CloseEvent(ctx, opened.ID, dto.CloseEventRequest{Outcome: "SCRAP", ExitTime: &exit, Notes: "grieta"})
	require.NoError(t, err)

	assert.Equal(t, entity.OutcomeScrap, closed.Outcome)
	assert.Equal(t, 950.0, closed.DurationSeconds)
	assert.Equal(t, "grieta", closed.Notes)

	p, _ := f.parts.GetByID(ctx, "p1")
	assert.Equal(t, entity.PartStatusScrap, p.Status)
}

func TestCloseEvent_YaCerrado_Conflicto(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	ev, err := f.uc.RegisterEvent(ctx, "op-1", dto.RegisterEventRequest{PartID: "p1", StationID: "s1", Outcome: "OK"})
	require.NoError(t, err)

	_, err = f.uc.CloseEvent(ctx, ev.ID, dto.CloseEventRequest{Outcome: "SCRAP"})
	assert.ErrorIs(t, err, domain.ErrConflict)

	p, _ := f.parts.GetByID(ctx, "p1")
	assert.Equal(t, entity.PartStatusOK, p.Status)
}

func TestCloseEvent_Errores(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	opened, err := f.uc.RegisterEvent(ctx, "op-1", dto.RegisterEventRequest{PartID: "p1", StationID: "s1"})
	require.NoError(t, err)

	_, err = f.uc.CloseEvent(ctx, "nope", dto.CloseEventRequest{Outcome: "OK"})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = f.uc.CloseEvent(ctx, opened.ID, dto.CloseEventRequest{Outcome: ""})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	before := now.Add(-time.Second)
	_, err = f.uc.CloseEvent(ctx, opened.ID, dto.CloseEventRequest{Outcome: "OK", ExitTime: &before})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ─── ListPartHistory ────────────────────────────────────────────────────────

func TestListPartHistory_OrdenPorEntrada(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	later := now.Add(time.Hour)
	exit := later.Add(time.Minute)
	require.NoError(t, f.events.Create(ctx, &entity.ProcessEvent{ID: "e2", PartID: "p1", StationID: "s1", EntryTime: later, ExitTime: &exit, Outcome: "OK"}))
	require.NoError(t, f.events.Create(ctx, &entity.ProcessEvent{ID: "e1", PartID: "p1", StationID: "s1", EntryTime: now}))

	history, err := f.uc.ListPartHistory(ctx, "p1")
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, "e1", history[0].ID)
	assert.Equal(t, "e2", history[1].ID)
	assert.Equal(t, 60.0, history[1].DurationSeconds)
}

func TestListPartHistory_PiezaSinEventos_ListaVacia(t *testing.T) {
	f := newFixture(t)

	history, err := f.uc.ListPartHistory(context.Background(), "p1")
	require.NoError(t, err)
	assert.NotNil(t, history)
	assert.Empty(t, history)
}

func TestListPartHistory_PiezaInexistente(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.ListPartHistory(context.Background(), "nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
