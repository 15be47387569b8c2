package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Trazabilidad-api/internal/application/usecase"
	"github.com/jhoicas/Trazabilidad-api/internal/domain"
	"github.com/jhoicas/Trazabilidad-api/internal/domain/repository"
)

type fakeProductionRepo struct {
	counts     map[string]int
	throughput []repository.DailyThroughput
	cycle      []repository.StationCycleTime
	scrap      []repository.PartTypeScrap
	gotFrom    time.Time
	gotTo      time.Time
}

func (f *fakeProductionRepo) CountPartsByStatus(context.Context) (map[string]int, error) {
	return f.counts, nil
}

func (f *fakeProductionRepo) Throughput(_ context.Context, from, to time.Time) ([]repository.DailyThroughput, error) {
	f.gotFrom, f.gotTo = from, to
	return f.throughput, nil
}

func (f *fakeProductionRepo) StationCycleTimes(context.Context) ([]repository.StationCycleTime, error) {
	return f.cycle, nil
}

func (f *fakeProductionRepo) ScrapByPartType(context.Context) ([]repository.PartTypeScrap, error) {
	return f.scrap, nil
}

func TestPartsByStatus_IncluyeEstadosEnCero(t *testing.T) {
	uc := usecase.NewProductionUseCase(&fakeProductionRepo{counts: map[string]int{"OK": 3, "SCRAP": 1}})

	out, err := uc.PartsByStatus(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 4, out.Total)
	assert.Equal(t, 0, out.Counts["IN_PROCESS"])
	assert.Equal(t, 3, out.Counts["OK"])
	assert.Len(t, out.Counts, 4)
}

func TestThroughput_RangoYTotales(t *testing.T) {
	day := time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC)
	repo := &fakeProductionRepo{throughput: []repository.DailyThroughput{
		{Day: day, Parts: 4},
		{Day: day.AddDate(0, 0, 1), Parts: 6},
	}}
	uc := usecase.NewProductionUseCase(repo)

	out, err := uc.Throughput(context.Background(), "2024-05-01", "2024-05-07")
	require.NoError(t, err)
	assert.Equal(t, 10, out.Total)
	assert.Equal(t, "2024-05-02", out.Days[0].Date)
	assert.Equal(t, time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), repo.gotFrom)
	assert.Equal(t, time.Date(2024, 5, 7, 0, 0, 0, 0, time.UTC), repo.gotTo)
}

func TestThroughput_FechasInvalidas(t *testing.T) {
	uc := usecase.NewProductionUseCase(&fakeProductionRepo{})

	_, err := uc.Throughput(context.Background(), "2024/05/01", "2024-05-07")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Throughput(context.Background(), "2024-05-07", "2024-05-01")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestScrapRate_CuatroDecimales(t *testing.T) {
	uc := usecase.NewProductionUseCase(&fakeProductionRepo{scrap: []repository.PartTypeScrap{
		{PartType: "EJE", Total: 3, Scrap: 1},
		{PartType: "BRIDA", Total: 0, Scrap: 0},
	}})

	out, err := uc.ScrapRate(context.Background())
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.True(t, decimal.RequireFromString("0.3333").Equal(out[0].Rate))
	assert.True(t, out[1].Rate.IsZero())
}

func TestStationCycleTimes_Redondea(t *testing.T) {
	uc := usecase.NewProductionUseCase(&fakeProductionRepo{cycle: []repository.StationCycleTime{
		{StationID: "s1", StationName: "Torno", AvgSeconds: decimal.RequireFromString("123.456"), Events: 3},
	}})

	out, err := uc.StationCycleTimes(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "123.46", out[0].AvgSeconds.String())
}
