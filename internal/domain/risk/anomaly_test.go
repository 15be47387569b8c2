package risk_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Trazabilidad-api/internal/domain/entity"
	"github.com/jhoicas/Trazabilidad-api/internal/domain/risk"
)

func TestFindAnomalies_SinEventosCerrados(t *testing.T) {
	engine := risk.NewDefaultEngine()

	report := engine.FindAnomalies(nil)
	assert.NotNil(t, report.Parts)
	assert.Empty(t, report.Parts)

	report = engine.FindAnomalies([]entity.ProcessEvent{open("p1"), open("p2")})
	assert.Empty(t, report.Parts)
	assert.Zero(t, report.MeanSeconds)
}

func TestFindAnomalies_DuracionesCero(t *testing.T) {
	report := risk.NewDefaultEngine().FindAnomalies([]entity.ProcessEvent{
		closed("p1", 0, entity.OutcomeOK),
	})
	assert.Empty(t, report.Parts)
}

// Eventos cerrados: 100, 100, 100, 100 (p1..p4) y p5 con 3 eventos de 100 (=300).
// Promedio por evento = 100; umbral = 150; p5 (300) es anomalía con 300 %.
func TestFindAnomalies_MarcaPiezaSobreUmbral(t *testing.T) {
	events := []entity.ProcessEvent{
		closed("p1", 100, entity.OutcomeOK),
		closed("p2", 100, entity.OutcomeOK),
		closed("p3", 100, entity.OutcomeOK),
		closed("p4", 100, entity.OutcomeOK),
		closed("p5", 100, entity.OutcomeOK),
		closed("p5", 100, entity.OutcomeOK),
		closed("p5", 100, entity.OutcomeRework),
		open("p5"),
	}

	report := risk.NewDefaultEngine().FindAnomalies(events)

	assert.Equal(t, 100.0, report.MeanSeconds)
	assert.Equal(t, 150.0, report.ThresholdSeconds)
	require.Len(t, report.Parts, 1)
	assert.Equal(t, "p5", report.Parts[0].PartID)
	assert.Equal(t, 300.0, report.Parts[0].TotalSeconds)
	assert.Equal(t, "300", report.Parts[0].PercentOverMean.String())
}

func TestFindAnomalies_PorcentajeRedondeadoYOrden(t *testing.T) {
	// Promedio = (10 + 10 + 10 + 40 + 50) / 5 = 24; umbral = 36.
	events := []entity.ProcessEvent{
		closed("a", 10, entity.OutcomeOK),
		closed("b", 10, entity.OutcomeOK),
		closed("c", 10, entity.OutcomeOK),
		closed("d", 40, entity.OutcomeOK),
		closed("e", 50, entity.OutcomeOK),
	}

	report := risk.NewDefaultEngine().FindAnomalies(events)

	require.Len(t, report.Parts, 2)
	assert.Equal(t, "e", report.Parts[0].PartID, "mayor tiempo primero")
	assert.Equal(t, "208.33", report.Parts[0].PercentOverMean.String())
	assert.Equal(t, "d", report.Parts[1].PartID)
	assert.Equal(t, "166.67", report.Parts[1].PercentOverMean.String())
}

func TestFindAnomalies_IgualAlUmbralNoEsAnomalia(t *testing.T) {
	// Promedio = (60 + 30 + 30 + 30 + 30 + 60)/6 = 40 -> umbral 60; "x" suma 60 exacto.
	events := []entity.ProcessEvent{
		closed("x", 60, entity.OutcomeOK),
		closed("y", 30, entity.OutcomeOK),
		closed("y", 30, entity.OutcomeOK),
		closed("z", 30, entity.OutcomeOK),
		closed("z", 30, entity.OutcomeOK),
		closed("w", 60, entity.OutcomeOK),
	}

	report := risk.NewDefaultEngine().FindAnomalies(events)
	assert.Equal(t, 60.0, report.ThresholdSeconds)
	assert.Empty(t, report.Parts)
}
