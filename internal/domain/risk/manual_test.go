package risk_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Trazabilidad-api/internal/domain"
	"github.com/jhoicas/Trazabilidad-api/internal/domain/risk"
)

// 650 s + 1 retrabajo + INSPECCION FINAL -> 0.2 + 0.1 + 0.1 = 0.4 MEDIUM.
func TestScoreManual_EjemploInspeccionFinal(t *testing.T) {
	a, err := risk.NewDefaultEngine().ScoreManual(risk.ManualInput{
		TotalSeconds: 650,
		ReworkCount:  1,
		StationName:  "INSPECCION FINAL",
		PartType:     "CARCASA",
	})
	require.NoError(t, err)

	assert.Equal(t, 0.4, a.Score)
	assert.Equal(t, risk.LevelMedium, a.Level)
	assert.Equal(t, []string{
		risk.ReasonDurationMedium,
		risk.ReasonReworkSingle,
		risk.ReasonFinalInspection,
	}, a.Reasons)
}

func TestScoreManual_TiempoNegativo(t *testing.T) {
	a, err := risk.NewDefaultEngine().ScoreManual(risk.ManualInput{TotalSeconds: -5})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, a.Reasons, "no debe devolverse score parcial")
}

func TestScoreManual_RetrabajosNegativos(t *testing.T) {
	_, err := risk.NewDefaultEngine().ScoreManual(risk.ManualInput{TotalSeconds: 10, ReworkCount: -1})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = risk.NewDefaultEngine().ScoreManual(risk.ManualInput{TotalSeconds: 10, ScrapCount: -1})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// 0.4 + 0.4 + 0.2 + 0.1 = 1.1 se recorta a 1.0.
func TestScoreManual_RecortaAUno(t *testing.T) {
	a, err := risk.NewDefaultEngine().ScoreManual(risk.ManualInput{
		TotalSeconds: 2000,
		ReworkCount:  3,
		ScrapCount:   1,
		StationName:  "inspeccion final",
	})
	require.NoError(t, err)

	assert.Equal(t, 1.0, a.Score)
	assert.Equal(t, risk.LevelHigh, a.Level)
	assert.Len(t, a.Reasons, 4)
}

func TestScoreManual_EstacionSinAcentosNiMayusculas(t *testing.T) {
	engine := risk.NewDefaultEngine()
	for _, station := range []string{"Inspección Final", "  inspeccion final", "INSPECCIÓN DIMENSIONAL"} {
		a, err := engine.ScoreManual(risk.ManualInput{StationName: station})
		require.NoError(t, err)
		assert.Equal(t, 0.1, a.Score, station)
		assert.Equal(t, []string{risk.ReasonFinalInspection}, a.Reasons, station)
	}

	a, err := engine.ScoreManual(risk.ManualInput{StationName: "ENSAMBLE"})
	require.NoError(t, err)
	assert.Equal(t, []string{risk.ReasonNoRiskFactors}, a.Reasons)
	assert.Equal(t, risk.LevelLow, a.Level)
}
