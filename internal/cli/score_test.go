package cli

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Trazabilidad-api/internal/application/dto"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		jsonOutput = false
		scoreInput = dto.ManualRiskRequest{}
		rootCmd.SetArgs(nil)
	})
	err := rootCmd.Execute()
	return out.String(), err
}

func TestScore_InspeccionFinalJSON(t *testing.T) {
	out, err := runCLI(t, "score", "--seconds", "650", "--rework", "1", "--station", "INSPECCION FINAL", "--json")
	require.NoError(t, err)

	var a dto.RiskAssessmentResponse
	require.NoError(t, json.Unmarshal([]byte(out), &a))
	assert.InDelta(t, 0.4, a.Score, 1e-9)
	assert.Equal(t, "MEDIUM", a.Level)
	assert.Len(t, a.Reasons, 3)
}

func TestScore_SalidaTexto(t *testing.T) {
	out, err := runCLI(t, "score", "--seconds", "950", "--scrap", "1", "--json=false")
	require.NoError(t, err)
	assert.Contains(t, out, "Nivel:     HIGH")
	assert.Contains(t, out, "scrap history")
}

func TestScore_SegundosNegativos(t *testing.T) {
	_, err := runCLI(t, "score", "--seconds=-5")
	assert.Error(t, err)
}

func TestPart_RequiereID(t *testing.T) {
	_, err := runCLI(t, "part")
	assert.Error(t, err)
}
