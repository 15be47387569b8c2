package pdf

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Trazabilidad-api/internal/application/report"
	"github.com/jhoicas/Trazabilidad-api/internal/domain/entity"
	"github.com/jhoicas/Trazabilidad-api/internal/domain/risk"
)

func TestGeneratePartReport_DevuelvePDF(t *testing.T) {
	entry := time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)
	exit := entry.Add(10 * time.Minute)
	r := report.PartReport{
		Part: entity.Part{ID: "p1", Serial: "SN-1", Type: "EJE", Status: entity.PartStatusOK},
		Assessment: risk.Assessment{
			Score: 0.2, Level: risk.LevelLow, Reasons: []string{risk.ReasonDurationMedium}, RulesVersion: "v1",
		},
		Events: []report.EventLine{
			{ProcessEvent: entity.ProcessEvent{ID: "e1", EntryTime: entry, ExitTime: &exit, Outcome: "OK"}, StationName: "Torno"},
			{ProcessEvent: entity.ProcessEvent{ID: "e2", EntryTime: exit}, StationName: "Inspección final"},
		},
		GeneratedAt: exit,
	}

	out, err := NewMarotoReportGenerator().GeneratePartReport(context.Background(), r)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestLevelColor(t *testing.T) {
	assert.Equal(t, colorHigh, levelColor(risk.LevelHigh))
	assert.Equal(t, colorMedium, levelColor(risk.LevelMedium))
	assert.Equal(t, colorLow, levelColor(risk.LevelLow))
}
