// Package pdf genera el reporte de trazabilidad de una pieza con Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Serial + tipo + lote   │  Estado + fecha            │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RIESGO: score | nivel | razones | agregados                 │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Estación | Entrada | Salida | Duración | Resultado   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: QR con el serial + versión de reglas                │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/Trazabilidad-api/internal/application/report"
	"github.com/jhoicas/Trazabilidad-api/internal/domain/risk"
)

const timeLayout = "02/01/2006 15:04"

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorHigh    = &props.Color{Red: 178, Green: 34, Blue: 34}
	colorMedium  = &props.Color{Red: 204, Green: 122, Blue: 0}
	colorLow     = &props.Color{Red: 34, Green: 120, Blue: 60}
)

var _ report.PartReportGenerator = (*MarotoReportGenerator)(nil)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReportGenerator implementa report.PartReportGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GeneratePartReport genera el PDF y devuelve sus bytes.
func (g *MarotoReportGenerator) GeneratePartReport(_ context.Context, r report.PartReport) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de trazabilidad "+r.Part.Serial, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(r))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(riskRows(r.Assessment)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	m.AddRows(eventRows(r.Events)...)

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(r))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: serial, tipo y lote (izq); estado y fecha de emisión (der).
func headerRow(r report.PartReport) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New("Pieza "+r.Part.Serial, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("Tipo: %s   |   Lote: %s", r.Part.Type, nonEmpty(r.Part.Lot, "-")), props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("REPORTE DE TRAZABILIDAD", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: colorPrimary, Top: 1,
			}),
			text.New("Estado: "+r.Part.Status, props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: 7,
			}),
			text.New("Emitido: "+r.GeneratedAt.Format(timeLayout), props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// riskRows: score y nivel destacados, razones y agregados.
func riskRows(a risk.Assessment) []core.Row {
	return []core.Row{
		row.New(14).Add(
			col.New(4).Add(
				text.New("RIESGO", props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1}),
				text.New(fmt.Sprintf("%.2f  %s", a.Score, a.Level), props.Text{
					Style: fontstyle.Bold, Size: 14, Top: 6, Color: levelColor(a.Level),
				}),
			),
			col.New(8).Add(
				text.New("Razones", props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1}),
				text.New(strings.Join(a.Reasons, "; "), props.Text{Size: 9, Top: 7}),
			),
		),
		row.New(7).Add(col.New(12).Add(
			text.New(fmt.Sprintf(
				"Tiempo total: %.2f min   |   Eventos: %d   |   Scrap: %d   |   Retrabajos: %d",
				a.Details.TotalMinutes, a.Details.TotalEvents, a.Details.ScrapCount, a.Details.ReworkCount,
			), props.Text{Size: 8, Top: 1, Color: colorGray}),
		)),
	}
}

// tableHeaderRow: cabecera del historial de eventos.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Estación", 3, align.Left),
		h("Entrada", 3, align.Left),
		h("Salida", 3, align.Left),
		h("Duración (s)", 2, align.Right),
		h("Resultado", 1, align.Center),
	)
}

// eventRows: una fila por evento, en orden de entrada.
func eventRows(events []report.EventLine) []core.Row {
	if len(events) == 0 {
		return []core.Row{row.New(7).Add(col.New(12).Add(
			text.New("Sin eventos registrados.", props.Text{Size: 8, Top: 1, Color: colorGray}),
		))}
	}
	cell := func(s string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(s, props.Text{Size: 8, Align: a, Top: 1, Left: 1, Right: 1}))
	}
	result := make([]core.Row, 0, len(events))
	for _, ev := range events {
		exit := "en proceso"
		if ev.ExitTime != nil {
			exit = ev.ExitTime.Format(timeLayout)
		}
		result = append(result, row.New(7).Add(
			cell(ev.StationName, 3, align.Left),
			cell(ev.EntryTime.Format(timeLayout), 3, align.Left),
			cell(exit, 3, align.Left),
			cell(fmt.Sprintf("%.0f", ev.Duration().Seconds()), 2, align.Right),
			cell(nonEmpty(ev.Outcome, "-"), 1, align.Center),
		))
	}
	return result
}

// footerRow: QR con el serial para rastrear la pieza física.
func footerRow(r report.PartReport) core.Row {
	return row.New(40).Add(
		col.New(3).Add(code.NewQr(r.Part.Serial, props.Rect{Percent: 95, Center: true})),
		col.New(9).Add(
			text.New("Escanea el código QR para identificar la pieza "+r.Part.Serial+".", props.Text{
				Size: 8, Top: 4, Left: 3, Color: colorGray,
			}),
			text.New("Reglas de riesgo "+r.Assessment.RulesVersion+". Evaluación orientativa, no vinculante.", props.Text{
				Size: 7, Top: 14, Left: 3, Color: colorGray,
			}),
		),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func levelColor(l risk.Level) *props.Color {
	switch l {
	case risk.LevelHigh:
		return colorHigh
	case risk.LevelMedium:
		return colorMedium
	default:
		return colorLow
	}
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
