package risk

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Trazabilidad-api/internal/domain/entity"
)

// Anomaly pieza cuyo tiempo total supera multiplicador × promedio poblacional.
type Anomaly struct {
	PartID          string
	TotalSeconds    float64
	PercentOverMean decimal.Decimal // total / promedio × 100, 2 decimales
}

// AnomalyReport resultado del agregador. Parts nunca es nil.
type AnomalyReport struct {
	MeanSeconds      float64
	ThresholdSeconds float64
	Multiplier       decimal.Decimal
	Parts            []Anomaly
}

// FindAnomalies calcula el tiempo de ciclo promedio de todos los eventos cerrados y
// marca las piezas cuyo total supera AnomalyMultiplier × promedio.
// Sin eventos cerrados (promedio indefinido o cero) devuelve un reporte vacío.
// El multiplicador es global: no distingue estación ni tipo de pieza.
func (e *Engine) FindAnomalies(events []entity.ProcessEvent) AnomalyReport {
	report := AnomalyReport{Multiplier: e.rules.AnomalyMultiplier, Parts: []Anomaly{}}

	sum := decimal.Zero
	closed := 0
	totals := make(map[string]decimal.Decimal)
	for i := range events {
		ev := &events[i]
		if !ev.Closed() {
			continue
		}
		d := seconds(ev.Duration())
		sum = sum.Add(d)
		closed++
		totals[ev.PartID] = totals[ev.PartID].Add(d)
	}
	if closed == 0 || !sum.IsPositive() {
		return report
	}

	mean := sum.Div(decimal.NewFromInt(int64(closed)))
	threshold := mean.Mul(e.rules.AnomalyMultiplier)
	report.MeanSeconds = mean.InexactFloat64()
	report.ThresholdSeconds = threshold.InexactFloat64()

	type flagged struct {
		partID string
		total  decimal.Decimal
	}
	var hits []flagged
	for partID, total := range totals {
		if total.GreaterThan(threshold) {
			hits = append(hits, flagged{partID, total})
		}
	}
	sort.Slice(hits, func(i, j int) bool {
		if c := hits[i].total.Cmp(hits[j].total); c != 0 {
			return c > 0
		}
		return hits[i].partID < hits[j].partID
	})

	for _, h := range hits {
		report.Parts = append(report.Parts, Anomaly{
			PartID:          h.partID,
			TotalSeconds:    h.total.InexactFloat64(),
			PercentOverMean: h.total.Div(mean).Mul(hundred).Round(2),
		})
	}
	return report
}
