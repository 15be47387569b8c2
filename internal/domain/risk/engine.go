// Package risk implementa el motor de reglas de riesgo de piezas:
// score por historial de eventos, evaluación manual y detección de anomalías
// de tiempo de ciclo. Todo es cómputo puro sobre datos ya leídos.
package risk

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Trazabilidad-api/internal/domain/entity"
)

var (
	one     = decimal.NewFromInt(1)
	sixty   = decimal.NewFromInt(60)
	hundred = decimal.NewFromInt(100)
)

// Engine evalúa reglas sobre eventos o agregados. Es inmutable y seguro para uso concurrente.
type Engine struct {
	rules RuleSet
}

// NewEngine valida el juego de reglas y construye el motor.
func NewEngine(rules RuleSet) (*Engine, error) {
	if err := rules.Validate(); err != nil {
		return nil, err
	}
	return &Engine{rules: rules}, nil
}

// NewDefaultEngine construye el motor con DefaultRuleSet.
func NewDefaultEngine() *Engine {
	return &Engine{rules: DefaultRuleSet()}
}

// Rules devuelve el juego de reglas en uso.
func (e *Engine) Rules() RuleSet {
	return e.rules
}

// Score calcula el riesgo de una pieza a partir de todos sus eventos.
// Los eventos abiertos cuentan en TotalEvents pero aportan 0 a la duración.
func (e *Engine) Score(events []entity.ProcessEvent) Assessment {
	if len(events) == 0 {
		return Assessment{
			Score:        0,
			Level:        LevelLow,
			Reasons:      []string{ReasonNoEvents},
			RulesVersion: e.rules.Version,
		}
	}

	total := decimal.Zero
	var scrap, rework int
	for i := range events {
		total = total.Add(seconds(events[i].Duration()))
		switch entity.NormalizeOutcome(events[i].Outcome) {
		case entity.OutcomeScrap:
			scrap++
		case entity.OutcomeRework:
			rework++
		}
	}

	score, reasons := e.apply(total, scrap, rework)
	return e.finish(score, reasons, Details{
		TotalSeconds: total.InexactFloat64(),
		TotalMinutes: total.Div(sixty).Round(2).InexactFloat64(),
		TotalEvents:  len(events),
		ScrapCount:   scrap,
		ReworkCount:  rework,
	})
}

// apply suma los pesos de duración, scrap y retrabajo (en ese orden de razones).
func (e *Engine) apply(totalSeconds decimal.Decimal, scrap, rework int) (decimal.Decimal, []string) {
	r := e.rules
	score := decimal.Zero
	reasons := make([]string, 0, 4)

	switch {
	case totalSeconds.GreaterThan(r.DurationHigh.Seconds):
		score = score.Add(r.DurationHigh.Weight)
		reasons = append(reasons, r.DurationHigh.Reason)
	case totalSeconds.GreaterThan(r.DurationMedium.Seconds):
		score = score.Add(r.DurationMedium.Weight)
		reasons = append(reasons, r.DurationMedium.Reason)
	}

	if scrap > 0 {
		score = score.Add(r.ScrapWeight)
		reasons = append(reasons, r.ScrapReason)
	}

	switch {
	case rework >= r.ReworkMultiple.MinCount:
		score = score.Add(r.ReworkMultiple.Weight)
		reasons = append(reasons, r.ReworkMultiple.Reason)
	case rework >= r.ReworkSingle.MinCount:
		score = score.Add(r.ReworkSingle.Weight)
		reasons = append(reasons, r.ReworkSingle.Reason)
	}
	return score, reasons
}

// finish recorta a [0,1], clasifica y garantiza razones no vacías.
func (e *Engine) finish(score decimal.Decimal, reasons []string, d Details) Assessment {
	score = decimal.Min(decimal.Max(score, decimal.Zero), one)
	if len(reasons) == 0 {
		reasons = append(reasons, ReasonNoRiskFactors)
	}
	return Assessment{
		Score:        score.InexactFloat64(),
		Level:        e.classify(score),
		Reasons:      reasons,
		Details:      d,
		RulesVersion: e.rules.Version,
	}
}

func (e *Engine) classify(score decimal.Decimal) Level {
	switch {
	case score.GreaterThanOrEqual(e.rules.HighThreshold):
		return LevelHigh
	case score.GreaterThanOrEqual(e.rules.MediumThreshold):
		return LevelMedium
	default:
		return LevelLow
	}
}

// Classify expone la clasificación para scores externos (p. ej. 0.39999).
func (e *Engine) Classify(score float64) Level {
	return e.classify(decimal.NewFromFloat(score))
}

// seconds convierte una duración a segundos exactos.
func seconds(d time.Duration) decimal.Decimal {
	return decimal.New(d.Nanoseconds(), -9)
}
