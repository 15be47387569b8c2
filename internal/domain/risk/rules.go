package risk

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// DefaultRulesVersion identifica el juego de reglas por defecto.
const DefaultRulesVersion = "v1"

// DurationTier dispara cuando el tiempo total supera Seconds (estricto).
type DurationTier struct {
	Seconds decimal.Decimal
	Weight  decimal.Decimal
	Reason  string
}

// CountTier dispara cuando el conteo es >= MinCount.
type CountTier struct {
	MinCount int
	Weight   decimal.Decimal
	Reason   string
}

// RuleSet agrupa pesos y umbrales del motor de riesgo.
// Dentro de una categoría solo dispara el tier más alto; entre categorías los pesos se suman.
type RuleSet struct {
	Version string

	DurationHigh   DurationTier
	DurationMedium DurationTier

	ScrapWeight decimal.Decimal
	ScrapReason string

	ReworkMultiple CountTier
	ReworkSingle   CountTier

	// Solo aplica al evaluador manual.
	InspectionPrefix string
	InspectionWeight decimal.Decimal
	InspectionReason string

	HighThreshold   decimal.Decimal // score >= HighThreshold -> HIGH
	MediumThreshold decimal.Decimal // score >= MediumThreshold -> MEDIUM

	AnomalyMultiplier decimal.Decimal
}

// DefaultRuleSet devuelve las reglas v1.
func DefaultRuleSet() RuleSet {
	return RuleSet{
		Version: DefaultRulesVersion,
		DurationHigh: DurationTier{
			Seconds: decimal.NewFromInt(900),
			Weight:  decimal.RequireFromString("0.4"),
			Reason:  ReasonDurationHigh,
		},
		DurationMedium: DurationTier{
			Seconds: decimal.NewFromInt(600),
			Weight:  decimal.RequireFromString("0.2"),
			Reason:  ReasonDurationMedium,
		},
		ScrapWeight: decimal.RequireFromString("0.4"),
		ScrapReason: ReasonScrap,
		ReworkMultiple: CountTier{
			MinCount: 2,
			Weight:   decimal.RequireFromString("0.2"),
			Reason:   ReasonReworkMultiple,
		},
		ReworkSingle: CountTier{
			MinCount: 1,
			Weight:   decimal.RequireFromString("0.1"),
			Reason:   ReasonReworkSingle,
		},
		InspectionPrefix:  "INSPECCION",
		InspectionWeight:  decimal.RequireFromString("0.1"),
		InspectionReason:  ReasonFinalInspection,
		HighThreshold:     decimal.RequireFromString("0.7"),
		MediumThreshold:   decimal.RequireFromString("0.4"),
		AnomalyMultiplier: decimal.RequireFromString("1.5"),
	}
}

// Overrides valores de configuración que reemplazan los del RuleSet. Cero = sin cambio.
type Overrides struct {
	Version               string
	DurationHighSeconds   float64
	DurationMediumSeconds float64
	AnomalyMultiplier     float64
}

// Apply devuelve una copia del RuleSet con las sobrescrituras aplicadas.
func (r RuleSet) Apply(o Overrides) RuleSet {
	if o.Version != "" {
		r.Version = o.Version
	}
	if o.DurationHighSeconds != 0 {
		r.DurationHigh.Seconds = decimal.NewFromFloat(o.DurationHighSeconds)
	}
	if o.DurationMediumSeconds != 0 {
		r.DurationMedium.Seconds = decimal.NewFromFloat(o.DurationMediumSeconds)
	}
	if o.AnomalyMultiplier != 0 {
		r.AnomalyMultiplier = decimal.NewFromFloat(o.AnomalyMultiplier)
	}
	return r
}

// Validate verifica la coherencia del juego de reglas.
func (r RuleSet) Validate() error {
	if r.Version == "" {
		return fmt.Errorf("risk: version de reglas vacía")
	}
	weights := map[string]decimal.Decimal{
		"duration_high":   r.DurationHigh.Weight,
		"duration_medium": r.DurationMedium.Weight,
		"scrap":           r.ScrapWeight,
		"rework_multiple": r.ReworkMultiple.Weight,
		"rework_single":   r.ReworkSingle.Weight,
		"inspection":      r.InspectionWeight,
	}
	for name, w := range weights {
		if w.IsNegative() {
			return fmt.Errorf("risk: peso %s negativo", name)
		}
	}
	if r.DurationMedium.Seconds.IsNegative() {
		return fmt.Errorf("risk: umbral de duración negativo")
	}
	if !r.DurationMedium.Seconds.LessThan(r.DurationHigh.Seconds) {
		return fmt.Errorf("risk: el umbral medio de duración debe ser menor que el alto")
	}
	if r.ReworkSingle.MinCount < 1 || r.ReworkMultiple.MinCount <= r.ReworkSingle.MinCount {
		return fmt.Errorf("risk: tiers de retrabajo inválidos")
	}
	one := decimal.NewFromInt(1)
	if !r.MediumThreshold.IsPositive() || r.MediumThreshold.GreaterThan(r.HighThreshold) || r.HighThreshold.GreaterThan(one) {
		return fmt.Errorf("risk: umbrales de nivel inválidos")
	}
	if !r.AnomalyMultiplier.IsPositive() {
		return fmt.Errorf("risk: multiplicador de anomalías debe ser positivo")
	}
	return nil
}
