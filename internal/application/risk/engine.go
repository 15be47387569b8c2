package risk

import (
	"github.com/jhoicas/Trazabilidad-api/internal/domain/risk"
	"github.com/jhoicas/Trazabilidad-api/pkg/config"
)

// EngineFromConfig construye el motor con el RuleSet por defecto más las sobrescrituras de entorno.
// Un RuleSet inconsistente (p. ej. umbral medio >= alto) devuelve error.
func EngineFromConfig(cfg config.RiskConfig) (*risk.Engine, error) {
	rules := risk.DefaultRuleSet().Apply(risk.Overrides{
		Version:               cfg.RulesVersion,
		DurationHighSeconds:   cfg.DurationHighSeconds,
		DurationMediumSeconds: cfg.DurationMediumSeconds,
		AnomalyMultiplier:     cfg.AnomalyMultiplier,
	})
	return risk.NewEngine(rules)
}
