package risk

// Level nivel de riesgo derivado del score.
type Level string

const (
	LevelLow    Level = "LOW"
	LevelMedium Level = "MEDIUM"
	LevelHigh   Level = "HIGH"
)

// Razones emitidas por el motor.
const (
	ReasonNoEvents        = "no events recorded"
	ReasonNoRiskFactors   = "no risk factors detected"
	ReasonDurationHigh    = "elevated total time"
	ReasonDurationMedium  = "above-average time"
	ReasonScrap           = "scrap history"
	ReasonReworkMultiple  = "multiple reworks"
	ReasonReworkSingle    = "one rework recorded"
	ReasonFinalInspection = "currently at final inspection"
)

// Details agregados usados para calcular el score.
type Details struct {
	TotalSeconds float64
	TotalMinutes float64
	TotalEvents  int
	ScrapCount   int
	ReworkCount  int
}

// Assessment resultado derivado (no persistido) de evaluar una pieza.
type Assessment struct {
	Score        float64
	Level        Level
	Reasons      []string
	Details      Details
	RulesVersion string
}
