package entity

import (
	"strings"
	"time"
)

// Resultados de un evento de proceso. RETRABAJO se acepta como alias de REWORK.
const (
	OutcomeOK     = "OK"
	OutcomeScrap  = "SCRAP"
	OutcomeRework = "REWORK"
)

// ProcessEvent es un paso de una pieza por una estación.
// ExitTime nil = evento abierto (pieza en proceso); Outcome vacío mientras esté abierto.
type ProcessEvent struct {
	ID         string
	PartID     string
	StationID  string
	OperatorID string
	EntryTime  time.Time
	ExitTime   *time.Time
	Outcome    string
	Notes      string
}

// Closed indica si el evento tiene ambos timestamps.
func (e *ProcessEvent) Closed() bool {
	return e.ExitTime != nil && !e.EntryTime.IsZero()
}

// Duration devuelve exit - entry para eventos cerrados; 0 si está abierto.
// Nunca negativa: un exit anterior al entry (dato corrupto) cuenta como 0.
func (e *ProcessEvent) Duration() time.Duration {
	if !e.Closed() {
		return 0
	}
	d := e.ExitTime.Sub(e.EntryTime)
	if d < 0 {
		return 0
	}
	return d
}

// NormalizeOutcome devuelve el resultado canónico o "" si no es válido.
func NormalizeOutcome(s string) string {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case OutcomeOK:
		return OutcomeOK
	case OutcomeScrap:
		return OutcomeScrap
	case OutcomeRework, "RETRABAJO":
		return OutcomeRework
	}
	return ""
}
