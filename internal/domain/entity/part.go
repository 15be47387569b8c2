package entity

import (
	"strings"
	"time"
)

// Estados de una pieza. EN_PROCESO y RETRABAJO se aceptan como alias de entrada.
const (
	PartStatusInProcess = "IN_PROCESS"
	PartStatusOK        = "OK"
	PartStatusScrap     = "SCRAP"
	PartStatusRework    = "REWORK"
)

// Part representa una unidad física bajo trazabilidad.
// Status refleja el resultado del último evento cerrado (last-write-wins).
type Part struct {
	ID        string
	Serial    string // único global
	Type      string
	Lot       string
	Status    string
	CreatedAt time.Time
}

// NormalizePartStatus devuelve el estado canónico o "" si no es válido.
func NormalizePartStatus(s string) string {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case PartStatusInProcess, "EN_PROCESO":
		return PartStatusInProcess
	case PartStatusOK:
		return PartStatusOK
	case PartStatusScrap:
		return PartStatusScrap
	case PartStatusRework, "RETRABAJO":
		return PartStatusRework
	}
	return ""
}
