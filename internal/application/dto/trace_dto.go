package dto

import "time"

// RegisterEventRequest entrada para registrar el paso de una pieza por una estación.
// Con Outcome el evento queda cerrado (ExitTime vacío -> ahora).
type RegisterEventRequest struct {
	PartID    string     `json:"part_id" validate:"required,uuid"`
	StationID string     `json:"station_id" validate:"required,uuid"`
	Outcome   string     `json:"outcome,omitempty"`
	ExitTime  *time.Time `json:"exit_time,omitempty"`
	Notes     string     `json:"notes,omitempty"`
}

// CloseEventRequest entrada para cerrar un evento abierto.
type CloseEventRequest struct {
	Outcome  string     `json:"outcome" validate:"required"`
	ExitTime *time.Time `json:"exit_time,omitempty"`
	Notes    string     `json:"notes,omitempty"`
}

// EventResponse salida de un evento de proceso.
type EventResponse struct {
	ID              string     `json:"id"`
	PartID          string     `json:"part_id"`
	StationID       string     `json:"station_id"`
	OperatorID      string     `json:"operator_id,omitempty"`
	EntryTime       time.Time  `json:"entry_time"`
	ExitTime        *time.Time `json:"exit_time,omitempty"`
	Outcome         string     `json:"outcome,omitempty"`
	Notes           string     `json:"notes,omitempty"`
	DurationSeconds float64    `json:"duration_seconds"`
}
