package dto

// CreateStationRequest entrada para crear una estación.
type CreateStationRequest struct {
	Name string `json:"name" validate:"required,max=150"`
	Type string `json:"type" validate:"required,max=100"`
	Line string `json:"line" validate:"omitempty,max=100"`
}

// UpdateStationRequest actualización parcial de una estación.
type UpdateStationRequest struct {
	Name *string `json:"name,omitempty"`
	Type *string `json:"type,omitempty"`
	Line *string `json:"line,omitempty"`
}

// StationResponse salida de una estación.
type StationResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
	Line string `json:"line,omitempty"`
}
