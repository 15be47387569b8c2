package dto

import "time"

// CreatePartRequest entrada para registrar una pieza. Status vacío -> IN_PROCESS.
type CreatePartRequest struct {
	Serial string `json:"serial" validate:"required,max=100"`
	Type   string `json:"type" validate:"required,max=100"`
	Lot    string `json:"lot" validate:"omitempty,max=100"`
	Status string `json:"status" validate:"omitempty"`
}

// UpdatePartRequest actualización parcial de una pieza.
type UpdatePartRequest struct {
	Serial *string `json:"serial,omitempty"`
	Type   *string `json:"type,omitempty"`
	Lot    *string `json:"lot,omitempty"`
	Status *string `json:"status,omitempty"`
}

// PartListQuery filtros de listado (query string). Fechas en formato YYYY-MM-DD.
type PartListQuery struct {
	Status      string `query:"status"`
	Type        string `query:"type"`
	Lot         string `query:"lot"`
	CreatedFrom string `query:"created_from"`
	CreatedTo   string `query:"created_to"`
	PageRequest
}

// PartResponse salida de una pieza.
type PartResponse struct {
	ID        string    `json:"id"`
	Serial    string    `json:"serial"`
	Type      string    `json:"type"`
	Lot       string    `json:"lot,omitempty"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// PartListResponse listado paginado de piezas.
type PartListResponse struct {
	Items []PartResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}
