package repository

import (
	"context"
	"time"

	"github.com/jhoicas/Trazabilidad-api/internal/domain/entity"
)

// PartFilter filtros opcionales para listar piezas. Campos vacíos/nil no filtran.
type PartFilter struct {
	Status      string
	Type        string
	Lot         string
	CreatedFrom *time.Time
	CreatedTo   *time.Time
	Limit       int
	Offset      int
}

// PartRepository define el puerto de persistencia para Part (DIP).
// GetByID y GetBySerial devuelven (nil, nil) cuando no existe.
type PartRepository interface {
	Create(ctx context.Context, part *entity.Part) error
	GetByID(ctx context.Context, id string) (*entity.Part, error)
	GetBySerial(ctx context.Context, serial string) (*entity.Part, error)
	List(ctx context.Context, f PartFilter) ([]*entity.Part, error)
	Update(ctx context.Context, part *entity.Part) error
	UpdateStatus(ctx context.Context, id, status string) error
	Delete(ctx context.Context, id string) error
}
