package repository

import (
	"context"

	"github.com/jhoicas/Trazabilidad-api/internal/domain/entity"
)

// StationRepository define el puerto de persistencia para Station (DIP).
type StationRepository interface {
	Create(ctx context.Context, station *entity.Station) error
	GetByID(ctx context.Context, id string) (*entity.Station, error)
	GetByName(ctx context.Context, name string) (*entity.Station, error)
	List(ctx context.Context) ([]*entity.Station, error)
	Update(ctx context.Context, station *entity.Station) error
	Delete(ctx context.Context, id string) error
}
