package repository

import (
	"context"

	"github.com/jhoicas/Trazabilidad-api/internal/domain/entity"
)

// ProcessEventRepository es el Event Store: escritura de eventos y lectura por pieza o completa.
type ProcessEventRepository interface {
	Create(ctx context.Context, event *entity.ProcessEvent) error
	GetByID(ctx context.Context, id string) (*entity.ProcessEvent, error)
	// GetForUpdate bloquea la fila (SELECT ... FOR UPDATE) dentro de una transacción.
	GetForUpdate(ctx context.Context, id string) (*entity.ProcessEvent, error)
	// Close fija exit_time y outcome de un evento abierto.
	Close(ctx context.Context, event *entity.ProcessEvent) error
	// ListByPart devuelve los eventos de la pieza ordenados por entry_time ascendente.
	ListByPart(ctx context.Context, partID string) ([]entity.ProcessEvent, error)
	// ListAll devuelve todos los eventos (agregador de anomalías).
	ListAll(ctx context.Context) ([]entity.ProcessEvent, error)
}
