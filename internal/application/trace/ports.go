package trace

import (
	"context"

	"github.com/jhoicas/Trazabilidad-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios atados a esa tx.
// El cierre de un evento y el cambio de estado de la pieza se confirman juntos.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		eventRepo repository.ProcessEventRepository,
		partRepo repository.PartRepository,
	) error) error
}
