package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/Trazabilidad-api/internal/domain/repository"
)

// TxRunner serializa las "transacciones" con un mutex. Sin rollback.
type TxRunner struct {
	mu     sync.Mutex
	events *EventStore
	parts  *PartStore
}

// NewTxRunner construye el runner sobre los stores dados.
func NewTxRunner(events *EventStore, parts *PartStore) *TxRunner {
	return &TxRunner{events: events, parts: parts}
}

// Run ejecuta fn con los stores en exclusión mutua.
func (r *TxRunner) Run(_ context.Context, fn func(
	eventRepo repository.ProcessEventRepository,
	partRepo repository.PartRepository,
) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return fn(r.events, r.parts)
}
