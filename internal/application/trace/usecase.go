package trace

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Trazabilidad-api/internal/application/dto"
	"github.com/jhoicas/Trazabilidad-api/internal/domain"
	"github.com/jhoicas/Trazabilidad-api/internal/domain/entity"
	"github.com/jhoicas/Trazabilidad-api/internal/domain/repository"
)

// EventUseCase registra y cierra eventos de proceso. Es el único punto de mutación del Event Store:
// el estado de la pieza se actualiza en la misma transacción que el evento (last-write-wins).
type EventUseCase struct {
	txRunner    TxRunner
	partRepo    repository.PartRepository
	stationRepo repository.StationRepository
	eventRepo   repository.ProcessEventRepository
	now         func() time.Time
}

// NewEventUseCase construye el caso de uso.
func NewEventUseCase(
	txRunner TxRunner,
	partRepo repository.PartRepository,
	stationRepo repository.StationRepository,
	eventRepo repository.ProcessEventRepository,
) *EventUseCase {
	return &EventUseCase{
		txRunner:    txRunner,
		partRepo:    partRepo,
		stationRepo: stationRepo,
		eventRepo:   eventRepo,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// WithClock reemplaza el reloj (tests).
func (uc *EventUseCase) WithClock(now func() time.Time) *EventUseCase {
	uc.now = now
	return uc
}

// RegisterEvent registra la entrada de una pieza a una estación (entry = ahora).
// Si trae resultado, el evento queda cerrado (exit por defecto = ahora) y la pieza toma ese estado.
func (uc *EventUseCase) RegisterEvent(ctx context.Context, operatorID string, in dto.RegisterEventRequest) (*dto.EventResponse, error) {
	if in.PartID == "" || in.StationID == "" {
		return nil, fmt.Errorf("%w: part_id y station_id son obligatorios", domain.ErrInvalidInput)
	}
	var outcome string
	if in.Outcome != "" {
		outcome = entity.NormalizeOutcome(in.Outcome)
		if outcome == "" {
			return nil, fmt.Errorf("%w: resultado %q no permitido", domain.ErrInvalidInput, in.Outcome)
		}
	} else if in.ExitTime != nil {
		return nil, fmt.Errorf("%w: exit_time requiere un resultado", domain.ErrInvalidInput)
	}

	part, err := uc.partRepo.GetByID(ctx, in.PartID)
	if err != nil {
		return nil, err
	}
	if part == nil {
		return nil, fmt.Errorf("%w: pieza %s", domain.ErrNotFound, in.PartID)
	}
	station, err := uc.stationRepo.GetByID(ctx, in.StationID)
	if err != nil {
		return nil, err
	}
	if station == nil {
		return nil, fmt.Errorf("%w: estación %s", domain.ErrNotFound, in.StationID)
	}

	now := uc.now()
	ev := &entity.ProcessEvent{
		ID:         uuid.New().String(),
		PartID:     part.ID,
		StationID:  station.ID,
		OperatorID: operatorID,
		EntryTime:  now,
		Outcome:    outcome,
		Notes:      in.Notes,
	}
	if outcome != "" {
		exit := now
		if in.ExitTime != nil {
			exit = in.ExitTime.UTC()
		}
		if exit.Before(ev.EntryTime) {
			return nil, fmt.Errorf("%w: exit_time anterior a la entrada", domain.ErrInvalidInput)
		}
		ev.ExitTime = &exit
	}

	err = uc.txRunner.Run(ctx, func(eventRepo repository.ProcessEventRepository, partRepo repository.PartRepository) error {
		if err := eventRepo.Create(ctx, ev); err != nil {
			return err
		}
		if outcome == "" {
			return nil
		}
		return partRepo.UpdateStatus(ctx, part.ID, outcome)
	})
	if err != nil {
		return nil, err
	}
	return ToEventResponse(ev), nil
}

// CloseEvent fija salida y resultado de un evento abierto. Bloquea la fila dentro de la tx;
// un evento ya cerrado devuelve domain.ErrConflict.
func (uc *EventUseCase) CloseEvent(ctx context.Context, eventID string, in dto.CloseEventRequest) (*dto.EventResponse, error) {
	outcome := entity.NormalizeOutcome(in.Outcome)
	if outcome == "" {
		return nil, fmt.Errorf("%w: resultado %q no permitido", domain.ErrInvalidInput, in.Outcome)
	}
	exit := uc.now()
	if in.ExitTime != nil {
		exit = in.ExitTime.UTC()
	}

	var closed *entity.ProcessEvent
	err := uc.txRunner.Run(ctx, func(eventRepo repository.ProcessEventRepository, partRepo repository.PartRepository) error {
		ev, err := eventRepo.GetForUpdate(ctx, eventID)
		if err != nil {
			return err
		}
		if ev == nil {
			return fmt.Errorf("%w: evento %s", domain.ErrNotFound, eventID)
		}
		if ev.Closed() {
			return fmt.Errorf("%w: el evento ya está cerrado", domain.ErrConflict)
		}
		if exit.Before(ev.EntryTime) {
			return fmt.Errorf("%w: exit_time anterior a la entrada", domain.ErrInvalidInput)
		}
		ev.ExitTime = &exit
		ev.Outcome = outcome
		if in.Notes != "" {
			ev.Notes = in.Notes
		}
		if err := eventRepo.Close(ctx, ev); err != nil {
			return err
		}
		if err := partRepo.UpdateStatus(ctx, ev.PartID, outcome); err != nil {
			return err
		}
		closed = ev
		return nil
	})
	if err != nil {
		return nil, err
	}
	return ToEventResponse(closed), nil
}

// ListPartHistory devuelve los eventos de la pieza en orden de entrada.
// Pieza inexistente -> domain.ErrNotFound; pieza sin eventos -> lista vacía.
func (uc *EventUseCase) ListPartHistory(ctx context.Context, partID string) ([]dto.EventResponse, error) {
	part, err := uc.partRepo.GetByID(ctx, partID)
	if err != nil {
		return nil, err
	}
	if part == nil {
		return nil, fmt.Errorf("%w: pieza %s", domain.ErrNotFound, partID)
	}
	events, err := uc.eventRepo.ListByPart(ctx, partID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.EventResponse, 0, len(events))
	for i := range events {
		out = append(out, *ToEventResponse(&events[i]))
	}
	return out, nil
}

// ToEventResponse mapea la entidad a DTO incluyendo la duración en segundos.
func ToEventResponse(ev *entity.ProcessEvent) *dto.EventResponse {
	if ev == nil {
		return nil
	}
	return &dto.EventResponse{
		ID:              ev.ID,
		PartID:          ev.PartID,
		StationID:       ev.StationID,
		OperatorID:      ev.OperatorID,
		EntryTime:       ev.EntryTime,
		ExitTime:        ev.ExitTime,
		Outcome:         ev.Outcome,
		Notes:           ev.Notes,
		DurationSeconds: ev.Duration().Seconds(),
	}
}
