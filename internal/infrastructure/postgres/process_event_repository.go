package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Trazabilidad-api/internal/domain"
	"github.com/jhoicas/Trazabilidad-api/internal/domain/entity"
	"github.com/jhoicas/Trazabilidad-api/internal/domain/repository"
)

var _ repository.ProcessEventRepository = (*ProcessEventRepo)(nil)

const eventColumns = `id, part_id, station_id, operator_id, entry_time, exit_time, outcome, notes`

// ProcessEventRepo Event Store de eventos de proceso sobre PostgreSQL (usable con pool o tx).
type ProcessEventRepo struct {
	q Querier
}

// NewProcessEventRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProcessEventRepository(q Querier) *ProcessEventRepo {
	return &ProcessEventRepo{q: q}
}

// Create inserta un evento. Pieza, estación u operario inexistente -> domain.ErrNotFound.
func (r *ProcessEventRepo) Create(ctx context.Context, ev *entity.ProcessEvent) error {
	query := `INSERT INTO process_events (` + eventColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query,
		ev.ID, ev.PartID, ev.StationID, nullable(ev.OperatorID),
		ev.EntryTime, ev.ExitTime, nullable(ev.Outcome), nullable(ev.Notes),
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: referencia de pieza, estación u operario", domain.ErrNotFound)
		}
		return fmt.Errorf("insert process event: %w", err)
	}
	return nil
}

// GetByID obtiene un evento por ID.
func (r *ProcessEventRepo) GetByID(ctx context.Context, id string) (*entity.ProcessEvent, error) {
	return r.findOne(ctx, `SELECT `+eventColumns+` FROM process_events WHERE id = $1`, id)
}

// GetForUpdate obtiene el evento bloqueando la fila hasta el fin de la transacción.
func (r *ProcessEventRepo) GetForUpdate(ctx context.Context, id string) (*entity.ProcessEvent, error) {
	return r.findOne(ctx, `SELECT `+eventColumns+` FROM process_events WHERE id = $1 FOR UPDATE`, id)
}

func (r *ProcessEventRepo) findOne(ctx context.Context, query, id string) (*entity.ProcessEvent, error) {
	ev, err := scanEvent(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || isInvalidText(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get process event: %w", err)
	}
	return ev, nil
}

// Close fija exit_time y outcome solo si el evento sigue abierto.
func (r *ProcessEventRepo) Close(ctx context.Context, ev *entity.ProcessEvent) error {
	query := `
		UPDATE process_events SET exit_time = $2, outcome = $3, notes = COALESCE($4, notes)
		WHERE id = $1 AND exit_time IS NULL`
	cmd, err := r.q.Exec(ctx, query, ev.ID, ev.ExitTime, ev.Outcome, nullable(ev.Notes))
	if err != nil {
		return fmt.Errorf("close process event: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrConflict
	}
	return nil
}

// ListByPart devuelve los eventos de una pieza ordenados por entry_time ascendente.
func (r *ProcessEventRepo) ListByPart(ctx context.Context, partID string) ([]entity.ProcessEvent, error) {
	query := `SELECT ` + eventColumns + ` FROM process_events WHERE part_id = $1 ORDER BY entry_time ASC, id ASC`
	return r.list(ctx, query, partID)
}

// ListAll devuelve todos los eventos registrados.
func (r *ProcessEventRepo) ListAll(ctx context.Context) ([]entity.ProcessEvent, error) {
	return r.list(ctx, `SELECT `+eventColumns+` FROM process_events ORDER BY entry_time ASC, id ASC`)
}

func (r *ProcessEventRepo) list(ctx context.Context, query string, args ...any) ([]entity.ProcessEvent, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list process events: %w", err)
	}
	defer rows.Close()
	list := make([]entity.ProcessEvent, 0)
	for rows.Next() {
		ev, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan process event: %w", err)
		}
		list = append(list, *ev)
	}
	return list, rows.Err()
}

func scanEvent(row pgx.Row) (*entity.ProcessEvent, error) {
	var (
		ev                       entity.ProcessEvent
		operator, outcome, notes *string
		exit                     *time.Time
	)
	if err := row.Scan(&ev.ID, &ev.PartID, &ev.StationID, &operator, &ev.EntryTime, &exit, &outcome, &notes); err != nil {
		return nil, err
	}
	ev.ExitTime = exit
	if operator != nil {
		ev.OperatorID = *operator
	}
	if outcome != nil {
		ev.Outcome = *outcome
	}
	if notes != nil {
		ev.Notes = *notes
	}
	return &ev, nil
}
