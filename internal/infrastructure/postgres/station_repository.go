package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Trazabilidad-api/internal/domain"
	"github.com/jhoicas/Trazabilidad-api/internal/domain/entity"
	"github.com/jhoicas/Trazabilidad-api/internal/domain/repository"
)

var _ repository.StationRepository = (*StationRepo)(nil)

// StationRepo implementación del puerto StationRepository sobre PostgreSQL.
type StationRepo struct {
	q Querier
}

// NewStationRepository construye el adaptador de persistencia para estaciones.
func NewStationRepository(q Querier) *StationRepo {
	return &StationRepo{q: q}
}

// Create persiste una nueva estación. Nombre duplicado -> domain.ErrDuplicate.
func (r *StationRepo) Create(ctx context.Context, s *entity.Station) error {
	_, err := r.q.Exec(ctx,
		`INSERT INTO stations (id, name, station_type, line) VALUES ($1, $2, $3, $4)`,
		s.ID, s.Name, s.Type, nullable(s.Line),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert station: %w", err)
	}
	return nil
}

// GetByID obtiene una estación por ID.
func (r *StationRepo) GetByID(ctx context.Context, id string) (*entity.Station, error) {
	return r.findOne(ctx, `SELECT id, name, station_type, line FROM stations WHERE id = $1`, id)
}

// GetByName obtiene una estación por nombre.
func (r *StationRepo) GetByName(ctx context.Context, name string) (*entity.Station, error) {
	return r.findOne(ctx, `SELECT id, name, station_type, line FROM stations WHERE name = $1`, name)
}

func (r *StationRepo) findOne(ctx context.Context, query, arg string) (*entity.Station, error) {
	var s entity.Station
	var line *string
	err := r.q.QueryRow(ctx, query, arg).Scan(&s.ID, &s.Name, &s.Type, &line)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || isInvalidText(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get station: %w", err)
	}
	if line != nil {
		s.Line = *line
	}
	return &s, nil
}

// List lista todas las estaciones ordenadas por nombre.
func (r *StationRepo) List(ctx context.Context) ([]*entity.Station, error) {
	rows, err := r.q.Query(ctx, `SELECT id, name, station_type, line FROM stations ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list stations: %w", err)
	}
	defer rows.Close()
	var list []*entity.Station
	for rows.Next() {
		var s entity.Station
		var line *string
		if err := rows.Scan(&s.ID, &s.Name, &s.Type, &line); err != nil {
			return nil, fmt.Errorf("scan station: %w", err)
		}
		if line != nil {
			s.Line = *line
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// Update actualiza una estación existente.
func (r *StationRepo) Update(ctx context.Context, s *entity.Station) error {
	_, err := r.q.Exec(ctx,
		`UPDATE stations SET name = $2, station_type = $3, line = $4 WHERE id = $1`,
		s.ID, s.Name, s.Type, nullable(s.Line),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update station: %w", err)
	}
	return nil
}

// Delete elimina una estación. Con eventos asociados -> domain.ErrConflict.
func (r *StationRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM stations WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("delete station: %w", err)
	}
	return nil
}
