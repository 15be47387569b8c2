package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Trazabilidad-api/internal/domain"
	"github.com/jhoicas/Trazabilidad-api/internal/domain/entity"
	"github.com/jhoicas/Trazabilidad-api/internal/domain/repository"
)

var _ repository.PartRepository = (*PartRepo)(nil)

const partColumns = `id, serial, part_type, lot, status, created_at`

// PartRepo implementación del puerto PartRepository sobre PostgreSQL (usable con pool o tx).
type PartRepo struct {
	q Querier
}

// NewPartRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPartRepository(q Querier) *PartRepo {
	return &PartRepo{q: q}
}

// Create persiste una nueva pieza. Serial duplicado -> domain.ErrDuplicate.
func (r *PartRepo) Create(ctx context.Context, part *entity.Part) error {
	query := `INSERT INTO parts (` + partColumns + `) VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(ctx, query,
		part.ID, part.Serial, part.Type, nullable(part.Lot), part.Status, part.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert part: %w", err)
	}
	return nil
}

// GetByID obtiene una pieza por ID.
func (r *PartRepo) GetByID(ctx context.Context, id string) (*entity.Part, error) {
	return r.findOne(ctx, `SELECT `+partColumns+` FROM parts WHERE id = $1`, id)
}

// GetBySerial obtiene una pieza por serial.
func (r *PartRepo) GetBySerial(ctx context.Context, serial string) (*entity.Part, error) {
	return r.findOne(ctx, `SELECT `+partColumns+` FROM parts WHERE serial = $1`, serial)
}

func (r *PartRepo) findOne(ctx context.Context, query, arg string) (*entity.Part, error) {
	var p entity.Part
	var lot *string
	err := r.q.QueryRow(ctx, query, arg).Scan(&p.ID, &p.Serial, &p.Type, &lot, &p.Status, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || isInvalidText(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get part: %w", err)
	}
	if lot != nil {
		p.Lot = *lot
	}
	return &p, nil
}

// List lista piezas aplicando los filtros presentes.
func (r *PartRepo) List(ctx context.Context, f repository.PartFilter) ([]*entity.Part, error) {
	var (
		where []string
		args  []any
	)
	add := func(cond string, v any) {
		args = append(args, v)
		where = append(where, fmt.Sprintf(cond, len(args)))
	}
	if f.Status != "" {
		add("status = $%d", f.Status)
	}
	if f.Type != "" {
		add("part_type = $%d", f.Type)
	}
	if f.Lot != "" {
		add("lot = $%d", f.Lot)
	}
	if f.CreatedFrom != nil {
		add("created_at >= $%d", *f.CreatedFrom)
	}
	if f.CreatedTo != nil {
		add("created_at <= $%d", *f.CreatedTo)
	}

	query := `SELECT ` + partColumns + ` FROM parts`
	if len(where) > 0 {
		query += ` WHERE ` + strings.Join(where, " AND ")
	}
	args = append(args, f.Limit, f.Offset)
	query += fmt.Sprintf(` ORDER BY created_at ASC, serial ASC LIMIT $%d OFFSET $%d`, len(args)-1, len(args))

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list parts: %w", err)
	}
	defer rows.Close()
	var list []*entity.Part
	for rows.Next() {
		var p entity.Part
		var lot *string
		if err := rows.Scan(&p.ID, &p.Serial, &p.Type, &lot, &p.Status, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan part: %w", err)
		}
		if lot != nil {
			p.Lot = *lot
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Update actualiza serial, tipo, lote y estado.
func (r *PartRepo) Update(ctx context.Context, part *entity.Part) error {
	query := `UPDATE parts SET serial = $2, part_type = $3, lot = $4, status = $5 WHERE id = $1`
	_, err := r.q.Exec(ctx, query, part.ID, part.Serial, part.Type, nullable(part.Lot), part.Status)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update part: %w", err)
	}
	return nil
}

// UpdateStatus fija el estado de la pieza (last-write-wins).
func (r *PartRepo) UpdateStatus(ctx context.Context, id, status string) error {
	cmd, err := r.q.Exec(ctx, `UPDATE parts SET status = $2 WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("update part status: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina una pieza. Con eventos asociados -> domain.ErrConflict.
func (r *PartRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM parts WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("delete part: %w", err)
	}
	return nil
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
