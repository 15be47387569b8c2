package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Trazabilidad-api/internal/application/dto"
	"github.com/jhoicas/Trazabilidad-api/internal/domain"
	"github.com/jhoicas/Trazabilidad-api/internal/domain/entity"
	"github.com/jhoicas/Trazabilidad-api/internal/domain/repository"
)

// DateLayout formato de fecha aceptado en filtros y métricas.
const DateLayout = "2006-01-02"

// PartUseCase casos de uso CRUD para piezas. El estado cambia normalmente vía eventos de proceso.
type PartUseCase struct {
	repo repository.PartRepository
}

// NewPartUseCase construye el caso de uso.
func NewPartUseCase(repo repository.PartRepository) *PartUseCase {
	return &PartUseCase{repo: repo}
}

// Create registra una pieza. Serial duplicado -> domain.ErrDuplicate.
func (uc *PartUseCase) Create(ctx context.Context, in dto.CreatePartRequest) (*dto.PartResponse, error) {
	serial := strings.TrimSpace(in.Serial)
	partType := strings.TrimSpace(in.Type)
	if serial == "" || partType == "" {
		return nil, fmt.Errorf("%w: serial y tipo son obligatorios", domain.ErrInvalidInput)
	}
	status := entity.PartStatusInProcess
	if in.Status != "" {
		status = entity.NormalizePartStatus(in.Status)
		if status == "" {
			return nil, fmt.Errorf("%w: estado %q no permitido", domain.ErrInvalidInput, in.Status)
		}
	}
	existing, err := uc.repo.GetBySerial(ctx, serial)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	part := &entity.Part{
		ID:        uuid.New().String(),
		Serial:    serial,
		Type:      partType,
		Lot:       strings.TrimSpace(in.Lot),
		Status:    status,
		CreatedAt: time.Now().UTC(),
	}
	if err := uc.repo.Create(ctx, part); err != nil {
		return nil, err
	}
	return toPartResponse(part), nil
}

// GetByID obtiene una pieza. Inexistente -> domain.ErrNotFound.
func (uc *PartUseCase) GetByID(ctx context.Context, id string) (*dto.PartResponse, error) {
	part, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	return toPartResponse(part), nil
}

// List lista piezas con filtros opcionales y paginación.
func (uc *PartUseCase) List(ctx context.Context, q dto.PartListQuery) (*dto.PartListResponse, error) {
	q.DefaultPage()
	f := repository.PartFilter{Type: q.Type, Lot: q.Lot, Limit: q.Limit, Offset: q.Offset}
	if q.Status != "" {
		f.Status = entity.NormalizePartStatus(q.Status)
		if f.Status == "" {
			return nil, fmt.Errorf("%w: estado %q no permitido", domain.ErrInvalidInput, q.Status)
		}
	}
	if q.CreatedFrom != "" {
		from, err := ParseDate(q.CreatedFrom)
		if err != nil {
			return nil, err
		}
		f.CreatedFrom = &from
	}
	if q.CreatedTo != "" {
		to, err := ParseDate(q.CreatedTo)
		if err != nil {
			return nil, err
		}
		end := to.AddDate(0, 0, 1).Add(-time.Nanosecond)
		f.CreatedTo = &end
	}

	parts, err := uc.repo.List(ctx, f)
	if err != nil {
		return nil, err
	}
	items := make([]dto.PartResponse, 0, len(parts))
	for _, p := range parts {
		items = append(items, *toPartResponse(p))
	}
	return &dto.PartListResponse{
		Items: items,
		Page:  q.PageRequest.Page(len(items)),
	}, nil
}

// Update aplica los campos presentes. Cambio de serial re-verifica unicidad.
func (uc *PartUseCase) Update(ctx context.Context, id string, in dto.UpdatePartRequest) (*dto.PartResponse, error) {
	part, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Serial != nil {
		serial := strings.TrimSpace(*in.Serial)
		if serial == "" {
			return nil, fmt.Errorf("%w: serial vacío", domain.ErrInvalidInput)
		}
		if serial != part.Serial {
			other, err := uc.repo.GetBySerial(ctx, serial)
			if err != nil {
				return nil, err
			}
			if other != nil {
				return nil, domain.ErrDuplicate
			}
			part.Serial = serial
		}
	}
	if in.Type != nil {
		t := strings.TrimSpace(*in.Type)
		if t == "" {
			return nil, fmt.Errorf("%w: tipo vacío", domain.ErrInvalidInput)
		}
		part.Type = t
	}
	if in.Lot != nil {
		part.Lot = strings.TrimSpace(*in.Lot)
	}
	if in.Status != nil {
		status := entity.NormalizePartStatus(*in.Status)
		if status == "" {
			return nil, fmt.Errorf("%w: estado %q no permitido", domain.ErrInvalidInput, *in.Status)
		}
		part.Status = status
	}
	if err := uc.repo.Update(ctx, part); err != nil {
		return nil, err
	}
	return toPartResponse(part), nil
}

// Delete elimina una pieza. Inexistente -> domain.ErrNotFound.
func (uc *PartUseCase) Delete(ctx context.Context, id string) error {
	if _, err := uc.get(ctx, id); err != nil {
		return err
	}
	return uc.repo.Delete(ctx, id)
}

func (uc *PartUseCase) get(ctx context.Context, id string) (*entity.Part, error) {
	part, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if part == nil {
		return nil, fmt.Errorf("%w: pieza %s", domain.ErrNotFound, id)
	}
	return part, nil
}

// ParseDate interpreta YYYY-MM-DD en UTC. Formato inválido -> domain.ErrInvalidInput.
func ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, strings.TrimSpace(s), time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: fecha %q, usa YYYY-MM-DD", domain.ErrInvalidInput, s)
	}
	return t, nil
}

func toPartResponse(p *entity.Part) *dto.PartResponse {
	if p == nil {
		return nil
	}
	return &dto.PartResponse{
		ID:        p.ID,
		Serial:    p.Serial,
		Type:      p.Type,
		Lot:       p.Lot,
		Status:    p.Status,
		CreatedAt: p.CreatedAt,
	}
}
