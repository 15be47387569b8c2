package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/jhoicas/Trazabilidad-api/internal/application/dto"
	"github.com/jhoicas/Trazabilidad-api/internal/domain"
	"github.com/jhoicas/Trazabilidad-api/internal/domain/entity"
	"github.com/jhoicas/Trazabilidad-api/internal/domain/repository"
)

// StationUseCase casos de uso CRUD para estaciones.
type StationUseCase struct {
	repo repository.StationRepository
}

// NewStationUseCase construye el caso de uso.
func NewStationUseCase(repo repository.StationRepository) *StationUseCase {
	return &StationUseCase{repo: repo}
}

// Create crea una estación. Nombre duplicado -> domain.ErrDuplicate.
func (uc *StationUseCase) Create(ctx context.Context, in dto.CreateStationRequest) (*dto.StationResponse, error) {
	name := strings.TrimSpace(in.Name)
	stType := strings.TrimSpace(in.Type)
	if name == "" || stType == "" {
		return nil, fmt.Errorf("%w: nombre y tipo son obligatorios", domain.ErrInvalidInput)
	}
	existing, err := uc.repo.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	st := &entity.Station{
		ID:   uuid.New().String(),
		Name: name,
		Type: stType,
		Line: strings.TrimSpace(in.Line),
	}
	if err := uc.repo.Create(ctx, st); err != nil {
		return nil, err
	}
	return toStationResponse(st), nil
}

// GetByID obtiene una estación. Inexistente -> domain.ErrNotFound.
func (uc *StationUseCase) GetByID(ctx context.Context, id string) (*dto.StationResponse, error) {
	st, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	return toStationResponse(st), nil
}

// List devuelve todas las estaciones.
func (uc *StationUseCase) List(ctx context.Context) ([]dto.StationResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.StationResponse, 0, len(list))
	for _, st := range list {
		out = append(out, *toStationResponse(st))
	}
	return out, nil
}

// Update aplica los campos presentes.
func (uc *StationUseCase) Update(ctx context.Context, id string, in dto.UpdateStationRequest) (*dto.StationResponse, error) {
	st, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: nombre vacío", domain.ErrInvalidInput)
		}
		if name != st.Name {
			other, err := uc.repo.GetByName(ctx, name)
			if err != nil {
				return nil, err
			}
			if other != nil {
				return nil, domain.ErrDuplicate
			}
			st.Name = name
		}
	}
	if in.Type != nil {
		t := strings.TrimSpace(*in.Type)
		if t == "" {
			return nil, fmt.Errorf("%w: tipo vacío", domain.ErrInvalidInput)
		}
		st.Type = t
	}
	if in.Line != nil {
		st.Line = strings.TrimSpace(*in.Line)
	}
	if err := uc.repo.Update(ctx, st); err != nil {
		return nil, err
	}
	return toStationResponse(st), nil
}

// Delete elimina una estación. Inexistente -> domain.ErrNotFound.
func (uc *StationUseCase) Delete(ctx context.Context, id string) error {
	if _, err := uc.get(ctx, id); err != nil {
		return err
	}
	return uc.repo.Delete(ctx, id)
}

func (uc *StationUseCase) get(ctx context.Context, id string) (*entity.Station, error) {
	st, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if st == nil {
		return nil, fmt.Errorf("%w: estación %s", domain.ErrNotFound, id)
	}
	return st, nil
}

func toStationResponse(s *entity.Station) *dto.StationResponse {
	return &dto.StationResponse{ID: s.ID, Name: s.Name, Type: s.Type, Line: s.Line}
}
