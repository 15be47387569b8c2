package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Trazabilidad-api/internal/application/dto"
	"github.com/jhoicas/Trazabilidad-api/internal/application/usecase"
	"github.com/jhoicas/Trazabilidad-api/internal/domain"
	"github.com/jhoicas/Trazabilidad-api/internal/infrastructure/memory"
)

func TestStationCRUD(t *testing.T) {
	uc := usecase.NewStationUseCase(memory.NewStationStore())
	ctx := context.Background()

	torno, err := uc.Create(ctx, dto.CreateStationRequest{Name: "Torno", Type: "MECANIZADO", Line: "L1"})
	require.NoError(t, err)
	_, err = uc.Create(ctx, dto.CreateStationRequest{Name: "Inspección final", Type: "CALIDAD"})
	require.NoError(t, err)

	_, err = uc.Create(ctx, dto.CreateStationRequest{Name: "Torno", Type: "MECANIZADO"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	list, err := uc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Inspección final", list[0].Name)

	updated, err := uc.Update(ctx, torno.ID, dto.UpdateStationRequest{Line: strPtr("L2")})
	require.NoError(t, err)
	assert.Equal(t, "L2", updated.Line)

	_, err = uc.Update(ctx, torno.ID, dto.UpdateStationRequest{Name: strPtr("Inspección final")})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	require.NoError(t, uc.Delete(ctx, torno.ID))
	_, err = uc.GetByID(ctx, torno.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
