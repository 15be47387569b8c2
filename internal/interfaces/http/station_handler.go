package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Trazabilidad-api/internal/application/dto"
	"github.com/jhoicas/Trazabilidad-api/internal/application/usecase"
)

// StationHandler maneja las peticiones HTTP de estaciones.
type StationHandler struct {
	uc *usecase.StationUseCase
}

// NewStationHandler construye el handler de estaciones.
func NewStationHandler(uc *usecase.StationUseCase) *StationHandler {
	return &StationHandler{uc: uc}
}

// Create godoc
// @Summary      Crear estación
// @Tags         stations
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreateStationRequest  true  "nombre, tipo, línea"
// @Success      201   {object}  dto.StationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/stations [post]
func (h *StationHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateStationRequest
	if ok, err := bindJSON(c, &in); !ok {
		return err
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener estación
// @Tags         stations
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  string  true  "ID de la estación"
// @Success      200  {object}  dto.StationResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stations/{id} [get]
func (h *StationHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar estaciones
// @Tags         stations
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  dto.StationResponse
// @Router       /api/stations [get]
func (h *StationHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar estación
// @Tags         stations
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string                    true  "ID de la estación"
// @Param        body  body  dto.UpdateStationRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.StationResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/stations/{id} [patch]
func (h *StationHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateStationRequest
	if ok, err := bindJSON(c, &in); !ok {
		return err
	}
	out, err := h.uc.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar estación
// @Tags         stations
// @Security     BearerAuth
// @Param        id   path  string  true  "ID de la estación"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/stations/{id} [delete]
func (h *StationHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
