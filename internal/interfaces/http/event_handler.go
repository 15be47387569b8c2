package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Trazabilidad-api/internal/application/dto"
	"github.com/jhoicas/Trazabilidad-api/internal/application/trace"
)

// EventHandler maneja los eventos de proceso (paso de piezas por estaciones).
type EventHandler struct {
	uc *trace.EventUseCase
}

// NewEventHandler construye el handler de eventos.
func NewEventHandler(uc *trace.EventUseCase) *EventHandler {
	return &EventHandler{uc: uc}
}

// Register godoc
// @Summary      Registrar evento de proceso
// @Description  Entrada de una pieza a una estación. Con outcome el evento queda cerrado y la pieza toma ese estado.
// @Tags         trace-events
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.RegisterEventRequest  true  "pieza, estación, resultado opcional"
// @Success      201   {object}  dto.EventResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/trace-events [post]
func (h *EventHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterEventRequest
	if ok, err := bindJSON(c, &in); !ok {
		return err
	}
	out, err := h.uc.RegisterEvent(c.UserContext(), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Close godoc
// @Summary      Cerrar evento de proceso
// @Tags         trace-events
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string                 true  "ID del evento"
// @Param        body  body  dto.CloseEventRequest  true  "resultado, salida opcional"
// @Success      200   {object}  dto.EventResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/trace-events/{id}/close [patch]
func (h *EventHandler) Close(c *fiber.Ctx) error {
	var in dto.CloseEventRequest
	if ok, err := bindJSON(c, &in); !ok {
		return err
	}
	out, err := h.uc.CloseEvent(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListByPart godoc
// @Summary      Historial de una pieza
// @Tags         trace-events
// @Produce      json
// @Security     BearerAuth
// @Param        part_id  path  string  true  "ID de la pieza"
// @Success      200  {array}   dto.EventResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/trace-events/part/{part_id} [get]
func (h *EventHandler) ListByPart(c *fiber.Ctx) error {
	out, err := h.uc.ListPartHistory(c.UserContext(), c.Params("part_id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
