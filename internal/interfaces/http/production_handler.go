package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Trazabilidad-api/internal/application/usecase"
)

// ProductionHandler métricas de producción (tablero del supervisor).
type ProductionHandler struct {
	uc *usecase.ProductionUseCase
}

// NewProductionHandler construye el handler de métricas de producción.
func NewProductionHandler(uc *usecase.ProductionUseCase) *ProductionHandler {
	return &ProductionHandler{uc: uc}
}

// PartsByStatus godoc
// @Summary      Piezas por estado
// @Tags         production
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.PartsByStatusResponse
// @Router       /api/production/parts-by-status [get]
func (h *ProductionHandler) PartsByStatus(c *fiber.Ctx) error {
	out, err := h.uc.PartsByStatus(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Throughput godoc
// @Summary      Piezas OK por día
// @Tags         production
// @Produce      json
// @Security     BearerAuth
// @Param        from  query  string  true  "Desde (YYYY-MM-DD)"
// @Param        to    query  string  true  "Hasta (YYYY-MM-DD, inclusive)"
// @Success      200  {object}  dto.ThroughputResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/production/throughput [get]
func (h *ProductionHandler) Throughput(c *fiber.Ctx) error {
	out, err := h.uc.Throughput(c.UserContext(), c.Query("from"), c.Query("to"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// StationCycleTime godoc
// @Summary      Tiempo de ciclo promedio por estación
// @Tags         production
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  dto.StationCycleTimeResponse
// @Router       /api/production/station-cycle-time [get]
func (h *ProductionHandler) StationCycleTime(c *fiber.Ctx) error {
	out, err := h.uc.StationCycleTimes(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ScrapRate godoc
// @Summary      Tasa de scrap por tipo de pieza
// @Tags         production
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  dto.ScrapRateResponse
// @Router       /api/production/scrap-rate [get]
func (h *ProductionHandler) ScrapRate(c *fiber.Ctx) error {
	out, err := h.uc.ScrapRate(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
