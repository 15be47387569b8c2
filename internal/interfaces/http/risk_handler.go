package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Trazabilidad-api/internal/application/dto"
	apprisk "github.com/jhoicas/Trazabilidad-api/internal/application/risk"
)

// RiskHandler expone el motor de riesgo: evaluación por pieza, manual y anomalías.
type RiskHandler struct {
	svc *apprisk.Service
}

// NewRiskHandler construye el handler de riesgo.
func NewRiskHandler(svc *apprisk.Service) *RiskHandler {
	return &RiskHandler{svc: svc}
}

// ScoreManual godoc
// @Summary      Evaluación manual de riesgo
// @Description  Evalúa agregados enviados por el cliente sin consultar el Event Store.
// @Tags         risk
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.ManualRiskRequest  true  "segundos, reprocesos, scrap, estación, tipo"
// @Success      200   {object}  dto.RiskAssessmentResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/risk/score [post]
func (h *RiskHandler) ScoreManual(c *fiber.Ctx) error {
	var in dto.ManualRiskRequest
	if ok, err := bindJSON(c, &in); !ok {
		return err
	}
	a, err := h.svc.ScoreManual(apprisk.ToManualInput(in))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(apprisk.ToAssessmentResponse("", a))
}

// ScorePart godoc
// @Summary      Riesgo de una pieza
// @Tags         risk
// @Produce      json
// @Security     BearerAuth
// @Param        part_id  path  string  true  "ID de la pieza"
// @Success      200  {object}  dto.RiskAssessmentResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/risk/parts/{part_id} [get]
func (h *RiskHandler) ScorePart(c *fiber.Ctx) error {
	partID := c.Params("part_id")
	a, err := h.svc.ScorePart(c.UserContext(), partID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(apprisk.ToAssessmentResponse(partID, *a))
}

// Anomalies godoc
// @Summary      Piezas con tiempo total anómalo
// @Tags         risk
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.AnomalyReportResponse
// @Router       /api/risk/anomalies [get]
func (h *RiskHandler) Anomalies(c *fiber.Ctx) error {
	report, err := h.svc.FindAnomalies(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(apprisk.ToAnomalyReportResponse(report))
}
