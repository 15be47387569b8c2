package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Trazabilidad-api/internal/application/report"
)

// ReportHandler descarga del reporte PDF de trazabilidad.
type ReportHandler struct {
	uc *report.PDFUseCase
}

// NewReportHandler construye el handler de reportes.
func NewReportHandler(uc *report.PDFUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// DownloadPart godoc
// @Summary      Reporte PDF de una pieza
// @Tags         parts
// @Produce      application/pdf
// @Security     BearerAuth
// @Param        id   path  string  true  "ID de la pieza"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/parts/{id}/report [get]
func (h *ReportHandler) DownloadPart(c *fiber.Ctx) error {
	pdfBytes, filename, err := h.uc.DownloadPartReport(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Send(pdfBytes)
}
