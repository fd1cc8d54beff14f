package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/muebleria-pos/internal/application/dto"
	"github.com/tu-usuario/muebleria-pos/internal/application/reports"
	"github.com/tu-usuario/muebleria-pos/internal/domain"
)

// ReportHandler genera el reporte de ventas descargable (solo gerente).
type ReportHandler struct {
	uc *reports.SalesReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *reports.SalesReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// Generate godoc
// @Summary      Generar reporte de ventas
// @Description  Exporta las ventas de un rango de fechas como XLSX o PDF.
// @Tags         reports
// @Security     Bearer
// @Accept       json
// @Produce      application/octet-stream
// @Param        body  body  dto.SalesReportRequest  true  "Formato y rango de fechas"
// @Success      200   {file}    file
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/reports/sales [post]
func (h *ReportHandler) Generate(c *fiber.Ctx) error {
	var in dto.SalesReportRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	file, err := h.uc.Generate(c.Context(), in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "format debe ser xlsx o pdf y las fechas formato 2006-01-02"})
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NO_SALES", Message: "no se encontraron ventas para el rango seleccionado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, file.ContentType)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+file.Filename+`"`)
	return c.Send(file.Content)
}
