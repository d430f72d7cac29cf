package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Catalogo-api/internal/application/report"
)

// ReportHandler expone los cuatro reportes de agregación.
type ReportHandler struct {
	uc *report.ReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *report.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// All godoc
// @Summary      Los cuatro reportes sobre un mismo snapshot
// @Tags         reports
// @Produce      json
// @Success      200  {object}  dto.ReportBundle
// @Failure      503  {object}  dto.ErrorResponse
// @Failure      504  {object}  dto.ErrorResponse
// @Router       /api/reports [get]
func (h *ReportHandler) All(c *fiber.Ctx) error {
	out, err := h.uc.All(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// CategoryStats godoc
// @Summary      Estadísticas por categoría (productos directos)
// @Tags         reports
// @Produce      json
// @Success      200  {object}  dto.CategoryStatsReport
// @Router       /api/reports/category-stats [get]
func (h *ReportHandler) CategoryStats(c *fiber.Ctx) error {
	out, err := h.uc.CategoryStats(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Hierarchy godoc
// @Summary      Totales acumulados por raíz incluyendo descendientes
// @Tags         reports
// @Produce      json
// @Success      200  {object}  dto.HierarchyReport
// @Router       /api/reports/hierarchy [get]
func (h *ReportHandler) Hierarchy(c *fiber.Ctx) error {
	out, err := h.uc.Hierarchy(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// TopProducts godoc
// @Summary      Productos de mayor precio por categoría
// @Tags         reports
// @Produce      json
// @Success      200  {object}  dto.TopProductsReport
// @Router       /api/reports/top-products [get]
func (h *ReportHandler) TopProducts(c *fiber.Ctx) error {
	out, err := h.uc.TopProducts(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Distribution godoc
// @Summary      Distribución por nivel, rango de precios y nivel de stock
// @Tags         reports
// @Produce      json
// @Success      200  {object}  dto.DistributionReport
// @Router       /api/reports/distribution [get]
func (h *ReportHandler) Distribution(c *fiber.Ctx) error {
	out, err := h.uc.Distribution(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
