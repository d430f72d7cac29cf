package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Catalogo-api/internal/application/dto"
	"github.com/jhoicas/Catalogo-api/internal/application/report"
	"github.com/jhoicas/Catalogo-api/internal/application/usecase"
)

// CategoryHandler maneja las peticiones HTTP para Category.
type CategoryHandler struct {
	uc      *usecase.CategoryUseCase
	reports *report.ReportUseCase
}

// NewCategoryHandler construye el handler.
func NewCategoryHandler(uc *usecase.CategoryUseCase, reports *report.ReportUseCase) *CategoryHandler {
	return &CategoryHandler{uc: uc, reports: reports}
}

// Create godoc
// @Summary      Crear categoría
// @Tags         categories
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCategoryRequest  true  "Datos de la categoría"
// @Success      201   {object}  dto.CategoryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/categories [post]
func (h *CategoryHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCategoryRequest
	if e := bindJSON(c, &in); e != nil {
		return badRequest(c, e)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar categorías activas
// @Tags         categories
// @Produce      json
// @Success      200  {object}  dto.CategoryListResponse
// @Router       /api/categories [get]
func (h *CategoryHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Get godoc
// @Summary      Obtener categoría por código
// @Tags         categories
// @Produce      json
// @Param        code  path  string  true  "Código de la categoría"
// @Success      200   {object}  dto.CategoryResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/categories/{code} [get]
func (h *CategoryHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.UserContext(), c.Params("code"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar nombre y descripción
// @Tags         categories
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        code  path  string                     true  "Código de la categoría"
// @Param        body  body  dto.UpdateCategoryRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.CategoryResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/categories/{code} [put]
func (h *CategoryHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateCategoryRequest
	if e := bindJSON(c, &in); e != nil {
		return badRequest(c, e)
	}
	out, err := h.uc.Update(c.UserContext(), c.Params("code"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Desactivar categoría
// @Tags         categories
// @Security     Bearer
// @Param        code  path  string  true  "Código de la categoría"
// @Success      204
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/categories/{code} [delete]
func (h *CategoryHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("code")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Descendants godoc
// @Summary      Descendientes de una categoría
// @Tags         categories
// @Produce      json
// @Param        code       path   string  true   "Código de la categoría"
// @Param        max_depth  query  int     false  "Profundidad máxima (default 10)"
// @Param        inclusive  query  bool    false  "Incluir la propia categoría (default true)"
// @Success      200  {object}  dto.DescendantsResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/categories/{code}/descendants [get]
func (h *CategoryHandler) Descendants(c *fiber.Ctx) error {
	maxDepth := c.QueryInt("max_depth", h.uc.DefaultMaxDepth())
	inclusive := c.QueryBool("inclusive", true)
	out, err := h.uc.Descendants(c.UserContext(), c.Params("code"), maxDepth, inclusive)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Tree godoc
// @Summary      Árbol de categorías
// @Tags         categories
// @Produce      json
// @Param        root  query  string  false  "Código de la raíz (default: todas las raíces)"
// @Success      200   {object}  dto.CategoryTreeResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/categories/tree [get]
func (h *CategoryHandler) Tree(c *fiber.Ctx) error {
	out, err := h.reports.CategoryTree(c.UserContext(), c.Query("root"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Aggregation godoc
// @Summary      Agregación de categorías por nivel, rango de precios y desempeño
// @Tags         categories
// @Produce      json
// @Success      200  {object}  dto.CategoryAggregationResponse
// @Failure      504  {object}  dto.ErrorResponse
// @Router       /api/categories/aggregation [get]
func (h *CategoryHandler) Aggregation(c *fiber.Ctx) error {
	out, err := h.reports.CategoryAggregation(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
