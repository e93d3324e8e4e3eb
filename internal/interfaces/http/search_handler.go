package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/PrecioVecino-api/internal/application/dto"
	"github.com/jhoicas/PrecioVecino-api/internal/application/usecase"
)

// SearchHandler maneja el historial de búsquedas y los agregados populares.
type SearchHandler struct {
	uc *usecase.SearchUseCase
}

// NewSearchHandler construye el handler.
func NewSearchHandler(uc *usecase.SearchUseCase) *SearchHandler {
	return &SearchHandler{uc: uc}
}

// History godoc
// @Summary      Mis búsquedas recientes
// @Tags         search-history
// @Security     Bearer
// @Produce      json
// @Param        limit  query  int  false  "Máximo de entradas"  default(20)
// @Success      200  {array}  dto.SearchEntryResponse
// @Router       /api/search-history [get]
func (h *SearchHandler) History(c *fiber.Ctx) error {
	out, err := h.uc.History(c.Context(), GetUserID(c), c.QueryInt("limit", 0))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Insights godoc
// @Summary      Mis términos y categorías más buscados
// @Tags         search-history
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.SearchStatsResponse
// @Router       /api/search-history/insights [get]
func (h *SearchHandler) Insights(c *fiber.Ctx) error {
	out, err := h.uc.Stats(c.Context(), GetUserID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Clear godoc
// @Summary      Borrar todo mi historial de búsquedas
// @Tags         search-history
// @Security     Bearer
// @Success      200  {object}  dto.SuccessResponse
// @Router       /api/search-history [delete]
func (h *SearchHandler) Clear(c *fiber.Ctx) error {
	if err := h.uc.ClearHistory(c.Context(), GetUserID(c)); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.SuccessResponse{Success: true})
}

// Popular godoc
// @Summary      Términos más buscados por todos los usuarios
// @Tags         search-history
// @Produce      json
// @Param        days   query  int  false  "Ventana en días"     default(7)
// @Param        limit  query  int  false  "Máximo de términos"  default(10)
// @Success      200  {array}  dto.SearchCountResponse
// @Router       /api/popular-searches [get]
func (h *SearchHandler) Popular(c *fiber.Ctx) error {
	out, err := h.uc.Popular(c.Context(), c.QueryInt("days", 0), c.QueryInt("limit", 0))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
