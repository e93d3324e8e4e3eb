package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/PrecioVecino-api/internal/application/dto"
	"github.com/jhoicas/PrecioVecino-api/internal/application/shoppinglist"
	"github.com/jhoicas/PrecioVecino-api/internal/application/usecase"
	"github.com/jhoicas/PrecioVecino-api/internal/domain"
)

// ShoppingListHandler maneja las listas de compras del usuario autenticado.
type ShoppingListHandler struct {
	uc              *shoppinglist.UseCase
	pricingUC       *usecase.PricingUseCase
	defaultRadiusKm float64
}

// NewShoppingListHandler construye el handler.
func NewShoppingListHandler(uc *shoppinglist.UseCase, pricingUC *usecase.PricingUseCase, defaultRadiusKm float64) *ShoppingListHandler {
	return &ShoppingListHandler{uc: uc, pricingUC: pricingUC, defaultRadiusKm: defaultRadiusKm}
}

// Create godoc
// @Summary      Crear lista de compras
// @Tags         shopping-lists
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateShoppingListRequest  true  "Nombre y descripción"
// @Success      201   {object}  dto.ShoppingListResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/shopping-lists [post]
func (h *ShoppingListHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateShoppingListRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name es requerido"})
	}
	out, err := h.uc.Create(c.Context(), GetUserID(c), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos de lista inválidos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar mis listas de compras
// @Tags         shopping-lists
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.ShoppingListResponse
// @Router       /api/shopping-lists [get]
func (h *ShoppingListHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.ListByUser(c.Context(), GetUserID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener una lista con sus ítems
// @Tags         shopping-lists
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la lista"
// @Success      200  {object}  dto.ShoppingListWithItemsResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/shopping-lists/{id} [get]
func (h *ShoppingListHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), GetUserID(c), c.Params("id"))
	if err != nil {
		return listError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "lista no encontrada"})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Renombrar o re-describir una lista
// @Tags         shopping-lists
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la lista"
// @Param        body  body  dto.UpdateShoppingListRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.ShoppingListResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/shopping-lists/{id} [put]
func (h *ShoppingListHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateShoppingListRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Context(), GetUserID(c), c.Params("id"), in)
	if err != nil {
		return listError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "lista no encontrada"})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar una lista y todos sus ítems
// @Description  Borrado atómico: lista e ítems caen en la misma transacción.
// @Tags         shopping-lists
// @Security     Bearer
// @Param        id  path  string  true  "ID de la lista"
// @Success      200  {object}  dto.SuccessResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/shopping-lists/{id} [delete]
func (h *ShoppingListHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), GetUserID(c), c.Params("id")); err != nil {
		return listError(c, err)
	}
	return c.JSON(dto.SuccessResponse{Success: true})
}

// AddItem godoc
// @Summary      Agregar producto a una lista
// @Tags         shopping-lists
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la lista"
// @Param        body  body  dto.AddListItemRequest  true  "Producto y cantidad"
// @Success      201   {object}  dto.ShoppingListItemResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/shopping-lists/{id}/items [post]
func (h *ShoppingListHandler) AddItem(c *fiber.Ctx) error {
	var in dto.AddListItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.ProductID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "product_id es requerido"})
	}
	// La validación de cantidad vive en el caso de uso: aquí no se corrige.
	out, err := h.uc.AddItem(c.Context(), GetUserID(c), c.Params("id"), in)
	if err != nil {
		return listError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// UpdateItem godoc
// @Summary      Modificar un ítem de la lista
// @Tags         shopping-lists
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id      path  string  true  "ID de la lista"
// @Param        itemId  path  string  true  "ID del ítem"
// @Param        body    body  dto.UpdateListItemRequest  true  "Datos a actualizar"
// @Success      200     {object}  dto.ShoppingListItemResponse
// @Failure      404     {object}  dto.ErrorResponse
// @Router       /api/shopping-lists/{id}/items/{itemId} [put]
func (h *ShoppingListHandler) UpdateItem(c *fiber.Ctx) error {
	var in dto.UpdateListItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.UpdateItem(c.Context(), GetUserID(c), c.Params("id"), c.Params("itemId"), in)
	if err != nil {
		return listError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "ítem no encontrado"})
	}
	return c.JSON(out)
}

// DeleteItem godoc
// @Summary      Eliminar un ítem de la lista
// @Tags         shopping-lists
// @Security     Bearer
// @Param        id      path  string  true  "ID de la lista"
// @Param        itemId  path  string  true  "ID del ítem"
// @Success      200  {object}  dto.SuccessResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/shopping-lists/{id}/items/{itemId} [delete]
func (h *ShoppingListHandler) DeleteItem(c *fiber.Ctx) error {
	if err := h.uc.DeleteItem(c.Context(), GetUserID(c), c.Params("id"), c.Params("itemId")); err != nil {
		return listError(c, err)
	}
	return c.JSON(dto.SuccessResponse{Success: true})
}

// Prices godoc
// @Summary      Cotizar la lista en las sucursales dentro del radio
// @Description  Devuelve la vista por sucursal (subtotal + faltantes) y el plan distribuido de menor costo total.
// @Tags         shopping-lists
// @Security     Bearer
// @Produce      json
// @Param        id         path   string  true   "ID de la lista"
// @Param        latitude   query  number  true   "Latitud del centro"
// @Param        longitude  query  number  true   "Longitud del centro"
// @Param        radius     query  number  false  "Radio en km"
// @Success      200  {object}  dto.ListPricingResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/shopping-lists/{id}/prices [get]
func (h *ShoppingListHandler) Prices(c *fiber.Ctx) error {
	gq, errResp := parseGeoQuery(c, h.defaultRadiusKm)
	if errResp != nil {
		return c.Status(fiber.StatusBadRequest).JSON(*errResp)
	}
	out, err := h.pricingUC.PriceShoppingList(c.Context(), GetUserID(c), c.Params("id"), gq)
	if err != nil {
		return pricingError(c, err)
	}
	return c.JSON(out)
}

// listError traduce los errores de listas a HTTP.
func listError(c *fiber.Ctx, err error) error {
	if errors.Is(err, domain.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "lista no encontrada"})
	}
	if errors.Is(err, domain.ErrForbidden) {
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "la lista pertenece a otro usuario"})
	}
	if errors.Is(err, domain.ErrInvalidInput) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
