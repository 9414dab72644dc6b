package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/cafe-pos/internal/application/dto"
	"github.com/tu-usuario/cafe-pos/internal/application/stock"
)

// MaterialHandler maneja las peticiones HTTP del inventario de materias primas.
type MaterialHandler struct {
	uc *stock.UseCase
}

// NewMaterialHandler construye el handler.
func NewMaterialHandler(uc *stock.UseCase) *MaterialHandler {
	return &MaterialHandler{uc: uc}
}

// List godoc
// @Summary      Listar materias primas
// @Tags         materials
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.MaterialResponse
// @Router       /api/materials [get]
func (h *MaterialHandler) List(c *fiber.Ctx) error {
	materials, err := h.uc.Snapshot()
	if err != nil {
		return domainError(c, err)
	}
	out := make([]dto.MaterialResponse, 0, len(materials))
	for _, m := range materials {
		out = append(out, dto.ToMaterialResponse(m))
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear materia prima
// @Tags         materials
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateMaterialRequest  true  "Datos de la materia prima"
// @Success      201   {object}  dto.MaterialResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/materials [post]
func (h *MaterialHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateMaterialRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	m, err := h.uc.CreateMaterial(in)
	if err != nil {
		return domainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ToMaterialResponse(m))
}

// Update godoc
// @Summary      Actualizar materia prima
// @Tags         materials
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la materia prima"
// @Param        body  body  dto.UpdateMaterialRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.MaterialResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/materials/{id} [put]
func (h *MaterialHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	var in dto.UpdateMaterialRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	m, err := h.uc.UpdateMaterial(id, in)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(dto.ToMaterialResponse(m))
}

// Adjust godoc
// @Summary      Ajustar stock manualmente
// @Description  Aplica un delta al stock (reconteo o reabastecimiento). El resultado queda acotado en cero.
// @Tags         materials
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la materia prima"
// @Param        body  body  dto.AdjustStockRequest  true  "Delta y notas"
// @Success      200   {object}  dto.MaterialResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/materials/{id}/adjust [post]
func (h *MaterialHandler) Adjust(c *fiber.Ctx) error {
	id := c.Params("id")
	var in dto.AdjustStockRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	m, err := h.uc.Adjust(c.UserContext(), id, in.Delta, in.Notes, GetUserID(c))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(dto.ToMaterialResponse(m))
}

// Movements godoc
// @Summary      Rastro de movimientos de un material
// @Tags         materials
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la materia prima"
// @Success      200  {array}  dto.StockMovementResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/materials/{id}/movements [get]
func (h *MaterialHandler) Movements(c *fiber.Ctx) error {
	movements, err := h.uc.Movements(c.Params("id"))
	if err != nil {
		return domainError(c, err)
	}
	out := make([]dto.StockMovementResponse, 0, len(movements))
	for _, m := range movements {
		out = append(out, dto.ToStockMovementResponse(m))
	}
	return c.JSON(out)
}

// Suggestions godoc
// @Summary      Sugerencias de compra
// @Description  Materiales bajo su umbral de reorden con la cantidad y costo estimado para llegar a la meta.
// @Tags         materials
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.PurchaseSuggestionDTO
// @Router       /api/purchase-suggestions [get]
func (h *MaterialHandler) Suggestions(c *fiber.Ctx) error {
	out, err := h.uc.Suggestions()
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}
