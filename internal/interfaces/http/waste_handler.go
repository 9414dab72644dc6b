package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/cafe-pos/internal/application/dto"
	"github.com/tu-usuario/cafe-pos/internal/application/waste"
)

// WasteHandler maneja las peticiones HTTP del libro de mermas.
type WasteHandler struct {
	uc *waste.UseCase
}

// NewWasteHandler construye el handler.
func NewWasteHandler(uc *waste.UseCase) *WasteHandler {
	return &WasteHandler{uc: uc}
}

// Create godoc
// @Summary      Reportar merma
// @Description  Registra la merma y descuenta el stock del material en una sola transacción.
// @Tags         waste
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateWasteRequest  true  "Material, cantidad y motivo"
// @Success      201   {object}  dto.WasteResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/waste [post]
func (h *WasteHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateWasteRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.PostWaste(c.UserContext(), in, GetUserID(c), GetFullName(c))
	if err != nil {
		return domainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar mermas
// @Tags         waste
// @Security     Bearer
// @Produce      json
// @Param        date  query  string  false  "Día calendario YYYY-MM-DD"
// @Success      200   {array}  dto.WasteResponse
// @Router       /api/waste [get]
func (h *WasteHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Query("date"))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}
