package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/cafe-pos/internal/application/admin"
	"github.com/tu-usuario/cafe-pos/internal/application/dto"
)

// AdminHandler maneja configuración, carga inicial y vaciado de libros (solo owner).
type AdminHandler struct {
	uc *admin.UseCase
}

// NewAdminHandler construye el handler.
func NewAdminHandler(uc *admin.UseCase) *AdminHandler {
	return &AdminHandler{uc: uc}
}

// GetSettings godoc
// @Summary      Configuración del negocio
// @Tags         settings
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.SettingsDTO
// @Router       /api/settings [get]
func (h *AdminHandler) GetSettings(c *fiber.Ctx) error {
	out, err := h.uc.GetSettings()
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// UpdateSettings godoc
// @Summary      Actualizar configuración
// @Tags         settings
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SettingsDTO  true  "Configuración completa"
// @Success      200   {object}  dto.SettingsDTO
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/settings [put]
func (h *AdminHandler) UpdateSettings(c *fiber.Ctx) error {
	var in dto.SettingsDTO
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.UpdateSettings(in)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// Init godoc
// @Summary      Carga inicial de datos
// @Description  Reemplaza catálogo, materias primas, usuarios y configuración; vacía los libros operativos.
// @Tags         admin
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.InitDataRequest  true  "Datos semilla"
// @Success      204   "Sin contenido"
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/init [post]
func (h *AdminHandler) Init(c *fiber.Ctx) error {
	var in dto.InitDataRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if err := h.uc.Init(in); err != nil {
		return domainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ClearData godoc
// @Summary      Vaciar libros operativos
// @Description  Borra ventas, asistencia y mermas. Catálogo, inventario y usuarios quedan intactos.
// @Tags         admin
// @Security     Bearer
// @Success      204  "Sin contenido"
// @Router       /api/clear-data [post]
func (h *AdminHandler) ClearData(c *fiber.Ctx) error {
	if err := h.uc.ClearData(); err != nil {
		return domainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
