package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/cafe-pos/internal/application/analytics"
)

// DashboardHandler maneja el resumen del día (solo owner).
type DashboardHandler struct {
	uc *analytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *analytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetStats godoc
// @Summary      Resumen del día
// @Description  Ventas, ganancia, mermas, stock bajo, sugerencias de compra y asistencia de hoy.
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardStatsDTO
// @Router       /api/dashboard [get]
func (h *DashboardHandler) GetStats(c *fiber.Ctx) error {
	out, err := h.uc.GetStats()
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}
