package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/cafe-pos/internal/application/attendance"
)

// AttendanceHandler maneja las peticiones HTTP de asistencia.
type AttendanceHandler struct {
	uc *attendance.UseCase
}

// NewAttendanceHandler construye el handler.
func NewAttendanceHandler(uc *attendance.UseCase) *AttendanceHandler {
	return &AttendanceHandler{uc: uc}
}

// CheckIn godoc
// @Summary      Marcar entrada
// @Description  Abre la jornada del usuario autenticado. Un segundo check-in el mismo día responde 409.
// @Tags         attendance
// @Security     Bearer
// @Produce      json
// @Success      201  {object}  dto.AttendanceResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/attendance/checkin [post]
func (h *AttendanceHandler) CheckIn(c *fiber.Ctx) error {
	out, err := h.uc.CheckIn(GetUserID(c), GetFullName(c))
	if err != nil {
		return domainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// CheckOut godoc
// @Summary      Marcar salida
// @Description  Cierra la jornada de hoy y calcula las horas trabajadas.
// @Tags         attendance
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.AttendanceResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/attendance/checkout [post]
func (h *AttendanceHandler) CheckOut(c *fiber.Ctx) error {
	out, err := h.uc.CheckOut(GetUserID(c))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar asistencia
// @Tags         attendance
// @Security     Bearer
// @Produce      json
// @Param        date   query  string  false  "Día calendario YYYY-MM-DD"
// @Param        userId query  string  false  "Filtrar por usuario"
// @Success      200    {array}  dto.AttendanceResponse
// @Router       /api/attendance [get]
func (h *AttendanceHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Query("date"), c.Query("userId"))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}
