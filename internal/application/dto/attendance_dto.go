package dto

import (
	"time"

	"github.com/tu-usuario/cafe-pos/internal/domain/entity"
)

// AttendanceResponse representación pública de un registro de asistencia.
type AttendanceResponse struct {
	ID        string     `json:"id"`
	UserID    string     `json:"userId"`
	UserName  string     `json:"userName"`
	CheckIn   time.Time  `json:"checkIn"`
	CheckOut  *time.Time `json:"checkOut,omitempty"`
	Date      string     `json:"date"`
	Status    string     `json:"status"`
	Notes     string     `json:"notes,omitempty"`
	WorkHours *float64   `json:"workHours,omitempty"`
}

// ToAttendanceResponse convierte la entidad a su DTO.
func ToAttendanceResponse(a *entity.Attendance) *AttendanceResponse {
	return &AttendanceResponse{
		ID:        a.ID,
		UserID:    a.UserID,
		UserName:  a.UserName,
		CheckIn:   a.CheckIn,
		CheckOut:  a.CheckOut,
		Date:      a.Date,
		Status:    a.Status,
		Notes:     a.Notes,
		WorkHours: a.WorkHours,
	}
}
