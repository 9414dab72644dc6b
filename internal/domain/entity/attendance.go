package entity

import "time"

// Estados de asistencia.
const (
	AttendancePresent = "present"
	AttendanceLate    = "late"
	AttendanceAbsent  = "absent" // solo reporte: nunca se persiste un registro "absent"
	AttendanceHalfDay = "half-day"
)

// DateLayout formato de día calendario usado en Attendance.Date y Waste.Date.
const DateLayout = "2006-01-02"

// Attendance registra la jornada de un empleado. El estado estable esperado es
// un registro abierto (sin checkout) por usuario y día; el segundo check-in
// del mismo día se rechaza con conflicto.
type Attendance struct {
	ID        string
	UserID    string
	UserName  string
	CheckIn   time.Time
	CheckOut  *time.Time
	Date      string // YYYY-MM-DD local
	Status    string
	Notes     string
	WorkHours *float64 // (CheckOut - CheckIn) en horas, redondeado a 2 decimales
}
