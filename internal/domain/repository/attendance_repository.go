package repository

import "github.com/tu-usuario/cafe-pos/internal/domain/entity"

// AttendanceRepository puerto de persistencia para asistencia.
// GetByUserAndDate devuelve (nil, nil) si el usuario no tiene registro ese día.
type AttendanceRepository interface {
	Create(a *entity.Attendance) error
	Update(a *entity.Attendance) error
	GetByUserAndDate(userID, date string) (*entity.Attendance, error)
	List() ([]*entity.Attendance, error)
	ListByDate(date string) ([]*entity.Attendance, error)
	ListByUser(userID string) ([]*entity.Attendance, error)
	Clear() error
}
