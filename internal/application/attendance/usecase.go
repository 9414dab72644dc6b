// Package attendance implementa el ciclo de asistencia: check-in único por
// usuario y día, check-out con horas trabajadas y derivación de estado
// (present/late/half-day) según la configuración del negocio.
package attendance

import (
	"math"
	"time"

	"github.com/tu-usuario/cafe-pos/internal/application/dto"
	"github.com/tu-usuario/cafe-pos/internal/domain"
	"github.com/tu-usuario/cafe-pos/internal/domain/entity"
	"github.com/tu-usuario/cafe-pos/internal/domain/repository"
)

// Umbral de media jornada: menos de estas horas al hacer checkout marca half-day.
const halfDayHours = 4.0

// UseCase operaciones de asistencia.
type UseCase struct {
	attendance repository.AttendanceRepository
	settings   repository.SettingsRepository
	now        func() time.Time // inyectable en tests
}

// NewUseCase construye el caso de uso.
func NewUseCase(attendance repository.AttendanceRepository, settings repository.SettingsRepository) *UseCase {
	return &UseCase{attendance: attendance, settings: settings, now: time.Now}
}

// CheckIn abre la jornada del usuario. Un segundo check-in el mismo día es
// conflicto. El estado queda late si la hora supera workStartTime más la
// tolerancia configurada; si no, present.
func (uc *UseCase) CheckIn(userID, userName string) (*dto.AttendanceResponse, error) {
	if userID == "" {
		return nil, domain.ErrInvalidInput
	}
	now := uc.now()
	date := now.Format(entity.DateLayout)

	existing, err := uc.attendance.GetByUserAndDate(userID, date)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrConflict
	}

	rec := &entity.Attendance{
		ID:       domain.NewID(domain.PrefixAttendance),
		UserID:   userID,
		UserName: userName,
		CheckIn:  now,
		Date:     date,
		Status:   uc.statusForCheckIn(now),
	}
	if err := uc.attendance.Create(rec); err != nil {
		return nil, err
	}
	return dto.ToAttendanceResponse(rec), nil
}

// statusForCheckIn deriva present o late comparando la hora del check-in con
// workStartTime + lateThreshold de la configuración. Sin configuración guardada
// se usan los valores por defecto del negocio.
func (uc *UseCase) statusForCheckIn(at time.Time) string {
	cfg, err := uc.settings.Get()
	if err != nil || cfg == nil {
		cfg = entity.DefaultSettings()
	}
	start, err := time.ParseInLocation("15:04", cfg.WorkStartTime, at.Location())
	if err != nil {
		return entity.AttendancePresent
	}
	limit := time.Date(at.Year(), at.Month(), at.Day(),
		start.Hour(), start.Minute(), 0, 0, at.Location()).
		Add(time.Duration(cfg.LateThresholdMinutes) * time.Minute)
	if at.After(limit) {
		return entity.AttendanceLate
	}
	return entity.AttendancePresent
}

// CheckOut cierra la jornada de hoy: exige un check-in previo sin checkout,
// calcula workHours = (salida - entrada) en horas con 2 decimales y degrada
// el estado a half-day por debajo del umbral de media jornada.
func (uc *UseCase) CheckOut(userID string) (*dto.AttendanceResponse, error) {
	if userID == "" {
		return nil, domain.ErrInvalidInput
	}
	now := uc.now()
	date := now.Format(entity.DateLayout)

	rec, err := uc.attendance.GetByUserAndDate(userID, date)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, domain.ErrNotFound
	}
	if rec.CheckOut != nil {
		return nil, domain.ErrConflict
	}

	out := now
	rec.CheckOut = &out
	hours := math.Round(now.Sub(rec.CheckIn).Hours()*100) / 100
	rec.WorkHours = &hours
	if hours < halfDayHours {
		rec.Status = entity.AttendanceHalfDay
	}
	if err := uc.attendance.Update(rec); err != nil {
		return nil, err
	}
	return dto.ToAttendanceResponse(rec), nil
}

// List devuelve registros de asistencia filtrados por día y/o usuario.
func (uc *UseCase) List(date, userID string) ([]*dto.AttendanceResponse, error) {
	var (
		list []*entity.Attendance
		err  error
	)
	switch {
	case date != "":
		list, err = uc.attendance.ListByDate(date)
	case userID != "":
		list, err = uc.attendance.ListByUser(userID)
	default:
		list, err = uc.attendance.List()
	}
	if err != nil {
		return nil, err
	}

	out := make([]*dto.AttendanceResponse, 0, len(list))
	for _, rec := range list {
		if userID != "" && rec.UserID != userID {
			continue
		}
		out = append(out, dto.ToAttendanceResponse(rec))
	}
	return out, nil
}
