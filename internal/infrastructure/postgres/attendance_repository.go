package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/cafe-pos/internal/domain"
	"github.com/tu-usuario/cafe-pos/internal/domain/entity"
	"github.com/tu-usuario/cafe-pos/internal/domain/repository"
)

var _ repository.AttendanceRepository = (*AttendanceRepo)(nil)

// AttendanceRepo implementación de AttendanceRepository sobre PostgreSQL (usable con pool o tx).
// La tabla tiene UNIQUE (user_id, day): el check-in duplicado también falla a
// nivel de base aunque el caso de uso ya lo valide.
type AttendanceRepo struct {
	q Querier
}

// NewAttendanceRepository construye el adaptador de asistencia. Pasar pool o tx (Querier).
func NewAttendanceRepository(q Querier) *AttendanceRepo {
	return &AttendanceRepo{q: q}
}

const attendanceColumns = `id, user_id, user_name, check_in, check_out, day, status, notes, work_hours`

func scanAttendance(row pgx.Row) (*entity.Attendance, error) {
	var a entity.Attendance
	err := row.Scan(&a.ID, &a.UserID, &a.UserName, &a.CheckIn, &a.CheckOut,
		&a.Date, &a.Status, &a.Notes, &a.WorkHours)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// Create persiste un registro de asistencia.
func (r *AttendanceRepo) Create(a *entity.Attendance) error {
	query := `
		INSERT INTO attendance (id, user_id, user_name, check_in, check_out, day, status, notes, work_hours)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		a.ID, a.UserID, a.UserName, a.CheckIn, a.CheckOut, a.Date, a.Status, a.Notes, a.WorkHours,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("insert attendance: %w", err)
	}
	return nil
}

// Update actualiza un registro (checkout, horas, estado).
func (r *AttendanceRepo) Update(a *entity.Attendance) error {
	query := `
		UPDATE attendance
		SET check_out = $2, status = $3, notes = $4, work_hours = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		a.ID, a.CheckOut, a.Status, a.Notes, a.WorkHours,
	)
	if err != nil {
		return fmt.Errorf("update attendance: %w", err)
	}
	return nil
}

// GetByUserAndDate obtiene el registro del usuario en el día dado.
func (r *AttendanceRepo) GetByUserAndDate(userID, date string) (*entity.Attendance, error) {
	query := `SELECT ` + attendanceColumns + ` FROM attendance WHERE user_id = $1 AND day = $2`
	a, err := scanAttendance(r.q.QueryRow(context.Background(), query, userID, date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get attendance: %w", err)
	}
	return a, nil
}

// List devuelve todos los registros, más recientes primero.
func (r *AttendanceRepo) List() ([]*entity.Attendance, error) {
	return r.listQuery(`SELECT ` + attendanceColumns + ` FROM attendance ORDER BY check_in DESC`)
}

// ListByDate filtra por día calendario.
func (r *AttendanceRepo) ListByDate(date string) ([]*entity.Attendance, error) {
	return r.listQuery(`SELECT `+attendanceColumns+` FROM attendance WHERE day = $1 ORDER BY check_in`, date)
}

// ListByUser filtra por usuario, más recientes primero.
func (r *AttendanceRepo) ListByUser(userID string) ([]*entity.Attendance, error) {
	return r.listQuery(`SELECT `+attendanceColumns+` FROM attendance WHERE user_id = $1 ORDER BY check_in DESC`, userID)
}

func (r *AttendanceRepo) listQuery(query string, args ...any) ([]*entity.Attendance, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list attendance: %w", err)
	}
	defer rows.Close()
	var list []*entity.Attendance
	for rows.Next() {
		a, err := scanAttendance(rows)
		if err != nil {
			return nil, fmt.Errorf("scan attendance: %w", err)
		}
		list = append(list, a)
	}
	return list, rows.Err()
}

// Clear vacía el libro de asistencia (reinicio administrativo).
func (r *AttendanceRepo) Clear() error {
	if _, err := r.q.Exec(context.Background(), `DELETE FROM attendance`); err != nil {
		return fmt.Errorf("clear attendance: %w", err)
	}
	return nil
}
