package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/cafe-pos/internal/domain/entity"
	"github.com/tu-usuario/cafe-pos/internal/domain/repository"
)

var _ repository.WasteRepository = (*WasteRepo)(nil)

// WasteRepo implementación del libro de mermas sobre PostgreSQL (usable con pool o tx).
type WasteRepo struct {
	q Querier
}

// NewWasteRepository construye el adaptador del libro de mermas. Pasar pool o tx (Querier).
func NewWasteRepository(q Querier) *WasteRepo {
	return &WasteRepo{q: q}
}

const wasteColumns = `id, material_id, material_name, unit, quantity, unit_cost, total_loss, reason, reported_by, reported_by_id, ts, day`

func scanWaste(row pgx.Row) (*entity.Waste, error) {
	var w entity.Waste
	err := row.Scan(&w.ID, &w.MaterialID, &w.MaterialName, &w.Unit, &w.Quantity,
		&w.UnitCost, &w.TotalLoss, &w.Reason, &w.ReportedBy, &w.ReportedByID,
		&w.Timestamp, &w.Date)
	if err != nil {
		return nil, err
	}
	return &w, nil
}

// Create persiste una merma. Solo inserción: el libro es append-only.
func (r *WasteRepo) Create(w *entity.Waste) error {
	query := `
		INSERT INTO wastes (id, material_id, material_name, unit, quantity, unit_cost, total_loss, reason, reported_by, reported_by_id, ts, day)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		w.ID, w.MaterialID, w.MaterialName, w.Unit, w.Quantity, w.UnitCost,
		w.TotalLoss, w.Reason, w.ReportedBy, w.ReportedByID, w.Timestamp, w.Date,
	)
	if err != nil {
		return fmt.Errorf("insert waste: %w", err)
	}
	return nil
}

// List devuelve todas las mermas, más recientes primero.
func (r *WasteRepo) List() ([]*entity.Waste, error) {
	query := `SELECT ` + wasteColumns + ` FROM wastes ORDER BY ts DESC`
	return r.listQuery(query)
}

// ListByDate filtra por día calendario.
func (r *WasteRepo) ListByDate(date string) ([]*entity.Waste, error) {
	query := `SELECT ` + wasteColumns + ` FROM wastes WHERE day = $1 ORDER BY ts DESC`
	return r.listQuery(query, date)
}

func (r *WasteRepo) listQuery(query string, args ...any) ([]*entity.Waste, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list wastes: %w", err)
	}
	defer rows.Close()
	var list []*entity.Waste
	for rows.Next() {
		w, err := scanWaste(rows)
		if err != nil {
			return nil, fmt.Errorf("scan waste: %w", err)
		}
		list = append(list, w)
	}
	return list, rows.Err()
}

// Clear vacía el libro de mermas (reinicio administrativo).
func (r *WasteRepo) Clear() error {
	if _, err := r.q.Exec(context.Background(), `DELETE FROM wastes`); err != nil {
		return fmt.Errorf("clear wastes: %w", err)
	}
	return nil
}
