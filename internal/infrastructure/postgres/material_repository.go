package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/cafe-pos/internal/domain"
	"github.com/tu-usuario/cafe-pos/internal/domain/entity"
	"github.com/tu-usuario/cafe-pos/internal/domain/repository"
)

var _ repository.MaterialRepository = (*MaterialRepo)(nil)

// MaterialRepo implementación de MaterialRepository sobre PostgreSQL (usable con pool o tx).
type MaterialRepo struct {
	q Querier
}

// NewMaterialRepository construye el adaptador de materias primas. Pasar pool o tx (Querier).
func NewMaterialRepository(q Querier) *MaterialRepo {
	return &MaterialRepo{q: q}
}

const materialColumns = `id, name, unit, unit_cost, current_stock, min_stock, target_stock, category, created_at, updated_at`

func scanMaterial(row pgx.Row) (*entity.RawMaterial, error) {
	var m entity.RawMaterial
	err := row.Scan(&m.ID, &m.Name, &m.Unit, &m.UnitCost, &m.CurrentStock,
		&m.MinStock, &m.TargetStock, &m.Category, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// Create persiste una nueva materia prima.
func (r *MaterialRepo) Create(m *entity.RawMaterial) error {
	query := `
		INSERT INTO raw_materials (id, name, unit, unit_cost, current_stock, min_stock, target_stock, category, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		m.ID, m.Name, m.Unit, m.UnitCost, m.CurrentStock, m.MinStock, m.TargetStock,
		m.Category, m.CreatedAt, m.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert material: %w", err)
	}
	return nil
}

// GetByID obtiene una materia prima por ID.
func (r *MaterialRepo) GetByID(id string) (*entity.RawMaterial, error) {
	query := `SELECT ` + materialColumns + ` FROM raw_materials WHERE id = $1`
	m, err := scanMaterial(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get material: %w", err)
	}
	return m, nil
}

// GetForUpdate obtiene la materia prima bloqueando la fila (SELECT FOR UPDATE).
// Solo tiene efecto dentro de una transacción.
func (r *MaterialRepo) GetForUpdate(id string) (*entity.RawMaterial, error) {
	query := `SELECT ` + materialColumns + ` FROM raw_materials WHERE id = $1 FOR UPDATE`
	m, err := scanMaterial(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get material for update: %w", err)
	}
	return m, nil
}

// Update actualiza los datos maestros de la materia prima. El stock se toca
// solo vía UpdateStock.
func (r *MaterialRepo) Update(m *entity.RawMaterial) error {
	query := `
		UPDATE raw_materials
		SET name = $2, unit = $3, unit_cost = $4, min_stock = $5, target_stock = $6, category = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		m.ID, m.Name, m.Unit, m.UnitCost, m.MinStock, m.TargetStock, m.Category, m.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update material: %w", err)
	}
	return nil
}

// UpdateStock fija CurrentStock al valor ya calculado por el ledger.
func (r *MaterialRepo) UpdateStock(id string, quantity decimal.Decimal) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE raw_materials SET current_stock = $2, updated_at = now() WHERE id = $1`,
		id, quantity,
	)
	if err != nil {
		return fmt.Errorf("update stock: %w", err)
	}
	return nil
}

// List devuelve todas las materias primas ordenadas por nombre.
func (r *MaterialRepo) List() ([]*entity.RawMaterial, error) {
	query := `SELECT ` + materialColumns + ` FROM raw_materials ORDER BY name`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list materials: %w", err)
	}
	defer rows.Close()
	var list []*entity.RawMaterial
	for rows.Next() {
		m, err := scanMaterial(rows)
		if err != nil {
			return nil, fmt.Errorf("scan material: %w", err)
		}
		list = append(list, m)
	}
	return list, rows.Err()
}

// Clear borra todas las materias primas (carga inicial).
func (r *MaterialRepo) Clear() error {
	if _, err := r.q.Exec(context.Background(), `DELETE FROM raw_materials`); err != nil {
		return fmt.Errorf("clear materials: %w", err)
	}
	return nil
}
