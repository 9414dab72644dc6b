package repository

import (
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/cafe-pos/internal/domain/entity"
)

// MaterialRepository puerto de persistencia para materias primas.
// GetByID y GetForUpdate devuelven (nil, nil) cuando el id no existe.
type MaterialRepository interface {
	Create(m *entity.RawMaterial) error
	GetByID(id string) (*entity.RawMaterial, error)
	// GetForUpdate obtiene el material bloqueando la fila cuando el backend lo
	// soporta (SELECT FOR UPDATE en PostgreSQL; el store local serializa con
	// su propio mutex).
	GetForUpdate(id string) (*entity.RawMaterial, error)
	Update(m *entity.RawMaterial) error
	// UpdateStock fija CurrentStock al valor dado (ya calculado por el ledger).
	UpdateStock(id string, quantity decimal.Decimal) error
	List() ([]*entity.RawMaterial, error)
	Clear() error
}
