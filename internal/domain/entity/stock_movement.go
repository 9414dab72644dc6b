package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento del libro de stock.
const (
	MovementTypeSale   = "sale"   // descuento por venta (vía receta)
	MovementTypeWaste  = "waste"  // descuento directo por merma
	MovementTypeAdjust = "adjust" // corrección manual (reconteo o reabastecimiento)
)

// StockMovement es el rastro de auditoría del libro de stock: cada descuento o
// ajuste deja un registro. TransactionID agrupa los movimientos de una misma
// operación (todas las líneas de una venta comparten el mismo).
type StockMovement struct {
	ID            string
	TransactionID string
	MaterialID    string
	Type          string          // sale, waste, adjust
	Quantity      decimal.Decimal // negativo para descuentos, con signo para ajustes
	Reference     string          // ID de la venta o merma que lo originó
	Notes         string
	CreatedAt     time.Time
	CreatedBy     string // UserID
}
