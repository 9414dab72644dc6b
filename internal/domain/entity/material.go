package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Unidades de medida válidas para materias primas.
const (
	UnitGram       = "g"
	UnitMilliliter = "ml"
	UnitPiece      = "pieza"
	UnitKilogram   = "kg"
	UnitLiter      = "l"
)

// ValidUnit indica si la unidad pertenece al catálogo de unidades soportadas.
func ValidUnit(u string) bool {
	switch u {
	case UnitGram, UnitMilliliter, UnitPiece, UnitKilogram, UnitLiter:
		return true
	}
	return false
}

// RawMaterial representa una materia prima del inventario.
// CurrentStock puede quedar negativo: las ventas y mermas descuentan sin piso
// en cero. Los ajustes manuales sí quedan acotados a cero (ver stock ledger).
type RawMaterial struct {
	ID           string
	Name         string
	Unit         string          // g, ml, pieza, kg, l
	UnitCost     decimal.Decimal // costo por unidad, >= 0
	CurrentStock decimal.Decimal
	MinStock     decimal.Decimal // umbral de reorden
	TargetStock  decimal.Decimal // meta de reposición, >= MinStock para sugerencias útiles
	Category     string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
