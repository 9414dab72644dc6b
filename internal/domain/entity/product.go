package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// RecipeItem es una línea de receta: cuánta materia prima consume una unidad
// del producto. MaterialName, Unit y UnitCost son una foto tomada al autor
// la receta: si el costo vivo del material cambia después, la receta NO se
// recalcula (las recetas congelan costo al momento de creación).
type RecipeItem struct {
	MaterialID   string          `json:"materialId"`
	MaterialName string          `json:"materialName"`
	Unit         string          `json:"unit"`
	Quantity     decimal.Decimal `json:"quantity"` // consumo por unidad vendida
	UnitCost     decimal.Decimal `json:"unitCost"`
	TotalCost    decimal.Decimal `json:"totalCost"` // Quantity * UnitCost al autorar
}

// Product representa un producto vendible del catálogo.
// Cost es la suma de los TotalCost de su receta al momento de creación;
// Profit = round(Price - Cost) redondeado a la unidad monetaria entera
// (decisión de diseño, no error de coma flotante). Un producto con receta
// vacía es válido: artículo de puro margen.
type Product struct {
	ID        string
	Name      string
	SKU       string // único por catálogo; autogenerado si falta
	Barcode   string
	Recipe    []RecipeItem
	Cost      decimal.Decimal
	Price     decimal.Decimal
	Profit    decimal.Decimal
	Category  string
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
