// Package pos contiene los servicios de dominio puros del punto de venta:
// expansión de recetas y aritmética de costo/ganancia.
package pos

import (
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/cafe-pos/internal/domain/entity"
)

// Consumption es un par (materia prima, cantidad a descontar).
type Consumption struct {
	MaterialID string
	Quantity   decimal.Decimal
}

// ExpandRecipe expande unitsSold unidades vendidas de una receta en pares de
// consumo, uno por línea de receta y preservando su orden. Función pura, sin
// I/O. Una receta vacía produce una lista vacía (producto de puro margen).
func ExpandRecipe(recipe []entity.RecipeItem, unitsSold decimal.Decimal) []Consumption {
	out := make([]Consumption, 0, len(recipe))
	for _, item := range recipe {
		out = append(out, Consumption{
			MaterialID: item.MaterialID,
			Quantity:   item.Quantity.Mul(unitsSold),
		})
	}
	return out
}

// RecipeCost suma los TotalCost de las líneas de la receta.
func RecipeCost(recipe []entity.RecipeItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range recipe {
		total = total.Add(item.TotalCost)
	}
	return total
}

// Profit calcula la ganancia de un producto: round(precio - costo) a la unidad
// monetaria entera. El redondeo es decisión de diseño del negocio.
func Profit(price, cost decimal.Decimal) decimal.Decimal {
	return price.Sub(cost).Round(0)
}
