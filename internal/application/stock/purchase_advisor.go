package stock

import (
	"github.com/tu-usuario/cafe-pos/internal/application/dto"
	"github.com/tu-usuario/cafe-pos/internal/domain/entity"
)

// Suggest deriva la lista de reorden a partir de un snapshot de materiales:
// para cada material con CurrentStock < MinStock calcula
//
//	neededQuantity = TargetStock - CurrentStock
//	estimatedCost  = neededQuantity * UnitCost
//
// neededQuantity puede salir negativa si TargetStock < CurrentStock (una
// misconfiguración que no se valida aquí, igual que en el sistema de origen).
// El resultado conserva el orden del snapshot; el llamador ordena si quiere.
// Proyección pura de solo lectura: jamás muta el libro de stock.
func Suggest(materials []*entity.RawMaterial) []dto.PurchaseSuggestionDTO {
	suggestions := make([]dto.PurchaseSuggestionDTO, 0)
	for _, m := range materials {
		if !m.CurrentStock.LessThan(m.MinStock) {
			continue
		}
		needed := m.TargetStock.Sub(m.CurrentStock)
		suggestions = append(suggestions, dto.PurchaseSuggestionDTO{
			Material:       dto.ToMaterialResponse(m),
			NeededQuantity: needed,
			EstimatedCost:  needed.Mul(m.UnitCost),
		})
	}
	return suggestions
}

// Suggestions calcula las sugerencias de compra sobre el snapshot actual.
func (uc *UseCase) Suggestions() ([]dto.PurchaseSuggestionDTO, error) {
	materials, err := uc.Snapshot()
	if err != nil {
		return nil, err
	}
	return Suggest(materials), nil
}
