package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/cafe-pos/internal/domain/entity"
)

// CreateMaterialRequest alta de materia prima.
type CreateMaterialRequest struct {
	Name         string          `json:"name"`
	Unit         string          `json:"unit"`
	UnitCost     decimal.Decimal `json:"unitCost"`
	CurrentStock decimal.Decimal `json:"currentStock"`
	MinStock     decimal.Decimal `json:"minStock"`
	TargetStock  decimal.Decimal `json:"targetStock"`
	Category     string          `json:"category"`
}

// UpdateMaterialRequest edición de datos maestros de la materia prima.
// El stock NO se edita por aquí: deducciones y ajustes pasan por el ledger.
type UpdateMaterialRequest struct {
	Name        *string          `json:"name"`
	Unit        *string          `json:"unit"`
	UnitCost    *decimal.Decimal `json:"unitCost"`
	MinStock    *decimal.Decimal `json:"minStock"`
	TargetStock *decimal.Decimal `json:"targetStock"`
	Category    *string          `json:"category"`
}

// AdjustStockRequest corrección manual de stock (reconteo o reabastecimiento).
type AdjustStockRequest struct {
	Delta decimal.Decimal `json:"delta"` // positivo o negativo
	Notes string          `json:"notes"`
}

// MaterialResponse representación pública de una materia prima.
type MaterialResponse struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Unit         string          `json:"unit"`
	UnitCost     decimal.Decimal `json:"unitCost"`
	CurrentStock decimal.Decimal `json:"currentStock"`
	MinStock     decimal.Decimal `json:"minStock"`
	TargetStock  decimal.Decimal `json:"targetStock"`
	Category     string          `json:"category,omitempty"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}

// PurchaseSuggestionDTO recomendación de reorden para un material bajo umbral.
type PurchaseSuggestionDTO struct {
	Material       MaterialResponse `json:"material"`
	NeededQuantity decimal.Decimal  `json:"neededQuantity"`
	EstimatedCost  decimal.Decimal  `json:"estimatedCost"`
}

// ToMaterialResponse convierte la entidad a su DTO.
func ToMaterialResponse(m *entity.RawMaterial) MaterialResponse {
	return MaterialResponse{
		ID:           m.ID,
		Name:         m.Name,
		Unit:         m.Unit,
		UnitCost:     m.UnitCost,
		CurrentStock: m.CurrentStock,
		MinStock:     m.MinStock,
		TargetStock:  m.TargetStock,
		Category:     m.Category,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}
