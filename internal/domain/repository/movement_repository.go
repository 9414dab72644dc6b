package repository

import "github.com/tu-usuario/cafe-pos/internal/domain/entity"

// StockMovementRepository puerto del rastro de auditoría del stock (append-only).
type StockMovementRepository interface {
	Create(m *entity.StockMovement) error
	ListByMaterial(materialID string) ([]*entity.StockMovement, error)
}
