package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/cafe-pos/internal/domain/entity"
)

// StockMovementResponse línea del rastro de auditoría de stock.
type StockMovementResponse struct {
	ID            string          `json:"id"`
	TransactionID string          `json:"transactionId"`
	MaterialID    string          `json:"materialId"`
	Type          string          `json:"type"`
	Quantity      decimal.Decimal `json:"quantity"`
	Reference     string          `json:"reference,omitempty"`
	Notes         string          `json:"notes,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
	CreatedBy     string          `json:"createdBy,omitempty"`
}

// ToStockMovementResponse convierte la entidad a su DTO.
func ToStockMovementResponse(m *entity.StockMovement) StockMovementResponse {
	return StockMovementResponse{
		ID:            m.ID,
		TransactionID: m.TransactionID,
		MaterialID:    m.MaterialID,
		Type:          m.Type,
		Quantity:      m.Quantity,
		Reference:     m.Reference,
		Notes:         m.Notes,
		CreatedAt:     m.CreatedAt,
		CreatedBy:     m.CreatedBy,
	}
}
