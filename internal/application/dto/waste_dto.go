package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/cafe-pos/internal/domain/entity"
)

// CreateWasteRequest reporte de merma de una materia prima.
type CreateWasteRequest struct {
	MaterialID string          `json:"materialId"`
	Quantity   decimal.Decimal `json:"quantity"`
	Reason     string          `json:"reason"`
}

// WasteResponse representación pública de un registro de merma.
type WasteResponse struct {
	ID           string          `json:"id"`
	MaterialID   string          `json:"materialId"`
	MaterialName string          `json:"materialName"`
	Unit         string          `json:"unit"`
	Quantity     decimal.Decimal `json:"quantity"`
	UnitCost     decimal.Decimal `json:"unitCost"`
	TotalLoss    decimal.Decimal `json:"totalLoss"`
	Reason       string          `json:"reason"`
	ReportedBy   string          `json:"reportedBy"`
	ReportedByID string          `json:"reportedById"`
	Timestamp    time.Time       `json:"timestamp"`
	Date         string          `json:"date"`
}

// ToWasteResponse convierte la entidad a su DTO.
func ToWasteResponse(w *entity.Waste) *WasteResponse {
	return &WasteResponse{
		ID:           w.ID,
		MaterialID:   w.MaterialID,
		MaterialName: w.MaterialName,
		Unit:         w.Unit,
		Quantity:     w.Quantity,
		UnitCost:     w.UnitCost,
		TotalLoss:    w.TotalLoss,
		Reason:       w.Reason,
		ReportedBy:   w.ReportedBy,
		ReportedByID: w.ReportedByID,
		Timestamp:    w.Timestamp,
		Date:         w.Date,
	}
}
