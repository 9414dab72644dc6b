package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/cafe-pos/internal/domain/entity"
)

// CartItemRequest línea del carrito: producto y cantidad. Los totales de línea
// se recalculan en el servidor a partir del catálogo, nunca se confía en el cliente.
type CartItemRequest struct {
	ProductID string          `json:"productId"`
	Quantity  decimal.Decimal `json:"quantity"`
}

// CreateSaleRequest venta finalizada desde la caja.
type CreateSaleRequest struct {
	Items         []CartItemRequest `json:"items"`
	PaymentMethod string            `json:"paymentMethod"` // cash | card
}

// SaleResponse representación pública de una venta.
type SaleResponse struct {
	ID            string            `json:"id"`
	Items         []entity.CartItem `json:"items"`
	Subtotal      decimal.Decimal   `json:"subtotal"`
	TotalCost     decimal.Decimal   `json:"totalCost"`
	TotalProfit   decimal.Decimal   `json:"totalProfit"`
	PaymentMethod string            `json:"paymentMethod"`
	Timestamp     time.Time         `json:"timestamp"`
	CashierID     string            `json:"cashierId,omitempty"`
	CashierName   string            `json:"cashierName,omitempty"`
}

// ToSaleResponse convierte la entidad a su DTO.
func ToSaleResponse(s *entity.Sale) *SaleResponse {
	return &SaleResponse{
		ID:            s.ID,
		Items:         s.Items,
		Subtotal:      s.Subtotal,
		TotalCost:     s.TotalCost,
		TotalProfit:   s.TotalProfit,
		PaymentMethod: s.PaymentMethod,
		Timestamp:     s.Timestamp,
		CashierID:     s.CashierID,
		CashierName:   s.CashierName,
	}
}
