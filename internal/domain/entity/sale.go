package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Métodos de pago soportados.
const (
	PaymentCash = "cash"
	PaymentCard = "card"
)

// ValidPaymentMethod indica si el método de pago es soportado.
func ValidPaymentMethod(m string) bool {
	return m == PaymentCash || m == PaymentCard
}

// CartItem es una línea de venta. Los totales de línea son las cifras
// unitarias del producto multiplicadas por la cantidad.
type CartItem struct {
	ProductID   string          `json:"productId"`
	ProductName string          `json:"productName"`
	SKU         string          `json:"sku"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	UnitCost    decimal.Decimal `json:"unitCost"`
	TotalPrice  decimal.Decimal `json:"totalPrice"`
	TotalCost   decimal.Decimal `json:"totalCost"`
	TotalProfit decimal.Decimal `json:"totalProfit"`
}

// Sale es un registro del libro de ventas. Las ventas son inmutables una vez
// creadas (libro append-only): nunca se actualizan ni se borran en flujo normal.
type Sale struct {
	ID            string
	Items         []CartItem
	Subtotal      decimal.Decimal // suma de TotalPrice por línea
	TotalCost     decimal.Decimal
	TotalProfit   decimal.Decimal
	PaymentMethod string
	Timestamp     time.Time
	CashierID     string
	CashierName   string
}
