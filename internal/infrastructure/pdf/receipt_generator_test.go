package pdf_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/cafe-pos/internal/domain/entity"
	"github.com/tu-usuario/cafe-pos/internal/infrastructure/pdf"
)

func demoSale() *entity.Sale {
	return &entity.Sale{
		ID:            "sale-1700000000000",
		PaymentMethod: entity.PaymentCash,
		Timestamp:     time.Date(2026, 3, 10, 14, 30, 0, 0, time.Local),
		CashierName:   "Cajero Demo",
		Subtotal:      decimal.NewFromInt(105),
		Items: []entity.CartItem{
			{ProductName: "Espresso", Quantity: decimal.NewFromInt(1), TotalPrice: decimal.NewFromInt(35)},
			{ProductName: "Latte", Quantity: decimal.NewFromInt(2), TotalPrice: decimal.NewFromInt(70)},
		},
	}
}

// El ticket se genera como PDF válido (cabecera %PDF) sin tocar disco.
func TestGenerateReceipt_ProducePDF(t *testing.T) {
	gen := pdf.NewReceiptGenerator()

	got, err := gen.GenerateReceipt(context.Background(), demoSale(), entity.DefaultSettings())
	require.NoError(t, err)
	require.NotEmpty(t, got)
	assert.Equal(t, "%PDF", string(got[:4]), "los bytes deben ser un documento PDF")
}

// Sin configuración guardada se usan los defaults del negocio en lugar de fallar.
func TestGenerateReceipt_SettingsNil(t *testing.T) {
	gen := pdf.NewReceiptGenerator()

	got, err := gen.GenerateReceipt(context.Background(), demoSale(), nil)
	require.NoError(t, err)
	assert.NotEmpty(t, got)
}

// Un ticket de una venta sin líneas (caso límite) también genera documento.
func TestGenerateReceipt_SinLineas(t *testing.T) {
	gen := pdf.NewReceiptGenerator()
	sale := demoSale()
	sale.Items = nil
	sale.Subtotal = decimal.Zero

	got, err := gen.GenerateReceipt(context.Background(), sale, entity.DefaultSettings())
	require.NoError(t, err)
	assert.NotEmpty(t, got)
}
