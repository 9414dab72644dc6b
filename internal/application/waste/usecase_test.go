package waste_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/cafe-pos/internal/application/dto"
	"github.com/tu-usuario/cafe-pos/internal/application/stock"
	"github.com/tu-usuario/cafe-pos/internal/application/waste"
	"github.com/tu-usuario/cafe-pos/internal/domain"
	"github.com/tu-usuario/cafe-pos/internal/domain/entity"
	"github.com/tu-usuario/cafe-pos/internal/infrastructure/localstore"
	"github.com/tu-usuario/cafe-pos/pkg/logger"
)

func newWasteFixture(t *testing.T) (*waste.UseCase, *stock.UseCase, *entity.RawMaterial) {
	t.Helper()
	store, err := localstore.Open(t.TempDir())
	require.NoError(t, err)

	materials := localstore.NewMaterialRepository(store)
	movements := localstore.NewStockMovementRepository(store)
	wastes := localstore.NewWasteRepository(store)
	runner := localstore.NewTxRunner(store)

	stockUC := stock.NewUseCase(runner, materials, movements, logger.Nop())
	leche, err := stockUC.CreateMaterial(dto.CreateMaterialRequest{
		Name: "Leche entera", Unit: entity.UnitMilliliter,
		UnitCost:     decimal.RequireFromString("0.02"),
		CurrentStock: decimal.NewFromInt(1000),
		MinStock:     decimal.NewFromInt(200),
		TargetStock:  decimal.NewFromInt(2000),
	})
	require.NoError(t, err)

	return waste.NewUseCase(runner, wastes, logger.Nop()), stockUC, leche
}

// La merma desnormaliza nombre/unidad/costo del material, calcula la pérdida
// (qty * unitCost) y descuenta el stock.
func TestPostWaste_RegistraYDescuenta(t *testing.T) {
	uc, stockUC, leche := newWasteFixture(t)

	resp, err := uc.PostWaste(context.Background(), dto.CreateWasteRequest{
		MaterialID: leche.ID,
		Quantity:   decimal.NewFromInt(500),
		Reason:     "se cortó",
	}, "usr-1", "Cajero Demo")
	require.NoError(t, err)

	assert.Equal(t, "Leche entera", resp.MaterialName)
	assert.Equal(t, entity.UnitMilliliter, resp.Unit)
	assert.True(t, resp.TotalLoss.Equal(decimal.NewFromInt(10)),
		"pérdida = 500 * 0.02 = 10, fue %s", resp.TotalLoss)
	assert.Equal(t, "Cajero Demo", resp.ReportedBy)

	mats, _ := stockUC.Snapshot()
	assert.True(t, mats[0].CurrentStock.Equal(decimal.NewFromInt(500)),
		"leche: 1000 - 500 = 500")
}

// La merma descuenta sin piso en cero, igual que la venta.
func TestPostWaste_SinPisoEnCero(t *testing.T) {
	uc, stockUC, leche := newWasteFixture(t)

	_, err := uc.PostWaste(context.Background(), dto.CreateWasteRequest{
		MaterialID: leche.ID,
		Quantity:   decimal.NewFromInt(1500),
		Reason:     "derrame total",
	}, "usr-1", "Cajero")
	require.NoError(t, err)

	mats, _ := stockUC.Snapshot()
	assert.True(t, mats[0].CurrentStock.Equal(decimal.NewFromInt(-500)),
		"1000 - 1500 = -500 (sin piso)")
}

// A diferencia de la deducción por venta, aquí el material viene directo del
// usuario: un id inexistente es ErrNotFound, no un no-op.
func TestPostWaste_MaterialInexistente(t *testing.T) {
	uc, _, _ := newWasteFixture(t)

	_, err := uc.PostWaste(context.Background(), dto.CreateWasteRequest{
		MaterialID: "mat-fantasma",
		Quantity:   decimal.NewFromInt(10),
		Reason:     "prueba",
	}, "usr-1", "Cajero")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPostWaste_Validaciones(t *testing.T) {
	uc, _, leche := newWasteFixture(t)
	ctx := context.Background()

	_, err := uc.PostWaste(ctx, dto.CreateWasteRequest{
		MaterialID: leche.ID, Quantity: decimal.Zero, Reason: "x",
	}, "usr-1", "Cajero")
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "cantidad cero")

	_, err = uc.PostWaste(ctx, dto.CreateWasteRequest{
		MaterialID: leche.ID, Quantity: decimal.NewFromInt(5), Reason: "   ",
	}, "usr-1", "Cajero")
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "motivo en blanco")

	_, err = uc.PostWaste(ctx, dto.CreateWasteRequest{
		Quantity: decimal.NewFromInt(5), Reason: "x",
	}, "usr-1", "Cajero")
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "material vacío")
}

// El libro de mermas es append-only y filtrable por día.
func TestPostWaste_ListaPorDia(t *testing.T) {
	uc, _, leche := newWasteFixture(t)

	created, err := uc.PostWaste(context.Background(), dto.CreateWasteRequest{
		MaterialID: leche.ID, Quantity: decimal.NewFromInt(100), Reason: "vencida",
	}, "usr-1", "Cajero")
	require.NoError(t, err)

	byDay, err := uc.List(created.Date)
	require.NoError(t, err)
	require.Len(t, byDay, 1)
	assert.Equal(t, created.ID, byDay[0].ID)

	otherDay, err := uc.List("1999-01-01")
	require.NoError(t, err)
	assert.Empty(t, otherDay)
}
