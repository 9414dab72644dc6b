package sales_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/cafe-pos/internal/application/catalog"
	"github.com/tu-usuario/cafe-pos/internal/application/dto"
	appsales "github.com/tu-usuario/cafe-pos/internal/application/sales"
	"github.com/tu-usuario/cafe-pos/internal/application/stock"
	"github.com/tu-usuario/cafe-pos/internal/domain"
	"github.com/tu-usuario/cafe-pos/internal/domain/entity"
	"github.com/tu-usuario/cafe-pos/internal/infrastructure/localstore"
	"github.com/tu-usuario/cafe-pos/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fixture: un catálogo mínimo sobre el store local. El latte consume 18g de
// café (costo 0.30/g) y 200ml de leche (0.02/ml): costo 9.40, precio 50,
// ganancia congelada round(50 - 9.40) = 41.
// ──────────────────────────────────────────────────────────────────────────────

type fixture struct {
	saleUC    *appsales.PostSaleUseCase
	stockUC   *stock.UseCase
	productID string
	cafeID    string
	lecheID   string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store, err := localstore.Open(t.TempDir())
	require.NoError(t, err)

	materials := localstore.NewMaterialRepository(store)
	products := localstore.NewProductRepository(store)
	salesRepo := localstore.NewSaleRepository(store)
	movements := localstore.NewStockMovementRepository(store)
	runner := localstore.NewTxRunner(store)

	stockUC := stock.NewUseCase(runner, materials, movements, logger.Nop())
	cafe, err := stockUC.CreateMaterial(dto.CreateMaterialRequest{
		Name: "Café molido", Unit: entity.UnitGram,
		UnitCost:     decimal.RequireFromString("0.30"),
		CurrentStock: decimal.NewFromInt(100),
		MinStock:     decimal.NewFromInt(20),
		TargetStock:  decimal.NewFromInt(200),
	})
	require.NoError(t, err)
	leche, err := stockUC.CreateMaterial(dto.CreateMaterialRequest{
		Name: "Leche entera", Unit: entity.UnitMilliliter,
		UnitCost:     decimal.RequireFromString("0.02"),
		CurrentStock: decimal.NewFromInt(1000),
		MinStock:     decimal.NewFromInt(200),
		TargetStock:  decimal.NewFromInt(2000),
	})
	require.NoError(t, err)

	productUC := catalog.NewProductUseCase(products, materials)
	latte, err := productUC.Create(dto.CreateProductRequest{
		Name:  "Latte",
		SKU:   "CAF-002",
		Price: decimal.NewFromInt(50),
		Recipe: []dto.RecipeItemRequest{
			{MaterialID: cafe.ID, Quantity: decimal.NewFromInt(18)},
			{MaterialID: leche.ID, Quantity: decimal.NewFromInt(200)},
		},
	})
	require.NoError(t, err)

	return &fixture{
		saleUC:    appsales.NewPostSaleUseCase(runner, products, salesRepo, logger.Nop()),
		stockUC:   stockUC,
		productID: latte.ID,
		cafeID:    cafe.ID,
		lecheID:   leche.ID,
	}
}

func (f *fixture) stockOf(t *testing.T, materialID string) decimal.Decimal {
	t.Helper()
	mats, err := f.stockUC.Snapshot()
	require.NoError(t, err)
	for _, m := range mats {
		if m.ID == materialID {
			return m.CurrentStock
		}
	}
	t.Fatalf("material %s no encontrado en el snapshot", materialID)
	return decimal.Zero
}

// ──────────────────────────────────────────────────────────────────────────────
// PostSale — camino feliz
// ──────────────────────────────────────────────────────────────────────────────

// Vender 2 lattes registra la venta con los totales del servidor y descuenta
// el stock según la receta: 100 - 36 = 64g de café, 1000 - 400 = 600ml de leche.
func TestPostSale_RegistraYDescuenta(t *testing.T) {
	f := newFixture(t)

	resp, err := f.saleUC.PostSale(context.Background(), dto.CreateSaleRequest{
		Items:         []dto.CartItemRequest{{ProductID: f.productID, Quantity: decimal.NewFromInt(2)}},
		PaymentMethod: entity.PaymentCash,
	}, "usr-1", "Cajero Demo")
	require.NoError(t, err)

	assert.True(t, resp.Subtotal.Equal(decimal.NewFromInt(100)), "2 x 50 = 100")
	assert.True(t, resp.TotalCost.Equal(decimal.RequireFromString("18.80")), "2 x 9.40 = 18.80")
	assert.True(t, resp.TotalProfit.Equal(decimal.NewFromInt(82)),
		"2 x profit congelado (41) = 82, fue %s", resp.TotalProfit)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, "Latte", resp.Items[0].ProductName)

	assert.True(t, f.stockOf(t, f.cafeID).Equal(decimal.NewFromInt(64)),
		"café: 100 - 2*18 = 64")
	assert.True(t, f.stockOf(t, f.lecheID).Equal(decimal.NewFromInt(600)),
		"leche: 1000 - 2*200 = 600")
}

// El libro de ventas es append-only: dos ventas quedan como dos registros.
func TestPostSale_LibroAppendOnly(t *testing.T) {
	f := newFixture(t)
	req := dto.CreateSaleRequest{
		Items:         []dto.CartItemRequest{{ProductID: f.productID, Quantity: decimal.NewFromInt(1)}},
		PaymentMethod: entity.PaymentCard,
	}

	s1, err := f.saleUC.PostSale(context.Background(), req, "usr-1", "Cajero")
	require.NoError(t, err)
	s2, err := f.saleUC.PostSale(context.Background(), req, "usr-1", "Cajero")
	require.NoError(t, err)
	assert.NotEqual(t, s1.ID, s2.ID)

	list, err := f.saleUC.List("")
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

// Ventas consecutivas sin reabastecer dejan stock negativo: el ledger no
// bloquea la venta por falta de inventario registrado.
func TestPostSale_StockPuedeQuedarNegativo(t *testing.T) {
	f := newFixture(t)
	req := dto.CreateSaleRequest{
		Items:         []dto.CartItemRequest{{ProductID: f.productID, Quantity: decimal.NewFromInt(4)}},
		PaymentMethod: entity.PaymentCash,
	}

	// 2 ventas de 4 lattes = 8 * 18g = 144g de café sobre 100g disponibles.
	_, err := f.saleUC.PostSale(context.Background(), req, "usr-1", "Cajero")
	require.NoError(t, err)
	_, err = f.saleUC.PostSale(context.Background(), req, "usr-1", "Cajero")
	require.NoError(t, err, "la segunda venta debe pasar aunque no alcance el stock")

	assert.True(t, f.stockOf(t, f.cafeID).Equal(decimal.NewFromInt(-44)),
		"café: 100 - 144 = -44")
}

// ──────────────────────────────────────────────────────────────────────────────
// PostSale — validaciones
// ──────────────────────────────────────────────────────────────────────────────

func TestPostSale_CarritoVacio(t *testing.T) {
	f := newFixture(t)
	_, err := f.saleUC.PostSale(context.Background(), dto.CreateSaleRequest{
		PaymentMethod: entity.PaymentCash,
	}, "usr-1", "Cajero")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestPostSale_MetodoPagoInvalido(t *testing.T) {
	f := newFixture(t)
	_, err := f.saleUC.PostSale(context.Background(), dto.CreateSaleRequest{
		Items:         []dto.CartItemRequest{{ProductID: f.productID, Quantity: decimal.NewFromInt(1)}},
		PaymentMethod: "cripto",
	}, "usr-1", "Cajero")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestPostSale_ProductoInexistente(t *testing.T) {
	f := newFixture(t)
	_, err := f.saleUC.PostSale(context.Background(), dto.CreateSaleRequest{
		Items:         []dto.CartItemRequest{{ProductID: "prod-fantasma", Quantity: decimal.NewFromInt(1)}},
		PaymentMethod: entity.PaymentCash,
	}, "usr-1", "Cajero")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPostSale_CantidadNoPositiva(t *testing.T) {
	f := newFixture(t)
	_, err := f.saleUC.PostSale(context.Background(), dto.CreateSaleRequest{
		Items:         []dto.CartItemRequest{{ProductID: f.productID, Quantity: decimal.Zero}},
		PaymentMethod: entity.PaymentCash,
	}, "usr-1", "Cajero")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Un producto inexistente en la segunda línea falla ANTES de la transacción:
// ni la venta ni las deducciones de la primera línea se aplican.
func TestPostSale_FallaSinEfectosParciales(t *testing.T) {
	f := newFixture(t)

	_, err := f.saleUC.PostSale(context.Background(), dto.CreateSaleRequest{
		Items: []dto.CartItemRequest{
			{ProductID: f.productID, Quantity: decimal.NewFromInt(1)},
			{ProductID: "prod-fantasma", Quantity: decimal.NewFromInt(1)},
		},
		PaymentMethod: entity.PaymentCash,
	}, "usr-1", "Cajero")
	require.ErrorIs(t, err, domain.ErrNotFound)

	list, err := f.saleUC.List("")
	require.NoError(t, err)
	assert.Empty(t, list, "no debe quedar venta registrada")
	assert.True(t, f.stockOf(t, f.cafeID).Equal(decimal.NewFromInt(100)),
		"no debe haber deducción parcial")
}

// GetByID / List por fecha
func TestPostSale_GetByID(t *testing.T) {
	f := newFixture(t)
	created, err := f.saleUC.PostSale(context.Background(), dto.CreateSaleRequest{
		Items:         []dto.CartItemRequest{{ProductID: f.productID, Quantity: decimal.NewFromInt(1)}},
		PaymentMethod: entity.PaymentCash,
	}, "usr-1", "Cajero")
	require.NoError(t, err)

	got, err := f.saleUC.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)

	_, err = f.saleUC.GetByID("sale-fantasma")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
