package analytics_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/cafe-pos/internal/application/analytics"
	"github.com/tu-usuario/cafe-pos/internal/application/auth"
	"github.com/tu-usuario/cafe-pos/internal/application/catalog"
	"github.com/tu-usuario/cafe-pos/internal/application/dto"
	appsales "github.com/tu-usuario/cafe-pos/internal/application/sales"
	"github.com/tu-usuario/cafe-pos/internal/application/stock"
	"github.com/tu-usuario/cafe-pos/internal/application/waste"
	"github.com/tu-usuario/cafe-pos/internal/domain/entity"
	"github.com/tu-usuario/cafe-pos/internal/infrastructure/localstore"
	"github.com/tu-usuario/cafe-pos/pkg/logger"
)

// El dashboard se arma con los mismos casos de uso que alimentan la operación
// del día: este test monta la caja completa sobre el store local, registra
// actividad de "hoy" y verifica los agregados.
func TestGetStats_DiaConActividad(t *testing.T) {
	store, err := localstore.Open(t.TempDir())
	require.NoError(t, err)

	materials := localstore.NewMaterialRepository(store)
	products := localstore.NewProductRepository(store)
	salesRepo := localstore.NewSaleRepository(store)
	wastesRepo := localstore.NewWasteRepository(store)
	movements := localstore.NewStockMovementRepository(store)
	users := localstore.NewUserRepository(store)
	presence := localstore.NewAttendanceRepository(store)
	runner := localstore.NewTxRunner(store)

	stockUC := stock.NewUseCase(runner, materials, movements, logger.Nop())
	cafe, err := stockUC.CreateMaterial(dto.CreateMaterialRequest{
		Name: "Café molido", Unit: entity.UnitGram,
		UnitCost:     decimal.RequireFromString("0.30"),
		CurrentStock: decimal.NewFromInt(40),
		MinStock:     decimal.NewFromInt(20),
		TargetStock:  decimal.NewFromInt(100),
	})
	require.NoError(t, err)

	productUC := catalog.NewProductUseCase(products, materials)
	espresso, err := productUC.Create(dto.CreateProductRequest{
		Name: "Espresso", SKU: "CAF-001", Price: decimal.NewFromInt(35),
		Recipe: []dto.RecipeItemRequest{
			{MaterialID: cafe.ID, Quantity: decimal.NewFromInt(18)},
		},
	})
	require.NoError(t, err)

	// Dos ventas de hoy: 2x35 = 70 en ventas; profit congelado round(35-5.40)=30
	// por unidad → 60. Las deducciones dejan el café en 40 - 36 = 4 (< min 20).
	saleUC := appsales.NewPostSaleUseCase(runner, products, salesRepo, logger.Nop())
	for i := 0; i < 2; i++ {
		_, err := saleUC.PostSale(context.Background(), dto.CreateSaleRequest{
			Items:         []dto.CartItemRequest{{ProductID: espresso.ID, Quantity: decimal.NewFromInt(1)}},
			PaymentMethod: entity.PaymentCash,
		}, "usr-1", "Cajero")
		require.NoError(t, err)
	}

	// Una merma de hoy: 10g * 0.30 = 3 de pérdida.
	wasteUC := waste.NewUseCase(runner, wastesRepo, logger.Nop())
	_, err = wasteUC.PostWaste(context.Background(), dto.CreateWasteRequest{
		MaterialID: cafe.ID, Quantity: decimal.NewFromInt(10), Reason: "quemado",
	}, "usr-1", "Cajero")
	require.NoError(t, err)

	// Dos empleados activos, uno con check-in hoy.
	userUC := auth.NewUserUseCase(users)
	u1, err := userUC.Create(dto.CreateUserRequest{Username: "cajero1", Password: "x1234567", FullName: "Cajero Uno"})
	require.NoError(t, err)
	_, err = userUC.Create(dto.CreateUserRequest{Username: "cajero2", Password: "x1234567", FullName: "Cajero Dos"})
	require.NoError(t, err)
	require.NoError(t, presence.Create(&entity.Attendance{
		ID: "att-1", UserID: u1.ID, Date: time.Now().Format(entity.DateLayout),
		Status: entity.AttendancePresent,
	}))

	uc := analytics.NewDashboardUseCase(salesRepo, wastesRepo, materials, users, presence)
	stats, err := uc.GetStats()
	require.NoError(t, err)

	assert.True(t, stats.TodaySales.Equal(decimal.NewFromInt(70)), "ventas: 2 x 35")
	assert.True(t, stats.TodayProfit.Equal(decimal.NewFromInt(60)), "profit: 2 x 30")
	assert.Equal(t, 2, stats.TodayOrders)
	assert.True(t, stats.TodayWaste.Equal(decimal.NewFromInt(3)), "merma: 10 x 0.30")

	// El café quedó en 4 - 10 (merma) = -6: bajo mínimo y con sugerencia.
	require.Len(t, stats.LowStockItems, 1)
	assert.Equal(t, cafe.ID, stats.LowStockItems[0].ID)
	require.Len(t, stats.PurchaseSuggestions, 1)
	assert.True(t, stats.PurchaseSuggestions[0].NeededQuantity.Equal(decimal.NewFromInt(106)),
		"needed = 100 - (-6) = 106")

	assert.Equal(t, 1, stats.PresentEmployees)
	assert.Equal(t, 2, stats.TotalEmployees)
}

// Un día sin actividad produce ceros y listas vacías, no nils ni errores.
func TestGetStats_DiaVacio(t *testing.T) {
	store, err := localstore.Open(t.TempDir())
	require.NoError(t, err)

	uc := analytics.NewDashboardUseCase(
		localstore.NewSaleRepository(store),
		localstore.NewWasteRepository(store),
		localstore.NewMaterialRepository(store),
		localstore.NewUserRepository(store),
		localstore.NewAttendanceRepository(store),
	)

	stats, err := uc.GetStats()
	require.NoError(t, err)

	assert.True(t, stats.TodaySales.IsZero())
	assert.True(t, stats.TodayProfit.IsZero())
	assert.Equal(t, 0, stats.TodayOrders)
	assert.NotNil(t, stats.LowStockItems)
	assert.NotNil(t, stats.PurchaseSuggestions)
	assert.Equal(t, 0, stats.TotalEmployees)
}
