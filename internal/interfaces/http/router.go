package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/cafe-pos/internal/application/admin"
	"github.com/tu-usuario/cafe-pos/internal/application/analytics"
	"github.com/tu-usuario/cafe-pos/internal/application/attendance"
	"github.com/tu-usuario/cafe-pos/internal/application/auth"
	"github.com/tu-usuario/cafe-pos/internal/application/catalog"
	"github.com/tu-usuario/cafe-pos/internal/application/sales"
	"github.com/tu-usuario/cafe-pos/internal/application/stock"
	"github.com/tu-usuario/cafe-pos/internal/application/waste"
	"github.com/tu-usuario/cafe-pos/internal/domain/repository"
	"github.com/tu-usuario/cafe-pos/pkg/cache"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC       *auth.AuthUseCase
	UserUC       *auth.UserUseCase
	StockUC      *stock.UseCase
	ProductUC    *catalog.ProductUseCase
	SaleUC       *sales.PostSaleUseCase
	WasteUC      *waste.UseCase
	AttendanceUC *attendance.UseCase
	DashboardUC  *analytics.DashboardUseCase
	AdminUC      *admin.UseCase
	Receipts     sales.ReceiptGenerator
	SettingsRepo repository.SettingsRepository
	ReadCache    *cache.TTLCache
	JWTSecret    string
}

// Router registra las rutas de la API.
//
// Todas las rutas /api salvo login requieren Bearer Token; usuarios,
// configuración, carga inicial, vaciado y dashboard requieren rol owner, igual
// que las mutaciones de catálogo e inventario.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token); las lecturas GET pasan por la caché.
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret), CacheMiddleware(deps.ReadCache))
	owner := RequireOwner()

	// Materias primas
	materials := protected.Group("/materials")
	materialHandler := NewMaterialHandler(deps.StockUC)
	materials.Get("/", materialHandler.List)
	materials.Post("/", owner, materialHandler.Create)
	materials.Put("/:id", owner, materialHandler.Update)
	materials.Post("/:id/adjust", owner, materialHandler.Adjust)
	materials.Get("/:id/movements", materialHandler.Movements)
	protected.Get("/purchase-suggestions", materialHandler.Suggestions)

	// Catálogo de productos
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Post("/", owner, productHandler.Create)
	products.Put("/:id", owner, productHandler.Update)

	// Ventas
	salesGroup := protected.Group("/sales")
	saleHandler := NewSaleHandler(deps.SaleUC, deps.Receipts, deps.SettingsRepo)
	salesGroup.Get("/", saleHandler.List)
	salesGroup.Post("/", saleHandler.Create)
	salesGroup.Get("/:id/receipt", saleHandler.Receipt)

	// Mermas
	wasteGroup := protected.Group("/waste")
	wasteHandler := NewWasteHandler(deps.WasteUC)
	wasteGroup.Get("/", wasteHandler.List)
	wasteGroup.Post("/", wasteHandler.Create)

	// Asistencia
	attendanceGroup := protected.Group("/attendance")
	attendanceHandler := NewAttendanceHandler(deps.AttendanceUC)
	attendanceGroup.Get("/", attendanceHandler.List)
	attendanceGroup.Post("/checkin", attendanceHandler.CheckIn)
	attendanceGroup.Post("/checkout", attendanceHandler.CheckOut)

	// Empleados (solo owner)
	users := protected.Group("/users", owner)
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/", userHandler.List)
	users.Post("/", userHandler.Create)
	users.Put("/:id", userHandler.Update)

	// Dashboard (solo owner)
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard", owner, dashboardHandler.GetStats)

	// Administración (solo owner)
	adminHandler := NewAdminHandler(deps.AdminUC)
	protected.Get("/settings", owner, adminHandler.GetSettings)
	protected.Put("/settings", owner, adminHandler.UpdateSettings)
	protected.Post("/init", owner, adminHandler.Init)
	protected.Post("/clear-data", owner, adminHandler.ClearData)
}
