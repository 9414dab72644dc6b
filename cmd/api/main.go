package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/tu-usuario/cafe-pos/internal/application/admin"
	"github.com/tu-usuario/cafe-pos/internal/application/analytics"
	"github.com/tu-usuario/cafe-pos/internal/application/attendance"
	"github.com/tu-usuario/cafe-pos/internal/application/auth"
	"github.com/tu-usuario/cafe-pos/internal/application/catalog"
	appsales "github.com/tu-usuario/cafe-pos/internal/application/sales"
	"github.com/tu-usuario/cafe-pos/internal/application/stock"
	"github.com/tu-usuario/cafe-pos/internal/application/waste"
	"github.com/tu-usuario/cafe-pos/internal/domain/repository"
	"github.com/tu-usuario/cafe-pos/internal/infrastructure/failover"
	"github.com/tu-usuario/cafe-pos/internal/infrastructure/localstore"
	infrapdf "github.com/tu-usuario/cafe-pos/internal/infrastructure/pdf"
	"github.com/tu-usuario/cafe-pos/internal/infrastructure/postgres"
	httpRouter "github.com/tu-usuario/cafe-pos/internal/interfaces/http"
	"github.com/tu-usuario/cafe-pos/pkg/cache"
	"github.com/tu-usuario/cafe-pos/pkg/config"
	"github.com/tu-usuario/cafe-pos/pkg/logger"
)

// repos agrupa los puertos de persistencia ya enrutados (failover o directos).
type repos struct {
	materials  repository.MaterialRepository
	products   repository.ProductRepository
	sales      repository.SaleRepository
	wastes     repository.WasteRepository
	attendance repository.AttendanceRepository
	users      repository.UserRepository
	settings   repository.SettingsRepository
	movements  repository.StockMovementRepository
	txRunner   failover.Runner
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando punto de venta")

	ctx := context.Background()

	// Store local: respaldo degradado para operar sin base de datos.
	store, err := localstore.Open(cfg.Store.FallbackDir)
	if err != nil {
		log.Fatal().Err(err).Msg("abrir store local")
	}

	breaker := failover.NewBreaker(
		cfg.Store.BreakerThreshold,
		time.Duration(cfg.Store.BreakerRetrySeconds)*time.Second,
	)
	guard := failover.NewGuard(breaker, log)

	r, pool := buildRepos(ctx, cfg, store, guard, log)
	if pool != nil {
		defer pool.Close()
	}

	// Casos de uso
	stockUC := stock.NewUseCase(r.txRunner, r.materials, r.movements, log)
	productUC := catalog.NewProductUseCase(r.products, r.materials)
	saleUC := appsales.NewPostSaleUseCase(r.txRunner, r.products, r.sales, log)
	wasteUC := waste.NewUseCase(r.txRunner, r.wastes, log)
	attendanceUC := attendance.NewUseCase(r.attendance, r.settings)
	dashboardUC := analytics.NewDashboardUseCase(r.sales, r.wastes, r.materials, r.users, r.attendance)
	authUC := auth.NewAuthUseCase(r.users, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	userUC := auth.NewUserUseCase(r.users)
	adminUC := admin.NewUseCase(
		stockUC, productUC, userUC,
		r.materials, r.products, r.users, r.settings,
		r.sales, r.wastes, r.attendance, log,
	)

	readCache := cache.New(time.Duration(cfg.Store.CacheTTLSeconds) * time.Second)
	receipts := infrapdf.NewReceiptGenerator()

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Café POS API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"service": cfg.App.Name,
			"storage": breaker.State().String(),
		})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:       authUC,
		UserUC:       userUC,
		StockUC:      stockUC,
		ProductUC:    productUC,
		SaleUC:       saleUC,
		WasteUC:      wasteUC,
		AttendanceUC: attendanceUC,
		DashboardUC:  dashboardUC,
		AdminUC:      adminUC,
		Receipts:     receipts,
		SettingsRepo: r.settings,
		ReadCache:    readCache,
		JWTSecret:    cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("punto de venta detenido")
}

// buildRepos arma la capa de persistencia. Con PostgreSQL disponible, cada
// puerto queda envuelto en failover hacia el store local; si la conexión
// inicial falla, la caja arranca directamente en modo degradado.
func buildRepos(
	ctx context.Context,
	cfg *config.Config,
	store *localstore.Store,
	guard *failover.Guard,
	log *logger.Logger,
) (repos, interface{ Close() }) {
	localRepos := repos{
		materials:  localstore.NewMaterialRepository(store),
		products:   localstore.NewProductRepository(store),
		sales:      localstore.NewSaleRepository(store),
		wastes:     localstore.NewWasteRepository(store),
		attendance: localstore.NewAttendanceRepository(store),
		users:      localstore.NewUserRepository(store),
		settings:   localstore.NewSettingsRepository(store),
		movements:  localstore.NewStockMovementRepository(store),
		txRunner:   localstore.NewTxRunner(store),
	}

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Warn().Err(err).Msg("PostgreSQL no disponible: arrancando en modo degradado (store local)")
		return localRepos, nil
	}

	log.Info().Msg("PostgreSQL conectado")
	return repos{
		materials:  failover.NewMaterialRepository(postgres.NewMaterialRepository(pool), localRepos.materials, guard),
		products:   failover.NewProductRepository(postgres.NewProductRepository(pool), localRepos.products, guard),
		sales:      failover.NewSaleRepository(postgres.NewSaleRepository(pool), localRepos.sales, guard),
		wastes:     failover.NewWasteRepository(postgres.NewWasteRepository(pool), localRepos.wastes, guard),
		attendance: failover.NewAttendanceRepository(postgres.NewAttendanceRepository(pool), localRepos.attendance, guard),
		users:      failover.NewUserRepository(postgres.NewUserRepository(pool), localRepos.users, guard),
		settings:   failover.NewSettingsRepository(postgres.NewSettingsRepository(pool), localRepos.settings, guard),
		movements:  failover.NewStockMovementRepository(postgres.NewStockMovementRepository(pool), localRepos.movements, guard),
		txRunner:   failover.NewTxRunner(postgres.NewTxRunner(pool), localstore.NewTxRunner(store), guard),
	}, pool
}
