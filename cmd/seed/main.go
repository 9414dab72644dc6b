// seed aplica el esquema inicial y carga datos de demostración en PostgreSQL:
// materiales de cafetería, un par de productos con receta, un usuario owner
// (admin / admin123) y un cajero, más la configuración del negocio.
//
// Uso: go run ./cmd/seed
// Idempotente a nivel de esquema (IF NOT EXISTS); los datos de demo se
// insertan solo si las tablas están vacías.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/cafe-pos/internal/domain"
	"github.com/tu-usuario/cafe-pos/internal/domain/entity"
	"github.com/tu-usuario/cafe-pos/internal/infrastructure/postgres"
	"github.com/tu-usuario/cafe-pos/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Conectar a PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	// 1. Esquema
	migPath := filepath.Join(findModuleRoot(), "internal", "infrastructure", "postgres", "migrations", "001_init.sql")
	ddl, err := os.ReadFile(migPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Leer migración: %v\n", err)
		os.Exit(1)
	}
	if _, err := pool.Exec(ctx, string(ddl)); err != nil {
		fmt.Fprintf(os.Stderr, "Aplicar esquema: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("Esquema aplicado")

	// 2. Datos de demo solo sobre tablas vacías
	var nUsers int
	if err := pool.QueryRow(ctx, `SELECT count(*) FROM users`).Scan(&nUsers); err != nil {
		fmt.Fprintf(os.Stderr, "Verificar usuarios: %v\n", err)
		os.Exit(1)
	}
	if nUsers > 0 {
		fmt.Println("Ya existen datos, nada que sembrar")
		return
	}

	materials := postgres.NewMaterialRepository(pool)
	products := postgres.NewProductRepository(pool)
	users := postgres.NewUserRepository(pool)
	settings := postgres.NewSettingsRepository(pool)

	now := time.Now()

	// Materiales
	cafe := &entity.RawMaterial{
		ID:           domain.NewID(domain.PrefixMaterial),
		Name:         "Café molido",
		Unit:         "g",
		UnitCost:     decimal.RequireFromString("0.30"),
		CurrentStock: decimal.NewFromInt(2000),
		MinStock:     decimal.NewFromInt(500),
		TargetStock:  decimal.NewFromInt(3000),
		Category:     "insumo",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	leche := &entity.RawMaterial{
		ID:           domain.NewID(domain.PrefixMaterial),
		Name:         "Leche entera",
		Unit:         "ml",
		UnitCost:     decimal.RequireFromString("0.02"),
		CurrentStock: decimal.NewFromInt(10000),
		MinStock:     decimal.NewFromInt(2000),
		TargetStock:  decimal.NewFromInt(12000),
		Category:     "insumo",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	vaso := &entity.RawMaterial{
		ID:           domain.NewID(domain.PrefixMaterial),
		Name:         "Vaso 12oz",
		Unit:         "pieza",
		UnitCost:     decimal.RequireFromString("1.50"),
		CurrentStock: decimal.NewFromInt(300),
		MinStock:     decimal.NewFromInt(100),
		TargetStock:  decimal.NewFromInt(500),
		Category:     "desechable",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	for _, m := range []*entity.RawMaterial{cafe, leche, vaso} {
		if err := materials.Create(m); err != nil {
			fmt.Fprintf(os.Stderr, "Crear material %s: %v\n", m.Name, err)
			os.Exit(1)
		}
	}
	fmt.Println("Materiales: 3")

	// Productos con receta congelada al costo actual de los materiales
	espresso := buildProduct("Espresso", "CAF-001", "bebida", decimal.NewFromInt(35), []entity.RecipeItem{
		frozenItem(cafe, decimal.NewFromInt(18)),
		frozenItem(vaso, decimal.NewFromInt(1)),
	}, now)
	latte := buildProduct("Latte", "CAF-002", "bebida", decimal.NewFromInt(55), []entity.RecipeItem{
		frozenItem(cafe, decimal.NewFromInt(18)),
		frozenItem(leche, decimal.NewFromInt(200)),
		frozenItem(vaso, decimal.NewFromInt(1)),
	}, now)
	for _, p := range []*entity.Product{espresso, latte} {
		if err := products.Create(p); err != nil {
			fmt.Fprintf(os.Stderr, "Crear producto %s: %v\n", p.Name, err)
			os.Exit(1)
		}
	}
	fmt.Println("Productos: 2")

	// Usuarios
	if err := createUser(users, "admin", "admin123", "Administrador", entity.RoleOwner); err != nil {
		fmt.Fprintf(os.Stderr, "Crear usuario admin: %v\n", err)
		os.Exit(1)
	}
	if err := createUser(users, "cajero", "cajero123", "Cajero Demo", entity.RoleCashier); err != nil {
		fmt.Fprintf(os.Stderr, "Crear usuario cajero: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("Usuarios: admin / admin123, cajero / cajero123")

	if err := settings.Save(entity.DefaultSettings()); err != nil {
		fmt.Fprintf(os.Stderr, "Guardar configuración: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("Configuración inicial guardada")
}

// frozenItem congela nombre, unidad y costo del material en la receta.
func frozenItem(m *entity.RawMaterial, qty decimal.Decimal) entity.RecipeItem {
	return entity.RecipeItem{
		MaterialID:   m.ID,
		MaterialName: m.Name,
		Unit:         m.Unit,
		Quantity:     qty,
		UnitCost:     m.UnitCost,
		TotalCost:    qty.Mul(m.UnitCost),
	}
}

func buildProduct(name, sku, category string, price decimal.Decimal, recipe []entity.RecipeItem, now time.Time) *entity.Product {
	cost := decimal.Zero
	for _, it := range recipe {
		cost = cost.Add(it.TotalCost)
	}
	return &entity.Product{
		ID:        domain.NewID(domain.PrefixProduct),
		Name:      name,
		SKU:       sku,
		Recipe:    recipe,
		Cost:      cost,
		Price:     price,
		Profit:    price.Sub(cost).Round(0),
		Category:  category,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func createUser(repo *postgres.UserRepo, username, password, fullName, role string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return repo.Create(&entity.User{
		ID:           domain.NewID(domain.PrefixUser),
		Username:     username,
		PasswordHash: string(hash),
		FullName:     fullName,
		Role:         role,
		IsActive:     true,
		Salary:       decimal.Zero,
		CreatedAt:    time.Now(),
	})
}

func findModuleRoot() string {
	dir, _ := os.Getwd()
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return dir
		}
		dir = parent
	}
}
