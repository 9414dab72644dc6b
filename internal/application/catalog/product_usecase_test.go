package catalog_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/cafe-pos/internal/application/catalog"
	"github.com/tu-usuario/cafe-pos/internal/application/dto"
	"github.com/tu-usuario/cafe-pos/internal/domain"
	"github.com/tu-usuario/cafe-pos/internal/domain/entity"
	"github.com/tu-usuario/cafe-pos/internal/domain/repository"
	"github.com/tu-usuario/cafe-pos/internal/infrastructure/localstore"
)

func newCatalog(t *testing.T) (*catalog.ProductUseCase, repository.MaterialRepository) {
	t.Helper()
	store, err := localstore.Open(t.TempDir())
	require.NoError(t, err)
	materials := localstore.NewMaterialRepository(store)
	return catalog.NewProductUseCase(localstore.NewProductRepository(store), materials), materials
}

func seedMaterial(t *testing.T, materials repository.MaterialRepository, id, name, unit, unitCost string) {
	t.Helper()
	require.NoError(t, materials.Create(&entity.RawMaterial{
		ID:       id,
		Name:     name,
		Unit:     unit,
		UnitCost: decimal.RequireFromString(unitCost),
	}))
}

// ──────────────────────────────────────────────────────────────────────────────
// Create — congelamiento de receta
// ──────────────────────────────────────────────────────────────────────────────

// Al crear, cada línea congela nombre/unidad/costo del material; Cost es la
// suma de los totalCost y Profit = round(price - cost).
func TestCreate_CongelaRecetaYCalculaGanancia(t *testing.T) {
	uc, materials := newCatalog(t)
	seedMaterial(t, materials, "mat-1", "Café molido", entity.UnitGram, "0.30")
	seedMaterial(t, materials, "mat-2", "Leche entera", entity.UnitMilliliter, "0.02")

	p, err := uc.Create(dto.CreateProductRequest{
		Name:  "Latte",
		SKU:   "CAF-002",
		Price: decimal.NewFromInt(50),
		Recipe: []dto.RecipeItemRequest{
			{MaterialID: "mat-1", Quantity: decimal.NewFromInt(18)},
			{MaterialID: "mat-2", Quantity: decimal.NewFromInt(200)},
		},
	})
	require.NoError(t, err)

	require.Len(t, p.Recipe, 2)
	assert.Equal(t, "Café molido", p.Recipe[0].MaterialName)
	assert.Equal(t, entity.UnitGram, p.Recipe[0].Unit)
	assert.True(t, p.Recipe[0].UnitCost.Equal(decimal.RequireFromString("0.30")))
	assert.True(t, p.Recipe[0].TotalCost.Equal(decimal.RequireFromString("5.40")), "18 * 0.30")

	assert.True(t, p.Cost.Equal(decimal.RequireFromString("9.40")), "5.40 + 4.00")
	assert.True(t, p.Profit.Equal(decimal.NewFromInt(41)),
		"round(50 - 9.40) = 41, fue %s", p.Profit)
	assert.True(t, p.IsActive)
}

// El costo de la receta queda congelado: subir el costo vivo del material
// después de crear el producto NO lo recalcula.
func TestCreate_CostoCongeladoAnteCambiosDelMaterial(t *testing.T) {
	uc, materials := newCatalog(t)
	seedMaterial(t, materials, "mat-1", "Café molido", entity.UnitGram, "0.30")

	p, err := uc.Create(dto.CreateProductRequest{
		Name:  "Espresso",
		SKU:   "CAF-001",
		Price: decimal.NewFromInt(35),
		Recipe: []dto.RecipeItemRequest{
			{MaterialID: "mat-1", Quantity: decimal.NewFromInt(18)},
		},
	})
	require.NoError(t, err)

	// El café se encarece al doble.
	m, err := materials.GetByID("mat-1")
	require.NoError(t, err)
	m.UnitCost = decimal.RequireFromString("0.60")
	require.NoError(t, materials.Update(m))

	got, err := uc.GetByID(p.ID)
	require.NoError(t, err)
	assert.True(t, got.Cost.Equal(decimal.RequireFromString("5.40")),
		"el costo del producto conserva el valor al autorar")
	assert.True(t, got.Recipe[0].UnitCost.Equal(decimal.RequireFromString("0.30")))
}

// Receta vacía es válida: artículo de puro margen, costo cero.
func TestCreate_RecetaVacia(t *testing.T) {
	uc, _ := newCatalog(t)

	p, err := uc.Create(dto.CreateProductRequest{
		Name:  "Botella de agua",
		SKU:   "BEB-001",
		Price: decimal.NewFromInt(20),
	})
	require.NoError(t, err)
	assert.True(t, p.Cost.IsZero())
	assert.True(t, p.Profit.Equal(decimal.NewFromInt(20)))
}

func TestCreate_SKUDuplicado(t *testing.T) {
	uc, _ := newCatalog(t)

	_, err := uc.Create(dto.CreateProductRequest{Name: "A", SKU: "X-1", Price: decimal.NewFromInt(10)})
	require.NoError(t, err)

	_, err = uc.Create(dto.CreateProductRequest{Name: "B", SKU: "X-1", Price: decimal.NewFromInt(10)})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestCreate_SKUAutogenerado(t *testing.T) {
	uc, _ := newCatalog(t)

	p, err := uc.Create(dto.CreateProductRequest{Name: "Sin SKU", Price: decimal.NewFromInt(10)})
	require.NoError(t, err)
	assert.NotEmpty(t, p.SKU)
}

func TestCreate_MaterialInexistenteEnReceta(t *testing.T) {
	uc, _ := newCatalog(t)

	_, err := uc.Create(dto.CreateProductRequest{
		Name:  "Fantasma",
		Price: decimal.NewFromInt(10),
		Recipe: []dto.RecipeItemRequest{
			{MaterialID: "mat-nope", Quantity: decimal.NewFromInt(1)},
		},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreate_PrecioNegativo(t *testing.T) {
	uc, _ := newCatalog(t)
	_, err := uc.Create(dto.CreateProductRequest{Name: "X", Price: decimal.NewFromInt(-5)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Update — la receta no es editable
// ──────────────────────────────────────────────────────────────────────────────

// Un cambio de precio recalcula Profit contra el costo congelado.
func TestUpdate_PrecioRecalculaGanancia(t *testing.T) {
	uc, materials := newCatalog(t)
	seedMaterial(t, materials, "mat-1", "Café molido", entity.UnitGram, "0.30")

	p, err := uc.Create(dto.CreateProductRequest{
		Name:  "Espresso",
		SKU:   "CAF-001",
		Price: decimal.NewFromInt(35),
		Recipe: []dto.RecipeItemRequest{
			{MaterialID: "mat-1", Quantity: decimal.NewFromInt(18)},
		},
	})
	require.NoError(t, err)

	newPrice := decimal.NewFromInt(40)
	updated, err := uc.Update(p.ID, dto.UpdateProductRequest{Price: &newPrice})
	require.NoError(t, err)

	assert.True(t, updated.Cost.Equal(p.Cost), "el costo no cambia")
	assert.True(t, updated.Profit.Equal(decimal.NewFromInt(35)),
		"round(40 - 5.40) = 35, fue %s", updated.Profit)
}

func TestUpdate_Desactivar(t *testing.T) {
	uc, _ := newCatalog(t)
	p, err := uc.Create(dto.CreateProductRequest{Name: "X", SKU: "X-1", Price: decimal.NewFromInt(10)})
	require.NoError(t, err)

	inactive := false
	updated, err := uc.Update(p.ID, dto.UpdateProductRequest{IsActive: &inactive})
	require.NoError(t, err)
	assert.False(t, updated.IsActive)
}

func TestUpdate_ProductoInexistente(t *testing.T) {
	uc, _ := newCatalog(t)
	name := "Y"
	_, err := uc.Update("prod-fantasma", dto.UpdateProductRequest{Name: &name})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
