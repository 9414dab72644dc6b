// Package catalog contiene los casos de uso del catálogo de productos y sus recetas.
package catalog

import (
	"fmt"
	"time"

	"github.com/tu-usuario/cafe-pos/internal/application/dto"
	"github.com/tu-usuario/cafe-pos/internal/domain"
	"github.com/tu-usuario/cafe-pos/internal/domain/entity"
	"github.com/tu-usuario/cafe-pos/internal/domain/pos"
	"github.com/tu-usuario/cafe-pos/internal/domain/repository"
)

// ProductUseCase CRUD de productos. El costo y la ganancia se congelan al
// crear: la receta no tiene ruta de edición y los cambios posteriores del
// costo vivo de los materiales no recalculan recetas existentes.
type ProductUseCase struct {
	products  repository.ProductRepository
	materials repository.MaterialRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(products repository.ProductRepository, materials repository.MaterialRepository) *ProductUseCase {
	return &ProductUseCase{products: products, materials: materials}
}

// Create crea un producto. Cada línea de receta debe referenciar un material
// existente; nombre, unidad y costo unitario se congelan en la receta
// (totalCost = quantity * unitCost al autorar). Cost = suma de totalCosts,
// Profit = round(Price - Cost). SKU autogenerado si falta; único por catálogo.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Name == "" || in.Price.IsNegative() {
		return nil, domain.ErrInvalidInput
	}

	sku := in.SKU
	if sku == "" {
		sku = fmt.Sprintf("SKU-%d", time.Now().UnixMilli())
	}
	existing, err := uc.products.GetBySKU(sku)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}

	recipe := make([]entity.RecipeItem, 0, len(in.Recipe))
	for _, line := range in.Recipe {
		if !line.Quantity.IsPositive() {
			return nil, domain.ErrInvalidInput
		}
		m, err := uc.materials.GetByID(line.MaterialID)
		if err != nil {
			return nil, err
		}
		if m == nil {
			return nil, domain.ErrNotFound
		}
		recipe = append(recipe, entity.RecipeItem{
			MaterialID:   m.ID,
			MaterialName: m.Name,
			Unit:         m.Unit,
			Quantity:     line.Quantity,
			UnitCost:     m.UnitCost,
			TotalCost:    line.Quantity.Mul(m.UnitCost),
		})
	}

	cost := pos.RecipeCost(recipe)
	now := time.Now()
	p := &entity.Product{
		ID:        domain.NewID(domain.PrefixProduct),
		Name:      in.Name,
		SKU:       sku,
		Barcode:   in.Barcode,
		Recipe:    recipe,
		Cost:      cost,
		Price:     in.Price,
		Profit:    pos.Profit(in.Price, cost),
		Category:  in.Category,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.products.Create(p); err != nil {
		return nil, err
	}
	return dto.ToProductResponse(p), nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	p, err := uc.products.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	return dto.ToProductResponse(p), nil
}

// List devuelve el catálogo completo.
func (uc *ProductUseCase) List() ([]*dto.ProductResponse, error) {
	list, err := uc.products.List()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ProductResponse, 0, len(list))
	for _, p := range list {
		out = append(out, dto.ToProductResponse(p))
	}
	return out, nil
}

// Update edita un producto. Un cambio de precio recalcula Profit contra el
// costo congelado; la receta y el costo no se tocan.
func (uc *ProductUseCase) Update(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	p, err := uc.products.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		p.Name = *in.Name
	}
	if in.Barcode != nil {
		p.Barcode = *in.Barcode
	}
	if in.Price != nil {
		if in.Price.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		p.Price = *in.Price
		p.Profit = pos.Profit(p.Price, p.Cost)
	}
	if in.Category != nil {
		p.Category = *in.Category
	}
	if in.IsActive != nil {
		p.IsActive = *in.IsActive
	}
	p.UpdatedAt = time.Now()
	if err := uc.products.Update(p); err != nil {
		return nil, err
	}
	return dto.ToProductResponse(p), nil
}
