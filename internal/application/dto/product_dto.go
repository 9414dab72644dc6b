package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/cafe-pos/internal/domain/entity"
)

// RecipeItemRequest línea de receta al crear un producto. Nombre, unidad y
// costo unitario se toman del material vivo y quedan congelados en la receta.
type RecipeItemRequest struct {
	MaterialID string          `json:"materialId"`
	Quantity   decimal.Decimal `json:"quantity"`
}

// CreateProductRequest alta de producto. SKU opcional (se autogenera).
type CreateProductRequest struct {
	Name     string              `json:"name"`
	SKU      string              `json:"sku"`
	Barcode  string              `json:"barcode"`
	Price    decimal.Decimal     `json:"price"`
	Category string              `json:"category"`
	Recipe   []RecipeItemRequest `json:"recipe"`
}

// UpdateProductRequest edición de producto. La receta no es editable: no
// existe ruta de actualización de recetas (el costo queda congelado al crear).
type UpdateProductRequest struct {
	Name     *string          `json:"name"`
	Barcode  *string          `json:"barcode"`
	Price    *decimal.Decimal `json:"price"`
	Category *string          `json:"category"`
	IsActive *bool            `json:"isActive"`
}

// ProductResponse representación pública de un producto.
type ProductResponse struct {
	ID        string              `json:"id"`
	Name      string              `json:"name"`
	SKU       string              `json:"sku"`
	Barcode   string              `json:"barcode,omitempty"`
	Recipe    []entity.RecipeItem `json:"recipe"`
	Cost      decimal.Decimal     `json:"cost"`
	Price     decimal.Decimal     `json:"price"`
	Profit    decimal.Decimal     `json:"profit"`
	Category  string              `json:"category,omitempty"`
	IsActive  bool                `json:"isActive"`
	CreatedAt time.Time           `json:"createdAt"`
	UpdatedAt time.Time           `json:"updatedAt"`
}

// ToProductResponse convierte la entidad a su DTO.
func ToProductResponse(p *entity.Product) *ProductResponse {
	return &ProductResponse{
		ID:        p.ID,
		Name:      p.Name,
		SKU:       p.SKU,
		Barcode:   p.Barcode,
		Recipe:    p.Recipe,
		Cost:      p.Cost,
		Price:     p.Price,
		Profit:    p.Profit,
		Category:  p.Category,
		IsActive:  p.IsActive,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
