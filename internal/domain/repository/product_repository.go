package repository

import "github.com/tu-usuario/cafe-pos/internal/domain/entity"

// ProductRepository puerto de persistencia para el catálogo de productos.
// GetByID y GetBySKU devuelven (nil, nil) cuando no hay coincidencia.
type ProductRepository interface {
	Create(p *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetBySKU(sku string) (*entity.Product, error)
	Update(p *entity.Product) error
	List() ([]*entity.Product, error)
	Clear() error
}
