package repository

import "github.com/tu-usuario/cafe-pos/internal/domain/entity"

// SaleRepository puerto del libro de ventas (append-only: sin Update ni Delete
// en flujo normal; Clear existe solo para el reinicio administrativo).
type SaleRepository interface {
	Create(s *entity.Sale) error
	GetByID(id string) (*entity.Sale, error)
	List() ([]*entity.Sale, error)
	// ListByDate filtra por día calendario local (YYYY-MM-DD) del timestamp.
	ListByDate(date string) ([]*entity.Sale, error)
	Clear() error
}
